package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	asistenciaController "docentia_backend/internals/features/evaluacion/asistencias/controller"
	notasController "docentia_backend/internals/features/evaluacion/notas/controller"
)

// EvaluacionRoutes agrupa la superficie /evaluacion: registro de notas,
// promedios por nivel, nota final y asistencias.
func EvaluacionRoutes(r fiber.Router, db *gorm.DB) {
	notasCtl := &notasController.NotasController{DB: db}
	asisCtl := &asistenciaController.AsistenciaController{DB: db}

	ev := r.Group("/evaluacion")
	ev.Post("/registroNotas", notasCtl.RegistroNota)                  // POST /api/evaluacion/registroNotas
	ev.Post("/promedioParcial", notasCtl.GuardarPromedioParcial)      // POST /api/evaluacion/promedioParcial
	ev.Get("/promedioParcial", notasCtl.ListarPromediosParciales)     // GET  /api/evaluacion/promedioParcial?asignaturaId=
	ev.Post("/notaFinal", notasCtl.GuardarNotaFinal)                  // POST /api/evaluacion/notaFinal
	ev.Post("/registroAsistencia", asisCtl.RegistroAsistencia)        // POST /api/evaluacion/registroAsistencia
	ev.Get("/registroAsistencia", asisCtl.ListarPorClase)             // GET  /api/evaluacion/registroAsistencia?claseId=
}
