package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	rubricaController "docentia_backend/internals/features/academico/rubrica/controller"
)

// RubricaRoutes monta el CRUD de los cuatro niveles del árbol de rúbrica.
func RubricaRoutes(r fiber.Router, db *gorm.DB) {
	compCtl := &rubricaController.CompetenciaController{DB: db}
	competencias := r.Group("/competencias")
	competencias.Post("/", compCtl.Create)      // POST   /api/competencias
	competencias.Get("/", compCtl.List)         // GET    /api/competencias?asignaturaId=
	competencias.Put("/:id", compCtl.Update)    // PUT    /api/competencias/:id
	competencias.Delete("/:id", compCtl.Delete) // DELETE /api/competencias/:id

	critCtl := &rubricaController.CriterioController{DB: db}
	criterios := r.Group("/criterios")
	criterios.Post("/", critCtl.Create)
	criterios.Get("/", critCtl.List)
	criterios.Put("/:id", critCtl.Update)
	criterios.Delete("/:id", critCtl.Delete)

	evidCtl := &rubricaController.EvidenciaController{DB: db}
	evidencias := r.Group("/evidencias")
	evidencias.Post("/", evidCtl.Create)
	evidencias.Get("/", evidCtl.List)
	evidencias.Put("/:id", evidCtl.Update)
	evidencias.Delete("/:id", evidCtl.Delete)

	actCtl := &rubricaController.ActividadController{DB: db}
	actividades := r.Group("/actividades")
	actividades.Post("/", actCtl.Create)
	actividades.Get("/", actCtl.List)
	actividades.Put("/:id", actCtl.Update)
	actividades.Delete("/:id", actCtl.Delete)
}
