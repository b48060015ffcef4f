package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	asignaturaController "docentia_backend/internals/features/academico/asignaturas/controller"
)

func AsignaturaRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &asignaturaController.AsignaturaController{DB: db}

	asignaturas := r.Group("/asignaturas")
	asignaturas.Post("/", ctl.Create)                    // POST   /api/asignaturas
	asignaturas.Get("/", ctl.List)                       // GET    /api/asignaturas?semestreId=
	asignaturas.Put("/seleccionar/:id", ctl.Seleccionar) // PUT    /api/asignaturas/seleccionar/:id
	asignaturas.Get("/:id/pesos", ctl.Pesos)             // GET    /api/asignaturas/:id/pesos
	asignaturas.Get("/:id", ctl.Get)                     // GET    /api/asignaturas/:id
	asignaturas.Put("/:id", ctl.Update)                  // PUT    /api/asignaturas/:id
	asignaturas.Delete("/:id", ctl.Delete)               // DELETE /api/asignaturas/:id
}
