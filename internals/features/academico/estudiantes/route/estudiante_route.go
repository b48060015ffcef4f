package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	estudianteController "docentia_backend/internals/features/academico/estudiantes/controller"
)

func EstudianteRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &estudianteController.EstudianteController{DB: db}

	estudiantes := r.Group("/estudiantes")
	estudiantes.Post("/", ctl.Create)      // POST   /api/estudiantes
	estudiantes.Get("/", ctl.List)         // GET    /api/estudiantes?asignaturaId=
	estudiantes.Get("/:id", ctl.Get)       // GET    /api/estudiantes/:id
	estudiantes.Put("/:id", ctl.Update)    // PUT    /api/estudiantes/:id
	estudiantes.Delete("/:id", ctl.Delete) // DELETE /api/estudiantes/:id
}
