package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	claseController "docentia_backend/internals/features/academico/clases/controller"
)

func ClaseRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &claseController.ClaseController{DB: db}

	clases := r.Group("/clases")
	clases.Post("/", ctl.Create)      // POST   /api/clases
	clases.Get("/", ctl.List)         // GET    /api/clases?asignaturaId=
	clases.Put("/:id", ctl.Update)    // PUT    /api/clases/:id
	clases.Delete("/:id", ctl.Delete) // DELETE /api/clases/:id
}
