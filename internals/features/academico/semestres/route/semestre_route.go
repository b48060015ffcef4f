package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	semestreController "docentia_backend/internals/features/academico/semestres/controller"
)

func SemestreRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &semestreController.SemestreController{DB: db}

	semestres := r.Group("/semestres")
	semestres.Post("/", ctl.Create)            // POST   /api/semestres
	semestres.Get("/", ctl.List)               // GET    /api/semestres
	semestres.Get("/:id", ctl.Get)             // GET    /api/semestres/:id
	semestres.Put("/activar/:id", ctl.Activar) // PUT    /api/semestres/activar/:id
	semestres.Put("/:id", ctl.Update)          // PUT    /api/semestres/:id
	semestres.Delete("/:id", ctl.Delete)       // DELETE /api/semestres/:id
}
