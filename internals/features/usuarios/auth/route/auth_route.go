package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "docentia_backend/internals/features/usuarios/auth/controller"
	"docentia_backend/internals/middlewares"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctl := &authController.AuthController{DB: db}

	auth := app.Group("/auth")
	auth.Post("/registro", ctl.Registro)                                // POST /auth/registro
	auth.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)      // POST /auth/login
	auth.Post("/refresh", ctl.Refresh)                                  // POST /auth/refresh
}
