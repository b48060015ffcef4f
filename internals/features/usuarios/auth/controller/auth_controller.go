package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"docentia_backend/internals/features/usuarios/auth/service"
)

type AuthController struct {
	DB *gorm.DB
}

func (ac *AuthController) Registro(c *fiber.Ctx) error {
	return service.Registro(ac.DB, c)
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	return service.Login(ac.DB, c)
}

func (ac *AuthController) Refresh(c *fiber.Ctx) error {
	return service.Refresh(ac.DB, c)
}
