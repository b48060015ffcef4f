package service

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"docentia_backend/internals/configs"
	authDTO "docentia_backend/internals/features/usuarios/auth/dto"
	authModel "docentia_backend/internals/features/usuarios/auth/model"
	helper "docentia_backend/internals/helpers"
)

var validate = validator.New()

// Registro da de alta un usuario con la contraseña hasheada (bcrypt).
func Registro(db *gorm.DB, c *fiber.Ctx) error {
	var req authDTO.RegistroRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición no válido")
	}
	req.NombreUsuario = strings.TrimSpace(req.NombreUsuario)

	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo procesar la contraseña")
	}

	u := authModel.UsuarioModel{
		UsuarioNombreUsuario: req.NombreUsuario,
		UsuarioPasswordHash:  hash,
	}
	if err := db.Create(&u).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "El nombre de usuario ya existe")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo crear el usuario")
	}

	return helper.JsonCreated(c, "Usuario creado", fiber.Map{
		"usuarioId":     u.UsuarioID,
		"nombreUsuario": u.UsuarioNombreUsuario,
	})
}

// Login verifica credenciales y emite el token de acceso.
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición no válido")
	}
	req.NombreUsuario = strings.TrimSpace(req.NombreUsuario)

	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var u authModel.UsuarioModel
	if err := db.
		Where("usuario_nombre_usuario = ?", req.NombreUsuario).
		First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// mismo mensaje que contraseña errónea: no filtrar existencia
			return fiber.NewError(fiber.StatusUnauthorized, "Credenciales incorrectas")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Error al consultar el usuario")
	}

	if !CheckPassword(u.UsuarioPasswordHash, req.Password) {
		return fiber.NewError(fiber.StatusUnauthorized, "Credenciales incorrectas")
	}

	token, err := GenerateAccessToken(configs.JWTSecret, u.UsuarioID, u.UsuarioNombreUsuario)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo emitir el token")
	}
	refresh, err := GenerateRefreshToken(configs.JWTRefreshSecret, u.UsuarioID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo emitir el token")
	}

	return helper.JsonOK(c, "Acceso concedido", fiber.Map{
		"token":         token,
		"refreshToken":  refresh,
		"usuarioId":     u.UsuarioID,
		"nombreUsuario": u.UsuarioNombreUsuario,
	})
}

// Refresh emite un nuevo token de acceso a partir de un refresh válido.
func Refresh(db *gorm.DB, c *fiber.Ctx) error {
	var req authDTO.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición no válido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	userID, err := ParseRefreshToken(configs.JWTRefreshSecret, req.RefreshToken)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Token de renovación no válido")
	}

	var u authModel.UsuarioModel
	if err := db.Where("usuario_id = ?", userID).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, "Token de renovación no válido")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Error al consultar el usuario")
	}

	token, err := GenerateAccessToken(configs.JWTSecret, u.UsuarioID, u.UsuarioNombreUsuario)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo emitir el token")
	}

	return helper.JsonOK(c, "Token renovado", fiber.Map{"token": token})
}
