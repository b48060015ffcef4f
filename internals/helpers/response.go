package helper

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Envolvente JSON estándar
   { "status": bool, "message": string, ...payload }
=================================*/

func jsonWith(c *fiber.Ctx, code int, status bool, message string, payload fiber.Map) error {
	body := fiber.Map{"status": status}
	if strings.TrimSpace(message) != "" {
		body["message"] = message
	}
	for k, v := range payload {
		body[k] = v
	}
	return c.Status(code).JSON(body)
}

// JsonOK: respuesta de éxito genérica (200).
func JsonOK(c *fiber.Ctx, message string, payload fiber.Map) error {
	return jsonWith(c, fiber.StatusOK, true, message, payload)
}

// JsonCreated: alta exitosa (201).
func JsonCreated(c *fiber.Ctx, message string, payload fiber.Map) error {
	return jsonWith(c, fiber.StatusCreated, true, message, payload)
}

// JsonUpdated: modificación exitosa (200).
func JsonUpdated(c *fiber.Ctx, message string, payload fiber.Map) error {
	return jsonWith(c, fiber.StatusOK, true, message, payload)
}

// JsonDeleted: baja lógica exitosa (200).
func JsonDeleted(c *fiber.Ctx, message string, payload fiber.Map) error {
	return jsonWith(c, fiber.StatusOK, true, message, payload)
}

// JsonError: error genérico. Siempre código HTTP no-2xx (convención única).
func JsonError(c *fiber.Ctx, code int, message string) error {
	if code < fiber.StatusBadRequest {
		code = fiber.StatusInternalServerError
	}
	if strings.TrimSpace(message) == "" {
		message = "Error interno"
	}
	return jsonWith(c, code, false, message, nil)
}

// ErrorHandler traduce cualquier error (incl. fiber.NewError de los
// controladores) a la envolvente JSON estándar. Se registra en fiber.Config.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "Error interno"
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		msg = fe.Message
	}
	return JsonError(c, code, msg)
}

// JsonValidationError: errores de validator.v10 → 400 con detalle por campo.
func JsonValidationError(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return JsonError(c, fiber.StatusBadRequest, "Datos de entrada no válidos")
	}
	detalle := make(map[string]string, len(ve))
	for _, fe := range ve {
		detalle[fe.Field()] = fe.Tag()
	}
	return jsonWith(c, fiber.StatusBadRequest, false, "Validación fallida", fiber.Map{"errores": detalle})
}
