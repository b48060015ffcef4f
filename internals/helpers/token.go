package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetUserIDFromToken devuelve el user_id que el middleware JWT dejó en Locals.
// Error 401 si la petición llegó sin pasar por el middleware.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals("user_id")
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Sesión no válida")
	}
	switch t := v.(type) {
	case uuid.UUID:
		return t, nil
	case string:
		id, err := uuid.Parse(t)
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Sesión no válida")
		}
		return id, nil
	default:
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Sesión no válida")
	}
}
