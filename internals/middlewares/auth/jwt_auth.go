package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

type AuthJWTOpts struct {
	Secret              string
	AllowCookieFallback bool // usar cookie access_token si no hay Bearer
}

// AuthJWT protege un grupo de rutas. Deja user_id y username en Locals.
func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AuthJWT: Secret es obligatorio")
	}

	return func(c *fiber.Ctx) error {
		// 1) Token: Authorization: Bearer xxx (o cookie si se permite)
		raw := ""
		if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			raw = strings.TrimSpace(authz[7:])
		} else if o.AllowCookieFallback {
			raw = strings.TrimSpace(c.Cookies("access_token"))
		}
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "No autorizado")
		}

		// 2) Parse + verificación de algoritmo
		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Método de firma no válido")
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Token no válido")
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Claims no válidos")
		}

		if sub, ok := claims["sub"].(string); ok && sub != "" {
			c.Locals("user_id", sub)
		} else {
			return fiber.NewError(fiber.StatusUnauthorized, "Token sin identidad")
		}
		if u, ok := claims["username"].(string); ok {
			c.Locals("username", u)
		}

		return c.Next()
	}
}
