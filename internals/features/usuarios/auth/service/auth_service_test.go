package service_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docentia_backend/internals/configs"
	"docentia_backend/internals/features/usuarios/auth/route"
	"docentia_backend/internals/features/usuarios/auth/service"
	middlewareAuth "docentia_backend/internals/middlewares/auth"
	"docentia_backend/internals/testutil"
)

const secretoPrueba = "secreto-de-prueba"

func newAuthApp(t *testing.T) *fiber.App {
	t.Helper()
	configs.JWTSecret = secretoPrueba
	configs.JWTRefreshSecret = secretoPrueba + "-refresh"
	db := testutil.OpenDB(t)
	app := testutil.NewApp()
	route.AuthRoutes(app, db)
	return app
}

func TestRegistroYLogin(t *testing.T) {
	app := newAuthApp(t)

	code, body := testutil.DoJSON(t, app, http.MethodPost, "/auth/registro", fiber.Map{
		"nombreUsuario": "profe.garcia",
		"password":      "ClaveSegura1",
	})
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "profe.garcia", body["nombreUsuario"])

	code, body = testutil.DoJSON(t, app, http.MethodPost, "/auth/login", fiber.Map{
		"nombreUsuario": "profe.garcia",
		"password":      "ClaveSegura1",
	})
	require.Equal(t, http.StatusOK, code)
	token, ok := body["token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)

	// el token abre una ruta protegida por el middleware
	protegida := testutil.NewApp()
	protegida.Get("/api/perfil",
		middlewareAuth.AuthJWT(middlewareAuth.AuthJWTOpts{Secret: secretoPrueba}),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"usuario": c.Locals("username")})
		})

	req := httptest.NewRequest(http.MethodGet, "/api/perfil", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := protegida.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// sin token, la misma ruta rechaza
	resp, err = protegida.Test(httptest.NewRequest(http.MethodGet, "/api/perfil", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRegistroNombreUsuarioDuplicado(t *testing.T) {
	app := newAuthApp(t)

	alta := fiber.Map{"nombreUsuario": "profe.lopez", "password": "ClaveSegura1"}
	code, _ := testutil.DoJSON(t, app, http.MethodPost, "/auth/registro", alta)
	require.Equal(t, http.StatusCreated, code)

	code, body := testutil.DoJSON(t, app, http.MethodPost, "/auth/registro", alta)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, false, body["status"])
}

func TestLoginCredencialesIncorrectas(t *testing.T) {
	app := newAuthApp(t)

	code, _ := testutil.DoJSON(t, app, http.MethodPost, "/auth/registro", fiber.Map{
		"nombreUsuario": "profe.ruiz",
		"password":      "ClaveSegura1",
	})
	require.Equal(t, http.StatusCreated, code)

	// contraseña errónea y usuario inexistente responden igual
	code, body := testutil.DoJSON(t, app, http.MethodPost, "/auth/login", fiber.Map{
		"nombreUsuario": "profe.ruiz",
		"password":      "otra",
	})
	assert.Equal(t, http.StatusUnauthorized, code)
	msgClaveMala := body["message"]

	code, body = testutil.DoJSON(t, app, http.MethodPost, "/auth/login", fiber.Map{
		"nombreUsuario": "no.existe",
		"password":      "otra",
	})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, msgClaveMala, body["message"])
}

func TestRefreshEmiteNuevoToken(t *testing.T) {
	app := newAuthApp(t)

	code, _ := testutil.DoJSON(t, app, http.MethodPost, "/auth/registro", fiber.Map{
		"nombreUsuario": "profe.vega",
		"password":      "ClaveSegura1",
	})
	require.Equal(t, http.StatusCreated, code)

	code, body := testutil.DoJSON(t, app, http.MethodPost, "/auth/login", fiber.Map{
		"nombreUsuario": "profe.vega",
		"password":      "ClaveSegura1",
	})
	require.Equal(t, http.StatusOK, code)
	refresh := body["refreshToken"].(string)
	require.NotEmpty(t, refresh)

	code, body = testutil.DoJSON(t, app, http.MethodPost, "/auth/refresh", fiber.Map{
		"refreshToken": refresh,
	})
	require.Equal(t, http.StatusOK, code)
	assert.NotEmpty(t, body["token"])

	// un token de acceso no sirve como refresh
	acceso, err := service.GenerateAccessToken(configs.JWTSecret, uuid.New(), "x")
	require.NoError(t, err)
	code, _ = testutil.DoJSON(t, app, http.MethodPost, "/auth/refresh", fiber.Map{
		"refreshToken": acceso,
	})
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestGenerateAccessTokenClaims(t *testing.T) {
	id := uuid.New()
	raw, err := service.GenerateAccessToken(secretoPrueba, id, "profe.sanz")
	require.NoError(t, err)

	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		return []byte(secretoPrueba), nil
	})
	require.NoError(t, err)
	require.True(t, tok.Valid)

	claims := tok.Claims.(jwt.MapClaims)
	assert.Equal(t, id.String(), claims["sub"])
	assert.Equal(t, "profe.sanz", claims["username"])

	exp := time.Unix(int64(claims["exp"].(float64)), 0)
	assert.WithinDuration(t, time.Now().Add(12*time.Hour), exp, time.Minute)
}

func TestHashPasswordNoReversible(t *testing.T) {
	hash, err := service.HashPassword("ClaveSegura1")
	require.NoError(t, err)
	assert.NotEqual(t, "ClaveSegura1", hash)
	assert.True(t, service.CheckPassword(hash, "ClaveSegura1"))
	assert.False(t, service.CheckPassword(hash, "claveSegura1"))
}
