package controller_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	claseRoute "docentia_backend/internals/features/academico/clases/route"
	"docentia_backend/internals/testutil"
)

func newClaseApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db := testutil.OpenDB(t)
	app := testutil.NewApp()
	claseRoute.ClaseRoutes(app.Group("/api"), db)
	return app, db
}

func TestClaseAltaListadoYBaja(t *testing.T) {
	app, _ := newClaseApp(t)
	asignaturaID := uuid.New()

	code, body := testutil.DoJSON(t, app, http.MethodPost, "/api/clases", fiber.Map{
		"asignaturaId": asignaturaID,
		"fecha":        "2026-02-09",
		"tema":         "Tema 1: introducción",
	})
	require.Equal(t, http.StatusCreated, code)
	id := body["clase"].(map[string]any)["clase_id"].(string)

	code, _ = testutil.DoJSON(t, app, http.MethodPost, "/api/clases", fiber.Map{
		"asignaturaId": asignaturaID,
		"fecha":        "2026-02-16",
	})
	require.Equal(t, http.StatusCreated, code)

	code, body = testutil.DoJSON(t, app, http.MethodGet,
		"/api/clases?asignaturaId="+asignaturaID.String(), nil)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, body["clases"].([]any), 2)

	// baja lógica: desaparece del listado
	code, _ = testutil.DoJSON(t, app, http.MethodDelete, "/api/clases/"+id, nil)
	require.Equal(t, http.StatusOK, code)

	code, body = testutil.DoJSON(t, app, http.MethodGet,
		"/api/clases?asignaturaId="+asignaturaID.String(), nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body["clases"].([]any), 1)
}

func TestClasesListadoPaginado(t *testing.T) {
	app, _ := newClaseApp(t)
	asignaturaID := uuid.New()

	for _, fecha := range []string{"2026-02-02", "2026-02-09", "2026-02-16"} {
		code, _ := testutil.DoJSON(t, app, http.MethodPost, "/api/clases", fiber.Map{
			"asignaturaId": asignaturaID,
			"fecha":        fecha,
		})
		require.Equal(t, http.StatusCreated, code)
	}

	code, body := testutil.DoJSON(t, app, http.MethodGet,
		"/api/clases?asignaturaId="+asignaturaID.String()+"&perPage=2", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body["clases"].([]any), 2)

	pg := body["pagination"].(map[string]any)
	assert.Equal(t, 3.0, pg["total"])
	assert.Equal(t, 2.0, pg["totalPages"])
	assert.Equal(t, true, pg["hasNext"])
}

func TestClaseFechaNoValida(t *testing.T) {
	app, _ := newClaseApp(t)

	code, body := testutil.DoJSON(t, app, http.MethodPost, "/api/clases", fiber.Map{
		"asignaturaId": uuid.New(),
		"fecha":        "9 de febrero",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, false, body["status"])
}
