package controller_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	estudianteRoute "docentia_backend/internals/features/academico/estudiantes/route"
	"docentia_backend/internals/testutil"
)

func newEstudianteApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db := testutil.OpenDB(t)
	app := testutil.NewApp()
	estudianteRoute.EstudianteRoutes(app.Group("/api"), db)
	return app, db
}

func TestEstudianteAltaYListado(t *testing.T) {
	app, _ := newEstudianteApp(t)
	asignaturaID := uuid.New()

	code, body := testutil.DoJSON(t, app, http.MethodPost, "/api/estudiantes", fiber.Map{
		"asignaturaId": asignaturaID,
		"nombre":       "Ana",
		"apellidos":    "García",
		"matricula":    "A-0042",
	})
	require.Equal(t, http.StatusCreated, code)
	est := body["estudiante"].(map[string]any)
	// el porcentaje denormalizado arranca en cero
	assert.Equal(t, 0.0, est["estudiante_porcentaje_asistencia"])

	// un segundo estudiante de otra asignatura no aparece en el listado
	code, _ = testutil.DoJSON(t, app, http.MethodPost, "/api/estudiantes", fiber.Map{
		"asignaturaId": uuid.New(),
		"nombre":       "Berta",
		"apellidos":    "López",
	})
	require.Equal(t, http.StatusCreated, code)

	code, body = testutil.DoJSON(t, app, http.MethodGet,
		"/api/estudiantes?asignaturaId="+asignaturaID.String(), nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body["estudiantes"].([]any), 1)
}

func TestEstudianteActualizarYBaja(t *testing.T) {
	app, _ := newEstudianteApp(t)

	code, body := testutil.DoJSON(t, app, http.MethodPost, "/api/estudiantes", fiber.Map{
		"asignaturaId": uuid.New(),
		"nombre":       "Carlos",
		"apellidos":    "Mtz",
	})
	require.Equal(t, http.StatusCreated, code)
	id := body["estudiante"].(map[string]any)["estudiante_id"].(string)

	code, body = testutil.DoJSON(t, app, http.MethodPut, "/api/estudiantes/"+id, fiber.Map{
		"nombre":    "Carlos",
		"apellidos": "Martínez",
	})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Martínez", body["estudiante"].(map[string]any)["estudiante_apellidos"])

	code, _ = testutil.DoJSON(t, app, http.MethodDelete, "/api/estudiantes/"+id, nil)
	require.Equal(t, http.StatusOK, code)

	code, _ = testutil.DoJSON(t, app, http.MethodGet, "/api/estudiantes/"+id, nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = testutil.DoJSON(t, app, http.MethodGet, "/api/estudiantes/"+id+"?with_deleted=true", nil)
	assert.Equal(t, http.StatusOK, code)
}

func TestEstudiantesListadoPaginado(t *testing.T) {
	app, _ := newEstudianteApp(t)
	asignaturaID := uuid.New()

	for _, apellidos := range []string{"Arce", "Bravo", "Cano"} {
		code, _ := testutil.DoJSON(t, app, http.MethodPost, "/api/estudiantes", fiber.Map{
			"asignaturaId": asignaturaID,
			"nombre":       "Est",
			"apellidos":    apellidos,
		})
		require.Equal(t, http.StatusCreated, code)
	}

	code, body := testutil.DoJSON(t, app, http.MethodGet,
		"/api/estudiantes?asignaturaId="+asignaturaID.String()+"&perPage=2&page=2", nil)
	require.Equal(t, http.StatusOK, code)

	lista := body["estudiantes"].([]any)
	require.Len(t, lista, 1)
	assert.Equal(t, "Cano", lista[0].(map[string]any)["estudiante_apellidos"])

	pg := body["pagination"].(map[string]any)
	assert.Equal(t, 2.0, pg["page"])
	assert.Equal(t, 3.0, pg["total"])
	assert.Equal(t, 2.0, pg["totalPages"])
	assert.Equal(t, false, pg["hasNext"])
	assert.Equal(t, true, pg["hasPrev"])
}

func TestEstudianteApellidosObligatorios(t *testing.T) {
	app, _ := newEstudianteApp(t)

	code, body := testutil.DoJSON(t, app, http.MethodPost, "/api/estudiantes", fiber.Map{
		"asignaturaId": uuid.New(),
		"nombre":       "Diego",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, false, body["status"])
}
