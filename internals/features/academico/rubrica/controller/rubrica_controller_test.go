package controller_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	rubricaModel "docentia_backend/internals/features/academico/rubrica/model"
	rubricaRoute "docentia_backend/internals/features/academico/rubrica/route"
	"docentia_backend/internals/testutil"
)

func newRubricaApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db := testutil.OpenDB(t)
	app := testutil.NewApp()
	rubricaRoute.RubricaRoutes(app.Group("/api"), db)
	return app, db
}

func crearNivel(t *testing.T, app *fiber.App, ruta string, body fiber.Map, clave string) string {
	t.Helper()
	code, resp := testutil.DoJSON(t, app, http.MethodPost, ruta, body)
	require.Equal(t, http.StatusCreated, code)
	fila := resp[clave].(map[string]any)
	id, ok := fila[clave+"_id"].(string)
	require.True(t, ok)
	return id
}

func TestArbolDeRubricaCompleto(t *testing.T) {
	app, _ := newRubricaApp(t)
	asignaturaID := uuid.New()

	compID := crearNivel(t, app, "/api/competencias", fiber.Map{
		"asignaturaId": asignaturaID,
		"nombre":       "Resolución de problemas",
		"porcentaje":   50,
	}, "competencia")

	critID := crearNivel(t, app, "/api/criterios", fiber.Map{
		"competenciaId": compID,
		"nombre":        "Planteamiento",
		"porcentaje":    100,
	}, "criterio")

	evidID := crearNivel(t, app, "/api/evidencias", fiber.Map{
		"criterioId": critID,
		"nombre":     "Portafolio",
	}, "evidencia")

	crearNivel(t, app, "/api/actividades", fiber.Map{
		"evidenciaId": evidID,
		"nombre":      "Entrega 1",
		"fecha":       "2026-03-15",
	}, "actividad")

	// el listado de competencias precarga el árbol completo
	code, body := testutil.DoJSON(t, app, http.MethodGet,
		"/api/competencias?asignaturaId="+asignaturaID.String(), nil)
	require.Equal(t, http.StatusOK, code)

	comps := body["competencias"].([]any)
	require.Len(t, comps, 1)
	criterios := comps[0].(map[string]any)["criterios"].([]any)
	require.Len(t, criterios, 1)
	evidencias := criterios[0].(map[string]any)["evidencias"].([]any)
	require.Len(t, evidencias, 1)
	actividades := evidencias[0].(map[string]any)["actividades"].([]any)
	require.Len(t, actividades, 1)
	assert.Equal(t, "Entrega 1", actividades[0].(map[string]any)["actividad_nombre"])
}

func TestCrearActividadFechaNoValida(t *testing.T) {
	app, db := newRubricaApp(t)

	code, body := testutil.DoJSON(t, app, http.MethodPost, "/api/actividades", fiber.Map{
		"evidenciaId": uuid.New(),
		"nombre":      "Entrega 1",
		"fecha":       "15/03/2026",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, false, body["status"])

	var cnt int64
	require.NoError(t, db.Model(&rubricaModel.ActividadModel{}).Count(&cnt).Error)
	assert.EqualValues(t, 0, cnt)
}

func TestCompetenciaPorcentajeFueraDeRango(t *testing.T) {
	app, _ := newRubricaApp(t)

	code, body := testutil.DoJSON(t, app, http.MethodPost, "/api/competencias", fiber.Map{
		"asignaturaId": uuid.New(),
		"nombre":       "Teoría",
		"porcentaje":   120,
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, false, body["status"])
}

func TestEliminarCriterioBajaLogica(t *testing.T) {
	app, db := newRubricaApp(t)

	compID := crearNivel(t, app, "/api/competencias", fiber.Map{
		"asignaturaId": uuid.New(),
		"nombre":       "Comunicación",
		"porcentaje":   30,
	}, "competencia")
	critID := crearNivel(t, app, "/api/criterios", fiber.Map{
		"competenciaId": compID,
		"nombre":        "Ortografía",
		"porcentaje":    40,
	}, "criterio")

	code, _ := testutil.DoJSON(t, app, http.MethodDelete, "/api/criterios/"+critID, nil)
	require.Equal(t, http.StatusOK, code)

	// fuera de las consultas normales, presente con Unscoped
	var cnt int64
	require.NoError(t, db.Model(&rubricaModel.CriterioModel{}).Count(&cnt).Error)
	assert.EqualValues(t, 0, cnt)
	require.NoError(t, db.Unscoped().Model(&rubricaModel.CriterioModel{}).Count(&cnt).Error)
	assert.EqualValues(t, 1, cnt)

	// repetir el borrado ya es 404
	code, _ = testutil.DoJSON(t, app, http.MethodDelete, "/api/criterios/"+critID, nil)
	assert.Equal(t, http.StatusNotFound, code)
}
