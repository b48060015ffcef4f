package controller_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	semestreModel "docentia_backend/internals/features/academico/semestres/model"
	semestreRoute "docentia_backend/internals/features/academico/semestres/route"
	"docentia_backend/internals/testutil"
)

func newSemestreApp(t *testing.T, usuarioID uuid.UUID) (*fiber.App, *gorm.DB) {
	t.Helper()
	db := testutil.OpenDB(t)
	app := testutil.NewApp()
	api := app.Group("/api", testutil.AuthAs(usuarioID))
	semestreRoute.SemestreRoutes(api, db)
	return app, db
}

func crearSemestre(t *testing.T, app *fiber.App, nombre string) string {
	t.Helper()
	code, body := testutil.DoJSON(t, app, http.MethodPost, "/api/semestres", fiber.Map{
		"nombre":  nombre,
		"periodo": "2026-1",
	})
	require.Equal(t, http.StatusCreated, code)
	sem := body["semestre"].(map[string]any)
	return sem["id"].(string)
}

func TestSemestreCicloCompleto(t *testing.T) {
	usuarioID := uuid.New()
	app, _ := newSemestreApp(t, usuarioID)

	id := crearSemestre(t, app, "Primavera 2026")

	code, body := testutil.DoJSON(t, app, http.MethodGet, "/api/semestres/"+id, nil)
	require.Equal(t, http.StatusOK, code)
	sem := body["semestre"].(map[string]any)
	assert.Equal(t, "Primavera 2026", sem["nombre"])
	assert.Equal(t, false, sem["activo"])

	code, body = testutil.DoJSON(t, app, http.MethodPut, "/api/semestres/"+id, fiber.Map{
		"nombre": "Primavera 2026 (rev)",
	})
	require.Equal(t, http.StatusOK, code)
	sem = body["semestre"].(map[string]any)
	assert.Equal(t, "Primavera 2026 (rev)", sem["nombre"])

	code, _ = testutil.DoJSON(t, app, http.MethodDelete, "/api/semestres/"+id, nil)
	require.Equal(t, http.StatusOK, code)

	code, _ = testutil.DoJSON(t, app, http.MethodGet, "/api/semestres/"+id, nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = testutil.DoJSON(t, app, http.MethodGet, "/api/semestres/"+id+"?with_deleted=true", nil)
	assert.Equal(t, http.StatusOK, code)
}

func TestActivarSemestreEsExcluyente(t *testing.T) {
	usuarioID := uuid.New()
	app, db := newSemestreApp(t, usuarioID)

	idA := crearSemestre(t, app, "2025-2")
	idB := crearSemestre(t, app, "2026-1")

	code, _ := testutil.DoJSON(t, app, http.MethodPut, "/api/semestres/activar/"+idA, nil)
	require.Equal(t, http.StatusOK, code)
	code, _ = testutil.DoJSON(t, app, http.MethodPut, "/api/semestres/activar/"+idB, nil)
	require.Equal(t, http.StatusOK, code)

	var activos []semestreModel.SemestreModel
	require.NoError(t, db.
		Where("semestre_usuario_id = ? AND semestre_activo = ?", usuarioID, true).
		Find(&activos).Error)
	require.Len(t, activos, 1)
	assert.Equal(t, idB, activos[0].SemestreID.String())

	// reactivar el mismo no cambia nada
	code, _ = testutil.DoJSON(t, app, http.MethodPut, "/api/semestres/activar/"+idB, nil)
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, db.
		Where("semestre_usuario_id = ? AND semestre_activo = ?", usuarioID, true).
		Find(&activos).Error)
	assert.Len(t, activos, 1)
}

func TestSemestresAisladosPorUsuario(t *testing.T) {
	duenyo := uuid.New()
	app, db := newSemestreApp(t, duenyo)

	ajeno := semestreModel.SemestreModel{
		SemestreUsuarioID: uuid.New(),
		SemestreNombre:    "De otro docente",
	}
	require.NoError(t, db.Create(&ajeno).Error)

	// ni en el listado
	code, body := testutil.DoJSON(t, app, http.MethodGet, "/api/semestres", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body["semestres"].([]any), 0)

	// ni por id, ni se puede activar o borrar
	code, _ = testutil.DoJSON(t, app, http.MethodGet, "/api/semestres/"+ajeno.SemestreID.String(), nil)
	assert.Equal(t, http.StatusNotFound, code)
	code, _ = testutil.DoJSON(t, app, http.MethodPut, "/api/semestres/activar/"+ajeno.SemestreID.String(), nil)
	assert.Equal(t, http.StatusNotFound, code)
	code, _ = testutil.DoJSON(t, app, http.MethodDelete, "/api/semestres/"+ajeno.SemestreID.String(), nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestCrearSemestreNombreObligatorio(t *testing.T) {
	app, _ := newSemestreApp(t, uuid.New())

	code, body := testutil.DoJSON(t, app, http.MethodPost, "/api/semestres", fiber.Map{
		"nombre": "   ",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, false, body["status"])
}
