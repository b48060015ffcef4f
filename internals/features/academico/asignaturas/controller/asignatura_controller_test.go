package controller_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	asignaturaModel "docentia_backend/internals/features/academico/asignaturas/model"
	asignaturaRoute "docentia_backend/internals/features/academico/asignaturas/route"
	rubricaModel "docentia_backend/internals/features/academico/rubrica/model"
	semestreModel "docentia_backend/internals/features/academico/semestres/model"
	"docentia_backend/internals/testutil"
)

func newAsignaturaApp(t *testing.T, usuarioID uuid.UUID) (*fiber.App, *gorm.DB) {
	t.Helper()
	db := testutil.OpenDB(t)
	app := testutil.NewApp()
	api := app.Group("/api", testutil.AuthAs(usuarioID))
	asignaturaRoute.AsignaturaRoutes(api, db)
	return app, db
}

func sembrarSemestre(t *testing.T, db *gorm.DB, usuarioID uuid.UUID) semestreModel.SemestreModel {
	t.Helper()
	s := semestreModel.SemestreModel{
		SemestreUsuarioID: usuarioID,
		SemestreNombre:    "2026-1",
	}
	require.NoError(t, db.Create(&s).Error)
	return s
}

func TestCrearYListarAsignaturas(t *testing.T) {
	usuarioID := uuid.New()
	app, db := newAsignaturaApp(t, usuarioID)
	sem := sembrarSemestre(t, db, usuarioID)

	code, body := testutil.DoJSON(t, app, http.MethodPost, "/api/asignaturas", fiber.Map{
		"semestreId": sem.SemestreID,
		"nombre":     "  Álgebra Lineal  ",
		"codigo":     "MAT-201",
	})
	require.Equal(t, http.StatusCreated, code)
	asig := body["asignatura"].(map[string]any)
	assert.Equal(t, "Álgebra Lineal", asig["nombre"]) // se recorta
	assert.Equal(t, false, asig["seleccionada"])

	code, body = testutil.DoJSON(t, app, http.MethodGet,
		"/api/asignaturas?semestreId="+sem.SemestreID.String(), nil)
	require.Equal(t, http.StatusOK, code)
	lista := body["asignaturas"].([]any)
	assert.Len(t, lista, 1)
}

func TestCrearAsignaturaSemestreAjeno(t *testing.T) {
	usuarioID := uuid.New()
	app, db := newAsignaturaApp(t, usuarioID)
	ajeno := sembrarSemestre(t, db, uuid.New())

	code, body := testutil.DoJSON(t, app, http.MethodPost, "/api/asignaturas", fiber.Map{
		"semestreId": ajeno.SemestreID,
		"nombre":     "Física",
	})
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, false, body["status"])
}

func TestSeleccionarAsignaturaEsExcluyente(t *testing.T) {
	usuarioID := uuid.New()
	app, db := newAsignaturaApp(t, usuarioID)
	sem := sembrarSemestre(t, db, usuarioID)

	a := asignaturaModel.AsignaturaModel{AsignaturaSemestreID: sem.SemestreID, AsignaturaNombre: "Química"}
	b := asignaturaModel.AsignaturaModel{AsignaturaSemestreID: sem.SemestreID, AsignaturaNombre: "Historia"}
	require.NoError(t, db.Create(&a).Error)
	require.NoError(t, db.Create(&b).Error)

	code, _ := testutil.DoJSON(t, app, http.MethodPut,
		"/api/asignaturas/seleccionar/"+a.AsignaturaID.String(),
		fiber.Map{"semestreId": sem.SemestreID})
	require.Equal(t, http.StatusOK, code)

	code, _ = testutil.DoJSON(t, app, http.MethodPut,
		"/api/asignaturas/seleccionar/"+b.AsignaturaID.String(),
		fiber.Map{"semestreId": sem.SemestreID})
	require.Equal(t, http.StatusOK, code)

	// tras la segunda selección solo b queda marcada
	var seleccionadas []asignaturaModel.AsignaturaModel
	require.NoError(t, db.
		Where("asignatura_semestre_id = ? AND asignatura_seleccionada = ?", sem.SemestreID, true).
		Find(&seleccionadas).Error)
	require.Len(t, seleccionadas, 1)
	assert.Equal(t, b.AsignaturaID, seleccionadas[0].AsignaturaID)
}

func TestSeleccionarAsignaturaDeOtroSemestre(t *testing.T) {
	usuarioID := uuid.New()
	app, db := newAsignaturaApp(t, usuarioID)
	sem := sembrarSemestre(t, db, usuarioID)
	otro := sembrarSemestre(t, db, usuarioID)

	a := asignaturaModel.AsignaturaModel{AsignaturaSemestreID: otro.SemestreID, AsignaturaNombre: "Latín"}
	require.NoError(t, db.Create(&a).Error)

	code, _ := testutil.DoJSON(t, app, http.MethodPut,
		"/api/asignaturas/seleccionar/"+a.AsignaturaID.String(),
		fiber.Map{"semestreId": sem.SemestreID})
	assert.Equal(t, http.StatusNotFound, code)
}

func TestAsignaturaBajaLogicaYConsultaConEliminadas(t *testing.T) {
	usuarioID := uuid.New()
	app, db := newAsignaturaApp(t, usuarioID)
	sem := sembrarSemestre(t, db, usuarioID)

	a := asignaturaModel.AsignaturaModel{AsignaturaSemestreID: sem.SemestreID, AsignaturaNombre: "Ética"}
	require.NoError(t, db.Create(&a).Error)

	code, _ := testutil.DoJSON(t, app, http.MethodDelete,
		"/api/asignaturas/"+a.AsignaturaID.String(), nil)
	require.Equal(t, http.StatusOK, code)

	// la consulta normal ya no la ve
	code, _ = testutil.DoJSON(t, app, http.MethodGet,
		"/api/asignaturas/"+a.AsignaturaID.String(), nil)
	assert.Equal(t, http.StatusNotFound, code)

	// con with_deleted sí
	code, body := testutil.DoJSON(t, app, http.MethodGet,
		"/api/asignaturas/"+a.AsignaturaID.String()+"?with_deleted=true", nil)
	require.Equal(t, http.StatusOK, code)
	asig := body["asignatura"].(map[string]any)
	assert.Equal(t, "Ética", asig["nombre"])

	// segundo borrado: ya no afecta filas
	code, _ = testutil.DoJSON(t, app, http.MethodDelete,
		"/api/asignaturas/"+a.AsignaturaID.String(), nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestPesosPorNivel(t *testing.T) {
	usuarioID := uuid.New()
	app, db := newAsignaturaApp(t, usuarioID)
	sem := sembrarSemestre(t, db, usuarioID)

	a := asignaturaModel.AsignaturaModel{AsignaturaSemestreID: sem.SemestreID, AsignaturaNombre: "Biología"}
	require.NoError(t, db.Create(&a).Error)

	compA := rubricaModel.CompetenciaModel{
		CompetenciaAsignaturaID: a.AsignaturaID,
		CompetenciaNombre:       "Teoría",
		CompetenciaPorcentaje:   40,
	}
	compB := rubricaModel.CompetenciaModel{
		CompetenciaAsignaturaID: a.AsignaturaID,
		CompetenciaNombre:       "Práctica",
		CompetenciaPorcentaje:   60,
	}
	require.NoError(t, db.Create(&compA).Error)
	require.NoError(t, db.Create(&compB).Error)

	cr := rubricaModel.CriterioModel{
		CriterioCompetenciaID: compA.CompetenciaID,
		CriterioNombre:        "Exámenes",
		CriterioPorcentaje:    70,
	}
	require.NoError(t, db.Create(&cr).Error)

	code, body := testutil.DoJSON(t, app, http.MethodGet,
		"/api/asignaturas/"+a.AsignaturaID.String()+"/pesos", nil)
	require.Equal(t, http.StatusOK, code)

	pesos := body["pesos"].([]any)
	require.Len(t, pesos, 3) // competencias + una fila por competencia

	nivelComp := pesos[0].(map[string]any)
	assert.Equal(t, "competencias", nivelComp["nivel"])
	assert.Equal(t, 100.0, nivelComp["suma"])
	assert.Equal(t, true, nivelComp["completo"])

	// la competencia con un criterio al 70% queda incompleta, no se bloquea
	var incompleto map[string]any
	for _, p := range pesos[1:] {
		fila := p.(map[string]any)
		if fila["padreId"] == compA.CompetenciaID.String() {
			incompleto = fila
		}
	}
	require.NotNil(t, incompleto)
	assert.Equal(t, 70.0, incompleto["suma"])
	assert.Equal(t, false, incompleto["completo"])
}

func TestPesosToleraRedondeoDeTercios(t *testing.T) {
	usuarioID := uuid.New()
	app, db := newAsignaturaApp(t, usuarioID)
	sem := sembrarSemestre(t, db, usuarioID)

	a := asignaturaModel.AsignaturaModel{AsignaturaSemestreID: sem.SemestreID, AsignaturaNombre: "Lógica"}
	require.NoError(t, db.Create(&a).Error)

	// tres tercios redondeados a dos decimales: la suma flotante no es
	// exactamente 100 pero el nivel cuenta como completo
	for _, p := range []float64{33.33, 33.33, 33.34} {
		comp := rubricaModel.CompetenciaModel{
			CompetenciaAsignaturaID: a.AsignaturaID,
			CompetenciaNombre:       "Bloque",
			CompetenciaPorcentaje:   p,
		}
		require.NoError(t, db.Create(&comp).Error)
	}

	code, body := testutil.DoJSON(t, app, http.MethodGet,
		"/api/asignaturas/"+a.AsignaturaID.String()+"/pesos", nil)
	require.Equal(t, http.StatusOK, code)

	nivelComp := body["pesos"].([]any)[0].(map[string]any)
	assert.Equal(t, "competencias", nivelComp["nivel"])
	assert.Equal(t, true, nivelComp["completo"])
}
