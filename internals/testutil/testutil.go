package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	asignaturaModel "docentia_backend/internals/features/academico/asignaturas/model"
	claseModel "docentia_backend/internals/features/academico/clases/model"
	estudianteModel "docentia_backend/internals/features/academico/estudiantes/model"
	rubricaModel "docentia_backend/internals/features/academico/rubrica/model"
	semestreModel "docentia_backend/internals/features/academico/semestres/model"
	asistenciaModel "docentia_backend/internals/features/evaluacion/asistencias/model"
	notasModel "docentia_backend/internals/features/evaluacion/notas/model"
	usuarioModel "docentia_backend/internals/features/usuarios/auth/model"
	helper "docentia_backend/internals/helpers"
)

// OpenDB abre una base sqlite en memoria con todo el esquema migrado.
// Una sola conexión: cada conexión de sqlite :memory: vería otra base.
func OpenDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&usuarioModel.UsuarioModel{},
		&semestreModel.SemestreModel{},
		&asignaturaModel.AsignaturaModel{},
		&rubricaModel.CompetenciaModel{},
		&rubricaModel.CriterioModel{},
		&rubricaModel.EvidenciaModel{},
		&rubricaModel.ActividadModel{},
		&estudianteModel.EstudianteModel{},
		&claseModel.ClaseModel{},
		&notasModel.NotaActividadModel{},
		&notasModel.PromedioParcialModel{},
		&notasModel.NotaFinalModel{},
		&asistenciaModel.AsistenciaModel{},
	))

	return db
}

// NewApp crea una app Fiber con la misma envolvente de errores que main.
func NewApp() *fiber.App {
	return fiber.New(fiber.Config{
		ErrorHandler: helper.ErrorHandler,
	})
}

// AuthAs simula el middleware JWT dejando la identidad en Locals.
func AuthAs(usuarioID uuid.UUID) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("user_id", usuarioID)
		return c.Next()
	}
}

// DoJSON lanza una petición JSON contra la app y decodifica la respuesta.
func DoJSON(t *testing.T, app *fiber.App, method, target string, body any) (int, map[string]any) {
	t.Helper()

	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, rd)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	out := map[string]any{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return resp.StatusCode, out
}

// DoRaw lanza una petición con cuerpo arbitrario (para payloads mal formados).
func DoRaw(t *testing.T, app *fiber.App, method, target, body string) int {
	t.Helper()

	req := httptest.NewRequest(method, target, bytes.NewReader([]byte(body)))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode
}
