package routes

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	asignaturaRoute "docentia_backend/internals/features/academico/asignaturas/route"
	claseRoute "docentia_backend/internals/features/academico/clases/route"
	estudianteRoute "docentia_backend/internals/features/academico/estudiantes/route"
	rubricaRoute "docentia_backend/internals/features/academico/rubrica/route"
	semestreRoute "docentia_backend/internals/features/academico/semestres/route"
	evaluacionRoute "docentia_backend/internals/features/evaluacion/notas/route"
	authRoute "docentia_backend/internals/features/usuarios/auth/route"
	authMiddleware "docentia_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== AUTH (público) =====================
	log.Println("[INFO] Montando rutas de auth...")
	authRoute.AuthRoutes(app, db)

	// ===================== API (protegido por JWT) =====================
	log.Println("[INFO] Montando grupo /api (JWT)...")
	api := app.Group("/api",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
	)

	semestreRoute.SemestreRoutes(api, db)
	asignaturaRoute.AsignaturaRoutes(api, db)
	rubricaRoute.RubricaRoutes(api, db)
	estudianteRoute.EstudianteRoutes(api, db)
	claseRoute.ClaseRoutes(api, db)
	evaluacionRoute.EvaluacionRoutes(api, db)
}
