package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"docentia_backend/internals/configs"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Conectando a PostgreSQL...")

	sslmode := configs.GetEnv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=docentia&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // compatible con PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ No se pudo conectar a la base de datos: %v", err)
	}
	DB = db
	log.Println("✅ Base de datos conectada.")
}

// TunePool ajusta el pool de conexiones del *sql.DB subyacente.
func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("⚠️ No se pudo obtener el pool: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
}

// EnsureIndexes crea los índices que las etiquetas de los modelos no saben
// expresar. El índice de la tupla del promedio parcial necesita
// NULLS NOT DISTINCT (PostgreSQL 15+): sin él, las columnas NULL de la
// tupla no colisionan y dos escrituras simultáneas podrían duplicarla.
func EnsureIndexes() {
	err := DB.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS uq_promedio_parcial_tupla
		ON promedios_parciales (
			promedio_parcial_estudiante_id,
			promedio_parcial_asignatura_id,
			promedio_parcial_tipo,
			promedio_parcial_competencia_id,
			promedio_parcial_criterio_id,
			promedio_parcial_evidencia_id
		) NULLS NOT DISTINCT
		WHERE promedio_parcial_deleted_at IS NULL`).Error
	if err != nil {
		log.Printf("⚠️ No se pudo crear uq_promedio_parcial_tupla: %v", err)
		return
	}
	log.Println("✅ Índices verificados.")
}

// WarmUpQueries lanza una consulta trivial para evitar el cold start
// de la primera petición real.
func WarmUpQueries() {
	var one int
	if err := DB.Raw("SELECT 1").Scan(&one).Error; err != nil {
		log.Printf("⚠️ Warm-up falló: %v", err)
		return
	}
	log.Println("✅ Warm-up OK.")
}
