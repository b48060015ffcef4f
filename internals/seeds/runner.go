package seeds

import (
	"log"
	"os"

	"gorm.io/gorm"
)

// RunAllSeeds carga los datos de demostración cuando SEED_DEMO=true.
// Cada seeder es idempotente: se puede relanzar sin duplicar filas.
func RunAllSeeds(db *gorm.DB) {
	if os.Getenv("SEED_DEMO") != "true" {
		return
	}

	log.Println("🌱 Cargando datos de demostración...")
	if err := SeedDemo(db); err != nil {
		log.Printf("❌ Seeds de demostración fallidos: %v", err)
		return
	}
	log.Println("✅ Datos de demostración cargados")
}
