package seeds

import (
	"log"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	asignaturaModel "docentia_backend/internals/features/academico/asignaturas/model"
	claseModel "docentia_backend/internals/features/academico/clases/model"
	estudianteModel "docentia_backend/internals/features/academico/estudiantes/model"
	rubricaModel "docentia_backend/internals/features/academico/rubrica/model"
	semestreModel "docentia_backend/internals/features/academico/semestres/model"
	authModel "docentia_backend/internals/features/usuarios/auth/model"
	authService "docentia_backend/internals/features/usuarios/auth/service"
)

const (
	demoUsuario  = "docente.demo"
	demoPassword = "DemoDocente1"
)

// SeedDemo crea un docente de demostración con un semestre, una asignatura
// con su rúbrica, sus estudiantes y un calendario corto de clases.
func SeedDemo(db *gorm.DB) error {
	var existente authModel.UsuarioModel
	if err := db.Where("usuario_nombre_usuario = ?", demoUsuario).First(&existente).Error; err == nil {
		log.Printf("ℹ️ Usuario %s ya existe, seeds omitidos", demoUsuario)
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		hash, err := authService.HashPassword(demoPassword)
		if err != nil {
			return err
		}
		docente := authModel.UsuarioModel{
			UsuarioNombreUsuario: demoUsuario,
			UsuarioPasswordHash:  hash,
		}
		if err := tx.Create(&docente).Error; err != nil {
			return err
		}

		periodo := "2026-1"
		sem := semestreModel.SemestreModel{
			SemestreUsuarioID: docente.UsuarioID,
			SemestreNombre:    "Primavera 2026",
			SemestrePeriodo:   &periodo,
			SemestreActivo:    true,
		}
		if err := tx.Create(&sem).Error; err != nil {
			return err
		}

		codigo := "MAT-101"
		asig := asignaturaModel.AsignaturaModel{
			AsignaturaSemestreID:   sem.SemestreID,
			AsignaturaNombre:       "Matemáticas I",
			AsignaturaCodigo:       &codigo,
			AsignaturaSeleccionada: true,
		}
		if err := tx.Create(&asig).Error; err != nil {
			return err
		}

		// rúbrica mínima de cuatro niveles
		comp := rubricaModel.CompetenciaModel{
			CompetenciaAsignaturaID: asig.AsignaturaID,
			CompetenciaNombre:       "Razonamiento matemático",
			CompetenciaPorcentaje:   100,
		}
		if err := tx.Create(&comp).Error; err != nil {
			return err
		}
		crit := rubricaModel.CriterioModel{
			CriterioCompetenciaID: comp.CompetenciaID,
			CriterioNombre:        "Resolución de ejercicios",
			CriterioPorcentaje:    100,
		}
		if err := tx.Create(&crit).Error; err != nil {
			return err
		}
		evid := rubricaModel.EvidenciaModel{
			EvidenciaCriterioID: crit.CriterioID,
			EvidenciaNombre:     "Serie de ejercicios",
		}
		if err := tx.Create(&evid).Error; err != nil {
			return err
		}
		act := rubricaModel.ActividadModel{
			ActividadEvidenciaID: evid.EvidenciaID,
			ActividadNombre:      "Serie 1",
			ActividadFecha:       datatypes.Date(time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC)),
		}
		if err := tx.Create(&act).Error; err != nil {
			return err
		}

		for _, e := range []struct{ nombre, apellidos string }{
			{"Ana", "García"},
			{"Luis", "Pérez"},
			{"Marta", "Ruiz"},
		} {
			est := estudianteModel.EstudianteModel{
				EstudianteAsignaturaID: asig.AsignaturaID,
				EstudianteNombre:       e.nombre,
				EstudianteApellidos:    e.apellidos,
			}
			if err := tx.Create(&est).Error; err != nil {
				return err
			}
		}

		inicio := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)
		for i := 0; i < 4; i++ {
			cl := claseModel.ClaseModel{
				ClaseAsignaturaID: asig.AsignaturaID,
				ClaseFecha:        datatypes.Date(inicio.AddDate(0, 0, i*7)),
			}
			if err := tx.Create(&cl).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
