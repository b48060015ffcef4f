package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EstudianteModel struct {
	EstudianteID           uuid.UUID `gorm:"column:estudiante_id;type:uuid;primaryKey" json:"estudiante_id"`
	EstudianteAsignaturaID uuid.UUID `gorm:"column:estudiante_asignatura_id;type:uuid;not null;index" json:"estudiante_asignatura_id"`

	EstudianteNombre    string  `gorm:"column:estudiante_nombre;type:varchar(120);not null" json:"estudiante_nombre"`
	EstudianteApellidos string  `gorm:"column:estudiante_apellidos;type:varchar(120);not null" json:"estudiante_apellidos"`
	EstudianteMatricula *string `gorm:"column:estudiante_matricula;type:varchar(40)" json:"estudiante_matricula,omitempty"`

	// Denormalizado: recalculado en cada alta/cambio de asistencia (2 decimales)
	EstudiantePorcentajeAsistencia float64 `gorm:"column:estudiante_porcentaje_asistencia;not null;default:0" json:"estudiante_porcentaje_asistencia"`

	EstudianteCreatedAt time.Time      `gorm:"column:estudiante_created_at;not null;autoCreateTime" json:"estudiante_created_at"`
	EstudianteUpdatedAt time.Time      `gorm:"column:estudiante_updated_at;not null;autoUpdateTime" json:"estudiante_updated_at"`
	EstudianteDeletedAt gorm.DeletedAt `gorm:"column:estudiante_deleted_at;index" json:"estudiante_deleted_at,omitempty"`
}

func (EstudianteModel) TableName() string { return "estudiantes" }

func (m *EstudianteModel) BeforeCreate(tx *gorm.DB) error {
	if m.EstudianteID == uuid.Nil {
		m.EstudianteID = uuid.New()
	}
	return nil
}
