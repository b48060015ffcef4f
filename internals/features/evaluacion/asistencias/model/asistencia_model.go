package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Una fila por par (estudiante, clase) — clave natural con upsert.
type AsistenciaModel struct {
	AsistenciaID uuid.UUID `gorm:"column:asistencia_id;type:uuid;primaryKey" json:"asistencia_id"`

	AsistenciaEstudianteID uuid.UUID `gorm:"column:asistencia_estudiante_id;type:uuid;not null;uniqueIndex:uq_asistencia_par" json:"asistencia_estudiante_id"`
	AsistenciaClaseID      uuid.UUID `gorm:"column:asistencia_clase_id;type:uuid;not null;uniqueIndex:uq_asistencia_par" json:"asistencia_clase_id"`

	AsistenciaPresente bool `gorm:"column:asistencia_presente;not null;default:false" json:"asistencia_presente"`

	AsistenciaCreatedAt time.Time      `gorm:"column:asistencia_created_at;not null;autoCreateTime" json:"asistencia_created_at"`
	AsistenciaUpdatedAt time.Time      `gorm:"column:asistencia_updated_at;not null;autoUpdateTime" json:"asistencia_updated_at"`
	AsistenciaDeletedAt gorm.DeletedAt `gorm:"column:asistencia_deleted_at;index" json:"asistencia_deleted_at,omitempty"`
}

func (AsistenciaModel) TableName() string { return "asistencias" }

func (m *AsistenciaModel) BeforeCreate(tx *gorm.DB) error {
	if m.AsistenciaID == uuid.Nil {
		m.AsistenciaID = uuid.New()
	}
	return nil
}
