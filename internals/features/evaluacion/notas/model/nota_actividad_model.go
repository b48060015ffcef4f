package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Una nota por par (estudiante, actividad) — clave natural con upsert.
type NotaActividadModel struct {
	NotaActividadID uuid.UUID `gorm:"column:nota_actividad_id;type:uuid;primaryKey" json:"nota_actividad_id"`

	NotaActividadEstudianteID uuid.UUID `gorm:"column:nota_actividad_estudiante_id;type:uuid;not null;uniqueIndex:uq_nota_actividad_par" json:"nota_actividad_estudiante_id"`
	NotaActividadActividadID  uuid.UUID `gorm:"column:nota_actividad_actividad_id;type:uuid;not null;uniqueIndex:uq_nota_actividad_par" json:"nota_actividad_actividad_id"`

	NotaActividadPuntaje float64 `gorm:"column:nota_actividad_puntaje;not null" json:"nota_actividad_puntaje"`

	NotaActividadCreatedAt time.Time      `gorm:"column:nota_actividad_created_at;not null;autoCreateTime" json:"nota_actividad_created_at"`
	NotaActividadUpdatedAt time.Time      `gorm:"column:nota_actividad_updated_at;not null;autoUpdateTime" json:"nota_actividad_updated_at"`
	NotaActividadDeletedAt gorm.DeletedAt `gorm:"column:nota_actividad_deleted_at;index" json:"nota_actividad_deleted_at,omitempty"`
}

func (NotaActividadModel) TableName() string { return "notas_actividad" }

func (m *NotaActividadModel) BeforeCreate(tx *gorm.DB) error {
	if m.NotaActividadID == uuid.Nil {
		m.NotaActividadID = uuid.New()
	}
	return nil
}
