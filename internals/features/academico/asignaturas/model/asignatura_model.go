package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AsignaturaModel struct {
	AsignaturaID         uuid.UUID `gorm:"column:asignatura_id;type:uuid;primaryKey" json:"asignatura_id"`
	AsignaturaSemestreID uuid.UUID `gorm:"column:asignatura_semestre_id;type:uuid;not null;index" json:"asignatura_semestre_id"`

	AsignaturaNombre string  `gorm:"column:asignatura_nombre;type:varchar(120);not null" json:"asignatura_nombre"`
	AsignaturaCodigo *string `gorm:"column:asignatura_codigo;type:varchar(40)" json:"asignatura_codigo,omitempty"`

	// A lo sumo una asignatura seleccionada por semestre (se garantiza en transacción)
	AsignaturaSeleccionada bool `gorm:"column:asignatura_seleccionada;not null;default:false" json:"asignatura_seleccionada"`

	AsignaturaCreatedAt time.Time      `gorm:"column:asignatura_created_at;not null;autoCreateTime" json:"asignatura_created_at"`
	AsignaturaUpdatedAt time.Time      `gorm:"column:asignatura_updated_at;not null;autoUpdateTime" json:"asignatura_updated_at"`
	AsignaturaDeletedAt gorm.DeletedAt `gorm:"column:asignatura_deleted_at;index" json:"asignatura_deleted_at,omitempty"`
}

func (AsignaturaModel) TableName() string { return "asignaturas" }

func (m *AsignaturaModel) BeforeCreate(tx *gorm.DB) error {
	if m.AsignaturaID == uuid.Nil {
		m.AsignaturaID = uuid.New()
	}
	return nil
}
