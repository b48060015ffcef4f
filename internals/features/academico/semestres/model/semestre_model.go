package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SemestreModel struct {
	SemestreID        uuid.UUID `gorm:"column:semestre_id;type:uuid;primaryKey" json:"semestre_id"`
	SemestreUsuarioID uuid.UUID `gorm:"column:semestre_usuario_id;type:uuid;not null;index" json:"semestre_usuario_id"`

	SemestreNombre  string  `gorm:"column:semestre_nombre;type:varchar(120);not null" json:"semestre_nombre"`
	SemestrePeriodo *string `gorm:"column:semestre_periodo;type:varchar(40)" json:"semestre_periodo,omitempty"`

	// A lo sumo un semestre activo por usuario (se garantiza en transacción)
	SemestreActivo bool `gorm:"column:semestre_activo;not null;default:false" json:"semestre_activo"`

	SemestreCreatedAt time.Time      `gorm:"column:semestre_created_at;not null;autoCreateTime" json:"semestre_created_at"`
	SemestreUpdatedAt time.Time      `gorm:"column:semestre_updated_at;not null;autoUpdateTime" json:"semestre_updated_at"`
	SemestreDeletedAt gorm.DeletedAt `gorm:"column:semestre_deleted_at;index" json:"semestre_deleted_at,omitempty"`
}

func (SemestreModel) TableName() string { return "semestres" }

func (m *SemestreModel) BeforeCreate(tx *gorm.DB) error {
	if m.SemestreID == uuid.Nil {
		m.SemestreID = uuid.New()
	}
	return nil
}
