package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EvidenciaModel struct {
	EvidenciaID         uuid.UUID `gorm:"column:evidencia_id;type:uuid;primaryKey" json:"evidencia_id"`
	EvidenciaCriterioID uuid.UUID `gorm:"column:evidencia_criterio_id;type:uuid;not null;index" json:"evidencia_criterio_id"`

	EvidenciaNombre string `gorm:"column:evidencia_nombre;type:varchar(200);not null" json:"evidencia_nombre"`

	EvidenciaCreatedAt time.Time      `gorm:"column:evidencia_created_at;not null;autoCreateTime" json:"evidencia_created_at"`
	EvidenciaUpdatedAt time.Time      `gorm:"column:evidencia_updated_at;not null;autoUpdateTime" json:"evidencia_updated_at"`
	EvidenciaDeletedAt gorm.DeletedAt `gorm:"column:evidencia_deleted_at;index" json:"evidencia_deleted_at,omitempty"`

	Actividades []ActividadModel `gorm:"foreignKey:ActividadEvidenciaID;references:EvidenciaID" json:"actividades,omitempty"`
}

func (EvidenciaModel) TableName() string { return "evidencias" }

func (m *EvidenciaModel) BeforeCreate(tx *gorm.DB) error {
	if m.EvidenciaID == uuid.Nil {
		m.EvidenciaID = uuid.New()
	}
	return nil
}
