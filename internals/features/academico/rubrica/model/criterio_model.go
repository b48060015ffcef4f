package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CriterioModel struct {
	CriterioID            uuid.UUID `gorm:"column:criterio_id;type:uuid;primaryKey" json:"criterio_id"`
	CriterioCompetenciaID uuid.UUID `gorm:"column:criterio_competencia_id;type:uuid;not null;index" json:"criterio_competencia_id"`

	CriterioNombre     string  `gorm:"column:criterio_nombre;type:varchar(200);not null" json:"criterio_nombre"`
	CriterioPorcentaje float64 `gorm:"column:criterio_porcentaje;not null;default:0" json:"criterio_porcentaje"`

	CriterioCreatedAt time.Time      `gorm:"column:criterio_created_at;not null;autoCreateTime" json:"criterio_created_at"`
	CriterioUpdatedAt time.Time      `gorm:"column:criterio_updated_at;not null;autoUpdateTime" json:"criterio_updated_at"`
	CriterioDeletedAt gorm.DeletedAt `gorm:"column:criterio_deleted_at;index" json:"criterio_deleted_at,omitempty"`

	Evidencias []EvidenciaModel `gorm:"foreignKey:EvidenciaCriterioID;references:CriterioID" json:"evidencias,omitempty"`
}

func (CriterioModel) TableName() string { return "criterios" }

func (m *CriterioModel) BeforeCreate(tx *gorm.DB) error {
	if m.CriterioID == uuid.Nil {
		m.CriterioID = uuid.New()
	}
	return nil
}
