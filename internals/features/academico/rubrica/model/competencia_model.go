package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CompetenciaModel struct {
	CompetenciaID           uuid.UUID `gorm:"column:competencia_id;type:uuid;primaryKey" json:"competencia_id"`
	CompetenciaAsignaturaID uuid.UUID `gorm:"column:competencia_asignatura_id;type:uuid;not null;index" json:"competencia_asignatura_id"`

	CompetenciaNombre     string  `gorm:"column:competencia_nombre;type:varchar(200);not null" json:"competencia_nombre"`
	CompetenciaPorcentaje float64 `gorm:"column:competencia_porcentaje;not null;default:0" json:"competencia_porcentaje"`

	CompetenciaCreatedAt time.Time      `gorm:"column:competencia_created_at;not null;autoCreateTime" json:"competencia_created_at"`
	CompetenciaUpdatedAt time.Time      `gorm:"column:competencia_updated_at;not null;autoUpdateTime" json:"competencia_updated_at"`
	CompetenciaDeletedAt gorm.DeletedAt `gorm:"column:competencia_deleted_at;index" json:"competencia_deleted_at,omitempty"`

	// hijos (se precargan en los listados de rúbrica)
	Criterios []CriterioModel `gorm:"foreignKey:CriterioCompetenciaID;references:CompetenciaID" json:"criterios,omitempty"`
}

func (CompetenciaModel) TableName() string { return "competencias" }

func (m *CompetenciaModel) BeforeCreate(tx *gorm.DB) error {
	if m.CompetenciaID == uuid.Nil {
		m.CompetenciaID = uuid.New()
	}
	return nil
}
