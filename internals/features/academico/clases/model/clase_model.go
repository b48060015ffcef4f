package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ClaseModel struct {
	ClaseID           uuid.UUID `gorm:"column:clase_id;type:uuid;primaryKey" json:"clase_id"`
	ClaseAsignaturaID uuid.UUID `gorm:"column:clase_asignatura_id;type:uuid;not null;index" json:"clase_asignatura_id"`

	ClaseFecha datatypes.Date `gorm:"column:clase_fecha;not null" json:"clase_fecha"`
	ClaseTema  *string        `gorm:"column:clase_tema;type:varchar(200)" json:"clase_tema,omitempty"`

	ClaseCreatedAt time.Time      `gorm:"column:clase_created_at;not null;autoCreateTime" json:"clase_created_at"`
	ClaseUpdatedAt time.Time      `gorm:"column:clase_updated_at;not null;autoUpdateTime" json:"clase_updated_at"`
	ClaseDeletedAt gorm.DeletedAt `gorm:"column:clase_deleted_at;index" json:"clase_deleted_at,omitempty"`
}

func (ClaseModel) TableName() string { return "clases" }

func (m *ClaseModel) BeforeCreate(tx *gorm.DB) error {
	if m.ClaseID == uuid.Nil {
		m.ClaseID = uuid.New()
	}
	return nil
}
