package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ActividadModel struct {
	ActividadID          uuid.UUID `gorm:"column:actividad_id;type:uuid;primaryKey" json:"actividad_id"`
	ActividadEvidenciaID uuid.UUID `gorm:"column:actividad_evidencia_id;type:uuid;not null;index" json:"actividad_evidencia_id"`

	ActividadNombre string         `gorm:"column:actividad_nombre;type:varchar(200);not null" json:"actividad_nombre"`
	ActividadFecha  datatypes.Date `gorm:"column:actividad_fecha;not null" json:"actividad_fecha"`

	ActividadCreatedAt time.Time      `gorm:"column:actividad_created_at;not null;autoCreateTime" json:"actividad_created_at"`
	ActividadUpdatedAt time.Time      `gorm:"column:actividad_updated_at;not null;autoUpdateTime" json:"actividad_updated_at"`
	ActividadDeletedAt gorm.DeletedAt `gorm:"column:actividad_deleted_at;index" json:"actividad_deleted_at,omitempty"`
}

func (ActividadModel) TableName() string { return "actividades" }

func (m *ActividadModel) BeforeCreate(tx *gorm.DB) error {
	if m.ActividadID == uuid.Nil {
		m.ActividadID = uuid.New()
	}
	return nil
}
