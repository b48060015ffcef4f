package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Una fila por estudiante — upsert por existencia. El segundo turno,
// cuando está presente, sustituye a la nota calculada (decisión de la UI).
type NotaFinalModel struct {
	NotaFinalID uuid.UUID `gorm:"column:nota_final_id;type:uuid;primaryKey" json:"nota_final_id"`

	NotaFinalEstudianteID uuid.UUID `gorm:"column:nota_final_estudiante_id;type:uuid;not null;uniqueIndex" json:"nota_final_estudiante_id"`

	NotaFinalNota         float64  `gorm:"column:nota_final_nota;not null" json:"nota_final_nota"`
	NotaFinalSegundoTurno *float64 `gorm:"column:nota_final_segundo_turno" json:"nota_final_segundo_turno,omitempty"`

	NotaFinalCreatedAt time.Time      `gorm:"column:nota_final_created_at;not null;autoCreateTime" json:"nota_final_created_at"`
	NotaFinalUpdatedAt time.Time      `gorm:"column:nota_final_updated_at;not null;autoUpdateTime" json:"nota_final_updated_at"`
	NotaFinalDeletedAt gorm.DeletedAt `gorm:"column:nota_final_deleted_at;index" json:"nota_final_deleted_at,omitempty"`
}

func (NotaFinalModel) TableName() string { return "notas_finales" }

func (m *NotaFinalModel) BeforeCreate(tx *gorm.DB) error {
	if m.NotaFinalID == uuid.Nil {
		m.NotaFinalID = uuid.New()
	}
	return nil
}
