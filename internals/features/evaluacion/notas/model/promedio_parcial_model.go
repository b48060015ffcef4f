package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tipos de promedio admitidos (niveles de la rúbrica).
const (
	TipoPromedioEvidencia    = "evidencia"
	TipoPromedioCriterio     = "criterio"
	TipoPromedioCompetencia  = "competencia"
	TipoPromedioFinal        = "final"
	TipoPromedioSegundoTurno = "segundoTurno"
)

// Un promedio por tupla (estudiante, asignatura, tipo, competencia?,
// criterio?, evidencia?) — la igualdad de tupla incluye los NULL, así que
// el upsert se resuelve con búsqueda exacta, no con ON CONFLICT.
// El servidor no recalcula nada: persiste el número que envía el cliente.
type PromedioParcialModel struct {
	PromedioParcialID uuid.UUID `gorm:"column:promedio_parcial_id;type:uuid;primaryKey" json:"promedio_parcial_id"`

	PromedioParcialEstudianteID uuid.UUID `gorm:"column:promedio_parcial_estudiante_id;type:uuid;not null;index" json:"promedio_parcial_estudiante_id"`
	PromedioParcialAsignaturaID uuid.UUID `gorm:"column:promedio_parcial_asignatura_id;type:uuid;not null;index" json:"promedio_parcial_asignatura_id"`

	PromedioParcialTipo string `gorm:"column:promedio_parcial_tipo;type:varchar(20);not null" json:"promedio_parcial_tipo"`

	PromedioParcialCompetenciaID *uuid.UUID `gorm:"column:promedio_parcial_competencia_id;type:uuid" json:"promedio_parcial_competencia_id,omitempty"`
	PromedioParcialCriterioID    *uuid.UUID `gorm:"column:promedio_parcial_criterio_id;type:uuid" json:"promedio_parcial_criterio_id,omitempty"`
	PromedioParcialEvidenciaID   *uuid.UUID `gorm:"column:promedio_parcial_evidencia_id;type:uuid" json:"promedio_parcial_evidencia_id,omitempty"`

	PromedioParcialPromedio float64 `gorm:"column:promedio_parcial_promedio;not null" json:"promedio_parcial_promedio"`

	PromedioParcialCreatedAt time.Time      `gorm:"column:promedio_parcial_created_at;not null;autoCreateTime" json:"promedio_parcial_created_at"`
	PromedioParcialUpdatedAt time.Time      `gorm:"column:promedio_parcial_updated_at;not null;autoUpdateTime" json:"promedio_parcial_updated_at"`
	PromedioParcialDeletedAt gorm.DeletedAt `gorm:"column:promedio_parcial_deleted_at;index" json:"promedio_parcial_deleted_at,omitempty"`
}

func (PromedioParcialModel) TableName() string { return "promedios_parciales" }

func (m *PromedioParcialModel) BeforeCreate(tx *gorm.DB) error {
	if m.PromedioParcialID == uuid.Nil {
		m.PromedioParcialID = uuid.New()
	}
	return nil
}

// TipoPromedioValido valida contra el conjunto cerrado de niveles.
func TipoPromedioValido(tipo string) bool {
	switch tipo {
	case TipoPromedioEvidencia, TipoPromedioCriterio, TipoPromedioCompetencia,
		TipoPromedioFinal, TipoPromedioSegundoTurno:
		return true
	default:
		return false
	}
}
