package dto

import (
	"time"

	"github.com/google/uuid"
)

type RegistroNotaRequest struct {
	EstudianteID uuid.UUID `json:"estudianteId" validate:"required"`
	ActividadID  uuid.UUID `json:"actividadId" validate:"required"`
	// puntero: 0 es una nota legítima; la ausencia del campo se rechaza
	Puntaje *float64 `json:"puntaje" validate:"required"`
}

type PromedioParcialRequest struct {
	EstudianteID  uuid.UUID  `json:"estudianteId" validate:"required"`
	AsignaturaID  uuid.UUID  `json:"asignaturaId" validate:"required"`
	Tipo          string     `json:"tipo" validate:"required,oneof=evidencia criterio competencia final segundoTurno"`
	Promedio      *float64   `json:"promedio" validate:"required"`
	CompetenciaID *uuid.UUID `json:"competenciaId"`
	CriterioID    *uuid.UUID `json:"criterioId"`
	EvidenciaID   *uuid.UUID `json:"evidenciaId"`
}

type NotaFinalRequest struct {
	EstudianteID     uuid.UUID `json:"estudianteId" validate:"required"`
	NotaFinal        *float64  `json:"notaFinal" validate:"required"`
	NotaSegundoTurno *float64  `json:"notaSegundoTurno"`
}

// Fila del listado de promedios con los nombres ya unidos.
type PromedioParcialRow struct {
	ID                  uuid.UUID  `gorm:"column:promedio_parcial_id" json:"id"`
	EstudianteID        uuid.UUID  `gorm:"column:promedio_parcial_estudiante_id" json:"estudianteId"`
	EstudianteNombre    string     `gorm:"column:estudiante_nombre" json:"estudianteNombre"`
	EstudianteApellidos string     `gorm:"column:estudiante_apellidos" json:"estudianteApellidos"`
	AsignaturaID        uuid.UUID  `gorm:"column:promedio_parcial_asignatura_id" json:"asignaturaId"`
	Tipo                string     `gorm:"column:promedio_parcial_tipo" json:"tipo"`
	CompetenciaID       *uuid.UUID `gorm:"column:promedio_parcial_competencia_id" json:"competenciaId,omitempty"`
	CompetenciaNombre   *string    `gorm:"column:competencia_nombre" json:"competenciaNombre,omitempty"`
	CriterioID          *uuid.UUID `gorm:"column:promedio_parcial_criterio_id" json:"criterioId,omitempty"`
	CriterioNombre      *string    `gorm:"column:criterio_nombre" json:"criterioNombre,omitempty"`
	EvidenciaID         *uuid.UUID `gorm:"column:promedio_parcial_evidencia_id" json:"evidenciaId,omitempty"`
	EvidenciaNombre     *string    `gorm:"column:evidencia_nombre" json:"evidenciaNombre,omitempty"`
	Promedio            float64    `gorm:"column:promedio_parcial_promedio" json:"promedio"`
	UpdatedAt           time.Time  `gorm:"column:promedio_parcial_updated_at" json:"updatedAt"`
}
