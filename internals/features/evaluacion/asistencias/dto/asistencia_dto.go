package dto

import (
	"github.com/google/uuid"
)

type RegistroAsistenciaRequest struct {
	EstudianteID uuid.UUID `json:"estudianteId" validate:"required"`
	ClaseID      uuid.UUID `json:"claseId" validate:"required"`
	// puntero: false (ausente) es un valor legítimo
	Presente *bool `json:"presente" validate:"required"`
}

// Fila del listado por clase con el nombre del estudiante unido.
type AsistenciaRow struct {
	ID                  uuid.UUID `gorm:"column:asistencia_id" json:"id"`
	EstudianteID        uuid.UUID `gorm:"column:asistencia_estudiante_id" json:"estudianteId"`
	EstudianteNombre    string    `gorm:"column:estudiante_nombre" json:"estudianteNombre"`
	EstudianteApellidos string    `gorm:"column:estudiante_apellidos" json:"estudianteApellidos"`
	ClaseID             uuid.UUID `gorm:"column:asistencia_clase_id" json:"claseId"`
	Presente            bool      `gorm:"column:asistencia_presente" json:"presente"`
}
