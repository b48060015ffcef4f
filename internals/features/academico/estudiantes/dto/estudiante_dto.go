package dto

import (
	"strings"

	"github.com/google/uuid"

	m "docentia_backend/internals/features/academico/estudiantes/model"
)

type CreateEstudianteRequest struct {
	AsignaturaID uuid.UUID `json:"asignaturaId" validate:"required"`
	Nombre       string    `json:"nombre" validate:"required,min=1,max=120"`
	Apellidos    string    `json:"apellidos" validate:"required,min=1,max=120"`
	Matricula    *string   `json:"matricula" validate:"omitempty,max=40"`
}

func (r *CreateEstudianteRequest) Normalize() {
	r.Nombre = strings.TrimSpace(r.Nombre)
	r.Apellidos = strings.TrimSpace(r.Apellidos)
	if r.Matricula != nil {
		mt := strings.TrimSpace(*r.Matricula)
		if mt == "" {
			r.Matricula = nil
		} else {
			r.Matricula = &mt
		}
	}
}

func (r CreateEstudianteRequest) ToModel() m.EstudianteModel {
	return m.EstudianteModel{
		EstudianteAsignaturaID: r.AsignaturaID,
		EstudianteNombre:       r.Nombre,
		EstudianteApellidos:    r.Apellidos,
		EstudianteMatricula:    r.Matricula,
	}
}

type UpdateEstudianteRequest struct {
	Nombre    string  `json:"nombre" validate:"required,min=1,max=120"`
	Apellidos string  `json:"apellidos" validate:"required,min=1,max=120"`
	Matricula *string `json:"matricula" validate:"omitempty,max=40"`
}
