package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "docentia_backend/internals/features/academico/clases/model"
)

type CreateClaseRequest struct {
	AsignaturaID uuid.UUID `json:"asignaturaId" validate:"required"`
	Fecha        string    `json:"fecha" validate:"required"` // AAAA-MM-DD
	Tema         *string   `json:"tema" validate:"omitempty,max=200"`
}

func (r *CreateClaseRequest) Normalize() {
	r.Fecha = strings.TrimSpace(r.Fecha)
	if r.Tema != nil {
		t := strings.TrimSpace(*r.Tema)
		if t == "" {
			r.Tema = nil
		} else {
			r.Tema = &t
		}
	}
}

func (r CreateClaseRequest) ToModel() (m.ClaseModel, error) {
	fecha, err := time.Parse("2006-01-02", r.Fecha)
	if err != nil {
		return m.ClaseModel{}, err
	}
	return m.ClaseModel{
		ClaseAsignaturaID: r.AsignaturaID,
		ClaseFecha:        datatypes.Date(fecha),
		ClaseTema:         r.Tema,
	}, nil
}

type UpdateClaseRequest struct {
	Fecha string  `json:"fecha" validate:"required"` // AAAA-MM-DD
	Tema  *string `json:"tema" validate:"omitempty,max=200"`
}
