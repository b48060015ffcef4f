package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "docentia_backend/internals/features/academico/asignaturas/model"
)

type CreateAsignaturaRequest struct {
	SemestreID uuid.UUID `json:"semestreId" validate:"required"`
	Nombre     string    `json:"nombre" validate:"required,min=1,max=120"`
	Codigo     *string   `json:"codigo" validate:"omitempty,max=40"`
}

func (r *CreateAsignaturaRequest) Normalize() {
	r.Nombre = strings.TrimSpace(r.Nombre)
	if r.Codigo != nil {
		cod := strings.TrimSpace(*r.Codigo)
		if cod == "" {
			r.Codigo = nil
		} else {
			r.Codigo = &cod
		}
	}
}

func (r CreateAsignaturaRequest) ToModel() m.AsignaturaModel {
	return m.AsignaturaModel{
		AsignaturaSemestreID: r.SemestreID,
		AsignaturaNombre:     r.Nombre,
		AsignaturaCodigo:     r.Codigo,
	}
}

type UpdateAsignaturaRequest struct {
	Nombre string  `json:"nombre" validate:"required,min=1,max=120"`
	Codigo *string `json:"codigo" validate:"omitempty,max=40"`
}

type SeleccionarAsignaturaRequest struct {
	SemestreID uuid.UUID `json:"semestreId" validate:"required"`
}

type AsignaturaResponse struct {
	ID           uuid.UUID `json:"id"`
	SemestreID   uuid.UUID `json:"semestreId"`
	Nombre       string    `json:"nombre"`
	Codigo       *string   `json:"codigo,omitempty"`
	Seleccionada bool      `json:"seleccionada"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func FromAsignaturaModel(a m.AsignaturaModel) AsignaturaResponse {
	return AsignaturaResponse{
		ID:           a.AsignaturaID,
		SemestreID:   a.AsignaturaSemestreID,
		Nombre:       a.AsignaturaNombre,
		Codigo:       a.AsignaturaCodigo,
		Seleccionada: a.AsignaturaSeleccionada,
		CreatedAt:    a.AsignaturaCreatedAt,
		UpdatedAt:    a.AsignaturaUpdatedAt,
	}
}

func FromAsignaturaModels(list []m.AsignaturaModel) []AsignaturaResponse {
	out := make([]AsignaturaResponse, 0, len(list))
	for _, a := range list {
		out = append(out, FromAsignaturaModel(a))
	}
	return out
}

// PesoNivel agrupa la suma de porcentajes de un nivel de la rúbrica.
// La suma ≠ 100 se informa, no se rechaza (el aviso es cosa de la UI).
type PesoNivel struct {
	Nivel     string    `json:"nivel"`
	PadreID   uuid.UUID `json:"padreId"`
	PadreName string    `json:"padreNombre"`
	Suma      float64   `json:"suma"`
	Completo  bool      `json:"completo"` // suma == 100
}
