package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "docentia_backend/internals/features/academico/semestres/model"
)

type CreateSemestreRequest struct {
	Nombre  string  `json:"nombre" validate:"required,min=1,max=120"`
	Periodo *string `json:"periodo" validate:"omitempty,max=40"`
}

func (r *CreateSemestreRequest) Normalize() {
	r.Nombre = strings.TrimSpace(r.Nombre)
	if r.Periodo != nil {
		p := strings.TrimSpace(*r.Periodo)
		if p == "" {
			r.Periodo = nil
		} else {
			r.Periodo = &p
		}
	}
}

func (r CreateSemestreRequest) ToModel(usuarioID uuid.UUID) m.SemestreModel {
	return m.SemestreModel{
		SemestreUsuarioID: usuarioID,
		SemestreNombre:    r.Nombre,
		SemestrePeriodo:   r.Periodo,
	}
}

type UpdateSemestreRequest struct {
	Nombre  string  `json:"nombre" validate:"required,min=1,max=120"`
	Periodo *string `json:"periodo" validate:"omitempty,max=40"`
}

type SemestreResponse struct {
	ID        uuid.UUID `json:"id"`
	Nombre    string    `json:"nombre"`
	Periodo   *string   `json:"periodo,omitempty"`
	Activo    bool      `json:"activo"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromSemestreModel(s m.SemestreModel) SemestreResponse {
	return SemestreResponse{
		ID:        s.SemestreID,
		Nombre:    s.SemestreNombre,
		Periodo:   s.SemestrePeriodo,
		Activo:    s.SemestreActivo,
		CreatedAt: s.SemestreCreatedAt,
		UpdatedAt: s.SemestreUpdatedAt,
	}
}

func FromSemestreModels(list []m.SemestreModel) []SemestreResponse {
	out := make([]SemestreResponse, 0, len(list))
	for _, s := range list {
		out = append(out, FromSemestreModel(s))
	}
	return out
}
