package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "docentia_backend/internals/features/academico/rubrica/model"
)

/* =========================
   COMPETENCIA
========================= */

type CreateCompetenciaRequest struct {
	AsignaturaID uuid.UUID `json:"asignaturaId" validate:"required"`
	Nombre       string    `json:"nombre" validate:"required,min=1,max=200"`
	Porcentaje   float64   `json:"porcentaje" validate:"gte=0,lte=100"`
}

func (r *CreateCompetenciaRequest) Normalize() { r.Nombre = strings.TrimSpace(r.Nombre) }

func (r CreateCompetenciaRequest) ToModel() m.CompetenciaModel {
	return m.CompetenciaModel{
		CompetenciaAsignaturaID: r.AsignaturaID,
		CompetenciaNombre:       r.Nombre,
		CompetenciaPorcentaje:   r.Porcentaje,
	}
}

type UpdateCompetenciaRequest struct {
	Nombre     string  `json:"nombre" validate:"required,min=1,max=200"`
	Porcentaje float64 `json:"porcentaje" validate:"gte=0,lte=100"`
}

/* =========================
   CRITERIO
========================= */

type CreateCriterioRequest struct {
	CompetenciaID uuid.UUID `json:"competenciaId" validate:"required"`
	Nombre        string    `json:"nombre" validate:"required,min=1,max=200"`
	Porcentaje    float64   `json:"porcentaje" validate:"gte=0,lte=100"`
}

func (r *CreateCriterioRequest) Normalize() { r.Nombre = strings.TrimSpace(r.Nombre) }

func (r CreateCriterioRequest) ToModel() m.CriterioModel {
	return m.CriterioModel{
		CriterioCompetenciaID: r.CompetenciaID,
		CriterioNombre:        r.Nombre,
		CriterioPorcentaje:    r.Porcentaje,
	}
}

type UpdateCriterioRequest struct {
	Nombre     string  `json:"nombre" validate:"required,min=1,max=200"`
	Porcentaje float64 `json:"porcentaje" validate:"gte=0,lte=100"`
}

/* =========================
   EVIDENCIA
========================= */

type CreateEvidenciaRequest struct {
	CriterioID uuid.UUID `json:"criterioId" validate:"required"`
	Nombre     string    `json:"nombre" validate:"required,min=1,max=200"`
}

func (r *CreateEvidenciaRequest) Normalize() { r.Nombre = strings.TrimSpace(r.Nombre) }

func (r CreateEvidenciaRequest) ToModel() m.EvidenciaModel {
	return m.EvidenciaModel{
		EvidenciaCriterioID: r.CriterioID,
		EvidenciaNombre:     r.Nombre,
	}
}

type UpdateEvidenciaRequest struct {
	Nombre string `json:"nombre" validate:"required,min=1,max=200"`
}

/* =========================
   ACTIVIDAD
========================= */

type CreateActividadRequest struct {
	EvidenciaID uuid.UUID `json:"evidenciaId" validate:"required"`
	Nombre      string    `json:"nombre" validate:"required,min=1,max=200"`
	Fecha       string    `json:"fecha" validate:"required"` // YYYY-MM-DD
}

func (r *CreateActividadRequest) Normalize() {
	r.Nombre = strings.TrimSpace(r.Nombre)
	r.Fecha = strings.TrimSpace(r.Fecha)
}

func (r CreateActividadRequest) ToModel() (m.ActividadModel, error) {
	fecha, err := time.Parse("2006-01-02", r.Fecha)
	if err != nil {
		return m.ActividadModel{}, err
	}
	return m.ActividadModel{
		ActividadEvidenciaID: r.EvidenciaID,
		ActividadNombre:      r.Nombre,
		ActividadFecha:       datatypes.Date(fecha),
	}, nil
}

type UpdateActividadRequest struct {
	Nombre string `json:"nombre" validate:"required,min=1,max=200"`
	Fecha  string `json:"fecha" validate:"required"` // YYYY-MM-DD
}
