package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	rubricaDTO "docentia_backend/internals/features/academico/rubrica/dto"
	rubricaModel "docentia_backend/internals/features/academico/rubrica/model"
	helper "docentia_backend/internals/helpers"
)

type CompetenciaController struct {
	DB *gorm.DB
}

var validate = validator.New()

// POST /api/competencias
func (h *CompetenciaController) Create(c *fiber.Ctx) error {
	var req rubricaDTO.CreateCompetenciaRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición no válido")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo crear la competencia")
	}

	return helper.JsonCreated(c, "Competencia creada", fiber.Map{"competencia": m})
}

// LIST con árbol completo precargado (criterios → evidencias → actividades).
// GET /api/competencias?asignaturaId=
func (h *CompetenciaController) List(c *fiber.Ctx) error {
	asignaturaID, err := uuid.Parse(strings.TrimSpace(c.Query("asignaturaId")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "asignaturaId es obligatorio")
	}

	var list []rubricaModel.CompetenciaModel
	if err := h.DB.
		Where("competencia_asignatura_id = ?", asignaturaID).
		Preload("Criterios").
		Preload("Criterios.Evidencias").
		Preload("Criterios.Evidencias.Actividades").
		Order("competencia_created_at ASC").
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron listar las competencias")
	}

	return helper.JsonOK(c, "", fiber.Map{"competencias": list})
}

// PUT /api/competencias/:id
func (h *CompetenciaController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID no válido")
	}

	var req rubricaDTO.UpdateCompetenciaRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición no válido")
	}
	req.Nombre = strings.TrimSpace(req.Nombre)
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m rubricaModel.CompetenciaModel
	if err := h.DB.Where("competencia_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Competencia no encontrada")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Error al consultar la competencia")
	}

	m.CompetenciaNombre = req.Nombre
	m.CompetenciaPorcentaje = req.Porcentaje
	if err := h.DB.Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo actualizar la competencia")
	}

	return helper.JsonUpdated(c, "Competencia actualizada", fiber.Map{"competencia": m})
}

// DELETE /api/competencias/:id
func (h *CompetenciaController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID no válido")
	}

	res := h.DB.Where("competencia_id = ?", id).Delete(&rubricaModel.CompetenciaModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo eliminar la competencia")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Competencia no encontrada")
	}

	return helper.JsonDeleted(c, "Competencia eliminada", fiber.Map{"id": id})
}
