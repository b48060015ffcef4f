package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	rubricaDTO "docentia_backend/internals/features/academico/rubrica/dto"
	rubricaModel "docentia_backend/internals/features/academico/rubrica/model"
	helper "docentia_backend/internals/helpers"
)

type CriterioController struct {
	DB *gorm.DB
}

// POST /api/criterios
func (h *CriterioController) Create(c *fiber.Ctx) error {
	var req rubricaDTO.CreateCriterioRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición no válido")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo crear el criterio")
	}

	return helper.JsonCreated(c, "Criterio creado", fiber.Map{"criterio": m})
}

// GET /api/criterios?competenciaId=
func (h *CriterioController) List(c *fiber.Ctx) error {
	competenciaID, err := uuid.Parse(strings.TrimSpace(c.Query("competenciaId")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "competenciaId es obligatorio")
	}

	var list []rubricaModel.CriterioModel
	if err := h.DB.
		Where("criterio_competencia_id = ?", competenciaID).
		Preload("Evidencias").
		Preload("Evidencias.Actividades").
		Order("criterio_created_at ASC").
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron listar los criterios")
	}

	return helper.JsonOK(c, "", fiber.Map{"criterios": list})
}

// PUT /api/criterios/:id
func (h *CriterioController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID no válido")
	}

	var req rubricaDTO.UpdateCriterioRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición no válido")
	}
	req.Nombre = strings.TrimSpace(req.Nombre)
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m rubricaModel.CriterioModel
	if err := h.DB.Where("criterio_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Criterio no encontrado")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Error al consultar el criterio")
	}

	m.CriterioNombre = req.Nombre
	m.CriterioPorcentaje = req.Porcentaje
	if err := h.DB.Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo actualizar el criterio")
	}

	return helper.JsonUpdated(c, "Criterio actualizado", fiber.Map{"criterio": m})
}

// DELETE /api/criterios/:id
func (h *CriterioController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID no válido")
	}

	res := h.DB.Where("criterio_id = ?", id).Delete(&rubricaModel.CriterioModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo eliminar el criterio")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Criterio no encontrado")
	}

	return helper.JsonDeleted(c, "Criterio eliminado", fiber.Map{"id": id})
}
