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

type EvidenciaController struct {
	DB *gorm.DB
}

// POST /api/evidencias
func (h *EvidenciaController) Create(c *fiber.Ctx) error {
	var req rubricaDTO.CreateEvidenciaRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición no válido")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo crear la evidencia")
	}

	return helper.JsonCreated(c, "Evidencia creada", fiber.Map{"evidencia": m})
}

// GET /api/evidencias?criterioId=
func (h *EvidenciaController) List(c *fiber.Ctx) error {
	criterioID, err := uuid.Parse(strings.TrimSpace(c.Query("criterioId")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "criterioId es obligatorio")
	}

	var list []rubricaModel.EvidenciaModel
	if err := h.DB.
		Where("evidencia_criterio_id = ?", criterioID).
		Preload("Actividades").
		Order("evidencia_created_at ASC").
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron listar las evidencias")
	}

	return helper.JsonOK(c, "", fiber.Map{"evidencias": list})
}

// PUT /api/evidencias/:id
func (h *EvidenciaController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID no válido")
	}

	var req rubricaDTO.UpdateEvidenciaRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición no válido")
	}
	req.Nombre = strings.TrimSpace(req.Nombre)
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m rubricaModel.EvidenciaModel
	if err := h.DB.Where("evidencia_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Evidencia no encontrada")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Error al consultar la evidencia")
	}

	m.EvidenciaNombre = req.Nombre
	if err := h.DB.Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo actualizar la evidencia")
	}

	return helper.JsonUpdated(c, "Evidencia actualizada", fiber.Map{"evidencia": m})
}

// DELETE /api/evidencias/:id
func (h *EvidenciaController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID no válido")
	}

	res := h.DB.Where("evidencia_id = ?", id).Delete(&rubricaModel.EvidenciaModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo eliminar la evidencia")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Evidencia no encontrada")
	}

	return helper.JsonDeleted(c, "Evidencia eliminada", fiber.Map{"id": id})
}
