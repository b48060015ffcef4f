package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	rubricaDTO "docentia_backend/internals/features/academico/rubrica/dto"
	rubricaModel "docentia_backend/internals/features/academico/rubrica/model"
	helper "docentia_backend/internals/helpers"
)

type ActividadController struct {
	DB *gorm.DB
}

// POST /api/actividades
func (h *ActividadController) Create(c *fiber.Ctx) error {
	var req rubricaDTO.CreateActividadRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición no válido")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m, err := req.ToModel()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Fecha no válida (formato AAAA-MM-DD)")
	}
	if err := h.DB.Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo crear la actividad")
	}

	return helper.JsonCreated(c, "Actividad creada", fiber.Map{"actividad": m})
}

// GET /api/actividades?evidenciaId=
func (h *ActividadController) List(c *fiber.Ctx) error {
	evidenciaID, err := uuid.Parse(strings.TrimSpace(c.Query("evidenciaId")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "evidenciaId es obligatorio")
	}

	var list []rubricaModel.ActividadModel
	if err := h.DB.
		Where("actividad_evidencia_id = ?", evidenciaID).
		Order("actividad_fecha ASC").
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron listar las actividades")
	}

	return helper.JsonOK(c, "", fiber.Map{"actividades": list})
}

// PUT /api/actividades/:id
func (h *ActividadController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID no válido")
	}

	var req rubricaDTO.UpdateActividadRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición no válido")
	}
	req.Nombre = strings.TrimSpace(req.Nombre)
	req.Fecha = strings.TrimSpace(req.Fecha)
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	fecha, err := time.Parse("2006-01-02", req.Fecha)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Fecha no válida (formato AAAA-MM-DD)")
	}

	var m rubricaModel.ActividadModel
	if err := h.DB.Where("actividad_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Actividad no encontrada")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Error al consultar la actividad")
	}

	m.ActividadNombre = req.Nombre
	m.ActividadFecha = datatypes.Date(fecha)
	if err := h.DB.Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo actualizar la actividad")
	}

	return helper.JsonUpdated(c, "Actividad actualizada", fiber.Map{"actividad": m})
}

// DELETE /api/actividades/:id
func (h *ActividadController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID no válido")
	}

	res := h.DB.Where("actividad_id = ?", id).Delete(&rubricaModel.ActividadModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo eliminar la actividad")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Actividad no encontrada")
	}

	return helper.JsonDeleted(c, "Actividad eliminada", fiber.Map{"id": id})
}
