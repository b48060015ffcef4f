package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	claseDTO "docentia_backend/internals/features/academico/clases/dto"
	claseModel "docentia_backend/internals/features/academico/clases/model"
	helper "docentia_backend/internals/helpers"
)

type ClaseController struct {
	DB *gorm.DB
}

var validate = validator.New()

// POST /api/clases
func (h *ClaseController) Create(c *fiber.Ctx) error {
	var req claseDTO.CreateClaseRequest
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
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo crear la clase")
	}

	return helper.JsonCreated(c, "Clase creada", fiber.Map{"clase": m})
}

// GET /api/clases?asignaturaId=
func (h *ClaseController) List(c *fiber.Ctx) error {
	asignaturaID, err := uuid.Parse(strings.TrimSpace(c.Query("asignaturaId")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "asignaturaId es obligatorio")
	}

	paging := helper.ResolvePaging(c, 50, 200)

	var total int64
	if err := h.DB.Model(&claseModel.ClaseModel{}).
		Where("clase_asignatura_id = ?", asignaturaID).
		Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron contar las clases")
	}

	var list []claseModel.ClaseModel
	if err := h.DB.
		Where("clase_asignatura_id = ?", asignaturaID).
		Order("clase_fecha ASC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron listar las clases")
	}

	return helper.JsonOK(c, "", fiber.Map{
		"clases":     list,
		"pagination": helper.BuildPagination(total, paging.Page, paging.PerPage),
	})
}

// PUT /api/clases/:id
func (h *ClaseController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID no válido")
	}

	var req claseDTO.UpdateClaseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición no válido")
	}
	req.Fecha = strings.TrimSpace(req.Fecha)
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	fecha, err := time.Parse("2006-01-02", req.Fecha)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Fecha no válida (formato AAAA-MM-DD)")
	}

	var m claseModel.ClaseModel
	if err := h.DB.Where("clase_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Clase no encontrada")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Error al consultar la clase")
	}

	m.ClaseFecha = datatypes.Date(fecha)
	m.ClaseTema = req.Tema
	if err := h.DB.Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo actualizar la clase")
	}

	return helper.JsonUpdated(c, "Clase actualizada", fiber.Map{"clase": m})
}

// DELETE /api/clases/:id
func (h *ClaseController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID no válido")
	}

	res := h.DB.Where("clase_id = ?", id).Delete(&claseModel.ClaseModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo eliminar la clase")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Clase no encontrada")
	}

	return helper.JsonDeleted(c, "Clase eliminada", fiber.Map{"id": id})
}
