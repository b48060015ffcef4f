package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	estudianteDTO "docentia_backend/internals/features/academico/estudiantes/dto"
	estudianteModel "docentia_backend/internals/features/academico/estudiantes/model"
	helper "docentia_backend/internals/helpers"
)

type EstudianteController struct {
	DB *gorm.DB
}

var validate = validator.New()

// POST /api/estudiantes
func (h *EstudianteController) Create(c *fiber.Ctx) error {
	var req estudianteDTO.CreateEstudianteRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición no válido")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo crear el estudiante")
	}

	return helper.JsonCreated(c, "Estudiante creado", fiber.Map{"estudiante": m})
}

// GET /api/estudiantes?asignaturaId=
func (h *EstudianteController) List(c *fiber.Ctx) error {
	asignaturaID, err := uuid.Parse(strings.TrimSpace(c.Query("asignaturaId")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "asignaturaId es obligatorio")
	}

	paging := helper.ResolvePaging(c, 50, 200)

	var total int64
	if err := h.DB.Model(&estudianteModel.EstudianteModel{}).
		Where("estudiante_asignatura_id = ?", asignaturaID).
		Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron contar los estudiantes")
	}

	var list []estudianteModel.EstudianteModel
	if err := h.DB.
		Where("estudiante_asignatura_id = ?", asignaturaID).
		Order("estudiante_apellidos ASC, estudiante_nombre ASC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron listar los estudiantes")
	}

	return helper.JsonOK(c, "", fiber.Map{
		"estudiantes": list,
		"pagination":  helper.BuildPagination(total, paging.Page, paging.PerPage),
	})
}

// GET /api/estudiantes/:id[?with_deleted=true]
func (h *EstudianteController) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID no válido")
	}

	q := h.DB
	if strings.EqualFold(c.Query("with_deleted"), "true") {
		q = q.Unscoped()
	}

	var m estudianteModel.EstudianteModel
	if err := q.Where("estudiante_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Estudiante no encontrado")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Error al consultar el estudiante")
	}

	return helper.JsonOK(c, "", fiber.Map{"estudiante": m})
}

// PUT /api/estudiantes/:id
func (h *EstudianteController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID no válido")
	}

	var req estudianteDTO.UpdateEstudianteRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición no válido")
	}
	req.Nombre = strings.TrimSpace(req.Nombre)
	req.Apellidos = strings.TrimSpace(req.Apellidos)
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m estudianteModel.EstudianteModel
	if err := h.DB.Where("estudiante_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Estudiante no encontrado")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Error al consultar el estudiante")
	}

	m.EstudianteNombre = req.Nombre
	m.EstudianteApellidos = req.Apellidos
	m.EstudianteMatricula = req.Matricula
	if err := h.DB.Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo actualizar el estudiante")
	}

	return helper.JsonUpdated(c, "Estudiante actualizado", fiber.Map{"estudiante": m})
}

// DELETE /api/estudiantes/:id
func (h *EstudianteController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID no válido")
	}

	res := h.DB.Where("estudiante_id = ?", id).Delete(&estudianteModel.EstudianteModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo eliminar el estudiante")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Estudiante no encontrado")
	}

	return helper.JsonDeleted(c, "Estudiante eliminado", fiber.Map{"id": id})
}
