package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	semestreDTO "docentia_backend/internals/features/academico/semestres/dto"
	semestreModel "docentia_backend/internals/features/academico/semestres/model"
	helper "docentia_backend/internals/helpers"
)

type SemestreController struct {
	DB *gorm.DB
}

var validate = validator.New()

// CREATE
// POST /api/semestres
func (h *SemestreController) Create(c *fiber.Ctx) error {
	usuarioID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req semestreDTO.CreateSemestreRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición no válido")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel(usuarioID)
	if err := h.DB.Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo crear el semestre")
	}

	return helper.JsonCreated(c, "Semestre creado", fiber.Map{"semestre": semestreDTO.FromSemestreModel(m)})
}

// LIST
// GET /api/semestres
func (h *SemestreController) List(c *fiber.Ctx) error {
	usuarioID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var list []semestreModel.SemestreModel
	if err := h.DB.
		Where("semestre_usuario_id = ?", usuarioID).
		Order("semestre_created_at DESC").
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron listar los semestres")
	}

	return helper.JsonOK(c, "", fiber.Map{"semestres": semestreDTO.FromSemestreModels(list)})
}

// GET BY ID
// GET /api/semestres/:id[?with_deleted=true]
func (h *SemestreController) Get(c *fiber.Ctx) error {
	usuarioID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID no válido")
	}

	q := h.DB
	if strings.EqualFold(c.Query("with_deleted"), "true") {
		// incluir filas con baja lógica (consulta de auditoría)
		q = q.Unscoped()
	}

	var m semestreModel.SemestreModel
	if err := q.
		Where("semestre_id = ? AND semestre_usuario_id = ?", id, usuarioID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Semestre no encontrado")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Error al consultar el semestre")
	}

	return helper.JsonOK(c, "", fiber.Map{"semestre": semestreDTO.FromSemestreModel(m)})
}

// UPDATE (todos los campos editables)
// PUT /api/semestres/:id
func (h *SemestreController) Update(c *fiber.Ctx) error {
	usuarioID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID no válido")
	}

	var req semestreDTO.UpdateSemestreRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición no válido")
	}
	req.Nombre = strings.TrimSpace(req.Nombre)
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m semestreModel.SemestreModel
	if err := h.DB.
		Where("semestre_id = ? AND semestre_usuario_id = ?", id, usuarioID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Semestre no encontrado")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Error al consultar el semestre")
	}

	m.SemestreNombre = req.Nombre
	m.SemestrePeriodo = req.Periodo
	if err := h.DB.Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo actualizar el semestre")
	}

	return helper.JsonUpdated(c, "Semestre actualizado", fiber.Map{"semestre": semestreDTO.FromSemestreModel(m)})
}

// SOFT DELETE
// DELETE /api/semestres/:id
func (h *SemestreController) Delete(c *fiber.Ctx) error {
	usuarioID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID no válido")
	}

	res := h.DB.
		Where("semestre_id = ? AND semestre_usuario_id = ?", id, usuarioID).
		Delete(&semestreModel.SemestreModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo eliminar el semestre")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Semestre no encontrado")
	}

	return helper.JsonDeleted(c, "Semestre eliminado", fiber.Map{"id": id})
}

// ACTIVAR — a lo sumo un semestre activo por usuario.
// El "desmarcar todos + marcar uno" va en una sola transacción para
// cerrar la ventana de carrera entre dos activaciones concurrentes.
// PUT /api/semestres/activar/:id
func (h *SemestreController) Activar(c *fiber.Ctx) error {
	usuarioID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID no válido")
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&semestreModel.SemestreModel{}).
			Where("semestre_id = ? AND semestre_usuario_id = ?", id, usuarioID).
			Update("semestre_activo", true)
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo activar el semestre")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Semestre no encontrado")
		}

		if err := tx.Model(&semestreModel.SemestreModel{}).
			Where("semestre_usuario_id = ? AND semestre_id <> ?", usuarioID, id).
			Update("semestre_activo", false).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo desactivar el resto de semestres")
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonUpdated(c, "Semestre activado", fiber.Map{"id": id})
}
