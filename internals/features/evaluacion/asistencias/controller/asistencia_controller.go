package controller

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	estudianteModel "docentia_backend/internals/features/academico/estudiantes/model"
	asistenciaDTO "docentia_backend/internals/features/evaluacion/asistencias/dto"
	asistenciaModel "docentia_backend/internals/features/evaluacion/asistencias/model"
	helper "docentia_backend/internals/helpers"
)

type AsistenciaController struct {
	DB *gorm.DB
}

var validate = validator.New()

// REGISTRO DE ASISTENCIA — upsert del par (estudiante, clase) + recálculo
// del porcentaje del estudiante, todo dentro de una transacción: dos
// escrituras concurrentes sobre el mismo estudiante no pueden dejar un
// porcentaje desfasado (lost update).
// POST /api/evaluacion/registroAsistencia
func (h *AsistenciaController) RegistroAsistencia(c *fiber.Ctx) error {
	var req asistenciaDTO.RegistroAsistenciaRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición no válido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var porcentaje float64
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		// 1) estudiante y su asignatura
		var est estudianteModel.EstudianteModel
		if err := tx.Where("estudiante_id = ?", req.EstudianteID).First(&est).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Estudiante no encontrado")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Error al consultar el estudiante")
		}

		// 2) upsert del par (estudiante, clase)
		a := asistenciaModel.AsistenciaModel{
			AsistenciaEstudianteID: req.EstudianteID,
			AsistenciaClaseID:      req.ClaseID,
			AsistenciaPresente:     *req.Presente,
		}
		if err := tx.
			Clauses(clause.OnConflict{
				Columns: []clause.Column{
					{Name: "asistencia_estudiante_id"},
					{Name: "asistencia_clase_id"},
				},
				DoUpdates: clause.Assignments(map[string]interface{}{
					"asistencia_presente":   *req.Presente,
					"asistencia_updated_at": time.Now(),
				}),
			}).
			Create(&a).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo registrar la asistencia")
		}

		// 3) total de clases no eliminadas de la asignatura
		var totalClases int64
		if err := tx.Table("clases").
			Where("clase_asignatura_id = ? AND clase_deleted_at IS NULL", est.EstudianteAsignaturaID).
			Count(&totalClases).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Error al contar las clases")
		}

		// 4) presentes del estudiante restringidos a esas clases
		var presentes int64
		if err := tx.Table("asistencias").
			Joins("JOIN clases ON clases.clase_id = asistencias.asistencia_clase_id").
			Where(`asistencias.asistencia_estudiante_id = ?
				AND asistencias.asistencia_presente = ?
				AND asistencias.asistencia_deleted_at IS NULL
				AND clases.clase_asignatura_id = ?
				AND clases.clase_deleted_at IS NULL`,
				req.EstudianteID, true, est.EstudianteAsignaturaID).
			Count(&presentes).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Error al contar las asistencias")
		}

		// 5) porcentaje a 2 decimales; 0 si no hay clases
		if totalClases > 0 {
			porcentaje = math.Round(float64(presentes)/float64(totalClases)*100*100) / 100
		}

		// 6) denormalizar en la fila del estudiante
		if err := tx.Model(&estudianteModel.EstudianteModel{}).
			Where("estudiante_id = ?", req.EstudianteID).
			Update("estudiante_porcentaje_asistencia", porcentaje).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo actualizar el porcentaje")
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonOK(c, "Asistencia registrada", fiber.Map{"porcentaje": porcentaje})
}

// LISTADO por clase con el nombre del estudiante unido.
// GET /api/evaluacion/registroAsistencia?claseId=
func (h *AsistenciaController) ListarPorClase(c *fiber.Ctx) error {
	claseID, err := uuid.Parse(strings.TrimSpace(c.Query("claseId")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "claseId es obligatorio")
	}

	paging := helper.ResolvePaging(c, 100, 500)

	var total int64
	if err := h.DB.Model(&asistenciaModel.AsistenciaModel{}).
		Where("asistencia_clase_id = ?", claseID).
		Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron contar las asistencias")
	}

	var rows []asistenciaDTO.AsistenciaRow
	if err := h.DB.
		Model(&asistenciaModel.AsistenciaModel{}).
		Select(`asistencias.*,
			estudiantes.estudiante_nombre, estudiantes.estudiante_apellidos`).
		Joins("JOIN estudiantes ON estudiantes.estudiante_id = asistencias.asistencia_estudiante_id").
		Where("asistencia_clase_id = ?", claseID).
		Order("estudiantes.estudiante_apellidos ASC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Scan(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron listar las asistencias")
	}

	return helper.JsonOK(c, "", fiber.Map{
		"asistencias": rows,
		"pagination":  helper.BuildPagination(total, paging.Page, paging.PerPage),
	})
}
