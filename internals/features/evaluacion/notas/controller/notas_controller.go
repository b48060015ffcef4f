package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	notasDTO "docentia_backend/internals/features/evaluacion/notas/dto"
	notasModel "docentia_backend/internals/features/evaluacion/notas/model"
	helper "docentia_backend/internals/helpers"
)

type NotasController struct {
	DB *gorm.DB
}

var validate = validator.New()

// REGISTRO DE NOTAS — upsert por clave natural (estudiante, actividad).
// Nunca se duplica la fila: el conflicto actualiza puntaje y updated_at.
// POST /api/evaluacion/registroNotas
func (h *NotasController) RegistroNota(c *fiber.Ctx) error {
	var req notasDTO.RegistroNotaRequest
	if err := c.BodyParser(&req); err != nil {
		// cubre también puntaje no numérico: el decode falla antes de tocar el store
		return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición no válido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := notasModel.NotaActividadModel{
		NotaActividadEstudianteID: req.EstudianteID,
		NotaActividadActividadID:  req.ActividadID,
		NotaActividadPuntaje:      *req.Puntaje,
	}
	if err := h.DB.
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "nota_actividad_estudiante_id"},
				{Name: "nota_actividad_actividad_id"},
			},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"nota_actividad_puntaje":    *req.Puntaje,
				"nota_actividad_updated_at": time.Now(),
			}),
		}).
		Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo registrar la nota")
	}

	return helper.JsonOK(c, "Nota registrada", fiber.Map{
		"estudianteId": req.EstudianteID,
		"actividadId":  req.ActividadID,
		"puntaje":      *req.Puntaje,
	})
}

// PROMEDIO PARCIAL — upsert por tupla exacta (incluidos los NULL), por eso
// la búsqueda es explícita y no un ON CONFLICT (en Postgres los NULL no
// colisionan en un índice único ordinario). El promedio llega calculado
// por el cliente y se persiste tal cual.
// POST /api/evaluacion/promedioParcial
func (h *NotasController) GuardarPromedioParcial(c *fiber.Ctx) error {
	var req notasDTO.PromedioParcialRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición no válido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if !notasModel.TipoPromedioValido(req.Tipo) {
		return fiber.NewError(fiber.StatusBadRequest, "Tipo de promedio no válido")
	}

	guardar := func() (notasModel.PromedioParcialModel, error) {
		var out notasModel.PromedioParcialModel
		err := h.DB.Transaction(func(tx *gorm.DB) error {
			var existente notasModel.PromedioParcialModel
			err := tuplaPromedio(tx, req).First(&existente).Error
			switch {
			case err == nil:
				existente.PromedioParcialPromedio = *req.Promedio
				if err := tx.Save(&existente).Error; err != nil {
					return err
				}
				out = existente
				return nil
			case errors.Is(err, gorm.ErrRecordNotFound):
				nuevo := notasModel.PromedioParcialModel{
					PromedioParcialEstudianteID:  req.EstudianteID,
					PromedioParcialAsignaturaID:  req.AsignaturaID,
					PromedioParcialTipo:          req.Tipo,
					PromedioParcialCompetenciaID: req.CompetenciaID,
					PromedioParcialCriterioID:    req.CriterioID,
					PromedioParcialEvidenciaID:   req.EvidenciaID,
					PromedioParcialPromedio:      *req.Promedio,
				}
				if err := tx.Create(&nuevo).Error; err != nil {
					return err
				}
				out = nuevo
				return nil
			default:
				return err
			}
		})
		return out, err
	}

	out, err := guardar()
	if err != nil && helper.IsUniqueViolation(err) {
		// otra escritura insertó la tupla entre la búsqueda y el alta;
		// el reintento la encuentra y actualiza
		out, err = guardar()
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo guardar el promedio")
	}

	return helper.JsonOK(c, "Promedio guardado", fiber.Map{"promedio": out})
}

// tuplaPromedio arma la búsqueda por tupla exacta, NULL incluidos.
func tuplaPromedio(tx *gorm.DB, req notasDTO.PromedioParcialRequest) *gorm.DB {
	q := tx.Where(
		"promedio_parcial_estudiante_id = ? AND promedio_parcial_asignatura_id = ? AND promedio_parcial_tipo = ?",
		req.EstudianteID, req.AsignaturaID, req.Tipo,
	)
	q = whereNullable(q, "promedio_parcial_competencia_id", req.CompetenciaID)
	q = whereNullable(q, "promedio_parcial_criterio_id", req.CriterioID)
	q = whereNullable(q, "promedio_parcial_evidencia_id", req.EvidenciaID)
	return q
}

// LISTADO de promedios de una asignatura con nombres unidos.
// GET /api/evaluacion/promedioParcial?asignaturaId=
func (h *NotasController) ListarPromediosParciales(c *fiber.Ctx) error {
	asignaturaID, err := uuid.Parse(strings.TrimSpace(c.Query("asignaturaId")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "asignaturaId es obligatorio")
	}

	paging := helper.ResolvePaging(c, 100, 500)

	var total int64
	if err := h.DB.Model(&notasModel.PromedioParcialModel{}).
		Where("promedio_parcial_asignatura_id = ?", asignaturaID).
		Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron contar los promedios")
	}

	var rows []notasDTO.PromedioParcialRow
	if err := h.DB.
		Model(&notasModel.PromedioParcialModel{}).
		Select(`promedios_parciales.*,
			estudiantes.estudiante_nombre, estudiantes.estudiante_apellidos,
			competencias.competencia_nombre,
			criterios.criterio_nombre,
			evidencias.evidencia_nombre`).
		Joins("JOIN estudiantes ON estudiantes.estudiante_id = promedios_parciales.promedio_parcial_estudiante_id").
		Joins("LEFT JOIN competencias ON competencias.competencia_id = promedios_parciales.promedio_parcial_competencia_id").
		Joins("LEFT JOIN criterios ON criterios.criterio_id = promedios_parciales.promedio_parcial_criterio_id").
		Joins("LEFT JOIN evidencias ON evidencias.evidencia_id = promedios_parciales.promedio_parcial_evidencia_id").
		Where("promedio_parcial_asignatura_id = ?", asignaturaID).
		Order("estudiantes.estudiante_apellidos ASC, promedios_parciales.promedio_parcial_tipo ASC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Scan(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron listar los promedios")
	}

	return helper.JsonOK(c, "", fiber.Map{
		"promedios":  rows,
		"pagination": helper.BuildPagination(total, paging.Page, paging.PerPage),
	})
}

// NOTA FINAL — upsert por existencia: una fila por estudiante.
// POST /api/evaluacion/notaFinal
func (h *NotasController) GuardarNotaFinal(c *fiber.Ctx) error {
	var req notasDTO.NotaFinalRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición no válido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var out notasModel.NotaFinalModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var existente notasModel.NotaFinalModel
		err := tx.Where("nota_final_estudiante_id = ?", req.EstudianteID).First(&existente).Error
		switch {
		case err == nil:
			existente.NotaFinalNota = *req.NotaFinal
			existente.NotaFinalSegundoTurno = req.NotaSegundoTurno
			if err := tx.Save(&existente).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "No se pudo actualizar la nota final")
			}
			out = existente
			return nil
		case errors.Is(err, gorm.ErrRecordNotFound):
			nueva := notasModel.NotaFinalModel{
				NotaFinalEstudianteID: req.EstudianteID,
				NotaFinalNota:         *req.NotaFinal,
				NotaFinalSegundoTurno: req.NotaSegundoTurno,
			}
			if err := tx.Create(&nueva).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "No se pudo guardar la nota final")
			}
			out = nueva
			return nil
		default:
			return fiber.NewError(fiber.StatusInternalServerError, "Error al consultar la nota final")
		}
	}); err != nil {
		return err
	}

	return helper.JsonOK(c, "Nota final guardada", fiber.Map{"notaFinal": out})
}

// whereNullable añade "col = ?" o "col IS NULL" según el puntero.
func whereNullable(q *gorm.DB, col string, id *uuid.UUID) *gorm.DB {
	if id != nil {
		return q.Where(col+" = ?", *id)
	}
	return q.Where(col + " IS NULL")
}
