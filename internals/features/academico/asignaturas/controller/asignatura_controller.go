package controller

import (
	"errors"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	asignaturaDTO "docentia_backend/internals/features/academico/asignaturas/dto"
	asignaturaModel "docentia_backend/internals/features/academico/asignaturas/model"
	rubricaModel "docentia_backend/internals/features/academico/rubrica/model"
	semestreModel "docentia_backend/internals/features/academico/semestres/model"
	helper "docentia_backend/internals/helpers"
)

type AsignaturaController struct {
	DB *gorm.DB
}

var validate = validator.New()

// comprueba que el semestre pertenece al usuario del token
func (h *AsignaturaController) semestreDelUsuario(semestreID, usuarioID uuid.UUID) error {
	var cnt int64
	if err := h.DB.Model(&semestreModel.SemestreModel{}).
		Where("semestre_id = ? AND semestre_usuario_id = ?", semestreID, usuarioID).
		Count(&cnt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error al comprobar el semestre")
	}
	if cnt == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Semestre no encontrado")
	}
	return nil
}

// CREATE
// POST /api/asignaturas
func (h *AsignaturaController) Create(c *fiber.Ctx) error {
	usuarioID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req asignaturaDTO.CreateAsignaturaRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición no válido")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if err := h.semestreDelUsuario(req.SemestreID, usuarioID); err != nil {
		return err
	}

	m := req.ToModel()
	if err := h.DB.Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo crear la asignatura")
	}

	return helper.JsonCreated(c, "Asignatura creada", fiber.Map{"asignatura": asignaturaDTO.FromAsignaturaModel(m)})
}

// LIST por semestre
// GET /api/asignaturas?semestreId=
func (h *AsignaturaController) List(c *fiber.Ctx) error {
	usuarioID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	semestreID, err := uuid.Parse(strings.TrimSpace(c.Query("semestreId")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "semestreId es obligatorio")
	}
	if err := h.semestreDelUsuario(semestreID, usuarioID); err != nil {
		return err
	}

	var list []asignaturaModel.AsignaturaModel
	if err := h.DB.
		Where("asignatura_semestre_id = ?", semestreID).
		Order("asignatura_created_at ASC").
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron listar las asignaturas")
	}

	return helper.JsonOK(c, "", fiber.Map{"asignaturas": asignaturaDTO.FromAsignaturaModels(list)})
}

// GET BY ID
// GET /api/asignaturas/:id[?with_deleted=true]
func (h *AsignaturaController) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID no válido")
	}

	q := h.DB
	if strings.EqualFold(c.Query("with_deleted"), "true") {
		q = q.Unscoped()
	}

	var m asignaturaModel.AsignaturaModel
	if err := q.Where("asignatura_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Asignatura no encontrada")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Error al consultar la asignatura")
	}

	return helper.JsonOK(c, "", fiber.Map{"asignatura": asignaturaDTO.FromAsignaturaModel(m)})
}

// UPDATE
// PUT /api/asignaturas/:id
func (h *AsignaturaController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID no válido")
	}

	var req asignaturaDTO.UpdateAsignaturaRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición no válido")
	}
	req.Nombre = strings.TrimSpace(req.Nombre)
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m asignaturaModel.AsignaturaModel
	if err := h.DB.Where("asignatura_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Asignatura no encontrada")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Error al consultar la asignatura")
	}

	m.AsignaturaNombre = req.Nombre
	m.AsignaturaCodigo = req.Codigo
	if err := h.DB.Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo actualizar la asignatura")
	}

	return helper.JsonUpdated(c, "Asignatura actualizada", fiber.Map{"asignatura": asignaturaDTO.FromAsignaturaModel(m)})
}

// SOFT DELETE
// DELETE /api/asignaturas/:id
func (h *AsignaturaController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID no válido")
	}

	res := h.DB.Where("asignatura_id = ?", id).Delete(&asignaturaModel.AsignaturaModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "No se pudo eliminar la asignatura")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Asignatura no encontrada")
	}

	return helper.JsonDeleted(c, "Asignatura eliminada", fiber.Map{"id": id})
}

// SELECCIONAR — a lo sumo una asignatura seleccionada por semestre.
// Desmarcar hermanas + marcar la elegida en una sola transacción
// (dos selecciones concurrentes no pueden dejar cero o dos marcadas).
// PUT /api/asignaturas/seleccionar/:id  body {semestreId}
func (h *AsignaturaController) Seleccionar(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID no válido")
	}

	var req asignaturaDTO.SeleccionarAsignaturaRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición no válido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&asignaturaModel.AsignaturaModel{}).
			Where("asignatura_id = ? AND asignatura_semestre_id = ?", id, req.SemestreID).
			Update("asignatura_seleccionada", true)
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo seleccionar la asignatura")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Asignatura no encontrada en ese semestre")
		}

		if err := tx.Model(&asignaturaModel.AsignaturaModel{}).
			Where("asignatura_semestre_id = ? AND asignatura_id <> ?", req.SemestreID, id).
			Update("asignatura_seleccionada", false).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo desmarcar el resto de asignaturas")
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonUpdated(c, "Asignatura seleccionada", fiber.Map{"id": id})
}

// pesoCompleto tolera el redondeo acumulado de pesos como 33.33+33.33+33.34.
func pesoCompleto(suma float64) bool {
	return math.Abs(suma-100) < 1e-9
}

// PESOS — suma de porcentajes por nivel de la rúbrica.
// Solo informa; la suma distinta de 100 no bloquea ninguna escritura.
// GET /api/asignaturas/:id/pesos
func (h *AsignaturaController) Pesos(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID no válido")
	}

	var asig asignaturaModel.AsignaturaModel
	if err := h.DB.Where("asignatura_id = ?", id).First(&asig).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Asignatura no encontrada")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Error al consultar la asignatura")
	}

	pesos := make([]asignaturaDTO.PesoNivel, 0, 8)

	// nivel competencias (suma bajo la asignatura)
	var competencias []rubricaModel.CompetenciaModel
	if err := h.DB.
		Where("competencia_asignatura_id = ?", id).
		Find(&competencias).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error al consultar la rúbrica")
	}

	sumaComp := 0.0
	for _, comp := range competencias {
		sumaComp += comp.CompetenciaPorcentaje
	}
	pesos = append(pesos, asignaturaDTO.PesoNivel{
		Nivel:     "competencias",
		PadreID:   asig.AsignaturaID,
		PadreName: asig.AsignaturaNombre,
		Suma:      sumaComp,
		Completo:  pesoCompleto(sumaComp),
	})

	// nivel criterios (una suma por competencia)
	for _, comp := range competencias {
		var criterios []rubricaModel.CriterioModel
		if err := h.DB.
			Where("criterio_competencia_id = ?", comp.CompetenciaID).
			Find(&criterios).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Error al consultar la rúbrica")
		}
		suma := 0.0
		for _, cr := range criterios {
			suma += cr.CriterioPorcentaje
		}
		pesos = append(pesos, asignaturaDTO.PesoNivel{
			Nivel:     "criterios",
			PadreID:   comp.CompetenciaID,
			PadreName: comp.CompetenciaNombre,
			Suma:      suma,
			Completo:  pesoCompleto(suma),
		})
	}

	return helper.JsonOK(c, "", fiber.Map{"pesos": pesos})
}
