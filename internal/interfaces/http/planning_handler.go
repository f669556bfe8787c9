package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Planificador-api/internal/application/dto"
	"github.com/jhoicas/Planificador-api/internal/application/planning"
	"github.com/jhoicas/Planificador-api/internal/application/usecase"
	"github.com/jhoicas/Planificador-api/internal/domain"
)

// PlanningHandler maneja la grilla de planificación: matriz, edición de
// celdas y lecturas del calendario y de los hechos canónicos (protegido).
type PlanningHandler struct {
	matrixUC *planning.MatrixUseCase
	dataUC   *usecase.PlanningDataUseCase
}

// NewPlanningHandler construye el handler.
func NewPlanningHandler(matrixUC *planning.MatrixUseCase, dataUC *usecase.PlanningDataUseCase) *PlanningHandler {
	return &PlanningHandler{matrixUC: matrixUC, dataUC: dataUC}
}

// GetMatrix godoc
// @Summary      Matriz de planificación (tienda × SKU, acotada)
// @Tags         planning
// @Security     Bearer
// @Produce      json
// @Param        maxRows  query  int  false  "Tope de filas para esta llamada"
// @Success      200      {object}  dto.MatrixResponse
// @Router       /api/planning/matrix [get]
func (h *PlanningHandler) GetMatrix(c *fiber.Ctx) error {
	// -1 = usar el tope configurado; 0 es válido y produce cero filas.
	maxRows := c.QueryInt("maxRows", -1)
	return c.JSON(h.matrixUC.BuildMatrix(maxRows))
}

// EditCell godoc
// @Summary      Editar la celda de unidades de una fila/semana
// @Tags         planning
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EditCellRequest  true  "Celda a editar"
// @Success      200   {object}  dto.EditCellResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/planning/cells [patch]
func (h *PlanningHandler) EditCell(c *fiber.Ctx) error {
	var in dto.EditCellRequest
	if err := c.BodyParser(&in); err != nil {
		// Valor no numérico u otro cuerpo malformado: se rechaza y la celda
		// del cliente revierte, sin cambio de estado.
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.matrixUC.EditCell(in)
	if err != nil {
		var stale *domain.StaleRowError
		switch {
		case errors.As(err, &stale):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "STALE_ROW", Message: stale.Error()})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "store, sku, week y salesUnits >= 0 son requeridos"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(out)
}

// ListWeeks godoc
// @Summary      Calendario semanal
// @Tags         planning
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.WeekListResponse
// @Router       /api/calendar/weeks [get]
func (h *PlanningHandler) ListWeeks(c *fiber.Ctx) error {
	return c.JSON(h.dataUC.ListWeeks())
}

// ListFacts godoc
// @Summary      Hechos canónicos de planificación
// @Tags         planning
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PlanningFactListResponse
// @Router       /api/planning/facts [get]
func (h *PlanningHandler) ListFacts(c *fiber.Ctx) error {
	return c.JSON(h.dataUC.ListFacts())
}
