package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Planificador-api/internal/application/dto"
	"github.com/jhoicas/Planificador-api/internal/application/planning"
	"github.com/jhoicas/Planificador-api/internal/domain"
)

// ChartHandler maneja la serie agregada por tienda para el gráfico (protegido).
type ChartHandler struct {
	uc *planning.ChartUseCase
}

// NewChartHandler construye el handler.
func NewChartHandler(uc *planning.ChartUseCase) *ChartHandler {
	return &ChartHandler{uc: uc}
}

// Series godoc
// @Summary      Serie semanal de margen por tienda
// @Tags         charts
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la tienda"
// @Success      200  {object}  dto.ChartSeriesResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/charts/stores/{id} [get]
func (h *ChartHandler) Series(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.Series(id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tienda no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
