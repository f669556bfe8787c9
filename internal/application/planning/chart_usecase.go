package planning

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Planificador-api/internal/application/dto"
	"github.com/jhoicas/Planificador-api/internal/application/state"
	"github.com/jhoicas/Planificador-api/internal/domain"
	"github.com/jhoicas/Planificador-api/internal/domain/entity"
	domainplanning "github.com/jhoicas/Planificador-api/internal/domain/planning"
)

// ChartUseCase reduce los hechos canónicos a la serie semanal de una tienda
// para el gráfico. Comparte la fórmula de margen con la grilla: para los
// mismos datos ambos producen números idénticos.
type ChartUseCase struct {
	container *state.Container
}

// NewChartUseCase construye el caso de uso del gráfico.
func NewChartUseCase(container *state.Container) *ChartUseCase {
	return &ChartUseCase{container: container}
}

// Series devuelve un punto por semana para la tienda seleccionada, ordenado
// por SeqNo ascendente. Por semana se suman los dólares de venta y de margen
// de todos los hechos de la tienda (cualquier SKU) y recién entonces se
// calcula el porcentaje sobre los totales: sumar y luego dividir, no el
// promedio de porcentajes por hecho. Una semana sin hechos aporta un punto en
// cero, nunca se omite.
func (uc *ChartUseCase) Series(storeID string) (*dto.ChartSeriesResponse, error) {
	snap := uc.container.Snapshot()

	found := false
	for _, s := range snap.Stores {
		if s.ID == storeID {
			found = true
			break
		}
	}
	if !found {
		return nil, domain.ErrNotFound
	}

	skuByID := make(map[string]entity.SKU, len(snap.SKUs))
	for _, k := range snap.SKUs {
		skuByID[k.ID] = k
	}

	// Hechos de la tienda agrupados por semana.
	factsByWeek := make(map[string][]entity.PlanningFact)
	for _, f := range snap.Facts {
		if f.Store == storeID {
			factsByWeek[f.Week] = append(factsByWeek[f.Week], f)
		}
	}

	weeks := append([]entity.Week(nil), snap.Weeks...)
	sort.SliceStable(weeks, func(i, j int) bool { return weeks[i].SeqNo < weeks[j].SeqNo })

	points := make([]dto.ChartPoint, 0, len(weeks))
	for _, week := range weeks {
		totalSales, totalGM := decimal.Zero, decimal.Zero
		for _, f := range factsByWeek[week.ID] {
			sku, ok := skuByID[f.SKU]
			if !ok {
				continue // referencia colgante: precio y costo desconocidos
			}
			m := domainplanning.Derive(f.SalesUnits, sku.Price, sku.Cost)
			totalSales = totalSales.Add(m.SalesDollars)
			totalGM = totalGM.Add(m.GMDollars)
		}
		points = append(points, dto.ChartPoint{
			WeekLabel:    week.Label,
			GMDollars:    totalGM,
			GMPercentage: domainplanning.GMPercentageFromTotals(totalSales, totalGM),
		})
	}

	return &dto.ChartSeriesResponse{StoreID: storeID, Points: points}, nil
}
