package planning_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appplanning "github.com/jhoicas/Planificador-api/internal/application/planning"
	"github.com/jhoicas/Planificador-api/internal/application/state"
	"github.com/jhoicas/Planificador-api/internal/domain"
	"github.com/jhoicas/Planificador-api/internal/domain/entity"
	"github.com/jhoicas/Planificador-api/internal/infrastructure/memstore"
)

// seedChartContainer arma dos semanas y dos SKUs con ventas desiguales en la
// primera semana, para distinguir sumar-luego-dividir del promedio de
// porcentajes. Las semanas se cargan fuera de orden cronológico a propósito.
func seedChartContainer(t *testing.T) *state.Container {
	t.Helper()
	c := state.New(&memstore.StoreRepo{}, &memstore.SKURepo{}, &memstore.WeekRepo{}, &memstore.PlanningRepo{})

	stores := []entity.Store{{SeqNo: 1, ID: "ST001", Label: "Norte"}}
	skus := []entity.SKU{
		{ID: "SK001", Label: "Camisa", Price: decimal.RequireFromString("10.00"), Cost: decimal.RequireFromString("9.00")},
		{ID: "SK002", Label: "Gorra", Price: decimal.RequireFromString("10.00"), Cost: decimal.Zero},
	}
	weeks := []entity.Week{
		{SeqNo: 2, ID: "W02", Label: "Semana 2", Month: "M01", MonthLabel: "Feb"},
		{SeqNo: 1, ID: "W01", Label: "Semana 1", Month: "M01", MonthLabel: "Feb"},
	}
	facts := []entity.PlanningFact{
		// W01: 300 de ventas al 10% + 100 de ventas al 100%.
		{Store: "ST001", SKU: "SK001", Week: "W01", SalesUnits: 30},
		{Store: "ST001", SKU: "SK002", Week: "W01", SalesUnits: 10},
	}
	require.NoError(t, c.ReplaceAll(stores, skus, weeks, facts))
	return c
}

func TestChartSeries_SumarLuegoDividirPorSemana(t *testing.T) {
	c := seedChartContainer(t)
	uc := appplanning.NewChartUseCase(c)

	resp, err := uc.Series("ST001")
	require.NoError(t, err)
	require.Len(t, resp.Points, 2, "un punto por semana, siempre")

	// W01: margen total 30 + 100 = 130; porcentaje 130/400 = 32.5, no el
	// promedio 55 de los porcentajes por hecho.
	w1 := resp.Points[0]
	assert.Equal(t, "Semana 1", w1.WeekLabel)
	assert.True(t, w1.GMDollars.Equal(decimal.NewFromInt(130)),
		"GMDollars de W01 debe ser 130, obtuvo %s", w1.GMDollars)
	assert.True(t, w1.GMPercentage.Equal(decimal.RequireFromString("32.5")),
		"GMPercentage de W01 debe ser 32.5, obtuvo %s", w1.GMPercentage)
}

func TestChartSeries_OrdenPorSeqNoYSemanasSinHechos(t *testing.T) {
	c := seedChartContainer(t)
	uc := appplanning.NewChartUseCase(c)

	resp, err := uc.Series("ST001")
	require.NoError(t, err)

	// Las semanas se cargaron con W02 primero; la serie sale por SeqNo.
	assert.Equal(t, "Semana 1", resp.Points[0].WeekLabel)
	assert.Equal(t, "Semana 2", resp.Points[1].WeekLabel)

	// W02 no tiene hechos: punto en cero, no se omite.
	w2 := resp.Points[1]
	assert.True(t, w2.GMDollars.IsZero())
	assert.True(t, w2.GMPercentage.IsZero())
}

func TestChartSeries_ReferenciaColganteSeIgnora(t *testing.T) {
	c := seedChartContainer(t)
	require.NoError(t, c.UpsertFact(entity.PlanningFact{Store: "ST001", SKU: "SK002", Week: "W02", SalesUnits: 4}))
	// Eliminar el SKU deja el hecho huérfano; el gráfico lo salta sin fallar.
	require.NoError(t, c.CompareAndSetSKUs(c.Revision(), []entity.SKU{
		{ID: "SK001", Label: "Camisa", Price: decimal.RequireFromString("10.00"), Cost: decimal.RequireFromString("9.00")},
	}))

	uc := appplanning.NewChartUseCase(c)
	resp, err := uc.Series("ST001")
	require.NoError(t, err)

	assert.True(t, resp.Points[1].GMDollars.IsZero(),
		"un hecho con SKU inexistente se proyecta como cero")
}

func TestChartSeries_TiendaDesconocida(t *testing.T) {
	c := seedChartContainer(t)
	uc := appplanning.NewChartUseCase(c)

	_, err := uc.Series("ST404")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
