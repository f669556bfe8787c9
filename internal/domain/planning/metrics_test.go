package planning_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Planificador-api/internal/domain/planning"
)

// ──────────────────────────────────────────────────────────────────────────────
// Vectores de la fórmula de margen, calculados a mano:
//
//	10 unidades × $25.00 precio, $15.00 costo
//	  SalesDollars = 250.00
//	  GMDollars    = 250.00 - 150.00 = 100.00
//	  GMPercentage = 100 * 100.00 / 250.00 = 40
//
// La grilla y el gráfico comparten esta función: cualquier cambio en la
// concatenación de la fórmula rompe estos vectores de inmediato.
// ──────────────────────────────────────────────────────────────────────────────

func TestDerive_VectorExacto(t *testing.T) {
	m := planning.Derive(10, decimal.RequireFromString("25.00"), decimal.RequireFromString("15.00"))

	assert.True(t, m.SalesDollars.Equal(decimal.RequireFromString("250.00")),
		"SalesDollars debe ser 250.00, obtuvo %s", m.SalesDollars)
	assert.True(t, m.GMDollars.Equal(decimal.RequireFromString("100.00")),
		"GMDollars debe ser 100.00, obtuvo %s", m.GMDollars)
	assert.True(t, m.GMPercentage.Equal(decimal.NewFromInt(40)),
		"GMPercentage debe ser 40, obtuvo %s", m.GMPercentage)
}

func TestDerive_CeroUnidades(t *testing.T) {
	m := planning.Derive(0, decimal.RequireFromString("25.00"), decimal.RequireFromString("15.00"))

	assert.True(t, m.SalesDollars.IsZero(), "sin unidades no hay dólares de venta")
	assert.True(t, m.GMDollars.IsZero(), "sin unidades no hay margen en dólares")
	assert.True(t, m.GMPercentage.IsZero(), "el porcentaje con venta cero es 0, nunca NaN")
}

func TestDerive_PrecioCero(t *testing.T) {
	// Precio 0 con costo positivo: margen negativo pero porcentaje 0 porque
	// los dólares de venta no son positivos.
	m := planning.Derive(5, decimal.Zero, decimal.RequireFromString("3.00"))

	assert.True(t, m.SalesDollars.IsZero())
	assert.True(t, m.GMDollars.Equal(decimal.RequireFromString("-15.00")),
		"GMDollars debe ser -15.00, obtuvo %s", m.GMDollars)
	assert.True(t, m.GMPercentage.IsZero(),
		"con SalesDollars <= 0 el porcentaje es 0 por definición")
}

func TestDerive_MargenNegativo(t *testing.T) {
	// Costo por encima del precio: el porcentaje sale negativo, no se recorta.
	m := planning.Derive(4, decimal.RequireFromString("10.00"), decimal.RequireFromString("12.50"))

	require.True(t, m.SalesDollars.Equal(decimal.RequireFromString("40.00")))
	assert.True(t, m.GMDollars.Equal(decimal.RequireFromString("-10.00")))
	assert.True(t, m.GMPercentage.Equal(decimal.NewFromInt(-25)),
		"GMPercentage debe ser -25, obtuvo %s", m.GMPercentage)
}

// TestGMPercentageFromTotals_SumarLuegoDividir valida que el porcentaje
// agregado se calcula sobre los totales y no como promedio de porcentajes.
//
//	Hecho A: 30 u × $10.00, costo $9.00  -> ventas 300, margen 30  (10%)
//	Hecho B: 10 u × $10.00, costo $0.00  -> ventas 100, margen 100 (100%)
//
// Promediar porcentajes daría 55%; el resultado correcto sobre los totales
// es 130/400 = 32.5%.
func TestGMPercentageFromTotals_SumarLuegoDividir(t *testing.T) {
	a := planning.Derive(30, decimal.RequireFromString("10.00"), decimal.RequireFromString("9.00"))
	b := planning.Derive(10, decimal.RequireFromString("10.00"), decimal.Zero)

	totalSales := a.SalesDollars.Add(b.SalesDollars)
	totalGM := a.GMDollars.Add(b.GMDollars)

	require.True(t, totalSales.Equal(decimal.NewFromInt(400)))
	require.True(t, totalGM.Equal(decimal.NewFromInt(130)))

	pct := planning.GMPercentageFromTotals(totalSales, totalGM)
	assert.True(t, pct.Equal(decimal.RequireFromString("32.5")),
		"el porcentaje agregado debe ser 32.5, obtuvo %s", pct)
}

func TestGMPercentageFromTotals_TotalCero(t *testing.T) {
	pct := planning.GMPercentageFromTotals(decimal.Zero, decimal.Zero)
	assert.True(t, pct.IsZero(), "sin ventas el porcentaje agregado es 0")
}
