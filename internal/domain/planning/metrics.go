// Package planning contiene los servicios de dominio del plan comercial:
// el cálculo de métricas derivadas compartido por la grilla y el gráfico.
package planning

import "github.com/shopspring/decimal"

// DerivedMetrics son las métricas calculadas a partir de unidades, precio y
// costo. Nunca se persisten: se derivan cada vez desde los hechos canónicos.
type DerivedMetrics struct {
	SalesDollars decimal.Decimal
	GMDollars    decimal.Decimal
	GMPercentage decimal.Decimal
}

var hundred = decimal.NewFromInt(100)

// Derive implementa la fórmula única de margen bruto:
//
//	SalesDollars = SalesUnits * Price
//	GMDollars    = SalesDollars - SalesUnits * Cost
//	GMPercentage = SalesDollars > 0 ? 100 * GMDollars / SalesDollars : 0
//
// Con cero dólares de venta el porcentaje es 0, nunca NaN ni infinito.
// La grilla y el gráfico usan exactamente esta función.
func Derive(salesUnits int64, price, cost decimal.Decimal) DerivedMetrics {
	units := decimal.NewFromInt(salesUnits)
	salesDollars := units.Mul(price)
	gmDollars := salesDollars.Sub(units.Mul(cost))

	gmPct := decimal.Zero
	if salesDollars.GreaterThan(decimal.Zero) {
		gmPct = gmDollars.Div(salesDollars).Mul(hundred)
	}

	return DerivedMetrics{
		SalesDollars: salesDollars,
		GMDollars:    gmDollars,
		GMPercentage: gmPct,
	}
}

// GMPercentageFromTotals calcula el porcentaje de margen a nivel agregado a
// partir de dólares ya sumados (sumar y luego dividir). Promediar porcentajes
// por hecho daría una agregación distinta e incorrecta.
func GMPercentageFromTotals(totalSalesDollars, totalGMDollars decimal.Decimal) decimal.Decimal {
	if totalSalesDollars.GreaterThan(decimal.Zero) {
		return totalGMDollars.Div(totalSalesDollars).Mul(hundred)
	}
	return decimal.Zero
}
