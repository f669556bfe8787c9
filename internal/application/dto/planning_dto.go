package dto

import "github.com/shopspring/decimal"

// ImportWarnings conteos de advertencias no fatales del parseo: filas con id
// vacío que se conservan pero se reportan.
type ImportWarnings struct {
	EmptyStoreIDs int `json:"emptyStoreIds"`
	EmptySKUIDs   int `json:"emptySkuIds"`
	EmptyWeekIDs  int `json:"emptyWeekIds"`
}

// ImportResponse resumen de una importación confirmada.
type ImportResponse struct {
	ImportID      string         `json:"importId"`
	Stores        int            `json:"stores"`
	SKUs          int            `json:"skus"`
	Weeks         int            `json:"weeks"`
	PlanningFacts int            `json:"planningFacts"`
	Warnings      ImportWarnings `json:"warnings"`
}

// WeekResponse representación de una semana del calendario.
type WeekResponse struct {
	SeqNo      int    `json:"seqNo"`
	ID         string `json:"id"`
	Label      string `json:"label"`
	Month      string `json:"month"`
	MonthLabel string `json:"monthLabel"`
}

// WeekListResponse calendario completo en orden de hoja.
type WeekListResponse struct {
	Items []WeekResponse `json:"items"`
}

// PlanningFactResponse hecho canónico de planificación.
type PlanningFactResponse struct {
	Store      string `json:"store"`
	SKU        string `json:"sku"`
	Week       string `json:"week"`
	SalesUnits int64  `json:"salesUnits"`
}

// PlanningFactListResponse colección canónica completa.
type PlanningFactListResponse struct {
	Items []PlanningFactResponse `json:"items"`
}

// CellGroup es el grupo de celdas de una semana dentro de una fila: la celda
// de entrada (salesUnits) y las tres proyecciones de solo lectura.
type CellGroup struct {
	SalesUnits   int64           `json:"salesUnits"`
	SalesDollars decimal.Decimal `json:"salesDollars"`
	GMDollars    decimal.Decimal `json:"gmDollars"`
	GMPercentage decimal.Decimal `json:"gmPercentage"`
}

// MatrixRow es una fila tienda×SKU de la grilla con un grupo de celdas por
// semana (clave = id de semana).
type MatrixRow struct {
	Store      string               `json:"store"`
	StoreLabel string               `json:"storeLabel"`
	SKU        string               `json:"sku"`
	SKULabel   string               `json:"skuLabel"`
	Cells      map[string]CellGroup `json:"cells"`
}

// WeekColumn describe la columna de una semana. Las cuatro columnas hoja van
// siempre en el mismo orden fijo: salesUnits (editable), salesDollars,
// gmDollars, gmPercentage.
type WeekColumn struct {
	WeekID      string   `json:"weekId"`
	Label       string   `json:"label"`
	LeafColumns []string `json:"leafColumns"`
}

// MonthColumnGroup agrupa las columnas de semana de un mes, en el orden de
// primera aparición de las semanas.
type MonthColumnGroup struct {
	Key        string       `json:"key"` // month + " - " + monthLabel
	Month      string       `json:"month"`
	MonthLabel string       `json:"monthLabel"`
	Weeks      []WeekColumn `json:"weeks"`
}

// MatrixResponse es la proyección fila-mayor de la grilla: columnas agrupadas
// por mes y a lo sumo MaxRows filas en orden determinista de prefijo.
type MatrixResponse struct {
	Columns  []MonthColumnGroup `json:"columns"`
	Rows     []MatrixRow        `json:"rows"`
	RowCount int                `json:"rowCount"`
	MaxRows  int                `json:"maxRows"`
}

// EditCellRequest edición de una celda de unidades para (tienda, SKU, semana).
type EditCellRequest struct {
	Store      string `json:"store"`
	SKU        string `json:"sku"`
	Week       string `json:"week"`
	SalesUnits int64  `json:"salesUnits"`
}

// EditCellResponse grupo de celdas recalculado de la semana editada, para que
// el cliente actualice la fila en sitio.
type EditCellResponse struct {
	Store string    `json:"store"`
	SKU   string    `json:"sku"`
	Week  string    `json:"week"`
	Cells CellGroup `json:"cells"`
}

// ChartPoint punto de la serie por tienda: una entrada por semana, siempre
// presente aunque la tienda no tenga hechos esa semana.
type ChartPoint struct {
	WeekLabel    string          `json:"weekLabel"`
	GMDollars    decimal.Decimal `json:"gmDollars"`
	GMPercentage decimal.Decimal `json:"gmPercentage"`
}

// ChartSeriesResponse serie agregada de una tienda, ordenada por SeqNo de
// semana ascendente.
type ChartSeriesResponse struct {
	StoreID string       `json:"storeId"`
	Points  []ChartPoint `json:"points"`
}
