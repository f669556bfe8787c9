package importer

import "github.com/jhoicas/Planificador-api/internal/domain/entity"

// ParsedWorkbook son las cuatro colecciones tipadas producidas por el parseo
// del libro, en el orden de fila de cada hoja.
type ParsedWorkbook struct {
	Stores []entity.Store
	SKUs   []entity.SKU
	Weeks  []entity.Week
	Facts  []entity.PlanningFact
}

// WorkbookParser es el puerto hacia el lector de libros Excel. Parse debe
// devolver MissingSheetError si falta una hoja requerida y ParseError si el
// binario es ilegible; los problemas de coerción por celda no son errores.
type WorkbookParser interface {
	Parse(data []byte) (*ParsedWorkbook, error)
}
