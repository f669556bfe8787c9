// Package excel implementa el puerto WorkbookParser sobre excelize.
// Mapea columnas por nombre de encabezado (no por posición) y coerciona
// celdas numéricas heterogéneas a valores finitos, nunca NaN.
package excel

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Planificador-api/internal/application/importer"
	"github.com/jhoicas/Planificador-api/internal/domain"
	"github.com/jhoicas/Planificador-api/internal/domain/entity"
)

// Hojas requeridas del libro de planificación.
const (
	SheetStores   = "Stores"
	SheetSKUs     = "SKUs"
	SheetCalendar = "Calendar"
	SheetPlanning = "Planning"
)

var _ importer.WorkbookParser = (*Parser)(nil)

// Parser lee el libro completo en memoria. El libro de planificación es
// pequeño (decenas de filas por hoja), así que GetRows es suficiente.
type Parser struct{}

// NewParser construye el parser de libros.
func NewParser() *Parser {
	return &Parser{}
}

// Parse abre el binario y produce las cuatro colecciones. Falla rápido con
// MissingSheetError ante la primera hoja ausente y con ParseError si el
// contenido no es un libro legible.
func (p *Parser) Parse(data []byte) (*importer.ParsedWorkbook, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, &domain.ParseError{Cause: err}
	}
	defer f.Close()

	for _, sheet := range []string{SheetStores, SheetSKUs, SheetCalendar, SheetPlanning} {
		idx, err := f.GetSheetIndex(sheet)
		if err != nil || idx < 0 {
			return nil, &domain.MissingSheetError{Sheet: sheet}
		}
	}

	stores, err := p.parseStores(f)
	if err != nil {
		return nil, err
	}
	skus, err := p.parseSKUs(f)
	if err != nil {
		return nil, err
	}
	weeks, err := p.parseWeeks(f)
	if err != nil {
		return nil, err
	}
	facts, err := p.parseFacts(f)
	if err != nil {
		return nil, err
	}

	return &importer.ParsedWorkbook{Stores: stores, SKUs: skus, Weeks: weeks, Facts: facts}, nil
}

func (p *Parser) parseStores(f *excelize.File) ([]entity.Store, error) {
	rows, err := sheetRecords(f, SheetStores)
	if err != nil {
		return nil, err
	}
	stores := make([]entity.Store, 0, len(rows))
	for _, row := range rows {
		stores = append(stores, entity.Store{
			SeqNo: int(coerceInt(row["Seq No."])),
			ID:    row["ID"],
			Label: row["Label"],
			City:  row["City"],
			State: row["State"],
		})
	}
	return stores, nil
}

func (p *Parser) parseSKUs(f *excelize.File) ([]entity.SKU, error) {
	rows, err := sheetRecords(f, SheetSKUs)
	if err != nil {
		return nil, err
	}
	skus := make([]entity.SKU, 0, len(rows))
	for _, row := range rows {
		skus = append(skus, entity.SKU{
			ID:         row["ID"],
			Label:      row["Label"],
			Class:      row["Class"],
			Department: row["Department"],
			Price:      coerceDecimal(row["Price"]),
			Cost:       coerceDecimal(row["Cost"]),
		})
	}
	return skus, nil
}

func (p *Parser) parseWeeks(f *excelize.File) ([]entity.Week, error) {
	rows, err := sheetRecords(f, SheetCalendar)
	if err != nil {
		return nil, err
	}
	weeks := make([]entity.Week, 0, len(rows))
	for _, row := range rows {
		weeks = append(weeks, entity.Week{
			SeqNo:      int(coerceInt(row["Seq No."])),
			ID:         row["Week"],
			Label:      row["Week Label"],
			Month:      row["Month"],
			MonthLabel: row["Month Label"],
		})
	}
	return weeks, nil
}

func (p *Parser) parseFacts(f *excelize.File) ([]entity.PlanningFact, error) {
	rows, err := sheetRecords(f, SheetPlanning)
	if err != nil {
		return nil, err
	}
	facts := make([]entity.PlanningFact, 0, len(rows))
	for _, row := range rows {
		facts = append(facts, entity.PlanningFact{
			Store:      row["Store"],
			SKU:        row["SKU"],
			Week:       row["Week"],
			SalesUnits: coerceInt(row["Sales Units"]),
		})
	}
	return facts, nil
}

// sheetRecords lee una hoja y devuelve sus filas como mapas encabezado →
// celda, en el orden de fila de la hoja. La primera fila es el encabezado;
// las filas completamente vacías se omiten; un encabezado ausente para una
// fila se lee como celda vacía (el llamador aplica el default).
func sheetRecords(f *excelize.File, sheet string) ([]map[string]string, error) {
	raw, err := f.GetRows(sheet)
	if err != nil {
		return nil, &domain.ParseError{Cause: err}
	}
	if len(raw) < 2 {
		return nil, nil
	}

	headers := raw[0]
	records := make([]map[string]string, 0, len(raw)-1)
	for _, row := range raw[1:] {
		if blankRow(row) {
			continue
		}
		rec := make(map[string]string, len(headers))
		for i, h := range headers {
			h = strings.TrimSpace(h)
			if h == "" {
				continue
			}
			if i < len(row) {
				rec[h] = strings.TrimSpace(row[i])
			} else {
				rec[h] = ""
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// coerceDecimal convierte una celda numérica o de texto a decimal. El texto
// admite símbolo de moneda y separadores de miles ("$1,234.50" → 1234.50);
// un valor no parseable coerciona a 0, nunca propaga NaN.
func coerceDecimal(cell string) decimal.Decimal {
	s := stripCurrency(cell)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// coerceInt convierte una celda a unidades enteras. Los decimales se truncan
// ("10.5" → 10, como el parseo entero del visor original).
func coerceInt(cell string) int64 {
	s := stripCurrency(cell)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return int64(v)
}

func stripCurrency(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	return strings.TrimSpace(s)
}
