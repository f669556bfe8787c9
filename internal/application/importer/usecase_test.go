package importer_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Planificador-api/internal/application/importer"
	"github.com/jhoicas/Planificador-api/internal/application/state"
	"github.com/jhoicas/Planificador-api/internal/domain"
	"github.com/jhoicas/Planificador-api/internal/domain/entity"
	"github.com/jhoicas/Planificador-api/internal/infrastructure/excel"
	"github.com/jhoicas/Planificador-api/internal/infrastructure/memstore"
	"github.com/jhoicas/Planificador-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test: libros construidos en memoria con excelize, pasando por el
// parser real de infraestructura. El mapeo es por nombre de encabezado, así
// que los tests barajan el orden de columnas a propósito.
// ──────────────────────────────────────────────────────────────────────────────

func workbookBytes(t *testing.T, sheets map[string][][]interface{}) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for name, rows := range sheets {
		_, err := f.NewSheet(name)
		require.NoError(t, err)
		for i, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(name, cell, &row))
		}
	}
	require.NoError(t, f.DeleteSheet("Sheet1"))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

// sampleSheets es un libro válido mínimo. Las columnas de Stores van en un
// orden distinto al canónico para ejercitar el mapeo por encabezado.
func sampleSheets() map[string][][]interface{} {
	return map[string][][]interface{}{
		"Stores": {
			{"Label", "ID", "Seq No.", "City", "State"},
			{"Norte", "ST001", 1, "Bogotá", "DC"},
			{"Sur", "ST002", 2, "Cali", "VAC"},
		},
		"SKUs": {
			{"ID", "Label", "Class", "Department", "Price", "Cost"},
			{"SK001", "Camisa", "Ropa", "Hombre", "$1,234.50", "N/A"},
			{"SK002", "Gorra", "Accesorios", "Unisex", 10, 4.5},
		},
		"Calendar": {
			{"Seq No.", "Week", "Week Label", "Month", "Month Label"},
			{1, "W01", "Semana 1", "M01", "Feb"},
			{2, "W02", "Semana 2", "M01", "Feb"},
		},
		"Planning": {
			{"Store", "SKU", "Week", "Sales Units"},
			{"ST001", "SK001", "W01", 10},
			{"ST002", "SK002", "W02", "23.9"},
		},
	}
}

func newImportUseCase(t *testing.T) (*importer.UseCase, *state.Container) {
	t.Helper()
	c := state.New(&memstore.StoreRepo{}, &memstore.SKURepo{}, &memstore.WeekRepo{}, &memstore.PlanningRepo{})
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	return importer.NewUseCase(excel.NewParser(), c, log), c
}

// ──────────────────────────────────────────────────────────────────────────────

func TestImport_LibroValidoConfirmaLasCuatroColecciones(t *testing.T) {
	uc, c := newImportUseCase(t)

	resp, err := uc.Import("plan.xlsx", workbookBytes(t, sampleSheets()))
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ImportID)
	assert.Equal(t, 2, resp.Stores)
	assert.Equal(t, 2, resp.SKUs)
	assert.Equal(t, 2, resp.Weeks)
	assert.Equal(t, 2, resp.PlanningFacts)
	assert.Zero(t, resp.Warnings.EmptyStoreIDs)

	snap := c.Snapshot()
	require.Len(t, snap.Stores, 2)

	// Mapeo por encabezado, no por posición: Label iba en la primera columna.
	assert.Equal(t, entity.Store{SeqNo: 1, ID: "ST001", Label: "Norte", City: "Bogotá", State: "DC"}, snap.Stores[0])

	// Coerción numérica: "$1,234.50" pierde moneda y miles; "N/A" coerciona a 0.
	require.Len(t, snap.SKUs, 2)
	assert.True(t, snap.SKUs[0].Price.Equal(decimal.RequireFromString("1234.50")),
		"Price debe ser 1234.50, obtuvo %s", snap.SKUs[0].Price)
	assert.True(t, snap.SKUs[0].Cost.IsZero(), "un costo no parseable coerciona a 0")

	// Las unidades decimales se truncan a entero.
	require.Len(t, snap.Facts, 2)
	assert.Equal(t, int64(23), snap.Facts[1].SalesUnits)
}

func TestImport_ExtensionInvalida(t *testing.T) {
	uc, c := newImportUseCase(t)

	before := c.Revision()
	_, err := uc.Import("plan.csv", []byte("Store,SKU"))

	var bad *domain.InvalidFileTypeError
	require.ErrorAs(t, err, &bad, "solo .xlsx y .xls pasan la validación de extensión")
	assert.Equal(t, "plan.csv", bad.Filename)
	assert.Equal(t, before, c.Revision(), "el rechazo no toca el estado")
}

func TestImport_HojaFaltanteAbortaSinTocarEstado(t *testing.T) {
	uc, c := newImportUseCase(t)

	// Estado previo sembrado: debe sobrevivir intacto a la importación fallida.
	require.NoError(t, c.ReplaceAll(
		[]entity.Store{{SeqNo: 1, ID: "ST900", Label: "Previa"}},
		[]entity.SKU{{ID: "SK900", Label: "Previo"}},
		[]entity.Week{{SeqNo: 1, ID: "W900"}},
		nil,
	))
	before := c.Snapshot()

	sheets := sampleSheets()
	delete(sheets, "Calendar")
	_, err := uc.Import("plan.xlsx", workbookBytes(t, sheets))

	var missing *domain.MissingSheetError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "Calendar", missing.Sheet)

	after := c.Snapshot()
	assert.Equal(t, before.Stores, after.Stores, "las colecciones quedan exactamente como estaban")
	assert.Equal(t, before.Revision, after.Revision)
}

func TestImport_DatasetVacio(t *testing.T) {
	uc, _ := newImportUseCase(t)

	// La hoja Stores existe pero solo trae el encabezado.
	sheets := sampleSheets()
	sheets["Stores"] = sheets["Stores"][:1]
	_, err := uc.Import("plan.xlsx", workbookBytes(t, sheets))

	var empty *domain.EmptyDatasetError
	require.ErrorAs(t, err, &empty)
	assert.Equal(t, "Stores", empty.Dataset)
}

func TestImport_PlanificacionVaciaEsValida(t *testing.T) {
	uc, c := newImportUseCase(t)

	sheets := sampleSheets()
	sheets["Planning"] = sheets["Planning"][:1]
	resp, err := uc.Import("plan.xlsx", workbookBytes(t, sheets))

	require.NoError(t, err, "un plan sin unidades cargadas aún es un libro válido")
	assert.Zero(t, resp.PlanningFacts)
	assert.Empty(t, c.Snapshot().Facts)
}

func TestImport_BinarioIlegible(t *testing.T) {
	uc, _ := newImportUseCase(t)

	_, err := uc.Import("plan.xlsx", []byte("esto no es un libro"))

	var parse *domain.ParseError
	assert.ErrorAs(t, err, &parse)
}

func TestImport_IdsVaciosSonAdvertenciaNoFatal(t *testing.T) {
	uc, c := newImportUseCase(t)

	sheets := sampleSheets()
	sheets["Stores"] = append(sheets["Stores"], []interface{}{"Sin ID", "", 3, "", ""})
	resp, err := uc.Import("plan.xlsx", workbookBytes(t, sheets))

	require.NoError(t, err, "una fila con id vacío no aborta la importación")
	assert.Equal(t, 1, resp.Warnings.EmptyStoreIDs)
	assert.Len(t, c.Snapshot().Stores, 3, "la fila se conserva, solo se cuenta la advertencia")
}

func TestImport_FilasEnBlancoSeOmiten(t *testing.T) {
	uc, c := newImportUseCase(t)

	sheets := sampleSheets()
	sheets["Stores"] = append(sheets["Stores"], []interface{}{"", "", "", "", ""})
	sheets["Stores"] = append(sheets["Stores"], []interface{}{"Oeste", "ST003", 3, "Medellín", "ANT"})
	_, err := uc.Import("plan.xlsx", workbookBytes(t, sheets))

	require.NoError(t, err)
	snap := c.Snapshot()
	require.Len(t, snap.Stores, 3, "la fila completamente vacía no produce registro")
	assert.Equal(t, "ST003", snap.Stores[2].ID)
}
