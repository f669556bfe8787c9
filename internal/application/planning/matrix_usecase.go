// Package planning contiene los casos de uso del motor de la grilla y del
// gráfico agregado por tienda. Ambos derivan todo desde el snapshot del
// contenedor de estado: la grilla es una proyección, nunca una segunda fuente
// de verdad.
package planning

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Planificador-api/internal/application/dto"
	"github.com/jhoicas/Planificador-api/internal/application/state"
	"github.com/jhoicas/Planificador-api/internal/domain"
	"github.com/jhoicas/Planificador-api/internal/domain/entity"
	domainplanning "github.com/jhoicas/Planificador-api/internal/domain/planning"
)

// DefaultMaxRows tope de filas de la matriz cuando no se configura otro.
const DefaultMaxRows = 100

// Orden fijo de las cuatro columnas hoja de cada semana. Solo la primera es
// editable.
var leafColumns = []string{"salesUnits", "salesDollars", "gmDollars", "gmPercentage"}

// MatrixUseCase construye la matriz acotada tienda×SKU y reconcilia las
// ediciones de celda contra la colección canónica de hechos.
type MatrixUseCase struct {
	container *state.Container
	maxRows   int
}

// NewMatrixUseCase construye el caso de uso. maxRows <= 0 aplica el default.
func NewMatrixUseCase(container *state.Container, maxRows int) *MatrixUseCase {
	if maxRows <= 0 {
		maxRows = DefaultMaxRows
	}
	return &MatrixUseCase{container: container, maxRows: maxRows}
}

// BuildMatrix materializa la proyección fila-mayor de la grilla. maxRows < 0
// usa el tope configurado; cualquier valor no negativo lo sobreescribe para
// esta llamada. Emite exactamente min(maxRows, |tiendas|×|skus|) filas en el
// orden anidado tienda-luego-SKU: es un prefijo determinista, no una muestra,
// y reconstruirla con el mismo estado produce filas idénticas.
func (uc *MatrixUseCase) BuildMatrix(maxRows int) *dto.MatrixResponse {
	if maxRows < 0 {
		maxRows = uc.maxRows
	}
	snap := uc.container.Snapshot()

	skuByID := make(map[string]entity.SKU, len(snap.SKUs))
	for _, k := range snap.SKUs {
		skuByID[k.ID] = k
	}
	factByKey := make(map[entity.FactKey]entity.PlanningFact, len(snap.Facts))
	for _, f := range snap.Facts {
		factByKey[f.Key()] = f
	}

	// El tope viene del cliente: la capacidad se acota primero al total real
	// de pares para que un maxRows gigante no dispare la asignación.
	capRows := maxRows
	if total := len(snap.Stores) * len(snap.SKUs); total < capRows {
		capRows = total
	}
	rows := make([]dto.MatrixRow, 0, capRows)
outer:
	for _, store := range snap.Stores {
		for _, sku := range snap.SKUs {
			if len(rows) >= maxRows {
				break outer
			}
			rows = append(rows, buildRow(store, sku, snap.Weeks, factByKey))
		}
	}

	return &dto.MatrixResponse{
		Columns:  buildColumns(snap.Weeks),
		Rows:     rows,
		RowCount: len(rows),
		MaxRows:  maxRows,
	}
}

// EditCell valida y aplica la edición de una celda de unidades: recalcula las
// tres celdas derivadas de esa semana con el precio/costo del SKU de la fila y
// hace upsert del hecho por clave compuesta. La escritura en memoria y en la
// ranura durable es atómica dentro del contenedor; si la fila ya no existe la
// edición es un no-op con StaleRowError.
func (uc *MatrixUseCase) EditCell(in dto.EditCellRequest) (*dto.EditCellResponse, error) {
	if in.Store == "" || in.SKU == "" || in.Week == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.SalesUnits < 0 {
		return nil, domain.ErrInvalidInput
	}

	fact := entity.PlanningFact{
		Store:      in.Store,
		SKU:        in.SKU,
		Week:       in.Week,
		SalesUnits: in.SalesUnits,
	}
	if err := uc.container.UpsertFact(fact); err != nil {
		return nil, err
	}

	// Recalcular el grupo de celdas de la semana editada para que el cliente
	// actualice la fila en sitio. Si el SKU desapareciera entre el upsert y la
	// lectura, precio y costo se tratan como 0.
	price, cost := decimal.Zero, decimal.Zero
	for _, k := range uc.container.Snapshot().SKUs {
		if k.ID == in.SKU {
			price, cost = k.Price, k.Cost
			break
		}
	}
	m := domainplanning.Derive(in.SalesUnits, price, cost)

	return &dto.EditCellResponse{
		Store: in.Store,
		SKU:   in.SKU,
		Week:  in.Week,
		Cells: dto.CellGroup{
			SalesUnits:   in.SalesUnits,
			SalesDollars: m.SalesDollars,
			GMDollars:    m.GMDollars,
			GMPercentage: m.GMPercentage,
		},
	}, nil
}

func buildRow(store entity.Store, sku entity.SKU, weeks []entity.Week, factByKey map[entity.FactKey]entity.PlanningFact) dto.MatrixRow {
	row := dto.MatrixRow{
		Store:      store.ID,
		StoreLabel: store.Label,
		SKU:        sku.ID,
		SKULabel:   sku.Label,
		Cells:      make(map[string]dto.CellGroup, len(weeks)),
	}
	for _, week := range weeks {
		var units int64
		if f, ok := factByKey[entity.FactKey{Store: store.ID, SKU: sku.ID, Week: week.ID}]; ok {
			units = f.SalesUnits
		}
		m := domainplanning.Derive(units, sku.Price, sku.Cost)
		row.Cells[week.ID] = dto.CellGroup{
			SalesUnits:   units,
			SalesDollars: m.SalesDollars,
			GMDollars:    m.GMDollars,
			GMPercentage: m.GMPercentage,
		}
	}
	return row
}

// buildColumns agrupa las semanas por mes en orden de primera aparición.
// Cada semana aporta las cuatro columnas hoja en orden fijo.
func buildColumns(weeks []entity.Week) []dto.MonthColumnGroup {
	groups := make([]dto.MonthColumnGroup, 0)
	idxByKey := make(map[string]int)
	for _, week := range weeks {
		key := week.Month + " - " + week.MonthLabel
		i, ok := idxByKey[key]
		if !ok {
			i = len(groups)
			idxByKey[key] = i
			groups = append(groups, dto.MonthColumnGroup{
				Key:        key,
				Month:      week.Month,
				MonthLabel: week.MonthLabel,
			})
		}
		groups[i].Weeks = append(groups[i].Weeks, dto.WeekColumn{
			WeekID:      week.ID,
			Label:       week.Label,
			LeafColumns: leafColumns,
		})
	}
	return groups
}
