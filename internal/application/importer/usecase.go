// Package importer implementa el pipeline de importación: libro Excel →
// cuatro colecciones tipadas → commit atómico al contenedor de estado.
package importer

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/jhoicas/Planificador-api/internal/application/dto"
	"github.com/jhoicas/Planificador-api/internal/application/state"
	"github.com/jhoicas/Planificador-api/internal/domain"
	"github.com/jhoicas/Planificador-api/pkg/logger"
)

// UseCase orquesta la importación de un libro de planificación.
// Corre una vez por archivo subido; cualquier error aborta la importación
// completa y deja las cuatro colecciones exactamente como estaban.
type UseCase struct {
	parser    WorkbookParser
	container *state.Container
	log       *logger.Logger
}

// NewUseCase construye el caso de uso de importación.
func NewUseCase(parser WorkbookParser, container *state.Container, log *logger.Logger) *UseCase {
	return &UseCase{parser: parser, container: container, log: log}
}

// Import valida la extensión, parsea el libro, valida los datasets y confirma
// las cuatro colecciones en estado y persistencia. Las filas con id vacío se
// conservan pero se cuentan como advertencias no fatales.
func (uc *UseCase) Import(filename string, data []byte) (*dto.ImportResponse, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".xlsx" && ext != ".xls" {
		return nil, &domain.InvalidFileTypeError{Filename: filename}
	}

	wb, err := uc.parser.Parse(data)
	if err != nil {
		return nil, err
	}

	// Validación post-parseo: tiendas, SKUs y calendario no pueden quedar
	// vacíos; la planificación sí (un plan aún sin unidades cargadas).
	if len(wb.Stores) == 0 {
		return nil, &domain.EmptyDatasetError{Dataset: "Stores"}
	}
	if len(wb.SKUs) == 0 {
		return nil, &domain.EmptyDatasetError{Dataset: "SKUs"}
	}
	if len(wb.Weeks) == 0 {
		return nil, &domain.EmptyDatasetError{Dataset: "Calendar"}
	}

	warnings := countEmptyIDs(wb)

	if err := uc.container.ReplaceAll(wb.Stores, wb.SKUs, wb.Weeks, wb.Facts); err != nil {
		return nil, err
	}

	resp := &dto.ImportResponse{
		ImportID:      uuid.New().String(),
		Stores:        len(wb.Stores),
		SKUs:          len(wb.SKUs),
		Weeks:         len(wb.Weeks),
		PlanningFacts: len(wb.Facts),
		Warnings:      warnings,
	}

	uc.log.Info().
		Str("import_id", resp.ImportID).
		Str("filename", filename).
		Int("stores", resp.Stores).
		Int("skus", resp.SKUs).
		Int("weeks", resp.Weeks).
		Int("facts", resp.PlanningFacts).
		Int("empty_store_ids", warnings.EmptyStoreIDs).
		Int("empty_sku_ids", warnings.EmptySKUIDs).
		Int("empty_week_ids", warnings.EmptyWeekIDs).
		Msg("importación confirmada")

	return resp, nil
}

func countEmptyIDs(wb *ParsedWorkbook) dto.ImportWarnings {
	var w dto.ImportWarnings
	for _, s := range wb.Stores {
		if s.ID == "" {
			w.EmptyStoreIDs++
		}
	}
	for _, k := range wb.SKUs {
		if k.ID == "" {
			w.EmptySKUIDs++
		}
	}
	for _, wk := range wb.Weeks {
		if wk.ID == "" {
			w.EmptyWeekIDs++
		}
	}
	return w
}
