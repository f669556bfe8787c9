package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
)

// InvalidFileTypeError indica que el archivo subido no es un libro Excel
// aceptado (.xlsx o .xls). Se detecta antes de intentar el parseo.
type InvalidFileTypeError struct {
	Filename string
}

func (e *InvalidFileTypeError) Error() string {
	return fmt.Sprintf("tipo de archivo no soportado: %q (se acepta .xlsx o .xls)", e.Filename)
}

// MissingSheetError indica que falta una de las hojas requeridas del libro.
// La importación aborta completa: no se confirma ninguna colección parcial.
type MissingSheetError struct {
	Sheet string
}

func (e *MissingSheetError) Error() string {
	return fmt.Sprintf("falta la hoja %q en el libro", e.Sheet)
}

// EmptyDatasetError indica que una colección obligatoria (tiendas, SKUs o
// semanas) parseó a cero registros. La colección de planificación sí puede
// estar vacía.
type EmptyDatasetError struct {
	Dataset string
}

func (e *EmptyDatasetError) Error() string {
	return fmt.Sprintf("la hoja %q no produjo ningún registro válido", e.Dataset)
}

// ParseError indica contenido binario ilegible en el libro subido.
// Envuelve la causa original para el log del llamador.
type ParseError struct {
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("no se pudo leer el libro: %v", e.Cause)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// StaleRowError indica que una edición apunta a una fila cuya tienda o SKU ya
// no existe. La edición es un no-op: no resucita entidades eliminadas ni deja
// estado parcial.
type StaleRowError struct {
	StoreID string
	SKUID   string
}

func (e *StaleRowError) Error() string {
	return fmt.Sprintf("la fila (tienda=%q, sku=%q) ya no existe", e.StoreID, e.SKUID)
}

// DuplicateKeyError indica un alta manual con un id ya presente en la
// colección. El alta se bloquea.
type DuplicateKeyError struct {
	Entity string // "store" | "sku"
	ID     string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s con id %q ya existe", e.Entity, e.ID)
}
