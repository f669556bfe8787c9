// Package filestore implementa las cuatro ranuras de persistencia como
// archivos JSON bajo un directorio de datos: el análogo del localStorage del
// visor original. Save sobrescribe la ranura completa; Load de una ranura
// nunca escrita devuelve la colección vacía.
package filestore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jhoicas/Planificador-api/internal/domain/entity"
	"github.com/jhoicas/Planificador-api/internal/domain/repository"
)

// Nombres de archivo de las cuatro ranuras.
const (
	storesFile   = "stores.json"
	skusFile     = "skus.json"
	weeksFile    = "weeks.json"
	planningFile = "planning.json"
)

var (
	_ repository.StoreRepository    = (*StoreRepo)(nil)
	_ repository.SKURepository      = (*SKURepo)(nil)
	_ repository.WeekRepository     = (*WeekRepo)(nil)
	_ repository.PlanningRepository = (*PlanningRepo)(nil)
)

// StoreRepo ranura de tiendas sobre archivo.
type StoreRepo struct{ path string }

// SKURepo ranura de SKUs sobre archivo.
type SKURepo struct{ path string }

// WeekRepo ranura de semanas sobre archivo.
type WeekRepo struct{ path string }

// PlanningRepo ranura de hechos de planificación sobre archivo.
type PlanningRepo struct{ path string }

// NewStoreRepository construye la ranura de tiendas bajo dir.
func NewStoreRepository(dir string) *StoreRepo {
	return &StoreRepo{path: filepath.Join(dir, storesFile)}
}

// NewSKURepository construye la ranura de SKUs bajo dir.
func NewSKURepository(dir string) *SKURepo {
	return &SKURepo{path: filepath.Join(dir, skusFile)}
}

// NewWeekRepository construye la ranura de semanas bajo dir.
func NewWeekRepository(dir string) *WeekRepo {
	return &WeekRepo{path: filepath.Join(dir, weeksFile)}
}

// NewPlanningRepository construye la ranura de planificación bajo dir.
func NewPlanningRepository(dir string) *PlanningRepo {
	return &PlanningRepo{path: filepath.Join(dir, planningFile)}
}

// Save / Load por ranura. Cada Save reemplaza el snapshot completo.

func (r *StoreRepo) Save(stores []entity.Store) error {
	return writeSnapshot(r.path, stores)
}

func (r *StoreRepo) Load() ([]entity.Store, error) {
	var stores []entity.Store
	if err := readSnapshot(r.path, &stores); err != nil {
		return nil, err
	}
	if stores == nil {
		stores = []entity.Store{}
	}
	return stores, nil
}

func (r *SKURepo) Save(skus []entity.SKU) error {
	return writeSnapshot(r.path, skus)
}

func (r *SKURepo) Load() ([]entity.SKU, error) {
	var skus []entity.SKU
	if err := readSnapshot(r.path, &skus); err != nil {
		return nil, err
	}
	if skus == nil {
		skus = []entity.SKU{}
	}
	return skus, nil
}

func (r *WeekRepo) Save(weeks []entity.Week) error {
	return writeSnapshot(r.path, weeks)
}

func (r *WeekRepo) Load() ([]entity.Week, error) {
	var weeks []entity.Week
	if err := readSnapshot(r.path, &weeks); err != nil {
		return nil, err
	}
	if weeks == nil {
		weeks = []entity.Week{}
	}
	return weeks, nil
}

func (r *PlanningRepo) Save(facts []entity.PlanningFact) error {
	return writeSnapshot(r.path, facts)
}

func (r *PlanningRepo) Load() ([]entity.PlanningFact, error) {
	var facts []entity.PlanningFact
	if err := readSnapshot(r.path, &facts); err != nil {
		return nil, err
	}
	if facts == nil {
		facts = []entity.PlanningFact{}
	}
	return facts, nil
}

// writeSnapshot serializa la colección y la escribe vía archivo temporal +
// rename, para que una ranura nunca quede con un snapshot a medio escribir.
func writeSnapshot(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("crear directorio de datos: %w", err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("serializar snapshot: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("escribir snapshot: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("publicar snapshot: %w", err)
	}
	return nil
}

func readSnapshot(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // ranura nunca escrita: colección vacía
		}
		return fmt.Errorf("leer snapshot: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("deserializar snapshot: %w", err)
	}
	return nil
}
