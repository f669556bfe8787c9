// Package state implementa el contenedor de estado del proceso: las cuatro
// colecciones canónicas del plan, con mutaciones serializadas y escritura dual
// (memoria + ranura durable) que se publica de forma atómica. Reemplaza el
// patrón de store global del visor original: el composition root es el único
// dueño del contenedor y los consumidores re-consultan por snapshot.
package state

import (
	"errors"
	"fmt"
	"sync"

	"github.com/jhoicas/Planificador-api/internal/domain"
	"github.com/jhoicas/Planificador-api/internal/domain/entity"
	"github.com/jhoicas/Planificador-api/internal/domain/repository"
)

// Snapshot es una copia de solo lectura de las cuatro colecciones.
// Revision permite a los consumidores detectar cambios sin suscripción.
type Snapshot struct {
	Stores   []entity.Store
	SKUs     []entity.SKU
	Weeks    []entity.Week
	Facts    []entity.PlanningFact
	Revision uint64
}

// Container mantiene el estado canónico en memoria y lo espeja en las cuatro
// ranuras de persistencia. Cada mutación es una sección crítica completa:
// ningún observador externo ve la memoria y la ranura durable en desacuerdo.
type Container struct {
	mu sync.Mutex

	storeRepo    repository.StoreRepository
	skuRepo      repository.SKURepository
	weekRepo     repository.WeekRepository
	planningRepo repository.PlanningRepository

	stores []entity.Store
	skus   []entity.SKU
	weeks  []entity.Week
	facts  []entity.PlanningFact

	storeIDs map[string]struct{}
	skuIDs   map[string]struct{}
	factIdx  map[entity.FactKey]int

	revision uint64
}

// New construye el contenedor sobre las cuatro ranuras de persistencia.
func New(
	storeRepo repository.StoreRepository,
	skuRepo repository.SKURepository,
	weekRepo repository.WeekRepository,
	planningRepo repository.PlanningRepository,
) *Container {
	c := &Container{
		storeRepo:    storeRepo,
		skuRepo:      skuRepo,
		weekRepo:     weekRepo,
		planningRepo: planningRepo,
	}
	c.reindex()
	return c
}

// LoadFromStorage siembra el estado desde los últimos snapshots guardados.
// Una ranura nunca escrita carga como colección vacía.
func (c *Container) LoadFromStorage() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	stores, err := c.storeRepo.Load()
	if err != nil {
		return fmt.Errorf("cargar tiendas: %w", err)
	}
	skus, err := c.skuRepo.Load()
	if err != nil {
		return fmt.Errorf("cargar skus: %w", err)
	}
	weeks, err := c.weekRepo.Load()
	if err != nil {
		return fmt.Errorf("cargar semanas: %w", err)
	}
	facts, err := c.planningRepo.Load()
	if err != nil {
		return fmt.Errorf("cargar planificación: %w", err)
	}

	c.stores, c.skus, c.weeks, c.facts = stores, skus, weeks, facts
	c.reindex()
	c.revision++
	return nil
}

// Snapshot devuelve copias defensivas de las cuatro colecciones.
func (c *Container) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		Stores:   append([]entity.Store(nil), c.stores...),
		SKUs:     append([]entity.SKU(nil), c.skus...),
		Weeks:    append([]entity.Week(nil), c.weeks...),
		Facts:    append([]entity.PlanningFact(nil), c.facts...),
		Revision: c.revision,
	}
}

// Revision devuelve el contador de cambios actual.
func (c *Container) Revision() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.revision
}

// ReplaceAll confirma una importación completa: persiste las cuatro ranuras y
// recién entonces publica la memoria. Si una escritura durable falla, las
// ranuras ya escritas se restauran al snapshot previo y la memoria queda
// intacta: no hay importación parcial.
func (c *Container) ReplaceAll(stores []entity.Store, skus []entity.SKU, weeks []entity.Week, facts []entity.PlanningFact) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.storeRepo.Save(stores); err != nil {
		return fmt.Errorf("guardar tiendas: %w", err)
	}
	if err := c.skuRepo.Save(skus); err != nil {
		_ = c.storeRepo.Save(c.stores)
		return fmt.Errorf("guardar skus: %w", err)
	}
	if err := c.weekRepo.Save(weeks); err != nil {
		_ = c.storeRepo.Save(c.stores)
		_ = c.skuRepo.Save(c.skus)
		return fmt.Errorf("guardar semanas: %w", err)
	}
	if err := c.planningRepo.Save(facts); err != nil {
		_ = c.storeRepo.Save(c.stores)
		_ = c.skuRepo.Save(c.skus)
		_ = c.weekRepo.Save(c.weeks)
		return fmt.Errorf("guardar planificación: %w", err)
	}

	c.stores, c.skus, c.weeks, c.facts = stores, skus, weeks, facts
	c.reindex()
	c.revision++
	return nil
}

// ErrStaleRevision indica que el estado cambió entre el snapshot leído y el
// intento de publicar la mutación. El llamador reintenta sobre un snapshot
// fresco.
var ErrStaleRevision = errors.New("state: revisión desactualizada")

// CompareAndSetStores reemplaza la colección de tiendas (alta, baja o
// reordenamiento manual) solo si la revisión no cambió desde el snapshot en
// que se calculó el reemplazo. Los hechos de planificación de una tienda
// eliminada se conservan: los joins son best-effort y se proyectan como cero.
func (c *Container) CompareAndSetStores(expected uint64, stores []entity.Store) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.revision != expected {
		return ErrStaleRevision
	}
	if err := c.storeRepo.Save(stores); err != nil {
		return fmt.Errorf("guardar tiendas: %w", err)
	}
	c.stores = stores
	c.reindex()
	c.revision++
	return nil
}

// CompareAndSetSKUs reemplaza la colección de SKUs con el mismo control de
// revisión.
func (c *Container) CompareAndSetSKUs(expected uint64, skus []entity.SKU) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.revision != expected {
		return ErrStaleRevision
	}
	if err := c.skuRepo.Save(skus); err != nil {
		return fmt.Errorf("guardar skus: %w", err)
	}
	c.skus = skus
	c.reindex()
	c.revision++
	return nil
}

// UpsertFact inserta o reemplaza un hecho por su clave compuesta. Toda la
// unidad leer-calcular-escribir ocurre bajo el mutex: dos ediciones sobre la
// misma clave no pueden pisarse. Si la tienda o el SKU de la fila ya no
// existen devuelve StaleRowError sin tocar ningún estado.
func (c *Container) UpsertFact(fact entity.PlanningFact) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.storeIDs[fact.Store]; !ok {
		return &domain.StaleRowError{StoreID: fact.Store, SKUID: fact.SKU}
	}
	if _, ok := c.skuIDs[fact.SKU]; !ok {
		return &domain.StaleRowError{StoreID: fact.Store, SKUID: fact.SKU}
	}

	next := append([]entity.PlanningFact(nil), c.facts...)
	if i, ok := c.factIdx[fact.Key()]; ok {
		next[i] = fact
	} else {
		next = append(next, fact)
	}

	// Primero la ranura durable; si falla, la memoria no cambia y el error
	// sube sin commit parcial.
	if err := c.planningRepo.Save(next); err != nil {
		return fmt.Errorf("guardar planificación: %w", err)
	}

	c.facts = next
	c.reindex()
	c.revision++
	return nil
}

// reindex reconstruye los índices de existencia y de clave compuesta.
// Llamar con el mutex tomado.
func (c *Container) reindex() {
	c.storeIDs = make(map[string]struct{}, len(c.stores))
	for _, s := range c.stores {
		c.storeIDs[s.ID] = struct{}{}
	}
	c.skuIDs = make(map[string]struct{}, len(c.skus))
	for _, k := range c.skus {
		c.skuIDs[k.ID] = struct{}{}
	}
	c.factIdx = make(map[entity.FactKey]int, len(c.facts))
	for i, f := range c.facts {
		c.factIdx[f.Key()] = i
	}
}
