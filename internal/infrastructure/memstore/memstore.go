// Package memstore implementa las cuatro ranuras de persistencia en memoria.
// Se usa en tests como superficie durable determinista; SaveErr permite
// inyectar una falla de escritura para ejercitar los caminos de rollback.
package memstore

import (
	"github.com/jhoicas/Planificador-api/internal/domain/entity"
	"github.com/jhoicas/Planificador-api/internal/domain/repository"
)

var (
	_ repository.StoreRepository    = (*StoreRepo)(nil)
	_ repository.SKURepository      = (*SKURepo)(nil)
	_ repository.WeekRepository     = (*WeekRepo)(nil)
	_ repository.PlanningRepository = (*PlanningRepo)(nil)
)

// StoreRepo ranura de tiendas en memoria.
type StoreRepo struct {
	Snapshot []entity.Store
	Saves    int
	SaveErr  error
}

func (r *StoreRepo) Save(stores []entity.Store) error {
	if r.SaveErr != nil {
		return r.SaveErr
	}
	r.Snapshot = append([]entity.Store(nil), stores...)
	r.Saves++
	return nil
}

func (r *StoreRepo) Load() ([]entity.Store, error) {
	return append([]entity.Store(nil), r.Snapshot...), nil
}

// SKURepo ranura de SKUs en memoria.
type SKURepo struct {
	Snapshot []entity.SKU
	Saves    int
	SaveErr  error
}

func (r *SKURepo) Save(skus []entity.SKU) error {
	if r.SaveErr != nil {
		return r.SaveErr
	}
	r.Snapshot = append([]entity.SKU(nil), skus...)
	r.Saves++
	return nil
}

func (r *SKURepo) Load() ([]entity.SKU, error) {
	return append([]entity.SKU(nil), r.Snapshot...), nil
}

// WeekRepo ranura de semanas en memoria.
type WeekRepo struct {
	Snapshot []entity.Week
	Saves    int
	SaveErr  error
}

func (r *WeekRepo) Save(weeks []entity.Week) error {
	if r.SaveErr != nil {
		return r.SaveErr
	}
	r.Snapshot = append([]entity.Week(nil), weeks...)
	r.Saves++
	return nil
}

func (r *WeekRepo) Load() ([]entity.Week, error) {
	return append([]entity.Week(nil), r.Snapshot...), nil
}

// PlanningRepo ranura de hechos de planificación en memoria.
type PlanningRepo struct {
	Snapshot []entity.PlanningFact
	Saves    int
	SaveErr  error
}

func (r *PlanningRepo) Save(facts []entity.PlanningFact) error {
	if r.SaveErr != nil {
		return r.SaveErr
	}
	r.Snapshot = append([]entity.PlanningFact(nil), facts...)
	r.Saves++
	return nil
}

func (r *PlanningRepo) Load() ([]entity.PlanningFact, error) {
	return append([]entity.PlanningFact(nil), r.Snapshot...), nil
}
