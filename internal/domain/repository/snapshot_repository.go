// Package repository define los puertos de persistencia (DIP). La superficie
// durable son cuatro ranuras clave-valor independientes; Save sobrescribe la
// ranura completa con el snapshot serializado y Load devuelve el último
// snapshot guardado, o la colección vacía si nunca se guardó.
package repository

import "github.com/jhoicas/Planificador-api/internal/domain/entity"

// StoreRepository ranura de snapshot para tiendas.
type StoreRepository interface {
	Save(stores []entity.Store) error
	Load() ([]entity.Store, error)
}

// SKURepository ranura de snapshot para SKUs.
type SKURepository interface {
	Save(skus []entity.SKU) error
	Load() ([]entity.SKU, error)
}

// WeekRepository ranura de snapshot para el calendario semanal.
type WeekRepository interface {
	Save(weeks []entity.Week) error
	Load() ([]entity.Week, error)
}

// PlanningRepository ranura de snapshot para los hechos de planificación.
type PlanningRepository interface {
	Save(facts []entity.PlanningFact) error
	Load() ([]entity.PlanningFact, error)
}
