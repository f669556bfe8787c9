// Package redisstore implementa las cuatro ranuras de persistencia sobre
// Redis, con un snapshot JSON por clave. Misma semántica que filestore:
// Save sobrescribe la ranura completa, Load de una clave ausente devuelve la
// colección vacía.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/Planificador-api/internal/domain/entity"
	"github.com/jhoicas/Planificador-api/internal/domain/repository"
)

// Claves de las cuatro ranuras.
const (
	storesKey   = "planning:stores"
	skusKey     = "planning:skus"
	weeksKey    = "planning:weeks"
	planningKey = "planning:facts"
)

var (
	_ repository.StoreRepository    = (*StoreRepo)(nil)
	_ repository.SKURepository      = (*SKURepo)(nil)
	_ repository.WeekRepository     = (*WeekRepo)(nil)
	_ repository.PlanningRepository = (*PlanningRepo)(nil)
)

// Config conexión a Redis.
type Config struct {
	Addr     string
	Password string
	DB       int
}

// NewClient construye el cliente Redis y verifica la conexión.
func NewClient(cfg Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("conectar a redis: %w", err)
	}
	return client, nil
}

// StoreRepo ranura de tiendas sobre Redis.
type StoreRepo struct{ rdb *redis.Client }

// SKURepo ranura de SKUs sobre Redis.
type SKURepo struct{ rdb *redis.Client }

// WeekRepo ranura de semanas sobre Redis.
type WeekRepo struct{ rdb *redis.Client }

// PlanningRepo ranura de hechos de planificación sobre Redis.
type PlanningRepo struct{ rdb *redis.Client }

// NewStoreRepository construye la ranura de tiendas.
func NewStoreRepository(rdb *redis.Client) *StoreRepo { return &StoreRepo{rdb: rdb} }

// NewSKURepository construye la ranura de SKUs.
func NewSKURepository(rdb *redis.Client) *SKURepo { return &SKURepo{rdb: rdb} }

// NewWeekRepository construye la ranura de semanas.
func NewWeekRepository(rdb *redis.Client) *WeekRepo { return &WeekRepo{rdb: rdb} }

// NewPlanningRepository construye la ranura de planificación.
func NewPlanningRepository(rdb *redis.Client) *PlanningRepo { return &PlanningRepo{rdb: rdb} }

func (r *StoreRepo) Save(stores []entity.Store) error {
	return setSnapshot(r.rdb, storesKey, stores)
}

func (r *StoreRepo) Load() ([]entity.Store, error) {
	var stores []entity.Store
	if err := getSnapshot(r.rdb, storesKey, &stores); err != nil {
		return nil, err
	}
	if stores == nil {
		stores = []entity.Store{}
	}
	return stores, nil
}

func (r *SKURepo) Save(skus []entity.SKU) error {
	return setSnapshot(r.rdb, skusKey, skus)
}

func (r *SKURepo) Load() ([]entity.SKU, error) {
	var skus []entity.SKU
	if err := getSnapshot(r.rdb, skusKey, &skus); err != nil {
		return nil, err
	}
	if skus == nil {
		skus = []entity.SKU{}
	}
	return skus, nil
}

func (r *WeekRepo) Save(weeks []entity.Week) error {
	return setSnapshot(r.rdb, weeksKey, weeks)
}

func (r *WeekRepo) Load() ([]entity.Week, error) {
	var weeks []entity.Week
	if err := getSnapshot(r.rdb, weeksKey, &weeks); err != nil {
		return nil, err
	}
	if weeks == nil {
		weeks = []entity.Week{}
	}
	return weeks, nil
}

func (r *PlanningRepo) Save(facts []entity.PlanningFact) error {
	return setSnapshot(r.rdb, planningKey, facts)
}

func (r *PlanningRepo) Load() ([]entity.PlanningFact, error) {
	var facts []entity.PlanningFact
	if err := getSnapshot(r.rdb, planningKey, &facts); err != nil {
		return nil, err
	}
	if facts == nil {
		facts = []entity.PlanningFact{}
	}
	return facts, nil
}

func setSnapshot(rdb *redis.Client, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("serializar snapshot %s: %w", key, err)
	}
	if err := rdb.Set(context.Background(), key, data, 0).Err(); err != nil {
		return fmt.Errorf("guardar snapshot %s: %w", key, err)
	}
	return nil
}

func getSnapshot(rdb *redis.Client, key string, out any) error {
	data, err := rdb.Get(context.Background(), key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil // ranura nunca escrita: colección vacía
		}
		return fmt.Errorf("leer snapshot %s: %w", key, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("deserializar snapshot %s: %w", key, err)
	}
	return nil
}
