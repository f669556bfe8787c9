package usecase

import (
	"errors"

	"github.com/jhoicas/Planificador-api/internal/application/dto"
	"github.com/jhoicas/Planificador-api/internal/application/state"
	"github.com/jhoicas/Planificador-api/internal/domain"
	"github.com/jhoicas/Planificador-api/internal/domain/entity"
)

// StoreUseCase mantenimiento manual de tiendas: alta, baja y reordenamiento.
// Toda mutación reemplaza la colección completa en el contenedor, que la
// persiste antes de publicarla.
type StoreUseCase struct {
	container *state.Container
}

// NewStoreUseCase construye el caso de uso.
func NewStoreUseCase(container *state.Container) *StoreUseCase {
	return &StoreUseCase{container: container}
}

// List devuelve las tiendas en orden de visualización.
func (uc *StoreUseCase) List() *dto.StoreListResponse {
	snap := uc.container.Snapshot()
	items := make([]dto.StoreResponse, 0, len(snap.Stores))
	for _, s := range snap.Stores {
		items = append(items, toStoreResponse(s))
	}
	return &dto.StoreListResponse{Items: items}
}

// Create agrega una tienda con SeqNo = máximo existente + 1. Un id vacío es
// entrada inválida y un id repetido bloquea el alta. La validación y la
// publicación van atadas a la misma revisión: si otra mutación se cuela en el
// medio, se revalida sobre un snapshot fresco.
func (uc *StoreUseCase) Create(in dto.CreateStoreRequest) (*dto.StoreResponse, error) {
	if in.ID == "" || in.Label == "" {
		return nil, domain.ErrInvalidInput
	}
	for {
		snap := uc.container.Snapshot()

		maxSeq := 0
		for _, s := range snap.Stores {
			if s.ID == in.ID {
				return nil, &domain.DuplicateKeyError{Entity: "store", ID: in.ID}
			}
			if s.SeqNo > maxSeq {
				maxSeq = s.SeqNo
			}
		}

		store := entity.Store{
			SeqNo: maxSeq + 1,
			ID:    in.ID,
			Label: in.Label,
			City:  in.City,
			State: in.State,
		}
		next := append(snap.Stores, store)
		err := uc.container.CompareAndSetStores(snap.Revision, next)
		if errors.Is(err, state.ErrStaleRevision) {
			continue
		}
		if err != nil {
			return nil, err
		}
		resp := toStoreResponse(store)
		return &resp, nil
	}
}

// Delete elimina una tienda por id. Los hechos de planificación que la
// referencian quedan colgantes y se proyectan como cero.
func (uc *StoreUseCase) Delete(id string) error {
	for {
		snap := uc.container.Snapshot()
		next := make([]entity.Store, 0, len(snap.Stores))
		found := false
		for _, s := range snap.Stores {
			if s.ID == id {
				found = true
				continue
			}
			next = append(next, s)
		}
		if !found {
			return domain.ErrNotFound
		}
		err := uc.container.CompareAndSetStores(snap.Revision, next)
		if errors.Is(err, state.ErrStaleRevision) {
			continue
		}
		return err
	}
}

// Reorder aplica un nuevo orden completo de tiendas. El orden debe ser una
// permutación exacta de los ids actuales; los SeqNo existentes se reasignan
// posicionalmente, que para un movimiento adyacente equivale al intercambio
// por pares del visor original.
func (uc *StoreUseCase) Reorder(in dto.ReorderStoresRequest) (*dto.StoreListResponse, error) {
	for {
		snap := uc.container.Snapshot()
		if len(in.Order) != len(snap.Stores) {
			return nil, domain.ErrInvalidInput
		}

		byID := make(map[string]entity.Store, len(snap.Stores))
		for _, s := range snap.Stores {
			byID[s.ID] = s
		}

		seqNos := make([]int, 0, len(snap.Stores))
		for _, s := range snap.Stores {
			seqNos = append(seqNos, s.SeqNo)
		}

		next := make([]entity.Store, 0, len(in.Order))
		seen := make(map[string]struct{}, len(in.Order))
		valid := true
		for i, id := range in.Order {
			s, ok := byID[id]
			if !ok {
				valid = false
				break
			}
			if _, dup := seen[id]; dup {
				valid = false
				break
			}
			seen[id] = struct{}{}
			s.SeqNo = seqNos[i]
			next = append(next, s)
		}
		if !valid {
			return nil, domain.ErrInvalidInput
		}

		err := uc.container.CompareAndSetStores(snap.Revision, next)
		if errors.Is(err, state.ErrStaleRevision) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return uc.List(), nil
	}
}

// MoveUp intercambia la tienda con su vecina anterior (SeqNo y posición),
// como las flechas de la lista original. En el primer lugar es un no-op.
func (uc *StoreUseCase) MoveUp(id string) (*dto.StoreListResponse, error) {
	return uc.moveAdjacent(id, -1)
}

// MoveDown intercambia la tienda con su vecina siguiente. En el último lugar
// es un no-op.
func (uc *StoreUseCase) MoveDown(id string) (*dto.StoreListResponse, error) {
	return uc.moveAdjacent(id, +1)
}

func (uc *StoreUseCase) moveAdjacent(id string, delta int) (*dto.StoreListResponse, error) {
	for {
		snap := uc.container.Snapshot()
		idx := -1
		for i, s := range snap.Stores {
			if s.ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, domain.ErrNotFound
		}

		j := idx + delta
		if j < 0 || j >= len(snap.Stores) {
			return uc.List(), nil // borde de la lista: sin cambios
		}

		next := append([]entity.Store(nil), snap.Stores...)
		next[idx].SeqNo, next[j].SeqNo = next[j].SeqNo, next[idx].SeqNo
		next[idx], next[j] = next[j], next[idx]

		err := uc.container.CompareAndSetStores(snap.Revision, next)
		if errors.Is(err, state.ErrStaleRevision) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return uc.List(), nil
	}
}

func toStoreResponse(s entity.Store) dto.StoreResponse {
	return dto.StoreResponse{
		SeqNo: s.SeqNo,
		ID:    s.ID,
		Label: s.Label,
		City:  s.City,
		State: s.State,
	}
}
