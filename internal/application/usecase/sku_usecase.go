package usecase

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Planificador-api/internal/application/dto"
	"github.com/jhoicas/Planificador-api/internal/application/state"
	"github.com/jhoicas/Planificador-api/internal/domain"
	"github.com/jhoicas/Planificador-api/internal/domain/entity"
)

// SKUUseCase mantenimiento manual de SKUs: alta y baja. Precio y costo no se
// editan en sitio; un cambio requiere reemplazar el registro.
type SKUUseCase struct {
	container *state.Container
}

// NewSKUUseCase construye el caso de uso.
func NewSKUUseCase(container *state.Container) *SKUUseCase {
	return &SKUUseCase{container: container}
}

// List devuelve los SKUs en orden de colección.
func (uc *SKUUseCase) List() *dto.SKUListResponse {
	snap := uc.container.Snapshot()
	items := make([]dto.SKUResponse, 0, len(snap.SKUs))
	for _, k := range snap.SKUs {
		items = append(items, toSKUResponse(k))
	}
	return &dto.SKUListResponse{Items: items}
}

// Create agrega un SKU. Id vacío o precio/costo negativos son entrada
// inválida; un id repetido bloquea el alta.
func (uc *SKUUseCase) Create(in dto.CreateSKURequest) (*dto.SKUResponse, error) {
	if in.ID == "" || in.Label == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.LessThan(decimal.Zero) || in.Cost.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	for {
		snap := uc.container.Snapshot()

		dup := false
		for _, k := range snap.SKUs {
			if k.ID == in.ID {
				dup = true
				break
			}
		}
		if dup {
			return nil, &domain.DuplicateKeyError{Entity: "sku", ID: in.ID}
		}

		sku := entity.SKU{
			ID:         in.ID,
			Label:      in.Label,
			Class:      in.Class,
			Department: in.Department,
			Price:      in.Price,
			Cost:       in.Cost,
		}
		next := append(snap.SKUs, sku)
		err := uc.container.CompareAndSetSKUs(snap.Revision, next)
		if errors.Is(err, state.ErrStaleRevision) {
			continue
		}
		if err != nil {
			return nil, err
		}
		resp := toSKUResponse(sku)
		return &resp, nil
	}
}

// Delete elimina un SKU por id. Igual que con tiendas, los hechos que lo
// referencian se conservan colgantes.
func (uc *SKUUseCase) Delete(id string) error {
	for {
		snap := uc.container.Snapshot()
		next := make([]entity.SKU, 0, len(snap.SKUs))
		found := false
		for _, k := range snap.SKUs {
			if k.ID == id {
				found = true
				continue
			}
			next = append(next, k)
		}
		if !found {
			return domain.ErrNotFound
		}
		err := uc.container.CompareAndSetSKUs(snap.Revision, next)
		if errors.Is(err, state.ErrStaleRevision) {
			continue
		}
		return err
	}
}

func toSKUResponse(k entity.SKU) dto.SKUResponse {
	return dto.SKUResponse{
		ID:         k.ID,
		Label:      k.Label,
		Class:      k.Class,
		Department: k.Department,
		Price:      k.Price,
		Cost:       k.Cost,
	}
}
