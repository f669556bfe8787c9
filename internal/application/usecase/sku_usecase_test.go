package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Planificador-api/internal/application/dto"
	"github.com/jhoicas/Planificador-api/internal/application/usecase"
	"github.com/jhoicas/Planificador-api/internal/domain"
)

func TestSKUCreate_AltaValida(t *testing.T) {
	uc := usecase.NewSKUUseCase(seedStores(t))

	resp, err := uc.Create(dto.CreateSKURequest{
		ID:         "SK002",
		Label:      "Pantalón",
		Class:      "Ropa",
		Department: "Hombre",
		Price:      decimal.RequireFromString("40.00"),
		Cost:       decimal.RequireFromString("30.00"),
	})
	require.NoError(t, err)

	assert.Equal(t, "SK002", resp.ID)
	assert.Len(t, uc.List().Items, 2)
}

func TestSKUCreate_PrecioOCostoNegativo(t *testing.T) {
	uc := usecase.NewSKUUseCase(seedStores(t))

	_, err := uc.Create(dto.CreateSKURequest{
		ID: "SK003", Label: "Inválido", Price: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateSKURequest{
		ID: "SK003", Label: "Inválido", Cost: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSKUCreate_IdDuplicado(t *testing.T) {
	uc := usecase.NewSKUUseCase(seedStores(t))

	_, err := uc.Create(dto.CreateSKURequest{ID: "SK001", Label: "Repetido"})

	var dup *domain.DuplicateKeyError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "sku", dup.Entity)
}

func TestSKUDelete_ConservaLosHechosColgantes(t *testing.T) {
	c := seedStores(t)
	uc := usecase.NewSKUUseCase(c)

	require.NoError(t, uc.Delete("SK001"))

	assert.Empty(t, uc.List().Items)
	assert.Len(t, c.Snapshot().Facts, 1,
		"los hechos del SKU eliminado se conservan colgantes")
}

func TestSKUDelete_Inexistente(t *testing.T) {
	uc := usecase.NewSKUUseCase(seedStores(t))
	assert.ErrorIs(t, uc.Delete("SK404"), domain.ErrNotFound)
}
