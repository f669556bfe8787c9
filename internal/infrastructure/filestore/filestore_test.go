package filestore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Planificador-api/internal/domain/entity"
	"github.com/jhoicas/Planificador-api/internal/infrastructure/filestore"
)

func TestStoreRepo_RoundTrip(t *testing.T) {
	repo := filestore.NewStoreRepository(t.TempDir())

	stores := []entity.Store{
		{SeqNo: 1, ID: "ST001", Label: "Norte", City: "Bogotá", State: "DC"},
		{SeqNo: 2, ID: "ST002", Label: "Sur", City: "Cali", State: "VAC"},
	}
	require.NoError(t, repo.Save(stores))

	loaded, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, stores, loaded, "cargar lo guardado devuelve la colección idéntica")
}

func TestSKURepo_RoundTripConDecimales(t *testing.T) {
	repo := filestore.NewSKURepository(t.TempDir())

	skus := []entity.SKU{
		{ID: "SK001", Label: "Camisa", Class: "Ropa", Department: "Hombre",
			Price: decimal.RequireFromString("1234.50"), Cost: decimal.RequireFromString("15.75")},
	}
	require.NoError(t, repo.Save(skus))

	loaded, err := repo.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.True(t, loaded[0].Price.Equal(skus[0].Price), "Price sobrevive el viaje por JSON sin perder precisión")
	assert.True(t, loaded[0].Cost.Equal(skus[0].Cost))
}

func TestWeekRepo_RoundTrip(t *testing.T) {
	repo := filestore.NewWeekRepository(t.TempDir())

	weeks := []entity.Week{
		{SeqNo: 1, ID: "W01", Label: "Semana 1", Month: "M01", MonthLabel: "Feb"},
	}
	require.NoError(t, repo.Save(weeks))

	loaded, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, weeks, loaded)
}

func TestPlanningRepo_RoundTrip(t *testing.T) {
	repo := filestore.NewPlanningRepository(t.TempDir())

	facts := []entity.PlanningFact{
		{Store: "ST001", SKU: "SK001", Week: "W01", SalesUnits: 10},
	}
	require.NoError(t, repo.Save(facts))

	loaded, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, facts, loaded)
}

func TestLoad_RanuraNuncaEscrita(t *testing.T) {
	dir := t.TempDir()

	stores, err := filestore.NewStoreRepository(dir).Load()
	require.NoError(t, err, "una ranura sin archivo no es un error")
	assert.Empty(t, stores)

	facts, err := filestore.NewPlanningRepository(dir).Load()
	require.NoError(t, err)
	assert.Empty(t, facts)
}

func TestSave_ColeccionVaciaSobrescribe(t *testing.T) {
	repo := filestore.NewStoreRepository(t.TempDir())

	require.NoError(t, repo.Save([]entity.Store{{SeqNo: 1, ID: "ST001", Label: "Norte"}}))
	require.NoError(t, repo.Save(nil), "guardar vacío reemplaza el snapshot anterior")

	loaded, err := repo.Load()
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestSave_CreaElDirectorioDeDatos(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "anidado", "datos")
	repo := filestore.NewWeekRepository(dir)

	require.NoError(t, repo.Save([]entity.Week{{SeqNo: 1, ID: "W01"}}))

	_, err := os.Stat(filepath.Join(dir, "weeks.json"))
	assert.NoError(t, err, "Save crea el directorio de datos si no existe")
}
