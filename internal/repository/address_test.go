package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrelms/comercio-api/internal/models"
)

func TestAddressFilters(t *testing.T) {
	db := setupTestDB(t)
	store := NewAddressStore(db)

	seed := []models.Address{
		{City: "São Paulo", State: "SP", PostalCode: "01000-000"},
		{City: "São Paulo", State: "SP", PostalCode: "02000-000"},
		{City: "Campinas", State: "SP", PostalCode: "13000-000"},
		{City: "Rio de Janeiro", State: "RJ", PostalCode: "20000-000"},
	}
	for i := range seed {
		require.NoError(t, store.Save(&seed[i]))
	}

	byCity, err := store.ByCity("São Paulo")
	require.NoError(t, err)
	assert.Len(t, byCity, 2)

	byState, err := store.ByState("SP")
	require.NoError(t, err)
	assert.Len(t, byState, 3)

	both, err := store.ByCityAndState("São Paulo", "SP")
	require.NoError(t, err)
	assert.Len(t, both, 2)

	byCode, err := store.ByPostalCode("20000-000")
	require.NoError(t, err)
	require.Len(t, byCode, 1)
	assert.Equal(t, "Rio de Janeiro", byCode[0].City)

	none, err := store.ByCity("Manaus")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestAddressCountryDefault(t *testing.T) {
	db := setupTestDB(t)
	store := NewAddressStore(db)

	a := models.Address{City: "Natal", State: "RN"}
	require.NoError(t, store.Save(&a))
	got, err := store.ByID(a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Brazil", got.Country)

	b := models.Address{City: "Assunção", Country: "Paraguay"}
	require.NoError(t, store.Save(&b))
	got, err = store.ByID(b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Paraguay", got.Country)
}

func TestAddressSaveMissingID(t *testing.T) {
	db := setupTestDB(t)
	store := NewAddressStore(db)

	a := models.Address{ID: 123, City: "Fantasma"}
	require.ErrorIs(t, store.Save(&a), ErrNotFound)
	require.ErrorIs(t, store.Delete(123), ErrNotFound)
}
