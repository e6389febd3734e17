package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/andrelms/comercio-api/internal/models"
)

func seedSupplier(t *testing.T, db *gorm.DB, name, taxID string) models.Supplier {
	t.Helper()
	s := models.Supplier{Name: name, TaxID: taxID}
	require.NoError(t, NewSupplierStore(db, DeletePermissive).Create(&s))
	return s
}

func TestSupplierCreateAndLookup(t *testing.T) {
	db := setupTestDB(t)
	store := NewSupplierStore(db, DeletePermissive)

	s := models.Supplier{
		Name:  "Dell Computadores Ltda",
		TaxID: "12.345.678/0001-99",
		Address: &models.Address{
			Street:     "Av. Paulista",
			Number:     "2000",
			District:   "Bela Vista",
			City:       "São Paulo",
			State:      "SP",
			PostalCode: "01310-000",
		},
	}
	require.NoError(t, store.Create(&s))

	got, err := store.ByTaxID("12.345.678/0001-99")
	require.NoError(t, err)
	assert.Equal(t, s.ID, got.ID)
	require.NotNil(t, got.Address)
	assert.Equal(t, "Av. Paulista", got.Address.Street)

	err = store.Create(&models.Supplier{Name: "Clone", TaxID: "12.345.678/0001-99"})
	require.ErrorIs(t, err, ErrDuplicateKey)
}

func TestSupplierDeleteCascadesAddress(t *testing.T) {
	db := setupTestDB(t)
	store := NewSupplierStore(db, DeletePermissive)

	s := models.Supplier{Name: "Acme", TaxID: "11", Address: &models.Address{City: "Curitiba", State: "PR"}}
	require.NoError(t, store.Create(&s))
	addressID := *s.AddressID

	require.NoError(t, store.Delete(s.ID))
	_, err := NewAddressStore(db).ByID(addressID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSupplierDeleteRestrictedByProducts(t *testing.T) {
	db := setupTestDB(t)
	s := seedSupplier(t, db, "Acme", "22")

	products := NewProductStore(db)
	p := models.Product{Name: "Widget", Price: 9.9, StockQuantity: 5, SupplierID: &s.ID}
	require.NoError(t, products.Save(&p))

	restricted := NewSupplierStore(db, DeleteRestrict)
	require.ErrorIs(t, restricted.Delete(s.ID), ErrIntegrity)

	permissive := NewSupplierStore(db, DeletePermissive)
	require.NoError(t, permissive.Delete(s.ID))
}

func TestSupplierAttachDetachProduct(t *testing.T) {
	db := setupTestDB(t)
	store := NewSupplierStore(db, DeletePermissive)
	s := seedSupplier(t, db, "Logitech", "33")
	p := seedProduct(t, db, "Mouse", 50, 10)

	require.NoError(t, store.AttachProduct(s.ID, p.ID))
	got, err := NewProductStore(db).ByID(p.ID)
	require.NoError(t, err)
	require.NotNil(t, got.SupplierID)
	assert.Equal(t, s.ID, *got.SupplierID)

	// Detaching clears the reference without touching the product.
	require.NoError(t, store.DetachProduct(s.ID, p.ID))
	got, err = NewProductStore(db).ByID(p.ID)
	require.NoError(t, err)
	assert.Nil(t, got.SupplierID)

	// Detach on a product the supplier does not own misses.
	require.ErrorIs(t, store.DetachProduct(s.ID, p.ID), ErrNotFound)
}
