package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrelms/comercio-api/internal/models"
)

func TestProductSaveValidation(t *testing.T) {
	db := setupTestDB(t)
	store := NewProductStore(db)

	require.ErrorIs(t, store.Save(&models.Product{StockQuantity: 1}), ErrValidation)
	require.ErrorIs(t, store.Save(&models.Product{Name: "X", StockQuantity: -1}), ErrValidation)

	ghost := uint(99)
	err := store.Save(&models.Product{Name: "X", StockQuantity: 1, SupplierID: &ghost})
	require.ErrorIs(t, err, ErrValidation)
}

func TestProductSearchByName(t *testing.T) {
	db := setupTestDB(t)
	store := NewProductStore(db)
	seedProduct(t, db, "Notebook Dell", 3500, 4)
	seedProduct(t, db, "Mouse Logitech", 80, 40)
	seedProduct(t, db, "Teclado Mecânico", 250, 12)

	got, err := store.SearchByName("NOTE")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Notebook Dell", got[0].Name)

	got, err = store.SearchByName("e")
	require.NoError(t, err)
	assert.Len(t, got, 3)

	got, err = store.SearchByName("zzz")
	require.NoError(t, err)
	assert.Empty(t, got)
}

// The Acme/Widget scenario: create a supplier and a low-stock product, query
// below the default threshold, restock, query again.
func TestProductLowStockScenario(t *testing.T) {
	db := setupTestDB(t)
	store := NewProductStore(db)

	acme := models.Supplier{Name: "Acme", TaxID: "11.111.111/0001-11"}
	require.NoError(t, NewSupplierStore(db, DeletePermissive).Create(&acme))

	widget := models.Product{Name: "Widget", Price: 1.5, StockQuantity: 5, SupplierID: &acme.ID}
	require.NoError(t, store.Save(&widget))

	low, err := store.BelowStock(10)
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, "Widget", low[0].Name)

	widget.StockQuantity = 20
	widget.Supplier = nil
	require.NoError(t, store.Save(&widget))

	low, err = store.BelowStock(10)
	require.NoError(t, err)
	assert.Empty(t, low)
}

func TestProductBelowStockIsStrict(t *testing.T) {
	db := setupTestDB(t)
	store := NewProductStore(db)
	seedProduct(t, db, "Exato", 1, 10)

	low, err := store.BelowStock(10)
	require.NoError(t, err)
	assert.Empty(t, low)
}

func TestProductBySupplier(t *testing.T) {
	db := setupTestDB(t)
	store := NewProductStore(db)
	s := seedSupplier(t, db, "Fornecedor", "44")

	p1 := models.Product{Name: "A", StockQuantity: 1, SupplierID: &s.ID}
	require.NoError(t, store.Save(&p1))
	seedProduct(t, db, "B", 1, 1)

	got, err := store.BySupplier(s.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "A", got[0].Name)
}

func TestProductDeleteNotFound(t *testing.T) {
	db := setupTestDB(t)
	store := NewProductStore(db)
	require.ErrorIs(t, store.Delete(5), ErrNotFound)

	p := seedProduct(t, db, "Del", 1, 1)
	require.NoError(t, store.Delete(p.ID))
	_, err := store.ByID(p.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestProductStockNotTouchedBySale(t *testing.T) {
	db := setupTestDB(t)
	store := NewProductStore(db)
	c := seedCustomer(t, db, "Comprador", "88")
	p := seedProduct(t, db, "Estável", 10, 7)

	sale := models.Sale{CustomerID: c.ID, TotalAmount: 20, Items: []models.SaleItem{
		{ProductID: p.ID, Quantity: 2, UnitPrice: 10},
	}}
	require.NoError(t, NewSaleStore(db).Create(&sale))

	got, err := store.ByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, got.StockQuantity)
}
