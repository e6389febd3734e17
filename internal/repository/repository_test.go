package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/andrelms/comercio-api/internal/models"
)

// setupTestDB opens a unique in-memory database per test to avoid cross-test
// collisions.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Address{},
		&models.Customer{},
		&models.Supplier{},
		&models.Product{},
		&models.Sale{},
		&models.SaleItem{},
	))
	return db
}

func seedCustomer(t *testing.T, db *gorm.DB, name, taxID string) models.Customer {
	t.Helper()
	c := models.Customer{Name: name, TaxID: taxID}
	require.NoError(t, NewCustomerStore(db, DeletePermissive).Create(&c))
	return c
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price float64, stock int) models.Product {
	t.Helper()
	p := models.Product{Name: name, Price: price, StockQuantity: stock}
	require.NoError(t, NewProductStore(db).Save(&p))
	return p
}
