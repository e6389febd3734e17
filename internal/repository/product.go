package repository

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/andrelms/comercio-api/internal/models"
)

// ProductStore persists products and their lookup queries.
type ProductStore struct {
	db *gorm.DB
}

func NewProductStore(db *gorm.DB) *ProductStore {
	return &ProductStore{db: db}
}

func (s *ProductStore) All() ([]models.Product, error) {
	var products []models.Product
	err := s.db.Find(&products).Error
	return products, translate(err)
}

func (s *ProductStore) ByID(id uint) (models.Product, error) {
	var p models.Product
	err := s.db.Preload("Supplier").First(&p, id).Error
	return p, translate(err)
}

func (s *ProductStore) Exists(id uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.Product{}).Where("id = ?", id).Count(&count).Error
	return count > 0, translate(err)
}

// Save inserts when the id is zero and updates otherwise. A referenced
// supplier must exist; a dangling supplier id never reaches storage.
func (s *ProductStore) Save(p *models.Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if p.StockQuantity < 0 {
		return fmt.Errorf("%w: stock_quantity must not be negative", ErrValidation)
	}
	if p.SupplierID != nil {
		var count int64
		if err := s.db.Model(&models.Supplier{}).Where("id = ?", *p.SupplierID).Count(&count).Error; err != nil {
			return translate(err)
		}
		if count == 0 {
			return fmt.Errorf("%w: supplier %d does not exist", ErrValidation, *p.SupplierID)
		}
	}
	if p.ID != 0 {
		if err := s.db.First(&models.Product{}, p.ID).Error; err != nil {
			return translate(err)
		}
	}
	return translate(s.db.Save(p).Error)
}

func (s *ProductStore) Delete(id uint) error {
	res := s.db.Delete(&models.Product{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SearchByName matches the term anywhere in the name, case-insensitively.
func (s *ProductStore) SearchByName(term string) ([]models.Product, error) {
	var products []models.Product
	like := "%" + strings.ToLower(term) + "%"
	err := s.db.Where("LOWER(name) LIKE ?", like).Find(&products).Error
	return products, translate(err)
}

func (s *ProductStore) BySupplier(supplierID uint) ([]models.Product, error) {
	var products []models.Product
	err := s.db.Where("supplier_id = ?", supplierID).Find(&products).Error
	return products, translate(err)
}

// BelowStock returns products with stock strictly below the threshold.
func (s *ProductStore) BelowStock(threshold int) ([]models.Product, error) {
	var products []models.Product
	err := s.db.Where("stock_quantity < ?", threshold).Find(&products).Error
	return products, translate(err)
}
