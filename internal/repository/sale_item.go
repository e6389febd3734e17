package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/andrelms/comercio-api/internal/models"
)

// SaleItemStore exposes items directly. Items are usually created through
// their owning sale, but the original API also allows direct writes, so both
// owning references are validated here.
type SaleItemStore struct {
	db *gorm.DB
}

func NewSaleItemStore(db *gorm.DB) *SaleItemStore {
	return &SaleItemStore{db: db}
}

func (s *SaleItemStore) All() ([]models.SaleItem, error) {
	var items []models.SaleItem
	err := s.db.Find(&items).Error
	return items, translate(err)
}

func (s *SaleItemStore) ByID(id uint) (models.SaleItem, error) {
	var item models.SaleItem
	err := s.db.Preload("Product").First(&item, id).Error
	return item, translate(err)
}

func (s *SaleItemStore) Exists(id uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.SaleItem{}).Where("id = ?", id).Count(&count).Error
	return count > 0, translate(err)
}

// Save inserts or updates the item. The subtotal is recomputed by the model
// hook on every save.
func (s *SaleItemStore) Save(item *models.SaleItem) error {
	return translate(s.db.Transaction(func(tx *gorm.DB) error {
		if item.SaleID == 0 {
			return fmt.Errorf("%w: sale_id is required", ErrValidation)
		}
		var count int64
		if err := tx.Model(&models.Sale{}).Where("id = ?", item.SaleID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return fmt.Errorf("%w: sale %d does not exist", ErrValidation, item.SaleID)
		}
		if err := validateItem(tx, item); err != nil {
			return err
		}
		if item.ID != 0 {
			if err := tx.First(&models.SaleItem{}, item.ID).Error; err != nil {
				return err
			}
		}
		return tx.Save(item).Error
	}))
}

func (s *SaleItemStore) Delete(id uint) error {
	res := s.db.Delete(&models.SaleItem{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SaleItemStore) BySale(saleID uint) ([]models.SaleItem, error) {
	var items []models.SaleItem
	err := s.db.Where("sale_id = ?", saleID).Find(&items).Error
	return items, translate(err)
}

func (s *SaleItemStore) ByProduct(productID uint) ([]models.SaleItem, error) {
	var items []models.SaleItem
	err := s.db.Where("product_id = ?", productID).Find(&items).Error
	return items, translate(err)
}
