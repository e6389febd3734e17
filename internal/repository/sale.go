package repository

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/andrelms/comercio-api/internal/models"
)

// SaleStore persists sales as aggregates: the sale row plus its owned items
// succeed or fail together, and deleting a sale is an explicit transaction
// script that removes the items first.
type SaleStore struct {
	db *gorm.DB
}

func NewSaleStore(db *gorm.DB) *SaleStore {
	return &SaleStore{db: db}
}

func (s *SaleStore) All() ([]models.Sale, error) {
	var sales []models.Sale
	err := s.db.Preload("Items").Find(&sales).Error
	return sales, translate(err)
}

func (s *SaleStore) ByID(id uint) (models.Sale, error) {
	var sale models.Sale
	err := s.db.Preload("Items").First(&sale, id).Error
	return sale, translate(err)
}

func (s *SaleStore) Exists(id uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.Sale{}).Where("id = ?", id).Count(&count).Error
	return count > 0, translate(err)
}

// Create persists the sale and any embedded items in one transaction. The
// customer reference is required and must resolve; items are validated before
// anything is written. A missing SoldAt is stamped by the model hook.
func (s *SaleStore) Create(sale *models.Sale) error {
	return translate(s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.validateSale(tx, sale); err != nil {
			return err
		}
		return tx.Create(sale).Error
	}))
}

// Update saves the sale header. SoldAt is set-once: a zero value in the
// incoming sale keeps the stored timestamp. Items are managed through
// AddItem/RemoveItem, not through header updates.
func (s *SaleStore) Update(sale *models.Sale) error {
	var current models.Sale
	if err := s.db.First(&current, sale.ID).Error; err != nil {
		return translate(err)
	}
	if sale.SoldAt.IsZero() {
		sale.SoldAt = current.SoldAt
	}
	return translate(s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.validateSale(tx, sale); err != nil {
			return err
		}
		return tx.Omit("Items").Save(sale).Error
	}))
}

// Delete removes the sale and all its items: items first, then the header,
// atomically.
func (s *SaleStore) Delete(id uint) error {
	return translate(s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Sale{}, id).Error; err != nil {
			return err
		}
		if err := tx.Where("sale_id = ?", id).Delete(&models.SaleItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Sale{}, id).Error
	}))
}

func (s *SaleStore) ByCustomer(customerID uint) ([]models.Sale, error) {
	var sales []models.Sale
	err := s.db.Preload("Items").Where("customer_id = ?", customerID).Find(&sales).Error
	return sales, translate(err)
}

// SoldBetween returns sales with SoldAt in [start, end], inclusive on both
// bounds.
func (s *SaleStore) SoldBetween(start, end time.Time) ([]models.Sale, error) {
	var sales []models.Sale
	err := s.db.Preload("Items").Where("sold_at BETWEEN ? AND ?", start, end).Find(&sales).Error
	return sales, translate(err)
}

// AddItem attaches an item to the sale, setting the owning reference and
// recomputing its subtotal on the way in.
func (s *SaleStore) AddItem(saleID uint, item *models.SaleItem) error {
	return translate(s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Sale{}, saleID).Error; err != nil {
			return err
		}
		item.SaleID = saleID
		if err := validateItem(tx, item); err != nil {
			return err
		}
		return tx.Create(item).Error
	}))
}

// RemoveItem detaches the item from the sale and deletes it: an item without
// an owning sale is an orphan and does not survive.
func (s *SaleStore) RemoveItem(saleID, itemID uint) error {
	return translate(s.db.Transaction(func(tx *gorm.DB) error {
		var item models.SaleItem
		if err := tx.First(&item, itemID).Error; err != nil {
			return err
		}
		if item.SaleID != saleID {
			return gorm.ErrRecordNotFound
		}
		return tx.Delete(&models.SaleItem{}, itemID).Error
	}))
}

func (s *SaleStore) validateSale(tx *gorm.DB, sale *models.Sale) error {
	if sale.CustomerID == 0 {
		return fmt.Errorf("%w: customer_id is required", ErrValidation)
	}
	var count int64
	if err := tx.Model(&models.Customer{}).Where("id = ?", sale.CustomerID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("%w: customer %d does not exist", ErrValidation, sale.CustomerID)
	}
	for i := range sale.Items {
		if err := validateItem(tx, &sale.Items[i]); err != nil {
			return err
		}
	}
	return nil
}

func validateItem(tx *gorm.DB, item *models.SaleItem) error {
	if item.Quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", ErrValidation)
	}
	if item.UnitPrice < 0 {
		return fmt.Errorf("%w: unit_price must not be negative", ErrValidation)
	}
	if item.ProductID == 0 {
		return fmt.Errorf("%w: product_id is required", ErrValidation)
	}
	var count int64
	if err := tx.Model(&models.Product{}).Where("id = ?", item.ProductID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("%w: product %d does not exist", ErrValidation, item.ProductID)
	}
	return nil
}
