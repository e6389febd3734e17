package repository

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/andrelms/comercio-api/internal/models"
)

// CustomerStore persists customers and enforces the ownership rules around
// their addresses. Each store is an explicit handle around *gorm.DB so tests
// can run against isolated databases.
type CustomerStore struct {
	db     *gorm.DB
	policy DeletePolicy
}

func NewCustomerStore(db *gorm.DB, policy DeletePolicy) *CustomerStore {
	return &CustomerStore{db: db, policy: policy}
}

func (s *CustomerStore) All() ([]models.Customer, error) {
	var customers []models.Customer
	err := s.db.Preload("Address").Find(&customers).Error
	return customers, translate(err)
}

func (s *CustomerStore) ByID(id uint) (models.Customer, error) {
	var c models.Customer
	err := s.db.Preload("Address").First(&c, id).Error
	return c, translate(err)
}

func (s *CustomerStore) Exists(id uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.Customer{}).Where("id = ?", id).Count(&count).Error
	return count > 0, translate(err)
}

func (s *CustomerStore) ByTaxID(taxID string) (models.Customer, error) {
	var c models.Customer
	err := s.db.Preload("Address").Where("tax_id = ?", taxID).First(&c).Error
	return c, translate(err)
}

// TaxIDExists checks for a tax id without loading the row.
func (s *CustomerStore) TaxIDExists(taxID string) (bool, error) {
	var count int64
	err := s.db.Model(&models.Customer{}).Where("tax_id = ?", taxID).Count(&count).Error
	return count > 0, translate(err)
}

// Create persists the customer and, when one is embedded, its address first,
// linking it exclusively. The tax id is pre-checked; the unique index catches
// the race two concurrent creates can still win against the check.
func (s *CustomerStore) Create(c *models.Customer) error {
	if err := validateCustomer(c); err != nil {
		return err
	}
	exists, err := s.TaxIDExists(c.TaxID)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: tax id %q", ErrDuplicateKey, c.TaxID)
	}
	return translate(s.db.Create(c).Error)
}

// Update saves the customer. Detaching or replacing the owned address deletes
// the orphaned address row in the same transaction.
func (s *CustomerStore) Update(c *models.Customer) error {
	var current models.Customer
	if err := s.db.First(&current, c.ID).Error; err != nil {
		return translate(err)
	}
	if err := validateCustomer(c); err != nil {
		return err
	}
	return translate(s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(c).Error; err != nil {
			return err
		}
		if orphaned(current.AddressID, c.AddressID) {
			return tx.Delete(&models.Address{}, *current.AddressID).Error
		}
		return nil
	}))
}

// Delete removes the customer and its owned address in one atomic unit.
// Dependent sales are left alone under the permissive policy and block the
// delete under the restrict policy.
func (s *CustomerStore) Delete(id uint) error {
	return translate(s.db.Transaction(func(tx *gorm.DB) error {
		var c models.Customer
		if err := tx.First(&c, id).Error; err != nil {
			return err
		}
		if s.policy == DeleteRestrict {
			var n int64
			if err := tx.Model(&models.Sale{}).Where("customer_id = ?", id).Count(&n).Error; err != nil {
				return err
			}
			if n > 0 {
				return fmt.Errorf("%w: customer %d is referenced by %d sales", ErrIntegrity, id, n)
			}
		}
		if err := tx.Delete(&models.Customer{}, id).Error; err != nil {
			return err
		}
		if c.AddressID != nil {
			return tx.Delete(&models.Address{}, *c.AddressID).Error
		}
		return nil
	}))
}

// AttachSale points an existing sale at this customer. The back-reference
// from customer to sales is never stored; SaleStore.ByCustomer is the
// reverse index.
func (s *CustomerStore) AttachSale(customerID, saleID uint) error {
	return translate(s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Customer{}, customerID).Error; err != nil {
			return err
		}
		var sale models.Sale
		if err := tx.First(&sale, saleID).Error; err != nil {
			return err
		}
		return tx.Model(&sale).Update("customer_id", customerID).Error
	}))
}

// DetachSale always fails: a sale cannot exist without a customer. Reassign
// with AttachSale or delete the sale instead.
func (s *CustomerStore) DetachSale(customerID, saleID uint) error {
	return fmt.Errorf("%w: sale %d requires a customer; reassign or delete it", ErrValidation, saleID)
}

func validateCustomer(c *models.Customer) error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if strings.TrimSpace(c.TaxID) == "" {
		return fmt.Errorf("%w: tax_id is required", ErrValidation)
	}
	return nil
}

// orphaned reports whether the previous address reference was dropped or
// replaced without being carried over.
func orphaned(previous, next *uint) bool {
	if previous == nil {
		return false
	}
	return next == nil || *next != *previous
}
