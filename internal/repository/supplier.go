package repository

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/andrelms/comercio-api/internal/models"
)

// SupplierStore mirrors CustomerStore: exclusive address ownership with
// cascade delete and orphan removal, tax-id uniqueness at create time, and
// pairing operations for the non-owning Supplier-Product association.
type SupplierStore struct {
	db     *gorm.DB
	policy DeletePolicy
}

func NewSupplierStore(db *gorm.DB, policy DeletePolicy) *SupplierStore {
	return &SupplierStore{db: db, policy: policy}
}

func (s *SupplierStore) All() ([]models.Supplier, error) {
	var suppliers []models.Supplier
	err := s.db.Preload("Address").Find(&suppliers).Error
	return suppliers, translate(err)
}

func (s *SupplierStore) ByID(id uint) (models.Supplier, error) {
	var sup models.Supplier
	err := s.db.Preload("Address").First(&sup, id).Error
	return sup, translate(err)
}

func (s *SupplierStore) Exists(id uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.Supplier{}).Where("id = ?", id).Count(&count).Error
	return count > 0, translate(err)
}

func (s *SupplierStore) ByTaxID(taxID string) (models.Supplier, error) {
	var sup models.Supplier
	err := s.db.Preload("Address").Where("tax_id = ?", taxID).First(&sup).Error
	return sup, translate(err)
}

func (s *SupplierStore) TaxIDExists(taxID string) (bool, error) {
	var count int64
	err := s.db.Model(&models.Supplier{}).Where("tax_id = ?", taxID).Count(&count).Error
	return count > 0, translate(err)
}

func (s *SupplierStore) Create(sup *models.Supplier) error {
	if err := validateSupplier(sup); err != nil {
		return err
	}
	exists, err := s.TaxIDExists(sup.TaxID)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: tax id %q", ErrDuplicateKey, sup.TaxID)
	}
	return translate(s.db.Create(sup).Error)
}

func (s *SupplierStore) Update(sup *models.Supplier) error {
	var current models.Supplier
	if err := s.db.First(&current, sup.ID).Error; err != nil {
		return translate(err)
	}
	if err := validateSupplier(sup); err != nil {
		return err
	}
	return translate(s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(sup).Error; err != nil {
			return err
		}
		if orphaned(current.AddressID, sup.AddressID) {
			return tx.Delete(&models.Address{}, *current.AddressID).Error
		}
		return nil
	}))
}

func (s *SupplierStore) Delete(id uint) error {
	return translate(s.db.Transaction(func(tx *gorm.DB) error {
		var sup models.Supplier
		if err := tx.First(&sup, id).Error; err != nil {
			return err
		}
		if s.policy == DeleteRestrict {
			var n int64
			if err := tx.Model(&models.Product{}).Where("supplier_id = ?", id).Count(&n).Error; err != nil {
				return err
			}
			if n > 0 {
				return fmt.Errorf("%w: supplier %d is referenced by %d products", ErrIntegrity, id, n)
			}
		}
		if err := tx.Delete(&models.Supplier{}, id).Error; err != nil {
			return err
		}
		if sup.AddressID != nil {
			return tx.Delete(&models.Address{}, *sup.AddressID).Error
		}
		return nil
	}))
}

// AttachProduct points an existing product at this supplier. The supplier's
// product list is never stored; ProductStore.BySupplier is the reverse index.
func (s *SupplierStore) AttachProduct(supplierID, productID uint) error {
	return translate(s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Supplier{}, supplierID).Error; err != nil {
			return err
		}
		var p models.Product
		if err := tx.First(&p, productID).Error; err != nil {
			return err
		}
		return tx.Model(&p).Update("supplier_id", supplierID).Error
	}))
}

// DetachProduct clears the product's supplier reference. The association is
// non-owning, so nothing cascades and the product itself survives.
func (s *SupplierStore) DetachProduct(supplierID, productID uint) error {
	return translate(s.db.Transaction(func(tx *gorm.DB) error {
		var p models.Product
		if err := tx.First(&p, productID).Error; err != nil {
			return err
		}
		if p.SupplierID == nil || *p.SupplierID != supplierID {
			return gorm.ErrRecordNotFound
		}
		return tx.Model(&p).Update("supplier_id", nil).Error
	}))
}

func validateSupplier(sup *models.Supplier) error {
	if strings.TrimSpace(sup.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if strings.TrimSpace(sup.TaxID) == "" {
		return fmt.Errorf("%w: tax_id is required", ErrValidation)
	}
	return nil
}
