package repository

import (
	"gorm.io/gorm"

	"github.com/andrelms/comercio-api/internal/models"
)

// AddressStore persists addresses. Addresses are usually created through
// their owning customer or supplier; the direct operations exist for the
// address endpoints and for the exact-match filters.
type AddressStore struct {
	db *gorm.DB
}

func NewAddressStore(db *gorm.DB) *AddressStore {
	return &AddressStore{db: db}
}

func (s *AddressStore) All() ([]models.Address, error) {
	var addresses []models.Address
	err := s.db.Find(&addresses).Error
	return addresses, translate(err)
}

func (s *AddressStore) ByID(id uint) (models.Address, error) {
	var a models.Address
	err := s.db.First(&a, id).Error
	return a, translate(err)
}

func (s *AddressStore) Exists(id uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.Address{}).Where("id = ?", id).Count(&count).Error
	return count > 0, translate(err)
}

func (s *AddressStore) Save(a *models.Address) error {
	if a.ID != 0 {
		if err := s.db.First(&models.Address{}, a.ID).Error; err != nil {
			return translate(err)
		}
	}
	return translate(s.db.Save(a).Error)
}

func (s *AddressStore) Delete(id uint) error {
	res := s.db.Delete(&models.Address{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *AddressStore) ByPostalCode(code string) ([]models.Address, error) {
	var addresses []models.Address
	err := s.db.Where("postal_code = ?", code).Find(&addresses).Error
	return addresses, translate(err)
}

func (s *AddressStore) ByCity(city string) ([]models.Address, error) {
	var addresses []models.Address
	err := s.db.Where("city = ?", city).Find(&addresses).Error
	return addresses, translate(err)
}

func (s *AddressStore) ByState(state string) ([]models.Address, error) {
	var addresses []models.Address
	err := s.db.Where("state = ?", state).Find(&addresses).Error
	return addresses, translate(err)
}

func (s *AddressStore) ByCityAndState(city, state string) ([]models.Address, error) {
	var addresses []models.Address
	err := s.db.Where("city = ? AND state = ?", city, state).Find(&addresses).Error
	return addresses, translate(err)
}
