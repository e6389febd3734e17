package models

import "time"

// Customer is a buyer. It exclusively owns its Address; Sales reference the
// customer from their own side, so the back-reference is answered by the sale
// store's reverse lookup rather than a stored slice.
type Customer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	TaxID     string    `gorm:"size:18;uniqueIndex" json:"tax_id"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	AddressID *uint     `json:"address_id,omitempty"`
	Address   *Address  `gorm:"foreignKey:AddressID" json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
