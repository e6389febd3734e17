package models

import "time"

// Supplier provides products. Like Customer it exclusively owns its Address;
// products carry the supplier foreign key on their own side.
type Supplier struct {
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
