package models

import (
	"time"

	"gorm.io/gorm"
)

// Sale is a transaction header. It requires a customer and owns its items:
// deleting the sale deletes them. TotalAmount is supplied by the caller and
// is never derived from the items, while each item's subtotal IS derived --
// that asymmetry is intentional and must not be collapsed.
type Sale struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	CustomerID  uint       `gorm:"not null;index" json:"customer_id"`
	Customer    *Customer  `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	SoldAt      time.Time  `gorm:"not null" json:"sold_at"`
	TotalAmount float64    `gorm:"not null" json:"total_amount"`
	Items       []SaleItem `gorm:"foreignKey:SaleID" json:"items,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// BeforeCreate stamps the sale time when the caller did not supply one.
// Set once: updates never touch SoldAt.
func (s *Sale) BeforeCreate(*gorm.DB) error {
	if s.SoldAt.IsZero() {
		s.SoldAt = time.Now()
	}
	return nil
}

// SaleItem associates a sale with a product, recording quantity and the unit
// price at the time of sale. UnitPrice is historical: it does not follow the
// product's current price.
type SaleItem struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	SaleID    uint     `gorm:"not null;index" json:"sale_id"`
	ProductID uint     `gorm:"not null;index" json:"product_id"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity  int      `gorm:"not null" json:"quantity"`
	UnitPrice float64  `gorm:"not null" json:"unit_price"`
	// Subtotal stays nil until both inputs are known; nil means "not yet
	// computable", not zero.
	Subtotal  *float64  `json:"subtotal,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeSave recomputes the subtotal on every insert and update.
func (i *SaleItem) BeforeSave(*gorm.DB) error {
	if i.Quantity > 0 {
		subtotal := float64(i.Quantity) * i.UnitPrice
		i.Subtotal = &subtotal
	}
	return nil
}
