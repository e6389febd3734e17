package models

import "time"

// Product is a sellable item. StockQuantity is a plain counter: sales never
// decrement it automatically.
type Product struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"not null" json:"name"`
	Description   string    `json:"description,omitempty"`
	Price         float64   `gorm:"not null" json:"price"`
	StockQuantity int       `gorm:"not null" json:"stock_quantity"`
	SupplierID    *uint     `gorm:"index" json:"supplier_id,omitempty"`
	Supplier      *Supplier `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
