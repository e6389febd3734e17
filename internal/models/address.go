package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Address is a physical location owned by exactly one Customer or one
// Supplier, never both and never shared. The owning row carries the foreign
// key; deleting the owner deletes the address (see the repository cascade
// scripts).
type Address struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Street     string    `gorm:"size:255" json:"street"`
	Number     string    `gorm:"size:20" json:"number"`
	Complement string    `gorm:"size:100" json:"complement,omitempty"`
	District   string    `gorm:"size:100" json:"district"`
	City       string    `gorm:"size:100" json:"city"`
	State      string    `gorm:"size:2" json:"state"`
	PostalCode string    `gorm:"size:9" json:"postal_code"`
	Country    string    `gorm:"size:50" json:"country"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// BeforeCreate fills the country default.
func (a *Address) BeforeCreate(*gorm.DB) error {
	if a.Country == "" {
		a.Country = "Brazil"
	}
	return nil
}

// FullAddress returns the address as a single formatted line, e.g.
// "Rua das Flores, 1000, Apto 101 - Centro - São Paulo/SP - 12345-678".
func (a Address) FullAddress() string {
	var b strings.Builder
	b.WriteString(a.Street)
	if a.Number != "" {
		b.WriteString(", " + a.Number)
	}
	if a.Complement != "" {
		b.WriteString(", " + a.Complement)
	}
	if a.District != "" {
		b.WriteString(" - " + a.District)
	}
	if a.City != "" && a.State != "" {
		b.WriteString(" - " + a.City + "/" + a.State)
	}
	if a.PostalCode != "" {
		b.WriteString(" - " + a.PostalCode)
	}
	return b.String()
}
