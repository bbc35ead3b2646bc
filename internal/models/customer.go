package models

import (
	"time"

	"gorm.io/gorm"
)

// Customer owns the stored addresses web checkout can reference.
type Customer struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Name      string         `gorm:"not null" json:"name"`
	Email     string         `gorm:"index" json:"email,omitempty"`
	Phone     string         `gorm:"type:varchar(32)" json:"phone,omitempty"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Addresses []CustomerAddress `gorm:"foreignKey:CustomerID" json:"addresses,omitempty"`
}

// TableName sets the table name.
func (Customer) TableName() string {
	return "customers"
}

// CustomerAddress is a stored shipping address. Soft-deleted rows are
// invisible to checkout.
type CustomerAddress struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	CustomerID uint           `gorm:"index;not null" json:"customer_id"`
	Label      string         `gorm:"type:varchar(64)" json:"label,omitempty"`
	Recipient  string         `gorm:"not null" json:"recipient"`
	Phone      string         `gorm:"type:varchar(32)" json:"phone"`
	Line1      string         `gorm:"not null" json:"line1"`
	Line2      string         `json:"line2,omitempty"`
	City       string         `gorm:"not null" json:"city"`
	Province   string         `json:"province"`
	PostalCode string         `gorm:"type:varchar(16)" json:"postal_code"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (CustomerAddress) TableName() string {
	return "customer_addresses"
}

// Snapshot flattens the address into the immutable JSON copy stored on an
// order.
func (a CustomerAddress) Snapshot() JSON {
	return JSON{
		"recipient":   a.Recipient,
		"phone":       a.Phone,
		"line1":       a.Line1,
		"line2":       a.Line2,
		"city":        a.City,
		"province":    a.Province,
		"postal_code": a.PostalCode,
	}
}
