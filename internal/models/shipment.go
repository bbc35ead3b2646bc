package models

import (
	"time"
)

// Shipment records the carrier handoff for an order. Cost is what the
// courier charged the store, as opposed to the fee billed to the buyer.
type Shipment struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	OrderID   uint      `gorm:"uniqueIndex;not null" json:"order_id"`
	AWB       string    `gorm:"type:varchar(64);index" json:"awb"`
	Courier   string    `gorm:"type:varchar(64)" json:"courier,omitempty"`
	Cost      Money     `gorm:"type:decimal(20,2);not null;default:0" json:"cost"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the table name.
func (Shipment) TableName() string {
	return "shipments"
}
