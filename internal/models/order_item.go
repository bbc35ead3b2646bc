package models

import (
	"time"
)

// OrderItem is an order line. Price and unit cost are snapshots at sale
// time; cogs_snapshot decouples historical profit from later cost changes.
type OrderItem struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	OrderID      uint      `gorm:"index;not null" json:"order_id"`
	VariantID    uint      `gorm:"index;not null" json:"variant_id"`
	SKU          string    `gorm:"type:varchar(64);not null" json:"sku"`
	Name         string    `json:"name"`
	Price        Money     `gorm:"type:decimal(20,2);not null;default:0" json:"price"`
	Quantity     int       `gorm:"not null" json:"quantity"`
	CogsSnapshot Money     `gorm:"type:decimal(20,2);not null;default:0" json:"cogs_snapshot"`
	WeightGram   int       `gorm:"not null;default:0" json:"weight_gram"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName sets the table name.
func (OrderItem) TableName() string {
	return "order_items"
}
