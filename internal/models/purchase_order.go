package models

import (
	"time"

	"gorm.io/gorm"
)

// PurchaseOrder is a restocking transaction with a supplier. It stays a
// draft until received; receiving is one-way and cannot be undone here.
type PurchaseOrder struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	Code         string         `gorm:"uniqueIndex;not null" json:"code"`
	SupplierName string         `gorm:"type:varchar(128)" json:"supplier_name"`
	Status       string         `gorm:"index;not null" json:"status"` // draft / received
	Note         string         `gorm:"type:varchar(255)" json:"note,omitempty"`
	ReceivedAt   *time.Time     `gorm:"index" json:"received_at"`
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	Items []PurchaseItem `gorm:"foreignKey:PurchaseOrderID" json:"items,omitempty"`
}

// TableName sets the table name.
func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}

// PurchaseItem is one restocked variant on a purchase order.
type PurchaseItem struct {
	ID                  uint      `gorm:"primarykey" json:"id"`
	PurchaseOrderID     uint      `gorm:"index;not null" json:"purchase_order_id"`
	VariantID           uint      `gorm:"index;not null" json:"variant_id"`
	Quantity            int       `gorm:"not null" json:"quantity"`
	UnitCost            Money     `gorm:"type:decimal(20,2);not null;default:0" json:"unit_cost"`
	OperationalCostUnit Money     `gorm:"type:decimal(20,2);not null;default:0" json:"operational_cost_unit"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// TableName sets the table name.
func (PurchaseItem) TableName() string {
	return "purchase_items"
}

// LandedCostUnit is the true cost to bring one unit into sellable
// inventory: purchase cost plus allocated operational cost.
func (i PurchaseItem) LandedCostUnit() Money {
	return NewMoneyFromDecimal(i.UnitCost.Add(i.OperationalCostUnit.Decimal))
}
