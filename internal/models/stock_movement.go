package models

import (
	"time"
)

// StockMovement is an append-only audit row for a stock change. Rows are
// created, never mutated or deleted.
type StockMovement struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	VariantID       uint      `gorm:"index;not null" json:"variant_id"`
	Type            string    `gorm:"type:varchar(16);index;not null" json:"type"` // IN / OUT / ADJUST
	Quantity        int       `gorm:"not null" json:"quantity"`
	UnitCostApplied Money     `gorm:"type:decimal(20,2);not null;default:0" json:"unit_cost_applied"`
	RefType         string    `gorm:"type:varchar(32);index" json:"ref_type"` // order / purchase_order / manual
	RefID           uint      `gorm:"index" json:"ref_id"`
	Note            string    `gorm:"type:varchar(255)" json:"note,omitempty"`
	CreatedAt       time.Time `gorm:"index" json:"created_at"`
}

// TableName sets the table name.
func (StockMovement) TableName() string {
	return "stock_movements"
}
