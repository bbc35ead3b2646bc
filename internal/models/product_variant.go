package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// ProductVariant is the sellable unit. Stock and the running
// weighted-average unit cost live here; both are mutated only through
// stock movements and purchase receipts.
type ProductVariant struct {
	ID                         uint           `gorm:"primarykey" json:"id"`
	ProductID                  uint           `gorm:"index;not null" json:"product_id"`
	SKU                        string         `gorm:"type:varchar(64);not null" json:"sku"`
	SKUNormalized              string         `gorm:"type:varchar(64);uniqueIndex;not null" json:"-"`
	Name                       string         `json:"name"`
	Price                      Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"`
	WeightGram                 int            `gorm:"not null;default:0" json:"weight_gram"`
	StockOnHand                int            `gorm:"not null;default:0" json:"stock_on_hand"`
	CogsCurrent                Money          `gorm:"type:decimal(20,2);not null;default:0" json:"cogs_current"`
	DefaultPurchasePrice       Money          `gorm:"type:decimal(20,2);not null;default:0" json:"default_purchase_price"`
	DefaultOperationalCostUnit Money          `gorm:"type:decimal(20,2);not null;default:0" json:"default_operational_cost_unit"`
	IsActive                   bool           `gorm:"default:true;index" json:"is_active"`
	CreatedAt                  time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt                  time.Time      `gorm:"index" json:"updated_at"`
	DeletedAt                  gorm.DeletedAt `gorm:"index" json:"-"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName sets the table name.
func (ProductVariant) TableName() string {
	return "product_variants"
}

// NormalizeSKU lowercases and trims a SKU for the case-insensitive
// uniqueness column.
func NormalizeSKU(sku string) string {
	return strings.ToLower(strings.TrimSpace(sku))
}
