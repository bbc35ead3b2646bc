package models

import (
	"time"

	"gorm.io/gorm"
)

// ProductCategory groups products and carries the fixed operational cost
// components folded into a variant's initial COGS.
type ProductCategory struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Slug      string         `gorm:"uniqueIndex;not null" json:"slug"`
	Name      string         `gorm:"not null" json:"name"`
	SortOrder int            `gorm:"default:0;index" json:"sort_order"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	CostComponents []CategoryOperationalCostComponent `gorm:"foreignKey:CategoryID" json:"cost_components,omitempty"`
}

// TableName sets the table name.
func (ProductCategory) TableName() string {
	return "product_categories"
}

// CategoryOperationalCostComponent is a per-unit fixed cost (packaging,
// handling, ...) attributed to every variant in the category.
type CategoryOperationalCostComponent struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	CategoryID    uint      `gorm:"index;not null" json:"category_id"`
	Name          string    `gorm:"not null" json:"name"`
	AmountPerUnit Money     `gorm:"type:decimal(20,2);not null;default:0" json:"amount_per_unit"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName sets the table name.
func (CategoryOperationalCostComponent) TableName() string {
	return "category_operational_cost_components"
}

// OperationalCostPerUnit sums the category's cost components.
func (c *ProductCategory) OperationalCostPerUnit() Money {
	total := NewMoneyFromInt(0)
	for _, component := range c.CostComponents {
		total = NewMoneyFromDecimal(total.Add(component.AmountPerUnit.Decimal))
	}
	return total
}
