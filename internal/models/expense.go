package models

import (
	"time"

	"gorm.io/gorm"
)

// Expense is a manual ledger entry used only by reporting; it has no
// relationship to orders.
type Expense struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Type      string         `gorm:"type:varchar(16);index;not null" json:"type"` // EXPENSE / INCOME
	Amount    Money          `gorm:"type:decimal(20,2);not null;default:0" json:"amount"`
	Note      string         `gorm:"type:varchar(255)" json:"note,omitempty"`
	Date      time.Time      `gorm:"index;not null" json:"date"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (Expense) TableName() string {
	return "expenses"
}
