package models

import (
	"time"
)

// Channel is the sales venue an order originated from. The row set is a
// fixed enumeration seeded at startup.
type Channel struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Key       string    `gorm:"type:varchar(32);uniqueIndex;not null" json:"key"`
	Name      string    `gorm:"not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName sets the table name.
func (Channel) TableName() string {
	return "channels"
}
