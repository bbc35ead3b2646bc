package models

import (
	"time"

	"gorm.io/gorm"
)

// Order is a committed sale. Monetary fields are snapshots taken at
// creation; status transitions are the only later mutation.
type Order struct {
	ID                  uint           `gorm:"primarykey" json:"id"`
	OrderNo             string         `gorm:"uniqueIndex;not null" json:"order_no"`
	ChannelID           uint           `gorm:"index;not null" json:"channel_id"`
	CustomerID          *uint          `gorm:"index" json:"customer_id,omitempty"`
	ExternalRef         string         `gorm:"type:varchar(64);index" json:"external_ref,omitempty"` // marketplace order id
	Status              string         `gorm:"index;not null" json:"status"`
	Subtotal            Money          `gorm:"type:decimal(20,2);not null;default:0" json:"subtotal"`
	DiscountTotal       Money          `gorm:"type:decimal(20,2);not null;default:0" json:"discount_total"`
	FeesTotal           Money          `gorm:"type:decimal(20,2);not null;default:0" json:"fees_total"`
	ShippingFee         Money          `gorm:"type:decimal(20,2);not null;default:0" json:"shipping_fee"`
	TotalWeightGram     int            `gorm:"not null;default:0" json:"total_weight_gram"`
	ShippingAddressJSON JSON           `gorm:"type:json" json:"shipping_address"` // immutable snapshot
	PaidAt              *time.Time     `gorm:"index" json:"paid_at"`
	CanceledAt          *time.Time     `gorm:"index" json:"canceled_at"`
	CreatedAt           time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt           time.Time      `gorm:"index" json:"updated_at"`
	DeletedAt           gorm.DeletedAt `gorm:"index" json:"-"`

	Items    []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	Channel  *Channel    `gorm:"foreignKey:ChannelID" json:"channel,omitempty"`
	Shipment *Shipment   `gorm:"foreignKey:OrderID" json:"shipment,omitempty"`
}

// TableName sets the table name.
func (Order) TableName() string {
	return "orders"
}
