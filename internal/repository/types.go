package repository

import "time"

// ProductListFilter filters product listings.
type ProductListFilter struct {
	Page         int
	PageSize     int
	CategoryID   uint
	Search       string
	OnlyActive   bool
	WithCategory bool
	WithVariants bool
}

// OrderListFilter filters order listings.
type OrderListFilter struct {
	Page        int
	PageSize    int
	ChannelID   uint
	CustomerID  uint
	Status      string
	OrderNo     string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// PurchaseOrderListFilter filters purchase order listings.
type PurchaseOrderListFilter struct {
	Page     int
	PageSize int
	Status   string
	Search   string
}

// ExpenseListFilter filters expense ledger listings.
type ExpenseListFilter struct {
	Page     int
	PageSize int
	Type     string
	DateFrom *time.Time
	DateTo   *time.Time
}

// StockMovementListFilter filters stock movement listings.
type StockMovementListFilter struct {
	Page      int
	PageSize  int
	VariantID uint
	Type      string
	RefType   string
	RefID     uint
}
