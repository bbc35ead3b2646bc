package constants

// Order status constants.
const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusShipped   = "shipped"
	OrderStatusCompleted = "completed"
	OrderStatusCanceled  = "canceled"
)

// Sales channel keys. Channels are seeded at startup and referenced by key.
const (
	ChannelWeb       = "web"
	ChannelTokopedia = "tokopedia"
	ChannelShopee    = "shopee"
	ChannelTikTok    = "tiktok"
	ChannelOffline   = "offline"
)

// Stock movement types.
const (
	StockMovementIn     = "IN"
	StockMovementOut    = "OUT"
	StockMovementAdjust = "ADJUST"
)

// Stock movement reference types (the entity that caused the movement).
const (
	StockRefOrder         = "order"
	StockRefPurchaseOrder = "purchase_order"
	StockRefManual        = "manual"
)

// Purchase order statuses.
const (
	PurchaseOrderStatusDraft    = "draft"
	PurchaseOrderStatusReceived = "received"
)

// Expense ledger entry types.
const (
	ExpenseTypeExpense = "EXPENSE"
	ExpenseTypeIncome  = "INCOME"
)

// GramsPerKg converts stored gram weights to the kilogram tier used by the
// flat-rate shipping formula.
const GramsPerKg = 1000
