package service

import "errors"

// Sentinel errors shared across services. Handlers map these onto HTTP
// status codes.
var (
	ErrNotFound           = errors.New("record not found")
	ErrValidation         = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid username or password")

	ErrVariantMissing        = errors.New("one or more variants do not exist")
	ErrVariantInactive       = errors.New("variant is not active")
	ErrInsufficientStock     = errors.New("insufficient stock")
	ErrSKUConflict           = errors.New("sku already in use")
	ErrSlugConflict          = errors.New("slug already in use")
	ErrChannelUnknown        = errors.New("unknown sales channel")
	ErrAddressRequired       = errors.New("shipping address required")
	ErrOrderItemsRequired    = errors.New("order requires at least one item")
	ErrInvalidTransition     = errors.New("invalid order status transition")
	ErrPurchaseNotDraft      = errors.New("purchase order is not in draft status")
	ErrPurchaseItemsEmpty    = errors.New("purchase order requires at least one item")
	ErrCategoryInUse         = errors.New("category still has products")
	ErrProductHasVariants    = errors.New("product still has variants")
	ErrDuplicateImportRef    = errors.New("external reference already imported")
	ErrStockAdjustToNegative = errors.New("adjustment would make stock negative")
)
