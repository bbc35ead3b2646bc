package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/warungkita/internal/constants"
	"github.com/warungkita/internal/logger"
	"github.com/warungkita/internal/models"
	"github.com/warungkita/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderService creates and manages orders across all sales channels. Every
// creation path runs in one database transaction; stock only moves for
// orders that are paid.
type OrderService struct {
	orderRepo    repository.OrderRepository
	variantRepo  repository.VariantRepository
	movementRepo repository.StockMovementRepository
	shipmentRepo repository.ShipmentRepository
	channelRepo  repository.ChannelRepository
	customerRepo repository.CustomerRepository
	quoteService *QuoteService
}

// NewOrderService creates an order service.
func NewOrderService(orderRepo repository.OrderRepository, variantRepo repository.VariantRepository, movementRepo repository.StockMovementRepository, shipmentRepo repository.ShipmentRepository, channelRepo repository.ChannelRepository, customerRepo repository.CustomerRepository, quoteService *QuoteService) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		variantRepo:  variantRepo,
		movementRepo: movementRepo,
		shipmentRepo: shipmentRepo,
		channelRepo:  channelRepo,
		customerRepo: customerRepo,
		quoteService: quoteService,
	}
}

var allowedTransitions = map[string]map[string]bool{
	constants.OrderStatusPending: {
		constants.OrderStatusPaid:     true,
		constants.OrderStatusCanceled: true,
	},
	constants.OrderStatusPaid: {
		constants.OrderStatusShipped: true,
	},
	constants.OrderStatusShipped: {
		constants.OrderStatusCompleted: true,
	},
}

// OrderItemInput is one requested order line.
type OrderItemInput struct {
	VariantID uint `json:"variant_id"`
	Quantity  int  `json:"quantity"`
}

// AddressInput selects a stored address by id or carries an inline one.
type AddressInput struct {
	AddressID  uint   `json:"address_id"`
	Recipient  string `json:"recipient"`
	Phone      string `json:"phone"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2"`
	City       string `json:"city"`
	Province   string `json:"province"`
	PostalCode string `json:"postal_code"`
}

// CheckoutInput is a storefront checkout request.
type CheckoutInput struct {
	CustomerID *uint            `json:"customer_id"`
	Items      []OrderItemInput `json:"items"`
	Address    AddressInput     `json:"address"`
}

// POSSaleInput is an offline counter sale.
type POSSaleInput struct {
	CustomerID    *uint            `json:"customer_id"`
	Items         []OrderItemInput `json:"items"`
	DiscountTotal models.Money     `json:"discount_total"`
	Note          string           `json:"note"`
}

// ImportOrderItemInput is one imported marketplace line. The variant is
// matched by id or, failing that, by SKU; the marketplace's own unit price
// overrides the catalog price when given.
type ImportOrderItemInput struct {
	VariantID uint          `json:"variant_id"`
	SKU       string        `json:"sku"`
	Quantity  int           `json:"quantity"`
	UnitPrice *models.Money `json:"unit_price"`
}

// ImportOrderInput is a marketplace order pulled in by the back office.
type ImportOrderInput struct {
	ChannelKey    string                 `json:"channel"`
	ExternalRef   string                 `json:"external_ref"`
	Status        string                 `json:"status"`
	Items         []ImportOrderItemInput `json:"items"`
	DiscountTotal models.Money           `json:"discount_total"`
	FeesTotal     models.Money           `json:"fees_total"`
	ShippingFee   models.Money           `json:"shipping_fee"`
	AWB           string                 `json:"awb"`
	Courier       string                 `json:"courier"`
	ShippingCost  models.Money           `json:"shipping_cost"`
}

// ShipInput attaches carrier details when an order goes out the door.
type ShipInput struct {
	AWB     string       `json:"awb"`
	Courier string       `json:"courier"`
	Cost    models.Money `json:"cost"`
}

// Checkout creates a pending web order. Totals and per-line unit costs are
// snapshotted now; stock is not touched until the order is paid.
func (s *OrderService) Checkout(input CheckoutInput) (*models.Order, error) {
	if err := validateOrderItems(input.Items); err != nil {
		return nil, err
	}
	addressSnapshot, err := s.resolveAddress(input.CustomerID, input.Address)
	if err != nil {
		return nil, err
	}
	variants, err := s.resolveOrderVariants(input.Items)
	if err != nil {
		return nil, err
	}
	for _, variant := range variants {
		if !variant.IsActive {
			return nil, ErrVariantInactive
		}
	}

	channel, err := s.channelRepo.GetByKey(constants.ChannelWeb)
	if err != nil {
		return nil, err
	}
	if channel == nil {
		return nil, fmt.Errorf("channel %q is not seeded", constants.ChannelWeb)
	}

	orderItems, subtotal, totalWeight := buildOrderItems(input.Items, variants)
	shippingFee := s.quoteService.ShippingCost(totalWeight)

	order := &models.Order{
		OrderNo:             generateOrderNo(),
		ChannelID:           channel.ID,
		CustomerID:          input.CustomerID,
		Status:              constants.OrderStatusPending,
		Subtotal:            models.NewMoneyFromDecimal(subtotal),
		DiscountTotal:       models.NewMoneyFromInt(0),
		FeesTotal:           models.NewMoneyFromInt(0),
		ShippingFee:         shippingFee,
		TotalWeightGram:     totalWeight,
		ShippingAddressJSON: addressSnapshot,
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		return s.orderRepo.WithTx(tx).Create(order, orderItems)
	})
	if err != nil {
		return nil, err
	}
	logger.Infow("order_created",
		"order_no", order.OrderNo,
		"channel", constants.ChannelWeb,
		"status", order.Status,
	)
	return s.GetOrder(order.ID)
}

// CreatePOSSale creates a paid offline order and takes stock immediately.
func (s *OrderService) CreatePOSSale(input POSSaleInput) (*models.Order, error) {
	if err := validateOrderItems(input.Items); err != nil {
		return nil, err
	}
	if input.DiscountTotal.IsNegative() {
		return nil, ErrValidation
	}
	variants, err := s.resolveOrderVariants(input.Items)
	if err != nil {
		return nil, err
	}

	channel, err := s.channelRepo.GetByKey(constants.ChannelOffline)
	if err != nil {
		return nil, err
	}
	if channel == nil {
		return nil, fmt.Errorf("channel %q is not seeded", constants.ChannelOffline)
	}

	orderItems, subtotal, totalWeight := buildOrderItems(input.Items, variants)
	now := time.Now()
	order := &models.Order{
		OrderNo:         generateOrderNo(),
		ChannelID:       channel.ID,
		CustomerID:      input.CustomerID,
		Status:          constants.OrderStatusPaid,
		Subtotal:        models.NewMoneyFromDecimal(subtotal),
		DiscountTotal:   input.DiscountTotal,
		FeesTotal:       models.NewMoneyFromInt(0),
		ShippingFee:     models.NewMoneyFromInt(0),
		TotalWeightGram: totalWeight,
		PaidAt:          &now,
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.WithTx(tx).Create(order, orderItems); err != nil {
			return err
		}
		return s.commitStockTx(tx, order.ID, orderItems)
	})
	if err != nil {
		return nil, err
	}
	logger.Infow("order_created",
		"order_no", order.OrderNo,
		"channel", constants.ChannelOffline,
		"status", order.Status,
	)
	return s.GetOrder(order.ID)
}

// ImportOrder records a marketplace order. The order arrives already sold,
// so stock leaves in the same transaction; an AWB on the input also creates
// the shipment row.
func (s *OrderService) ImportOrder(input ImportOrderInput) (*models.Order, error) {
	if len(input.Items) == 0 {
		return nil, ErrOrderItemsRequired
	}
	channelKey := strings.ToLower(strings.TrimSpace(input.ChannelKey))
	if channelKey == "" || channelKey == constants.ChannelWeb {
		return nil, ErrChannelUnknown
	}
	channel, err := s.channelRepo.GetByKey(channelKey)
	if err != nil {
		return nil, err
	}
	if channel == nil {
		return nil, ErrChannelUnknown
	}

	status := strings.TrimSpace(input.Status)
	if status == "" {
		status = constants.OrderStatusPaid
	}
	if status != constants.OrderStatusPaid && status != constants.OrderStatusShipped && status != constants.OrderStatusCompleted {
		return nil, ErrValidation
	}
	if input.DiscountTotal.IsNegative() || input.FeesTotal.IsNegative() || input.ShippingFee.IsNegative() {
		return nil, ErrValidation
	}

	externalRef := strings.TrimSpace(input.ExternalRef)
	if externalRef != "" {
		existing, err := s.orderRepo.GetByExternalRef(channel.ID, externalRef)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrDuplicateImportRef
		}
	}

	items, err := s.resolveImportItems(input.Items)
	if err != nil {
		return nil, err
	}

	orderItems := make([]models.OrderItem, 0, len(items))
	subtotal := decimal.Zero
	totalWeight := 0
	for _, line := range items {
		lineTotal := line.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		subtotal = subtotal.Add(lineTotal)
		totalWeight += line.WeightGram
		orderItems = append(orderItems, line)
	}

	now := time.Now()
	order := &models.Order{
		OrderNo:         generateOrderNo(),
		ChannelID:       channel.ID,
		ExternalRef:     externalRef,
		Status:          status,
		Subtotal:        models.NewMoneyFromDecimal(subtotal),
		DiscountTotal:   input.DiscountTotal,
		FeesTotal:       input.FeesTotal,
		ShippingFee:     input.ShippingFee,
		TotalWeightGram: totalWeight,
		PaidAt:          &now,
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.WithTx(tx).Create(order, orderItems); err != nil {
			return err
		}
		if err := s.commitStockTx(tx, order.ID, orderItems); err != nil {
			return err
		}
		if strings.TrimSpace(input.AWB) != "" {
			shipment := &models.Shipment{
				OrderID: order.ID,
				AWB:     strings.TrimSpace(input.AWB),
				Courier: strings.TrimSpace(input.Courier),
				Cost:    input.ShippingCost,
			}
			return s.shipmentRepo.WithTx(tx).Create(shipment)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	logger.Infow("order_imported",
		"order_no", order.OrderNo,
		"channel", channelKey,
		"external_ref", externalRef,
	)
	return s.GetOrder(order.ID)
}

// MarkPaid transitions a pending order to paid and commits its stock. The
// decrement is guarded, so an order whose items sold out elsewhere fails
// here instead of driving stock negative.
func (s *OrderService) MarkPaid(orderID uint) (*models.Order, error) {
	order, err := s.getForTransition(orderID, constants.OrderStatusPaid)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.commitStockTx(tx, order.ID, order.Items); err != nil {
			return err
		}
		return s.orderRepo.WithTx(tx).UpdateStatus(order.ID, constants.OrderStatusPaid, map[string]interface{}{
			"paid_at": now,
		})
	})
	if err != nil {
		return nil, err
	}
	logger.Infow("order_paid", "order_no", order.OrderNo)
	return s.GetOrder(order.ID)
}

// Ship transitions a paid order to shipped, attaching carrier details when
// the order has no shipment row yet.
func (s *OrderService) Ship(orderID uint, input ShipInput) (*models.Order, error) {
	order, err := s.getForTransition(orderID, constants.OrderStatusShipped)
	if err != nil {
		return nil, err
	}
	if input.Cost.IsNegative() {
		return nil, ErrValidation
	}
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		if strings.TrimSpace(input.AWB) != "" && order.Shipment == nil {
			shipment := &models.Shipment{
				OrderID: order.ID,
				AWB:     strings.TrimSpace(input.AWB),
				Courier: strings.TrimSpace(input.Courier),
				Cost:    input.Cost,
			}
			if err := s.shipmentRepo.WithTx(tx).Create(shipment); err != nil {
				return err
			}
		}
		return s.orderRepo.WithTx(tx).UpdateStatus(order.ID, constants.OrderStatusShipped, nil)
	})
	if err != nil {
		return nil, err
	}
	logger.Infow("order_shipped", "order_no", order.OrderNo, "awb", input.AWB)
	return s.GetOrder(order.ID)
}

// Complete transitions a shipped order to completed.
func (s *OrderService) Complete(orderID uint) (*models.Order, error) {
	order, err := s.getForTransition(orderID, constants.OrderStatusCompleted)
	if err != nil {
		return nil, err
	}
	if err := s.orderRepo.UpdateStatus(order.ID, constants.OrderStatusCompleted, nil); err != nil {
		return nil, err
	}
	return s.GetOrder(order.ID)
}

// Cancel cancels a pending order. Pending orders never held stock, so
// nothing is returned to inventory.
func (s *OrderService) Cancel(orderID uint) (*models.Order, error) {
	order, err := s.getForTransition(orderID, constants.OrderStatusCanceled)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	err = s.orderRepo.UpdateStatus(order.ID, constants.OrderStatusCanceled, map[string]interface{}{
		"canceled_at": now,
	})
	if err != nil {
		return nil, err
	}
	logger.Infow("order_canceled", "order_no", order.OrderNo)
	return s.GetOrder(order.ID)
}

// GetOrder fetches an order with its items, channel and shipment.
func (s *OrderService) GetOrder(id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}
	return order, nil
}

// GetOrderByNo fetches an order by its order number.
func (s *OrderService) GetOrderByNo(orderNo string) (*models.Order, error) {
	order, err := s.orderRepo.GetByOrderNo(orderNo)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}
	return order, nil
}

// ListOrders lists orders by filter.
func (s *OrderService) ListOrders(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	return s.orderRepo.List(filter)
}

// ListChannels returns the seeded channel enumeration.
func (s *OrderService) ListChannels() ([]models.Channel, error) {
	return s.channelRepo.List()
}

func (s *OrderService) getForTransition(orderID uint, target string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}
	if !allowedTransitions[order.Status][target] {
		return nil, ErrInvalidTransition
	}
	return order, nil
}

// commitStockTx writes one OUT movement per line and takes the quantity out
// of stock with the conditional guard. Called only inside a transaction.
func (s *OrderService) commitStockTx(tx *gorm.DB, orderID uint, items []models.OrderItem) error {
	variantRepo := s.variantRepo.WithTx(tx)
	movementRepo := s.movementRepo.WithTx(tx)
	for _, item := range items {
		affected, err := variantRepo.DecrementStock(item.VariantID, item.Quantity)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInsufficientStock
		}
		movement := &models.StockMovement{
			VariantID:       item.VariantID,
			Type:            constants.StockMovementOut,
			Quantity:        item.Quantity,
			UnitCostApplied: item.CogsSnapshot,
			RefType:         constants.StockRefOrder,
			RefID:           orderID,
		}
		if err := movementRepo.Create(movement); err != nil {
			return err
		}
	}
	return nil
}

// resolveAddress turns the input into the immutable snapshot stored on the
// order. Stored addresses must exist, be visible and belong to the caller.
func (s *OrderService) resolveAddress(customerID *uint, input AddressInput) (models.JSON, error) {
	if input.AddressID != 0 {
		address, err := s.customerRepo.GetActiveAddressByID(input.AddressID)
		if err != nil {
			return nil, err
		}
		if address == nil {
			return nil, ErrNotFound
		}
		if customerID != nil && address.CustomerID != *customerID {
			return nil, ErrNotFound
		}
		return address.Snapshot(), nil
	}
	if strings.TrimSpace(input.Recipient) == "" ||
		strings.TrimSpace(input.Line1) == "" ||
		strings.TrimSpace(input.City) == "" {
		return nil, ErrAddressRequired
	}
	return models.JSON{
		"recipient":   input.Recipient,
		"phone":       input.Phone,
		"line1":       input.Line1,
		"line2":       input.Line2,
		"city":        input.City,
		"province":    input.Province,
		"postal_code": input.PostalCode,
	}, nil
}

// resolveOrderVariants loads the referenced variants. A missing id is a
// request error here, unlike the quote path where it is a lookup miss.
func (s *OrderService) resolveOrderVariants(items []OrderItemInput) (map[uint]*models.ProductVariant, error) {
	ids := make([]uint, 0, len(items))
	seen := make(map[uint]bool, len(items))
	for _, item := range items {
		if !seen[item.VariantID] {
			seen[item.VariantID] = true
			ids = append(ids, item.VariantID)
		}
	}
	variants, err := s.variantRepo.FindByIDs(ids)
	if err != nil {
		return nil, err
	}
	if len(variants) != len(ids) {
		return nil, ErrVariantMissing
	}
	byID := make(map[uint]*models.ProductVariant, len(variants))
	for i := range variants {
		byID[variants[i].ID] = &variants[i]
	}
	return byID, nil
}

// resolveImportItems matches imported lines to variants by id or SKU and
// builds order items with the marketplace price when one is given.
func (s *OrderService) resolveImportItems(items []ImportOrderItemInput) ([]models.OrderItem, error) {
	result := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, ErrValidation
		}
		var variant *models.ProductVariant
		var err error
		switch {
		case item.VariantID != 0:
			variant, err = s.variantRepo.GetByID(item.VariantID)
		case strings.TrimSpace(item.SKU) != "":
			variant, err = s.variantRepo.GetBySKU(item.SKU)
		default:
			return nil, ErrValidation
		}
		if err != nil {
			return nil, err
		}
		if variant == nil {
			return nil, ErrVariantMissing
		}
		price := variant.Price
		if item.UnitPrice != nil {
			if item.UnitPrice.IsNegative() {
				return nil, ErrValidation
			}
			price = *item.UnitPrice
		}
		result = append(result, models.OrderItem{
			VariantID:    variant.ID,
			SKU:          variant.SKU,
			Name:         variant.Name,
			Price:        price,
			Quantity:     item.Quantity,
			CogsSnapshot: variant.CogsCurrent,
			WeightGram:   variant.WeightGram * item.Quantity,
		})
	}
	return result, nil
}

// buildOrderItems snapshots catalog price, weight and current unit cost
// into order lines.
func buildOrderItems(items []OrderItemInput, variants map[uint]*models.ProductVariant) ([]models.OrderItem, decimal.Decimal, int) {
	orderItems := make([]models.OrderItem, 0, len(items))
	subtotal := decimal.Zero
	totalWeight := 0
	for _, item := range items {
		variant := variants[item.VariantID]
		lineWeight := variant.WeightGram * item.Quantity
		orderItems = append(orderItems, models.OrderItem{
			VariantID:    variant.ID,
			SKU:          variant.SKU,
			Name:         variant.Name,
			Price:        variant.Price,
			Quantity:     item.Quantity,
			CogsSnapshot: variant.CogsCurrent,
			WeightGram:   lineWeight,
		})
		subtotal = subtotal.Add(variant.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		totalWeight += lineWeight
	}
	return orderItems, subtotal, totalWeight
}

func validateOrderItems(items []OrderItemInput) error {
	if len(items) == 0 {
		return ErrOrderItemsRequired
	}
	for _, item := range items {
		if item.VariantID == 0 || item.Quantity <= 0 {
			return ErrValidation
		}
	}
	return nil
}

func generateOrderNo() string {
	now := time.Now().Format("20060102150405")
	return fmt.Sprintf("WK%s%s", now, randNumeric(6))
}

func randNumeric(length int) string {
	var b strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			b.WriteString("0")
			continue
		}
		b.WriteString(fmt.Sprintf("%d", n.Int64()))
	}
	return b.String()
}
