package service

import (
	"errors"
	"testing"

	"github.com/warungkita/internal/constants"
	"github.com/warungkita/internal/models"
)

func inlineAddress() AddressInput {
	return AddressInput{
		Recipient: "Budi",
		Phone:     "0812000000",
		Line1:     "Jl. Melati 1",
		City:      "Bandung",
	}
}

func TestCheckoutCreatesPendingWithoutStockMove(t *testing.T) {
	db := setupServiceTest(t)
	svc := newTestOrderService(db)

	variant := seedCatalog(t, db, "WEB-SKU", "85000", 10, "48000")

	order, err := svc.Checkout(CheckoutInput{
		Items:   []OrderItemInput{{VariantID: variant.ID, Quantity: 2}},
		Address: inlineAddress(),
	})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if order.Status != constants.OrderStatusPending {
		t.Fatalf("status want pending got %s", order.Status)
	}
	if order.OrderNo == "" {
		t.Fatalf("order number not generated")
	}
	if order.Subtotal.String() != "170000.00" {
		t.Fatalf("subtotal want 170000.00 got %s", order.Subtotal.String())
	}
	if order.ShippingFee.String() != "10000.00" {
		t.Fatalf("shipping fee want 10000.00 got %s", order.ShippingFee.String())
	}
	if len(order.Items) != 1 || order.Items[0].CogsSnapshot.String() != "48000.00" {
		t.Fatalf("cogs snapshot not taken: %+v", order.Items)
	}
	if order.ShippingAddressJSON["recipient"] != "Budi" {
		t.Fatalf("address snapshot missing: %v", order.ShippingAddressJSON)
	}

	// Pending orders hold no stock.
	if got := reloadVariant(t, db, variant.ID); got.StockOnHand != 10 {
		t.Fatalf("stock want 10 got %d", got.StockOnHand)
	}
	if movements := movementsFor(t, db, variant.ID); len(movements) != 0 {
		t.Fatalf("movement count want 0 got %d", len(movements))
	}
}

func TestCheckoutRequiresAddress(t *testing.T) {
	db := setupServiceTest(t)
	svc := newTestOrderService(db)

	variant := seedCatalog(t, db, "WEB-SKU-2", "85000", 10, "48000")

	_, err := svc.Checkout(CheckoutInput{
		Items: []OrderItemInput{{VariantID: variant.ID, Quantity: 1}},
	})
	if !errors.Is(err, ErrAddressRequired) {
		t.Fatalf("want ErrAddressRequired got %v", err)
	}
}

func TestCheckoutRejectsInactiveVariant(t *testing.T) {
	db := setupServiceTest(t)
	svc := newTestOrderService(db)

	variant := seedCatalog(t, db, "WEB-SKU-3", "85000", 10, "48000")
	if err := db.Model(variant).Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate variant failed: %v", err)
	}

	_, err := svc.Checkout(CheckoutInput{
		Items:   []OrderItemInput{{VariantID: variant.ID, Quantity: 1}},
		Address: inlineAddress(),
	})
	if !errors.Is(err, ErrVariantInactive) {
		t.Fatalf("want ErrVariantInactive got %v", err)
	}
}

func TestMarkPaidCommitsStock(t *testing.T) {
	db := setupServiceTest(t)
	svc := newTestOrderService(db)

	variant := seedCatalog(t, db, "WEB-SKU-4", "85000", 10, "48000")
	order, err := svc.Checkout(CheckoutInput{
		Items:   []OrderItemInput{{VariantID: variant.ID, Quantity: 3}},
		Address: inlineAddress(),
	})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	paid, err := svc.MarkPaid(order.ID)
	if err != nil {
		t.Fatalf("mark paid failed: %v", err)
	}
	if paid.Status != constants.OrderStatusPaid || paid.PaidAt == nil {
		t.Fatalf("order not paid: status=%s paid_at=%v", paid.Status, paid.PaidAt)
	}

	if got := reloadVariant(t, db, variant.ID); got.StockOnHand != 7 {
		t.Fatalf("stock want 7 got %d", got.StockOnHand)
	}
	movements := movementsFor(t, db, variant.ID)
	if len(movements) != 1 {
		t.Fatalf("movement count want 1 got %d", len(movements))
	}
	m := movements[0]
	if m.Type != constants.StockMovementOut || m.Quantity != 3 {
		t.Fatalf("movement want OUT/3 got %s/%d", m.Type, m.Quantity)
	}
	if m.RefType != constants.StockRefOrder || m.RefID != order.ID {
		t.Fatalf("movement ref want order/%d got %s/%d", order.ID, m.RefType, m.RefID)
	}
	if m.UnitCostApplied.String() != "48000.00" {
		t.Fatalf("movement unit cost want 48000.00 got %s", m.UnitCostApplied.String())
	}
}

func TestMarkPaidInsufficientStockFailsWholeOrder(t *testing.T) {
	db := setupServiceTest(t)
	svc := newTestOrderService(db)

	variant := seedCatalog(t, db, "WEB-SKU-5", "85000", 2, "48000")
	order, err := svc.Checkout(CheckoutInput{
		Items:   []OrderItemInput{{VariantID: variant.ID, Quantity: 2}},
		Address: inlineAddress(),
	})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	// Stock sold elsewhere between checkout and payment.
	if err := db.Model(variant).Update("stock_on_hand", 1).Error; err != nil {
		t.Fatalf("drain stock failed: %v", err)
	}

	if _, err := svc.MarkPaid(order.ID); !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("want ErrInsufficientStock got %v", err)
	}

	// Transaction rolled back: still pending, stock untouched, no movement.
	current, err := svc.GetOrder(order.ID)
	if err != nil {
		t.Fatalf("reload order failed: %v", err)
	}
	if current.Status != constants.OrderStatusPending {
		t.Fatalf("status want pending got %s", current.Status)
	}
	if got := reloadVariant(t, db, variant.ID); got.StockOnHand != 1 {
		t.Fatalf("stock want 1 got %d", got.StockOnHand)
	}
	if movements := movementsFor(t, db, variant.ID); len(movements) != 0 {
		t.Fatalf("movement count want 0 got %d", len(movements))
	}
}

func TestCreatePOSSaleTakesStockImmediately(t *testing.T) {
	db := setupServiceTest(t)
	svc := newTestOrderService(db)

	variant := seedCatalog(t, db, "POS-SKU", "55000", 5, "31000")

	order, err := svc.CreatePOSSale(POSSaleInput{
		Items:         []OrderItemInput{{VariantID: variant.ID, Quantity: 2}},
		DiscountTotal: testMoney("5000"),
	})
	if err != nil {
		t.Fatalf("pos sale failed: %v", err)
	}
	if order.Status != constants.OrderStatusPaid || order.PaidAt == nil {
		t.Fatalf("pos order not paid: %s", order.Status)
	}
	if order.Channel == nil || order.Channel.Key != constants.ChannelOffline {
		t.Fatalf("channel want offline got %+v", order.Channel)
	}
	if order.ShippingFee.String() != "0.00" {
		t.Fatalf("pos shipping want 0.00 got %s", order.ShippingFee.String())
	}
	if order.DiscountTotal.String() != "5000.00" {
		t.Fatalf("discount want 5000.00 got %s", order.DiscountTotal.String())
	}

	if got := reloadVariant(t, db, variant.ID); got.StockOnHand != 3 {
		t.Fatalf("stock want 3 got %d", got.StockOnHand)
	}
	if movements := movementsFor(t, db, variant.ID); len(movements) != 1 {
		t.Fatalf("movement count want 1 got %d", len(movements))
	}
}

func TestCreatePOSSaleInsufficientStock(t *testing.T) {
	db := setupServiceTest(t)
	svc := newTestOrderService(db)

	variant := seedCatalog(t, db, "POS-SKU-2", "55000", 1, "31000")

	_, err := svc.CreatePOSSale(POSSaleInput{
		Items: []OrderItemInput{{VariantID: variant.ID, Quantity: 2}},
	})
	if !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("want ErrInsufficientStock got %v", err)
	}

	// Nothing persisted.
	var orderCount int64
	db.Model(&models.Order{}).Count(&orderCount)
	if orderCount != 0 {
		t.Fatalf("order count want 0 got %d", orderCount)
	}
	if got := reloadVariant(t, db, variant.ID); got.StockOnHand != 1 {
		t.Fatalf("stock want 1 got %d", got.StockOnHand)
	}
}

func TestImportOrder(t *testing.T) {
	db := setupServiceTest(t)
	svc := newTestOrderService(db)

	variant := seedCatalog(t, db, "IMP-SKU", "85000", 10, "48000")

	marketPrice := testMoney("79000")
	order, err := svc.ImportOrder(ImportOrderInput{
		ChannelKey:  constants.ChannelShopee,
		ExternalRef: "SP-1001",
		Items: []ImportOrderItemInput{
			{SKU: "imp-sku", Quantity: 2, UnitPrice: &marketPrice},
		},
		FeesTotal:    testMoney("7900"),
		ShippingFee:  testMoney("12000"),
		AWB:          "JNE123",
		Courier:      "JNE",
		ShippingCost: testMoney("11000"),
	})
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if order.Status != constants.OrderStatusPaid {
		t.Fatalf("status want paid got %s", order.Status)
	}
	if order.ExternalRef != "SP-1001" {
		t.Fatalf("external ref want SP-1001 got %s", order.ExternalRef)
	}
	// Marketplace price overrides the catalog price.
	if order.Subtotal.String() != "158000.00" {
		t.Fatalf("subtotal want 158000.00 got %s", order.Subtotal.String())
	}
	if order.Shipment == nil || order.Shipment.AWB != "JNE123" {
		t.Fatalf("shipment missing: %+v", order.Shipment)
	}
	if order.Shipment.Cost.String() != "11000.00" {
		t.Fatalf("shipment cost want 11000.00 got %s", order.Shipment.Cost.String())
	}
	if got := reloadVariant(t, db, variant.ID); got.StockOnHand != 8 {
		t.Fatalf("stock want 8 got %d", got.StockOnHand)
	}
}

func TestImportOrderDuplicateRef(t *testing.T) {
	db := setupServiceTest(t)
	svc := newTestOrderService(db)

	variant := seedCatalog(t, db, "IMP-SKU-2", "85000", 10, "48000")

	input := ImportOrderInput{
		ChannelKey:  constants.ChannelTokopedia,
		ExternalRef: "TP-2002",
		Items:       []ImportOrderItemInput{{VariantID: variant.ID, Quantity: 1}},
	}
	if _, err := svc.ImportOrder(input); err != nil {
		t.Fatalf("first import failed: %v", err)
	}
	if _, err := svc.ImportOrder(input); !errors.Is(err, ErrDuplicateImportRef) {
		t.Fatalf("want ErrDuplicateImportRef got %v", err)
	}

	// Same ref on a different channel is a different order.
	input.ChannelKey = constants.ChannelShopee
	if _, err := svc.ImportOrder(input); err != nil {
		t.Fatalf("cross-channel import failed: %v", err)
	}
}

func TestImportOrderRejectsWebChannel(t *testing.T) {
	db := setupServiceTest(t)
	svc := newTestOrderService(db)

	variant := seedCatalog(t, db, "IMP-SKU-3", "85000", 10, "48000")

	_, err := svc.ImportOrder(ImportOrderInput{
		ChannelKey: constants.ChannelWeb,
		Items:      []ImportOrderItemInput{{VariantID: variant.ID, Quantity: 1}},
	})
	if !errors.Is(err, ErrChannelUnknown) {
		t.Fatalf("want ErrChannelUnknown got %v", err)
	}
}

func TestStatusMachine(t *testing.T) {
	db := setupServiceTest(t)
	svc := newTestOrderService(db)

	variant := seedCatalog(t, db, "ST-SKU", "85000", 10, "48000")
	order, err := svc.Checkout(CheckoutInput{
		Items:   []OrderItemInput{{VariantID: variant.ID, Quantity: 1}},
		Address: inlineAddress(),
	})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	// pending cannot ship or complete.
	if _, err := svc.Ship(order.ID, ShipInput{}); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("pending->shipped want ErrInvalidTransition got %v", err)
	}
	if _, err := svc.Complete(order.ID); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("pending->completed want ErrInvalidTransition got %v", err)
	}

	if _, err := svc.MarkPaid(order.ID); err != nil {
		t.Fatalf("mark paid failed: %v", err)
	}
	// paid cannot cancel or pay again.
	if _, err := svc.Cancel(order.ID); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("paid->canceled want ErrInvalidTransition got %v", err)
	}
	if _, err := svc.MarkPaid(order.ID); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("paid->paid want ErrInvalidTransition got %v", err)
	}

	shipped, err := svc.Ship(order.ID, ShipInput{AWB: "SIC-001", Courier: "SiCepat", Cost: testMoney("9000")})
	if err != nil {
		t.Fatalf("ship failed: %v", err)
	}
	if shipped.Shipment == nil || shipped.Shipment.AWB != "SIC-001" {
		t.Fatalf("shipment missing after ship: %+v", shipped.Shipment)
	}

	completed, err := svc.Complete(order.ID)
	if err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	if completed.Status != constants.OrderStatusCompleted {
		t.Fatalf("status want completed got %s", completed.Status)
	}
}

func TestCheckoutMissingVariantPersistsNothing(t *testing.T) {
	db := setupServiceTest(t)
	svc := newTestOrderService(db)

	variant := seedCatalog(t, db, "MISS-SKU", "85000", 10, "48000")

	_, err := svc.Checkout(CheckoutInput{
		Items: []OrderItemInput{
			{VariantID: variant.ID, Quantity: 1},
			{VariantID: variant.ID + 99, Quantity: 1},
		},
		Address: inlineAddress(),
	})
	if !errors.Is(err, ErrVariantMissing) {
		t.Fatalf("want ErrVariantMissing got %v", err)
	}

	var orderCount int64
	db.Model(&models.Order{}).Count(&orderCount)
	if orderCount != 0 {
		t.Fatalf("order count want 0 got %d", orderCount)
	}
}

func TestCancelPendingReturnsNothing(t *testing.T) {
	db := setupServiceTest(t)
	svc := newTestOrderService(db)

	variant := seedCatalog(t, db, "CN-SKU", "85000", 10, "48000")
	order, err := svc.Checkout(CheckoutInput{
		Items:   []OrderItemInput{{VariantID: variant.ID, Quantity: 4}},
		Address: inlineAddress(),
	})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	canceled, err := svc.Cancel(order.ID)
	if err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if canceled.Status != constants.OrderStatusCanceled || canceled.CanceledAt == nil {
		t.Fatalf("order not canceled: %s", canceled.Status)
	}
	// The pending order never held stock, so none comes back.
	if got := reloadVariant(t, db, variant.ID); got.StockOnHand != 10 {
		t.Fatalf("stock want 10 got %d", got.StockOnHand)
	}
	if movements := movementsFor(t, db, variant.ID); len(movements) != 0 {
		t.Fatalf("movement count want 0 got %d", len(movements))
	}
}
