package service

import (
	"testing"
	"time"

	"github.com/warungkita/internal/constants"
	"github.com/warungkita/internal/repository"
)

// seedRevenueScenario books two paid orders, one pending order and one
// canceled order plus two ledger entries, all dated now.
func seedRevenueScenario(t *testing.T, svc *OrderService, expenseSvc *ExpenseService, variantID uint) {
	t.Helper()

	if _, err := svc.CreatePOSSale(POSSaleInput{
		Items:         []OrderItemInput{{VariantID: variantID, Quantity: 2}},
		DiscountTotal: testMoney("10000"),
	}); err != nil {
		t.Fatalf("pos sale failed: %v", err)
	}

	marketPrice := testMoney("90000")
	if _, err := svc.ImportOrder(ImportOrderInput{
		ChannelKey:   constants.ChannelShopee,
		ExternalRef:  "SP-REP-1",
		Items:        []ImportOrderItemInput{{VariantID: variantID, Quantity: 1, UnitPrice: &marketPrice}},
		FeesTotal:    testMoney("9000"),
		ShippingFee:  testMoney("12000"),
		AWB:          "JNE-REP",
		ShippingCost: testMoney("11000"),
	}); err != nil {
		t.Fatalf("import failed: %v", err)
	}

	// Pending and canceled orders must stay invisible to reports.
	if _, err := svc.Checkout(CheckoutInput{
		Items:   []OrderItemInput{{VariantID: variantID, Quantity: 1}},
		Address: inlineAddress(),
	}); err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	toCancel, err := svc.Checkout(CheckoutInput{
		Items:   []OrderItemInput{{VariantID: variantID, Quantity: 1}},
		Address: inlineAddress(),
	})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if _, err := svc.Cancel(toCancel.ID); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	today := time.Now().UTC().Format("2006-01-02")
	if _, err := expenseSvc.Create(ExpenseInput{Type: "EXPENSE", Amount: testMoney("50000"), Date: today}); err != nil {
		t.Fatalf("create expense failed: %v", err)
	}
	if _, err := expenseSvc.Create(ExpenseInput{Type: "INCOME", Amount: testMoney("20000"), Date: today}); err != nil {
		t.Fatalf("create income failed: %v", err)
	}
}

func reportRange() (string, string) {
	now := time.Now().UTC()
	return now.AddDate(0, 0, -1).Format("2006-01-02"), now.AddDate(0, 0, 1).Format("2006-01-02")
}

func TestProfitLossReport(t *testing.T) {
	db := setupServiceTest(t)
	orderSvc := newTestOrderService(db)
	expenseSvc := NewExpenseService(repository.NewExpenseRepository(db))
	reportSvc := newTestReportService(db)

	variant := seedCatalog(t, db, "REP-SKU", "100000", 10, "60000")
	seedRevenueScenario(t, orderSvc, expenseSvc, variant.ID)

	from, to := reportRange()
	pl, err := reportSvc.ProfitLoss(from, to)
	if err != nil {
		t.Fatalf("profit loss failed: %v", err)
	}

	if pl.OrderCount != 2 {
		t.Fatalf("order count want 2 got %d", pl.OrderCount)
	}
	if pl.Revenue.String() != "290000.00" {
		t.Fatalf("revenue want 290000.00 got %s", pl.Revenue.String())
	}
	if pl.Discounts.String() != "10000.00" {
		t.Fatalf("discounts want 10000.00 got %s", pl.Discounts.String())
	}
	if pl.Fees.String() != "9000.00" {
		t.Fatalf("fees want 9000.00 got %s", pl.Fees.String())
	}
	if pl.ShippingRevenue.String() != "12000.00" {
		t.Fatalf("shipping revenue want 12000.00 got %s", pl.ShippingRevenue.String())
	}
	if pl.Cogs.String() != "180000.00" {
		t.Fatalf("cogs want 180000.00 got %s", pl.Cogs.String())
	}
	if pl.ShippingCost.String() != "11000.00" {
		t.Fatalf("shipping cost want 11000.00 got %s", pl.ShippingCost.String())
	}
	if pl.Expenses.String() != "50000.00" {
		t.Fatalf("expenses want 50000.00 got %s", pl.Expenses.String())
	}
	if pl.OtherIncome.String() != "20000.00" {
		t.Fatalf("other income want 20000.00 got %s", pl.OtherIncome.String())
	}
	// gross = revenue - cogs - fees
	if pl.GrossProfit.String() != "101000.00" {
		t.Fatalf("gross want 101000.00 got %s", pl.GrossProfit.String())
	}
	// net = revenue + shipping revenue - discounts - cogs - fees
	//       - shipping cost - expenses + other income
	if pl.NetProfit.String() != "62000.00" {
		t.Fatalf("net want 62000.00 got %s", pl.NetProfit.String())
	}
}

func TestSalesReportCountsOnlyRevenueOrders(t *testing.T) {
	db := setupServiceTest(t)
	orderSvc := newTestOrderService(db)
	expenseSvc := NewExpenseService(repository.NewExpenseRepository(db))
	reportSvc := newTestReportService(db)

	variant := seedCatalog(t, db, "REP-SKU-2", "100000", 10, "60000")
	seedRevenueScenario(t, orderSvc, expenseSvc, variant.ID)

	from, to := reportRange()
	report, err := reportSvc.Sales(from, to)
	if err != nil {
		t.Fatalf("sales report failed: %v", err)
	}
	if report.TotalOrders != 2 {
		t.Fatalf("total orders want 2 got %d", report.TotalOrders)
	}
	// Daily revenue is subtotal - discounts + shipping billed to the buyer.
	if report.TotalRevenue.String() != "292000.00" {
		t.Fatalf("total revenue want 292000.00 got %s", report.TotalRevenue.String())
	}
	var dayOrders int64
	for _, day := range report.Days {
		dayOrders += day.OrderCount
	}
	if dayOrders != 2 {
		t.Fatalf("per-day orders want 2 got %d", dayOrders)
	}
}

func TestReportRangeFallback(t *testing.T) {
	db := setupServiceTest(t)
	reportSvc := newTestReportService(db)

	report, err := reportSvc.Sales("not-a-date", "")
	if err != nil {
		t.Fatalf("sales report failed: %v", err)
	}
	now := time.Now().UTC()
	wantTo := now.Format("2006-01-02")
	wantFrom := now.AddDate(0, 0, -29).Format("2006-01-02")
	if report.To != wantTo {
		t.Fatalf("to want %s got %s", wantTo, report.To)
	}
	if report.From != wantFrom {
		t.Fatalf("from want %s got %s", wantFrom, report.From)
	}

	// An inverted range falls back the same way.
	report, err = reportSvc.Sales("2026-05-10", "2026-05-01")
	if err != nil {
		t.Fatalf("sales report failed: %v", err)
	}
	if report.To != wantTo || report.From != wantFrom {
		t.Fatalf("inverted range should fall back, got %s..%s", report.From, report.To)
	}
}

func TestExportSalesXLSX(t *testing.T) {
	db := setupServiceTest(t)
	orderSvc := newTestOrderService(db)
	expenseSvc := NewExpenseService(repository.NewExpenseRepository(db))
	reportSvc := newTestReportService(db)

	variant := seedCatalog(t, db, "REP-SKU-3", "100000", 10, "60000")
	seedRevenueScenario(t, orderSvc, expenseSvc, variant.ID)

	from, to := reportRange()
	f, err := reportSvc.ExportSalesXLSX(from, to)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	defer f.Close()

	if f.GetSheetName(0) != "Sales" {
		t.Fatalf("sheet name want Sales got %s", f.GetSheetName(0))
	}
	header, err := f.GetCellValue("Sales", "A1")
	if err != nil {
		t.Fatalf("read header failed: %v", err)
	}
	if header != "Date" {
		t.Fatalf("header want Date got %s", header)
	}
	rows, err := f.GetRows("Sales")
	if err != nil {
		t.Fatalf("read rows failed: %v", err)
	}
	last := rows[len(rows)-1]
	if last[0] != "Total" || last[2] != "292000.00" {
		t.Fatalf("total row mismatch: %v", last)
	}
}
