package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/warungkita/internal/config"
	"github.com/warungkita/internal/models"
	"github.com/warungkita/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// setupServiceTest wires models.DB to a throwaway in-memory database and
// migrates the full schema. Services reach the global handle for their
// transactions, so every test gets a unique DSN to stay isolated.
func setupServiceTest(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:svc_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	models.DB = db
	if err := models.AutoMigrate(); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	if err := models.InitDefaultChannels(); err != nil {
		t.Fatalf("seed channels failed: %v", err)
	}
	return db
}

func testShippingConfig() config.ShippingConfig {
	return config.ShippingConfig{BaseCost: 10000, CostPerKg: 6000}
}

func newTestQuoteService(db *gorm.DB) *QuoteService {
	return NewQuoteService(repository.NewVariantRepository(db), testShippingConfig())
}

func newTestOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(
		repository.NewOrderRepository(db),
		repository.NewVariantRepository(db),
		repository.NewStockMovementRepository(db),
		repository.NewShipmentRepository(db),
		repository.NewChannelRepository(db),
		repository.NewCustomerRepository(db),
		newTestQuoteService(db),
	)
}

func newTestPurchaseService(db *gorm.DB) *PurchaseService {
	return NewPurchaseService(
		repository.NewPurchaseOrderRepository(db),
		repository.NewVariantRepository(db),
		repository.NewStockMovementRepository(db),
	)
}

func newTestStockService(db *gorm.DB) *StockService {
	return NewStockService(
		repository.NewVariantRepository(db),
		repository.NewStockMovementRepository(db),
	)
}

func newTestProductService(db *gorm.DB) *ProductService {
	return NewProductService(
		repository.NewProductRepository(db),
		repository.NewVariantRepository(db),
		repository.NewCategoryRepository(db),
	)
}

func newTestReportService(db *gorm.DB) *ReportService {
	return NewReportService(
		repository.NewReportRepository(db),
		repository.NewExpenseRepository(db),
		config.ReportConfig{DefaultRangeDays: 30},
	)
}

func testMoney(s string) models.Money {
	return models.NewMoneyFromDecimal(decimal.RequireFromString(s))
}

func seedCategory(t *testing.T, db *gorm.DB, slug string, components ...models.CategoryOperationalCostComponent) *models.ProductCategory {
	t.Helper()
	cat := &models.ProductCategory{
		Slug:           slug,
		Name:           slug,
		CostComponents: components,
	}
	if err := db.Create(cat).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	return cat
}

func seedProduct(t *testing.T, db *gorm.DB, categoryID uint, slug string) *models.Product {
	t.Helper()
	product := &models.Product{
		CategoryID: categoryID,
		Slug:       slug,
		Name:       slug,
		IsActive:   true,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func seedVariant(t *testing.T, db *gorm.DB, productID uint, sku string, price string, weightGram int, stock int, cogs string) *models.ProductVariant {
	t.Helper()
	variant := &models.ProductVariant{
		ProductID:     productID,
		SKU:           sku,
		SKUNormalized: models.NormalizeSKU(sku),
		Name:          sku,
		Price:         testMoney(price),
		WeightGram:    weightGram,
		StockOnHand:   stock,
		CogsCurrent:   testMoney(cogs),
		IsActive:      true,
	}
	if err := db.Create(variant).Error; err != nil {
		t.Fatalf("create variant failed: %v", err)
	}
	return variant
}

// seedCatalog creates one category/product pair and a variant ready to sell.
func seedCatalog(t *testing.T, db *gorm.DB, sku string, price string, stock int, cogs string) *models.ProductVariant {
	t.Helper()
	cat := seedCategory(t, db, "cat-"+sku)
	product := seedProduct(t, db, cat.ID, "prod-"+sku)
	return seedVariant(t, db, product.ID, sku, price, 250, stock, cogs)
}

func reloadVariant(t *testing.T, db *gorm.DB, id uint) *models.ProductVariant {
	t.Helper()
	var variant models.ProductVariant
	if err := db.First(&variant, id).Error; err != nil {
		t.Fatalf("reload variant failed: %v", err)
	}
	return &variant
}

func movementsFor(t *testing.T, db *gorm.DB, variantID uint) []models.StockMovement {
	t.Helper()
	var movements []models.StockMovement
	if err := db.Where("variant_id = ?", variantID).Order("id").Find(&movements).Error; err != nil {
		t.Fatalf("load movements failed: %v", err)
	}
	return movements
}
