package main

import (
	"time"

	"github.com/warungkita/internal/config"
	"github.com/warungkita/internal/constants"
	"github.com/warungkita/internal/logger"
	"github.com/warungkita/internal/models"
	"github.com/warungkita/internal/repository"
	"github.com/warungkita/internal/service"

	"github.com/shopspring/decimal"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("failed to connect database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("failed to migrate database: %v", err)
	}
	if err := models.InitDefaultChannels(); err != nil {
		stdLog.Fatalf("failed to seed channels: %v", err)
	}

	// Categories with their per-unit operational cost components.
	categories := []models.ProductCategory{
		{
			Slug: "coffee-beans",
			Name: "Coffee Beans",
			CostComponents: []models.CategoryOperationalCostComponent{
				{Name: "Pouch + valve", AmountPerUnit: money("2500")},
				{Name: "Label printing", AmountPerUnit: money("500")},
			},
		},
		{
			Slug: "brew-gear",
			Name: "Brew Gear",
			CostComponents: []models.CategoryOperationalCostComponent{
				{Name: "Protective packaging", AmountPerUnit: money("4000")},
			},
		},
	}
	for i := range categories {
		cat := &categories[i]
		var existing models.ProductCategory
		if err := models.DB.Where("slug = ?", cat.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(cat).Error; err != nil {
				stdLog.Printf("failed to create category %s: %v", cat.Slug, err)
			} else {
				stdLog.Printf("created category: %s", cat.Slug)
			}
		} else {
			*cat = existing
			stdLog.Printf("category already exists: %s", cat.Slug)
		}
	}
	coffeeID := categories[0].ID
	gearID := categories[1].ID

	products := []models.Product{
		{
			CategoryID:  coffeeID,
			Slug:        "arabica-gayo",
			Name:        "Arabica Gayo",
			Description: "Single origin from the Gayo highlands, medium roast.",
			IsActive:    true,
			SortOrder:   1,
		},
		{
			CategoryID:  coffeeID,
			Slug:        "robusta-lampung",
			Name:        "Robusta Lampung",
			Description: "Bold robusta, good for milk drinks.",
			IsActive:    true,
			SortOrder:   2,
		},
		{
			CategoryID:  gearID,
			Slug:        "v60-dripper",
			Name:        "V60 Dripper",
			Description: "Ceramic cone dripper, size 02.",
			IsActive:    true,
			SortOrder:   3,
		},
	}
	for i := range products {
		p := &products[i]
		var existing models.Product
		if err := models.DB.Where("slug = ?", p.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(p).Error; err != nil {
				stdLog.Printf("failed to create product %s: %v", p.Slug, err)
			} else {
				stdLog.Printf("created product: %s", p.Slug)
			}
		} else {
			*p = existing
			stdLog.Printf("product already exists: %s", p.Slug)
		}
	}

	variants := []models.ProductVariant{
		{
			ProductID:                  products[0].ID,
			SKU:                        "GAYO-200",
			Name:                       "200g",
			Price:                      money("85000"),
			WeightGram:                 250,
			DefaultPurchasePrice:       money("45000"),
			DefaultOperationalCostUnit: money("3000"),
			IsActive:                   true,
		},
		{
			ProductID:                  products[0].ID,
			SKU:                        "GAYO-1KG",
			Name:                       "1kg",
			Price:                      money("380000"),
			WeightGram:                 1050,
			DefaultPurchasePrice:       money("210000"),
			DefaultOperationalCostUnit: money("3000"),
			IsActive:                   true,
		},
		{
			ProductID:                  products[1].ID,
			SKU:                        "LAMP-200",
			Name:                       "200g",
			Price:                      money("55000"),
			WeightGram:                 250,
			DefaultPurchasePrice:       money("28000"),
			DefaultOperationalCostUnit: money("3000"),
			IsActive:                   true,
		},
		{
			ProductID:                  products[2].ID,
			SKU:                        "V60-02-WHT",
			Name:                       "White",
			Price:                      money("145000"),
			WeightGram:                 600,
			DefaultPurchasePrice:       money("90000"),
			DefaultOperationalCostUnit: money("4000"),
			IsActive:                   true,
		},
	}
	for i := range variants {
		v := &variants[i]
		v.SKUNormalized = models.NormalizeSKU(v.SKU)
		v.CogsCurrent = models.NewMoneyFromDecimal(v.DefaultPurchasePrice.Add(v.DefaultOperationalCostUnit.Decimal))
		var existing models.ProductVariant
		if err := models.DB.Where("sku_normalized = ?", v.SKUNormalized).First(&existing).Error; err != nil {
			if err := models.DB.Create(v).Error; err != nil {
				stdLog.Printf("failed to create variant %s: %v", v.SKU, err)
			} else {
				stdLog.Printf("created variant: %s", v.SKU)
			}
		} else {
			*v = existing
			stdLog.Printf("variant already exists: %s", v.SKU)
		}
	}

	// Initial stock arrives through a real purchase receipt so the
	// movement ledger and weighted-average costs start consistent.
	var poCount int64
	models.DB.Model(&models.PurchaseOrder{}).Count(&poCount)
	if poCount == 0 {
		purchaseService := service.NewPurchaseService(
			repository.NewPurchaseOrderRepository(models.DB),
			repository.NewVariantRepository(models.DB),
			repository.NewStockMovementRepository(models.DB),
		)
		po, err := purchaseService.CreateDraft(service.PurchaseOrderInput{
			SupplierName: "PT Kopi Nusantara",
			Note:         "opening stock",
			Items: []service.PurchaseItemInput{
				{VariantID: variants[0].ID, Quantity: 40, UnitCost: money("45000"), OperationalCostUnit: money("3000")},
				{VariantID: variants[1].ID, Quantity: 10, UnitCost: money("210000"), OperationalCostUnit: money("3000")},
				{VariantID: variants[2].ID, Quantity: 60, UnitCost: money("28000"), OperationalCostUnit: money("3000")},
				{VariantID: variants[3].ID, Quantity: 15, UnitCost: money("90000"), OperationalCostUnit: money("4000")},
			},
		})
		if err != nil {
			stdLog.Fatalf("failed to create opening purchase order: %v", err)
		}
		if _, err := purchaseService.Receive(po.ID); err != nil {
			stdLog.Fatalf("failed to receive opening purchase order: %v", err)
		}
		stdLog.Printf("received opening purchase order: %s", po.Code)
	} else {
		stdLog.Printf("purchase orders already present, skipped opening stock")
	}

	var expenseCount int64
	models.DB.Model(&models.Expense{}).Count(&expenseCount)
	if expenseCount == 0 {
		now := time.Now().UTC()
		expenses := []models.Expense{
			{Type: constants.ExpenseTypeExpense, Amount: money("1500000"), Note: "Kiosk rent", Date: now.AddDate(0, 0, -20)},
			{Type: constants.ExpenseTypeExpense, Amount: money("250000"), Note: "Electricity", Date: now.AddDate(0, 0, -10)},
			{Type: constants.ExpenseTypeIncome, Amount: money("300000"), Note: "Barista workshop fee", Date: now.AddDate(0, 0, -5)},
		}
		for _, e := range expenses {
			if err := models.DB.Create(&e).Error; err != nil {
				stdLog.Printf("failed to create expense %q: %v", e.Note, err)
			}
		}
		stdLog.Printf("created %d ledger entries", len(expenses))
	} else {
		stdLog.Printf("expenses already present, skipped ledger seed")
	}

	stdLog.Printf("seed complete")
}

func money(s string) models.Money {
	return models.NewMoneyFromDecimal(decimal.RequireFromString(s))
}
