package service

import (
	"errors"
	"testing"

	"github.com/warungkita/internal/models"
)

func TestCreateVariantDefaultsCostFromCategory(t *testing.T) {
	db := setupServiceTest(t)
	svc := newTestProductService(db)

	cat := seedCategory(t, db, "beans",
		models.CategoryOperationalCostComponent{Name: "Pouch", AmountPerUnit: testMoney("2500")},
		models.CategoryOperationalCostComponent{Name: "Label", AmountPerUnit: testMoney("500")},
	)
	product := seedProduct(t, db, cat.ID, "gayo")

	variant, err := svc.CreateVariant(product.ID, VariantInput{
		SKU:                  "GAYO-200",
		Name:                 "200g",
		Price:                testMoney("85000"),
		WeightGram:           250,
		DefaultPurchasePrice: testMoney("45000"),
	})
	if err != nil {
		t.Fatalf("create variant failed: %v", err)
	}
	if variant.StockOnHand != 0 {
		t.Fatalf("new variant stock want 0 got %d", variant.StockOnHand)
	}
	if variant.DefaultOperationalCostUnit.String() != "3000.00" {
		t.Fatalf("operational cost want 3000.00 got %s", variant.DefaultOperationalCostUnit.String())
	}
	// Initial unit cost is purchase price plus operational cost.
	if variant.CogsCurrent.String() != "48000.00" {
		t.Fatalf("cogs want 48000.00 got %s", variant.CogsCurrent.String())
	}
}

func TestCreateVariantOperationalCostOverride(t *testing.T) {
	db := setupServiceTest(t)
	svc := newTestProductService(db)

	cat := seedCategory(t, db, "beans-2",
		models.CategoryOperationalCostComponent{Name: "Pouch", AmountPerUnit: testMoney("2500")},
	)
	product := seedProduct(t, db, cat.ID, "gayo-2")

	override := testMoney("1000")
	variant, err := svc.CreateVariant(product.ID, VariantInput{
		SKU:                        "GAYO-1KG",
		Price:                      testMoney("380000"),
		DefaultPurchasePrice:       testMoney("210000"),
		DefaultOperationalCostUnit: &override,
	})
	if err != nil {
		t.Fatalf("create variant failed: %v", err)
	}
	if variant.CogsCurrent.String() != "211000.00" {
		t.Fatalf("cogs want 211000.00 got %s", variant.CogsCurrent.String())
	}
}

func TestSKUConflictIsCaseInsensitive(t *testing.T) {
	db := setupServiceTest(t)
	svc := newTestProductService(db)

	cat := seedCategory(t, db, "beans-3")
	product := seedProduct(t, db, cat.ID, "gayo-3")

	if _, err := svc.CreateVariant(product.ID, VariantInput{
		SKU:   "Gayo-200",
		Price: testMoney("85000"),
	}); err != nil {
		t.Fatalf("create variant failed: %v", err)
	}
	_, err := svc.CreateVariant(product.ID, VariantInput{
		SKU:   "gayo-200",
		Price: testMoney("85000"),
	})
	if !errors.Is(err, ErrSKUConflict) {
		t.Fatalf("want ErrSKUConflict got %v", err)
	}
}

func TestUpdateVariantLeavesStockAndCostAlone(t *testing.T) {
	db := setupServiceTest(t)
	svc := newTestProductService(db)

	cat := seedCategory(t, db, "beans-4")
	product := seedProduct(t, db, cat.ID, "gayo-4")
	variant := seedVariant(t, db, product.ID, "UPD-SKU", "85000", 250, 7, "48000")

	updated, err := svc.UpdateVariant(variant.ID, VariantInput{
		SKU:        "UPD-SKU",
		Name:       "renamed",
		Price:      testMoney("90000"),
		WeightGram: 300,
	})
	if err != nil {
		t.Fatalf("update variant failed: %v", err)
	}
	if updated.Price.String() != "90000.00" || updated.Name != "renamed" {
		t.Fatalf("catalog fields not updated: %+v", updated)
	}
	if updated.StockOnHand != 7 {
		t.Fatalf("stock want 7 got %d", updated.StockOnHand)
	}
	if updated.CogsCurrent.String() != "48000.00" {
		t.Fatalf("cogs want 48000.00 got %s", updated.CogsCurrent.String())
	}
}

func TestCreateProductSlugConflict(t *testing.T) {
	db := setupServiceTest(t)
	svc := newTestProductService(db)

	cat := seedCategory(t, db, "beans-5")
	if _, err := svc.CreateProduct(ProductInput{CategoryID: cat.ID, Slug: "Gayo", Name: "Gayo"}); err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	// Slugs are lowercased before the uniqueness check.
	if _, err := svc.CreateProduct(ProductInput{CategoryID: cat.ID, Slug: "gayo", Name: "Other"}); !errors.Is(err, ErrSlugConflict) {
		t.Fatalf("want ErrSlugConflict got %v", err)
	}
}

func TestDeleteProductWithVariants(t *testing.T) {
	db := setupServiceTest(t)
	svc := newTestProductService(db)

	cat := seedCategory(t, db, "beans-6")
	product := seedProduct(t, db, cat.ID, "gayo-6")
	seedVariant(t, db, product.ID, "DEL-SKU", "85000", 250, 0, "0")

	if err := svc.DeleteProduct(product.ID); !errors.Is(err, ErrProductHasVariants) {
		t.Fatalf("want ErrProductHasVariants got %v", err)
	}
}
