package service

import (
	"errors"
	"testing"
)

func TestShippingCostTiers(t *testing.T) {
	db := setupServiceTest(t)
	svc := newTestQuoteService(db)

	cases := []struct {
		weightGram int
		want       string
	}{
		{0, "10000.00"},
		{500, "10000.00"},
		{1000, "10000.00"},
		{1001, "16000.00"},
		{1500, "16000.00"},
		{2000, "16000.00"},
		{2500, "22000.00"},
	}
	for _, tc := range cases {
		got := svc.ShippingCost(tc.weightGram).String()
		if got != tc.want {
			t.Fatalf("shipping for %dg want %s got %s", tc.weightGram, tc.want, got)
		}
	}
}

func TestQuoteTotals(t *testing.T) {
	db := setupServiceTest(t)
	svc := newTestQuoteService(db)

	cat := seedCategory(t, db, "coffee")
	product := seedProduct(t, db, cat.ID, "gayo")
	a := seedVariant(t, db, product.ID, "GAYO-200", "85000", 250, 10, "48000")
	b := seedVariant(t, db, product.ID, "GAYO-1KG", "380000", 1050, 5, "213000")

	quote, err := svc.Quote([]QuoteItemInput{
		{VariantID: a.ID, Quantity: 2},
		{VariantID: b.ID, Quantity: 1},
	})
	if err != nil {
		t.Fatalf("quote failed: %v", err)
	}
	if len(quote.Items) != 2 {
		t.Fatalf("line count want 2 got %d", len(quote.Items))
	}
	if quote.Subtotal.String() != "550000.00" {
		t.Fatalf("subtotal want 550000.00 got %s", quote.Subtotal.String())
	}
	// 2*250g + 1050g = 1550g, second started kilogram applies.
	if quote.TotalWeightGram != 1550 {
		t.Fatalf("weight want 1550 got %d", quote.TotalWeightGram)
	}
	if quote.ShippingCost.String() != "16000.00" {
		t.Fatalf("shipping want 16000.00 got %s", quote.ShippingCost.String())
	}
	if quote.Total.String() != "566000.00" {
		t.Fatalf("total want 566000.00 got %s", quote.Total.String())
	}
}

func TestQuoteMissingVariant(t *testing.T) {
	db := setupServiceTest(t)
	svc := newTestQuoteService(db)

	variant := seedCatalog(t, db, "ONLY-SKU", "10000", 1, "5000")

	_, err := svc.Quote([]QuoteItemInput{
		{VariantID: variant.ID, Quantity: 1},
		{VariantID: variant.ID + 99, Quantity: 1},
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound got %v", err)
	}
}

func TestQuoteValidation(t *testing.T) {
	db := setupServiceTest(t)
	svc := newTestQuoteService(db)

	if _, err := svc.Quote(nil); !errors.Is(err, ErrOrderItemsRequired) {
		t.Fatalf("empty cart want ErrOrderItemsRequired got %v", err)
	}
	if _, err := svc.Quote([]QuoteItemInput{{VariantID: 1, Quantity: 0}}); !errors.Is(err, ErrValidation) {
		t.Fatalf("zero quantity want ErrValidation got %v", err)
	}
}
