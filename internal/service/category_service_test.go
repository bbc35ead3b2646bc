package service

import (
	"errors"
	"testing"

	"github.com/warungkita/internal/repository"

	"gorm.io/gorm"
)

func newTestCategoryService(db *gorm.DB) *CategoryService {
	return NewCategoryService(
		repository.NewCategoryRepository(db),
		repository.NewProductRepository(db),
	)
}

func TestCategoryCreateWithComponents(t *testing.T) {
	db := setupServiceTest(t)
	svc := newTestCategoryService(db)

	cat, err := svc.Create(CategoryInput{
		Slug: "Beans",
		Name: "Coffee Beans",
		CostComponents: []CostComponentInput{
			{Name: "Pouch", AmountPerUnit: testMoney("2500")},
			{Name: "Label", AmountPerUnit: testMoney("500")},
		},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if cat.Slug != "beans" {
		t.Fatalf("slug want beans got %s", cat.Slug)
	}
	if len(cat.CostComponents) != 2 {
		t.Fatalf("component count want 2 got %d", len(cat.CostComponents))
	}
	if cat.OperationalCostPerUnit().String() != "3000.00" {
		t.Fatalf("operational cost want 3000.00 got %s", cat.OperationalCostPerUnit().String())
	}
}

func TestCategoryUpdateReplacesComponents(t *testing.T) {
	db := setupServiceTest(t)
	svc := newTestCategoryService(db)

	cat, err := svc.Create(CategoryInput{
		Slug: "gear",
		Name: "Brew Gear",
		CostComponents: []CostComponentInput{
			{Name: "Box", AmountPerUnit: testMoney("4000")},
		},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.Update(cat.ID, CategoryInput{
		Slug: "gear",
		Name: "Brew Gear",
		CostComponents: []CostComponentInput{
			{Name: "Box", AmountPerUnit: testMoney("3500")},
			{Name: "Bubble wrap", AmountPerUnit: testMoney("1000")},
		},
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if len(updated.CostComponents) != 2 {
		t.Fatalf("component count want 2 got %d", len(updated.CostComponents))
	}
	if updated.OperationalCostPerUnit().String() != "4500.00" {
		t.Fatalf("operational cost want 4500.00 got %s", updated.OperationalCostPerUnit().String())
	}
}

func TestCategoryDeleteInUse(t *testing.T) {
	db := setupServiceTest(t)
	svc := newTestCategoryService(db)

	cat := seedCategory(t, db, "in-use")
	seedProduct(t, db, cat.ID, "still-here")

	if err := svc.Delete(cat.ID); !errors.Is(err, ErrCategoryInUse) {
		t.Fatalf("want ErrCategoryInUse got %v", err)
	}

	empty := seedCategory(t, db, "empty")
	if err := svc.Delete(empty.ID); err != nil {
		t.Fatalf("delete empty category failed: %v", err)
	}
	if _, err := svc.Get(empty.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("deleted category want ErrNotFound got %v", err)
	}
}

func TestCategoryComponentValidation(t *testing.T) {
	db := setupServiceTest(t)
	svc := newTestCategoryService(db)

	_, err := svc.Create(CategoryInput{
		Slug: "bad",
		Name: "Bad",
		CostComponents: []CostComponentInput{
			{Name: "", AmountPerUnit: testMoney("100")},
		},
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("empty name want ErrValidation got %v", err)
	}
	_, err = svc.Create(CategoryInput{
		Slug: "bad-2",
		Name: "Bad",
		CostComponents: []CostComponentInput{
			{Name: "Negative", AmountPerUnit: testMoney("-100")},
		},
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("negative amount want ErrValidation got %v", err)
	}
}
