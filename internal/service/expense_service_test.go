package service

import (
	"errors"
	"testing"

	"github.com/warungkita/internal/constants"
	"github.com/warungkita/internal/repository"
)

func TestExpenseCreateAndUpdate(t *testing.T) {
	db := setupServiceTest(t)
	svc := NewExpenseService(repository.NewExpenseRepository(db))

	entry, err := svc.Create(ExpenseInput{
		Type:   "expense",
		Amount: testMoney("1500000"),
		Note:   "Kiosk rent",
		Date:   "2026-08-01",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	// Type is normalized to upper case.
	if entry.Type != constants.ExpenseTypeExpense {
		t.Fatalf("type want EXPENSE got %s", entry.Type)
	}
	if entry.Date.Format("2006-01-02") != "2026-08-01" {
		t.Fatalf("date want 2026-08-01 got %s", entry.Date.Format("2006-01-02"))
	}

	updated, err := svc.Update(entry.ID, ExpenseInput{
		Type:   "INCOME",
		Amount: testMoney("300000"),
		Note:   "Workshop fee",
		Date:   "2026-08-02",
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Type != constants.ExpenseTypeIncome || updated.Amount.String() != "300000.00" {
		t.Fatalf("update not applied: %+v", updated)
	}
}

func TestExpenseValidation(t *testing.T) {
	db := setupServiceTest(t)
	svc := NewExpenseService(repository.NewExpenseRepository(db))

	cases := []ExpenseInput{
		{Type: "refund", Amount: testMoney("100"), Date: "2026-08-01"},
		{Type: "EXPENSE", Amount: testMoney("0"), Date: "2026-08-01"},
		{Type: "EXPENSE", Amount: testMoney("-100"), Date: "2026-08-01"},
		{Type: "EXPENSE", Amount: testMoney("100"), Date: "01-08-2026"},
		{Type: "EXPENSE", Amount: testMoney("100")},
	}
	for i, input := range cases {
		if _, err := svc.Create(input); !errors.Is(err, ErrValidation) {
			t.Fatalf("case %d want ErrValidation got %v", i, err)
		}
	}
}

func TestExpenseDelete(t *testing.T) {
	db := setupServiceTest(t)
	svc := NewExpenseService(repository.NewExpenseRepository(db))

	entry, err := svc.Create(ExpenseInput{Type: "EXPENSE", Amount: testMoney("100"), Date: "2026-08-01"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := svc.Delete(entry.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.Get(entry.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("deleted entry want ErrNotFound got %v", err)
	}
	if err := svc.Delete(entry.ID + 99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing entry want ErrNotFound got %v", err)
	}
}
