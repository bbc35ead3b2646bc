package service

import (
	"strings"
	"time"

	"github.com/warungkita/internal/constants"
	"github.com/warungkita/internal/models"
	"github.com/warungkita/internal/repository"
)

// ExpenseService manages the manual income and expense ledger.
type ExpenseService struct {
	expenseRepo repository.ExpenseRepository
}

// NewExpenseService creates an expense service.
func NewExpenseService(expenseRepo repository.ExpenseRepository) *ExpenseService {
	return &ExpenseService{expenseRepo: expenseRepo}
}

// ExpenseInput creates or updates a ledger entry.
type ExpenseInput struct {
	Type   string       `json:"type"`
	Amount models.Money `json:"amount"`
	Note   string       `json:"note"`
	Date   string       `json:"date"` // YYYY-MM-DD
}

// Create creates a ledger entry.
func (s *ExpenseService) Create(input ExpenseInput) (*models.Expense, error) {
	entry, err := buildExpense(input)
	if err != nil {
		return nil, err
	}
	if err := s.expenseRepo.Create(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// Update replaces a ledger entry's fields.
func (s *ExpenseService) Update(id uint, input ExpenseInput) (*models.Expense, error) {
	existing, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	entry, err := buildExpense(input)
	if err != nil {
		return nil, err
	}
	existing.Type = entry.Type
	existing.Amount = entry.Amount
	existing.Note = entry.Note
	existing.Date = entry.Date
	if err := s.expenseRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes a ledger entry.
func (s *ExpenseService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.expenseRepo.Delete(id)
}

// Get fetches a ledger entry.
func (s *ExpenseService) Get(id uint) (*models.Expense, error) {
	expense, err := s.expenseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, ErrNotFound
	}
	return expense, nil
}

// List lists ledger entries by filter.
func (s *ExpenseService) List(filter repository.ExpenseListFilter) ([]models.Expense, int64, error) {
	return s.expenseRepo.List(filter)
}

func buildExpense(input ExpenseInput) (*models.Expense, error) {
	entryType := strings.ToUpper(strings.TrimSpace(input.Type))
	if entryType != constants.ExpenseTypeExpense && entryType != constants.ExpenseTypeIncome {
		return nil, ErrValidation
	}
	if !input.Amount.IsPositive() {
		return nil, ErrValidation
	}
	date, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(input.Date), time.UTC)
	if err != nil {
		return nil, ErrValidation
	}
	return &models.Expense{
		Type:   entryType,
		Amount: input.Amount,
		Note:   strings.TrimSpace(input.Note),
		Date:   date,
	}, nil
}
