package repository

import (
	"errors"
	"time"

	"github.com/warungkita/internal/models"

	"gorm.io/gorm"
)

// ExpenseRepository is the data access interface for the manual ledger.
type ExpenseRepository interface {
	GetByID(id uint) (*models.Expense, error)
	List(filter ExpenseListFilter) ([]models.Expense, int64, error)
	SumByType(entryType string, from, to time.Time) (float64, error)
	Create(expense *models.Expense) error
	Update(expense *models.Expense) error
	Delete(id uint) error
}

// GormExpenseRepository is the GORM implementation.
type GormExpenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates an expense repository.
func NewExpenseRepository(db *gorm.DB) *GormExpenseRepository {
	return &GormExpenseRepository{db: db}
}

// GetByID fetches a ledger entry.
func (r *GormExpenseRepository) GetByID(id uint) (*models.Expense, error) {
	var expense models.Expense
	if err := r.db.First(&expense, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &expense, nil
}

// List returns ledger entries matching the filter, newest date first.
func (r *GormExpenseRepository) List(filter ExpenseListFilter) ([]models.Expense, int64, error) {
	var expenses []models.Expense
	query := r.db.Model(&models.Expense{})
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.DateFrom != nil {
		query = query.Where("date >= ?", filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("date < ?", filter.DateTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := applyPagination(query.Order("date desc, id desc"), filter.Page, filter.PageSize).
		Find(&expenses).Error; err != nil {
		return nil, 0, err
	}
	return expenses, total, nil
}

// SumByType sums entries of one type over a half-open date range.
func (r *GormExpenseRepository) SumByType(entryType string, from, to time.Time) (float64, error) {
	var sum float64
	err := r.db.Model(&models.Expense{}).
		Where("type = ? AND date >= ? AND date < ?", entryType, from, to).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&sum).Error
	return sum, err
}

// Create inserts a ledger entry.
func (r *GormExpenseRepository) Create(expense *models.Expense) error {
	return r.db.Create(expense).Error
}

// Update saves a ledger entry.
func (r *GormExpenseRepository) Update(expense *models.Expense) error {
	return r.db.Save(expense).Error
}

// Delete soft-deletes a ledger entry.
func (r *GormExpenseRepository) Delete(id uint) error {
	return r.db.Delete(&models.Expense{}, id).Error
}
