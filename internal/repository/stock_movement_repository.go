package repository

import (
	"github.com/warungkita/internal/models"

	"gorm.io/gorm"
)

// StockMovementRepository is the data access interface for the append-only
// stock ledger.
type StockMovementRepository interface {
	Create(movement *models.StockMovement) error
	List(filter StockMovementListFilter) ([]models.StockMovement, int64, error)
	WithTx(tx *gorm.DB) StockMovementRepository
}

// GormStockMovementRepository is the GORM implementation.
type GormStockMovementRepository struct {
	db *gorm.DB
}

// NewStockMovementRepository creates a stock movement repository.
func NewStockMovementRepository(db *gorm.DB) *GormStockMovementRepository {
	return &GormStockMovementRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormStockMovementRepository) WithTx(tx *gorm.DB) StockMovementRepository {
	if tx == nil {
		return r
	}
	return &GormStockMovementRepository{db: tx}
}

// Create appends a movement row. Movements are never updated or deleted.
func (r *GormStockMovementRepository) Create(movement *models.StockMovement) error {
	return r.db.Create(movement).Error
}

// List returns movements matching the filter, newest first.
func (r *GormStockMovementRepository) List(filter StockMovementListFilter) ([]models.StockMovement, int64, error) {
	var movements []models.StockMovement
	query := r.db.Model(&models.StockMovement{})
	if filter.VariantID != 0 {
		query = query.Where("variant_id = ?", filter.VariantID)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.RefType != "" {
		query = query.Where("ref_type = ?", filter.RefType)
	}
	if filter.RefID != 0 {
		query = query.Where("ref_id = ?", filter.RefID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := applyPagination(query.Order("id desc"), filter.Page, filter.PageSize).Find(&movements).Error; err != nil {
		return nil, 0, err
	}
	return movements, total, nil
}
