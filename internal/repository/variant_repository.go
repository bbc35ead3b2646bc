package repository

import (
	"errors"

	"github.com/warungkita/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// VariantRepository is the data access interface for product variants.
type VariantRepository interface {
	GetByID(id uint) (*models.ProductVariant, error)
	GetForUpdate(id uint) (*models.ProductVariant, error)
	FindByIDs(ids []uint) ([]models.ProductVariant, error)
	GetBySKU(sku string) (*models.ProductVariant, error)
	ListByProduct(productID uint) ([]models.ProductVariant, error)
	Create(variant *models.ProductVariant) error
	Update(variant *models.ProductVariant) error
	UpdateStockAndCogs(id uint, stockOnHand int, cogs models.Money) error
	DecrementStock(id uint, quantity int) (int64, error)
	AdjustStock(id uint, delta int) (int64, error)
	WithTx(tx *gorm.DB) VariantRepository
}

// GormVariantRepository is the GORM implementation.
type GormVariantRepository struct {
	db *gorm.DB
}

// NewVariantRepository creates a variant repository.
func NewVariantRepository(db *gorm.DB) *GormVariantRepository {
	return &GormVariantRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormVariantRepository) WithTx(tx *gorm.DB) VariantRepository {
	if tx == nil {
		return r
	}
	return &GormVariantRepository{db: tx}
}

// GetByID fetches a variant by id.
func (r *GormVariantRepository) GetByID(id uint) (*models.ProductVariant, error) {
	var variant models.ProductVariant
	if err := r.db.First(&variant, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &variant, nil
}

// GetForUpdate fetches a variant under a row lock. Only meaningful inside a
// transaction; it is what keeps concurrent cost recalculations from losing
// updates.
func (r *GormVariantRepository) GetForUpdate(id uint) (*models.ProductVariant, error) {
	var variant models.ProductVariant
	if err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&variant, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &variant, nil
}

// FindByIDs fetches all variants for the given ids. Callers detect missing
// ids by comparing the returned count against the requested count.
func (r *GormVariantRepository) FindByIDs(ids []uint) ([]models.ProductVariant, error) {
	var variants []models.ProductVariant
	if len(ids) == 0 {
		return variants, nil
	}
	if err := r.db.Where("id IN ?", ids).Find(&variants).Error; err != nil {
		return nil, err
	}
	return variants, nil
}

// GetBySKU fetches a variant by case-insensitive SKU.
func (r *GormVariantRepository) GetBySKU(sku string) (*models.ProductVariant, error) {
	var variant models.ProductVariant
	if err := r.db.Where("sku_normalized = ?", models.NormalizeSKU(sku)).First(&variant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &variant, nil
}

// ListByProduct lists a product's variants.
func (r *GormVariantRepository) ListByProduct(productID uint) ([]models.ProductVariant, error) {
	var variants []models.ProductVariant
	if err := r.db.Where("product_id = ?", productID).Order("id asc").Find(&variants).Error; err != nil {
		return nil, err
	}
	return variants, nil
}

// Create inserts a variant.
func (r *GormVariantRepository) Create(variant *models.ProductVariant) error {
	return r.db.Create(variant).Error
}

// Update saves a variant.
func (r *GormVariantRepository) Update(variant *models.ProductVariant) error {
	return r.db.Save(variant).Error
}

// UpdateStockAndCogs writes the recomputed stock level and weighted-average
// cost in one statement.
func (r *GormVariantRepository) UpdateStockAndCogs(id uint, stockOnHand int, cogs models.Money) error {
	return r.db.Model(&models.ProductVariant{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"stock_on_hand": stockOnHand,
			"cogs_current":  cogs,
		}).Error
}

// DecrementStock takes quantity out of stock only when enough is on hand.
// Zero rows affected means insufficient stock; the caller decides whether
// that is a conflict.
func (r *GormVariantRepository) DecrementStock(id uint, quantity int) (int64, error) {
	if id == 0 || quantity <= 0 {
		return 0, errors.New("invalid stock decrement params")
	}
	result := r.db.Model(&models.ProductVariant{}).
		Where("id = ? AND stock_on_hand >= ?", id, quantity).
		Update("stock_on_hand", gorm.Expr("stock_on_hand - ?", quantity))
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// AdjustStock applies a signed delta. Negative deltas are guarded the same
// way as DecrementStock.
func (r *GormVariantRepository) AdjustStock(id uint, delta int) (int64, error) {
	if id == 0 || delta == 0 {
		return 0, errors.New("invalid stock adjust params")
	}
	query := r.db.Model(&models.ProductVariant{}).Where("id = ?", id)
	if delta < 0 {
		query = query.Where("stock_on_hand >= ?", -delta)
	}
	result := query.Update("stock_on_hand", gorm.Expr("stock_on_hand + ?", delta))
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
