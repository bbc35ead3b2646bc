package repository

import (
	"errors"

	"github.com/warungkita/internal/models"

	"gorm.io/gorm"
)

// CategoryRepository is the data access interface for product categories.
type CategoryRepository interface {
	GetByID(id uint) (*models.ProductCategory, error)
	List() ([]models.ProductCategory, error)
	Create(category *models.ProductCategory) error
	Update(category *models.ProductCategory) error
	Delete(id uint) error
	ReplaceCostComponents(categoryID uint, components []models.CategoryOperationalCostComponent) error
	WithTx(tx *gorm.DB) CategoryRepository
}

// GormCategoryRepository is the GORM implementation.
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a category repository.
func NewCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormCategoryRepository) WithTx(tx *gorm.DB) CategoryRepository {
	if tx == nil {
		return r
	}
	return &GormCategoryRepository{db: tx}
}

// GetByID fetches a category with its cost components.
func (r *GormCategoryRepository) GetByID(id uint) (*models.ProductCategory, error) {
	var category models.ProductCategory
	if err := r.db.Preload("CostComponents").First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

// List returns all categories with cost components.
func (r *GormCategoryRepository) List() ([]models.ProductCategory, error) {
	var categories []models.ProductCategory
	if err := r.db.Preload("CostComponents").Order("sort_order asc, id asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// Create inserts a category.
func (r *GormCategoryRepository) Create(category *models.ProductCategory) error {
	return r.db.Create(category).Error
}

// Update saves a category.
func (r *GormCategoryRepository) Update(category *models.ProductCategory) error {
	return r.db.Save(category).Error
}

// Delete soft-deletes a category.
func (r *GormCategoryRepository) Delete(id uint) error {
	return r.db.Delete(&models.ProductCategory{}, id).Error
}

// ReplaceCostComponents swaps the category's cost component set.
func (r *GormCategoryRepository) ReplaceCostComponents(categoryID uint, components []models.CategoryOperationalCostComponent) error {
	if err := r.db.Where("category_id = ?", categoryID).Delete(&models.CategoryOperationalCostComponent{}).Error; err != nil {
		return err
	}
	for i := range components {
		components[i].CategoryID = categoryID
	}
	if len(components) > 0 {
		if err := r.db.Create(&components).Error; err != nil {
			return err
		}
	}
	return nil
}
