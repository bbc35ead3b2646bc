package service

import (
	"strings"

	"github.com/warungkita/internal/models"
	"github.com/warungkita/internal/repository"

	"gorm.io/gorm"
)

// CategoryService manages product categories and their operational cost
// components.
type CategoryService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
}

// NewCategoryService creates a category service.
func NewCategoryService(categoryRepo repository.CategoryRepository, productRepo repository.ProductRepository) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
	}
}

// CostComponentInput is one per-unit fixed cost line.
type CostComponentInput struct {
	Name          string       `json:"name"`
	AmountPerUnit models.Money `json:"amount_per_unit"`
}

// CategoryInput creates or updates a category.
type CategoryInput struct {
	Slug           string               `json:"slug"`
	Name           string               `json:"name"`
	SortOrder      int                  `json:"sort_order"`
	CostComponents []CostComponentInput `json:"cost_components"`
}

// Create creates a category with its cost components.
func (s *CategoryService) Create(input CategoryInput) (*models.ProductCategory, error) {
	slug := strings.TrimSpace(strings.ToLower(input.Slug))
	name := strings.TrimSpace(input.Name)
	if slug == "" || name == "" {
		return nil, ErrValidation
	}
	components, err := buildCostComponents(input.CostComponents)
	if err != nil {
		return nil, err
	}

	category := &models.ProductCategory{
		Slug:      slug,
		Name:      name,
		SortOrder: input.SortOrder,
	}
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		repo := s.categoryRepo.WithTx(tx)
		if err := repo.Create(category); err != nil {
			return err
		}
		return repo.ReplaceCostComponents(category.ID, components)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(category.ID)
}

// Update updates a category and replaces its cost components. Changing
// components only affects variants created afterwards; existing unit costs
// are snapshots and stay put.
func (s *CategoryService) Update(id uint, input CategoryInput) (*models.ProductCategory, error) {
	category, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	components, err := buildCostComponents(input.CostComponents)
	if err != nil {
		return nil, err
	}
	if slug := strings.TrimSpace(strings.ToLower(input.Slug)); slug != "" {
		category.Slug = slug
	}
	if name := strings.TrimSpace(input.Name); name != "" {
		category.Name = name
	}
	category.SortOrder = input.SortOrder
	category.CostComponents = nil

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		repo := s.categoryRepo.WithTx(tx)
		if err := repo.Update(category); err != nil {
			return err
		}
		return repo.ReplaceCostComponents(category.ID, components)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(id)
}

// Delete soft-deletes a category with no products.
func (s *CategoryService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	_, total, err := s.productRepo.List(repository.ProductListFilter{CategoryID: id, Page: 1, PageSize: 1})
	if err != nil {
		return err
	}
	if total > 0 {
		return ErrCategoryInUse
	}
	return s.categoryRepo.Delete(id)
}

// Get fetches a category with cost components.
func (s *CategoryService) Get(id uint) (*models.ProductCategory, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}
	return category, nil
}

// List returns all categories.
func (s *CategoryService) List() ([]models.ProductCategory, error) {
	return s.categoryRepo.List()
}

func buildCostComponents(inputs []CostComponentInput) ([]models.CategoryOperationalCostComponent, error) {
	components := make([]models.CategoryOperationalCostComponent, 0, len(inputs))
	for _, input := range inputs {
		name := strings.TrimSpace(input.Name)
		if name == "" || input.AmountPerUnit.IsNegative() {
			return nil, ErrValidation
		}
		components = append(components, models.CategoryOperationalCostComponent{
			Name:          name,
			AmountPerUnit: input.AmountPerUnit,
		})
	}
	return components, nil
}
