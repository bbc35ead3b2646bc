package service

import (
	"strings"

	"github.com/warungkita/internal/models"
	"github.com/warungkita/internal/repository"
)

// ProductService manages the catalog: products and their sellable
// variants.
type ProductService struct {
	productRepo  repository.ProductRepository
	variantRepo  repository.VariantRepository
	categoryRepo repository.CategoryRepository
}

// NewProductService creates a product service.
func NewProductService(productRepo repository.ProductRepository, variantRepo repository.VariantRepository, categoryRepo repository.CategoryRepository) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		variantRepo:  variantRepo,
		categoryRepo: categoryRepo,
	}
}

// ProductInput creates or updates a product.
type ProductInput struct {
	CategoryID  uint   `json:"category_id"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
	SortOrder   int    `json:"sort_order"`
}

// VariantInput creates or updates a variant. The operational cost per unit
// defaults to the sum of the category's cost components.
type VariantInput struct {
	SKU                        string        `json:"sku"`
	Name                       string        `json:"name"`
	Price                      models.Money  `json:"price"`
	WeightGram                 int           `json:"weight_gram"`
	DefaultPurchasePrice       models.Money  `json:"default_purchase_price"`
	DefaultOperationalCostUnit *models.Money `json:"default_operational_cost_unit"`
	IsActive                   *bool         `json:"is_active"`
}

// CreateProduct creates a product under an existing category.
func (s *ProductService) CreateProduct(input ProductInput) (*models.Product, error) {
	slug := strings.TrimSpace(strings.ToLower(input.Slug))
	name := strings.TrimSpace(input.Name)
	if slug == "" || name == "" || input.CategoryID == 0 {
		return nil, ErrValidation
	}
	category, err := s.categoryRepo.GetByID(input.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}
	existing, err := s.productRepo.GetBySlug(slug, false)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrSlugConflict
	}

	product := &models.Product{
		CategoryID:  input.CategoryID,
		Slug:        slug,
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		IsActive:    true,
		SortOrder:   input.SortOrder,
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return s.GetProduct(product.ID)
}

// UpdateProduct updates a product's header fields.
func (s *ProductService) UpdateProduct(id uint, input ProductInput) (*models.Product, error) {
	product, err := s.GetProduct(id)
	if err != nil {
		return nil, err
	}
	if slug := strings.TrimSpace(strings.ToLower(input.Slug)); slug != "" && slug != product.Slug {
		existing, err := s.productRepo.GetBySlug(slug, false)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != product.ID {
			return nil, ErrSlugConflict
		}
		product.Slug = slug
	}
	if name := strings.TrimSpace(input.Name); name != "" {
		product.Name = name
	}
	if input.CategoryID != 0 && input.CategoryID != product.CategoryID {
		category, err := s.categoryRepo.GetByID(input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, ErrNotFound
		}
		product.CategoryID = input.CategoryID
	}
	if desc := strings.TrimSpace(input.Description); desc != "" {
		product.Description = desc
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	product.SortOrder = input.SortOrder
	product.Category = nil
	product.Variants = nil

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return s.GetProduct(id)
}

// DeleteProduct soft-deletes a product with no remaining variants.
func (s *ProductService) DeleteProduct(id uint) error {
	if _, err := s.GetProduct(id); err != nil {
		return err
	}
	variants, err := s.variantRepo.ListByProduct(id)
	if err != nil {
		return err
	}
	if len(variants) > 0 {
		return ErrProductHasVariants
	}
	return s.productRepo.Delete(id)
}

// GetProduct fetches a product with category and variants.
func (s *ProductService) GetProduct(id uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}

// GetProductBySlug fetches an active product for the storefront.
func (s *ProductService) GetProductBySlug(slug string) (*models.Product, error) {
	product, err := s.productRepo.GetBySlug(strings.TrimSpace(strings.ToLower(slug)), true)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}

// ListProducts lists products by filter.
func (s *ProductService) ListProducts(filter repository.ProductListFilter) ([]models.Product, int64, error) {
	return s.productRepo.List(filter)
}

// CreateVariant creates a variant under a product. The initial unit cost
// is the default purchase price plus the category's operational cost per
// unit; stock starts at zero and only enters through receipts or manual
// adjustments.
func (s *ProductService) CreateVariant(productID uint, input VariantInput) (*models.ProductVariant, error) {
	product, err := s.GetProduct(productID)
	if err != nil {
		return nil, err
	}
	sku := strings.TrimSpace(input.SKU)
	if sku == "" || input.Price.IsNegative() || input.WeightGram < 0 || input.DefaultPurchasePrice.IsNegative() {
		return nil, ErrValidation
	}
	existing, err := s.variantRepo.GetBySKU(sku)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrSKUConflict
	}

	opCost, err := s.resolveOperationalCost(product.CategoryID, input.DefaultOperationalCostUnit)
	if err != nil {
		return nil, err
	}

	variant := &models.ProductVariant{
		ProductID:                  product.ID,
		SKU:                        sku,
		SKUNormalized:              models.NormalizeSKU(sku),
		Name:                       strings.TrimSpace(input.Name),
		Price:                      input.Price,
		WeightGram:                 input.WeightGram,
		StockOnHand:                0,
		CogsCurrent:                models.NewMoneyFromDecimal(input.DefaultPurchasePrice.Add(opCost.Decimal)),
		DefaultPurchasePrice:       input.DefaultPurchasePrice,
		DefaultOperationalCostUnit: opCost,
		IsActive:                   true,
	}
	if input.IsActive != nil {
		variant.IsActive = *input.IsActive
	}
	if err := s.variantRepo.Create(variant); err != nil {
		return nil, err
	}
	return variant, nil
}

// UpdateVariant updates catalog fields. Stock and the running unit cost
// are deliberately untouchable here.
func (s *ProductService) UpdateVariant(id uint, input VariantInput) (*models.ProductVariant, error) {
	variant, err := s.GetVariant(id)
	if err != nil {
		return nil, err
	}
	if sku := strings.TrimSpace(input.SKU); sku != "" && models.NormalizeSKU(sku) != variant.SKUNormalized {
		existing, err := s.variantRepo.GetBySKU(sku)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != variant.ID {
			return nil, ErrSKUConflict
		}
		variant.SKU = sku
		variant.SKUNormalized = models.NormalizeSKU(sku)
	}
	if name := strings.TrimSpace(input.Name); name != "" {
		variant.Name = name
	}
	if input.Price.IsNegative() || input.DefaultPurchasePrice.IsNegative() || input.WeightGram < 0 {
		return nil, ErrValidation
	}
	variant.Price = input.Price
	variant.WeightGram = input.WeightGram
	variant.DefaultPurchasePrice = input.DefaultPurchasePrice
	if input.DefaultOperationalCostUnit != nil {
		if input.DefaultOperationalCostUnit.IsNegative() {
			return nil, ErrValidation
		}
		variant.DefaultOperationalCostUnit = *input.DefaultOperationalCostUnit
	}
	if input.IsActive != nil {
		variant.IsActive = *input.IsActive
	}
	variant.Product = nil

	if err := s.variantRepo.Update(variant); err != nil {
		return nil, err
	}
	return s.GetVariant(id)
}

// GetVariant fetches a variant.
func (s *ProductService) GetVariant(id uint) (*models.ProductVariant, error) {
	variant, err := s.variantRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if variant == nil {
		return nil, ErrNotFound
	}
	return variant, nil
}

// ListVariants lists a product's variants.
func (s *ProductService) ListVariants(productID uint) ([]models.ProductVariant, error) {
	if _, err := s.GetProduct(productID); err != nil {
		return nil, err
	}
	return s.variantRepo.ListByProduct(productID)
}

func (s *ProductService) resolveOperationalCost(categoryID uint, override *models.Money) (models.Money, error) {
	if override != nil {
		if override.IsNegative() {
			return models.Money{}, ErrValidation
		}
		return *override, nil
	}
	category, err := s.categoryRepo.GetByID(categoryID)
	if err != nil {
		return models.Money{}, err
	}
	if category == nil {
		return models.NewMoneyFromInt(0), nil
	}
	return category.OperationalCostPerUnit(), nil
}
