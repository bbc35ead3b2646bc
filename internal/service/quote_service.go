package service

import (
	"github.com/warungkita/internal/config"
	"github.com/warungkita/internal/constants"
	"github.com/warungkita/internal/models"
	"github.com/warungkita/internal/repository"

	"github.com/shopspring/decimal"
)

// QuoteService prices a cart without creating anything.
type QuoteService struct {
	variantRepo repository.VariantRepository
	shipping    config.ShippingConfig
}

// NewQuoteService creates a quote service.
func NewQuoteService(variantRepo repository.VariantRepository, shipping config.ShippingConfig) *QuoteService {
	return &QuoteService{
		variantRepo: variantRepo,
		shipping:    shipping,
	}
}

// QuoteItemInput is one cart line to price.
type QuoteItemInput struct {
	VariantID uint `json:"variant_id"`
	Quantity  int  `json:"quantity"`
}

// QuoteLine is a priced cart line.
type QuoteLine struct {
	VariantID  uint         `json:"variant_id"`
	SKU        string       `json:"sku"`
	Name       string       `json:"name"`
	Price      models.Money `json:"price"`
	Quantity   int          `json:"quantity"`
	LineTotal  models.Money `json:"line_total"`
	WeightGram int          `json:"weight_gram"`
}

// Quote is the priced cart.
type Quote struct {
	Items           []QuoteLine  `json:"items"`
	Subtotal        models.Money `json:"subtotal"`
	TotalWeightGram int          `json:"total_weight_gram"`
	ShippingCost    models.Money `json:"shipping_cost"`
	Total           models.Money `json:"total"`
}

// Quote prices the given items. Every referenced variant must exist; a
// single missing id fails the whole quote.
func (s *QuoteService) Quote(items []QuoteItemInput) (*Quote, error) {
	if err := validateQuoteItems(items); err != nil {
		return nil, err
	}
	variants, err := s.resolveVariants(items)
	if err != nil {
		return nil, err
	}

	lines := make([]QuoteLine, 0, len(items))
	subtotal := decimal.Zero
	totalWeight := 0
	for _, item := range items {
		variant := variants[item.VariantID]
		lineTotal := variant.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		lineWeight := variant.WeightGram * item.Quantity
		lines = append(lines, QuoteLine{
			VariantID:  variant.ID,
			SKU:        variant.SKU,
			Name:       variant.Name,
			Price:      variant.Price,
			Quantity:   item.Quantity,
			LineTotal:  models.NewMoneyFromDecimal(lineTotal),
			WeightGram: lineWeight,
		})
		subtotal = subtotal.Add(lineTotal)
		totalWeight += lineWeight
	}

	shippingCost := s.ShippingCost(totalWeight)
	return &Quote{
		Items:           lines,
		Subtotal:        models.NewMoneyFromDecimal(subtotal),
		TotalWeightGram: totalWeight,
		ShippingCost:    shippingCost,
		Total:           models.NewMoneyFromDecimal(subtotal.Add(shippingCost.Decimal)),
	}, nil
}

// ShippingCost applies the flat-rate formula: the base fare covers the
// first kilogram, every further started kilogram adds the per-kg rate.
func (s *QuoteService) ShippingCost(totalWeightGram int) models.Money {
	kg := ceilKg(totalWeightGram)
	extra := kg - 1
	if extra < 0 {
		extra = 0
	}
	cost := s.shipping.BaseCost + int64(extra)*s.shipping.CostPerKg
	return models.NewMoneyFromInt(cost)
}

// resolveVariants loads all referenced variants and fails with ErrNotFound
// when any id has no row.
func (s *QuoteService) resolveVariants(items []QuoteItemInput) (map[uint]*models.ProductVariant, error) {
	ids := make([]uint, 0, len(items))
	seen := make(map[uint]bool, len(items))
	for _, item := range items {
		if !seen[item.VariantID] {
			seen[item.VariantID] = true
			ids = append(ids, item.VariantID)
		}
	}
	variants, err := s.variantRepo.FindByIDs(ids)
	if err != nil {
		return nil, err
	}
	if len(variants) != len(ids) {
		return nil, ErrNotFound
	}
	byID := make(map[uint]*models.ProductVariant, len(variants))
	for i := range variants {
		byID[variants[i].ID] = &variants[i]
	}
	return byID, nil
}

func validateQuoteItems(items []QuoteItemInput) error {
	if len(items) == 0 {
		return ErrOrderItemsRequired
	}
	for _, item := range items {
		if item.VariantID == 0 || item.Quantity <= 0 {
			return ErrValidation
		}
	}
	return nil
}

func ceilKg(weightGram int) int {
	if weightGram <= 0 {
		return 0
	}
	return (weightGram + constants.GramsPerKg - 1) / constants.GramsPerKg
}
