package service

import (
	"strings"

	"github.com/warungkita/internal/constants"
	"github.com/warungkita/internal/logger"
	"github.com/warungkita/internal/models"
	"github.com/warungkita/internal/repository"

	"gorm.io/gorm"
)

// StockService handles manual stock corrections and exposes the movement
// ledger.
type StockService struct {
	variantRepo  repository.VariantRepository
	movementRepo repository.StockMovementRepository
}

// NewStockService creates a stock service.
func NewStockService(variantRepo repository.VariantRepository, movementRepo repository.StockMovementRepository) *StockService {
	return &StockService{
		variantRepo:  variantRepo,
		movementRepo: movementRepo,
	}
}

// AdjustInput is a manual stock correction.
type AdjustInput struct {
	VariantID uint   `json:"variant_id"`
	Delta     int    `json:"delta"`
	Note      string `json:"note"`
}

// Adjust applies a signed correction to a variant's stock and records an
// ADJUST movement. Negative deltas cannot take stock below zero.
func (s *StockService) Adjust(input AdjustInput) (*models.ProductVariant, error) {
	if input.VariantID == 0 || input.Delta == 0 {
		return nil, ErrValidation
	}
	variant, err := s.variantRepo.GetByID(input.VariantID)
	if err != nil {
		return nil, err
	}
	if variant == nil {
		return nil, ErrNotFound
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.variantRepo.WithTx(tx).AdjustStock(input.VariantID, input.Delta)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrStockAdjustToNegative
		}
		movement := &models.StockMovement{
			VariantID:       input.VariantID,
			Type:            constants.StockMovementAdjust,
			Quantity:        input.Delta,
			UnitCostApplied: variant.CogsCurrent,
			RefType:         constants.StockRefManual,
			Note:            strings.TrimSpace(input.Note),
		}
		return s.movementRepo.WithTx(tx).Create(movement)
	})
	if err != nil {
		return nil, err
	}
	logger.Infow("stock_adjusted",
		"variant_id", input.VariantID,
		"delta", input.Delta,
	)
	return s.variantRepo.GetByID(input.VariantID)
}

// ListMovements lists stock movements by filter.
func (s *StockService) ListMovements(filter repository.StockMovementListFilter) ([]models.StockMovement, int64, error) {
	return s.movementRepo.List(filter)
}
