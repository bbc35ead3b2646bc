package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/warungkita/internal/constants"
	"github.com/warungkita/internal/logger"
	"github.com/warungkita/internal/models"
	"github.com/warungkita/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PurchaseService manages supplier purchase orders and applies the
// weighted-average cost recalculation when stock is received.
type PurchaseService struct {
	purchaseRepo repository.PurchaseOrderRepository
	variantRepo  repository.VariantRepository
	movementRepo repository.StockMovementRepository
}

// NewPurchaseService creates a purchase service.
func NewPurchaseService(purchaseRepo repository.PurchaseOrderRepository, variantRepo repository.VariantRepository, movementRepo repository.StockMovementRepository) *PurchaseService {
	return &PurchaseService{
		purchaseRepo: purchaseRepo,
		variantRepo:  variantRepo,
		movementRepo: movementRepo,
	}
}

// PurchaseItemInput is one restocked line on a draft.
type PurchaseItemInput struct {
	VariantID           uint         `json:"variant_id"`
	Quantity            int          `json:"quantity"`
	UnitCost            models.Money `json:"unit_cost"`
	OperationalCostUnit models.Money `json:"operational_cost_unit"`
}

// PurchaseOrderInput creates or replaces a draft.
type PurchaseOrderInput struct {
	Code         string              `json:"code"`
	SupplierName string              `json:"supplier_name"`
	Note         string              `json:"note"`
	Items        []PurchaseItemInput `json:"items"`
}

// CreateDraft creates a draft purchase order.
func (s *PurchaseService) CreateDraft(input PurchaseOrderInput) (*models.PurchaseOrder, error) {
	items, err := s.buildItems(input.Items)
	if err != nil {
		return nil, err
	}
	code := strings.TrimSpace(input.Code)
	if code == "" {
		code = generatePurchaseCode()
	}
	po := &models.PurchaseOrder{
		Code:         code,
		SupplierName: strings.TrimSpace(input.SupplierName),
		Note:         strings.TrimSpace(input.Note),
		Status:       constants.PurchaseOrderStatusDraft,
	}
	if err := s.purchaseRepo.Create(po, items); err != nil {
		return nil, err
	}
	return s.Get(po.ID)
}

// UpdateDraft replaces a draft's header and item set. Received orders are
// immutable.
func (s *PurchaseService) UpdateDraft(id uint, input PurchaseOrderInput) (*models.PurchaseOrder, error) {
	po, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if po.Status != constants.PurchaseOrderStatusDraft {
		return nil, ErrPurchaseNotDraft
	}
	items, err := s.buildItems(input.Items)
	if err != nil {
		return nil, err
	}
	if code := strings.TrimSpace(input.Code); code != "" {
		po.Code = code
	}
	po.SupplierName = strings.TrimSpace(input.SupplierName)
	po.Note = strings.TrimSpace(input.Note)

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		repo := s.purchaseRepo.WithTx(tx)
		if err := repo.Update(po); err != nil {
			return err
		}
		return repo.ReplaceItems(po.ID, items)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(po.ID)
}

// Receive books a draft into inventory. Per line, under a row lock, stock
// goes up by the received quantity and the variant's unit cost becomes
//
//	(old_stock*old_cogs + qty*landed) / (old_stock + qty)
//
// with the landed cost used directly when there was no prior stock. An IN
// movement records each line. The whole receipt is one transaction; if any
// line fails nothing is booked.
func (s *PurchaseService) Receive(id uint) (*models.PurchaseOrder, error) {
	err := models.DB.Transaction(func(tx *gorm.DB) error {
		purchaseRepo := s.purchaseRepo.WithTx(tx)
		variantRepo := s.variantRepo.WithTx(tx)
		movementRepo := s.movementRepo.WithTx(tx)

		po, err := purchaseRepo.GetByID(id)
		if err != nil {
			return err
		}
		if po == nil {
			return ErrNotFound
		}
		if po.Status != constants.PurchaseOrderStatusDraft {
			return ErrPurchaseNotDraft
		}
		if len(po.Items) == 0 {
			return ErrPurchaseItemsEmpty
		}

		for _, item := range po.Items {
			variant, err := variantRepo.GetForUpdate(item.VariantID)
			if err != nil {
				return err
			}
			if variant == nil {
				return ErrVariantMissing
			}

			landed := item.LandedCostUnit()
			newStock := variant.StockOnHand + item.Quantity
			newCogs := landed
			if newStock > 0 && variant.StockOnHand > 0 {
				oldValue := decimal.NewFromInt(int64(variant.StockOnHand)).Mul(variant.CogsCurrent.Decimal)
				addedValue := decimal.NewFromInt(int64(item.Quantity)).Mul(landed.Decimal)
				newCogs = models.NewMoneyFromDecimal(
					oldValue.Add(addedValue).Div(decimal.NewFromInt(int64(newStock))))
			}

			if err := variantRepo.UpdateStockAndCogs(variant.ID, newStock, newCogs); err != nil {
				return err
			}
			movement := &models.StockMovement{
				VariantID:       variant.ID,
				Type:            constants.StockMovementIn,
				Quantity:        item.Quantity,
				UnitCostApplied: landed,
				RefType:         constants.StockRefPurchaseOrder,
				RefID:           po.ID,
			}
			if err := movementRepo.Create(movement); err != nil {
				return err
			}
		}

		if err := purchaseRepo.MarkReceived(po.ID, time.Now()); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPurchaseNotDraft
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	logger.Infow("purchase_order_received", "purchase_order_id", id)
	return s.Get(id)
}

// Get fetches a purchase order with items.
func (s *PurchaseService) Get(id uint) (*models.PurchaseOrder, error) {
	po, err := s.purchaseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if po == nil {
		return nil, ErrNotFound
	}
	return po, nil
}

// List lists purchase orders by filter.
func (s *PurchaseService) List(filter repository.PurchaseOrderListFilter) ([]models.PurchaseOrder, int64, error) {
	return s.purchaseRepo.List(filter)
}

// buildItems validates the lines and checks every referenced variant
// exists.
func (s *PurchaseService) buildItems(inputs []PurchaseItemInput) ([]models.PurchaseItem, error) {
	if len(inputs) == 0 {
		return nil, ErrPurchaseItemsEmpty
	}
	ids := make([]uint, 0, len(inputs))
	seen := make(map[uint]bool, len(inputs))
	for _, input := range inputs {
		if input.VariantID == 0 || input.Quantity <= 0 {
			return nil, ErrValidation
		}
		if input.UnitCost.IsNegative() || input.OperationalCostUnit.IsNegative() {
			return nil, ErrValidation
		}
		if !seen[input.VariantID] {
			seen[input.VariantID] = true
			ids = append(ids, input.VariantID)
		}
	}
	variants, err := s.variantRepo.FindByIDs(ids)
	if err != nil {
		return nil, err
	}
	if len(variants) != len(ids) {
		return nil, ErrVariantMissing
	}

	items := make([]models.PurchaseItem, 0, len(inputs))
	for _, input := range inputs {
		items = append(items, models.PurchaseItem{
			VariantID:           input.VariantID,
			Quantity:            input.Quantity,
			UnitCost:            input.UnitCost,
			OperationalCostUnit: input.OperationalCostUnit,
		})
	}
	return items, nil
}

func generatePurchaseCode() string {
	return fmt.Sprintf("PO%s%s", time.Now().Format("20060102150405"), randNumeric(4))
}
