package repository

import (
	"errors"
	"time"

	"github.com/warungkita/internal/models"

	"gorm.io/gorm"
)

// PurchaseOrderRepository is the data access interface for purchase orders.
type PurchaseOrderRepository interface {
	Create(po *models.PurchaseOrder, items []models.PurchaseItem) error
	GetByID(id uint) (*models.PurchaseOrder, error)
	List(filter PurchaseOrderListFilter) ([]models.PurchaseOrder, int64, error)
	ReplaceItems(poID uint, items []models.PurchaseItem) error
	Update(po *models.PurchaseOrder) error
	MarkReceived(id uint, receivedAt time.Time) error
	WithTx(tx *gorm.DB) PurchaseOrderRepository
}

// GormPurchaseOrderRepository is the GORM implementation.
type GormPurchaseOrderRepository struct {
	db *gorm.DB
}

// NewPurchaseOrderRepository creates a purchase order repository.
func NewPurchaseOrderRepository(db *gorm.DB) *GormPurchaseOrderRepository {
	return &GormPurchaseOrderRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormPurchaseOrderRepository) WithTx(tx *gorm.DB) PurchaseOrderRepository {
	if tx == nil {
		return r
	}
	return &GormPurchaseOrderRepository{db: tx}
}

// Create inserts a purchase order and its items.
func (r *GormPurchaseOrderRepository) Create(po *models.PurchaseOrder, items []models.PurchaseItem) error {
	if err := r.db.Create(po).Error; err != nil {
		return err
	}
	for i := range items {
		items[i].PurchaseOrderID = po.ID
	}
	if len(items) > 0 {
		if err := r.db.Create(&items).Error; err != nil {
			return err
		}
	}
	return nil
}

// GetByID fetches a purchase order with items.
func (r *GormPurchaseOrderRepository) GetByID(id uint) (*models.PurchaseOrder, error) {
	var po models.PurchaseOrder
	if err := r.db.Preload("Items").First(&po, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &po, nil
}

// List returns purchase orders matching the filter, newest first.
func (r *GormPurchaseOrderRepository) List(filter PurchaseOrderListFilter) ([]models.PurchaseOrder, int64, error) {
	var orders []models.PurchaseOrder
	query := r.db.Model(&models.PurchaseOrder{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("code LIKE ? OR supplier_name LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := applyPagination(query.Preload("Items").Order("id desc"), filter.Page, filter.PageSize).
		Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// ReplaceItems swaps a draft's item set.
func (r *GormPurchaseOrderRepository) ReplaceItems(poID uint, items []models.PurchaseItem) error {
	if err := r.db.Where("purchase_order_id = ?", poID).Delete(&models.PurchaseItem{}).Error; err != nil {
		return err
	}
	for i := range items {
		items[i].PurchaseOrderID = poID
	}
	if len(items) > 0 {
		if err := r.db.Create(&items).Error; err != nil {
			return err
		}
	}
	return nil
}

// Update saves header fields.
func (r *GormPurchaseOrderRepository) Update(po *models.PurchaseOrder) error {
	return r.db.Save(po).Error
}

// MarkReceived flips a draft to received. The status guard makes the
// transition one-way even under concurrent receive calls.
func (r *GormPurchaseOrderRepository) MarkReceived(id uint, receivedAt time.Time) error {
	result := r.db.Model(&models.PurchaseOrder{}).
		Where("id = ? AND status = ?", id, "draft").
		Updates(map[string]interface{}{
			"status":      "received",
			"received_at": receivedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
