package repository

import (
	"time"

	"github.com/warungkita/internal/constants"
	"github.com/warungkita/internal/models"

	"gorm.io/gorm"
)

// ReportRepository runs the read-only aggregations behind sales and P&L
// reporting. It carries no business rules beyond which orders count as
// revenue.
type ReportRepository interface {
	SalesByDay(from, to time.Time) ([]SalesByDayRow, error)
	OrderTotals(from, to time.Time) (OrderTotalsRow, error)
	CogsTotal(from, to time.Time) (float64, error)
	ShippingCostTotal(from, to time.Time) (float64, error)
}

// SalesByDayRow is one day of the sales view.
type SalesByDayRow struct {
	Day        string
	OrderCount int64
	Revenue    float64
}

// OrderTotalsRow aggregates order monetary snapshots over a period.
type OrderTotalsRow struct {
	OrderCount      int64
	Subtotal        float64
	DiscountTotal   float64
	FeesTotal       float64
	ShippingRevenue float64
}

// GormReportRepository is the GORM implementation.
type GormReportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a report repository.
func NewReportRepository(db *gorm.DB) *GormReportRepository {
	return &GormReportRepository{db: db}
}

// revenueStatuses are the order states counted as revenue: committed sales
// that have been paid for. Pending web checkouts and canceled orders are
// excluded.
func revenueStatuses() []string {
	return []string{
		constants.OrderStatusPaid,
		constants.OrderStatusShipped,
		constants.OrderStatusCompleted,
	}
}

func (r *GormReportRepository) revenueOrderBase(from, to time.Time) *gorm.DB {
	return r.db.Model(&models.Order{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Where("status IN ?", revenueStatuses())
}

// SalesByDay sums subtotal - discount + shipping fee per UTC calendar day.
func (r *GormReportRepository) SalesByDay(from, to time.Time) ([]SalesByDayRow, error) {
	dayExpr := dayBucketExpr(r.db, "created_at")
	var rows []SalesByDayRow
	err := r.revenueOrderBase(from, to).
		Select(dayExpr + " AS day, COUNT(*) AS order_count, " +
			"COALESCE(SUM(subtotal - discount_total + shipping_fee), 0) AS revenue").
		Group(dayExpr).
		Order("day asc").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// OrderTotals aggregates the monetary snapshots of revenue orders.
func (r *GormReportRepository) OrderTotals(from, to time.Time) (OrderTotalsRow, error) {
	var row OrderTotalsRow
	err := r.revenueOrderBase(from, to).
		Select("COUNT(*) AS order_count, " +
			"COALESCE(SUM(subtotal), 0) AS subtotal, " +
			"COALESCE(SUM(discount_total), 0) AS discount_total, " +
			"COALESCE(SUM(fees_total), 0) AS fees_total, " +
			"COALESCE(SUM(shipping_fee), 0) AS shipping_revenue").
		Scan(&row).Error
	return row, err
}

// CogsTotal sums cogs_snapshot * qty over the items of revenue orders.
func (r *GormReportRepository) CogsTotal(from, to time.Time) (float64, error) {
	var total float64
	err := r.db.Model(&models.OrderItem{}).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.created_at >= ? AND orders.created_at < ?", from, to).
		Where("orders.status IN ?", revenueStatuses()).
		Select("COALESCE(SUM(order_items.cogs_snapshot * order_items.quantity), 0)").
		Scan(&total).Error
	return total, err
}

// ShippingCostTotal sums actual courier cost over shipments of revenue
// orders.
func (r *GormReportRepository) ShippingCostTotal(from, to time.Time) (float64, error) {
	var total float64
	err := r.db.Model(&models.Shipment{}).
		Joins("JOIN orders ON orders.id = shipments.order_id").
		Where("orders.created_at >= ? AND orders.created_at < ?", from, to).
		Where("orders.status IN ?", revenueStatuses()).
		Select("COALESCE(SUM(shipments.cost), 0)").
		Scan(&total).Error
	return total, err
}
