package service

import (
	"fmt"
	"time"

	"github.com/warungkita/internal/config"
	"github.com/warungkita/internal/constants"
	"github.com/warungkita/internal/models"
	"github.com/warungkita/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// ReportService computes the sales and profit-and-loss views.
type ReportService struct {
	reportRepo  repository.ReportRepository
	expenseRepo repository.ExpenseRepository
	cfg         config.ReportConfig
}

// NewReportService creates a report service.
func NewReportService(reportRepo repository.ReportRepository, expenseRepo repository.ExpenseRepository, cfg config.ReportConfig) *ReportService {
	return &ReportService{
		reportRepo:  reportRepo,
		expenseRepo: expenseRepo,
		cfg:         cfg,
	}
}

// SalesDay is one day of the sales report.
type SalesDay struct {
	Date       string       `json:"date"`
	OrderCount int64        `json:"order_count"`
	Revenue    models.Money `json:"revenue"`
}

// SalesReport is the sales-by-day view over a date range.
type SalesReport struct {
	From         string       `json:"from"`
	To           string       `json:"to"`
	Days         []SalesDay   `json:"days"`
	TotalOrders  int64        `json:"total_orders"`
	TotalRevenue models.Money `json:"total_revenue"`
}

// ProfitLossReport is the P&L view over a date range.
type ProfitLossReport struct {
	From            string       `json:"from"`
	To              string       `json:"to"`
	OrderCount      int64        `json:"order_count"`
	Revenue         models.Money `json:"revenue"`
	Discounts       models.Money `json:"discounts"`
	Fees            models.Money `json:"fees"`
	ShippingRevenue models.Money `json:"shipping_revenue"`
	Cogs            models.Money `json:"cogs"`
	ShippingCost    models.Money `json:"shipping_cost"`
	Expenses        models.Money `json:"expenses"`
	OtherIncome     models.Money `json:"other_income"`
	GrossProfit     models.Money `json:"gross_profit"`
	NetProfit       models.Money `json:"net_profit"`
}

const dateLayout = "2006-01-02"

// Sales builds the sales-by-day report. Malformed dates fall back to the
// default range instead of failing.
func (s *ReportService) Sales(fromStr, toStr string) (*SalesReport, error) {
	from, to := s.parseRange(fromStr, toStr)
	rows, err := s.reportRepo.SalesByDay(from, to)
	if err != nil {
		return nil, err
	}

	report := &SalesReport{
		From:         from.Format(dateLayout),
		To:           to.AddDate(0, 0, -1).Format(dateLayout),
		Days:         make([]SalesDay, 0, len(rows)),
		TotalRevenue: models.NewMoneyFromInt(0),
	}
	totalRevenue := decimal.Zero
	for _, row := range rows {
		revenue := decimal.NewFromFloat(row.Revenue)
		report.Days = append(report.Days, SalesDay{
			Date:       row.Day,
			OrderCount: row.OrderCount,
			Revenue:    models.NewMoneyFromDecimal(revenue),
		})
		report.TotalOrders += row.OrderCount
		totalRevenue = totalRevenue.Add(revenue)
	}
	report.TotalRevenue = models.NewMoneyFromDecimal(totalRevenue)
	return report, nil
}

// ProfitLoss builds the P&L report:
//
//	gross = revenue - cogs - fees
//	net   = revenue + shippingRevenue - discounts - cogs - fees
//	        - shippingCost - expenses + otherIncome
func (s *ReportService) ProfitLoss(fromStr, toStr string) (*ProfitLossReport, error) {
	from, to := s.parseRange(fromStr, toStr)

	totals, err := s.reportRepo.OrderTotals(from, to)
	if err != nil {
		return nil, err
	}
	cogs, err := s.reportRepo.CogsTotal(from, to)
	if err != nil {
		return nil, err
	}
	shippingCost, err := s.reportRepo.ShippingCostTotal(from, to)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenseRepo.SumByType(constants.ExpenseTypeExpense, from, to)
	if err != nil {
		return nil, err
	}
	otherIncome, err := s.expenseRepo.SumByType(constants.ExpenseTypeIncome, from, to)
	if err != nil {
		return nil, err
	}

	revenue := decimal.NewFromFloat(totals.Subtotal)
	discounts := decimal.NewFromFloat(totals.DiscountTotal)
	fees := decimal.NewFromFloat(totals.FeesTotal)
	shippingRevenue := decimal.NewFromFloat(totals.ShippingRevenue)
	cogsD := decimal.NewFromFloat(cogs)
	shippingCostD := decimal.NewFromFloat(shippingCost)
	expensesD := decimal.NewFromFloat(expenses)
	otherIncomeD := decimal.NewFromFloat(otherIncome)

	gross := revenue.Sub(cogsD).Sub(fees)
	net := revenue.Add(shippingRevenue).Sub(discounts).Sub(cogsD).Sub(fees).
		Sub(shippingCostD).Sub(expensesD).Add(otherIncomeD)

	return &ProfitLossReport{
		From:            from.Format(dateLayout),
		To:              to.AddDate(0, 0, -1).Format(dateLayout),
		OrderCount:      totals.OrderCount,
		Revenue:         models.NewMoneyFromDecimal(revenue),
		Discounts:       models.NewMoneyFromDecimal(discounts),
		Fees:            models.NewMoneyFromDecimal(fees),
		ShippingRevenue: models.NewMoneyFromDecimal(shippingRevenue),
		Cogs:            models.NewMoneyFromDecimal(cogsD),
		ShippingCost:    models.NewMoneyFromDecimal(shippingCostD),
		Expenses:        models.NewMoneyFromDecimal(expensesD),
		OtherIncome:     models.NewMoneyFromDecimal(otherIncomeD),
		GrossProfit:     models.NewMoneyFromDecimal(gross),
		NetProfit:       models.NewMoneyFromDecimal(net),
	}, nil
}

// ExportSalesXLSX renders the sales report as a spreadsheet.
func (s *ReportService) ExportSalesXLSX(fromStr, toStr string) (*excelize.File, error) {
	report, err := s.Sales(fromStr, toStr)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := "Sales"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	f.SetCellValue(sheet, "A1", "Date")
	f.SetCellValue(sheet, "B1", "Orders")
	f.SetCellValue(sheet, "C1", "Revenue")
	for i, day := range report.Days {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), day.Date)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), day.OrderCount)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), day.Revenue.String())
	}
	totalRow := len(report.Days) + 2
	f.SetCellValue(sheet, fmt.Sprintf("A%d", totalRow), "Total")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", totalRow), report.TotalOrders)
	f.SetCellValue(sheet, fmt.Sprintf("C%d", totalRow), report.TotalRevenue.String())

	return f, nil
}

// parseRange turns inclusive from/to date strings into a half-open UTC
// range. Anything unparsable yields the default trailing window.
func (s *ReportService) parseRange(fromStr, toStr string) (time.Time, time.Time) {
	days := s.cfg.DefaultRangeDays
	if days <= 0 {
		days = 30
	}
	now := time.Now().UTC()
	defaultTo := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	defaultFrom := defaultTo.AddDate(0, 0, -days)

	from, errFrom := time.ParseInLocation(dateLayout, fromStr, time.UTC)
	to, errTo := time.ParseInLocation(dateLayout, toStr, time.UTC)
	if errFrom != nil || errTo != nil {
		return defaultFrom, defaultTo
	}
	to = to.AddDate(0, 0, 1)
	if !from.Before(to) {
		return defaultFrom, defaultTo
	}
	return from, to
}
