package admin

import (
	"fmt"
	"net/http"
	"time"

	"github.com/warungkita/internal/http/handlers/shared"
	"github.com/warungkita/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetSalesReport returns the sales-by-day view.
func (h *Handler) GetSalesReport(c *gin.Context) {
	report, err := h.ReportService.Sales(c.Query("from"), c.Query("to"))
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, report)
}

// GetProfitLossReport returns the P&L view.
func (h *Handler) GetProfitLossReport(c *gin.Context) {
	report, err := h.ReportService.ProfitLoss(c.Query("from"), c.Query("to"))
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, report)
}

// ExportSalesReport streams the sales report as an xlsx download.
func (h *Handler) ExportSalesReport(c *gin.Context) {
	f, err := h.ReportService.ExportSalesXLSX(c.Query("from"), c.Query("to"))
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	filename := fmt.Sprintf("sales_%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename="+filename)
	if err := f.Write(c.Writer); err != nil {
		shared.RequestLog(c).Errorw("report_export_failed", "error", err)
		c.Status(http.StatusInternalServerError)
	}
}
