package admin

import (
	"time"

	"github.com/warungkita/internal/http/handlers/shared"
	"github.com/warungkita/internal/http/response"
	"github.com/warungkita/internal/repository"
	"github.com/warungkita/internal/service"

	"github.com/gin-gonic/gin"
)

// ListExpenses lists ledger entries.
func (h *Handler) ListExpenses(c *gin.Context) {
	page, pageSize := shared.QueryPagination(c)
	filter := repository.ExpenseListFilter{
		Page:     page,
		PageSize: pageSize,
		Type:     c.Query("type"),
	}
	if from, err := time.ParseInLocation("2006-01-02", c.Query("from"), time.UTC); err == nil {
		filter.DateFrom = &from
	}
	if to, err := time.ParseInLocation("2006-01-02", c.Query("to"), time.UTC); err == nil {
		to = to.AddDate(0, 0, 1)
		filter.DateTo = &to
	}
	expenses, total, err := h.ExpenseService.List(filter)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithPage(c, expenses, response.NewPagination(page, pageSize, total))
}

// CreateExpense creates a ledger entry.
func (h *Handler) CreateExpense(c *gin.Context) {
	var req service.ExpenseInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	expense, err := h.ExpenseService.Create(req)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, expense)
}

// UpdateExpense replaces a ledger entry.
func (h *Handler) UpdateExpense(c *gin.Context) {
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		response.BadRequest(c, "invalid expense id")
		return
	}
	var req service.ExpenseInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	expense, err := h.ExpenseService.Update(id, req)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, expense)
}

// DeleteExpense removes a ledger entry.
func (h *Handler) DeleteExpense(c *gin.Context) {
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		response.BadRequest(c, "invalid expense id")
		return
	}
	if err := h.ExpenseService.Delete(id); err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, nil)
}
