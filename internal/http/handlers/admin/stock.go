package admin

import (
	"strconv"

	"github.com/warungkita/internal/http/handlers/shared"
	"github.com/warungkita/internal/http/response"
	"github.com/warungkita/internal/repository"
	"github.com/warungkita/internal/service"

	"github.com/gin-gonic/gin"
)

// AdjustStock applies a manual stock correction.
func (h *Handler) AdjustStock(c *gin.Context) {
	var req service.AdjustInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	variant, err := h.StockService.Adjust(req)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, variant)
}

// ListStockMovements lists the movement ledger.
func (h *Handler) ListStockMovements(c *gin.Context) {
	page, pageSize := shared.QueryPagination(c)
	variantID, _ := strconv.ParseUint(c.Query("variant_id"), 10, 64)
	refID, _ := strconv.ParseUint(c.Query("ref_id"), 10, 64)

	filter := repository.StockMovementListFilter{
		Page:      page,
		PageSize:  pageSize,
		VariantID: uint(variantID),
		Type:      c.Query("type"),
		RefType:   c.Query("ref_type"),
		RefID:     uint(refID),
	}
	movements, total, err := h.StockService.ListMovements(filter)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithPage(c, movements, response.NewPagination(page, pageSize, total))
}
