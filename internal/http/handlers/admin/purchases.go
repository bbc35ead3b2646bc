package admin

import (
	"github.com/warungkita/internal/http/handlers/shared"
	"github.com/warungkita/internal/http/response"
	"github.com/warungkita/internal/repository"
	"github.com/warungkita/internal/service"

	"github.com/gin-gonic/gin"
)

// ListPurchaseOrders lists purchase orders.
func (h *Handler) ListPurchaseOrders(c *gin.Context) {
	page, pageSize := shared.QueryPagination(c)
	filter := repository.PurchaseOrderListFilter{
		Page:     page,
		PageSize: pageSize,
		Status:   c.Query("status"),
		Search:   c.Query("search"),
	}
	orders, total, err := h.PurchaseService.List(filter)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithPage(c, orders, response.NewPagination(page, pageSize, total))
}

// GetPurchaseOrder fetches one purchase order.
func (h *Handler) GetPurchaseOrder(c *gin.Context) {
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		response.BadRequest(c, "invalid purchase order id")
		return
	}
	po, err := h.PurchaseService.Get(id)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, po)
}

// CreatePurchaseOrder creates a draft.
func (h *Handler) CreatePurchaseOrder(c *gin.Context) {
	var req service.PurchaseOrderInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	po, err := h.PurchaseService.CreateDraft(req)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, po)
}

// UpdatePurchaseOrder replaces a draft's header and items.
func (h *Handler) UpdatePurchaseOrder(c *gin.Context) {
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		response.BadRequest(c, "invalid purchase order id")
		return
	}
	var req service.PurchaseOrderInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	po, err := h.PurchaseService.UpdateDraft(id, req)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, po)
}

// ReceivePurchaseOrder books a draft into inventory.
func (h *Handler) ReceivePurchaseOrder(c *gin.Context) {
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		response.BadRequest(c, "invalid purchase order id")
		return
	}
	po, err := h.PurchaseService.Receive(id)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, po)
}
