package admin

import (
	"strconv"
	"time"

	"github.com/warungkita/internal/http/handlers/shared"
	"github.com/warungkita/internal/http/response"
	"github.com/warungkita/internal/repository"
	"github.com/warungkita/internal/service"

	"github.com/gin-gonic/gin"
)

// ListOrders lists orders with filters.
func (h *Handler) ListOrders(c *gin.Context) {
	page, pageSize := shared.QueryPagination(c)
	channelID, _ := strconv.ParseUint(c.Query("channel_id"), 10, 64)
	customerID, _ := strconv.ParseUint(c.Query("customer_id"), 10, 64)

	filter := repository.OrderListFilter{
		Page:       page,
		PageSize:   pageSize,
		ChannelID:  uint(channelID),
		CustomerID: uint(customerID),
		Status:     c.Query("status"),
		OrderNo:    c.Query("order_no"),
	}
	if from, err := time.ParseInLocation("2006-01-02", c.Query("from"), time.UTC); err == nil {
		filter.CreatedFrom = &from
	}
	if to, err := time.ParseInLocation("2006-01-02", c.Query("to"), time.UTC); err == nil {
		to = to.AddDate(0, 0, 1)
		filter.CreatedTo = &to
	}

	orders, total, err := h.OrderService.ListOrders(filter)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithPage(c, orders, response.NewPagination(page, pageSize, total))
}

// GetOrder fetches one order.
func (h *Handler) GetOrder(c *gin.Context) {
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		response.BadRequest(c, "invalid order id")
		return
	}
	order, err := h.OrderService.GetOrder(id)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, order)
}

// CreatePOSSale records an offline counter sale.
func (h *Handler) CreatePOSSale(c *gin.Context) {
	var req service.POSSaleInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	order, err := h.OrderService.CreatePOSSale(req)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, order)
}

// ImportOrder records a marketplace order.
func (h *Handler) ImportOrder(c *gin.Context) {
	var req service.ImportOrderInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	order, err := h.OrderService.ImportOrder(req)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, order)
}

// MarkOrderPaid transitions a pending order to paid.
func (h *Handler) MarkOrderPaid(c *gin.Context) {
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		response.BadRequest(c, "invalid order id")
		return
	}
	order, err := h.OrderService.MarkPaid(id)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, order)
}

// ShipOrder transitions a paid order to shipped.
func (h *Handler) ShipOrder(c *gin.Context) {
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		response.BadRequest(c, "invalid order id")
		return
	}
	var req service.ShipInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	order, err := h.OrderService.Ship(id, req)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, order)
}

// CompleteOrder transitions a shipped order to completed.
func (h *Handler) CompleteOrder(c *gin.Context) {
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		response.BadRequest(c, "invalid order id")
		return
	}
	order, err := h.OrderService.Complete(id)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, order)
}

// CancelOrder cancels a pending order.
func (h *Handler) CancelOrder(c *gin.Context) {
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		response.BadRequest(c, "invalid order id")
		return
	}
	order, err := h.OrderService.Cancel(id)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, order)
}

// ListChannels lists the seeded sales channels.
func (h *Handler) ListChannels(c *gin.Context) {
	channels, err := h.OrderService.ListChannels()
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, channels)
}
