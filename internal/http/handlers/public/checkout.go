package public

import (
	"github.com/warungkita/internal/http/handlers/shared"
	"github.com/warungkita/internal/http/response"
	"github.com/warungkita/internal/service"

	"github.com/gin-gonic/gin"
)

// QuoteCart prices a cart, including the shipping fee, without creating
// anything.
func (h *Handler) QuoteCart(c *gin.Context) {
	var req struct {
		Items []service.QuoteItemInput `json:"items" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	quote, err := h.QuoteService.Quote(req.Items)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, quote)
}

// Checkout creates a pending web order.
func (h *Handler) Checkout(c *gin.Context) {
	var req service.CheckoutInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	order, err := h.OrderService.Checkout(req)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, order)
}

// GetOrderByNo lets a buyer look up their order by number.
func (h *Handler) GetOrderByNo(c *gin.Context) {
	order, err := h.OrderService.GetOrderByNo(c.Param("order_no"))
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, order)
}
