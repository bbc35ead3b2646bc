package admin

import (
	"strconv"

	"github.com/warungkita/internal/http/handlers/shared"
	"github.com/warungkita/internal/http/response"
	"github.com/warungkita/internal/repository"
	"github.com/warungkita/internal/service"

	"github.com/gin-gonic/gin"
)

// ListProducts lists products, inactive ones included.
func (h *Handler) ListProducts(c *gin.Context) {
	page, pageSize := shared.QueryPagination(c)
	categoryID, _ := strconv.ParseUint(c.Query("category_id"), 10, 64)

	filter := repository.ProductListFilter{
		Page:         page,
		PageSize:     pageSize,
		CategoryID:   uint(categoryID),
		Search:       c.Query("search"),
		WithCategory: true,
		WithVariants: true,
	}
	products, total, err := h.ProductService.ListProducts(filter)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithPage(c, products, response.NewPagination(page, pageSize, total))
}

// GetProduct fetches one product.
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		response.BadRequest(c, "invalid product id")
		return
	}
	product, err := h.ProductService.GetProduct(id)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, product)
}

// CreateProduct creates a product.
func (h *Handler) CreateProduct(c *gin.Context) {
	var req service.ProductInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	product, err := h.ProductService.CreateProduct(req)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, product)
}

// UpdateProduct updates a product.
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		response.BadRequest(c, "invalid product id")
		return
	}
	var req service.ProductInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	product, err := h.ProductService.UpdateProduct(id, req)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, product)
}

// DeleteProduct removes a product with no variants.
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		response.BadRequest(c, "invalid product id")
		return
	}
	if err := h.ProductService.DeleteProduct(id); err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, nil)
}

// ListVariants lists a product's variants.
func (h *Handler) ListVariants(c *gin.Context) {
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		response.BadRequest(c, "invalid product id")
		return
	}
	variants, err := h.ProductService.ListVariants(id)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, variants)
}

// CreateVariant creates a variant under a product.
func (h *Handler) CreateVariant(c *gin.Context) {
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		response.BadRequest(c, "invalid product id")
		return
	}
	var req service.VariantInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	variant, err := h.ProductService.CreateVariant(id, req)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, variant)
}

// UpdateVariant updates a variant's catalog fields.
func (h *Handler) UpdateVariant(c *gin.Context) {
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		response.BadRequest(c, "invalid variant id")
		return
	}
	var req service.VariantInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	variant, err := h.ProductService.UpdateVariant(id, req)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, variant)
}
