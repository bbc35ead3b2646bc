package public

import (
	"strconv"

	"github.com/warungkita/internal/http/handlers/shared"
	"github.com/warungkita/internal/http/response"
	"github.com/warungkita/internal/repository"

	"github.com/gin-gonic/gin"
)

// GetProducts lists active products for the storefront.
func (h *Handler) GetProducts(c *gin.Context) {
	page, pageSize := shared.QueryPagination(c)
	categoryID, _ := strconv.ParseUint(c.Query("category_id"), 10, 64)

	filter := repository.ProductListFilter{
		Page:         page,
		PageSize:     pageSize,
		CategoryID:   uint(categoryID),
		Search:       c.Query("search"),
		OnlyActive:   true,
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

// GetProductBySlug fetches one active product.
func (h *Handler) GetProductBySlug(c *gin.Context) {
	product, err := h.ProductService.GetProductBySlug(c.Param("slug"))
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, product)
}

// GetCategories lists categories for storefront navigation.
func (h *Handler) GetCategories(c *gin.Context) {
	categories, err := h.CategoryService.List()
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, categories)
}
