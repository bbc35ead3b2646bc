package admin

import (
	"github.com/warungkita/internal/http/handlers/shared"
	"github.com/warungkita/internal/http/response"
	"github.com/warungkita/internal/service"

	"github.com/gin-gonic/gin"
)

// ListCategories lists all categories.
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.CategoryService.List()
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, categories)
}

// GetCategory fetches one category.
func (h *Handler) GetCategory(c *gin.Context) {
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		response.BadRequest(c, "invalid category id")
		return
	}
	category, err := h.CategoryService.Get(id)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, category)
}

// CreateCategory creates a category with cost components.
func (h *Handler) CreateCategory(c *gin.Context) {
	var req service.CategoryInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	category, err := h.CategoryService.Create(req)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, category)
}

// UpdateCategory updates a category and its cost components.
func (h *Handler) UpdateCategory(c *gin.Context) {
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		response.BadRequest(c, "invalid category id")
		return
	}
	var req service.CategoryInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	category, err := h.CategoryService.Update(id, req)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, category)
}

// DeleteCategory removes a category with no products.
func (h *Handler) DeleteCategory(c *gin.Context) {
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		response.BadRequest(c, "invalid category id")
		return
	}
	if err := h.CategoryService.Delete(id); err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, nil)
}
