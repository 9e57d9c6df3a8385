package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pdvcaixa/caixa-api/internal/application/service"
	"github.com/pdvcaixa/caixa-api/internal/presentation/http/dto/request"
	"github.com/pdvcaixa/caixa-api/internal/presentation/http/dto/response"
)

// CategoryHandler handles product category HTTP requests
type CategoryHandler struct {
	categoryService *service.CategoryService
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CreateCategory creates a new category
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req request.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Category created successfully", category)
}

// ListCategories lists all categories
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Categories retrieved successfully", categories)
}

// UpdateCategory renames a category
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid category ID")
		return
	}

	var req request.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	category, err := h.categoryService.UpdateCategory(c.Request.Context(), id, req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Category updated successfully", category)
}

// DeleteCategory removes a category
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid category ID")
		return
	}

	if err := h.categoryService.DeleteCategory(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// ListCategoryProducts lists the products assigned to a category
func (h *CategoryHandler) ListCategoryProducts(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid category ID")
		return
	}

	products, err := h.categoryService.ListCategoryProducts(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Category products retrieved successfully", products)
}

// AssignProduct adds a product to a category
func (h *CategoryHandler) AssignProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid category ID")
		return
	}

	var req request.AssignProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	product, err := h.categoryService.AssignProduct(c.Request.Context(), id, req.ProductID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product assigned to category successfully", product)
}

// RemoveProduct takes a product out of a category
func (h *CategoryHandler) RemoveProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid category ID")
		return
	}

	productID, err := uuid.Parse(c.Param("pid"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	if err := h.categoryService.RemoveProduct(c.Request.Context(), id, productID); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
