package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/pdvcaixa/caixa-api/internal/application/service"
	"github.com/pdvcaixa/caixa-api/internal/presentation/http/dto/request"
	"github.com/pdvcaixa/caixa-api/internal/presentation/http/dto/response"
)

// ProductHandler handles product HTTP requests
type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// CreateProduct creates a new product
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req request.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), &service.CreateProductInput{
		Name:                  req.Name,
		Price:                 req.Price,
		Category:              req.Category,
		VariablePrice:         req.VariablePrice,
		Stock:                 req.Stock,
		AdditionalCategoryIDs: req.AdditionalCategoryIDs,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Product created successfully", product)
}

// ListProducts lists products, optionally filtered by ?category=
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.productService.ListProducts(c.Request.Context(), c.Query("category"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Products retrieved successfully", products)
}

// GetProduct retrieves one product
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product retrieved successfully", product)
}

// UpdateProduct updates a product
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	var req request.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), &service.UpdateProductInput{
		ID:                    id,
		Name:                  req.Name,
		Price:                 req.Price,
		Category:              req.Category,
		VariablePrice:         req.VariablePrice,
		Suspended:             req.Suspended,
		Stock:                 req.Stock,
		AdditionalCategoryIDs: req.AdditionalCategoryIDs,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product updated successfully", product)
}

// DeleteProduct removes a product
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// GetProductAdditionalCategories returns the add-on categories linked to a product
func (h *ProductHandler) GetProductAdditionalCategories(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	categories, err := h.productService.GetProductAdditionalCategories(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Additional categories retrieved successfully", categories)
}

// SetProductAdditionalCategories replaces the add-on categories linked to a product
func (h *ProductHandler) SetProductAdditionalCategories(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	var req request.SetAdditionalCategoriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	categories, err := h.productService.SetProductAdditionalCategories(c.Request.Context(), id, req.AdditionalCategoryIDs)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Additional categories updated successfully", categories)
}
