package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pdvcaixa/caixa-api/internal/application/service"
	"github.com/pdvcaixa/caixa-api/internal/presentation/http/dto/request"
	"github.com/pdvcaixa/caixa-api/internal/presentation/http/dto/response"
)

// AdditionalHandler handles add-on and add-on category HTTP requests
type AdditionalHandler struct {
	additionalService *service.AdditionalService
}

// NewAdditionalHandler creates a new additional handler
func NewAdditionalHandler(additionalService *service.AdditionalService) *AdditionalHandler {
	return &AdditionalHandler{additionalService: additionalService}
}

// CreateAdditional creates a new add-on
func (h *AdditionalHandler) CreateAdditional(c *gin.Context) {
	var req request.CreateAdditionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	additional, err := h.additionalService.CreateAdditional(c.Request.Context(), &service.CreateAdditionalInput{
		Name:       req.Name,
		Price:      req.Price,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Additional created successfully", additional)
}

// ListAdditionals lists add-ons, optionally filtered by ?category_id=
func (h *AdditionalHandler) ListAdditionals(c *gin.Context) {
	var categoryID *uuid.UUID
	if raw := c.Query("category_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(c, "Invalid category ID")
			return
		}
		categoryID = &id
	}

	additionals, err := h.additionalService.ListAdditionals(c.Request.Context(), categoryID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Additionals retrieved successfully", additionals)
}

// UpdateAdditional updates an add-on
func (h *AdditionalHandler) UpdateAdditional(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid additional ID")
		return
	}

	var req request.UpdateAdditionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	additional, err := h.additionalService.UpdateAdditional(c.Request.Context(), &service.UpdateAdditionalInput{
		ID:         id,
		Name:       req.Name,
		Price:      req.Price,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Additional updated successfully", additional)
}

// DeleteAdditional removes an add-on
func (h *AdditionalHandler) DeleteAdditional(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid additional ID")
		return
	}

	if err := h.additionalService.DeleteAdditional(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// CreateAdditionalCategory creates a new add-on category
func (h *AdditionalHandler) CreateAdditionalCategory(c *gin.Context) {
	var req request.AdditionalCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	category, err := h.additionalService.CreateAdditionalCategory(c.Request.Context(), &service.CreateAdditionalCategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Additional category created successfully", category)
}

// ListAdditionalCategories lists all add-on categories
func (h *AdditionalHandler) ListAdditionalCategories(c *gin.Context) {
	categories, err := h.additionalService.ListAdditionalCategories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Additional categories retrieved successfully", categories)
}

// UpdateAdditionalCategory updates an add-on category
func (h *AdditionalHandler) UpdateAdditionalCategory(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid category ID")
		return
	}

	var req request.UpdateAdditionalCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	category, err := h.additionalService.UpdateAdditionalCategory(c.Request.Context(), &service.UpdateAdditionalCategoryInput{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Additional category updated successfully", category)
}

// DeleteAdditionalCategory removes an add-on category
func (h *AdditionalHandler) DeleteAdditionalCategory(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid category ID")
		return
	}

	if err := h.additionalService.DeleteAdditionalCategory(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
