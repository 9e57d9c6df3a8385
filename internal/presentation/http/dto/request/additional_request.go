package request

import "github.com/google/uuid"

// CreateAdditionalRequest represents an add-on creation request
type CreateAdditionalRequest struct {
	Name       string     `json:"name" binding:"required,min=1,max=255"`
	Price      float64    `json:"price" binding:"gte=0"`
	CategoryID *uuid.UUID `json:"category_id"`
}

// UpdateAdditionalRequest represents an add-on update request
type UpdateAdditionalRequest struct {
	Name       *string    `json:"name" binding:"omitempty,min=1,max=255"`
	Price      *float64   `json:"price" binding:"omitempty,gte=0"`
	CategoryID *uuid.UUID `json:"category_id"`
}

// AdditionalCategoryRequest represents an add-on category create/update request
type AdditionalCategoryRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=255"`
	Description *string `json:"description"`
}

// UpdateAdditionalCategoryRequest represents an add-on category partial update
type UpdateAdditionalCategoryRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=255"`
	Description *string `json:"description"`
}
