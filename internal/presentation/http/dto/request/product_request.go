package request

import "github.com/google/uuid"

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	Name                  string      `json:"name" binding:"required,min=1,max=255"`
	Price                 *float64    `json:"price" binding:"omitempty,gte=0"`
	Category              *string     `json:"category" binding:"omitempty,max=255"`
	VariablePrice         bool        `json:"variable_price"`
	Stock                 *int        `json:"stock"`
	AdditionalCategoryIDs []uuid.UUID `json:"additional_category_ids"`
}

// UpdateProductRequest represents a product update request
type UpdateProductRequest struct {
	Name                  *string     `json:"name" binding:"omitempty,min=1,max=255"`
	Price                 *float64    `json:"price" binding:"omitempty,gte=0"`
	Category              *string     `json:"category" binding:"omitempty,max=255"`
	VariablePrice         *bool       `json:"variable_price"`
	Suspended             *bool       `json:"suspended"`
	Stock                 *int        `json:"stock"`
	AdditionalCategoryIDs []uuid.UUID `json:"additional_category_ids"`
}

// SetAdditionalCategoriesRequest replaces a product's add-on category links
type SetAdditionalCategoriesRequest struct {
	AdditionalCategoryIDs []uuid.UUID `json:"additional_category_ids"`
}

// CategoryRequest represents a category create/rename request
type CategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

// AssignProductRequest adds a product to a category
type AssignProductRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
}
