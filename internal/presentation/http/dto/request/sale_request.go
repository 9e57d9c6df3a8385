package request

import "github.com/google/uuid"

// SaleAdditionalRequest is one add-on selection on a sale item
type SaleAdditionalRequest struct {
	AdditionalID uuid.UUID `json:"additional_id" binding:"required"`
	Quantity     int       `json:"quantity" binding:"omitempty,gte=1"`
}

// SaleItemRequest is one product entry in a checkout request. UnitPrice is
// only honored for variable-price products.
type SaleItemRequest struct {
	ProductID   uuid.UUID               `json:"product_id" binding:"required"`
	Quantity    int                     `json:"quantity" binding:"required,gte=1"`
	UnitPrice   *float64                `json:"unit_price" binding:"omitempty,gte=0"`
	IsDelivery  bool                    `json:"is_delivery"`
	Additionals []SaleAdditionalRequest `json:"additionals"`
}

// CreateSaleRequest represents a checkout request
type CreateSaleRequest struct {
	PaymentMethodID uuid.UUID         `json:"payment_method_id" binding:"required"`
	Items           []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateSaleRequest represents a sale edit request; items replace the
// previous list wholesale
type UpdateSaleRequest struct {
	PaymentMethodID uuid.UUID         `json:"payment_method_id" binding:"required"`
	Items           []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
}
