package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pdvcaixa/caixa-api/internal/domain/entity"
)

// SaleFilterParams contains filtering parameters for sale queries
type SaleFilterParams struct {
	Start           *time.Time
	End             *time.Time
	UserID          *uuid.UUID
	PaymentMethodID *uuid.UUID
	Limit           int // 0 means no limit
	Offset          int
}

// SaleRepository defines the interface for sale data operations.
//
// Create and ReplaceContents persist the sale together with its items and
// item additionals in one transaction; a sale is never partially written.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	// GetWithDetails loads the sale with items, item additionals, products,
	// user and payment method.
	GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	// ReplaceContents swaps a sale's payment method, total and item list
	// wholesale, deleting the previous items.
	ReplaceContents(ctx context.Context, sale *entity.Sale) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns sales matching the filter, newest first, with items,
	// products, user and payment method preloaded.
	List(ctx context.Context, params *SaleFilterParams) ([]entity.Sale, error)
	// Count returns how many sales match the filter, ignoring Limit and
	// Offset.
	Count(ctx context.Context, params *SaleFilterParams) (int64, error)
}
