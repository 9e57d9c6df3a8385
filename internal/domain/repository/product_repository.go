package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pdvcaixa/caixa-api/internal/domain/entity"
)

// ProductRepository defines the interface for product data operations
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	// GetByIDs retrieves multiple products by their IDs in a single query (prevents N+1)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]entity.Product, error)
	ListByCategory(ctx context.Context, category string) ([]entity.Product, error)
	// AtomicDecrementBatch atomically decrements stock for stock-tracked
	// products. Untracked products (negative stock) are left untouched.
	// Returns the IDs that failed for insufficient stock; if any fail, the
	// whole batch is rolled back.
	AtomicDecrementBatch(ctx context.Context, decrements map[uuid.UUID]int) (failedIDs []uuid.UUID, err error)
	// AtomicIncrementBatch restores stock for stock-tracked products (sale
	// deletion or edit).
	AtomicIncrementBatch(ctx context.Context, increments map[uuid.UUID]int) error
	// GetAdditionalCategories returns the additional categories linked to a product.
	GetAdditionalCategories(ctx context.Context, productID uuid.UUID) ([]entity.AdditionalCategory, error)
	// ReplaceAdditionalCategories replaces a product's additional-category links wholesale.
	ReplaceAdditionalCategories(ctx context.Context, productID uuid.UUID, categoryIDs []uuid.UUID) error
}

// CategoryRepository defines the interface for category data operations
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	GetByName(ctx context.Context, name string) (*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]entity.Category, error)
}
