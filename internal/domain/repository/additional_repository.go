package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pdvcaixa/caixa-api/internal/domain/entity"
)

// AdditionalRepository defines the interface for add-on data operations
type AdditionalRepository interface {
	Create(ctx context.Context, additional *entity.Additional) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Additional, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Additional, error)
	Update(ctx context.Context, additional *entity.Additional) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]entity.Additional, error)
	ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]entity.Additional, error)
}

// AdditionalCategoryRepository defines the interface for add-on category data operations
type AdditionalCategoryRepository interface {
	Create(ctx context.Context, category *entity.AdditionalCategory) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.AdditionalCategory, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.AdditionalCategory, error)
	Update(ctx context.Context, category *entity.AdditionalCategory) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]entity.AdditionalCategory, error)
}
