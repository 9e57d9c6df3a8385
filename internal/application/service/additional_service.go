package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pdvcaixa/caixa-api/internal/domain/entity"
	"github.com/pdvcaixa/caixa-api/internal/domain/repository"
	"github.com/pdvcaixa/caixa-api/pkg/apperror"
)

// AdditionalService handles add-on and add-on category operations
type AdditionalService struct {
	additionalRepo repository.AdditionalRepository
	categoryRepo   repository.AdditionalCategoryRepository
}

// NewAdditionalService creates a new additional service
func NewAdditionalService(
	additionalRepo repository.AdditionalRepository,
	categoryRepo repository.AdditionalCategoryRepository,
) *AdditionalService {
	return &AdditionalService{
		additionalRepo: additionalRepo,
		categoryRepo:   categoryRepo,
	}
}

// CreateAdditionalInput represents the create additional input
type CreateAdditionalInput struct {
	Name       string
	Price      float64
	CategoryID *uuid.UUID
}

// CreateAdditional creates a new add-on
func (s *AdditionalService) CreateAdditional(ctx context.Context, input *CreateAdditionalInput) (*entity.Additional, error) {
	if input.CategoryID != nil {
		if _, err := s.GetAdditionalCategory(ctx, *input.CategoryID); err != nil {
			return nil, err
		}
	}

	additional := &entity.Additional{
		Name:       input.Name,
		PriceCents: int64(input.Price*100 + 0.5),
		CategoryID: input.CategoryID,
	}
	if err := s.additionalRepo.Create(ctx, additional); err != nil {
		return nil, err
	}
	return additional, nil
}

// GetAdditional retrieves an add-on by ID
func (s *AdditionalService) GetAdditional(ctx context.Context, id uuid.UUID) (*entity.Additional, error) {
	additional, err := s.additionalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if additional == nil {
		return nil, apperror.NewNotFoundError("Additional")
	}
	return additional, nil
}

// ListAdditionals lists add-ons, optionally filtered by category
func (s *AdditionalService) ListAdditionals(ctx context.Context, categoryID *uuid.UUID) ([]entity.Additional, error) {
	if categoryID != nil {
		return s.additionalRepo.ListByCategory(ctx, *categoryID)
	}
	return s.additionalRepo.List(ctx)
}

// UpdateAdditionalInput represents the update additional input
type UpdateAdditionalInput struct {
	ID         uuid.UUID
	Name       *string
	Price      *float64
	CategoryID *uuid.UUID
}

// UpdateAdditional updates an add-on
func (s *AdditionalService) UpdateAdditional(ctx context.Context, input *UpdateAdditionalInput) (*entity.Additional, error) {
	additional, err := s.GetAdditional(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		additional.Name = *input.Name
	}
	if input.Price != nil {
		additional.PriceCents = int64(*input.Price*100 + 0.5)
	}
	if input.CategoryID != nil {
		if _, err := s.GetAdditionalCategory(ctx, *input.CategoryID); err != nil {
			return nil, err
		}
		additional.CategoryID = input.CategoryID
	}

	if err := s.additionalRepo.Update(ctx, additional); err != nil {
		return nil, err
	}
	return additional, nil
}

// DeleteAdditional soft-deletes an add-on; sale history keeps its snapshot
func (s *AdditionalService) DeleteAdditional(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetAdditional(ctx, id); err != nil {
		return err
	}
	return s.additionalRepo.Delete(ctx, id)
}

// CreateAdditionalCategoryInput represents the create additional category input
type CreateAdditionalCategoryInput struct {
	Name        string
	Description *string
}

// CreateAdditionalCategory creates a new add-on category
func (s *AdditionalService) CreateAdditionalCategory(ctx context.Context, input *CreateAdditionalCategoryInput) (*entity.AdditionalCategory, error) {
	category := &entity.AdditionalCategory{
		Name:        input.Name,
		Description: input.Description,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// GetAdditionalCategory retrieves an add-on category by ID
func (s *AdditionalService) GetAdditionalCategory(ctx context.Context, id uuid.UUID) (*entity.AdditionalCategory, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NewNotFoundError("Additional category")
	}
	return category, nil
}

// ListAdditionalCategories returns all add-on categories
func (s *AdditionalService) ListAdditionalCategories(ctx context.Context) ([]entity.AdditionalCategory, error) {
	return s.categoryRepo.List(ctx)
}

// UpdateAdditionalCategoryInput represents the update additional category input
type UpdateAdditionalCategoryInput struct {
	ID          uuid.UUID
	Name        *string
	Description *string
}

// UpdateAdditionalCategory updates an add-on category
func (s *AdditionalService) UpdateAdditionalCategory(ctx context.Context, input *UpdateAdditionalCategoryInput) (*entity.AdditionalCategory, error) {
	category, err := s.GetAdditionalCategory(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		category.Name = *input.Name
	}
	if input.Description != nil {
		category.Description = input.Description
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteAdditionalCategory removes an add-on category and unlinks its products
func (s *AdditionalService) DeleteAdditionalCategory(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetAdditionalCategory(ctx, id); err != nil {
		return err
	}
	return s.categoryRepo.Delete(ctx, id)
}
