package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pdvcaixa/caixa-api/internal/domain/entity"
	"github.com/pdvcaixa/caixa-api/internal/domain/repository"
	"github.com/pdvcaixa/caixa-api/pkg/apperror"
)

// CategoryService handles product category operations
type CategoryService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
}

// NewCategoryService creates a new category service
func NewCategoryService(categoryRepo repository.CategoryRepository, productRepo repository.ProductRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo, productRepo: productRepo}
}

// CreateCategory creates a new category
func (s *CategoryService) CreateCategory(ctx context.Context, name string) (*entity.Category, error) {
	existing, err := s.categoryRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Category already exists")
	}

	category := &entity.Category{Name: name}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// GetCategory retrieves a category by ID
func (s *CategoryService) GetCategory(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NewNotFoundError("Category")
	}
	return category, nil
}

// ListCategories returns all categories
func (s *CategoryService) ListCategories(ctx context.Context) ([]entity.Category, error) {
	return s.categoryRepo.List(ctx)
}

// UpdateCategory renames a category
func (s *CategoryService) UpdateCategory(ctx context.Context, id uuid.UUID, name string) (*entity.Category, error) {
	category, err := s.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	if name != category.Name {
		existing, err := s.categoryRepo.GetByName(ctx, name)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != category.ID {
			return nil, apperror.NewConflictError("Category already exists")
		}
		category.Name = name
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory removes a category; products keep their free-text category name
func (s *CategoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetCategory(ctx, id); err != nil {
		return err
	}
	return s.categoryRepo.Delete(ctx, id)
}

// ListCategoryProducts returns the products currently assigned to a category
func (s *CategoryService) ListCategoryProducts(ctx context.Context, id uuid.UUID) ([]entity.Product, error) {
	category, err := s.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.productRepo.ListByCategory(ctx, category.Name)
}

// AssignProduct moves a product into a category, replacing any previous one
func (s *CategoryService) AssignProduct(ctx context.Context, categoryID, productID uuid.UUID) (*entity.Product, error) {
	category, err := s.GetCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	name := category.Name
	product.Category = &name
	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// RemoveProduct takes a product out of a category it belongs to
func (s *CategoryService) RemoveProduct(ctx context.Context, categoryID, productID uuid.UUID) error {
	category, err := s.GetCategory(ctx, categoryID)
	if err != nil {
		return err
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}
	if product.Category == nil || *product.Category != category.Name {
		return apperror.NewBadRequestError("Product does not belong to this category")
	}

	product.Category = nil
	return s.productRepo.Update(ctx, product)
}
