package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pdvcaixa/caixa-api/internal/domain/entity"
	"github.com/pdvcaixa/caixa-api/internal/domain/repository"
	"github.com/pdvcaixa/caixa-api/pkg/apperror"
)

// ProductService handles product-related operations
type ProductService struct {
	productRepo       repository.ProductRepository
	additionalCatRepo repository.AdditionalCategoryRepository
}

// NewProductService creates a new product service
func NewProductService(
	productRepo repository.ProductRepository,
	additionalCatRepo repository.AdditionalCategoryRepository,
) *ProductService {
	return &ProductService{
		productRepo:       productRepo,
		additionalCatRepo: additionalCatRepo,
	}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	Name                  string
	Price                 *float64 // nil for variable-price products
	Category              *string
	VariablePrice         bool
	Stock                 *int // nil means untracked
	AdditionalCategoryIDs []uuid.UUID
}

// CreateProduct creates a new product
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	if !input.VariablePrice && input.Price == nil {
		return nil, apperror.NewBadRequestError("Price is required for fixed-price products")
	}

	product := &entity.Product{
		Name:          input.Name,
		Category:      input.Category,
		VariablePrice: input.VariablePrice,
		Stock:         -1,
	}
	if !input.VariablePrice {
		product.SetPriceFromDecimal(input.Price)
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	if len(input.AdditionalCategoryIDs) > 0 {
		if err := s.linkAdditionalCategories(ctx, product.ID, input.AdditionalCategoryIDs); err != nil {
			return nil, err
		}
	}

	return product, nil
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// ListProducts lists products, optionally filtered by category name
func (s *ProductService) ListProducts(ctx context.Context, category string) ([]entity.Product, error) {
	if category != "" {
		return s.productRepo.ListByCategory(ctx, category)
	}
	return s.productRepo.List(ctx)
}

// UpdateProductInput represents the update product input
type UpdateProductInput struct {
	ID                    uuid.UUID
	Name                  *string
	Price                 *float64
	Category              *string
	VariablePrice         *bool
	Suspended             *bool
	Stock                 *int
	AdditionalCategoryIDs []uuid.UUID // nil leaves links untouched, empty clears them
}

// UpdateProduct updates a product
func (s *ProductService) UpdateProduct(ctx context.Context, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.GetProduct(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Category != nil {
		product.Category = input.Category
	}
	if input.VariablePrice != nil {
		product.VariablePrice = *input.VariablePrice
		if product.VariablePrice {
			product.PriceCents = nil
		}
	}
	if input.Price != nil && !product.VariablePrice {
		product.SetPriceFromDecimal(input.Price)
	}
	if input.Suspended != nil {
		product.Suspended = *input.Suspended
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	if input.AdditionalCategoryIDs != nil {
		if err := s.linkAdditionalCategories(ctx, product.ID, input.AdditionalCategoryIDs); err != nil {
			return nil, err
		}
	}

	return product, nil
}

// DeleteProduct soft-deletes a product; historical sale items keep their snapshot
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetProduct(ctx, id); err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, id)
}

// GetProductAdditionalCategories returns the add-on categories offered by a product
func (s *ProductService) GetProductAdditionalCategories(ctx context.Context, productID uuid.UUID) ([]entity.AdditionalCategory, error) {
	if _, err := s.GetProduct(ctx, productID); err != nil {
		return nil, err
	}
	return s.productRepo.GetAdditionalCategories(ctx, productID)
}

// SetProductAdditionalCategories replaces a product's add-on category links
// wholesale; an empty list unlinks everything
func (s *ProductService) SetProductAdditionalCategories(ctx context.Context, productID uuid.UUID, categoryIDs []uuid.UUID) ([]entity.AdditionalCategory, error) {
	if _, err := s.GetProduct(ctx, productID); err != nil {
		return nil, err
	}
	if err := s.linkAdditionalCategories(ctx, productID, categoryIDs); err != nil {
		return nil, err
	}
	return s.productRepo.GetAdditionalCategories(ctx, productID)
}

func (s *ProductService) linkAdditionalCategories(ctx context.Context, productID uuid.UUID, categoryIDs []uuid.UUID) error {
	if len(categoryIDs) > 0 {
		found, err := s.additionalCatRepo.GetByIDs(ctx, categoryIDs)
		if err != nil {
			return err
		}
		if len(found) != len(dedupe(categoryIDs)) {
			return apperror.NewBadRequestError("One or more additional categories do not exist")
		}
	}
	return s.productRepo.ReplaceAdditionalCategories(ctx, productID, categoryIDs)
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
