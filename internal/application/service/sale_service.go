package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pdvcaixa/caixa-api/internal/domain/entity"
	"github.com/pdvcaixa/caixa-api/internal/domain/repository"
	"github.com/pdvcaixa/caixa-api/pkg/apperror"
	"github.com/pdvcaixa/caixa-api/pkg/pagination"
)

// SaleService handles checkout, sale editing and deletion. Totals are always
// computed server-side from product and add-on price snapshots; client-sent
// totals are never trusted.
type SaleService struct {
	saleRepo       repository.SaleRepository
	productRepo    repository.ProductRepository
	additionalRepo repository.AdditionalRepository
	paymentRepo    repository.PaymentMethodRepository
}

// NewSaleService creates a new sale service
func NewSaleService(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	additionalRepo repository.AdditionalRepository,
	paymentRepo repository.PaymentMethodRepository,
) *SaleService {
	return &SaleService{
		saleRepo:       saleRepo,
		productRepo:    productRepo,
		additionalRepo: additionalRepo,
		paymentRepo:    paymentRepo,
	}
}

// SaleAdditionalInput is one add-on selection on a sale item
type SaleAdditionalInput struct {
	AdditionalID uuid.UUID
	Quantity     int
}

// SaleItemInput is one product entry in a checkout request
type SaleItemInput struct {
	ProductID   uuid.UUID
	Quantity    int
	UnitPrice   *float64 // required for variable-price products, ignored otherwise
	IsDelivery  bool
	Additionals []SaleAdditionalInput
}

// CreateSaleInput represents the checkout input
type CreateSaleInput struct {
	UserID          uuid.UUID
	PaymentMethodID uuid.UUID
	Items           []SaleItemInput
}

// CreateSale validates the checkout, decrements stock atomically and persists
// the sale with its items in one transaction
func (s *SaleService) CreateSale(ctx context.Context, input *CreateSaleInput) (*entity.Sale, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("A sale requires at least one item")
	}

	method, err := s.paymentRepo.GetByID(ctx, input.PaymentMethodID)
	if err != nil {
		return nil, err
	}
	if method == nil {
		return nil, apperror.NewNotFoundError("Payment method")
	}

	items, err := s.buildItems(ctx, input.Items)
	if err != nil {
		return nil, err
	}

	if err := s.decrementStock(ctx, input.Items); err != nil {
		return nil, err
	}

	sale := &entity.Sale{
		UserID:          input.UserID,
		PaymentMethodID: input.PaymentMethodID,
		Items:           items,
	}
	sale.TotalCents = sumItems(items)

	if err := s.saleRepo.Create(ctx, sale); err != nil {
		// Stock was already taken; give it back before failing.
		_ = s.restoreStock(ctx, input.Items)
		return nil, err
	}

	return s.saleRepo.GetWithDetails(ctx, sale.ID)
}

// GetSale retrieves a sale with full details
func (s *SaleService) GetSale(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}

// ListSales returns sales matching the filter, newest first
func (s *SaleService) ListSales(ctx context.Context, params *repository.SaleFilterParams) ([]entity.Sale, error) {
	if params.Start != nil && params.End != nil && params.End.Before(*params.Start) {
		return nil, apperror.NewBadRequestError("End date is before start date")
	}
	return s.saleRepo.List(ctx, params)
}

// ListSalesPage returns one page of sales matching the filter along with the
// total count
func (s *SaleService) ListSalesPage(ctx context.Context, params *repository.SaleFilterParams, pg *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Sale], error) {
	if params.Start != nil && params.End != nil && params.End.Before(*params.Start) {
		return nil, apperror.NewBadRequestError("End date is before start date")
	}

	pg.Validate()
	params.Limit = pg.PerPage
	params.Offset = pg.Offset()

	total, err := s.saleRepo.Count(ctx, params)
	if err != nil {
		return nil, err
	}
	sales, err := s.saleRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	return pagination.NewPaginatedResult(sales, pagination.NewPagination(pg.Page, pg.PerPage, total)), nil
}

// UpdateSaleInput represents the sale edit input. Items replace the previous
// item list wholesale.
type UpdateSaleInput struct {
	ID              uuid.UUID
	PaymentMethodID uuid.UUID
	Items           []SaleItemInput
}

// UpdateSale replaces a sale's payment method and items, adjusting stock for
// the difference between the old and new item lists
func (s *SaleService) UpdateSale(ctx context.Context, input *UpdateSaleInput) (*entity.Sale, error) {
	sale, err := s.GetSale(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("A sale requires at least one item")
	}

	method, err := s.paymentRepo.GetByID(ctx, input.PaymentMethodID)
	if err != nil {
		return nil, err
	}
	if method == nil {
		return nil, apperror.NewNotFoundError("Payment method")
	}

	items, err := s.buildItems(ctx, input.Items)
	if err != nil {
		return nil, err
	}

	// Return the old quantities first so an edit that keeps a product does
	// not fail on stock the sale itself is holding.
	oldQuantities := quantitiesOf(sale.Items)
	if err := s.productRepo.AtomicIncrementBatch(ctx, oldQuantities); err != nil {
		return nil, err
	}
	if err := s.decrementStock(ctx, input.Items); err != nil {
		// Take the old quantities back so the edit failure leaves stock as
		// it was.
		_, _ = s.productRepo.AtomicDecrementBatch(ctx, oldQuantities)
		return nil, err
	}

	sale.PaymentMethodID = input.PaymentMethodID
	sale.Items = items
	sale.TotalCents = sumItems(items)

	if err := s.saleRepo.ReplaceContents(ctx, sale); err != nil {
		// The database still holds the old items, so shift stock back from
		// the new quantities to the old ones.
		_ = s.restoreStock(ctx, input.Items)
		_, _ = s.productRepo.AtomicDecrementBatch(ctx, oldQuantities)
		return nil, err
	}

	return s.saleRepo.GetWithDetails(ctx, sale.ID)
}

// DeleteSale removes a sale and restores stock for its items
func (s *SaleService) DeleteSale(ctx context.Context, id uuid.UUID) error {
	sale, err := s.GetSale(ctx, id)
	if err != nil {
		return err
	}

	if err := s.saleRepo.Delete(ctx, id); err != nil {
		return err
	}

	return s.productRepo.AtomicIncrementBatch(ctx, quantitiesOf(sale.Items))
}

// buildItems resolves products and add-ons and snapshots their prices into
// sale item rows
func (s *SaleService) buildItems(ctx context.Context, inputs []SaleItemInput) ([]entity.SaleItem, error) {
	productIDs := make([]uuid.UUID, 0, len(inputs))
	for _, in := range inputs {
		if in.Quantity < 1 {
			return nil, apperror.NewBadRequestError("Item quantity must be at least 1")
		}
		productIDs = append(productIDs, in.ProductID)
	}

	products, err := s.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}
	productMap := make(map[uuid.UUID]*entity.Product, len(products))
	for i := range products {
		productMap[products[i].ID] = &products[i]
	}

	additionalIDs := make([]uuid.UUID, 0)
	for _, in := range inputs {
		for _, a := range in.Additionals {
			additionalIDs = append(additionalIDs, a.AdditionalID)
		}
	}
	additionalMap := make(map[uuid.UUID]*entity.Additional)
	if len(additionalIDs) > 0 {
		additionals, err := s.additionalRepo.GetByIDs(ctx, additionalIDs)
		if err != nil {
			return nil, err
		}
		for i := range additionals {
			additionalMap[additionals[i].ID] = &additionals[i]
		}
	}

	items := make([]entity.SaleItem, 0, len(inputs))
	for _, in := range inputs {
		product, ok := productMap[in.ProductID]
		if !ok {
			return nil, apperror.NewNotFoundError("Product")
		}
		if product.Suspended {
			return nil, apperror.NewBadRequestError(fmt.Sprintf("Product %q is suspended", product.Name))
		}

		var unitPriceCents int64
		if product.VariablePrice {
			if in.UnitPrice == nil {
				return nil, apperror.NewBadRequestError(fmt.Sprintf("Product %q requires a unit price", product.Name))
			}
			if *in.UnitPrice < 0 {
				return nil, apperror.NewBadRequestError("Unit price cannot be negative")
			}
			unitPriceCents = int64(*in.UnitPrice*100 + 0.5)
		} else {
			if product.PriceCents == nil {
				return nil, apperror.NewBadRequestError(fmt.Sprintf("Product %q has no price", product.Name))
			}
			unitPriceCents = *product.PriceCents
		}

		item := entity.SaleItem{
			ProductID:      product.ID,
			Quantity:       in.Quantity,
			UnitPriceCents: unitPriceCents,
			IsDelivery:     in.IsDelivery,
		}

		for _, addIn := range in.Additionals {
			additional, ok := additionalMap[addIn.AdditionalID]
			if !ok {
				return nil, apperror.NewNotFoundError("Additional")
			}
			qty := addIn.Quantity
			if qty < 1 {
				qty = 1
			}
			item.Additionals = append(item.Additionals, entity.SaleItemAdditional{
				AdditionalID:   additional.ID,
				Quantity:       qty,
				UnitPriceCents: additional.PriceCents,
			})
		}

		items = append(items, item)
	}

	return items, nil
}

func (s *SaleService) decrementStock(ctx context.Context, inputs []SaleItemInput) error {
	decrements := make(map[uuid.UUID]int, len(inputs))
	for _, in := range inputs {
		decrements[in.ProductID] += in.Quantity
	}

	failedIDs, err := s.productRepo.AtomicDecrementBatch(ctx, decrements)
	if err != nil {
		return err
	}
	if len(failedIDs) > 0 {
		return apperror.NewConflictError("Insufficient stock for one or more products")
	}
	return nil
}

func (s *SaleService) restoreStock(ctx context.Context, inputs []SaleItemInput) error {
	increments := make(map[uuid.UUID]int, len(inputs))
	for _, in := range inputs {
		increments[in.ProductID] += in.Quantity
	}
	return s.productRepo.AtomicIncrementBatch(ctx, increments)
}

func quantitiesOf(items []entity.SaleItem) map[uuid.UUID]int {
	quantities := make(map[uuid.UUID]int, len(items))
	for _, item := range items {
		quantities[item.ProductID] += item.Quantity
	}
	return quantities
}

func sumItems(items []entity.SaleItem) int64 {
	var total int64
	for i := range items {
		total += items[i].SubtotalCents()
	}
	return total
}

// DateRange parses inclusive start/end date strings (YYYY-MM-DD) into a
// half-open time window in the given location
func DateRange(start, end string, loc *time.Location) (*time.Time, *time.Time, error) {
	var from, to *time.Time
	if start != "" {
		t, err := time.ParseInLocation("2006-01-02", start, loc)
		if err != nil {
			return nil, nil, apperror.NewBadRequestError("Invalid start date")
		}
		from = &t
	}
	if end != "" {
		t, err := time.ParseInLocation("2006-01-02", end, loc)
		if err != nil {
			return nil, nil, apperror.NewBadRequestError("Invalid end date")
		}
		t = t.AddDate(0, 0, 1)
		to = &t
	}
	return from, to, nil
}
