package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pdvcaixa/caixa-api/internal/domain/entity"
	"github.com/pdvcaixa/caixa-api/internal/domain/repository"
	"github.com/pdvcaixa/caixa-api/pkg/apperror"
)

// PaymentMethodService handles payment method operations
type PaymentMethodService struct {
	paymentRepo repository.PaymentMethodRepository
}

// NewPaymentMethodService creates a new payment method service
func NewPaymentMethodService(paymentRepo repository.PaymentMethodRepository) *PaymentMethodService {
	return &PaymentMethodService{paymentRepo: paymentRepo}
}

// CreatePaymentMethod creates a new payment method
func (s *PaymentMethodService) CreatePaymentMethod(ctx context.Context, name string) (*entity.PaymentMethod, error) {
	existing, err := s.paymentRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Payment method already exists")
	}

	method := &entity.PaymentMethod{Name: name}
	if err := s.paymentRepo.Create(ctx, method); err != nil {
		return nil, err
	}
	return method, nil
}

// GetPaymentMethod retrieves a payment method by ID
func (s *PaymentMethodService) GetPaymentMethod(ctx context.Context, id uuid.UUID) (*entity.PaymentMethod, error) {
	method, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if method == nil {
		return nil, apperror.NewNotFoundError("Payment method")
	}
	return method, nil
}

// ListPaymentMethods returns all payment methods
func (s *PaymentMethodService) ListPaymentMethods(ctx context.Context) ([]entity.PaymentMethod, error) {
	return s.paymentRepo.List(ctx)
}

// UpdatePaymentMethod renames a payment method
func (s *PaymentMethodService) UpdatePaymentMethod(ctx context.Context, id uuid.UUID, name string) (*entity.PaymentMethod, error) {
	method, err := s.GetPaymentMethod(ctx, id)
	if err != nil {
		return nil, err
	}

	if name != method.Name {
		existing, err := s.paymentRepo.GetByName(ctx, name)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != method.ID {
			return nil, apperror.NewConflictError("Payment method already exists")
		}
		method.Name = name
	}

	if err := s.paymentRepo.Update(ctx, method); err != nil {
		return nil, err
	}
	return method, nil
}

// DeletePaymentMethod removes a payment method. The last one cannot be
// deleted: a register with no payment methods cannot sell anything.
func (s *PaymentMethodService) DeletePaymentMethod(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetPaymentMethod(ctx, id); err != nil {
		return err
	}

	count, err := s.paymentRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count <= 1 {
		return apperror.NewBadRequestError("Cannot delete the last payment method")
	}

	return s.paymentRepo.Delete(ctx, id)
}
