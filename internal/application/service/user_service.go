package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pdvcaixa/caixa-api/internal/domain/entity"
	"github.com/pdvcaixa/caixa-api/internal/domain/enum"
	"github.com/pdvcaixa/caixa-api/internal/domain/repository"
	"github.com/pdvcaixa/caixa-api/pkg/apperror"
	"github.com/pdvcaixa/caixa-api/pkg/utils"
)

// UserService handles cashier account management
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// CreateCashierInput represents the create cashier input
type CreateCashierInput struct {
	Name     string
	Login    string
	Email    *string
	Password string // optional; empty creates the account with login disabled
}

// CreateCashier creates a new cashier account
func (s *UserService) CreateCashier(ctx context.Context, input *CreateCashierInput) (*entity.User, error) {
	existing, err := s.userRepo.GetByLogin(ctx, input.Login)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Login already in use")
	}

	user := &entity.User{
		Name:  input.Name,
		Login: input.Login,
		Email: input.Email,
		Role:  enum.RoleCashier,
	}
	if input.Password != "" {
		hashedPassword, err := utils.HashPassword(input.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashedPassword
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ListCashiers returns all cashier accounts
func (s *UserService) ListCashiers(ctx context.Context) ([]entity.User, error) {
	return s.userRepo.ListByRole(ctx, enum.RoleCashier)
}

// GetCashier retrieves a cashier by ID
func (s *UserService) GetCashier(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := s.getCashier(ctx, id)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateCashierInput represents the update cashier input
type UpdateCashierInput struct {
	ID    uuid.UUID
	Name  *string
	Login *string
	Email *string
}

// UpdateCashier updates a cashier's profile fields
func (s *UserService) UpdateCashier(ctx context.Context, input *UpdateCashierInput) (*entity.User, error) {
	user, err := s.getCashier(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Login != nil && *input.Login != user.Login {
		existing, err := s.userRepo.GetByLogin(ctx, *input.Login)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != user.ID {
			return nil, apperror.NewConflictError("Login already in use")
		}
		user.Login = *input.Login
	}
	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Email != nil {
		user.Email = input.Email
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteCashier soft-deletes a cashier account; past sales keep referencing it
func (s *UserService) DeleteCashier(ctx context.Context, id uuid.UUID) error {
	if _, err := s.getCashier(ctx, id); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, id)
}

// SetCashierPassword sets or replaces a cashier's password
func (s *UserService) SetCashierPassword(ctx context.Context, id uuid.UUID, password string) error {
	user, err := s.getCashier(ctx, id)
	if err != nil {
		return err
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user.Password = hashedPassword
	return s.userRepo.Update(ctx, user)
}

// ClearCashierPassword disables a cashier's login without deleting the account
func (s *UserService) ClearCashierPassword(ctx context.Context, id uuid.UUID) error {
	user, err := s.getCashier(ctx, id)
	if err != nil {
		return err
	}

	user.Password = ""
	return s.userRepo.Update(ctx, user)
}

func (s *UserService) getCashier(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Role != enum.RoleCashier {
		return nil, apperror.NewNotFoundError("Cashier")
	}
	return user, nil
}
