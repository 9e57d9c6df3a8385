package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/pdvcaixa/caixa-api/internal/domain/entity"
	domainRepo "github.com/pdvcaixa/caixa-api/internal/domain/repository"
	"gorm.io/gorm"
)

type additionalRepository struct {
	db *gorm.DB
}

// NewAdditionalRepository creates a new additional repository
func NewAdditionalRepository(db *gorm.DB) domainRepo.AdditionalRepository {
	return &additionalRepository{db: db}
}

func (r *additionalRepository) Create(ctx context.Context, additional *entity.Additional) error {
	return r.db.WithContext(ctx).Create(additional).Error
}

func (r *additionalRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Additional, error) {
	var additional entity.Additional
	err := r.db.WithContext(ctx).
		Preload("Category").
		First(&additional, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &additional, err
}

func (r *additionalRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Additional, error) {
	if len(ids) == 0 {
		return []entity.Additional{}, nil
	}
	var additionals []entity.Additional
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&additionals).Error
	return additionals, err
}

func (r *additionalRepository) Update(ctx context.Context, additional *entity.Additional) error {
	return r.db.WithContext(ctx).Save(additional).Error
}

func (r *additionalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Additional{}, "id = ?", id).Error
}

func (r *additionalRepository) List(ctx context.Context) ([]entity.Additional, error) {
	var additionals []entity.Additional
	err := r.db.WithContext(ctx).
		Preload("Category").
		Order("name ASC").
		Find(&additionals).Error
	return additionals, err
}

func (r *additionalRepository) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]entity.Additional, error) {
	var additionals []entity.Additional
	err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("name ASC").
		Find(&additionals).Error
	return additionals, err
}

type additionalCategoryRepository struct {
	db *gorm.DB
}

// NewAdditionalCategoryRepository creates a new additional category repository
func NewAdditionalCategoryRepository(db *gorm.DB) domainRepo.AdditionalCategoryRepository {
	return &additionalCategoryRepository{db: db}
}

func (r *additionalCategoryRepository) Create(ctx context.Context, category *entity.AdditionalCategory) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *additionalCategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.AdditionalCategory, error) {
	var category entity.AdditionalCategory
	err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &category, err
}

func (r *additionalCategoryRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.AdditionalCategory, error) {
	if len(ids) == 0 {
		return []entity.AdditionalCategory{}, nil
	}
	var categories []entity.AdditionalCategory
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&categories).Error
	return categories, err
}

func (r *additionalCategoryRepository) Update(ctx context.Context, category *entity.AdditionalCategory) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *additionalCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		category := entity.AdditionalCategory{ID: id}
		if err := tx.Model(&category).Association("Products").Clear(); err != nil {
			return err
		}
		return tx.Delete(&entity.AdditionalCategory{}, "id = ?", id).Error
	})
}

func (r *additionalCategoryRepository) List(ctx context.Context) ([]entity.AdditionalCategory, error) {
	var categories []entity.AdditionalCategory
	err := r.db.WithContext(ctx).
		Preload("Additionals").
		Order("name ASC").
		Find(&categories).Error
	return categories, err
}
