package repository

import (
	"context"
	"errors"

	"github.com/pdvcaixa/caixa-api/internal/domain/entity"
	domainRepo "github.com/pdvcaixa/caixa-api/internal/domain/repository"
	"gorm.io/gorm"
)

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *gorm.DB) domainRepo.SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) Get(ctx context.Context) (*entity.StoreSettings, error) {
	var settings entity.StoreSettings
	err := r.db.WithContext(ctx).Order("created_at ASC").First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &settings, err
}

func (r *settingsRepository) Save(ctx context.Context, settings *entity.StoreSettings) error {
	return r.db.WithContext(ctx).Save(settings).Error
}

type fiscalConfigRepository struct {
	db *gorm.DB
}

// NewFiscalConfigRepository creates a new fiscal config repository
func NewFiscalConfigRepository(db *gorm.DB) domainRepo.FiscalConfigRepository {
	return &fiscalConfigRepository{db: db}
}

func (r *fiscalConfigRepository) Get(ctx context.Context) (*entity.FiscalConfig, error) {
	var config entity.FiscalConfig
	err := r.db.WithContext(ctx).Order("created_at ASC").First(&config).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &config, err
}

func (r *fiscalConfigRepository) Save(ctx context.Context, config *entity.FiscalConfig) error {
	return r.db.WithContext(ctx).Save(config).Error
}
