package repository

import (
	"context"

	"github.com/pdvcaixa/caixa-api/internal/domain/entity"
)

// SettingsRepository defines the interface for the single-row store settings
type SettingsRepository interface {
	Get(ctx context.Context) (*entity.StoreSettings, error)
	Save(ctx context.Context, settings *entity.StoreSettings) error
}

// FiscalConfigRepository defines the interface for the single-row fiscal config
type FiscalConfigRepository interface {
	Get(ctx context.Context) (*entity.FiscalConfig, error)
	Save(ctx context.Context, config *entity.FiscalConfig) error
}
