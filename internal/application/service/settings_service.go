package service

import (
	"context"
	"strings"

	"github.com/pdvcaixa/caixa-api/internal/domain/entity"
	"github.com/pdvcaixa/caixa-api/internal/domain/repository"
	"github.com/pdvcaixa/caixa-api/pkg/apperror"
)

// SettingsService handles the single-row store settings and fiscal config
type SettingsService struct {
	settingsRepo repository.SettingsRepository
	fiscalRepo   repository.FiscalConfigRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(
	settingsRepo repository.SettingsRepository,
	fiscalRepo repository.FiscalConfigRepository,
) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
		fiscalRepo:   fiscalRepo,
	}
}

// GetSettings returns the store settings, creating the defaults row on first
// access
func (s *SettingsService) GetSettings(ctx context.Context) (*entity.StoreSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = &entity.StoreSettings{
			RecentSalesLimit:   10,
			RecentSalesEnabled: true,
		}
		if err := s.settingsRepo.Save(ctx, settings); err != nil {
			return nil, err
		}
	}
	return settings, nil
}

// UpdateSettingsInput represents the update settings input
type UpdateSettingsInput struct {
	RecentSalesLimit   *int
	RecentSalesEnabled *bool
	DarkMode           *bool
}

// UpdateSettings updates the store settings
func (s *SettingsService) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*entity.StoreSettings, error) {
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	if input.RecentSalesLimit != nil {
		if *input.RecentSalesLimit < 1 || *input.RecentSalesLimit > 100 {
			return nil, apperror.NewBadRequestError("Recent sales limit must be between 1 and 100")
		}
		settings.RecentSalesLimit = *input.RecentSalesLimit
	}
	if input.RecentSalesEnabled != nil {
		settings.RecentSalesEnabled = *input.RecentSalesEnabled
	}
	if input.DarkMode != nil {
		settings.DarkMode = *input.DarkMode
	}

	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// GetFiscalConfig returns the fiscal config with API tokens masked
func (s *SettingsService) GetFiscalConfig(ctx context.Context) (*entity.FiscalConfig, error) {
	config, err := s.fiscalRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if config == nil {
		config = &entity.FiscalConfig{FiscalEnvironment: "homologacao"}
		if err := s.fiscalRepo.Save(ctx, config); err != nil {
			return nil, err
		}
	}

	masked := *config
	masked.FiscalAPIToken = MaskToken(config.FiscalAPIToken)
	masked.CSCToken = MaskToken(config.CSCToken)
	return &masked, nil
}

// UpdateFiscalConfigInput represents the update fiscal config input
type UpdateFiscalConfigInput struct {
	CNPJ               *string
	RazaoSocial        *string
	NomeFantasia       *string
	InscricaoEstadual  *string
	InscricaoMunicipal *string
	Logradouro         *string
	Numero             *string
	Bairro             *string
	Municipio          *string
	UF                 *string
	CEP                *string
	FiscalAPIToken     *string
	FiscalEnvironment  *string
	CSCToken           *string
	CSCID              *string
}

// UpdateFiscalConfig updates the fiscal config. A token value that still
// carries the read-side mask means "keep the stored secret".
func (s *SettingsService) UpdateFiscalConfig(ctx context.Context, input *UpdateFiscalConfigInput) (*entity.FiscalConfig, error) {
	config, err := s.fiscalRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if config == nil {
		config = &entity.FiscalConfig{FiscalEnvironment: "homologacao"}
	}

	setIf := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	setIf(&config.CNPJ, input.CNPJ)
	setIf(&config.RazaoSocial, input.RazaoSocial)
	setIf(&config.NomeFantasia, input.NomeFantasia)
	setIf(&config.InscricaoEstadual, input.InscricaoEstadual)
	setIf(&config.InscricaoMunicipal, input.InscricaoMunicipal)
	setIf(&config.Logradouro, input.Logradouro)
	setIf(&config.Numero, input.Numero)
	setIf(&config.Bairro, input.Bairro)
	setIf(&config.Municipio, input.Municipio)
	setIf(&config.CEP, input.CEP)

	if input.UF != nil {
		config.UF = strings.ToUpper(*input.UF)
	}
	if input.FiscalEnvironment != nil {
		env := *input.FiscalEnvironment
		if env != "homologacao" && env != "producao" {
			return nil, apperror.NewBadRequestError("Fiscal environment must be homologacao or producao")
		}
		config.FiscalEnvironment = env
	}
	if input.FiscalAPIToken != nil && !IsMaskedToken(*input.FiscalAPIToken) {
		config.FiscalAPIToken = *input.FiscalAPIToken
	}
	if input.CSCToken != nil && !IsMaskedToken(*input.CSCToken) {
		config.CSCToken = *input.CSCToken
	}
	setIf(&config.CSCID, input.CSCID)

	if err := s.fiscalRepo.Save(ctx, config); err != nil {
		return nil, err
	}

	masked := *config
	masked.FiscalAPIToken = MaskToken(config.FiscalAPIToken)
	masked.CSCToken = MaskToken(config.CSCToken)
	return &masked, nil
}

// MaskToken hides a secret, keeping only its last 4 characters. Short tokens
// are masked entirely.
func MaskToken(token string) string {
	if token == "" {
		return ""
	}
	if len(token) <= 4 {
		return "****"
	}
	return "****" + token[len(token)-4:]
}

// IsMaskedToken reports whether a value is a mask produced by MaskToken
// being echoed back by the client.
func IsMaskedToken(token string) bool {
	return strings.HasPrefix(token, "****")
}
