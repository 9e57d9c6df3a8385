package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StoreSettings holds the single row of general register configuration.
type StoreSettings struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	RecentSalesLimit   int  `gorm:"default:10" json:"recent_sales_limit"`
	RecentSalesEnabled bool `gorm:"default:true" json:"recent_sales_enabled"`
	DarkMode           bool `gorm:"default:false" json:"dark_mode"`
}

// BeforeCreate generates a UUID before creating new settings
func (s *StoreSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the StoreSettings model
func (StoreSettings) TableName() string {
	return "store_settings"
}

// FiscalConfig holds the single row of fiscal/invoice integration data. The
// API tokens are stored verbatim here; masking happens in the service layer
// when the config is read back.
type FiscalConfig struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	CNPJ                string `gorm:"size:20" json:"cnpj"`
	RazaoSocial         string `gorm:"size:255" json:"razao_social"`
	NomeFantasia        string `gorm:"size:255" json:"nome_fantasia"`
	InscricaoEstadual   string `gorm:"size:50" json:"inscricao_estadual"`
	InscricaoMunicipal  string `gorm:"size:50" json:"inscricao_municipal"`
	Logradouro          string `gorm:"size:255" json:"logradouro"`
	Numero              string `gorm:"size:20" json:"numero"`
	Bairro              string `gorm:"size:100" json:"bairro"`
	Municipio           string `gorm:"size:100" json:"municipio"`
	UF                  string `gorm:"size:2" json:"uf"`
	CEP                 string `gorm:"size:10" json:"cep"`
	FiscalAPIToken      string `gorm:"size:255" json:"fiscal_api_token"`
	FiscalEnvironment   string `gorm:"size:20;default:'homologacao'" json:"fiscal_environment"`
	CSCToken            string `gorm:"size:255" json:"csc_token"`
	CSCID               string `gorm:"size:50" json:"csc_id"`
}

// BeforeCreate generates a UUID before creating a new fiscal config
func (f *FiscalConfig) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the FiscalConfig model
func (FiscalConfig) TableName() string {
	return "fiscal_configs"
}
