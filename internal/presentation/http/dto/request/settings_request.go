package request

// UpdateSettingsRequest represents a store settings update request
type UpdateSettingsRequest struct {
	RecentSalesLimit   *int  `json:"recent_sales_limit" binding:"omitempty,gte=1,lte=100"`
	RecentSalesEnabled *bool `json:"recent_sales_enabled"`
	DarkMode           *bool `json:"dark_mode"`
}

// UpdateFiscalConfigRequest represents a fiscal config update request
type UpdateFiscalConfigRequest struct {
	CNPJ               *string `json:"cnpj" binding:"omitempty,max=20"`
	RazaoSocial        *string `json:"razao_social" binding:"omitempty,max=255"`
	NomeFantasia       *string `json:"nome_fantasia" binding:"omitempty,max=255"`
	InscricaoEstadual  *string `json:"inscricao_estadual" binding:"omitempty,max=50"`
	InscricaoMunicipal *string `json:"inscricao_municipal" binding:"omitempty,max=50"`
	Logradouro         *string `json:"logradouro" binding:"omitempty,max=255"`
	Numero             *string `json:"numero" binding:"omitempty,max=20"`
	Bairro             *string `json:"bairro" binding:"omitempty,max=100"`
	Municipio          *string `json:"municipio" binding:"omitempty,max=100"`
	UF                 *string `json:"uf" binding:"omitempty,len=2"`
	CEP                *string `json:"cep" binding:"omitempty,max=10"`
	FiscalAPIToken     *string `json:"fiscal_api_token"`
	FiscalEnvironment  *string `json:"fiscal_environment" binding:"omitempty,oneof=homologacao producao"`
	CSCToken           *string `json:"csc_token"`
	CSCID              *string `json:"csc_id" binding:"omitempty,max=50"`
}

// PaymentMethodRequest represents a payment method create/rename request
type PaymentMethodRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}
