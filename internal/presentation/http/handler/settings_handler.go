package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/pdvcaixa/caixa-api/internal/application/service"
	"github.com/pdvcaixa/caixa-api/internal/presentation/http/dto/request"
	"github.com/pdvcaixa/caixa-api/internal/presentation/http/dto/response"
)

// SettingsHandler handles store settings and fiscal config HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetSettings returns the store settings
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings retrieved successfully", settings)
}

// UpdateSettings updates the store settings
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req request.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), &service.UpdateSettingsInput{
		RecentSalesLimit:   req.RecentSalesLimit,
		RecentSalesEnabled: req.RecentSalesEnabled,
		DarkMode:           req.DarkMode,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings updated successfully", settings)
}

// GetFiscalConfig returns the fiscal config with tokens masked
func (h *SettingsHandler) GetFiscalConfig(c *gin.Context) {
	config, err := h.settingsService.GetFiscalConfig(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Fiscal config retrieved successfully", config)
}

// UpdateFiscalConfig updates the fiscal config
func (h *SettingsHandler) UpdateFiscalConfig(c *gin.Context) {
	var req request.UpdateFiscalConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	config, err := h.settingsService.UpdateFiscalConfig(c.Request.Context(), &service.UpdateFiscalConfigInput{
		CNPJ:               req.CNPJ,
		RazaoSocial:        req.RazaoSocial,
		NomeFantasia:       req.NomeFantasia,
		InscricaoEstadual:  req.InscricaoEstadual,
		InscricaoMunicipal: req.InscricaoMunicipal,
		Logradouro:         req.Logradouro,
		Numero:             req.Numero,
		Bairro:             req.Bairro,
		Municipio:          req.Municipio,
		UF:                 req.UF,
		CEP:                req.CEP,
		FiscalAPIToken:     req.FiscalAPIToken,
		FiscalEnvironment:  req.FiscalEnvironment,
		CSCToken:           req.CSCToken,
		CSCID:              req.CSCID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Fiscal config updated successfully", config)
}
