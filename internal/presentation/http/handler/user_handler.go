package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/pdvcaixa/caixa-api/internal/application/service"
	"github.com/pdvcaixa/caixa-api/internal/presentation/http/dto/request"
	"github.com/pdvcaixa/caixa-api/internal/presentation/http/dto/response"
)

// UserHandler handles cashier management HTTP requests
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// CreateCashier creates a new cashier account
func (h *UserHandler) CreateCashier(c *gin.Context) {
	var req request.CreateCashierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.userService.CreateCashier(c.Request.Context(), &service.CreateCashierInput{
		Name:     req.Name,
		Login:    req.Login,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Cashier created successfully", user)
}

// ListCashiers lists all cashier accounts
func (h *UserHandler) ListCashiers(c *gin.Context) {
	cashiers, err := h.userService.ListCashiers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cashiers retrieved successfully", cashiers)
}

// GetCashier retrieves one cashier
func (h *UserHandler) GetCashier(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid cashier ID")
		return
	}

	cashier, err := h.userService.GetCashier(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cashier retrieved successfully", cashier)
}

// UpdateCashier updates a cashier's profile
func (h *UserHandler) UpdateCashier(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid cashier ID")
		return
	}

	var req request.UpdateCashierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.userService.UpdateCashier(c.Request.Context(), &service.UpdateCashierInput{
		ID:    id,
		Name:  req.Name,
		Login: req.Login,
		Email: req.Email,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cashier updated successfully", user)
}

// DeleteCashier removes a cashier account
func (h *UserHandler) DeleteCashier(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid cashier ID")
		return
	}

	if err := h.userService.DeleteCashier(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// SetCashierPassword sets or replaces a cashier's password
func (h *UserHandler) SetCashierPassword(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid cashier ID")
		return
	}

	var req request.SetCashierPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.userService.SetCashierPassword(c.Request.Context(), id, req.Password); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Password set successfully", nil)
}

// ClearCashierPassword disables a cashier's login
func (h *UserHandler) ClearCashierPassword(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid cashier ID")
		return
	}

	if err := h.userService.ClearCashierPassword(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Password cleared, login disabled", nil)
}
