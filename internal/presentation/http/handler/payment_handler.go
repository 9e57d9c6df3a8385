package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/pdvcaixa/caixa-api/internal/application/service"
	"github.com/pdvcaixa/caixa-api/internal/presentation/http/dto/request"
	"github.com/pdvcaixa/caixa-api/internal/presentation/http/dto/response"
)

// PaymentMethodHandler handles payment method HTTP requests
type PaymentMethodHandler struct {
	paymentService *service.PaymentMethodService
}

// NewPaymentMethodHandler creates a new payment method handler
func NewPaymentMethodHandler(paymentService *service.PaymentMethodService) *PaymentMethodHandler {
	return &PaymentMethodHandler{paymentService: paymentService}
}

// CreatePaymentMethod creates a new payment method
func (h *PaymentMethodHandler) CreatePaymentMethod(c *gin.Context) {
	var req request.PaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	method, err := h.paymentService.CreatePaymentMethod(c.Request.Context(), req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Payment method created successfully", method)
}

// ListPaymentMethods lists all payment methods
func (h *PaymentMethodHandler) ListPaymentMethods(c *gin.Context) {
	methods, err := h.paymentService.ListPaymentMethods(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment methods retrieved successfully", methods)
}

// UpdatePaymentMethod renames a payment method
func (h *PaymentMethodHandler) UpdatePaymentMethod(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid payment method ID")
		return
	}

	var req request.PaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	method, err := h.paymentService.UpdatePaymentMethod(c.Request.Context(), id, req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment method updated successfully", method)
}

// DeletePaymentMethod removes a payment method
func (h *PaymentMethodHandler) DeletePaymentMethod(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid payment method ID")
		return
	}

	if err := h.paymentService.DeletePaymentMethod(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
