package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pdvcaixa/caixa-api/internal/application/service"
	"github.com/pdvcaixa/caixa-api/internal/domain/repository"
	"github.com/pdvcaixa/caixa-api/internal/presentation/http/dto/request"
	"github.com/pdvcaixa/caixa-api/internal/presentation/http/dto/response"
	"github.com/pdvcaixa/caixa-api/pkg/pagination"
)

// SaleHandler handles checkout and sale history HTTP requests
type SaleHandler struct {
	saleService *service.SaleService
	location    *time.Location
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(saleService *service.SaleService, location *time.Location) *SaleHandler {
	if location == nil {
		location = time.Local
	}
	return &SaleHandler{saleService: saleService, location: location}
}

// CreateSale registers a checkout
// @Summary Create sale
// @Description Register a checkout with items and optional add-ons
// @Tags sales
// @Accept json
// @Produce json
// @Param request body request.CreateSaleRequest true "Sale data"
// @Success 201 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Failure 409 {object} response.APIResponse
// @Router /sales [post]
func (h *SaleHandler) CreateSale(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	var req request.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	sale, err := h.saleService.CreateSale(c.Request.Context(), &service.CreateSaleInput{
		UserID:          *userID,
		PaymentMethodID: req.PaymentMethodID,
		Items:           toItemInputs(req.Items),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Sale registered successfully", sale)
}

// ListSales lists sales filtered by ?start=, ?end=, ?user_id=,
// ?payment_method_id= and ?limit=
func (h *SaleHandler) ListSales(c *gin.Context) {
	start, end, err := service.DateRange(c.Query("start"), c.Query("end"), h.location)
	if err != nil {
		response.Error(c, err)
		return
	}

	params := &repository.SaleFilterParams{Start: start, End: end}

	if raw := c.Query("user_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(c, "Invalid user ID")
			return
		}
		params.UserID = &id
	}
	if raw := c.Query("payment_method_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(c, "Invalid payment method ID")
			return
		}
		params.PaymentMethodID = &id
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			response.BadRequest(c, "Invalid limit")
			return
		}
		params.Limit = limit
	}

	// ?page= switches to the paginated history view
	if c.Query("page") != "" {
		var pg pagination.PaginationParams
		if err := c.ShouldBindQuery(&pg); err != nil {
			response.BadRequest(c, "Invalid pagination parameters")
			return
		}
		result, err := h.saleService.ListSalesPage(c.Request.Context(), params, &pg)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.SuccessWithPagination(c, http.StatusOK, "Sales retrieved successfully", result)
		return
	}

	sales, err := h.saleService.ListSales(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sales retrieved successfully", sales)
}

// GetSale retrieves one sale with full details
func (h *SaleHandler) GetSale(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	sale, err := h.saleService.GetSale(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale retrieved successfully", sale)
}

// UpdateSale replaces a sale's payment method and items
func (h *SaleHandler) UpdateSale(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	var req request.UpdateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	sale, err := h.saleService.UpdateSale(c.Request.Context(), &service.UpdateSaleInput{
		ID:              id,
		PaymentMethodID: req.PaymentMethodID,
		Items:           toItemInputs(req.Items),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale updated successfully", sale)
}

// DeleteSale removes a sale and restores its stock
func (h *SaleHandler) DeleteSale(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	if err := h.saleService.DeleteSale(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

func toItemInputs(items []request.SaleItemRequest) []service.SaleItemInput {
	inputs := make([]service.SaleItemInput, 0, len(items))
	for _, item := range items {
		additionals := make([]service.SaleAdditionalInput, 0, len(item.Additionals))
		for _, a := range item.Additionals {
			additionals = append(additionals, service.SaleAdditionalInput{
				AdditionalID: a.AdditionalID,
				Quantity:     a.Quantity,
			})
		}
		inputs = append(inputs, service.SaleItemInput{
			ProductID:   item.ProductID,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			IsDelivery:  item.IsDelivery,
			Additionals: additionals,
		})
	}
	return inputs
}
