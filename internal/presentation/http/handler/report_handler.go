package handler

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pdvcaixa/caixa-api/internal/application/service"
	"github.com/pdvcaixa/caixa-api/internal/domain/enum"
	"github.com/pdvcaixa/caixa-api/internal/presentation/http/dto/response"
)

// ReportHandler handles dashboard report HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
	location      *time.Location
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService, location *time.Location) *ReportHandler {
	if location == nil {
		location = time.Local
	}
	return &ReportHandler{reportService: reportService, location: location}
}

// Summary returns the dashboard's today/week/month headline numbers
func (h *ReportHandler) Summary(c *gin.Context) {
	summary, err := h.reportService.Summary(c.Request.Context(), enum.ParseDeliveryType(c.Query("delivery_type")))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Summary retrieved successfully", summary)
}

// RevenueByDay returns daily revenue buckets for the period
func (h *ReportHandler) RevenueByDay(c *gin.Context) {
	start, end, err := service.DateRange(c.Query("start"), c.Query("end"), h.location)
	if err != nil {
		response.Error(c, err)
		return
	}

	days, err := h.reportService.RevenueByDay(c.Request.Context(), start, end)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Revenue by day retrieved successfully", days)
}

// Series returns the dashboard chart series
// @Summary Sales series
// @Description Aggregate sales into chart series split by payment method, product and category filters
// @Tags reports
// @Produce json
// @Param start query string false "Start date (YYYY-MM-DD)"
// @Param end query string false "End date (YYYY-MM-DD)"
// @Param payment_method_ids query string false "Comma-separated payment method IDs"
// @Param product_ids query string false "Comma-separated product IDs"
// @Param category_ids query string false "Comma-separated category IDs"
// @Param delivery_type query string false "todos, delivery or presencial"
// @Success 200 {object} response.APIResponse
// @Router /reports/series [get]
func (h *ReportHandler) Series(c *gin.Context) {
	start, end, err := service.DateRange(c.Query("start"), c.Query("end"), h.location)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.reportService.Series(c.Request.Context(), &service.SeriesInput{
		Start:            start,
		End:              end,
		PaymentMethodIDs: splitIDs(c.QueryArray("payment_method_ids")),
		ProductIDs:       splitIDs(c.QueryArray("product_ids")),
		CategoryIDs:      splitIDs(c.QueryArray("category_ids")),
		DeliveryType:     enum.ParseDeliveryType(c.Query("delivery_type")),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Series retrieved successfully", result)
}

// ExportSales streams the period's sales as an xlsx workbook
func (h *ReportHandler) ExportSales(c *gin.Context) {
	start, end, err := service.DateRange(c.Query("start"), c.Query("end"), h.location)
	if err != nil {
		response.Error(c, err)
		return
	}

	f, err := h.reportService.ExportSales(c.Request.Context(), start, end, enum.ParseDeliveryType(c.Query("delivery_type")))
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := fmt.Sprintf("vendas_%s.xlsx", time.Now().In(h.location).Format("20060102_150405"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))

	if err := f.Write(c.Writer); err != nil {
		response.InternalServerError(c, "Failed to write export file")
		return
	}
}

// splitIDs flattens repeated and comma-separated query values into one list
func splitIDs(values []string) []string {
	ids := make([]string, 0, len(values))
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				ids = append(ids, part)
			}
		}
	}
	return ids
}
