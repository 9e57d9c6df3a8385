package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/pdvcaixa/caixa-api/internal/application/series"
	"github.com/pdvcaixa/caixa-api/internal/domain/entity"
	"github.com/pdvcaixa/caixa-api/internal/domain/enum"
	"github.com/pdvcaixa/caixa-api/internal/domain/repository"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// ReportService produces dashboard aggregates over the sales history
type ReportService struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
	paymentRepo repository.PaymentMethodRepository
	catRepo     repository.CategoryRepository
	location    *time.Location
	now         func() time.Time
}

// NewReportService creates a new report service. The location decides which
// calendar day a sale belongs to.
func NewReportService(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	paymentRepo repository.PaymentMethodRepository,
	catRepo repository.CategoryRepository,
	location *time.Location,
) *ReportService {
	if location == nil {
		location = time.Local
	}
	return &ReportService{
		saleRepo:    saleRepo,
		productRepo: productRepo,
		paymentRepo: paymentRepo,
		catRepo:     catRepo,
		location:    location,
		now:         time.Now,
	}
}

// PeriodSummary is one headline card on the dashboard
type PeriodSummary struct {
	Total         float64 `json:"total"`
	Count         int     `json:"count"`
	AverageTicket float64 `json:"average_ticket"`
}

// SummaryOutput groups the dashboard's headline numbers by period
type SummaryOutput struct {
	Today PeriodSummary `json:"today"`
	Week  PeriodSummary `json:"week"`
	Month PeriodSummary `json:"month"`
}

// Summary computes revenue and sale counts for today, the current week and
// the current month. With a delivery filter the revenue is recomputed from
// the matching items only; otherwise the stored sale totals are used.
func (s *ReportService) Summary(ctx context.Context, delivery enum.DeliveryType) (*SummaryOutput, error) {
	now := s.now().In(s.location)
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.location)
	// Weeks start on Sunday, matching the dashboard's headline cards.
	weekStart := todayStart.AddDate(0, 0, -int(todayStart.Weekday()))
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, s.location)

	start := monthStart
	if weekStart.Before(start) {
		start = weekStart
	}

	sales, err := s.saleRepo.List(ctx, &repository.SaleFilterParams{Start: &start})
	if err != nil {
		return nil, err
	}

	var today, week, month periodBucket
	for i := range sales {
		sale := &sales[i]
		cents, matched := saleRevenueCents(sale, delivery)
		if !matched {
			continue
		}
		at := sale.CreatedAt.In(s.location)
		if !at.Before(todayStart) {
			today.add(cents)
		}
		if !at.Before(weekStart) {
			week.add(cents)
		}
		if !at.Before(monthStart) {
			month.add(cents)
		}
	}

	return &SummaryOutput{
		Today: today.summary(),
		Week:  week.summary(),
		Month: month.summary(),
	}, nil
}

type periodBucket struct {
	cents int64
	count int
}

func (b *periodBucket) add(cents int64) {
	b.cents += cents
	b.count++
}

func (b *periodBucket) summary() PeriodSummary {
	out := PeriodSummary{Total: centsToDecimal(b.cents), Count: b.count}
	if b.count > 0 {
		avg := decimal.NewFromInt(b.cents).Div(decimal.NewFromInt(int64(b.count))).Div(decimal.NewFromInt(100))
		out.AverageTicket, _ = avg.Round(2).Float64()
	}
	return out
}

// saleRevenueCents computes a sale's revenue under the delivery filter. A
// sale with no matching items is invisible to the summary.
func saleRevenueCents(sale *entity.Sale, delivery enum.DeliveryType) (int64, bool) {
	if delivery == "" || delivery == enum.DeliveryAll {
		return sale.TotalCents, true
	}
	var cents int64
	matched := false
	for i := range sale.Items {
		item := &sale.Items[i]
		if !delivery.Matches(item.IsDelivery) {
			continue
		}
		cents += item.SubtotalCents()
		matched = true
	}
	return cents, matched
}

// DayRevenue is one day's revenue in the by-day report
type DayRevenue struct {
	Day     string  `json:"day"`   // YYYY-MM-DD
	Label   string  `json:"label"` // DD/MM
	Revenue float64 `json:"revenue"`
}

// RevenueByDay buckets revenue by local calendar day, ascending
func (s *ReportService) RevenueByDay(ctx context.Context, start, end *time.Time) ([]DayRevenue, error) {
	sales, err := s.saleRepo.List(ctx, &repository.SaleFilterParams{Start: start, End: end})
	if err != nil {
		return nil, err
	}

	byDay := make(map[string]int64)
	for i := range sales {
		key := sales[i].CreatedAt.In(s.location).Format("2006-01-02")
		byDay[key] += sales[i].TotalCents
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)

	out := make([]DayRevenue, 0, len(days))
	for _, day := range days {
		out = append(out, DayRevenue{
			Day:     day,
			Label:   day[8:10] + "/" + day[5:7],
			Revenue: centsToDecimal(byDay[day]),
		})
	}
	return out, nil
}

// SeriesInput represents the dashboard chart request
type SeriesInput struct {
	Start            *time.Time
	End              *time.Time
	PaymentMethodIDs []string
	ProductIDs       []string
	CategoryIDs      []string
	DeliveryType     enum.DeliveryType
}

// Series loads the period's sales, resolves display names and runs the chart
// aggregation
func (s *ReportService) Series(ctx context.Context, input *SeriesInput) (*series.Result, error) {
	sales, err := s.saleRepo.List(ctx, &repository.SaleFilterParams{Start: input.Start, End: input.End})
	if err != nil {
		return nil, err
	}

	lookups, err := s.buildLookups(ctx)
	if err != nil {
		return nil, err
	}

	flat := make([]series.Sale, 0, len(sales))
	for i := range sales {
		sale := &sales[i]
		items := make([]series.Item, 0, len(sale.Items))
		for j := range sale.Items {
			item := &sale.Items[j]
			category := ""
			if item.Product.Category != nil {
				category = *item.Product.Category
			}
			items = append(items, series.Item{
				ProductID:  item.ProductID.String(),
				Quantity:   item.Quantity,
				UnitPrice:  item.UnitPriceDecimal(),
				IsDelivery: item.IsDelivery,
				Category:   category,
			})
		}
		flat = append(flat, series.Sale{
			ID:              sale.ID.String(),
			CreatedAt:       sale.CreatedAt.In(s.location),
			PaymentMethodID: sale.PaymentMethodID.String(),
			Total:           sale.TotalDecimal(),
			Items:           items,
		})
	}

	result := series.Aggregate(flat, series.Filter{
		PaymentMethodIDs: input.PaymentMethodIDs,
		ProductIDs:       input.ProductIDs,
		CategoryIDs:      input.CategoryIDs,
		DeliveryType:     input.DeliveryType,
	}, lookups)
	return &result, nil
}

// ExportSales builds an xlsx workbook with one row per sale item in the
// period; the delivery filter drops non-matching items
func (s *ReportService) ExportSales(ctx context.Context, start, end *time.Time, delivery enum.DeliveryType) (*excelize.File, error) {
	sales, err := s.saleRepo.List(ctx, &repository.SaleFilterParams{Start: start, End: end})
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := "Vendas"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Data", "Operador", "Pagamento", "Produto", "Quantidade", "Preço Unitário", "Entrega", "Subtotal", "Total da Venda"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	row := 2
	var totalCents int64
	for i := range sales {
		sale := &sales[i]
		for j := range sale.Items {
			item := &sale.Items[j]
			if !delivery.Matches(item.IsDelivery) {
				continue
			}
			deliveryLabel := "Presencial"
			if item.IsDelivery {
				deliveryLabel = "Delivery"
			}
			totalCents += item.SubtotalCents()
			values := []interface{}{
				sale.CreatedAt.In(s.location).Format("02/01/2006 15:04"),
				sale.User.Name,
				sale.PaymentMethod.Name,
				item.Product.Name,
				item.Quantity,
				item.UnitPriceDecimal(),
				deliveryLabel,
				centsToDecimal(item.SubtotalCents()),
				sale.TotalDecimal(),
			}
			for k, v := range values {
				cell, _ := excelize.CoordinatesToCellName(k+1, row)
				f.SetCellValue(sheet, cell, v)
			}
			row++
		}
	}

	totalCell, _ := excelize.CoordinatesToCellName(1, row+1)
	f.SetCellValue(sheet, totalCell, fmt.Sprintf("Total: %.2f", centsToDecimal(totalCents)))

	return f, nil
}

func (s *ReportService) buildLookups(ctx context.Context) (series.Lookups, error) {
	lookups := series.Lookups{
		ProductNames:  make(map[string]string),
		PaymentNames:  make(map[string]string),
		CategoryNames: make(map[string]string),
	}

	products, err := s.productRepo.List(ctx)
	if err != nil {
		return lookups, err
	}
	for i := range products {
		lookups.ProductNames[products[i].ID.String()] = products[i].Name
	}

	methods, err := s.paymentRepo.List(ctx)
	if err != nil {
		return lookups, err
	}
	for i := range methods {
		lookups.PaymentNames[methods[i].ID.String()] = methods[i].Name
	}

	categories, err := s.catRepo.List(ctx)
	if err != nil {
		return lookups, err
	}
	for i := range categories {
		lookups.CategoryNames[categories[i].ID.String()] = categories[i].Name
	}

	return lookups, nil
}

func centsToDecimal(cents int64) float64 {
	return float64(cents) / 100
}
