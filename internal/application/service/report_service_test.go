package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pdvcaixa/caixa-api/internal/domain/entity"
	"github.com/pdvcaixa/caixa-api/internal/domain/enum"
)

type fakeCategoryRepo struct {
	categories []entity.Category
}

func (r *fakeCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.categories = append(r.categories, *c)
	return nil
}

func (r *fakeCategoryRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	for i := range r.categories {
		if r.categories[i].ID == id {
			return &r.categories[i], nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) GetByName(_ context.Context, name string) (*entity.Category, error) {
	for i := range r.categories {
		if r.categories[i].Name == name {
			return &r.categories[i], nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, _ *entity.Category) error { return nil }
func (r *fakeCategoryRepo) Delete(_ context.Context, _ uuid.UUID) error        { return nil }

func (r *fakeCategoryRepo) List(_ context.Context) ([]entity.Category, error) {
	return r.categories, nil
}

func newReportFixture(t *testing.T) (*ReportService, *fakeSaleRepo) {
	t.Helper()

	saleRepo := newFakeSaleRepo()
	svc := NewReportService(saleRepo, newFakeProductRepo(), newFakePaymentRepo(), &fakeCategoryRepo{}, time.UTC)
	return svc, saleRepo
}

func seedSale(repo *fakeSaleRepo, createdAt time.Time, items ...entity.SaleItem) *entity.Sale {
	sale := &entity.Sale{
		ID:              uuid.New(),
		UserID:          uuid.New(),
		PaymentMethodID: uuid.New(),
		CreatedAt:       createdAt,
		Items:           items,
	}
	for i := range sale.Items {
		sale.TotalCents += sale.Items[i].SubtotalCents()
	}
	repo.sales[sale.ID] = sale
	return sale
}

func TestSummaryBucketsTodayWeekMonth(t *testing.T) {
	svc, saleRepo := newReportFixture(t)
	// Wednesday, March 5th: the week bucket starts on Sunday the 2nd, the
	// month bucket on the 1st.
	svc.now = func() time.Time { return time.Date(2025, 3, 5, 18, 0, 0, 0, time.UTC) }

	seedSale(saleRepo, time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC),
		entity.SaleItem{ProductID: uuid.New(), Quantity: 1, UnitPriceCents: 2000},
	)
	seedSale(saleRepo, time.Date(2025, 3, 3, 12, 0, 0, 0, time.UTC),
		entity.SaleItem{ProductID: uuid.New(), Quantity: 1, UnitPriceCents: 1000},
	)
	seedSale(saleRepo, time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		entity.SaleItem{ProductID: uuid.New(), Quantity: 1, UnitPriceCents: 500},
	)
	// Previous month, must not appear in any bucket.
	seedSale(saleRepo, time.Date(2025, 2, 20, 12, 0, 0, 0, time.UTC),
		entity.SaleItem{ProductID: uuid.New(), Quantity: 1, UnitPriceCents: 9900},
	)

	out, err := svc.Summary(context.Background(), enum.DeliveryAll)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}

	if out.Today.Total != 20.00 || out.Today.Count != 1 {
		t.Errorf("Today = %+v, want total 20.00 count 1", out.Today)
	}
	if out.Week.Total != 30.00 || out.Week.Count != 2 {
		t.Errorf("Week = %+v, want total 30.00 count 2", out.Week)
	}
	if out.Month.Total != 35.00 || out.Month.Count != 3 {
		t.Errorf("Month = %+v, want total 35.00 count 3", out.Month)
	}
	if out.Week.AverageTicket != 15.00 {
		t.Errorf("Week.AverageTicket = %v, want 15.00", out.Week.AverageTicket)
	}
}

func TestSummaryDeliveryFilterCountsMatchingItemsOnly(t *testing.T) {
	svc, saleRepo := newReportFixture(t)
	svc.now = func() time.Time { return time.Date(2025, 3, 5, 18, 0, 0, 0, time.UTC) }
	day := time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC)

	// Mixed sale: one delivery item, one on-premises item.
	seedSale(saleRepo, day,
		entity.SaleItem{ProductID: uuid.New(), Quantity: 1, UnitPriceCents: 3000, IsDelivery: true},
		entity.SaleItem{ProductID: uuid.New(), Quantity: 2, UnitPriceCents: 500, IsDelivery: false},
	)
	// Purely on-premises sale, must be invisible under the delivery filter.
	seedSale(saleRepo, day,
		entity.SaleItem{ProductID: uuid.New(), Quantity: 1, UnitPriceCents: 9900, IsDelivery: false},
	)

	out, err := svc.Summary(context.Background(), enum.DeliveryDelivery)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}

	if out.Today.Total != 30.00 {
		t.Errorf("Today.Total = %v, want 30.00", out.Today.Total)
	}
	if out.Today.Count != 1 {
		t.Errorf("Today.Count = %d, want 1", out.Today.Count)
	}
	if out.Month.Total != 30.00 || out.Month.Count != 1 {
		t.Errorf("Month = %+v, want total 30.00 count 1", out.Month)
	}
}

func TestRevenueByDayOrdersAscending(t *testing.T) {
	svc, saleRepo := newReportFixture(t)

	seedSale(saleRepo, time.Date(2025, 3, 7, 10, 0, 0, 0, time.UTC),
		entity.SaleItem{ProductID: uuid.New(), Quantity: 1, UnitPriceCents: 2000},
	)
	seedSale(saleRepo, time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC),
		entity.SaleItem{ProductID: uuid.New(), Quantity: 1, UnitPriceCents: 1000},
	)
	seedSale(saleRepo, time.Date(2025, 3, 5, 18, 0, 0, 0, time.UTC),
		entity.SaleItem{ProductID: uuid.New(), Quantity: 1, UnitPriceCents: 500},
	)

	days, err := svc.RevenueByDay(context.Background(), nil, nil)
	if err != nil {
		t.Fatalf("RevenueByDay: %v", err)
	}

	if len(days) != 2 {
		t.Fatalf("len(days) = %d, want 2", len(days))
	}
	if days[0].Day != "2025-03-05" || days[0].Label != "05/03" {
		t.Errorf("days[0] = %+v, want 2025-03-05 / 05/03", days[0])
	}
	if days[0].Revenue != 15.00 {
		t.Errorf("days[0].Revenue = %v, want 15.00", days[0].Revenue)
	}
	if days[1].Day != "2025-03-07" || days[1].Revenue != 20.00 {
		t.Errorf("days[1] = %+v, want 2025-03-07 / 20.00", days[1])
	}
}

func TestSeriesSplitsByPaymentMethod(t *testing.T) {
	saleRepo := newFakeSaleRepo()
	cash := &entity.PaymentMethod{ID: uuid.New(), Name: "Dinheiro"}
	pix := &entity.PaymentMethod{ID: uuid.New(), Name: "Pix"}
	svc := NewReportService(saleRepo, newFakeProductRepo(), newFakePaymentRepo(cash, pix), &fakeCategoryRepo{}, time.UTC)

	day := time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC)
	cashSale := seedSale(saleRepo, day,
		entity.SaleItem{ProductID: uuid.New(), Quantity: 1, UnitPriceCents: 2000},
	)
	cashSale.PaymentMethodID = cash.ID
	pixSale := seedSale(saleRepo, day,
		entity.SaleItem{ProductID: uuid.New(), Quantity: 1, UnitPriceCents: 3500},
	)
	pixSale.PaymentMethodID = pix.ID

	result, err := svc.Series(context.Background(), &SeriesInput{
		PaymentMethodIDs: []string{cash.ID.String(), pix.ID.String()},
		DeliveryType:     enum.DeliveryAll,
	})
	if err != nil {
		t.Fatalf("Series: %v", err)
	}

	if len(result.Labels) != 1 || result.Labels[0] != "05/03" {
		t.Fatalf("Labels = %v, want [05/03]", result.Labels)
	}
	if len(result.LineSeries) != 2 {
		t.Fatalf("len(LineSeries) = %d, want 2", len(result.LineSeries))
	}
	byLabel := make(map[string]float64)
	for _, s := range result.LineSeries {
		byLabel[s.Label] = s.Data[0]
	}
	if byLabel["Dinheiro"] != 20.00 {
		t.Errorf("Dinheiro = %v, want 20.00", byLabel["Dinheiro"])
	}
	if byLabel["Pix"] != 35.00 {
		t.Errorf("Pix = %v, want 35.00", byLabel["Pix"])
	}
	if !result.Stacked {
		t.Error("two series should be marked stacked")
	}
}
