package series

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/pdvcaixa/caixa-api/internal/domain/enum"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02 15:04", s)
	if err != nil {
		panic(err)
	}
	return t
}

func testLookups() Lookups {
	return Lookups{
		ProductNames: map[string]string{
			"p1": "X-Burger",
			"p2": "Refrigerante",
			"p3": "Batata Frita",
		},
		PaymentNames: map[string]string{
			"pm1": "Dinheiro",
			"pm2": "Pix",
		},
		CategoryNames: map[string]string{
			"c1": "Lanches",
			"c2": "Bebidas",
		},
	}
}

func TestAggregateNoSales(t *testing.T) {
	got := Aggregate(nil, Filter{}, testLookups())

	if got.Labels == nil || len(got.Labels) != 0 {
		t.Errorf("Labels = %v, want empty non-nil slice", got.Labels)
	}
	if got.LineSeries == nil || len(got.LineSeries) != 0 {
		t.Errorf("LineSeries = %v, want empty non-nil slice", got.LineSeries)
	}
	if got.BarSeries == nil || len(got.BarSeries) != 0 {
		t.Errorf("BarSeries = %v, want empty non-nil slice", got.BarSeries)
	}
	if got.Stacked {
		t.Error("Stacked = true, want false")
	}
}

func TestAggregateUnfiltered(t *testing.T) {
	sales := []Sale{
		{
			ID:              "s1",
			CreatedAt:       day("2024-03-05 10:30"),
			PaymentMethodID: "pm1",
			Total:           42.50,
			Items: []Item{
				{ProductID: "p1", Quantity: 2, UnitPrice: 15.00, Category: "Lanches"},
				{ProductID: "p2", Quantity: 1, UnitPrice: 12.50, Category: "Bebidas"},
			},
		},
	}

	got := Aggregate(sales, Filter{}, testLookups())

	if want := []string{"05/03"}; !reflect.DeepEqual(got.Labels, want) {
		t.Errorf("Labels = %v, want %v", got.Labels, want)
	}
	if len(got.LineSeries) != 1 {
		t.Fatalf("len(LineSeries) = %d, want 1", len(got.LineSeries))
	}
	if got.LineSeries[0].Label != UnfilteredLabel {
		t.Errorf("Label = %q, want %q", got.LineSeries[0].Label, UnfilteredLabel)
	}
	if want := []float64{42.50}; !reflect.DeepEqual(got.LineSeries[0].Data, want) {
		t.Errorf("Data = %v, want %v", got.LineSeries[0].Data, want)
	}
	if !reflect.DeepEqual(got.BarSeries, got.LineSeries) {
		t.Errorf("BarSeries = %v, want mirror of LineSeries %v", got.BarSeries, got.LineSeries)
	}
	if got.Stacked {
		t.Error("Stacked = true for a single series, want false")
	}
}

func TestAggregatePaymentSplit(t *testing.T) {
	sales := []Sale{
		{
			ID:              "s1",
			CreatedAt:       day("2024-03-05 09:00"),
			PaymentMethodID: "pm1",
			Items:           []Item{{ProductID: "p1", Quantity: 1, UnitPrice: 30.00, Category: "Lanches"}},
		},
		{
			ID:              "s2",
			CreatedAt:       day("2024-03-05 14:00"),
			PaymentMethodID: "pm2",
			Items:           []Item{{ProductID: "p2", Quantity: 1, UnitPrice: 12.50, Category: "Bebidas"}},
		},
	}

	got := Aggregate(sales, Filter{PaymentMethodIDs: []string{"pm1", "pm2"}}, testLookups())

	if want := []string{"05/03"}; !reflect.DeepEqual(got.Labels, want) {
		t.Errorf("Labels = %v, want %v", got.Labels, want)
	}
	if len(got.LineSeries) != 2 {
		t.Fatalf("len(LineSeries) = %d, want 2", len(got.LineSeries))
	}

	byLabel := map[string][]float64{}
	for _, s := range got.LineSeries {
		byLabel[s.Label] = s.Data
	}
	if want := []float64{30.00}; !reflect.DeepEqual(byLabel["Dinheiro"], want) {
		t.Errorf("Dinheiro = %v, want %v", byLabel["Dinheiro"], want)
	}
	if want := []float64{12.50}; !reflect.DeepEqual(byLabel["Pix"], want) {
		t.Errorf("Pix = %v, want %v", byLabel["Pix"], want)
	}
	if !got.Stacked {
		t.Error("Stacked = false with two series, want true")
	}
}

func TestAggregateDeliveryFilter(t *testing.T) {
	sales := []Sale{
		{
			ID:              "s1",
			CreatedAt:       day("2024-03-05 11:00"),
			PaymentMethodID: "pm1",
			Items: []Item{
				{ProductID: "p1", Quantity: 1, UnitPrice: 20.00, IsDelivery: true, Category: "Lanches"},
				{ProductID: "p2", Quantity: 2, UnitPrice: 5.00, IsDelivery: false, Category: "Bebidas"},
			},
		},
		{
			ID:              "s2",
			CreatedAt:       day("2024-03-06 11:00"),
			PaymentMethodID: "pm1",
			Items: []Item{
				{ProductID: "p3", Quantity: 1, UnitPrice: 18.00, IsDelivery: false, Category: "Lanches"},
			},
		},
	}

	got := Aggregate(sales, Filter{DeliveryType: enum.DeliveryDelivery}, testLookups())

	// s2 has no delivery items and falls out of the pre-filter, so only one
	// day remains; s1 contributes only its delivery item.
	if want := []string{"05/03"}; !reflect.DeepEqual(got.Labels, want) {
		t.Errorf("Labels = %v, want %v", got.Labels, want)
	}
	if len(got.LineSeries) != 1 {
		t.Fatalf("len(LineSeries) = %d, want 1", len(got.LineSeries))
	}
	if want := []float64{20.00}; !reflect.DeepEqual(got.LineSeries[0].Data, want) {
		t.Errorf("Data = %v, want %v", got.LineSeries[0].Data, want)
	}
}

func TestAggregateProductFilterNoMatch(t *testing.T) {
	sales := []Sale{
		{
			ID:              "s1",
			CreatedAt:       day("2024-03-05 11:00"),
			PaymentMethodID: "pm1",
			Items:           []Item{{ProductID: "p1", Quantity: 1, UnitPrice: 20.00, Category: "Lanches"}},
		},
	}

	got := Aggregate(sales, Filter{ProductIDs: []string{"p3"}}, testLookups())

	if len(got.Labels) != 0 {
		t.Errorf("Labels = %v, want empty", got.Labels)
	}
	if len(got.LineSeries) != 0 {
		t.Errorf("LineSeries = %v, want empty", got.LineSeries)
	}
}

func TestAggregateCartesianCombos(t *testing.T) {
	sales := []Sale{
		{
			ID:              "s1",
			CreatedAt:       day("2024-03-05 09:00"),
			PaymentMethodID: "pm1",
			Items: []Item{
				{ProductID: "p1", Quantity: 2, UnitPrice: 15.00, Category: "Lanches"},
				{ProductID: "p2", Quantity: 1, UnitPrice: 12.50, Category: "Bebidas"},
			},
		},
		{
			ID:              "s2",
			CreatedAt:       day("2024-03-06 09:00"),
			PaymentMethodID: "pm2",
			Items: []Item{
				{ProductID: "p1", Quantity: 1, UnitPrice: 15.00, Category: "Lanches"},
			},
		},
	}

	f := Filter{
		PaymentMethodIDs: []string{"pm1", "pm2"},
		ProductIDs:       []string{"p1", "p2"},
	}
	got := Aggregate(sales, f, testLookups())

	if want := []string{"05/03", "06/03"}; !reflect.DeepEqual(got.Labels, want) {
		t.Errorf("Labels = %v, want %v", got.Labels, want)
	}
	if len(got.LineSeries) != 4 {
		t.Fatalf("len(LineSeries) = %d, want 4 (2 payments x 2 products)", len(got.LineSeries))
	}

	byLabel := map[string][]float64{}
	for _, s := range got.LineSeries {
		byLabel[s.Label] = s.Data
	}
	checks := map[string][]float64{
		"Dinheiro • X-Burger":     {30.00, 0},
		"Dinheiro • Refrigerante": {12.50, 0},
		"Pix • X-Burger":          {0, 15.00},
		"Pix • Refrigerante":      {0, 0},
	}
	for label, want := range checks {
		gotData, ok := byLabel[label]
		if !ok {
			t.Errorf("missing series %q; have %v", label, labelsOf(got.LineSeries))
			continue
		}
		if !reflect.DeepEqual(gotData, want) {
			t.Errorf("%s = %v, want %v", label, gotData, want)
		}
	}
	if !got.Stacked {
		t.Error("Stacked = false with four series, want true")
	}
}

func TestAggregateCategoryPerSlice(t *testing.T) {
	sales := []Sale{
		{
			ID:              "s1",
			CreatedAt:       day("2024-03-05 09:00"),
			PaymentMethodID: "pm1",
			Items: []Item{
				{ProductID: "p1", Quantity: 1, UnitPrice: 15.00, Category: "Lanches"},
				{ProductID: "p2", Quantity: 1, UnitPrice: 12.50, Category: "Bebidas"},
			},
		},
	}

	got := Aggregate(sales, Filter{CategoryIDs: []string{"c1", "c2"}}, testLookups())

	byLabel := map[string][]float64{}
	for _, s := range got.LineSeries {
		byLabel[s.Label] = s.Data
	}
	// Each category series counts only its own category's items, not every
	// item whose category appears anywhere in the selection.
	if want := []float64{15.00}; !reflect.DeepEqual(byLabel["Lanches"], want) {
		t.Errorf("Lanches = %v, want %v", byLabel["Lanches"], want)
	}
	if want := []float64{12.50}; !reflect.DeepEqual(byLabel["Bebidas"], want) {
		t.Errorf("Bebidas = %v, want %v", byLabel["Bebidas"], want)
	}
}

func TestAggregateUnknownIDLabels(t *testing.T) {
	sales := []Sale{
		{
			ID:              "s1",
			CreatedAt:       day("2024-03-05 09:00"),
			PaymentMethodID: "pm9",
			Items:           []Item{{ProductID: "p9", Quantity: 1, UnitPrice: 10.00}},
		},
	}

	got := Aggregate(sales, Filter{PaymentMethodIDs: []string{"pm9"}}, testLookups())

	if len(got.LineSeries) != 1 {
		t.Fatalf("len(LineSeries) = %d, want 1", len(got.LineSeries))
	}
	if got.LineSeries[0].Label != "pm9" {
		t.Errorf("Label = %q, want raw id fallback %q", got.LineSeries[0].Label, "pm9")
	}
	if want := []float64{10.00}; !reflect.DeepEqual(got.LineSeries[0].Data, want) {
		t.Errorf("Data = %v, want %v", got.LineSeries[0].Data, want)
	}
}

func TestAggregateDayOrdering(t *testing.T) {
	sales := []Sale{
		{ID: "s1", CreatedAt: day("2024-03-10 09:00"), PaymentMethodID: "pm1",
			Items: []Item{{ProductID: "p1", Quantity: 1, UnitPrice: 5.00}}},
		{ID: "s2", CreatedAt: day("2024-02-28 09:00"), PaymentMethodID: "pm1",
			Items: []Item{{ProductID: "p1", Quantity: 1, UnitPrice: 7.00}}},
		{ID: "s3", CreatedAt: day("2024-03-10 18:00"), PaymentMethodID: "pm1",
			Items: []Item{{ProductID: "p1", Quantity: 1, UnitPrice: 3.00}}},
	}

	got := Aggregate(sales, Filter{}, testLookups())

	if want := []string{"28/02", "10/03"}; !reflect.DeepEqual(got.Labels, want) {
		t.Errorf("Labels = %v, want %v", got.Labels, want)
	}
	if want := []float64{7.00, 8.00}; !reflect.DeepEqual(got.LineSeries[0].Data, want) {
		t.Errorf("Data = %v, want %v", got.LineSeries[0].Data, want)
	}
}

func TestAggregateRounding(t *testing.T) {
	sales := []Sale{
		{
			ID:              "s1",
			CreatedAt:       day("2024-03-05 09:00"),
			PaymentMethodID: "pm1",
			// 3 x 0.115 = 0.345, rounds half away from zero to 0.35
			Items: []Item{{ProductID: "p1", Quantity: 3, UnitPrice: 0.115}},
		},
	}

	got := Aggregate(sales, Filter{}, testLookups())

	if v := got.LineSeries[0].Data[0]; math.Abs(v-0.35) > 1e-9 {
		t.Errorf("rounded value = %v, want 0.35", v)
	}
}

func TestAggregateIdempotent(t *testing.T) {
	sales := []Sale{
		{ID: "s1", CreatedAt: day("2024-03-05 09:00"), PaymentMethodID: "pm1",
			Items: []Item{{ProductID: "p1", Quantity: 2, UnitPrice: 15.00, Category: "Lanches"}}},
		{ID: "s2", CreatedAt: day("2024-03-06 09:00"), PaymentMethodID: "pm2",
			Items: []Item{{ProductID: "p2", Quantity: 1, UnitPrice: 12.50, Category: "Bebidas"}}},
	}
	f := Filter{PaymentMethodIDs: []string{"pm1", "pm2"}, DeliveryType: enum.DeliveryAll}

	first := Aggregate(sales, f, testLookups())
	second := Aggregate(sales, f, testLookups())

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated aggregation differs:\nfirst  = %+v\nsecond = %+v", first, second)
	}
}

func labelsOf(series []NamedSeries) []string {
	out := make([]string, len(series))
	for i, s := range series {
		out[i] = s.Label
	}
	return out
}
