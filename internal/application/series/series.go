// Package series turns a flat list of sales plus the dashboard's filter
// selections into day-bucketed chart series. It is a pure computation: it
// performs no I/O, never mutates its inputs and is safe to call from any
// number of goroutines.
package series

import (
	"time"

	"github.com/pdvcaixa/caixa-api/internal/domain/enum"
)

// Item is one sale line as seen by the aggregator. Category carries the
// product's category name at aggregation time (empty when uncategorized).
type Item struct {
	ProductID  string
	Quantity   int
	UnitPrice  float64
	IsDelivery bool
	Category   string
}

// Sale is one checkout transaction as seen by the aggregator. The caller is
// expected to have applied the date range already.
type Sale struct {
	ID              string
	CreatedAt       time.Time
	PaymentMethodID string
	Total           float64
	Items           []Item
}

// Filter holds the dashboard's active filter selections. An empty slice
// means "no filter on this dimension"; identifiers are compared as strings
// to tolerate mixed numeric/string sourcing upstream.
type Filter struct {
	PaymentMethodIDs []string
	ProductIDs       []string
	CategoryIDs      []string
	DeliveryType     enum.DeliveryType
}

// Lookups resolves identifiers to display names. Missing entries fall back
// to the raw identifier in series labels.
type Lookups struct {
	ProductNames  map[string]string
	PaymentNames  map[string]string
	CategoryNames map[string]string
}

// NamedSeries is one chart series; Data[i] corresponds to Result.Labels[i].
type NamedSeries struct {
	Label string    `json:"label"`
	Data  []float64 `json:"data"`
}

// Result is what the chart renderer consumes. Labels are DD/MM day labels in
// ascending calendar order; BarSeries mirrors LineSeries numerically and
// Stacked tells the renderer to stack bars when more than one series exists.
type Result struct {
	Labels     []string      `json:"labels"`
	LineSeries []NamedSeries `json:"line_series"`
	BarSeries  []NamedSeries `json:"bar_series"`
	Stacked    bool          `json:"stacked"`
}
