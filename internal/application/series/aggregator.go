package series

import (
	"sort"
	"strings"

	"github.com/pdvcaixa/caixa-api/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// UnfilteredLabel names the single aggregate series produced when no filter
// dimension is selected.
const UnfilteredLabel = "Faturamento do período"

const dayKeyLayout = "2006-01-02"

// comboSlice is one selected value of one filter dimension. match is what
// sale/item fields are compared against (payment method id, product id, or
// resolved category name); label is what shows up in the series name.
type comboSlice struct {
	dim   string
	match string
	label string
}

// Aggregate buckets the given sales by local calendar day and produces one
// series per cartesian combination of the selected filter dimensions.
//
// A sale passes the pre-filter when every active dimension matches it at
// sale level (payment method) or on at least one item (product, category,
// delivery). Day labels derive from the pre-filter only, so a passing sale
// keeps its day visible even when a finer combination sums to zero for it.
// Per-combination values are always recomputed from item quantities and
// unit prices — additionals are not charted — and rounded to 2 decimals,
// half away from zero.
func Aggregate(sales []Sale, f Filter, lk Lookups) Result {
	delivery := f.DeliveryType
	if delivery == "" {
		delivery = enum.DeliveryAll
	}

	selPay := toSet(f.PaymentMethodIDs)
	selProd := toSet(f.ProductIDs)
	catFilterActive := len(f.CategoryIDs) > 0
	selCatNames := make(map[string]bool, len(f.CategoryIDs))
	for _, id := range f.CategoryIDs {
		if name, ok := lk.CategoryNames[id]; ok {
			selCatNames[name] = true
		}
	}

	pre := make([]Sale, 0, len(sales))
	for _, s := range sales {
		if len(selPay) > 0 && !selPay[s.PaymentMethodID] {
			continue
		}
		if len(selProd) > 0 && !anyItem(s.Items, func(i Item) bool { return selProd[i.ProductID] }) {
			continue
		}
		if catFilterActive && !anyItem(s.Items, func(i Item) bool { return selCatNames[i.Category] }) {
			continue
		}
		if delivery != enum.DeliveryAll && !anyItem(s.Items, func(i Item) bool { return delivery.Matches(i.IsDelivery) }) {
			continue
		}
		pre = append(pre, s)
	}

	result := Result{
		Labels:     []string{},
		LineSeries: []NamedSeries{},
		BarSeries:  []NamedSeries{},
	}
	if len(pre) == 0 {
		return result
	}

	// Distinct local calendar days, sorted by the YYYY-MM-DD key and
	// rendered as DD/MM.
	dayIndex := make(map[string]int)
	dayKeys := make([]string, 0)
	for _, s := range pre {
		key := s.CreatedAt.Format(dayKeyLayout)
		if _, seen := dayIndex[key]; !seen {
			dayIndex[key] = 0
			dayKeys = append(dayKeys, key)
		}
	}
	sort.Strings(dayKeys)
	for i, key := range dayKeys {
		dayIndex[key] = i
		result.Labels = append(result.Labels, key[8:10]+"/"+key[5:7])
	}

	combos := cartesian(buildDims(f, lk))

	for _, combo := range combos {
		var payMatch, prodMatch, catMatch string
		var hasPay, hasProd, hasCat bool
		names := make([]string, 0, len(combo))
		for _, sl := range combo {
			names = append(names, sl.label)
			switch sl.dim {
			case "payment":
				payMatch, hasPay = sl.match, true
			case "product":
				prodMatch, hasProd = sl.match, true
			case "category":
				catMatch, hasCat = sl.match, true
			}
		}

		data := make([]float64, len(dayKeys))
		for _, s := range pre {
			if hasPay && s.PaymentMethodID != payMatch {
				continue
			}
			sum := 0.0
			for _, it := range s.Items {
				if !delivery.Matches(it.IsDelivery) {
					continue
				}
				if hasProd && it.ProductID != prodMatch {
					continue
				}
				if hasCat && it.Category != catMatch {
					continue
				}
				sum += it.UnitPrice * float64(it.Quantity)
			}
			data[dayIndex[s.CreatedAt.Format(dayKeyLayout)]] += sum
		}
		for i := range data {
			data[i] = round2(data[i])
		}

		label := UnfilteredLabel
		if len(names) > 0 {
			label = strings.Join(names, " • ")
		}
		result.LineSeries = append(result.LineSeries, NamedSeries{Label: label, Data: data})

		barData := make([]float64, len(data))
		copy(barData, data)
		result.BarSeries = append(result.BarSeries, NamedSeries{Label: label, Data: barData})
	}

	result.Stacked = len(result.BarSeries) > 1
	return result
}

// buildDims assembles one slice list per non-empty dimension, in the fixed
// order payment, product, category. Empty dimensions are excluded from the
// cartesian product entirely.
func buildDims(f Filter, lk Lookups) [][]comboSlice {
	dims := make([][]comboSlice, 0, 3)

	if len(f.PaymentMethodIDs) > 0 {
		dim := make([]comboSlice, 0, len(f.PaymentMethodIDs))
		for _, id := range f.PaymentMethodIDs {
			dim = append(dim, comboSlice{dim: "payment", match: id, label: nameOr(lk.PaymentNames, id)})
		}
		dims = append(dims, dim)
	}
	if len(f.ProductIDs) > 0 {
		dim := make([]comboSlice, 0, len(f.ProductIDs))
		for _, id := range f.ProductIDs {
			dim = append(dim, comboSlice{dim: "product", match: id, label: nameOr(lk.ProductNames, id)})
		}
		dims = append(dims, dim)
	}
	if len(f.CategoryIDs) > 0 {
		dim := make([]comboSlice, 0, len(f.CategoryIDs))
		for _, id := range f.CategoryIDs {
			// Items carry category names, so the slice matches on the
			// resolved name; an unresolvable id matches nothing.
			dim = append(dim, comboSlice{dim: "category", match: nameOr(lk.CategoryNames, id), label: nameOr(lk.CategoryNames, id)})
		}
		dims = append(dims, dim)
	}
	return dims
}

// cartesian produces every combination taking one slice per dimension. With
// no dimensions it yields a single empty combination: the unfiltered
// aggregate.
func cartesian(dims [][]comboSlice) [][]comboSlice {
	combos := [][]comboSlice{{}}
	for _, dim := range dims {
		next := make([][]comboSlice, 0, len(combos)*len(dim))
		for _, sl := range dim {
			for _, base := range combos {
				c := make([]comboSlice, len(base), len(base)+1)
				copy(c, base)
				next = append(next, append(c, sl))
			}
		}
		combos = next
	}
	return combos
}

func anyItem(items []Item, match func(Item) bool) bool {
	for _, it := range items {
		if match(it) {
			return true
		}
	}
	return false
}

func toSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

func nameOr(names map[string]string, id string) string {
	if name, ok := names[id]; ok && name != "" {
		return name
	}
	return id
}

// round2 rounds to 2 decimal places, half away from zero, matching the
// currency rounding used everywhere else in the register.
func round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
