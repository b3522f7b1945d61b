// Package metrics derives computed KPIs and cross-month aggregates from
// the canonical tables produced by the parser.
package metrics

import (
	"sort"
	"strings"

	"pantrydash/internal/model"
	"pantrydash/internal/parser"
)

// DefaultRetentionOverrides business-supplied retention constants for the
// months where the rate was measured externally rather than derived.
func DefaultRetentionOverrides() map[model.MonthTag]float64 {
	return map[model.MonthTag]float64{
		model.MonthDec: 12.2,
		model.MonthJan: 16.0,
	}
}

// EnsureRetention appends a synthesized "Retention Rate" KPI when no
// existing KPI name contains "retention". Override months use the supplied
// constant regardless of any order KPIs present; other months derive
// old/total*100. When neither applies the KPI is simply omitted, never
// zero-filled.
func EnsureRetention(kpis []model.KpiRecord, month model.MonthTag, overrides map[model.MonthTag]float64) []model.KpiRecord {
	for _, k := range kpis {
		if strings.Contains(strings.ToLower(k.Name), "retention") {
			return kpis
		}
	}

	if value, ok := overrides[month]; ok {
		return append(kpis, model.KpiRecord{Name: "Retention Rate", Value: value})
	}

	total, hasTotal := findKPIContains(kpis, "total orders")
	old, hasOld := findKPIContains(kpis, "old orders")
	if !hasTotal || !hasOld || total <= 0 {
		return kpis
	}
	return append(kpis, model.KpiRecord{Name: "Retention Rate", Value: old / total * 100})
}

// findKPIContains first KPI whose name contains the token, case-insensitive.
func findKPIContains(kpis []model.KpiRecord, token string) (float64, bool) {
	for _, k := range kpis {
		if strings.Contains(strings.ToLower(k.Name), token) {
			return k.Value, true
		}
	}
	return 0, false
}

// LookupKPI exact trim+lowercase KPI lookup, for the comparisons that must
// not fuzzy-match (e.g. "total orders" vs "old orders" pie split).
func LookupKPI(kpis []model.KpiRecord, name string) (float64, bool) {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, k := range kpis {
		if strings.ToLower(strings.TrimSpace(k.Name)) == want {
			return k.Value, true
		}
	}
	return 0, false
}

// TopProducts groups records by exact product text, sums quantities, and
// returns the top n by quantity descending. Ties keep the original
// concatenation order (stable sort over first-appearance grouping).
func TopProducts(records []model.ProductSalesRecord, n int) []model.ProductSalesRecord {
	index := make(map[string]int, len(records))
	grouped := make([]model.ProductSalesRecord, 0, len(records))
	for _, r := range records {
		if i, ok := index[r.Product]; ok {
			grouped[i].Quantity += r.Quantity
			continue
		}
		index[r.Product] = len(grouped)
		grouped = append(grouped, r)
	}

	sort.SliceStable(grouped, func(i, j int) bool {
		return grouped[i].Quantity > grouped[j].Quantity
	})

	if n > 0 && len(grouped) > n {
		grouped = grouped[:n]
	}
	return grouped
}

// AverageGaps groups concatenated gap tables by bucket and takes the
// arithmetic mean of the percentage per bucket, in first-appearance order.
func AverageGaps(records []model.PurchasingGapRecord) []model.PurchasingGapRecord {
	type acc struct {
		sum   float64
		count int
	}
	index := make(map[string]int, len(records))
	order := make([]string, 0, len(records))
	sums := make([]acc, 0, len(records))

	for _, r := range records {
		i, ok := index[r.Bucket]
		if !ok {
			i = len(sums)
			index[r.Bucket] = i
			order = append(order, r.Bucket)
			sums = append(sums, acc{})
		}
		sums[i].sum += r.Percentage
		sums[i].count++
	}

	out := make([]model.PurchasingGapRecord, len(order))
	for i, bucket := range order {
		out[i] = model.PurchasingGapRecord{
			Bucket:     bucket,
			Percentage: sums[i].sum / float64(sums[i].count),
		}
	}
	return out
}

// PaymentTotals sums the two channels independently across all days of one
// month. Days are deduplicated first so a repeated day never counts twice.
func PaymentTotals(month model.MonthTag, days []model.PaymentDayRecord) model.MonthPaymentSummary {
	summary := model.MonthPaymentSummary{Month: month}
	for _, d := range parser.DedupeByDay(days) {
		summary.COD += d.COD
		summary.Instamojo += d.Instamojo
	}
	return summary
}
