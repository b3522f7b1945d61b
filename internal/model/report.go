package model

// OldVsNewSplit new/old order counts for the customer-type breakdown.
// Only present when at least one side is positive.
type OldVsNewSplit struct {
	NewOrders float64 `json:"newOrders"`
	OldOrders float64 `json:"oldOrders"`
}

// MonthReport everything the display layer needs for one month.
// Absent datasets are nil with Present[kind]=false; malformed datasets are
// nil with a soft notice. Nothing here is fatal.
type MonthReport struct {
	Month MonthTag `json:"month"`

	KPIs        []KpiRecord           `json:"kpis,omitempty"`
	Products    []ProductSalesRecord  `json:"products,omitempty"`
	TopProducts []ProductSalesRecord  `json:"topProducts,omitempty"`
	ABV         []TimeSeriesPoint     `json:"abv,omitempty"`
	Orders      []TimeSeriesPoint     `json:"orders,omitempty"`
	Turnover    []TimeSeriesPoint     `json:"turnover,omitempty"`
	Gaps        []PurchasingGapRecord `json:"purchasingGaps,omitempty"`
	Payments    []PaymentDayRecord    `json:"payments,omitempty"`
	OldVsNew    *OldVsNewSplit        `json:"oldVsNew,omitempty"`

	Present map[DatasetKind]bool `json:"present"`
	Notices []string             `json:"notices,omitempty"`
}

// MonthOrders total orders KPI for one month, for the cross-month comparison.
// Months without the KPI are omitted from the series, never zero-filled.
type MonthOrders struct {
	Month       MonthTag `json:"month"`
	TotalOrders float64  `json:"totalOrders"`
}

// MonthPaymentSummary per-month payment channel totals (days deduplicated first)
type MonthPaymentSummary struct {
	Month     MonthTag `json:"month"`
	COD       int      `json:"cod"`
	Instamojo int      `json:"instamojo"`
}

// CombinedReport cross-month aggregates for the "ALL" view
type CombinedReport struct {
	MonthlyOrders []MonthOrders         `json:"monthlyOrders"`
	TopProducts   []ProductSalesRecord  `json:"topProducts"`
	GapAverages   []PurchasingGapRecord `json:"gapAverages"`
	PaymentTotals []MonthPaymentSummary `json:"paymentTotals"`
}
