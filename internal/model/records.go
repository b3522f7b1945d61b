package model

import "time"

// KpiRecord one named business metric for a month.
// Name is trimmed; Value always parsed numeric (non-numeric rows are dropped upstream).
type KpiRecord struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// ProductSalesRecord one product with its sold quantity.
// Rows with empty product or "grand total" footer rows never reach this type.
type ProductSalesRecord struct {
	Product  string  `json:"product"`
	Quantity float64 `json:"quantity"`
}

// TimeSeriesPoint shared per-day shape for ABV / orders / turnover series
type TimeSeriesPoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// PurchasingGapRecord one time-since-last-purchase bucket with its share.
// Buckets are unique within one file.
type PurchasingGapRecord struct {
	Bucket     string  `json:"bucket"`
	Percentage float64 `json:"percentage"`
}

// PaymentDayRecord per-day payment channel counts extracted from the calendar grid.
// Day is always in [1,31]; counts default to 0 when the source cell has no match.
type PaymentDayRecord struct {
	Day       int `json:"day"`
	COD       int `json:"cod"`
	Instamojo int `json:"instamojo"`
}
