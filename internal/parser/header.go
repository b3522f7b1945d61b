package parser

import (
	"strings"

	"pantrydash/internal/model"
)

// CanonicalField normalized column name downstream logic depends on
type CanonicalField string

const (
	FieldProduct  CanonicalField = "Product"
	FieldQuantity CanonicalField = "Quantity"
)

// headerRowScanLimit how many raw rows to scan for the true header row
const headerRowScanLimit = 10

// headerMarkers tokens that identify the header row of a product sheet.
// The exports come from pivot tables, so the first column is often
// "Row Labels" rather than anything product-like.
var headerMarkers = []string{"row labels", "product", "item"}

// FindHeaderRow scans the first rows of a raw grid top-to-bottom and
// returns the index of the first row containing any header marker in any
// cell (case-insensitive substring). Defaults to row 0.
func FindHeaderRow(rows [][]string) int {
	limit := headerRowScanLimit
	if len(rows) < limit {
		limit = len(rows)
	}
	for i := 0; i < limit; i++ {
		for _, cell := range rows[i] {
			lower := strings.ToLower(cell)
			for _, marker := range headerMarkers {
				if strings.Contains(lower, marker) {
					return i
				}
			}
		}
	}
	return 0
}

// ClassifyColumn maps a raw column name onto a canonical field.
// Columns matching no rule keep their original name and are ignored
// downstream.
func ClassifyColumn(name string) (CanonicalField, bool) {
	lower := strings.ToLower(name)
	for _, marker := range headerMarkers {
		if strings.Contains(lower, marker) {
			return FieldProduct, true
		}
	}
	if strings.Contains(lower, "quantity") || strings.Contains(lower, "qty") {
		return FieldQuantity, true
	}
	return "", false
}

// ParseProducts normalizes a header-ambiguous product sheet into canonical
// records. Returns ok=false when either canonical column is missing after
// renaming; callers skip the dataset with a soft warning.
func ParseProducts(rows [][]string) ([]model.ProductSalesRecord, bool) {
	if len(rows) == 0 {
		return nil, false
	}

	headerRow := FindHeaderRow(rows)
	header := rows[headerRow]

	productCol := -1
	quantityCol := -1
	for i, name := range header {
		field, ok := ClassifyColumn(name)
		if !ok {
			continue
		}
		// first matching column wins per field
		switch {
		case field == FieldProduct && productCol < 0:
			productCol = i
		case field == FieldQuantity && quantityCol < 0:
			quantityCol = i
		}
	}
	if productCol < 0 || quantityCol < 0 {
		return nil, false
	}

	records := make([]model.ProductSalesRecord, 0, len(rows)-headerRow-1)
	for _, row := range rows[headerRow+1:] {
		product := getCell(row, productCol)
		if product == "" {
			continue
		}
		if containsFold(product, "grand total") {
			// pivot-table footer row
			continue
		}
		quantity, _ := parseFloat(getCell(row, quantityCol))
		records = append(records, model.ProductSalesRecord{
			Product:  product,
			Quantity: quantity,
		})
	}

	return records, true
}
