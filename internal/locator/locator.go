// Package locator finds the single best-matching spreadsheet file for each
// logical dataset inside a month's data folder. The exports are loosely
// named, so each kind carries an ordered list of glob patterns.
package locator

import (
	"os"
	"path/filepath"
	"sort"

	"pantrydash/internal/model"
)

// kindPatterns glob patterns per dataset kind, tried in priority order
var kindPatterns = map[model.DatasetKind][]string{
	model.DatasetKPI:           {"*kpi*.xlsx"},
	model.DatasetItems:         {"ITEMS.xlsx", "All_Product*.xlsx", "product*.xlsx"},
	model.DatasetABV:           {"*abv*.xlsx"},
	model.DatasetOrders:        {"*orders*.xlsx"},
	model.DatasetTurnover:      {"*turnover*.xlsx"},
	model.DatasetPurchasingGap: {"*purchasing_gap*.xlsx"},
	model.DatasetPaymentMethod: {"*payment_method*.xlsx"},
}

// Locate returns the path of the dataset file for one month, or ok=false
// when no pattern matches. Callers must treat ok=false as "dataset absent
// for this month", not as an error.
//
// Within one pattern, matches are sorted lexicographically and the first
// taken, so the pick is deterministic across platforms.
func Locate(root string, month model.MonthTag, kind model.DatasetKind) (string, bool) {
	dir := filepath.Join(root, string(month))
	for _, pattern := range kindPatterns[kind] {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil || len(matches) == 0 {
			continue
		}
		sort.Strings(matches)
		return matches[0], true
	}
	return "", false
}

// Available maps every dataset kind found for a month to its file path.
func Available(root string, month model.MonthTag) map[model.DatasetKind]string {
	found := make(map[model.DatasetKind]string)
	for _, kind := range model.DatasetKinds() {
		if path, ok := Locate(root, month, kind); ok {
			found[kind] = path
		}
	}
	return found
}

// MonthDirExists reports whether the month folder itself is present.
func MonthDirExists(root string, month model.MonthTag) bool {
	info, err := os.Stat(filepath.Join(root, string(month)))
	return err == nil && info.IsDir()
}
