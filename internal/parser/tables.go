package parser

import (
	"sort"
	"time"

	"github.com/xuri/excelize/v2"

	"pantrydash/internal/model"
)

// ParseKPIs reads a KPI sheet headed "KPI" / "Value" at row 0.
// Names are trimmed; rows whose value does not parse numerically are
// dropped. ok=false when either column is missing.
func ParseKPIs(rows [][]string) ([]model.KpiRecord, bool) {
	if len(rows) == 0 {
		return nil, false
	}
	header := rows[0]
	nameCol := findExactCol(header, "KPI")
	valueCol := findExactCol(header, "Value")
	if nameCol < 0 || valueCol < 0 {
		return nil, false
	}

	records := make([]model.KpiRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		name := getCell(row, nameCol)
		if name == "" {
			continue
		}
		value, ok := parseFloat(getCell(row, valueCol))
		if !ok {
			continue
		}
		records = append(records, model.KpiRecord{Name: name, Value: value})
	}
	return records, true
}

// ParseGaps reads a purchasing-gap sheet headed "Purchasing Gap" /
// "Percentage". Buckets are unique within one file; the first occurrence
// wins.
func ParseGaps(rows [][]string) ([]model.PurchasingGapRecord, bool) {
	if len(rows) == 0 {
		return nil, false
	}
	header := rows[0]
	bucketCol := findExactCol(header, "Purchasing Gap")
	pctCol := findExactCol(header, "Percentage")
	if bucketCol < 0 || pctCol < 0 {
		return nil, false
	}

	seen := make(map[string]bool)
	records := make([]model.PurchasingGapRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		bucket := getCell(row, bucketCol)
		if bucket == "" || seen[bucket] {
			continue
		}
		pct, ok := parseFloat(getCell(row, pctCol))
		if !ok {
			continue
		}
		seen[bucket] = true
		records = append(records, model.PurchasingGapRecord{Bucket: bucket, Percentage: pct})
	}
	return records, true
}

// ParseSeries reads a per-day series sheet headed "Date" plus the named
// value column. Rows failing to parse a valid date or value are dropped;
// duplicate dates collapse keeping the first occurrence in original row
// order; finally the majority-year filter removes stray rows carried over
// from adjacent years in the same export. The cleaned series comes back in
// ascending date order.
func ParseSeries(rows [][]string, valueHeader string) ([]model.TimeSeriesPoint, bool) {
	if len(rows) == 0 {
		return nil, false
	}
	header := rows[0]
	dateCol := findExactCol(header, "Date")
	valueCol := findExactCol(header, valueHeader)
	if dateCol < 0 || valueCol < 0 {
		return nil, false
	}

	seen := make(map[time.Time]bool)
	points := make([]model.TimeSeriesPoint, 0, len(rows)-1)
	for _, row := range rows[1:] {
		date, ok := parseDayFirstDate(getCell(row, dateCol))
		if !ok {
			continue
		}
		value, ok := parseFloat(getCell(row, valueCol))
		if !ok {
			continue
		}
		if seen[date] {
			continue
		}
		seen[date] = true
		points = append(points, model.TimeSeriesPoint{Date: date, Value: value})
	}

	points = filterMajorityYear(points)
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
	return points, true
}

// dayFirstLayouts accepted date formats, day-first variants ahead of ISO.
// The exports mix dd-mm and dd/mm styles depending on who produced them.
var dayFirstLayouts = []string{
	"02-01-2006",
	"2-1-2006",
	"02/01/2006",
	"2/1/2006",
	"02-01-06",
	"02/01/06",
	"02-Jan-2006",
	"2-Jan-2006",
	"2006-01-02",
	"2006-01-02 15:04:05",
}

// parseDayFirstDate parses a cell as a day-first calendar date, falling
// back to the Excel serial number representation for date-styled cells.
func parseDayFirstDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dayFirstLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Truncate(24 * time.Hour), true
		}
	}
	// Excel serial date: plausible range covers 1954..2078
	if serial, ok := parseFloat(s); ok && serial > 20000 && serial < 65000 {
		if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
			return t.Truncate(24 * time.Hour), true
		}
	}
	return time.Time{}, false
}

// filterMajorityYear keeps only the points whose year is the most frequent
// year observed. This is a lossy heuristic against stray rows from the
// wrong year, not a correctness guarantee; ties keep the earliest-seen year.
func filterMajorityYear(points []model.TimeSeriesPoint) []model.TimeSeriesPoint {
	if len(points) == 0 {
		return points
	}

	counts := make(map[int]int)
	order := make([]int, 0, 2)
	for _, p := range points {
		year := p.Date.Year()
		if counts[year] == 0 {
			order = append(order, year)
		}
		counts[year]++
	}

	best := order[0]
	for _, year := range order[1:] {
		if counts[year] > counts[best] {
			best = year
		}
	}

	filtered := points[:0]
	for _, p := range points {
		if p.Date.Year() == best {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
