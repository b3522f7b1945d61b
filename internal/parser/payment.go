package parser

import (
	"regexp"
	"strconv"
	"strings"

	"pantrydash/internal/model"
)

// The payment exports are visually calendar-shaped: one row holds the
// day numbers and one or two rows below hold per-channel counts as free
// text, either on separate rows ("COD: 12" / "Instamojo: 4") or combined
// in a single annotated cell ("COD: 12 / Instamojo: 4"). Both layouts
// must parse without a format flag.

var (
	reCODCount       = regexp.MustCompile(`(?i)cod:\s*(\d+)`)
	reInstamojoCount = regexp.MustCompile(`(?i)instamojo:\s*(\d+)`)
)

// markerScanDepth how many rows below a day-number row to scan for channel markers
const markerScanDepth = 4

// blockLayout resolved layout of one calendar block
type blockLayout int

const (
	layoutNone blockLayout = iota
	layoutCombined
	layoutSeparate
)

// dayCell one recognized day-of-month cell within a day-number row
type dayCell struct {
	col int
	day int
}

// ParsePaymentGrid extracts one record per recognized day cell across all
// calendar blocks in the sheet, in emission order. Duplicate days are NOT
// collapsed here; callers dedupe with DedupeByDay so that first-block
// values win consistently everywhere.
func ParsePaymentGrid(rows [][]string) []model.PaymentDayRecord {
	var records []model.PaymentDayRecord
	for i := range rows {
		days := dayNumberCells(rows[i])
		if len(days) == 0 {
			continue
		}
		records = append(records, parseBlock(rows, i, days)...)
	}
	return records
}

// dayNumberCells finds the cells of a row that numerically coerce into a
// day of month. A row with none is not a day-number row.
func dayNumberCells(row []string) []dayCell {
	var cells []dayCell
	for col, raw := range row {
		f, ok := parseFloat(raw)
		if !ok {
			continue
		}
		day := int(f) // numeric cast, truncating
		if day >= 1 && day <= 31 {
			cells = append(cells, dayCell{col: col, day: day})
		}
	}
	return cells
}

// parseBlock resolves the layout of one block and emits its records.
//
// Combined layout takes priority: a row below the day numbers with one
// cell carrying BOTH markers ends the scan immediately, even when a
// separate-marker row was already found above it. Otherwise the nearest
// row containing "cod:" and, independently, the nearest containing
// "instamojo:" serve the two channels (possibly the same row).
func parseBlock(rows [][]string, dayRow int, days []dayCell) []model.PaymentDayRecord {
	layout := layoutNone
	combinedRow := -1
	codRow := -1
	instamojoRow := -1

	for j := dayRow + 1; j <= dayRow+markerScanDepth && j < len(rows); j++ {
		if rowHasCombinedCell(rows[j]) {
			layout = layoutCombined
			combinedRow = j
			break
		}
		if codRow < 0 && rowContainsMarker(rows[j], "cod:") {
			codRow = j
		}
		if instamojoRow < 0 && rowContainsMarker(rows[j], "instamojo:") {
			instamojoRow = j
		}
	}
	if layout != layoutCombined {
		if codRow < 0 && instamojoRow < 0 {
			return nil
		}
		layout = layoutSeparate
	}

	records := make([]model.PaymentDayRecord, 0, len(days))
	for _, d := range days {
		var cod, instamojo int
		switch layout {
		case layoutCombined:
			cell := getCell(rows[combinedRow], d.col)
			cod = extractCount(reCODCount, cell)
			instamojo = extractCount(reInstamojoCount, cell)
		case layoutSeparate:
			if codRow >= 0 {
				cod = extractCount(reCODCount, getCell(rows[codRow], d.col))
			}
			if instamojoRow >= 0 {
				instamojo = extractCount(reInstamojoCount, getCell(rows[instamojoRow], d.col))
			}
		}
		records = append(records, model.PaymentDayRecord{
			Day:       d.day,
			COD:       cod,
			Instamojo: instamojo,
		})
	}
	return records
}

// rowHasCombinedCell reports whether any single cell carries both channel markers.
func rowHasCombinedCell(row []string) bool {
	for _, cell := range row {
		lower := strings.ToLower(cell)
		if strings.Contains(lower, "cod:") && strings.Contains(lower, "instamojo:") {
			return true
		}
	}
	return false
}

func rowContainsMarker(row []string, marker string) bool {
	for _, cell := range row {
		if strings.Contains(strings.ToLower(cell), marker) {
			return true
		}
	}
	return false
}

// extractCount pulls the integer capture out of a channel cell; no match is 0.
func extractCount(re *regexp.Regexp, cell string) int {
	m := re.FindStringSubmatch(cell)
	if len(m) != 2 {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

// DedupeByDay collapses duplicate day entries keeping the first occurrence
// in emission order, so an earlier block's values always win.
func DedupeByDay(records []model.PaymentDayRecord) []model.PaymentDayRecord {
	seen := make(map[int]bool, len(records))
	out := make([]model.PaymentDayRecord, 0, len(records))
	for _, r := range records {
		if r.Day < 1 || r.Day > 31 || seen[r.Day] {
			continue
		}
		seen[r.Day] = true
		out = append(out, r)
	}
	return out
}
