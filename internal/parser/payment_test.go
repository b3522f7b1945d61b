package parser

import "testing"

func TestParsePaymentGrid_CombinedCells(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"Mon", "Tue", "Wed"},
		{"1", "2", "3"},
		{"COD: 12 / Instamojo: 4", "COD: 8 / Instamojo: 2", "cod: 5 / instamojo: 0"},
	}
	records := ParsePaymentGrid(rows)
	if len(records) != 3 {
		t.Fatalf("len=%d, want 3: %+v", len(records), records)
	}
	if records[0].Day != 1 || records[0].COD != 12 || records[0].Instamojo != 4 {
		t.Fatalf("records[0]=%+v", records[0])
	}
	if records[2].Day != 3 || records[2].COD != 5 || records[2].Instamojo != 0 {
		t.Fatalf("records[2]=%+v", records[2])
	}
}

func TestParsePaymentGrid_SeparateRows(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"4", "5"},
		{"COD: 7", "COD: 9"},
		{"Instamojo: 1", "Instamojo: 3"},
	}
	records := ParsePaymentGrid(rows)
	if len(records) != 2 {
		t.Fatalf("len=%d, want 2", len(records))
	}
	if records[0].COD != 7 || records[0].Instamojo != 1 {
		t.Fatalf("records[0]=%+v", records[0])
	}
	if records[1].COD != 9 || records[1].Instamojo != 3 {
		t.Fatalf("records[1]=%+v", records[1])
	}
}

func TestParsePaymentGrid_CombinedWinsOverEarlierSeparate(t *testing.T) {
	t.Parallel()

	// a separate COD row sits above the combined row; combined must win
	rows := [][]string{
		{"10"},
		{"COD: 1"},
		{"COD: 12 Instamojo: 4"},
	}
	records := ParsePaymentGrid(rows)
	if len(records) != 1 {
		t.Fatalf("len=%d, want 1", len(records))
	}
	if records[0].COD != 12 || records[0].Instamojo != 4 {
		t.Fatalf("combined layout must take priority: %+v", records[0])
	}
}

func TestParsePaymentGrid_CODOnlyDefaultsInstamojo(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"6", "7"},
		{"COD: 2", ""},
	}
	records := ParsePaymentGrid(rows)
	if len(records) != 2 {
		t.Fatalf("len=%d, want 2", len(records))
	}
	if records[0].COD != 2 || records[0].Instamojo != 0 {
		t.Fatalf("records[0]=%+v", records[0])
	}
	// day 7 has no count in its column; both default to 0
	if records[1].COD != 0 || records[1].Instamojo != 0 {
		t.Fatalf("records[1]=%+v", records[1])
	}
}

func TestParsePaymentGrid_NoMarkersEmitsNothing(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"1", "2", "3"},
		{"some note", "", ""},
	}
	if records := ParsePaymentGrid(rows); len(records) != 0 {
		t.Fatalf("block without channel rows must emit nothing: %+v", records)
	}
}

func TestParsePaymentGrid_MarkersBeyondScanDepth(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"5"},
		{""},
		{""},
		{""},
		{""},
		{"COD: 3"}, // fifth row below the day row, outside the scan window
	}
	if records := ParsePaymentGrid(rows); len(records) != 0 {
		t.Fatalf("markers outside the 4-row window must be ignored: %+v", records)
	}
}

func TestParsePaymentGrid_DayRangeAndCoercion(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"0", "32", "15.0", "abc", "31"},
		{"COD: 1 Instamojo: 1", "COD: 2 Instamojo: 2", "COD: 3 Instamojo: 3", "COD: 4 Instamojo: 4", "COD: 5 Instamojo: 5"},
	}
	records := ParsePaymentGrid(rows)
	if len(records) != 2 {
		t.Fatalf("len=%d, want 2 (only 15 and 31 are days): %+v", len(records), records)
	}
	if records[0].Day != 15 || records[0].COD != 3 {
		t.Fatalf("records[0]=%+v", records[0])
	}
	if records[1].Day != 31 || records[1].COD != 5 {
		t.Fatalf("records[1]=%+v", records[1])
	}
}

func TestDedupeByDay_FirstBlockWins(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"5"},
		{"COD: 10 Instamojo: 1"},
		{""},
		{""},
		{""},
		{"5"},
		{"COD: 99 Instamojo: 99"},
	}
	records := DedupeByDay(ParsePaymentGrid(rows))
	if len(records) != 1 {
		t.Fatalf("len=%d, want 1", len(records))
	}
	if records[0].COD != 10 || records[0].Instamojo != 1 {
		t.Fatalf("first block's values must win: %+v", records[0])
	}
}
