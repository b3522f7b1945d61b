package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"pantrydash/internal/config"
	"pantrydash/internal/server"
)

func newTestServer(t *testing.T, root string) *server.Server {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Data.DataDir = root // absolute, resolves to itself
	return server.NewServer(cfg)
}

func saveKPIWorkbook(t *testing.T, root, month, filename string) {
	t.Helper()
	dir := filepath.Join(root, month)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	f := excelize.NewFile()
	defer f.Close()
	header := []interface{}{"KPI", "Value"}
	row2 := []interface{}{"Total Orders", 100}
	row3 := []interface{}{"Old Orders", 10}
	if err := f.SetSheetRow("Sheet1", "A1", &header); err != nil {
		t.Fatalf("SetSheetRow: %v", err)
	}
	if err := f.SetSheetRow("Sheet1", "A2", &row2); err != nil {
		t.Fatalf("SetSheetRow: %v", err)
	}
	if err := f.SetSheetRow("Sheet1", "A3", &row3); err != nil {
		t.Fatalf("SetSheetRow: %v", err)
	}
	if err := f.SaveAs(filepath.Join(dir, filename)); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
}

func TestGetStatus(t *testing.T) {
	root := t.TempDir()
	saveKPIWorkbook(t, root, "NOV", "nov_kpi.xlsx")

	srv := newTestServer(t, root)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		RootExists    bool `json:"rootExists"`
		MonthsWithDir int  `json:"monthsWithDir"`
		TotalDatasets int  `json:"totalDatasets"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !resp.RootExists || resp.MonthsWithDir != 1 || resp.TotalDatasets != 1 {
		t.Fatalf("resp=%+v", resp)
	}
}

func TestListMonths(t *testing.T) {
	root := t.TempDir()
	saveKPIWorkbook(t, root, "NOV", "nov_kpi.xlsx")
	if err := os.MkdirAll(filepath.Join(root, "DEC"), 0755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	srv := newTestServer(t, root)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/months", nil)
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Items []struct {
			Month    string   `json:"month"`
			HasDir   bool     `json:"hasDir"`
			Datasets []string `json:"datasets"`
		} `json:"items"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.Items) != 3 {
		t.Fatalf("items=%+v, want NOV/DEC/JAN", resp.Items)
	}

	nov := resp.Items[0]
	if nov.Month != "NOV" || !nov.HasDir {
		t.Fatalf("nov=%+v", nov)
	}
	if len(nov.Datasets) != 1 || nov.Datasets[0] != "kpi" {
		t.Fatalf("nov datasets=%+v, want kpi only", nov.Datasets)
	}

	dec := resp.Items[1]
	if dec.Month != "DEC" || !dec.HasDir || len(dec.Datasets) != 0 {
		t.Fatalf("dec=%+v, want empty dir with no datasets", dec)
	}

	jan := resp.Items[2]
	if jan.Month != "JAN" || jan.HasDir || len(jan.Datasets) != 0 {
		t.Fatalf("jan=%+v, want absent dir", jan)
	}
}

func TestGetMonthReport(t *testing.T) {
	root := t.TempDir()
	saveKPIWorkbook(t, root, "NOV", "nov_kpi.xlsx")

	srv := newTestServer(t, root)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reports/nov", nil)
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Month string `json:"month"`
		KPIs  []struct {
			Name  string  `json:"name"`
			Value float64 `json:"value"`
		} `json:"kpis"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Month != "NOV" {
		t.Fatalf("month=%s", resp.Month)
	}
	if len(resp.KPIs) != 3 || resp.KPIs[2].Name != "Retention Rate" || resp.KPIs[2].Value != 10.0 {
		t.Fatalf("kpis=%+v", resp.KPIs)
	}
}

func TestGetMonthReport_UnknownTag(t *testing.T) {
	srv := newTestServer(t, t.TempDir())
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reports/FEB", nil)
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400", w.Code)
	}
}

func TestGetCombinedReport_EmptyRootStillRenders(t *testing.T) {
	srv := newTestServer(t, t.TempDir())
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reports", nil)
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		MonthlyOrders []any `json:"monthlyOrders"`
		TopProducts   []any `json:"topProducts"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.MonthlyOrders) != 0 || len(resp.TopProducts) != 0 {
		t.Fatalf("resp=%+v", resp)
	}
}
