// Package report assembles the typed tables and derived metrics the
// display layer consumes. Every call re-reads the files on disk; nothing
// is cached or mutated between requests.
package report

import (
	"fmt"
	"os"

	"pantrydash/internal/locator"
	"pantrydash/internal/metrics"
	"pantrydash/internal/model"
	"pantrydash/internal/parser"
)

// Service stateless report assembler over a data root
type Service struct {
	root               string
	topProducts        int
	retentionOverrides map[model.MonthTag]float64
}

// NewService creates a report service. A nil overrides map falls back to
// the business defaults.
func NewService(root string, topProducts int, overrides map[model.MonthTag]float64) *Service {
	if topProducts <= 0 {
		topProducts = 10
	}
	if overrides == nil {
		overrides = metrics.DefaultRetentionOverrides()
	}
	return &Service{
		root:               root,
		topProducts:        topProducts,
		retentionOverrides: overrides,
	}
}

// Root returns the configured data root.
func (s *Service) Root() string {
	return s.root
}

// RootExists reports whether the data root directory is present. This is
// the only fatal condition of the whole pipeline.
func (s *Service) RootExists() bool {
	info, err := os.Stat(s.root)
	return err == nil && info.IsDir()
}

// MonthReport builds the full report for one month. Absent datasets leave
// their section nil; malformed datasets are dropped with a soft notice.
// The only error is an entirely absent data root.
func (s *Service) MonthReport(month model.MonthTag) (*model.MonthReport, error) {
	if !s.RootExists() {
		return nil, fmt.Errorf("data root %s does not exist", s.root)
	}

	r := &model.MonthReport{
		Month:   month,
		Present: make(map[model.DatasetKind]bool),
	}

	if grid, ok := s.loadGrid(r, month, model.DatasetKPI); ok {
		kpis, ok := parser.ParseKPIs(grid.Rows)
		if !ok {
			s.malformed(r, model.DatasetKPI, grid)
		} else {
			r.KPIs = metrics.EnsureRetention(kpis, month, s.retentionOverrides)
			r.Present[model.DatasetKPI] = true
			r.OldVsNew = oldVsNewSplit(r.KPIs)
		}
	}

	if grid, ok := s.loadGrid(r, month, model.DatasetItems); ok {
		products, ok := parser.ParseProducts(grid.Rows)
		if !ok {
			s.malformed(r, model.DatasetItems, grid)
		} else {
			r.Products = products
			r.TopProducts = metrics.TopProducts(products, s.topProducts)
			r.Present[model.DatasetItems] = true
		}
	}

	series := []struct {
		kind   model.DatasetKind
		header string
		dest   *[]model.TimeSeriesPoint
	}{
		{model.DatasetABV, "Average Basket Value", &r.ABV},
		{model.DatasetOrders, "Total Orders", &r.Orders},
		{model.DatasetTurnover, "Daily Turnover", &r.Turnover},
	}
	for _, sc := range series {
		grid, ok := s.loadGrid(r, month, sc.kind)
		if !ok {
			continue
		}
		points, ok := parser.ParseSeries(grid.Rows, sc.header)
		if !ok {
			s.malformed(r, sc.kind, grid)
			continue
		}
		*sc.dest = points
		r.Present[sc.kind] = true
	}

	if grid, ok := s.loadGrid(r, month, model.DatasetPurchasingGap); ok {
		gaps, ok := parser.ParseGaps(grid.Rows)
		if !ok {
			s.malformed(r, model.DatasetPurchasingGap, grid)
		} else {
			r.Gaps = gaps
			r.Present[model.DatasetPurchasingGap] = true
		}
	}

	if grid, ok := s.loadGrid(r, month, model.DatasetPaymentMethod); ok {
		r.Payments = parser.DedupeByDay(parser.ParsePaymentGrid(grid.Rows))
		r.Present[model.DatasetPaymentMethod] = true
	}

	return r, nil
}

// CombinedReport builds the cross-month aggregates over every configured
// month. Months missing a dataset are simply omitted from the affected
// aggregate, never treated as zero.
func (s *Service) CombinedReport() (*model.CombinedReport, error) {
	if !s.RootExists() {
		return nil, fmt.Errorf("data root %s does not exist", s.root)
	}

	combined := &model.CombinedReport{
		MonthlyOrders: []model.MonthOrders{},
		GapAverages:   []model.PurchasingGapRecord{},
		PaymentTotals: []model.MonthPaymentSummary{},
	}

	var allProducts []model.ProductSalesRecord
	var allGaps []model.PurchasingGapRecord

	for _, month := range model.Months() {
		if path, ok := locator.Locate(s.root, month, model.DatasetKPI); ok {
			if grid, err := parser.LoadGrid(path); err == nil {
				if kpis, ok := parser.ParseKPIs(grid.Rows); ok {
					if total, ok := metrics.LookupKPI(kpis, "total orders"); ok {
						combined.MonthlyOrders = append(combined.MonthlyOrders, model.MonthOrders{
							Month:       month,
							TotalOrders: total,
						})
					}
				}
			}
		}

		if path, ok := locator.Locate(s.root, month, model.DatasetItems); ok {
			if grid, err := parser.LoadGrid(path); err == nil {
				if products, ok := parser.ParseProducts(grid.Rows); ok {
					allProducts = append(allProducts, products...)
				}
			}
		}

		if path, ok := locator.Locate(s.root, month, model.DatasetPurchasingGap); ok {
			if grid, err := parser.LoadGrid(path); err == nil {
				if gaps, ok := parser.ParseGaps(grid.Rows); ok {
					allGaps = append(allGaps, gaps...)
				}
			}
		}

		if path, ok := locator.Locate(s.root, month, model.DatasetPaymentMethod); ok {
			if grid, err := parser.LoadGrid(path); err == nil {
				days := parser.ParsePaymentGrid(grid.Rows)
				if len(days) > 0 {
					combined.PaymentTotals = append(combined.PaymentTotals, metrics.PaymentTotals(month, days))
				}
			}
		}
	}

	combined.TopProducts = metrics.TopProducts(allProducts, s.topProducts)
	combined.GapAverages = metrics.AverageGaps(allGaps)

	return combined, nil
}

// loadGrid locates and loads one dataset. Absent files are silent;
// unreadable files produce a soft notice.
func (s *Service) loadGrid(r *model.MonthReport, month model.MonthTag, kind model.DatasetKind) (*parser.Grid, bool) {
	path, ok := locator.Locate(s.root, month, kind)
	if !ok {
		return nil, false
	}
	grid, err := parser.LoadGrid(path)
	if err != nil {
		r.Notices = append(r.Notices, fmt.Sprintf("%s: failed to read %s: %v", kind, path, err))
		return nil, false
	}
	return grid, true
}

// malformed records a soft notice naming the offending file and the id of
// the load that produced it.
func (s *Service) malformed(r *model.MonthReport, kind model.DatasetKind, grid *parser.Grid) {
	r.Notices = append(r.Notices, fmt.Sprintf("%s: expected columns missing in %s (load %s), dataset skipped", kind, grid.Path, grid.FileID))
}

// oldVsNewSplit reads the exact "new orders" / "old orders" KPI values for
// the customer-type breakdown. Nil when neither side is positive.
func oldVsNewSplit(kpis []model.KpiRecord) *model.OldVsNewSplit {
	newOrders, _ := metrics.LookupKPI(kpis, "new orders")
	oldOrders, _ := metrics.LookupKPI(kpis, "old orders")
	if newOrders <= 0 && oldOrders <= 0 {
		return nil
	}
	return &model.OldVsNewSplit{NewOrders: newOrders, OldOrders: oldOrders}
}
