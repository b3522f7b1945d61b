package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pantrydash/internal/locator"
	"pantrydash/internal/model"
)

// MonthStatus one reporting period with its located datasets
type MonthStatus struct {
	Month    model.MonthTag      `json:"month"`
	HasDir   bool                `json:"hasDir"`
	Datasets []model.DatasetKind `json:"datasets"`
}

type monthsResponse struct {
	Items []MonthStatus `json:"items"`
}

// ListMonths lists the reporting periods in calendar order with per-kind
// dataset availability. Feeds the month selector of the display layer.
// GET /api/months
func (h *Handler) ListMonths(c *gin.Context) {
	root := h.reports.Root()

	items := make([]MonthStatus, 0, len(model.Months()))
	for _, month := range model.Months() {
		status := MonthStatus{
			Month:    month,
			HasDir:   locator.MonthDirExists(root, month),
			Datasets: []model.DatasetKind{},
		}
		found := locator.Available(root, month)
		for _, kind := range model.DatasetKinds() {
			if _, ok := found[kind]; ok {
				status.Datasets = append(status.Datasets, kind)
			}
		}
		items = append(items, status)
	}

	c.JSON(http.StatusOK, monthsResponse{Items: items})
}
