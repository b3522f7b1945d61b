package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pantrydash/internal/locator"
	"pantrydash/internal/model"
)

// StatusResponse system status
type StatusResponse struct {
	DataRoot      string `json:"dataRoot"`
	RootExists    bool   `json:"rootExists"`
	Months        int    `json:"months"`        // configured reporting periods
	MonthsWithDir int    `json:"monthsWithDir"` // month folders present on disk
	TotalDatasets int    `json:"totalDatasets"` // dataset files located across all months
}

// GetStatus reports the data root state and how much data was found.
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	root := h.reports.Root()

	resp := StatusResponse{
		DataRoot:   root,
		RootExists: h.reports.RootExists(),
		Months:     len(model.Months()),
	}

	if resp.RootExists {
		for _, month := range model.Months() {
			if locator.MonthDirExists(root, month) {
				resp.MonthsWithDir++
			}
			resp.TotalDatasets += len(locator.Available(root, month))
		}
	}

	c.JSON(http.StatusOK, resp)
}
