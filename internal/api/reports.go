package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pantrydash/internal/model"
)

// GetMonthReport builds the full report for one month.
// GET /api/reports/:month
func (h *Handler) GetMonthReport(c *gin.Context) {
	month, ok := model.ParseMonth(c.Param("month"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown month tag"})
		return
	}

	report, err := h.reports.MonthReport(month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetCombinedReport builds the cross-month aggregates for the ALL view.
// GET /api/reports
func (h *Handler) GetCombinedReport(c *gin.Context) {
	report, err := h.reports.CombinedReport()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}
