package api

import (
	"github.com/gin-gonic/gin"

	"pantrydash/internal/report"
)

// Handler dashboard API handler
type Handler struct {
	reports *report.Service
}

// NewHandler creates the API handler over a report service.
func NewHandler(reports *report.Service) *Handler {
	return &Handler{reports: reports}
}

// RegisterRoutes registers the dashboard API routes.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// system status
	router.GET("/status", h.GetStatus)
	// available months and their datasets
	router.GET("/months", h.ListMonths)

	// reports: the bare path is the combined ALL view
	router.GET("/reports", h.GetCombinedReport)
	router.GET("/reports/:month", h.GetMonthReport)
}
