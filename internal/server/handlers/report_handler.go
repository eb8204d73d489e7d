package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pedrocontreras2007/floricoop/internal/service/reports"
	"github.com/pedrocontreras2007/floricoop/internal/service/store"
)

// ReportHandler serves the derived-view endpoints under /api/reports.
type ReportHandler struct {
	store  *store.Store
	logger *zap.Logger
}

// NewReportHandler constructs the reports HTTP adapter.
func NewReportHandler(dataStore *store.Store, logger *zap.Logger) *ReportHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportHandler{store: dataStore, logger: logger}
}

// Dashboard returns the dashboard summary aggregates.
func (h *ReportHandler) Dashboard(c *gin.Context) {
	respond(c, http.StatusOK, reports.BuildDashboardSummary(h.store.Harvests(), h.store.Inventory()))
}

// Inventory returns the reports-screen aggregates.
func (h *ReportHandler) Inventory(c *gin.Context) {
	respond(c, http.StatusOK, reports.BuildInventoryReport(h.store.Inventory(), h.store.Harvests()))
}

// StockAlerts returns the merged stock-alert list.
func (h *ReportHandler) StockAlerts(c *gin.Context) {
	respond(c, http.StatusOK, reports.BuildStockAlerts(h.store.Inventory(), h.store.Harvests()))
}

// Calendar returns the reminder calendar for the requested month
// (?month=2024-01, defaults to the current month).
func (h *ReportHandler) Calendar(c *gin.Context) {
	now := time.Now()
	month := now
	if raw := c.Query("month"); raw != "" {
		parsed, err := time.Parse("2006-01", raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, "month must look like 2006-01")
			return
		}
		month = parsed
	}
	respond(c, http.StatusOK, reports.BuildCalendar(month, now, h.store.Reminders()))
}
