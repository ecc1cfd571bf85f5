package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/nursingskill/backend/internal/models"
	"go.uber.org/zap"
)

// DashboardService is the interface that wraps read-side methods over the assessment history.
type DashboardService interface {
	// Method Get aggregates the whole history.
	//
	// An unreadable history is shown as an empty dashboard, so no error is returned for it.
	Get(ctx context.Context) (*models.Dashboard, error)
	// Method History returns every record in insertion order.
	History(ctx context.Context) ([]models.AssessmentRecord, error)
	// Method Export renders the history as "xlsx" (default) or "csv".
	//
	// If the format is unknown, models.ErrInvalidExportFormat is returned together with "nil" value.
	Export(ctx context.Context, format string) (*models.ExportFile, error)
}

// DashboardHandler handles HTTP requests for the history dashboard
type DashboardHandler struct {
	BaseHandler
	service DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(svc DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all dashboard handler routes
func (h *DashboardHandler) RegisterRoutes(r chi.Router) {
	r.Get("/history", h.History)
	r.Route("/dashboard", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Get("/export", h.Export)
	})
}

// Get handles GET /api/v1/dashboard
// @Summary Get dashboard
// @Description Best and average score, recency, attempts series and per-skill averages
// @Tags dashboard
// @Produce json
// @Success 200 {object} models.Dashboard
// @Failure 401 {object} map[string]string
// @Router /dashboard [get]
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.service.Get(r.Context())
	if err != nil {
		h.respondServiceError(w, r, err, "failed to get dashboard")
		return
	}

	h.respondJSON(w, http.StatusOK, dashboard)
}

// History handles GET /api/v1/history
// @Summary Get history
// @Tags dashboard
// @Produce json
// @Success 200 {array} models.AssessmentRecord
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /history [get]
func (h *DashboardHandler) History(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.History(r.Context())
	if err != nil {
		h.respondServiceError(w, r, err, "failed to get history")
		return
	}

	h.respondJSON(w, http.StatusOK, records)
}

// Export handles GET /api/v1/dashboard/export
// @Summary Export history
// @Description Download the history as a spreadsheet
// @Tags dashboard
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce text/csv
// @Param format query string false "File format: xlsx or csv, default: xlsx"
// @Success 200 {file} file
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /dashboard/export [get]
func (h *DashboardHandler) Export(w http.ResponseWriter, r *http.Request) {
	file, err := h.service.Export(r.Context(), r.URL.Query().Get("format"))
	if err != nil {
		h.respondServiceError(w, r, err, "failed to export history")
		return
	}

	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(file.Content)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(file.Content); err != nil {
		h.logger.Error("failed to write export", zap.Error(err))
	}
}
