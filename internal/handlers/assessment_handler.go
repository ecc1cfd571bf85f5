package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nursingskill/backend/internal/middlewares"
	"github.com/nursingskill/backend/internal/models"
	"go.uber.org/zap"
)

// AssessmentService is the interface that wraps self-check submission.
type AssessmentService interface {
	// Method SubmitSelfCheck scores the marks of every step of a skill and appends a SELF_CHECK record.
	//
	// If a step is not marked, an error wrapping models.ErrIncompleteEvaluation is returned and nothing is recorded.
	// Marks for unknown steps or values other than 0, 1 and 2 are rejected with models.ErrInvalidMark.
	SubmitSelfCheck(ctx context.Context, skillID string, req *models.SelfCheckRequest) (*models.SelfCheckResult, error)
}

// AssessmentHandler handles HTTP requests for self-checks
type AssessmentHandler struct {
	BaseHandler
	service AssessmentService
}

// NewAssessmentHandler creates a new assessment handler
func NewAssessmentHandler(svc AssessmentService, logger *zap.Logger) *AssessmentHandler {
	return &AssessmentHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all assessment handler routes
func (h *AssessmentHandler) RegisterRoutes(r chi.Router) {
	r.Post("/self-checks/{skillId}", h.SubmitSelfCheck)
}

// SubmitSelfCheck handles POST /api/v1/self-checks/{skillId}
// @Summary Submit self-check
// @Description Score self-check marks (0 - not done, 1 - partial, 2 - complete) keyed by step ID
// @Tags self-checks
// @Accept json
// @Produce json
// @Param skillId path string true "Skill ID"
// @Param request body models.SelfCheckRequest true "Marks"
// @Success 201 {object} models.SelfCheckResult
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /self-checks/{skillId} [post]
func (h *AssessmentHandler) SubmitSelfCheck(w http.ResponseWriter, r *http.Request) {
	var req models.SelfCheckRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	result, err := h.service.SubmitSelfCheck(r.Context(), chi.URLParam(r, "skillId"), &req)
	if err != nil {
		h.respondServiceError(w, r, err, "failed to submit self-check")
		return
	}

	if profile := middlewares.GetProfile(r.Context()); profile != nil {
		h.logger.Info("self-check submitted",
			zap.String("student_id", profile.StudentID),
			zap.String("skill_id", chi.URLParam(r, "skillId")),
			zap.Int("score", result.Record.Score))
	}

	h.respondJSON(w, http.StatusCreated, result)
}
