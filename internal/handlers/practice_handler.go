package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nursingskill/backend/internal/models"
	"go.uber.org/zap"
)

// PracticeService is the interface that wraps methods of the practice step walker.
type PracticeService interface {
	// Method Start selects a skill and shows its first step with the explanation.
	//
	// If the skill does not exist, an error wrapping models.ErrSkillNotFound is returned together with "nil" value.
	Start(ctx context.Context, skillID string) (*models.PracticeState, error)
	// Method Current returns the practice state.
	//
	// If no skill is selected, models.ErrNoPractice is returned together with "nil" value.
	// The same applies to Next, Prev and ToggleExplanation.
	Current(ctx context.Context) (*models.PracticeState, error)
	// Method Next moves to the next step and stays on the last one.
	Next(ctx context.Context) (*models.PracticeState, error)
	// Method Prev moves to the previous step and stays on the first one.
	Prev(ctx context.Context) (*models.PracticeState, error)
	// Method ToggleExplanation shows or hides the explanation of the current step.
	ToggleExplanation(ctx context.Context) (*models.PracticeState, error)
}

// PracticeHandler handles HTTP requests for the practice view
type PracticeHandler struct {
	BaseHandler
	service PracticeService
}

// NewPracticeHandler creates a new practice handler
func NewPracticeHandler(svc PracticeService, logger *zap.Logger) *PracticeHandler {
	return &PracticeHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all practice handler routes
func (h *PracticeHandler) RegisterRoutes(r chi.Router) {
	r.Route("/practice", func(r chi.Router) {
		r.Get("/", h.Current)
		r.Post("/next", h.Next)
		r.Post("/prev", h.Prev)
		r.Post("/explanation", h.ToggleExplanation)
		r.Post("/{skillId}", h.Start)
	})
}

// Start handles POST /api/v1/practice/{skillId}
// @Summary Start practice
// @Tags practice
// @Produce json
// @Param skillId path string true "Skill ID"
// @Success 200 {object} models.PracticeState
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /practice/{skillId} [post]
func (h *PracticeHandler) Start(w http.ResponseWriter, r *http.Request) {
	state, err := h.service.Start(r.Context(), chi.URLParam(r, "skillId"))
	h.respondState(w, r, state, err)
}

// Current handles GET /api/v1/practice
// @Summary Get practice state
// @Tags practice
// @Produce json
// @Success 200 {object} models.PracticeState
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /practice [get]
func (h *PracticeHandler) Current(w http.ResponseWriter, r *http.Request) {
	state, err := h.service.Current(r.Context())
	h.respondState(w, r, state, err)
}

// Next handles POST /api/v1/practice/next
// @Summary Next step
// @Tags practice
// @Produce json
// @Success 200 {object} models.PracticeState
// @Failure 404 {object} map[string]string
// @Router /practice/next [post]
func (h *PracticeHandler) Next(w http.ResponseWriter, r *http.Request) {
	state, err := h.service.Next(r.Context())
	h.respondState(w, r, state, err)
}

// Prev handles POST /api/v1/practice/prev
// @Summary Previous step
// @Tags practice
// @Produce json
// @Success 200 {object} models.PracticeState
// @Failure 404 {object} map[string]string
// @Router /practice/prev [post]
func (h *PracticeHandler) Prev(w http.ResponseWriter, r *http.Request) {
	state, err := h.service.Prev(r.Context())
	h.respondState(w, r, state, err)
}

// ToggleExplanation handles POST /api/v1/practice/explanation
// @Summary Toggle explanation
// @Tags practice
// @Produce json
// @Success 200 {object} models.PracticeState
// @Failure 404 {object} map[string]string
// @Router /practice/explanation [post]
func (h *PracticeHandler) ToggleExplanation(w http.ResponseWriter, r *http.Request) {
	state, err := h.service.ToggleExplanation(r.Context())
	h.respondState(w, r, state, err)
}

func (h *PracticeHandler) respondState(w http.ResponseWriter, r *http.Request, state *models.PracticeState, err error) {
	if err != nil {
		h.respondServiceError(w, r, err, "failed to update practice")
		return
	}
	h.respondJSON(w, http.StatusOK, state)
}
