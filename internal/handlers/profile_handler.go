package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nursingskill/backend/internal/models"
	"go.uber.org/zap"
)

// ProfileService is the interface that wraps methods for the local user profile.
type ProfileService interface {
	// Method Login validates and stores the profile, replacing the stored one.
	//
	// Fields are trimmed and non-digits are removed from the student ID.
	// If any field is empty afterwards, models.ErrInvalidProfile is returned together with "nil" value.
	Login(ctx context.Context, profile *models.UserProfile) (*models.UserProfile, error)
	// Method Current returns the stored profile.
	//
	// If no profile is stored, models.ErrProfileNotFound is returned together with "nil" value.
	Current(ctx context.Context) (*models.UserProfile, error)
	// Method Logout removes the profile and stops every running flow. The history is kept.
	Logout(ctx context.Context) error
}

// ProfileHandler handles HTTP requests for the user profile
type ProfileHandler struct {
	BaseHandler
	service ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(svc ProfileService, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all profile handler routes
func (h *ProfileHandler) RegisterRoutes(r chi.Router) {
	r.Route("/profile", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Put("/", h.Login)
		r.Delete("/", h.Logout)
	})
}

// Get handles GET /api/v1/profile
// @Summary Get profile
// @Description Get the stored profile. 404 means onboarding has to be shown.
// @Tags profile
// @Produce json
// @Success 200 {object} models.UserProfile
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /profile [get]
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	profile, err := h.service.Current(r.Context())
	if err != nil {
		h.respondServiceError(w, r, err, "failed to get profile")
		return
	}

	h.respondJSON(w, http.StatusOK, profile)
}

// Login handles PUT /api/v1/profile
// @Summary Enter profile
// @Description Store the school name, student ID and name of the user
// @Tags profile
// @Accept json
// @Produce json
// @Param profile body models.UserProfile true "Profile"
// @Success 200 {object} models.UserProfile
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /profile [put]
func (h *ProfileHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.UserProfile
	if !h.decodeJSON(w, r, &req) {
		return
	}

	profile, err := h.service.Login(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, r, err, "failed to save profile")
		return
	}

	h.respondJSON(w, http.StatusOK, profile)
}

// Logout handles DELETE /api/v1/profile
// @Summary Log out
// @Description Remove the profile, stop running flows and discard recordings. The history is kept.
// @Tags profile
// @Success 204
// @Failure 500 {object} map[string]string
// @Router /profile [delete]
func (h *ProfileHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Logout(r.Context()); err != nil {
		h.respondServiceError(w, r, err, "failed to log out")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
