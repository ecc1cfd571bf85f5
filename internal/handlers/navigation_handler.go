package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nursingskill/backend/internal/navigation"
	"go.uber.org/zap"
)

// Navigator is the interface that wraps the view state of the client.
type Navigator interface {
	// Method Current returns the active view.
	Current() navigation.View
	// Method Navigate makes view the active view and runs the exit hook of the view being left.
	Navigate(ctx context.Context, view navigation.View) navigation.View
}

// navigationRequest represents a request to change the active view
type navigationRequest struct {
	View string `json:"view"`
}

// navigationResponse represents the active view
type navigationResponse struct {
	View  string   `json:"view"`
	Views []string `json:"views"`
}

// NavigationHandler handles HTTP requests for the view state
type NavigationHandler struct {
	BaseHandler
	navigator Navigator
}

// NewNavigationHandler creates a new navigation handler
func NewNavigationHandler(navigator Navigator, logger *zap.Logger) *NavigationHandler {
	return &NavigationHandler{
		navigator:   navigator,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all navigation handler routes
func (h *NavigationHandler) RegisterRoutes(r chi.Router) {
	r.Get("/navigation", h.Get)
	r.Put("/navigation", h.Navigate)
}

// Get handles GET /api/v1/navigation
// @Summary Get active view
// @Tags navigation
// @Produce json
// @Success 200 {object} navigationResponse
// @Failure 401 {object} map[string]string
// @Router /navigation [get]
func (h *NavigationHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, newNavigationResponse(h.navigator.Current()))
}

// Navigate handles PUT /api/v1/navigation
// @Summary Change active view
// @Description Leaving the practice, video or game view stops the flow of that view
// @Tags navigation
// @Accept json
// @Produce json
// @Param request body navigationRequest true "View: home, practice, video, self_check, game or stats"
// @Success 200 {object} navigationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /navigation [put]
func (h *NavigationHandler) Navigate(w http.ResponseWriter, r *http.Request) {
	var req navigationRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	view, err := navigation.Parse(req.View)
	if err != nil {
		h.respondServiceError(w, r, err, "failed to navigate")
		return
	}

	h.respondJSON(w, http.StatusOK, newNavigationResponse(h.navigator.Navigate(r.Context(), view)))
}

func newNavigationResponse(view navigation.View) navigationResponse {
	views := navigation.Views()
	names := make([]string, 0, len(views))
	for _, v := range views {
		names = append(names, v.Name())
	}
	return navigationResponse{View: view.Name(), Views: names}
}
