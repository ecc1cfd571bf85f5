package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nursingskill/backend/internal/models"
	"go.uber.org/zap"
)

// GameService is the interface that wraps methods of the mini-games.
type GameService interface {
	// Method Start starts a game of kind "items" or "order" for a skill, replacing any running game.
	//
	// If the kind is unknown, models.ErrInvalidGameKind is returned; if the skill does not exist,
	// an error wrapping models.ErrSkillNotFound is returned.
	Start(ctx context.Context, kind, skillID string) (*models.GameSession, error)
	// Method Current returns the active game with the time left.
	//
	// If no game was started, models.ErrNoActiveGame is returned together with "nil" value.
	Current(ctx context.Context) (*models.GameSession, error)
	// Method ToggleItem selects or deselects an item of the item-selection game.
	//
	// Moves on a finished game return models.ErrGameFinished. The same applies to PlaceStep and UnplaceStep.
	ToggleItem(ctx context.Context, itemID string) (*models.GameSession, error)
	// Method PlaceStep moves a step from the pool to the end of the answer.
	PlaceStep(ctx context.Context, stepID int) (*models.GameSession, error)
	// Method UnplaceStep returns a step from the answer to the pool.
	UnplaceStep(ctx context.Context, stepID int) (*models.GameSession, error)
	// Method Submit scores the game and appends the record to the history.
	Submit(ctx context.Context) (*models.GameSession, error)
}

// GameHandler handles HTTP requests for the mini-games
type GameHandler struct {
	BaseHandler
	service GameService
}

// NewGameHandler creates a new game handler
func NewGameHandler(svc GameService, logger *zap.Logger) *GameHandler {
	return &GameHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all game handler routes
func (h *GameHandler) RegisterRoutes(r chi.Router) {
	r.Route("/games", func(r chi.Router) {
		r.Route("/current", func(r chi.Router) {
			r.Get("/", h.Current)
			r.Post("/items/{itemId}", h.ToggleItem)
			r.Post("/steps/{stepId}", h.PlaceStep)
			r.Delete("/steps/{stepId}", h.UnplaceStep)
			r.Post("/submit", h.Submit)
		})
		r.Post("/{kind}/{skillId}", h.Start)
	})
}

// Start handles POST /api/v1/games/{kind}/{skillId}
// @Summary Start game
// @Description Start an item-selection (items, 45s) or ordering (order, 120s) game
// @Tags games
// @Produce json
// @Param kind path string true "Game kind: items or order"
// @Param skillId path string true "Skill ID"
// @Success 201 {object} models.GameSession
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /games/{kind}/{skillId} [post]
func (h *GameHandler) Start(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.Start(r.Context(), chi.URLParam(r, "kind"), chi.URLParam(r, "skillId"))
	if err != nil {
		h.respondServiceError(w, r, err, "failed to start game")
		return
	}

	h.respondJSON(w, http.StatusCreated, session)
}

// Current handles GET /api/v1/games/current
// @Summary Get active game
// @Tags games
// @Produce json
// @Success 200 {object} models.GameSession
// @Failure 404 {object} map[string]string
// @Router /games/current [get]
func (h *GameHandler) Current(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.Current(r.Context())
	h.respondSession(w, r, session, err)
}

// ToggleItem handles POST /api/v1/games/current/items/{itemId}
// @Summary Toggle item
// @Tags games
// @Produce json
// @Param itemId path string true "Item ID"
// @Success 200 {object} models.GameSession
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /games/current/items/{itemId} [post]
func (h *GameHandler) ToggleItem(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.ToggleItem(r.Context(), chi.URLParam(r, "itemId"))
	h.respondSession(w, r, session, err)
}

// PlaceStep handles POST /api/v1/games/current/steps/{stepId}
// @Summary Place step
// @Tags games
// @Produce json
// @Param stepId path int true "Step ID"
// @Success 200 {object} models.GameSession
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /games/current/steps/{stepId} [post]
func (h *GameHandler) PlaceStep(w http.ResponseWriter, r *http.Request) {
	stepID, ok := h.intParam(w, r, "stepId")
	if !ok {
		return
	}
	session, err := h.service.PlaceStep(r.Context(), stepID)
	h.respondSession(w, r, session, err)
}

// UnplaceStep handles DELETE /api/v1/games/current/steps/{stepId}
// @Summary Unplace step
// @Tags games
// @Produce json
// @Param stepId path int true "Step ID"
// @Success 200 {object} models.GameSession
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /games/current/steps/{stepId} [delete]
func (h *GameHandler) UnplaceStep(w http.ResponseWriter, r *http.Request) {
	stepID, ok := h.intParam(w, r, "stepId")
	if !ok {
		return
	}
	session, err := h.service.UnplaceStep(r.Context(), stepID)
	h.respondSession(w, r, session, err)
}

// Submit handles POST /api/v1/games/current/submit
// @Summary Submit game
// @Tags games
// @Produce json
// @Success 200 {object} models.GameSession
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /games/current/submit [post]
func (h *GameHandler) Submit(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.Submit(r.Context())
	h.respondSession(w, r, session, err)
}

func (h *GameHandler) respondSession(w http.ResponseWriter, r *http.Request, session *models.GameSession, err error) {
	if err != nil {
		h.respondServiceError(w, r, err, "failed to update game")
		return
	}
	h.respondJSON(w, http.StatusOK, session)
}
