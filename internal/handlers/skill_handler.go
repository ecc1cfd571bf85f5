package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nursingskill/backend/internal/models"
	"go.uber.org/zap"
)

// SkillCatalog is the interface that wraps read access to the skill catalog.
type SkillCatalog interface {
	// Method SkillList returns short descriptions of every skill in catalog order.
	SkillList() []models.SkillListItem
	// Method Skill returns the skill with all its steps.
	//
	// If the skill does not exist, an error wrapping models.ErrSkillNotFound is returned together with "nil" value.
	Skill(id string) (*models.NursingSkill, error)
	// Method Items returns the item pool of the item-selection game.
	Items() []models.GameItem
}

// SkillHandler handles HTTP requests for the skill catalog
type SkillHandler struct {
	BaseHandler
	catalog SkillCatalog
}

// NewSkillHandler creates a new skill handler
func NewSkillHandler(catalog SkillCatalog, logger *zap.Logger) *SkillHandler {
	return &SkillHandler{
		catalog:     catalog,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all skill handler routes
func (h *SkillHandler) RegisterRoutes(r chi.Router) {
	r.Route("/skills", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/{id}", h.GetByID)
	})
	r.Get("/items", h.Items)
}

// List handles GET /api/v1/skills
// @Summary List skills
// @Description Get short descriptions of all nursing skills
// @Tags skills
// @Produce json
// @Success 200 {array} models.SkillListItem
// @Router /skills [get]
func (h *SkillHandler) List(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.catalog.SkillList())
}

// GetByID handles GET /api/v1/skills/{id}
// @Summary Get skill
// @Description Get a nursing skill with all its steps and required items
// @Tags skills
// @Produce json
// @Param id path string true "Skill ID"
// @Success 200 {object} models.NursingSkill
// @Failure 404 {object} map[string]string
// @Router /skills/{id} [get]
func (h *SkillHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	skill, err := h.catalog.Skill(chi.URLParam(r, "id"))
	if err != nil {
		h.respondServiceError(w, r, err, "failed to get skill")
		return
	}

	h.respondJSON(w, http.StatusOK, skill)
}

// Items handles GET /api/v1/items
// @Summary List game items
// @Description Get the item pool of the item-selection game
// @Tags skills
// @Produce json
// @Success 200 {array} models.GameItem
// @Router /items [get]
func (h *SkillHandler) Items(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.catalog.Items())
}
