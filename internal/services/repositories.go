package services

import (
	"context"

	"github.com/nursingskill/backend/internal/models"
)

// SkillCatalog is the interface that wraps read access to the skill catalog
type SkillCatalog interface {
	// Method Skill returns the skill with the given ID.
	//
	// If the skill does not exist, an error wrapping models.ErrSkillNotFound is returned.
	Skill(id string) (*models.NursingSkill, error)
	// Method Items returns the full item pool of the item-selection game in catalog order.
	Items() []models.GameItem
}

// HistoryRepository is the interface that wraps methods for assessment history access
type HistoryRepository interface {
	// Method Append adds a record to the end of the history.
	//
	// The history is append-only: records are never updated or removed.
	// If the underlying store fails, the error is returned and nothing is written.
	Append(ctx context.Context, record models.AssessmentRecord) error
	// Method ReadAll returns every stored record in insertion order.
	//
	// An absent or corrupt history is returned as an empty slice without an error.
	ReadAll(ctx context.Context) ([]models.AssessmentRecord, error)
}

// ProfileRepository is the interface that wraps methods for user profile access
type ProfileRepository interface {
	// Method Get returns the stored profile.
	//
	// If no profile is stored, models.ErrProfileNotFound is returned together with "nil" value.
	Get(ctx context.Context) (*models.UserProfile, error)
	// Method Save overwrites the stored profile.
	Save(ctx context.Context, profile *models.UserProfile) error
	// Method Delete removes the stored profile. Deleting an absent profile is not an error.
	Delete(ctx context.Context) error
}
