package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/nursingskill/backend/internal/models"
	"go.uber.org/zap"
)

// ProfileKey is the storage key of the user profile
const ProfileKey = "userProfile"

// profileRepository stores the single device profile
type profileRepository struct {
	store  KVStore
	logger *zap.Logger
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(store KVStore, logger *zap.Logger) *profileRepository {
	return &profileRepository{
		store:  store,
		logger: logger,
	}
}

// Get retrieves the stored profile.
//
// If no profile is stored, or the stored one cannot be decoded or has a blank field,
// models.ErrProfileNotFound will be returned.
func (r *profileRepository) Get(ctx context.Context) (*models.UserProfile, error) {
	data, err := r.store.Get(ctx, ProfileKey)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return nil, models.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	var profile models.UserProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		r.logger.Warn("stored profile is corrupt, ignoring it", zap.Error(err))
		return nil, models.ErrProfileNotFound
	}
	if strings.TrimSpace(profile.SchoolName) == "" || strings.TrimSpace(profile.Name) == "" || strings.TrimSpace(profile.StudentID) == "" {
		r.logger.Warn("stored profile is incomplete, ignoring it")
		return nil, models.ErrProfileNotFound
	}

	return &profile, nil
}

// Save overwrites the stored profile
func (r *profileRepository) Save(ctx context.Context, profile *models.UserProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	if err := r.store.Set(ctx, ProfileKey, data); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// Delete removes the stored profile
func (r *profileRepository) Delete(ctx context.Context) error {
	if err := r.store.Delete(ctx, ProfileKey); err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	return nil
}
