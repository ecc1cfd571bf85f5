package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/nursingskill/backend/internal/models"
	"go.uber.org/zap"
)

type profileService struct {
	repo   ProfileRepository
	logger *zap.Logger

	mu       sync.Mutex
	onLogout []func(ctx context.Context)
}

// NewProfileService creates a new profile service
func NewProfileService(repo ProfileRepository, logger *zap.Logger) *profileService {
	return &profileService{
		repo:   repo,
		logger: logger,
	}
}

// OnLogout registers a function that is called after the profile is removed
func (s *profileService) OnLogout(fn func(ctx context.Context)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onLogout = append(s.onLogout, fn)
}

// Login validates and stores the profile, replacing any stored one.
//
// Fields are trimmed and non-digits are removed from the student ID.
// Every field must be non-empty afterwards.
func (s *profileService) Login(ctx context.Context, profile *models.UserProfile) (*models.UserProfile, error) {
	if profile == nil {
		return nil, models.ErrInvalidProfile
	}

	normalized := &models.UserProfile{
		SchoolName: strings.TrimSpace(profile.SchoolName),
		Name:       strings.TrimSpace(profile.Name),
		StudentID: strings.Map(func(r rune) rune {
			if r >= '0' && r <= '9' {
				return r
			}
			return -1
		}, profile.StudentID),
	}
	if normalized.SchoolName == "" || normalized.Name == "" || normalized.StudentID == "" {
		return nil, models.ErrInvalidProfile
	}

	if err := s.repo.Save(ctx, normalized); err != nil {
		s.logger.Error("failed to save profile", zap.Error(err))
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	return normalized, nil
}

// Current returns the stored profile or models.ErrProfileNotFound
func (s *profileService) Current(ctx context.Context) (*models.UserProfile, error) {
	profile, err := s.repo.Get(ctx)
	if err != nil {
		if !errors.Is(err, models.ErrProfileNotFound) {
			s.logger.Error("failed to get profile", zap.Error(err))
		}
		return nil, err
	}
	return profile, nil
}

// Logout removes the profile and runs logout hooks. The history is kept.
func (s *profileService) Logout(ctx context.Context) error {
	if err := s.repo.Delete(ctx); err != nil {
		s.logger.Error("failed to delete profile", zap.Error(err))
		return fmt.Errorf("failed to delete profile: %w", err)
	}

	s.mu.Lock()
	hooks := append([]func(ctx context.Context){}, s.onLogout...)
	s.mu.Unlock()

	for _, hook := range hooks {
		hook(ctx)
	}
	return nil
}
