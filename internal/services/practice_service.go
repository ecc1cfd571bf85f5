package services

import (
	"context"
	"math"
	"sync"

	"github.com/nursingskill/backend/internal/models"
	"go.uber.org/zap"
)

// practiceService walks through the steps of one skill at a time
type practiceService struct {
	catalog SkillCatalog
	logger  *zap.Logger

	mu              sync.Mutex
	skill           *models.NursingSkill
	index           int
	showExplanation bool
}

// NewPracticeService creates a new practice service
func NewPracticeService(catalog SkillCatalog, logger *zap.Logger) *practiceService {
	return &practiceService{
		catalog: catalog,
		logger:  logger,
	}
}

// Start selects a skill for practice and shows its first step with the explanation
func (s *practiceService) Start(ctx context.Context, skillID string) (*models.PracticeState, error) {
	skill, err := s.catalog.Skill(skillID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.skill = skill
	s.index = 0
	s.showExplanation = true
	return s.stateLocked(), nil
}

// Current returns the practice state
func (s *practiceService) Current(ctx context.Context) (*models.PracticeState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.skill == nil {
		return nil, models.ErrNoPractice
	}
	return s.stateLocked(), nil
}

// Next moves to the next step. It stays on the last step.
func (s *practiceService) Next(ctx context.Context) (*models.PracticeState, error) {
	return s.move(1)
}

// Prev moves to the previous step. It stays on the first step.
func (s *practiceService) Prev(ctx context.Context) (*models.PracticeState, error) {
	return s.move(-1)
}

// ToggleExplanation shows or hides the explanation of the current step
func (s *practiceService) ToggleExplanation(ctx context.Context) (*models.PracticeState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.skill == nil {
		return nil, models.ErrNoPractice
	}
	s.showExplanation = !s.showExplanation
	return s.stateLocked(), nil
}

// Reset forgets the practiced skill
func (s *practiceService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.skill = nil
	s.index = 0
	s.showExplanation = false
}

func (s *practiceService) move(delta int) (*models.PracticeState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.skill == nil {
		return nil, models.ErrNoPractice
	}
	s.index = max(0, min(len(s.skill.Steps)-1, s.index+delta))
	return s.stateLocked(), nil
}

func (s *practiceService) stateLocked() *models.PracticeState {
	total := len(s.skill.Steps)
	step := s.skill.Steps[s.index]
	if !s.showExplanation {
		step.Explanation = ""
		step.ImageURL = ""
	}

	return &models.PracticeState{
		SkillID:         s.skill.ID,
		SkillTitle:      s.skill.Title,
		StepIndex:       s.index,
		StepNumber:      s.index + 1,
		TotalSteps:      total,
		Progress:        int(math.Round(float64(s.index+1) / float64(total) * 100)),
		ShowExplanation: s.showExplanation,
		Step:            step,
		HasPrev:         s.index > 0,
		HasNext:         s.index < total-1,
	}
}
