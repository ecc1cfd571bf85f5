package services

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"github.com/nursingskill/backend/internal/models"
	"github.com/nursingskill/backend/internal/scoring"
	"go.uber.org/zap"
)

const (
	// DefaultItemTimeLimit is the time limit of the item-selection game
	DefaultItemTimeLimit = 45 * time.Second
	// DefaultOrderTimeLimit is the time limit of the ordering game
	DefaultOrderTimeLimit = 120 * time.Second
)

// gameService runs the single active mini-game.
//
// Starting a game replaces the previous one. A finished game stays readable
// until the next Start or Abandon.
type gameService struct {
	catalog    SkillCatalog
	history    HistoryRepository
	logger     *zap.Logger
	itemLimit  time.Duration
	orderLimit time.Duration
	tick       time.Duration
	now        func() time.Time
	shuffle    func(steps []models.OrderStep)
	onEnter    func(ctx context.Context)

	mu        sync.Mutex
	session   *models.GameSession
	skill     *models.NursingSkill
	countdown *Countdown
}

// NewGameService creates a new game service.
//
// Non-positive limits fall back to DefaultItemTimeLimit and DefaultOrderTimeLimit.
func NewGameService(catalog SkillCatalog, history HistoryRepository, itemLimit, orderLimit time.Duration, logger *zap.Logger) *gameService {
	if itemLimit <= 0 {
		itemLimit = DefaultItemTimeLimit
	}
	if orderLimit <= 0 {
		orderLimit = DefaultOrderTimeLimit
	}

	return &gameService{
		catalog:    catalog,
		history:    history,
		logger:     logger,
		itemLimit:  itemLimit,
		orderLimit: orderLimit,
		tick:       time.Second,
		now:        time.Now,
		shuffle: func(steps []models.OrderStep) {
			rand.Shuffle(len(steps), func(i, j int) {
				steps[i], steps[j] = steps[j], steps[i]
			})
		},
	}
}

// OnEnter registers a function that runs before a game starts, outside the service lock.
// It makes the game view active so that leaving the view abandons the game.
// Must be called before the service is used.
func (s *gameService) OnEnter(fn func(ctx context.Context)) {
	s.onEnter = fn
}

// Start starts a new game of the given kind for a skill.
//
// kindParam must be either "items" or "order". A running game is stopped
// without being recorded.
func (s *gameService) Start(ctx context.Context, kindParam, skillID string) (*models.GameSession, error) {
	kind := models.GameKind(kindParam)
	if kind != models.GameKindItems && kind != models.GameKindOrder {
		return nil, models.ErrInvalidGameKind
	}

	skill, err := s.catalog.Skill(skillID)
	if err != nil {
		return nil, err
	}

	if s.onEnter != nil {
		s.onEnter(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLocked()

	session := &models.GameSession{
		ID:        newID(),
		Kind:      kind,
		SkillID:   skill.ID,
		State:     models.GameStatePlaying,
		StartedAt: s.now().UTC(),
	}

	limit := s.itemLimit
	if kind == models.GameKindItems {
		session.Items = slices.Clone(s.catalog.Items())
		session.SelectedItemIDs = []string{}
	} else {
		limit = s.orderLimit
		session.Pool = make([]models.OrderStep, 0, len(skill.Steps))
		for _, step := range skill.Steps {
			session.Pool = append(session.Pool, models.OrderStep{ID: step.ID, Text: step.Instruction})
		}
		s.shuffle(session.Pool)
		session.Answer = []models.OrderStep{}
	}

	seconds := int(limit / time.Second)
	session.TimeLeft = seconds

	sessionID := session.ID
	s.session = session
	s.skill = skill
	s.countdown = NewCountdown(seconds, s.tick, func() { s.expire(sessionID) })
	s.countdown.Start()

	s.logger.Debug("game started",
		zap.String("game_id", session.ID),
		zap.String("kind", string(kind)),
		zap.String("skill_id", skill.ID),
		zap.Int("time_limit", seconds))

	return s.snapshotLocked(), nil
}

// Current returns the active game with the time left
func (s *gameService) Current(ctx context.Context) (*models.GameSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil, models.ErrNoActiveGame
	}
	return s.snapshotLocked(), nil
}

// ToggleItem selects or deselects an item of the item-selection game
func (s *gameService) ToggleItem(ctx context.Context, itemID string) (*models.GameSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requirePlayingLocked(models.GameKindItems); err != nil {
		return nil, err
	}

	if !slices.ContainsFunc(s.session.Items, func(item models.GameItem) bool { return item.ID == itemID }) {
		return nil, fmt.Errorf("%w: %s", models.ErrInvalidItem, itemID)
	}

	if i := slices.Index(s.session.SelectedItemIDs, itemID); i >= 0 {
		s.session.SelectedItemIDs = slices.Delete(s.session.SelectedItemIDs, i, i+1)
	} else {
		s.session.SelectedItemIDs = append(s.session.SelectedItemIDs, itemID)
	}

	return s.snapshotLocked(), nil
}

// PlaceStep moves a step from the pool to the end of the answer
func (s *gameService) PlaceStep(ctx context.Context, stepID int) (*models.GameSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requirePlayingLocked(models.GameKindOrder); err != nil {
		return nil, err
	}

	var ok bool
	s.session.Pool, s.session.Answer, ok = moveStep(s.session.Pool, s.session.Answer, stepID)
	if !ok {
		return nil, fmt.Errorf("%w: step %d is not in the pool", models.ErrInvalidStep, stepID)
	}

	return s.snapshotLocked(), nil
}

// UnplaceStep returns a step from the answer to the end of the pool
func (s *gameService) UnplaceStep(ctx context.Context, stepID int) (*models.GameSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requirePlayingLocked(models.GameKindOrder); err != nil {
		return nil, err
	}

	var ok bool
	s.session.Answer, s.session.Pool, ok = moveStep(s.session.Answer, s.session.Pool, stepID)
	if !ok {
		return nil, fmt.Errorf("%w: step %d is not in the answer", models.ErrInvalidStep, stepID)
	}

	return s.snapshotLocked(), nil
}

// Submit scores the active game and appends the result to the history
func (s *gameService) Submit(ctx context.Context) (*models.GameSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil, models.ErrNoActiveGame
	}
	if s.session.State != models.GameStatePlaying {
		return nil, models.ErrGameFinished
	}

	var result scoring.Result
	if s.session.Kind == models.GameKindItems {
		result = scoring.ItemSelection(s.session.Items, s.skill.RequiredItems, s.session.SelectedItemIDs)
	} else {
		answer := make([]int, 0, len(s.session.Answer))
		for _, step := range s.session.Answer {
			answer = append(answer, step.ID)
		}
		result = scoring.Ordering(answer, len(s.session.Pool))
	}

	s.finishLocked(ctx, result)
	return s.snapshotLocked(), nil
}

// Abandon stops the active game without recording it
func (s *gameService) Abandon() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session != nil && s.session.State == models.GameStatePlaying {
		s.logger.Debug("game abandoned", zap.String("game_id", s.session.ID))
	}
	s.stopLocked()
	s.session = nil
	s.skill = nil
}

// expire finishes the game with the given ID when its countdown reaches zero
func (s *gameService) expire(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil || s.session.ID != sessionID || s.session.State != models.GameStatePlaying {
		return
	}

	s.session.Expired = true
	s.finishLocked(context.Background(), scoring.Expired())
}

// finishLocked stops the countdown, stores the result and appends the record.
// A failed append is logged and the game still finishes.
func (s *gameService) finishLocked(ctx context.Context, result scoring.Result) {
	if s.countdown != nil {
		s.session.TimeLeft = s.countdown.Remaining()
	}
	if s.session.Expired {
		s.session.TimeLeft = 0
	}
	s.stopLocked()

	record := newRecord(s.now(), result.Score, result.Passed, s.session.Kind.AssessmentType(), s.skill.Title)
	s.session.State = result.State
	s.session.Score = result.Score
	s.session.Record = &record

	if err := s.history.Append(ctx, record); err != nil {
		s.logger.Error("failed to save game result", zap.Error(err), zap.String("game_id", s.session.ID))
		return
	}

	s.logger.Info("game finished",
		zap.String("game_id", s.session.ID),
		zap.String("state", string(result.State)),
		zap.Int("score", result.Score),
		zap.Bool("expired", s.session.Expired))
}

func (s *gameService) stopLocked() {
	if s.countdown != nil {
		s.countdown.Stop()
		s.countdown = nil
	}
}

func (s *gameService) requirePlayingLocked(kind models.GameKind) error {
	if s.session == nil {
		return models.ErrNoActiveGame
	}
	if s.session.State != models.GameStatePlaying {
		return models.ErrGameFinished
	}
	if s.session.Kind != kind {
		return fmt.Errorf("%w: active game is %s", models.ErrInvalidGameKind, s.session.Kind)
	}
	return nil
}

// snapshotLocked returns a copy of the session that is safe to use after unlocking
func (s *gameService) snapshotLocked() *models.GameSession {
	session := *s.session
	session.Items = slices.Clone(s.session.Items)
	session.SelectedItemIDs = slices.Clone(s.session.SelectedItemIDs)
	session.Pool = slices.Clone(s.session.Pool)
	session.Answer = slices.Clone(s.session.Answer)
	if s.session.Record != nil {
		record := *s.session.Record
		session.Record = &record
	}
	if session.State == models.GameStatePlaying && s.countdown != nil {
		session.TimeLeft = s.countdown.Remaining()
	}
	return &session
}

// moveStep moves the step with the given ID from one list to the end of another
func moveStep(from, to []models.OrderStep, stepID int) ([]models.OrderStep, []models.OrderStep, bool) {
	i := slices.IndexFunc(from, func(step models.OrderStep) bool { return step.ID == stepID })
	if i < 0 {
		return from, to, false
	}
	step := from[i]
	return slices.Delete(from, i, i+1), append(to, step), true
}
