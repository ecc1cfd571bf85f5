package services

import (
	"context"
	"time"

	"github.com/nursingskill/backend/internal/models"
	"github.com/nursingskill/backend/internal/scoring"
	"go.uber.org/zap"
)

type assessmentService struct {
	catalog SkillCatalog
	history HistoryRepository
	logger  *zap.Logger
	now     func() time.Time
}

// NewAssessmentService creates a new self-check assessment service
func NewAssessmentService(catalog SkillCatalog, history HistoryRepository, logger *zap.Logger) *assessmentService {
	return &assessmentService{
		catalog: catalog,
		history: history,
		logger:  logger,
		now:     time.Now,
	}
}

// SubmitSelfCheck scores self-check marks of a skill and appends the result to the history.
//
// Every step of the skill must be marked with 0, 1 or 2. An incomplete or invalid
// submission is rejected and nothing is recorded. A failed append is logged and
// the scored result is still returned.
func (s *assessmentService) SubmitSelfCheck(ctx context.Context, skillID string, req *models.SelfCheckRequest) (*models.SelfCheckResult, error) {
	skill, err := s.catalog.Skill(skillID)
	if err != nil {
		return nil, err
	}

	var marks map[int]models.EvaluationMark
	if req != nil {
		marks = req.Marks
	}

	result, err := scoring.SelfCheck(skill.Steps, marks)
	if err != nil {
		return nil, err
	}

	record := newRecord(s.now(), result.Score, result.Passed, models.AssessmentTypeSelfCheck, skill.Title)
	if err := s.history.Append(ctx, record); err != nil {
		s.logger.Error("failed to save self-check result", zap.Error(err), zap.String("skill_id", skill.ID))
	} else {
		s.logger.Info("self-check submitted",
			zap.String("skill_id", skill.ID),
			zap.Int("score", result.Score),
			zap.Bool("passed", result.Passed))
	}

	return &models.SelfCheckResult{
		Record:   record,
		Feedback: scoring.Feedback(result.Score),
	}, nil
}
