package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nursingskill/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewAssessmentService(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	catalog := newTestCatalog()
	history := &mockHistoryRepository{}

	svc := NewAssessmentService(catalog, history, logger)

	assert.NotNil(t, svc)
	assert.Equal(t, catalog, svc.catalog)
	assert.Equal(t, history, svc.history)
	assert.Equal(t, logger, svc.logger)
}

func TestAssessmentService_SubmitSelfCheck(t *testing.T) {
	tests := []struct {
		name             string
		skillID          string
		marks            map[int]models.EvaluationMark
		expectedError    error
		expectedScore    int
		expectedPassed   bool
		expectedFeedback models.FeedbackLevel
	}{
		{
			name:             "all complete",
			skillID:          "vital-signs",
			marks:            map[int]models.EvaluationMark{1: 2, 2: 2, 3: 2, 4: 2},
			expectedScore:    100,
			expectedPassed:   true,
			expectedFeedback: models.FeedbackExcellent,
		},
		{
			name:             "one partial",
			skillID:          "vital-signs",
			marks:            map[int]models.EvaluationMark{1: 2, 2: 1, 3: 2, 4: 2},
			expectedScore:    88,
			expectedPassed:   true,
			expectedFeedback: models.FeedbackFair,
		},
		{
			name:             "mostly not done",
			skillID:          "vital-signs",
			marks:            map[int]models.EvaluationMark{1: 0, 2: 1, 3: 0, 4: 2},
			expectedScore:    38,
			expectedPassed:   false,
			expectedFeedback: models.FeedbackNeedsPractice,
		},
		{
			name:          "incomplete",
			skillID:       "vital-signs",
			marks:         map[int]models.EvaluationMark{1: 2, 2: 2, 3: 2},
			expectedError: models.ErrIncompleteEvaluation,
		},
		{
			name:          "invalid mark",
			skillID:       "vital-signs",
			marks:         map[int]models.EvaluationMark{1: 2, 2: 2, 3: 2, 4: 3},
			expectedError: models.ErrInvalidMark,
		},
		{
			name:          "unknown skill",
			skillID:       "unknown",
			marks:         map[int]models.EvaluationMark{1: 2},
			expectedError: models.ErrSkillNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			history := &mockHistoryRepository{}
			svc := NewAssessmentService(newTestCatalog(), history, zap.NewNop())
			svc.now = func() time.Time { return time.Date(2024, 5, 3, 10, 0, 0, 0, time.UTC) }

			result, err := svc.SubmitSelfCheck(context.Background(), tt.skillID, &models.SelfCheckRequest{Marks: tt.marks})

			if tt.expectedError != nil {
				assert.True(t, errors.Is(err, tt.expectedError))
				assert.Nil(t, result)
				assert.Equal(t, 0, history.count())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedScore, result.Record.Score)
			assert.Equal(t, tt.expectedPassed, result.Record.Passed)
			assert.Equal(t, tt.expectedFeedback, result.Feedback)
			assert.Equal(t, models.AssessmentTypeSelfCheck, result.Record.Type)
			assert.Equal(t, "활력징후 측정", result.Record.SkillTitle)
			assert.NotEmpty(t, result.Record.ID)

			require.Equal(t, 1, history.count())
			assert.Equal(t, result.Record, history.records[0])
		})
	}
}

func TestAssessmentService_SubmitSelfCheck_AppendFailure(t *testing.T) {
	history := &mockHistoryRepository{appendErr: errors.New("storage full")}
	svc := NewAssessmentService(newTestCatalog(), history, zap.NewNop())

	result, err := svc.SubmitSelfCheck(context.Background(), "suction", &models.SelfCheckRequest{
		Marks: map[int]models.EvaluationMark{1: 2, 2: 2},
	})

	require.NoError(t, err)
	assert.Equal(t, 100, result.Record.Score)
}

func TestAssessmentService_SubmitSelfCheck_NilRequest(t *testing.T) {
	svc := NewAssessmentService(newTestCatalog(), &mockHistoryRepository{}, zap.NewNop())

	_, err := svc.SubmitSelfCheck(context.Background(), "suction", nil)

	assert.True(t, errors.Is(err, models.ErrIncompleteEvaluation))
}
