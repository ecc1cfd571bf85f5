package services

import (
	"context"
	"errors"
	"testing"

	"github.com/nursingskill/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPracticeService_Walk(t *testing.T) {
	svc := NewPracticeService(newTestCatalog(), zap.NewNop())
	ctx := context.Background()

	state, err := svc.Start(ctx, "vital-signs")
	require.NoError(t, err)
	assert.Equal(t, 0, state.StepIndex)
	assert.Equal(t, 1, state.StepNumber)
	assert.Equal(t, 4, state.TotalSteps)
	assert.Equal(t, 25, state.Progress)
	assert.True(t, state.ShowExplanation)
	assert.Equal(t, "감염 예방", state.Step.Explanation)
	assert.Equal(t, "/img/1.png", state.Step.ImageURL)
	assert.False(t, state.HasPrev)
	assert.True(t, state.HasNext)

	state, err = svc.Prev(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, state.StepIndex)

	for range 5 {
		state, err = svc.Next(ctx)
		require.NoError(t, err)
	}
	assert.Equal(t, 3, state.StepIndex)
	assert.Equal(t, 100, state.Progress)
	assert.False(t, state.HasNext)
	assert.True(t, state.HasPrev)

	state, err = svc.Prev(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, state.StepIndex)
	assert.Equal(t, "체온 측정", state.Step.Instruction)
}

func TestPracticeService_ToggleExplanation(t *testing.T) {
	svc := NewPracticeService(newTestCatalog(), zap.NewNop())
	ctx := context.Background()

	_, err := svc.Start(ctx, "vital-signs")
	require.NoError(t, err)

	state, err := svc.ToggleExplanation(ctx)
	require.NoError(t, err)
	assert.False(t, state.ShowExplanation)
	assert.Empty(t, state.Step.Explanation)
	assert.Empty(t, state.Step.ImageURL)
	assert.Equal(t, "손 위생", state.Step.Instruction)

	// The explanation setting is kept while walking
	state, err = svc.Next(ctx)
	require.NoError(t, err)
	assert.False(t, state.ShowExplanation)

	// Selecting a skill shows the explanation again
	state, err = svc.Start(ctx, "suction")
	require.NoError(t, err)
	assert.True(t, state.ShowExplanation)
	assert.Equal(t, 0, state.StepIndex)
}

func TestPracticeService_Errors(t *testing.T) {
	svc := NewPracticeService(newTestCatalog(), zap.NewNop())
	ctx := context.Background()

	_, err := svc.Start(ctx, "unknown")
	assert.True(t, errors.Is(err, models.ErrSkillNotFound))

	_, err = svc.Current(ctx)
	assert.True(t, errors.Is(err, models.ErrNoPractice))
	_, err = svc.Next(ctx)
	assert.True(t, errors.Is(err, models.ErrNoPractice))
	_, err = svc.ToggleExplanation(ctx)
	assert.True(t, errors.Is(err, models.ErrNoPractice))

	_, err = svc.Start(ctx, "suction")
	require.NoError(t, err)
	svc.Reset()
	_, err = svc.Current(ctx)
	assert.True(t, errors.Is(err, models.ErrNoPractice))
}
