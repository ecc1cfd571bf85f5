// Package scoring converts raw answers of one finished attempt into a score and a verdict.
//
// All functions are pure: they neither read the clock nor touch the history.
package scoring

import (
	"fmt"
	"math"

	"github.com/nursingskill/backend/internal/models"
)

const (
	// perfectScore is awarded for a flawless game
	perfectScore = 100
	// participationScore is awarded for a submitted but wrong ordering
	participationScore = 40
	// itemPoints is added per correct item and subtracted per wrong item
	itemPoints = 10
)

// Result is the outcome of a scored attempt
type Result struct {
	Score  int
	Passed bool
	// State is WON or LOST for games and empty for self-check
	State models.GameState
}

// SelfCheck scores self-check marks against the steps of a skill.
//
// Every step must have exactly one valid mark. Criticality of a step does not
// change its weight.
func SelfCheck(steps []models.SkillStep, marks map[int]models.EvaluationMark) (Result, error) {
	known := make(map[int]struct{}, len(steps))
	for _, step := range steps {
		known[step.ID] = struct{}{}
	}
	for stepID, mark := range marks {
		if _, ok := known[stepID]; !ok {
			return Result{}, fmt.Errorf("%w: unknown step %d", models.ErrInvalidMark, stepID)
		}
		if !mark.Valid() {
			return Result{}, fmt.Errorf("%w: %d for step %d", models.ErrInvalidMark, mark, stepID)
		}
	}

	total := 0
	for _, step := range steps {
		mark, ok := marks[step.ID]
		if !ok {
			return Result{}, fmt.Errorf("%w: step %d is not marked", models.ErrIncompleteEvaluation, step.ID)
		}
		total += int(mark)
	}

	maxPoints := int(models.MarkComplete) * len(steps)
	if maxPoints == 0 {
		return Result{}, models.ErrIncompleteEvaluation
	}

	score := int(math.Round(float64(total) / float64(maxPoints) * 100))
	return Result{
		Score:  score,
		Passed: score >= models.PassingScore,
	}, nil
}

// RequiredItemIDs resolves required item names to pool item IDs by exact name match.
// Names missing from the pool are ignored.
func RequiredItemIDs(pool []models.GameItem, requiredNames []string) []string {
	names := make(map[string]struct{}, len(requiredNames))
	for _, name := range requiredNames {
		names[name] = struct{}{}
	}

	ids := make([]string, 0, len(requiredNames))
	for _, item := range pool {
		if _, ok := names[item.Name]; ok {
			ids = append(ids, item.ID)
		}
	}
	return ids
}

// ItemSelection scores the item-selection game.
//
// Only an exact match of the required set wins. Any other selection loses,
// even when the numeric score is high.
func ItemSelection(pool []models.GameItem, requiredNames []string, selectedIDs []string) Result {
	required := RequiredItemIDs(pool, requiredNames)
	requiredSet := make(map[string]struct{}, len(required))
	for _, id := range required {
		requiredSet[id] = struct{}{}
	}
	selectedSet := make(map[string]struct{}, len(selectedIDs))
	for _, id := range selectedIDs {
		selectedSet[id] = struct{}{}
	}

	missed := 0
	for _, id := range required {
		if _, ok := selectedSet[id]; !ok {
			missed++
		}
	}
	wrong := 0
	for id := range selectedSet {
		if _, ok := requiredSet[id]; !ok {
			wrong++
		}
	}

	if missed == 0 && wrong == 0 {
		return gameResult(perfectScore, models.GameStateWon)
	}

	correct := len(required) - missed
	score := clamp(itemPoints*(correct-wrong), 0, perfectScore)
	return gameResult(score, models.GameStateLost)
}

// Ordering scores the ordering game.
//
// The answer is correct when step IDs are non-decreasing and nothing is left
// in the pool. Step IDs are expected to be authored in procedure order.
func Ordering(answer []int, remaining int) Result {
	ordered := true
	for i := 1; i < len(answer); i++ {
		if answer[i-1] > answer[i] {
			ordered = false
			break
		}
	}

	if ordered && remaining == 0 {
		return gameResult(perfectScore, models.GameStateWon)
	}
	return gameResult(participationScore, models.GameStateLost)
}

// Expired is the result of a game whose countdown reached zero
func Expired() Result {
	return gameResult(0, models.GameStateLost)
}

// gameResult builds a game result. A game counts as passed when it is won or
// when its score reaches the passing score, so a lost item game can still pass.
func gameResult(score int, state models.GameState) Result {
	return Result{
		Score:  score,
		Passed: state == models.GameStateWon || score >= models.PassingScore,
		State:  state,
	}
}

// Feedback returns the coarse grade of a self-check score
func Feedback(score int) models.FeedbackLevel {
	switch {
	case score >= 90:
		return models.FeedbackExcellent
	case score >= 70:
		return models.FeedbackFair
	default:
		return models.FeedbackNeedsPractice
	}
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
