package models

import "time"

// AssessmentType identifies the kind of completed attempt
type AssessmentType string

const (
	AssessmentTypeSelfCheck AssessmentType = "SELF_CHECK"
	AssessmentTypeGameItem  AssessmentType = "GAME_ITEM"
	AssessmentTypeGameOrder AssessmentType = "GAME_ORDER"
)

// Label returns the display text used by the dashboard export
func (t AssessmentType) Label() string {
	switch t {
	case AssessmentTypeSelfCheck:
		return "자가평가"
	case AssessmentTypeGameItem:
		return "게임(물품 준비)"
	case AssessmentTypeGameOrder:
		return "게임(순서 맞추기)"
	default:
		return string(t)
	}
}

// EvaluationMark is a self-check mark for one step
type EvaluationMark int

const (
	MarkNotDone  EvaluationMark = 0
	MarkPartial  EvaluationMark = 1
	MarkComplete EvaluationMark = 2
)

// Valid reports whether the mark is one of the known marks
func (m EvaluationMark) Valid() bool {
	return m == MarkNotDone || m == MarkPartial || m == MarkComplete
}

// PassingScore is the minimum score of a passed attempt
const PassingScore = 80

// AssessmentRecord represents one completed attempt.
// Records are created once and never updated or deleted.
type AssessmentRecord struct {
	ID         string         `json:"id"`
	Date       time.Time      `json:"date"`
	Score      int            `json:"score"`
	Passed     bool           `json:"passed"`
	Type       AssessmentType `json:"type"`
	SkillTitle string         `json:"skillTitle"`
}

// SelfCheckRequest represents a self-check submission
type SelfCheckRequest struct {
	// Marks maps step ID to mark (0 - not done, 1 - partial, 2 - complete)
	Marks map[int]EvaluationMark `json:"marks"`
}

// FeedbackLevel is a coarse grade shown next to a self-check score
type FeedbackLevel string

const (
	FeedbackExcellent     FeedbackLevel = "excellent"
	FeedbackFair          FeedbackLevel = "fair"
	FeedbackNeedsPractice FeedbackLevel = "needs_practice"
)

// SelfCheckResult is returned after a successful self-check submission
type SelfCheckResult struct {
	Record   AssessmentRecord `json:"record"`
	Feedback FeedbackLevel    `json:"feedback"`
}
