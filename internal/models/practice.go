package models

// PracticeState represents the step walker of the practice view
type PracticeState struct {
	SkillID         string    `json:"skillId"`
	SkillTitle      string    `json:"skillTitle"`
	StepIndex       int       `json:"stepIndex"`
	StepNumber      int       `json:"stepNumber"`
	TotalSteps      int       `json:"totalSteps"`
	Progress        int       `json:"progress"`
	ShowExplanation bool      `json:"showExplanation"`
	Step            SkillStep `json:"step"`
	HasPrev         bool      `json:"hasPrev"`
	HasNext         bool      `json:"hasNext"`
}
