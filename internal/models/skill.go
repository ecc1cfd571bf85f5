package models

// SkillStep represents a single instruction of a nursing skill.
//
// Step IDs are unique within a skill and are authored in procedural order:
// the ordering game treats ascending IDs as the correct sequence.
type SkillStep struct {
	ID          int    `json:"id" yaml:"id"`
	Instruction string `json:"instruction" yaml:"instruction"`
	Explanation string `json:"explanation,omitempty" yaml:"explanation"`
	ImageURL    string `json:"imageUrl,omitempty" yaml:"imageUrl"`
	IsCritical  bool   `json:"isCritical" yaml:"isCritical"`
}

// NursingSkill represents an immutable catalog entry
type NursingSkill struct {
	ID            string      `json:"id" yaml:"id"`
	Title         string      `json:"title" yaml:"title"`
	Description   string      `json:"description" yaml:"description"`
	Steps         []SkillStep `json:"steps" yaml:"steps"`
	RequiredItems []string    `json:"requiredItems" yaml:"requiredItems"`
}

// SkillListItem is a short representation of a skill for list views
type SkillListItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	StepsCount  int    `json:"stepsCount"`
}

// GameItem represents a selectable physical item of the item-selection game.
//
// IsCorrect is catalog data only. Correctness is decided per skill by name lookup
// against NursingSkill.RequiredItems.
type GameItem struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Icon      string `json:"icon" yaml:"icon"`
	IsCorrect bool   `json:"isCorrect" yaml:"isCorrect"`
}

// StepByID returns the step with the given ID
func (s *NursingSkill) StepByID(id int) (SkillStep, bool) {
	for _, step := range s.Steps {
		if step.ID == id {
			return step, true
		}
	}
	return SkillStep{}, false
}
