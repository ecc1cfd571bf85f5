package models

import "time"

// GameKind identifies a mini-game
type GameKind string

const (
	GameKindItems GameKind = "items"
	GameKindOrder GameKind = "order"
)

// AssessmentType returns the history type tag of the game
func (k GameKind) AssessmentType() AssessmentType {
	if k == GameKindItems {
		return AssessmentTypeGameItem
	}
	return AssessmentTypeGameOrder
}

// GameState is the state of a game session
type GameState string

const (
	GameStatePlaying GameState = "PLAYING"
	GameStateWon     GameState = "WON"
	GameStateLost    GameState = "LOST"
)

// OrderStep is a step card of the ordering game
type OrderStep struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
}

// GameSession represents the state of the active game
type GameSession struct {
	ID        string    `json:"id"`
	Kind      GameKind  `json:"kind"`
	SkillID   string    `json:"skillId"`
	State     GameState `json:"state"`
	Score     int       `json:"score"`
	TimeLeft  int       `json:"timeLeft"`
	StartedAt time.Time `json:"startedAt"`
	// Expired is set when the game was finished by the countdown
	Expired bool `json:"expired"`

	// Item game
	Items           []GameItem `json:"items,omitempty"`
	SelectedItemIDs []string   `json:"selectedItemIds,omitempty"`

	// Ordering game
	Pool   []OrderStep `json:"pool,omitempty"`
	Answer []OrderStep `json:"answer,omitempty"`

	Record *AssessmentRecord `json:"record,omitempty"`
}
