package models

import "time"

// CaptureState is the state of the capture flow
type CaptureState string

const (
	CaptureStateIdle       CaptureState = "IDLE"
	CaptureStatePreviewing CaptureState = "PREVIEWING"
	CaptureStateRecording  CaptureState = "RECORDING"
	CaptureStateReviewing  CaptureState = "REVIEWING"
)

// Clip is a finished recording of a skill
type Clip struct {
	FileName    string    `json:"fileName"`
	ContentType string    `json:"contentType"`
	Size        int64     `json:"size"`
	CreatedAt   time.Time `json:"createdAt"`
}

// RecordingStatus describes the capture state of one skill
type RecordingStatus struct {
	SkillID      string       `json:"skillId"`
	SkillTitle   string       `json:"skillTitle"`
	State        CaptureState `json:"state"`
	Recorded     bool         `json:"recorded"`
	Clip         *Clip        `json:"clip,omitempty"`
	CheckedSteps []int        `json:"checkedSteps"`
	LastError    string       `json:"lastError,omitempty"`
}
