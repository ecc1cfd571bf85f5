package models

import "errors"

var (
	ErrSkillNotFound        = errors.New("skill not found")
	ErrIncompleteEvaluation = errors.New("all steps must be evaluated")
	ErrInvalidMark          = errors.New("invalid evaluation mark")
	ErrProfileNotFound      = errors.New("profile not found")
	ErrInvalidProfile       = errors.New("school name, student id and name are required")
	ErrNoActiveGame         = errors.New("no active game")
	ErrGameFinished         = errors.New("game is already finished")
	ErrInvalidGameKind      = errors.New("invalid game kind, must be 'items' or 'order'")
	ErrInvalidItem          = errors.New("invalid item")
	ErrInvalidStep          = errors.New("invalid step")
	ErrNoPractice           = errors.New("no skill selected for practice")
	ErrCameraUnavailable    = errors.New("camera is not available")
	ErrInvalidCaptureState  = errors.New("operation is not allowed in current capture state")
	ErrRecordingNotFound    = errors.New("recording not found")
	ErrInvalidView          = errors.New("invalid view")
	ErrInvalidExportFormat  = errors.New("invalid export format, must be 'xlsx' or 'csv'")
)
