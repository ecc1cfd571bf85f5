// Package capture drives the video capture flow of the practice recorder.
//
// The flow holds at most one camera stream at a time and releases it on every
// exit path: finishing a recording, switching skill, leaving the view, retrying
// and resetting the session.
package capture

import (
	"context"
	"io"

	"github.com/nursingskill/backend/internal/models"
)

// Device acquires camera streams
type Device interface {
	// RequestCamera acquires a stream for the given skill.
	// Permission and hardware failures are reported as models.ErrCameraUnavailable.
	RequestCamera(ctx context.Context, skillID string) (Stream, error)
	// Discard removes a finished clip
	Discard(ctx context.Context, clip models.Clip) error
}

// Stream is an acquired camera stream
type Stream interface {
	// StartRecording starts a recorder producing a clip of the given MIME type
	StartRecording(mimeType string) (Recorder, error)
	// Release stops all tracks of the stream
	Release() error
}

// Recorder receives recorded chunks
type Recorder interface {
	io.Writer
	// Stop finishes the recording and returns a playable clip
	Stop() (models.Clip, error)
	// Abort drops the unfinished recording
	Abort() error
}
