package capture

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/nursingskill/backend/internal/models"
	"go.uber.org/zap"
)

// Flow is the capture state machine of the video view.
//
// Only the selected skill can hold a stream or a recorder. Finished clips and
// review checks are kept per skill until Reset.
type Flow struct {
	mu     sync.Mutex
	device Device
	logger *zap.Logger

	skillID  string
	state    models.CaptureState
	stream   Stream
	recorder Recorder
	lastErr  error

	clips  map[string]models.Clip
	checks map[string]map[int]struct{}
}

// NewFlow creates a new capture flow
func NewFlow(device Device, logger *zap.Logger) *Flow {
	return &Flow{
		device: device,
		logger: logger,
		state:  models.CaptureStateIdle,
		clips:  make(map[string]models.Clip),
		checks: make(map[string]map[int]struct{}),
	}
}

// Select makes skillID the active skill.
//
// Resources of the previously active skill are released. If the skill has no
// clip yet, the camera is requested; a camera failure is kept as the last error
// and is not returned, so the view stays usable. Selecting the same skill
// again retries the camera.
func (f *Flow) Select(ctx context.Context, skillID string) models.RecordingStatus {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.skillID != skillID {
		f.releaseLocked()
		f.skillID = skillID
		f.lastErr = nil
	}

	if _, ok := f.clips[skillID]; ok {
		f.state = models.CaptureStateReviewing
	} else if f.stream == nil {
		f.acquireLocked(ctx)
	}

	return f.statusLocked(skillID)
}

// StartRecording starts recording the active skill, acquiring the camera first if needed
func (f *Flow) StartRecording(ctx context.Context, skillID, mimeType string) (models.RecordingStatus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.requireActiveLocked(skillID); err != nil {
		return models.RecordingStatus{}, err
	}

	switch f.state {
	case models.CaptureStateIdle:
		if err := f.acquireLocked(ctx); err != nil {
			return f.statusLocked(skillID), err
		}
	case models.CaptureStatePreviewing:
	default:
		return f.statusLocked(skillID), fmt.Errorf("%w: cannot start recording in %s", models.ErrInvalidCaptureState, f.state)
	}

	recorder, err := f.stream.StartRecording(mimeType)
	if err != nil {
		f.lastErr = err
		f.releaseLocked()
		return f.statusLocked(skillID), fmt.Errorf("failed to start recording: %w", err)
	}

	f.recorder = recorder
	f.state = models.CaptureStateRecording
	return f.statusLocked(skillID), nil
}

// WriteChunk appends a recorded chunk to the running recording
func (f *Flow) WriteChunk(skillID string, chunk []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.requireActiveLocked(skillID); err != nil {
		return err
	}
	if f.state != models.CaptureStateRecording {
		return fmt.Errorf("%w: not recording", models.ErrInvalidCaptureState)
	}
	if len(chunk) == 0 {
		return nil
	}

	if _, err := f.recorder.Write(chunk); err != nil {
		f.lastErr = err
		f.releaseLocked()
		return fmt.Errorf("failed to write chunk: %w", err)
	}
	return nil
}

// StopRecording finishes the recording, releases the camera and keeps the clip
func (f *Flow) StopRecording(skillID string) (models.RecordingStatus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.requireActiveLocked(skillID); err != nil {
		return models.RecordingStatus{}, err
	}
	if f.state != models.CaptureStateRecording {
		return f.statusLocked(skillID), fmt.Errorf("%w: not recording", models.ErrInvalidCaptureState)
	}

	clip, err := f.recorder.Stop()
	f.recorder = nil
	if err != nil {
		f.lastErr = err
		f.releaseLocked()
		return f.statusLocked(skillID), fmt.Errorf("failed to stop recording: %w", err)
	}

	f.releaseLocked()
	f.clips[skillID] = clip
	f.checks[skillID] = make(map[int]struct{})
	f.state = models.CaptureStateReviewing
	return f.statusLocked(skillID), nil
}

// Retry discards the clip of the active skill and reopens the camera
func (f *Flow) Retry(ctx context.Context, skillID string) (models.RecordingStatus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.requireActiveLocked(skillID); err != nil {
		return models.RecordingStatus{}, err
	}

	clip, ok := f.clips[skillID]
	if !ok {
		return f.statusLocked(skillID), models.ErrRecordingNotFound
	}

	f.releaseLocked()
	f.discardLocked(ctx, skillID, clip)
	f.lastErr = nil
	f.acquireLocked(ctx)

	return f.statusLocked(skillID), nil
}

// ToggleCheck toggles a reviewed step of a recorded skill
func (f *Flow) ToggleCheck(skillID string, stepID int) (models.RecordingStatus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.clips[skillID]; !ok {
		return models.RecordingStatus{}, models.ErrRecordingNotFound
	}

	checks := f.checks[skillID]
	if _, ok := checks[stepID]; ok {
		delete(checks, stepID)
	} else {
		checks[stepID] = struct{}{}
	}

	return f.statusLocked(skillID), nil
}

// Clip returns the finished clip of a skill
func (f *Flow) Clip(skillID string) (models.Clip, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	clip, ok := f.clips[skillID]
	if !ok {
		return models.Clip{}, models.ErrRecordingNotFound
	}
	return clip, nil
}

// Status returns the capture status of a skill
func (f *Flow) Status(skillID string) models.RecordingStatus {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.statusLocked(skillID)
}

// Leave releases the camera when the video view is left. Clips are kept.
func (f *Flow) Leave() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.releaseLocked()
	f.skillID = ""
	f.state = models.CaptureStateIdle
	f.lastErr = nil
}

// Reset releases the camera and discards every clip of the session
func (f *Flow) Reset(ctx context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.releaseLocked()
	f.skillID = ""
	f.state = models.CaptureStateIdle
	f.lastErr = nil
	for skillID, clip := range f.clips {
		f.discardLocked(ctx, skillID, clip)
	}
}

// acquireLocked requests the camera for the active skill
func (f *Flow) acquireLocked(ctx context.Context) error {
	stream, err := f.device.RequestCamera(ctx, f.skillID)
	if err != nil {
		if !errors.Is(err, models.ErrCameraUnavailable) {
			err = fmt.Errorf("%w: %v", models.ErrCameraUnavailable, err)
		}
		f.logger.Warn("failed to acquire camera", zap.String("skill_id", f.skillID), zap.Error(err))
		f.lastErr = err
		f.state = models.CaptureStateIdle
		return err
	}

	f.stream = stream
	f.lastErr = nil
	f.state = models.CaptureStatePreviewing
	return nil
}

// releaseLocked aborts a running recorder and stops the stream.
// The state becomes REVIEWING when the active skill has a clip, IDLE otherwise.
func (f *Flow) releaseLocked() {
	if f.recorder != nil {
		if err := f.recorder.Abort(); err != nil {
			f.logger.Warn("failed to abort recording", zap.String("skill_id", f.skillID), zap.Error(err))
		}
		f.recorder = nil
	}
	if f.stream != nil {
		if err := f.stream.Release(); err != nil {
			f.logger.Warn("failed to release camera", zap.String("skill_id", f.skillID), zap.Error(err))
		}
		f.stream = nil
	}

	if _, ok := f.clips[f.skillID]; ok && f.skillID != "" {
		f.state = models.CaptureStateReviewing
	} else {
		f.state = models.CaptureStateIdle
	}
}

// discardLocked forgets a clip and its review checks
func (f *Flow) discardLocked(ctx context.Context, skillID string, clip models.Clip) {
	if err := f.device.Discard(ctx, clip); err != nil {
		f.logger.Warn("failed to discard clip", zap.String("skill_id", skillID), zap.Error(err))
	}
	delete(f.clips, skillID)
	delete(f.checks, skillID)
	if skillID == f.skillID {
		f.state = models.CaptureStateIdle
	}
}

func (f *Flow) requireActiveLocked(skillID string) error {
	if f.skillID == "" || f.skillID != skillID {
		return fmt.Errorf("%w: skill %s is not selected", models.ErrInvalidCaptureState, skillID)
	}
	return nil
}

func (f *Flow) statusLocked(skillID string) models.RecordingStatus {
	status := models.RecordingStatus{
		SkillID:      skillID,
		State:        models.CaptureStateIdle,
		CheckedSteps: []int{},
	}

	if clip, ok := f.clips[skillID]; ok {
		c := clip
		status.Recorded = true
		status.Clip = &c
		status.State = models.CaptureStateReviewing
		for stepID := range f.checks[skillID] {
			status.CheckedSteps = append(status.CheckedSteps, stepID)
		}
		slices.Sort(status.CheckedSteps)
	}

	if skillID == f.skillID {
		status.State = f.state
		if f.lastErr != nil {
			status.LastError = f.lastErr.Error()
		}
	}

	return status
}
