package services

import (
	"context"
	"fmt"
	"io"

	"github.com/nursingskill/backend/internal/capture"
	"github.com/nursingskill/backend/internal/models"
	"go.uber.org/zap"
)

// ClipStorage is the interface that wraps read access to recorded clip files
type ClipStorage interface {
	// Method Open opens a file for reading.
	//
	// The caller must close the returned reader.
	Open(id, mediaType string) (io.ReadSeekCloser, error)
	// Method Purge removes every file of a media type.
	Purge(mediaType string) error
}

// SkillLister is the interface that wraps skill lookup and listing
type SkillLister interface {
	SkillCatalog
	// Method Skills returns every skill in catalog order.
	Skills() []models.NursingSkill
}

type recordingService struct {
	catalog SkillLister
	flow    *capture.Flow
	storage ClipStorage
	logger  *zap.Logger
	onEnter func(ctx context.Context)
}

// NewRecordingService creates a new recording service
func NewRecordingService(catalog SkillLister, flow *capture.Flow, storage ClipStorage, logger *zap.Logger) *recordingService {
	return &recordingService{
		catalog: catalog,
		flow:    flow,
		storage: storage,
		logger:  logger,
	}
}

// OnEnter registers a function that runs before the camera is acquired or recording starts.
// It makes the video view active so that leaving the view releases the camera.
// Must be called before the service is used.
func (s *recordingService) OnEnter(fn func(ctx context.Context)) {
	s.onEnter = fn
}

// List returns the recording status of every skill
func (s *recordingService) List(ctx context.Context) []models.RecordingStatus {
	skills := s.catalog.Skills()
	statuses := make([]models.RecordingStatus, 0, len(skills))
	for _, skill := range skills {
		status := s.flow.Status(skill.ID)
		status.SkillTitle = skill.Title
		statuses = append(statuses, status)
	}
	return statuses
}

// Open selects the skill in the video view and acquires the camera when the skill has no clip.
//
// A camera failure is returned as models.ErrCameraUnavailable together with the status
// holding the failure reason. Calling Open again retries.
func (s *recordingService) Open(ctx context.Context, skillID string) (*models.RecordingStatus, error) {
	skill, err := s.catalog.Skill(skillID)
	if err != nil {
		return nil, err
	}

	s.enter(ctx)
	status := s.flow.Select(ctx, skill.ID)
	status.SkillTitle = skill.Title
	if status.State == models.CaptureStateIdle && status.LastError != "" {
		return &status, fmt.Errorf("%w: %s", models.ErrCameraUnavailable, status.LastError)
	}
	return &status, nil
}

// Start starts recording the selected skill
func (s *recordingService) Start(ctx context.Context, skillID, mimeType string) (*models.RecordingStatus, error) {
	skill, err := s.catalog.Skill(skillID)
	if err != nil {
		return nil, err
	}

	s.enter(ctx)
	status, err := s.flow.StartRecording(ctx, skill.ID, mimeType)
	status.SkillTitle = skill.Title
	if err != nil {
		return &status, err
	}
	return &status, nil
}

// WriteChunk appends a recorded chunk to the running recording
func (s *recordingService) WriteChunk(ctx context.Context, skillID string, chunk []byte) error {
	return s.flow.WriteChunk(skillID, chunk)
}

// Stop finishes the recording of the selected skill and releases the camera
func (s *recordingService) Stop(ctx context.Context, skillID string) (*models.RecordingStatus, error) {
	skill, err := s.catalog.Skill(skillID)
	if err != nil {
		return nil, err
	}

	status, err := s.flow.StopRecording(skill.ID)
	status.SkillTitle = skill.Title
	if err != nil {
		s.logger.Warn("failed to stop recording", zap.String("skill_id", skill.ID), zap.Error(err))
		return &status, err
	}

	s.logger.Info("recording finished", zap.String("skill_id", skill.ID), zap.Int64("size", status.Clip.Size))
	return &status, nil
}

// Retry discards the clip of the selected skill and reopens the camera
func (s *recordingService) Retry(ctx context.Context, skillID string) (*models.RecordingStatus, error) {
	skill, err := s.catalog.Skill(skillID)
	if err != nil {
		return nil, err
	}

	status, err := s.flow.Retry(ctx, skill.ID)
	status.SkillTitle = skill.Title
	if err != nil {
		return &status, err
	}
	return &status, nil
}

// ToggleCheck toggles a reviewed step of a recorded skill
func (s *recordingService) ToggleCheck(ctx context.Context, skillID string, stepID int) (*models.RecordingStatus, error) {
	skill, err := s.catalog.Skill(skillID)
	if err != nil {
		return nil, err
	}
	if _, ok := skill.StepByID(stepID); !ok {
		return nil, fmt.Errorf("%w: %d", models.ErrInvalidStep, stepID)
	}

	status, err := s.flow.ToggleCheck(skill.ID, stepID)
	if err != nil {
		return nil, err
	}
	status.SkillTitle = skill.Title
	return &status, nil
}

// Download opens the clip of a skill.
//
// The caller must close the returned reader.
func (s *recordingService) Download(ctx context.Context, skillID string) (io.ReadSeekCloser, *models.Clip, error) {
	clip, err := s.flow.Clip(skillID)
	if err != nil {
		return nil, nil, err
	}

	r, err := s.storage.Open(clip.FileName, capture.ClipMediaType)
	if err != nil {
		s.logger.Error("failed to open clip", zap.String("skill_id", skillID), zap.Error(err))
		return nil, nil, fmt.Errorf("failed to open clip: %w", err)
	}
	return r, &clip, nil
}

func (s *recordingService) enter(ctx context.Context) {
	if s.onEnter != nil {
		s.onEnter(ctx)
	}
}

// Leave releases the camera when the video view is left
func (s *recordingService) Leave() {
	s.flow.Leave()
}

// Reset releases the camera and removes every clip of the session
func (s *recordingService) Reset(ctx context.Context) {
	s.flow.Reset(ctx)
	if err := s.storage.Purge(capture.ClipMediaType); err != nil {
		s.logger.Warn("failed to purge clips", zap.Error(err))
	}
}
