package capture

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/nursingskill/backend/internal/models"
	"github.com/nursingskill/backend/internal/storage"
)

// ClipMediaType is the storage media type of recorded clips
const ClipMediaType = "recordings"

// DefaultMIMEType is used when the client does not report a recorder MIME type
const DefaultMIMEType = "video/webm"

var extensions = map[string]string{
	"video/webm": ".webm",
	"video/mp4":  ".mp4",
	"video/ogg":  ".ogv",
}

// FileStorage is the interface that wraps file operations used for clips
type FileStorage interface {
	// EnsureDir prepares the directory of a media type
	EnsureDir(mediaType string) error
	// Create creates a new file and returns a WriteCloser
	Create(id, mediaType string) (io.WriteCloser, error)
	// Delete removes a file
	Delete(id, mediaType string) error
}

// fileDevice implements Device on top of uploaded chunks.
//
// The client records with its own camera and streams chunks to the server;
// the stream acquired here is the exclusive right to write a clip file.
type fileDevice struct {
	storage FileStorage
	now     func() time.Time
}

// NewFileDevice creates a Device that writes clips into storage
func NewFileDevice(fs FileStorage) *fileDevice {
	return &fileDevice{
		storage: fs,
		now:     time.Now,
	}
}

// RequestCamera prepares clip storage for the skill
func (d *fileDevice) RequestCamera(ctx context.Context, skillID string) (Stream, error) {
	if err := d.storage.EnsureDir(ClipMediaType); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrCameraUnavailable, err)
	}
	return &fileStream{device: d}, nil
}

// Discard removes a clip file
func (d *fileDevice) Discard(ctx context.Context, clip models.Clip) error {
	err := d.storage.Delete(clip.FileName, ClipMediaType)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete clip: %w", err)
	}
	return nil
}

// fileStream is an acquired clip slot
type fileStream struct {
	device   *fileDevice
	released bool
}

// StartRecording creates the clip file
func (s *fileStream) StartRecording(mimeType string) (Recorder, error) {
	if s.released {
		return nil, errors.New("stream is released")
	}
	if mimeType == "" {
		mimeType = DefaultMIMEType
	}
	ext, ok := extensions[mimeType]
	if !ok {
		return nil, fmt.Errorf("unsupported recording type: %s", mimeType)
	}

	fileName := storage.GenerateFileName(ext)
	w, err := s.device.storage.Create(fileName, ClipMediaType)
	if err != nil {
		return nil, fmt.Errorf("failed to create clip file: %w", err)
	}

	size := storage.NewSizeWriter()
	return &fileRecorder{
		device:   s.device,
		file:     w,
		size:     size,
		w:        io.MultiWriter(w, size),
		fileName: fileName,
		mimeType: mimeType,
	}, nil
}

// Release marks the stream as released
func (s *fileStream) Release() error {
	s.released = true
	return nil
}

// fileRecorder writes chunks into a clip file
type fileRecorder struct {
	device   *fileDevice
	file     io.WriteCloser
	size     interface{ Size() int64 }
	w        io.Writer
	fileName string
	mimeType string
}

// Write appends a chunk
func (r *fileRecorder) Write(p []byte) (int, error) {
	return r.w.Write(p)
}

// Stop closes the clip file and returns the finished clip
func (r *fileRecorder) Stop() (models.Clip, error) {
	if err := r.file.Close(); err != nil {
		_ = r.device.storage.Delete(r.fileName, ClipMediaType)
		return models.Clip{}, fmt.Errorf("failed to close clip file: %w", err)
	}
	if r.size.Size() == 0 {
		_ = r.device.storage.Delete(r.fileName, ClipMediaType)
		return models.Clip{}, errors.New("recording is empty")
	}

	return models.Clip{
		FileName:    r.fileName,
		ContentType: r.mimeType,
		Size:        r.size.Size(),
		CreatedAt:   r.device.now().UTC(),
	}, nil
}

// Abort closes and removes the unfinished clip file
func (r *fileRecorder) Abort() error {
	closeErr := r.file.Close()
	if err := r.device.storage.Delete(r.fileName, ClipMediaType); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete unfinished clip: %w", err)
	}
	return closeErr
}
