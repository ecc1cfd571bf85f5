package capture

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/nursingskill/backend/internal/models"
	"github.com/nursingskill/backend/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileDevice_RecordAndDiscard(t *testing.T) {
	base := t.TempDir()
	device := NewFileDevice(storage.NewLocalStorage(base))
	ctx := context.Background()

	stream, err := device.RequestCamera(ctx, "vital-signs")
	require.NoError(t, err)

	recorder, err := stream.StartRecording("")
	require.NoError(t, err)
	_, err = recorder.Write([]byte("hello "))
	require.NoError(t, err)
	_, err = recorder.Write([]byte("clip"))
	require.NoError(t, err)

	clip, err := recorder.Stop()
	require.NoError(t, err)
	require.NoError(t, stream.Release())

	assert.Equal(t, DefaultMIMEType, clip.ContentType)
	assert.Equal(t, int64(10), clip.Size)
	assert.Equal(t, ".webm", filepath.Ext(clip.FileName))

	path := filepath.Join(base, ClipMediaType, clip.FileName)
	f, err := os.Open(path)
	require.NoError(t, err)
	data, err := io.ReadAll(f)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	assert.Equal(t, "hello clip", string(data))

	require.NoError(t, device.Discard(ctx, clip))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Discarding twice is fine
	assert.NoError(t, device.Discard(ctx, clip))
}

func TestFileDevice_AbortRemovesFile(t *testing.T) {
	base := t.TempDir()
	device := NewFileDevice(storage.NewLocalStorage(base))

	stream, err := device.RequestCamera(context.Background(), "suction")
	require.NoError(t, err)
	recorder, err := stream.StartRecording("video/mp4")
	require.NoError(t, err)
	_, err = recorder.Write([]byte("partial"))
	require.NoError(t, err)

	require.NoError(t, recorder.Abort())

	entries, err := os.ReadDir(filepath.Join(base, ClipMediaType))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFileDevice_EmptyRecording(t *testing.T) {
	device := NewFileDevice(storage.NewLocalStorage(t.TempDir()))

	stream, err := device.RequestCamera(context.Background(), "suction")
	require.NoError(t, err)
	recorder, err := stream.StartRecording("")
	require.NoError(t, err)

	_, err = recorder.Stop()
	assert.Error(t, err)
}

func TestFileDevice_Errors(t *testing.T) {
	device := NewFileDevice(storage.NewLocalStorage(t.TempDir()))

	stream, err := device.RequestCamera(context.Background(), "a")
	require.NoError(t, err)

	_, err = stream.StartRecording("audio/wav")
	assert.Error(t, err)

	require.NoError(t, stream.Release())
	_, err = stream.StartRecording("")
	assert.Error(t, err)
}

// brokenStorage fails to prepare directories
type brokenStorage struct {
	FileStorage
}

func (brokenStorage) EnsureDir(mediaType string) error {
	return errors.New("read-only file system")
}

func TestFileDevice_Unavailable(t *testing.T) {
	device := NewFileDevice(brokenStorage{})

	_, err := device.RequestCamera(context.Background(), "a")
	assert.True(t, errors.Is(err, models.ErrCameraUnavailable))
}
