// Package storage provides local filesystem storage for session media files
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// localStorage stores files under basePath grouped by media type
type localStorage struct {
	basePath string
}

// NewLocalStorage creates a new localStorage instance
func NewLocalStorage(basePath string) *localStorage {
	return &localStorage{
		basePath: basePath,
	}
}

// dir returns the directory of a media type.
// Underscores in mediaType are converted to path separators.
func (s *localStorage) dir(mediaType string) string {
	typePath := strings.ReplaceAll(mediaType, "_", string(filepath.Separator))
	return filepath.Join(s.basePath, typePath)
}

// generatePath generates the full file path based on id and mediaType
func (s *localStorage) generatePath(id, mediaType string) (string, error) {
	if id == "" || id != filepath.Base(id) || strings.HasPrefix(id, ".") {
		return "", fmt.Errorf("invalid file id: %q", id)
	}
	return filepath.Join(s.dir(mediaType), id), nil
}

// EnsureDir creates the directory of a media type if it does not exist
func (s *localStorage) EnsureDir(mediaType string) error {
	return os.MkdirAll(s.dir(mediaType), 0o755)
}

// Create creates a new file and returns a WriteCloser
func (s *localStorage) Create(id, mediaType string) (io.WriteCloser, error) {
	path, err := s.generatePath(id, mediaType)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	return os.Create(path)
}

// Open opens a file for reading
func (s *localStorage) Open(id, mediaType string) (io.ReadSeekCloser, error) {
	path, err := s.generatePath(id, mediaType)
	if err != nil {
		return nil, err
	}
	return os.Open(path)
}

// Delete removes a file
func (s *localStorage) Delete(id, mediaType string) error {
	path, err := s.generatePath(id, mediaType)
	if err != nil {
		return err
	}
	return os.Remove(path)
}

// Purge removes every file of a media type
func (s *localStorage) Purge(mediaType string) error {
	return os.RemoveAll(s.dir(mediaType))
}
