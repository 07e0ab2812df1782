// Package audiostore persists uploaded recording audio on the local
// filesystem, one directory per presentation.
package audiostore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// allowedExtensions are the audio upload formats accepted for analysis.
var allowedExtensions = map[string]bool{
	".webm": true,
	".mp3":  true,
	".wav":  true,
	".m4a":  true,
	".ogg":  true,
	".mp4":  true,
}

// Store abstracts audio persistence so handlers and the analysis pipeline
// never touch the filesystem directly.
type Store interface {
	Save(ctx context.Context, presentationID uint, filename string, data io.Reader) (string, error)
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	Delete(ctx context.Context, path string) error
	DeleteAll(ctx context.Context, presentationID uint) error
	Exists(ctx context.Context, path string) (bool, error)
}

// FilesystemStore implements Store on a local directory
type FilesystemStore struct {
	basePath string
}

// Ensure FilesystemStore implements Store interface
var _ Store = (*FilesystemStore)(nil)

// NewFilesystemStore creates the base directory and returns the store.
func NewFilesystemStore(basePath string) (*FilesystemStore, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &FilesystemStore{
		basePath: basePath,
	}, nil
}

// AllowedExtension reports whether the upload filename has a supported
// audio extension.
func AllowedExtension(filename string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// Save writes the audio under <base>/<presentationID>/<filename> and
// returns the stored path.
func (fs *FilesystemStore) Save(ctx context.Context, presentationID uint, filename string, data io.Reader) (string, error) {
	if !AllowedExtension(filename) {
		return "", fmt.Errorf("unsupported audio format: %s", filepath.Ext(filename))
	}

	// The caller controls the filename, so only its base is trusted.
	safeName := filepath.Base(filename)
	dir := filepath.Join(fs.basePath, fmt.Sprintf("%d", presentationID))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	fullPath := filepath.Join(dir, safeName)

	file, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, data); err != nil {
		os.Remove(fullPath) // Clean up on error
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return fullPath, nil
}

// Open opens stored audio for reading
func (fs *FilesystemStore) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return file, nil
}

// Delete removes stored audio, ignoring files already gone
func (fs *FilesystemStore) Delete(ctx context.Context, path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// DeleteAll removes every stored recording for a presentation
func (fs *FilesystemStore) DeleteAll(ctx context.Context, presentationID uint) error {
	dir := filepath.Join(fs.basePath, fmt.Sprintf("%d", presentationID))
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("failed to delete presentation audio: %w", err)
	}
	return nil
}

// Exists checks if a file exists
func (fs *FilesystemStore) Exists(ctx context.Context, path string) (bool, error) {
	_, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat file: %w", err)
	}
	return true, nil
}
