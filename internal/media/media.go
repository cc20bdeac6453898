package media

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var ErrNotBase64Image = errors.New("a base64-encoded image string is expected")

var extensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// Store writes uploaded images below a single media root. Paths
// returned to callers are relative to the root, the same values the
// API exposes under /media/.
type Store struct {
	Root string
}

func NewStore(root string) *Store {
	return &Store{Root: root}
}

// SaveBase64 decodes a "data:image/...;base64,..." payload and writes
// it under subdir with a random file name.
func (s *Store) SaveBase64(data, subdir string) (string, error) {
	if !strings.HasPrefix(data, "data:image") {
		return "", ErrNotBase64Image
	}

	header, encoded, found := strings.Cut(data, ",")
	if !found {
		return "", ErrNotBase64Image
	}

	mime := strings.TrimSuffix(strings.TrimPrefix(header, "data:"), ";base64")
	ext, ok := extensions[mime]
	if !ok {
		return "", ErrNotBase64Image
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", ErrNotBase64Image
	}

	relative := filepath.Join(subdir, uuid.NewString()+ext)
	full := filepath.Join(s.Root, relative)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("failed to create media directory: %w", err)
	}
	if err := os.WriteFile(full, raw, 0o644); err != nil {
		return "", fmt.Errorf("failed to write media file: %w", err)
	}

	return filepath.ToSlash(relative), nil
}

// Remove deletes a stored file. A missing file is not an error.
func (s *Store) Remove(relative string) error {
	if relative == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.Root, relative))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
