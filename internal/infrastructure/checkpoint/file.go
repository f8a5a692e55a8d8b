package checkpoint

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileStore keeps the high-water-mark order code in a single UTF-8 text
// file. The file is absent until the first successful run seeds it.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Read returns the stored order code, or "" when no checkpoint exists.
func (s *FileStore) Read() (string, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read checkpoint %s: %w", s.path, err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Write replaces the checkpoint atomically: a torn write must never
// leave a corrupt high-water mark behind.
func (s *FileStore) Write(code string) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create checkpoint dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".lastorder-*")
	if err != nil {
		return fmt.Errorf("create temp checkpoint: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(code); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp checkpoint: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp checkpoint: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("commit checkpoint %s: %w", s.path, err)
	}
	return nil
}
