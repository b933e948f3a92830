package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalStorage implements Storage on the local filesystem. Stored paths are
// relative to the base directory and double as URL paths for the static file
// routes.
type LocalStorage struct {
	baseDir string
}

func NewLocalStorage(baseDir string) (*LocalStorage, error) {
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStorage{baseDir: baseDir}, nil
}

// BaseDir returns the root directory files are written under.
func (s *LocalStorage) BaseDir() string {
	return s.baseDir
}

func (s *LocalStorage) Save(path string, file io.Reader) error {
	full := filepath.Join(s.baseDir, filepath.FromSlash(path))

	err := os.MkdirAll(filepath.Dir(full), 0755)
	if err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	dst, err := os.Create(full)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	_, err = io.Copy(dst, file)
	if err != nil {
		_ = dst.Close()
		_ = os.Remove(full)
		return fmt.Errorf("failed to write file: %w", err)
	}

	err = dst.Close()
	if err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}

	return nil
}

func (s *LocalStorage) Delete(path string) error {
	full := filepath.Join(s.baseDir, filepath.FromSlash(path))

	err := os.Remove(full)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}

func (s *LocalStorage) URL(path string) string {
	return "/" + filepath.ToSlash(path)
}
