package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// BestFile stores the best score as a single plain-text integer.
// It is safe for concurrent use so that several sessions can share one file.
type BestFile struct {
	mu   sync.Mutex
	path string
}

// NewBestFile returns a store for path. A leading ~ is expanded to the home
// directory.
func NewBestFile(path string) (*BestFile, error) {
	expanded, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	return &BestFile{path: expanded}, nil
}

// Path returns the expanded file path.
func (b *BestFile) Path() string {
	return b.path
}

// Load reads the best score. A missing file is a score of 0 with no error.
// A corrupt file reads as 0 and returns an error describing the content.
func (b *BestFile) Load() (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.read()
}

// Save overwrites the file with best, creating parent directories as needed.
func (b *BestFile) Save(best int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.write(best)
}

// Raise stores best only if it beats the stored value and returns the
// resulting best. The read and write happen under one lock, so sessions
// sharing the file can never lower it. A corrupt file is overwritten.
func (b *BestFile) Raise(best int) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	stored, _ := b.read()
	if best <= stored {
		return stored, nil
	}
	if err := b.write(best); err != nil {
		return stored, err
	}
	return best, nil
}

func (b *BestFile) read() (int, error) {
	data, err := os.ReadFile(b.path)
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read best score: %w", err)
	}

	best, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("storage: corrupt best score file %s: %w", b.path, err)
	}
	if best < 0 {
		return 0, fmt.Errorf("storage: negative best score %d in %s", best, b.path)
	}
	return best, nil
}

func (b *BestFile) write(best int) error {
	if err := os.MkdirAll(filepath.Dir(b.path), 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory for best score: %w", err)
	}
	if err := os.WriteFile(b.path, []byte(strconv.Itoa(best)), 0o644); err != nil {
		return fmt.Errorf("storage: cannot write best score: %w", err)
	}
	return nil
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
