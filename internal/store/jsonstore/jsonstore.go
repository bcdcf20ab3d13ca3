package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Makepad-fr/pxrem/internal/model"
)

// JSON-backed preference storage. Single small file, human-readable.
// No locking; one user, one process.

const (
	appDirName   = "pxrem"
	dataFileName = "prefs.json"
)

// Store reads and writes preferences under Dir.
type Store struct {
	Dir string
}

// Open returns a store rooted at dir. The directory is created on first Save.
func Open(dir string) *Store {
	return &Store{Dir: dir}
}

// OpenDefault uses the per-user config directory ($XDG_CONFIG_HOME/pxrem and
// its platform equivalents).
func OpenDefault() (*Store, error) {
	dir, err := DefaultDir()
	if err != nil {
		return nil, err
	}
	return Open(dir), nil
}

func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config dir: %w", err)
	}
	return filepath.Join(base, appDirName), nil
}

func (s *Store) Path() string { return filepath.Join(s.Dir, dataFileName) }

// Load returns the stored preferences, or the zero value if nothing was saved yet.
func (s *Store) Load() (model.Preferences, error) {
	var p model.Preferences
	b, err := os.ReadFile(s.Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return p, nil
		}
		return p, fmt.Errorf("read file: %w", err)
	}
	if err := json.Unmarshal(b, &p); err != nil {
		return model.Preferences{}, fmt.Errorf("json unmarshal: %w", err)
	}
	return p, nil
}

func (s *Store) Save(p model.Preferences) error {
	// keep the directory private, it sits next to the user's config
	if err := os.MkdirAll(s.Dir, 0o700); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	b, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.WriteFile(s.Path(), b, 0o600); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
