// Package layoutstore persists the TUI layout between sessions: the
// three pane size percentages and the nav collapsed flag.
package layoutstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"syscall"
)

// DefaultSizes are the pane percentages used when no layout has been
// persisted yet: nav, list, detail.
var DefaultSizes = [3]float64{20, 32, 48}

// Layout is the persisted layout state.
type Layout struct {
	Sizes     [3]float64 `json:"sizes"`
	Collapsed bool       `json:"collapsed"`
}

// DefaultLayout returns the layout used on first run.
func DefaultLayout() Layout {
	return Layout{Sizes: DefaultSizes}
}

// Store reads and writes the layout state file.
type Store struct {
	path     string
	lockPath string
}

// New creates a new Store for the given file path. The file does not
// need to exist; it will be created on first write.
func New(path string) *Store {
	return &Store{
		path:     path,
		lockPath: path + ".lock",
	}
}

// DefaultPath returns the layout file path under the user state
// directory (XDG_STATE_HOME/inbox or ~/.local/state/inbox).
func DefaultPath() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "inbox", "layout.json")
}

// Load reads the persisted layout. A missing or unreadable file falls
// back to the default layout; a corrupt file does too, so a bad write
// can never wedge startup.
func (s *Store) Load() Layout {
	lock, err := s.acquireLock(syscall.LOCK_SH)
	if err != nil {
		return DefaultLayout()
	}
	defer s.releaseLock(lock)

	content, err := os.ReadFile(s.path)
	if err != nil {
		return DefaultLayout()
	}

	var layout Layout
	if err := json.Unmarshal(content, &layout); err != nil {
		return DefaultLayout()
	}
	if layout.Sizes == [3]float64{} {
		layout.Sizes = DefaultSizes
	}
	return layout
}

// Save writes the layout, creating parent directories as needed.
func (s *Store) Save(layout Layout) error {
	lock, err := s.acquireLock(syscall.LOCK_EX)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	content, err := json.MarshalIndent(layout, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal layout: %w", err)
	}

	// Write to temp file first, then rename for atomicity.
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

func (s *Store) acquireLock(lockType int) (*os.File, error) {
	dir := filepath.Dir(s.lockPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create state directory: %w", err)
	}

	lock, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}

	return lock, nil
}

func (s *Store) releaseLock(lock *os.File) {
	_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
	_ = lock.Close()
}
