package save

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/lukeberry99/duck/internal/config"
	"github.com/lukeberry99/duck/internal/game"
)

// ErrNoSave means neither the primary nor the backup snapshot could be
// loaded. Callers start a fresh session; it is never a crash.
var ErrNoSave = errors.New("no usable save found")

const (
	primaryFile = "save.json"
	backupFile  = "save.backup.json"
)

// FileStore persists snapshots as a primary file plus a one-generation
// backup. Writes go through a temp file and rename; the previous primary
// becomes the backup before it is replaced, so a torn write can always fall
// back one save. The balance is needed on load so old-version snapshots
// migrate against the active tuning rather than hardcoded defaults.
type FileStore struct {
	dir string
	bal config.Balance
}

func NewFileStore(dir string, bal config.Balance) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create save dir: %w", err)
	}
	return &FileStore{dir: dir, bal: bal}, nil
}

func (s *FileStore) primaryPath() string { return filepath.Join(s.dir, primaryFile) }
func (s *FileStore) backupPath() string  { return filepath.Join(s.dir, backupFile) }

// Save writes a snapshot of the given state, rotating the previous primary
// into the backup slot.
func (s *FileStore) Save(st game.State, now time.Time) error {
	b, err := Encode(NewSnapshot(st, now))
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	if _, err := os.Stat(s.primaryPath()); err == nil {
		if err := os.Rename(s.primaryPath(), s.backupPath()); err != nil {
			return fmt.Errorf("rotate backup: %w", err)
		}
	}

	tmp := s.primaryPath() + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := os.Rename(tmp, s.primaryPath()); err != nil {
		return fmt.Errorf("commit snapshot: %w", err)
	}
	return nil
}

// Load reads and validates the primary snapshot, falling back to the backup
// when the primary is missing or corrupt. ErrNoSave means both failed and
// the caller should initialize fresh state.
func (s *FileStore) Load() (Snapshot, error) {
	snap, err := s.loadFile(s.primaryPath())
	if err == nil {
		return snap, nil
	}

	snap, backupErr := s.loadFile(s.backupPath())
	if backupErr == nil {
		return snap, nil
	}
	return Snapshot{}, fmt.Errorf("%w: primary: %v, backup: %v", ErrNoSave, err, backupErr)
}

func (s *FileStore) loadFile(path string) (Snapshot, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, err
	}
	return Decode(raw, s.bal)
}
