// Package save persists a game to a single JSON document.
package save

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/appengine-ltd/idlecraft/internal/game"
)

const FormatVersion = 1

// File is the on-disk save layout.
type File struct {
	FormatVersion int          `json:"format_version"`
	SaveID        uuid.UUID    `json:"save_id"`
	Screen        game.Screen  `json:"game_state"`
	Player        game.Player  `json:"player"`
	Quests        []game.Quest `json:"quests"`
	Timestamp     int64        `json:"timestamp"`
}

// SavedAt converts the unix-second timestamp.
func (f File) SavedAt() time.Time {
	return time.Unix(f.Timestamp, 0)
}

type Store struct {
	Path string
}

func NewStore(path string) *Store {
	return &Store{Path: path}
}

// Load reads the save file. Missing and malformed files both come back as
// a non-nil error; callers start a fresh game in either case.
func (s *Store) Load() (File, error) {
	raw, err := os.ReadFile(s.Path)
	if err != nil {
		return File{}, err
	}
	var f File
	if err := json.Unmarshal(raw, &f); err != nil {
		return File{}, fmt.Errorf("decode %s: %w", s.Path, err)
	}
	if f.FormatVersion > FormatVersion {
		return File{}, fmt.Errorf("%s has format version %d, newer than %d", s.Path, f.FormatVersion, FormatVersion)
	}
	return f, nil
}

// Save writes f through a temp file and rename. A zero SaveID is replaced
// with a fresh one, which is also returned in the written copy.
func (s *Store) Save(f File) (File, error) {
	if f.SaveID == uuid.Nil {
		f.SaveID = uuid.New()
	}
	f.FormatVersion = FormatVersion
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return File{}, fmt.Errorf("encode save: %w", err)
	}
	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return File{}, fmt.Errorf("create save directory: %w", err)
		}
	}
	tmp := s.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return File{}, fmt.Errorf("write temp save: %w", err)
	}
	if err := os.Rename(tmp, s.Path); err != nil {
		_ = os.Remove(tmp)
		return File{}, fmt.Errorf("replace save: %w", err)
	}
	return f, nil
}

// IsMissing reports whether a Load error means there was no save yet.
func IsMissing(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}

// Elapsed is the wall time since savedAt, clamped to zero when the clock
// went backwards.
func Elapsed(savedAt, now time.Time) time.Duration {
	d := now.Sub(savedAt)
	if d < 0 {
		return 0
	}
	return d
}
