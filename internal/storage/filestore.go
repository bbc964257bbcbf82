// Package storage provides persistence for the runner: a plain-text gateway
// for the two scalar values the game keeps across processes, and a SQLite
// history of finished runs backing the scoreboard.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tavrel/runline/internal/core"
	"github.com/tavrel/runline/internal/game"
)

const (
	highScoreFile = "highscore"
	volumeFile    = "volume"

	defaultVolume = 1.0
)

// FileStore persists the high score and volume as bare decimal text, one
// file per value, no schema, no versioning. Reads trim surrounding
// whitespace and silently fall back to defaults on any failure; writes are
// best-effort and report errors for the caller to log and ignore.
type FileStore struct {
	dir string
}

// NewFileStore creates a file store rooted at dir (a leading ~ expands to
// the home directory). Directory creation is best-effort: if it fails,
// reads default and writes surface errors, which is exactly the gateway's
// failure contract.
func NewFileStore(dir string) *FileStore {
	if expanded, err := expandHome(dir); err == nil {
		dir = expanded
	}
	_ = os.MkdirAll(dir, 0o755)
	return &FileStore{dir: dir}
}

// HighScore returns the stored best distance, or 0 when the record is
// missing, unreadable or malformed.
func (fs *FileStore) HighScore() int {
	data, err := os.ReadFile(filepath.Join(fs.dir, highScoreFile))
	if err != nil {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// SaveHighScore writes the best distance as plain decimal text.
func (fs *FileStore) SaveHighScore(score int) error {
	return fs.write(highScoreFile, strconv.Itoa(score))
}

// Volume returns the stored volume clamped to [0, 1], or full volume when
// the record is missing, unreadable or malformed.
func (fs *FileStore) Volume() float64 {
	data, err := os.ReadFile(filepath.Join(fs.dir, volumeFile))
	if err != nil {
		return defaultVolume
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(string(data)), 64)
	if err != nil {
		return defaultVolume
	}
	return core.ClampF(v, 0, 1)
}

// SaveVolume writes the volume as plain decimal text.
func (fs *FileStore) SaveVolume(v float64) error {
	return fs.write(volumeFile, strconv.FormatFloat(v, 'f', -1, 64))
}

// Dir returns the store's data directory.
func (fs *FileStore) Dir() string {
	return fs.dir
}

func (fs *FileStore) write(name, value string) error {
	path := filepath.Join(fs.dir, name)
	if err := os.WriteFile(path, []byte(value), 0o644); err != nil {
		return fmt.Errorf("storage: cannot write %s: %w", name, err)
	}
	return nil
}

// expandHome expands a leading ~ to the user's home directory.
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

// Ensure FileStore implements the simulation's persistence gateway
var _ game.Gateway = (*FileStore)(nil)
