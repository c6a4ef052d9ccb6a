package state

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// FileState remembers where the user last was in a file. The hash and
// mtime gate selection restore: a file edited outside noteshift gets a
// fresh default selection instead of a stale one.
type FileState struct {
	MTime          int64  `json:"mtime"`
	Hash           string `json:"hash"`
	Selection      string `json:"selection"` // raw heading line of the last selected section
	SelectionLevel int    `json:"selection_level"`
}

// State represents the persisted session state
type State struct {
	Files map[string]*FileState `json:"files"`
}

// NewState creates a new empty state
func NewState() *State {
	return &State{
		Files: make(map[string]*FileState),
	}
}

// Load reads state from the state file
func Load(path string) (*State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewState(), nil
		}
		return nil, err
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}

	if state.Files == nil {
		state.Files = make(map[string]*FileState)
	}

	return &state, nil
}

// Save writes state to the state file
func (s *State) Save(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}

	return nil
}

// ComputeHash computes SHA256 hash of a file
func ComputeHash(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("sha256:%x", h.Sum(nil)), nil
}

// HasChanged checks if a file has changed since the state was recorded
// Uses hybrid mtime + hash approach
func (s *State) HasChanged(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}

	mtime := info.ModTime().Unix()

	fileState, exists := s.Files[path]
	if !exists {
		// Never seen before
		return true, nil
	}

	// Fast path: check mtime first
	if mtime == fileState.MTime {
		return false, nil
	}

	// mtime changed, compute hash to check for actual content changes
	hash, err := ComputeHash(path)
	if err != nil {
		return false, err
	}

	return hash != fileState.Hash, nil
}

// RememberSelection records the current selection for a file along with
// its mtime and content hash
func (s *State) RememberSelection(path, heading string, level int) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	hash, err := ComputeHash(path)
	if err != nil {
		return err
	}

	s.Files[path] = &FileState{
		MTime:          info.ModTime().Unix(),
		Hash:           hash,
		Selection:      heading,
		SelectionLevel: level,
	}

	return nil
}

// RestoreSelection returns the remembered selection for a file, but only
// when the file content is unchanged since it was recorded
func (s *State) RestoreSelection(path string) (string, int, bool) {
	fileState, exists := s.Files[path]
	if !exists || fileState.Selection == "" {
		return "", 0, false
	}

	changed, err := s.HasChanged(path)
	if err != nil || changed {
		return "", 0, false
	}

	return fileState.Selection, fileState.SelectionLevel, true
}
