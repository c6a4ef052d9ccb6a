// Package editplan reads and writes edit plans: JSON lists of sections
// across files, produced by external tooling or exported from a
// session, used to open those files and jump to the named sections.
package editplan

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Edit names one section of one file, with the line range it occupied
// when the plan was written. Lines are 1-based and inclusive.
type Edit struct {
	FileName  string `json:"file_name"`
	ItemName  string `json:"item_name"`
	Level     int    `json:"level"`
	LineStart int    `json:"line_start"`
	LineEnd   int    `json:"line_end"`
}

// Plan is an ordered list of edits.
type Plan struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Edits     []Edit    `json:"edits"`
}

// New returns an empty plan with a fresh ID.
func New() *Plan {
	return &Plan{
		ID:        uuid.New().String(),
		CreatedAt: time.Now().UTC(),
	}
}

// Load reads and validates a plan file.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file: %w", err)
	}

	var p Plan
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse plan file: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid plan file %s: %w", path, err)
	}
	return &p, nil
}

// Save writes the plan as indented JSON, creating parent directories as
// needed.
func (p *Plan) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create plan directory: %w", err)
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal plan: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks every edit for the fields a session needs to locate
// its section.
func (p *Plan) Validate() error {
	for i, e := range p.Edits {
		if e.FileName == "" {
			return fmt.Errorf("edit %d: file_name is required", i)
		}
		if e.ItemName == "" {
			return fmt.Errorf("edit %d: item_name is required", i)
		}
		if e.Level < 1 || e.Level > 6 {
			return fmt.Errorf("edit %d: level must be between 1 and 6, got %d", i, e.Level)
		}
	}
	return nil
}

// Add appends an edit.
func (p *Plan) Add(e Edit) {
	p.Edits = append(p.Edits, e)
}

// Files returns the distinct file names in plan order.
func (p *Plan) Files() []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range p.Edits {
		if !seen[e.FileName] {
			seen[e.FileName] = true
			out = append(out, e.FileName)
		}
	}
	return out
}

// ForFile returns the edits naming the given file, in plan order.
func (p *Plan) ForFile(name string) []Edit {
	var out []Edit
	for _, e := range p.Edits {
		if e.FileName == name {
			out = append(out, e)
		}
	}
	return out
}
