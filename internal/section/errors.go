// Package section implements the heading tree a markdown document is
// edited through: building it from flat header records, navigating it,
// reordering sections while preserving their identity, and serializing
// the tree back to bytes.
package section

import "errors"

// Structural errors. These indicate caller bugs rather than bad user
// input; the application layer treats them as fatal.
var (
	// ErrLevelRange indicates a header record with a level outside 1..6.
	ErrLevelRange = errors.New("heading level out of range")

	// ErrRootSection indicates an operation targeting the synthetic root,
	// which is never selectable.
	ErrRootSection = errors.New("operation on synthetic root")

	// ErrNotInTree indicates an operation naming a section that does not
	// belong to the tree.
	ErrNotInTree = errors.New("section not in tree")

	// ErrUnknownCommand indicates a navigation command outside the
	// command set.
	ErrUnknownCommand = errors.New("unknown navigation command")
)

// Move errors
var (
	// ErrMoveActive indicates a second move was begun while one is in
	// flight. A tree carries at most one move at a time.
	ErrMoveActive = errors.New("another move is already active")
)
