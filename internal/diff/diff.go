// Package diff renders a document's unsaved changes as a unified diff
// against its on-disk content.
package diff

import (
	"fmt"
	"os"

	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
)

// Pending diffs a file's on-disk bytes against the given rendered form.
// An empty string means there is nothing pending.
func Pending(path string, rendered []byte) (string, error) {
	onDisk, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return Unified(path+" (on disk)", path+" (unsaved)", string(onDisk), string(rendered)), nil
}

// Unified computes a unified diff between two texts. Identical texts
// yield an empty string.
func Unified(oldName, newName, before, after string) string {
	edits := myers.ComputeEdits(span.URIFromPath(oldName), before, after)
	if len(edits) == 0 {
		return ""
	}
	return fmt.Sprint(gotextdiff.ToUnified(oldName, newName, before, edits))
}
