// Package document binds markdown files to section trees and carries
// the bookkeeping of an edit session: the current selection, the
// exclusive body checkout, and saving back to disk.
package document

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gerunddev/noteshift/internal/parser"
	"github.com/gerunddev/noteshift/internal/section"
)

// Document is one markdown file under edit: its section tree plus the
// bytes the tree does not model (preamble, line break flavor).
type Document struct {
	path      string
	tree      *section.Tree
	preamble  []byte
	lineBreak []byte
	hash      string
	meta      parser.Frontmatter
	hasMeta   bool
	selection *section.Section
	checkout  *section.Section
	touched   map[string]bool
}

// Load reads and parses a markdown file. A file with no headings is
// valid: the tree is empty and the whole file is preamble.
func Load(path string) (*Document, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	records := parser.ParseHeaders(src)
	headers := make([]section.Header, len(records))
	for i, r := range records {
		headers[i] = section.Header{
			Level: r.Level,
			Line:  string(r.Line(src)),
			Body:  string(r.Body(src)),
		}
	}

	tree, err := section.Build(headers)
	if err != nil {
		return nil, fmt.Errorf("failed to build section tree for %s: %w", path, err)
	}

	preamble := src
	if len(records) > 0 {
		preamble = src[:records[0].LineStart]
	}

	meta, hasMeta := parser.ExtractFrontmatter(src)

	return &Document{
		path:      path,
		tree:      tree,
		preamble:  preamble,
		lineBreak: parser.DetectLineBreak(src),
		hash:      hashBytes(src),
		meta:      meta,
		hasMeta:   hasMeta,
		selection: tree.First(),
		touched:   make(map[string]bool),
	}, nil
}

// Path returns the file path the document was loaded from.
func (d *Document) Path() string { return d.path }

// Name returns the file's base name.
func (d *Document) Name() string { return filepath.Base(d.path) }

// Tree returns the document's section tree.
func (d *Document) Tree() *section.Tree { return d.tree }

// Hash returns the content hash as of the last load or save.
func (d *Document) Hash() string { return d.hash }

// Meta returns the front matter metadata and whether the file has any.
func (d *Document) Meta() (parser.Frontmatter, bool) { return d.meta, d.hasMeta }

// Title returns the front matter title when one is set, the file name
// otherwise.
func (d *Document) Title() string {
	if d.hasMeta && d.meta.Title != "" {
		return d.meta.Title
	}
	return d.Name()
}

// Dirty reports whether the document has unsaved changes. A structural
// move still in flight counts once it has changed the tree.
func (d *Document) Dirty() bool {
	if m := d.tree.ActiveMove(); m != nil && m.Changed() {
		return true
	}
	return d.tree.Dirty()
}

// Selection returns the currently selected section, nil for an empty
// document.
func (d *Document) Selection() *section.Section { return d.selection }

// Select makes the given section current.
func (d *Document) Select(s *section.Section) { d.selection = s }

// Navigate applies a navigation command to the current selection and
// returns the section it lands on. At a boundary the selection stays
// put.
func (d *Document) Navigate(cmd section.Command) (*section.Section, error) {
	next, err := d.tree.Navigate(d.selection, cmd)
	if err != nil {
		return nil, err
	}
	if next != nil {
		d.selection = next
	}
	return d.selection, nil
}

// CheckoutBody hands out a section's body for editing. Only one body
// may be out at a time.
func (d *Document) CheckoutBody(s *section.Section) (string, error) {
	if d.checkout != nil {
		return "", ErrCheckoutActive
	}
	if s == nil || s.IsRoot() {
		return "", section.ErrRootSection
	}
	d.checkout = s
	return s.EditableBody(), nil
}

// CheckinBody replaces the checked-out section's body with the
// normalized form of the edited text and reports whether it changed.
func (d *Document) CheckinBody(s *section.Section, text string) (bool, error) {
	if d.checkout == nil || d.checkout != s {
		return false, ErrNoCheckout
	}
	d.checkout = nil
	changed := s.ReplaceBody(text, string(d.lineBreak))
	if changed {
		d.touched[s.ID()] = true
	}
	return changed, nil
}

// DiscardCheckout abandons an active checkout without touching the body.
func (d *Document) DiscardCheckout() { d.checkout = nil }

// CheckedOut returns the section currently out for editing, or nil.
func (d *Document) CheckedOut() *section.Section { return d.checkout }

// BeginMove starts a structural move of the given section.
func (d *Document) BeginMove(s *section.Section) (*section.Move, error) {
	return d.tree.BeginMove(s)
}

// ActiveMove returns the move in flight, or nil.
func (d *Document) ActiveMove() *section.Move { return d.tree.ActiveMove() }

// CommitMove ends the active move keeping the new order, and reports
// the moved section and whether the move had any effect. Without an
// active move it is a no-op.
func (d *Document) CommitMove() (*section.Section, bool) {
	m := d.tree.ActiveMove()
	if m == nil {
		return nil, false
	}
	target, changed := m.Target(), m.Changed()
	m.Commit()
	if changed {
		d.touched[target.ID()] = true
	}
	return target, changed
}

// CancelMove ends the active move restoring the order it started from,
// and returns the section that had been moving. Without an active move
// it is a no-op.
func (d *Document) CancelMove() *section.Section {
	m := d.tree.ActiveMove()
	if m == nil {
		return nil
	}
	target := m.Target()
	m.Cancel()
	return target
}

// Render serializes the current tree without writing it anywhere.
func (d *Document) Render() []byte {
	return d.tree.Serialize(d.preamble, d.lineBreak)
}

// Save serializes the document and writes it to disk. Success clears
// every dirty flag and move marker and refreshes the stored hash; on
// failure the error passes through and the tree keeps its state.
func (d *Document) Save() (int, error) {
	data := d.Render()
	if err := os.WriteFile(d.path, data, 0644); err != nil {
		return 0, err
	}
	d.tree.MarkClean()
	d.hash = hashBytes(data)
	return len(data), nil
}

// Span is a section's line range in the rendered document, 1-based and
// inclusive, from the heading line through the last body line.
type Span struct {
	Section   *section.Section
	StartLine int
	EndLine   int
}

// Spans returns the line range of every section as the document renders
// now. The ranges tile the rendered file after the preamble.
func (d *Document) Spans() []Span {
	secs := d.tree.Flatten()
	if len(secs) == 0 {
		return nil
	}

	lb := d.lineBreak
	if len(lb) == 0 {
		lb = []byte("\n")
	}

	line := bytes.Count(d.preamble, lb) + 1
	spans := make([]Span, len(secs))
	for i, s := range secs {
		body := []byte(s.Body())
		end := line + bytes.Count(body, lb)
		if len(body) > 0 && !bytes.HasSuffix(body, lb) {
			end++
		}
		spans[i] = Span{Section: s, StartLine: line, EndLine: end}
		line = end + 1
	}

	// Serializing normalizes trailing breaks, which only ever moves the
	// tail of the last section.
	spans[len(spans)-1].EndLine = bytes.Count(d.Render(), lb)
	return spans
}

func hashBytes(data []byte) string {
	return fmt.Sprintf("sha256:%x", sha256.Sum256(data))
}
