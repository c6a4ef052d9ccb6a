package section

import (
	"strings"
)

// Marker is the move marker of a section. It drives the list colors:
// none, orange while a move is in progress, red after a committed move
// that has not reached disk yet.
type Marker int

const (
	MarkerNone Marker = iota
	MarkerSelected
	MarkerMoved
)

// Section is one heading with its body. Sections are identified by
// pointer and by a stable ID; moves never recreate them, so markers,
// dirty flags, and selections survive any reordering.
type Section struct {
	id       string
	level    int
	line     string // raw heading line, no terminator
	body     string // raw bytes up to the next heading line
	parent   *Section
	children []*Section
	dirty    bool
	marker   Marker
}

// ID returns the stable identity assigned when the tree was built.
func (s *Section) ID() string { return s.id }

// Level returns the heading level, 1..6. The synthetic root is level 0.
func (s *Section) Level() int { return s.level }

// Line returns the raw heading line without its terminator.
func (s *Section) Line() string { return s.line }

// Body returns the raw body bytes.
func (s *Section) Body() string { return s.body }

// Parent returns the parent section, or nil for the root.
func (s *Section) Parent() *Section { return s.parent }

// Children returns the ordered child sections. The slice is owned by the
// tree; callers must not mutate it.
func (s *Section) Children() []*Section { return s.children }

// Dirty reports whether the section changed since the last save.
func (s *Section) Dirty() bool { return s.dirty }

// Marker returns the current move marker.
func (s *Section) Marker() Marker { return s.marker }

// IsRoot reports whether this is the synthetic root.
func (s *Section) IsRoot() bool { return s.level == 0 }

// Title returns the heading text without ATX markers or a trailing
// closing sequence, for display.
func (s *Section) Title() string {
	t := strings.TrimLeft(s.line, " \t")
	t = strings.TrimLeft(t, "#")
	t = strings.TrimSpace(t)

	// Strip a CommonMark closing sequence ("## Title ##")
	end := len(t)
	for end > 0 && t[end-1] == '#' {
		end--
	}
	if end < len(t) && (end == 0 || t[end-1] == ' ' || t[end-1] == '\t') {
		t = strings.TrimRight(t[:end], " \t")
	}
	return t
}

// EditableBody returns the body with surrounding blank space trimmed,
// the form handed to the editor.
func (s *Section) EditableBody() string {
	return strings.TrimSpace(s.body)
}

// ReplaceBody replaces the body wholesale with the normalized form of
// the edited text and reports whether it changed. A changed body marks
// the section dirty. The padding uses the document's line break.
func (s *Section) ReplaceBody(text, lineBreak string) bool {
	normalized := normalizeBody(text, lineBreak)
	if normalized == s.body {
		return false
	}
	s.body = normalized
	s.dirty = true
	return true
}

// normalizeBody pads edited text back into body form: a blank line after
// the heading and a blank line before the next one.
func normalizeBody(text, lineBreak string) string {
	if lineBreak == "" {
		lineBreak = "\n"
	}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return lineBreak + lineBreak
	}
	return lineBreak + trimmed + lineBreak + lineBreak
}

func (s *Section) nextSibling() *Section {
	p := s.parent
	if p == nil {
		return nil
	}
	i := childIndex(p, s)
	if i >= 0 && i+1 < len(p.children) {
		return p.children[i+1]
	}
	return nil
}

func (s *Section) prevSibling() *Section {
	p := s.parent
	if p == nil {
		return nil
	}
	i := childIndex(p, s)
	if i > 0 {
		return p.children[i-1]
	}
	return nil
}

func childIndex(p, c *Section) int {
	for i, x := range p.children {
		if x == c {
			return i
		}
	}
	return -1
}

// subtreeSize counts the section and all its descendants.
func subtreeSize(s *Section) int {
	n := 1
	for _, c := range s.children {
		n += subtreeSize(c)
	}
	return n
}

// Tree is the section tree of one document. The synthetic level-0 root
// is never serialized and never selectable; its children are the
// top-level sections.
type Tree struct {
	root   *Section
	active *Move
}

// Root returns the synthetic root.
func (t *Tree) Root() *Section { return t.root }

// Empty reports whether the document has no sections.
func (t *Tree) Empty() bool { return len(t.root.children) == 0 }

// Len returns the number of sections, excluding the root.
func (t *Tree) Len() int { return subtreeSize(t.root) - 1 }

// Dirty reports whether any section has unsaved changes.
func (t *Tree) Dirty() bool {
	for _, s := range t.Flatten() {
		if s.dirty || s.marker == MarkerMoved {
			return true
		}
	}
	return false
}

// Flatten returns the sections in pre-order, excluding the root.
func (t *Tree) Flatten() []*Section {
	out := make([]*Section, 0, t.Len())
	var walk func(*Section)
	walk = func(s *Section) {
		for _, c := range s.children {
			out = append(out, c)
			walk(c)
		}
	}
	walk(t.root)
	return out
}

// Find returns the section with the given ID, or nil.
func (t *Tree) Find(id string) *Section {
	for _, s := range t.Flatten() {
		if s.id == id {
			return s
		}
	}
	return nil
}

// FindHeading returns the first section whose raw heading line and level
// match, or nil. Used to re-locate a section across a reload.
func (t *Tree) FindHeading(line string, level int) *Section {
	for _, s := range t.Flatten() {
		if s.level == level && s.line == line {
			return s
		}
	}
	return nil
}

// FindTitle returns the first section with the given title and level,
// or nil. Edit plans name sections this way.
func (t *Tree) FindTitle(title string, level int) *Section {
	for _, s := range t.Flatten() {
		if s.level == level && s.Title() == title {
			return s
		}
	}
	return nil
}

// MarkClean clears every dirty flag and move marker, after a successful
// write to storage.
func (t *Tree) MarkClean() {
	for _, s := range t.Flatten() {
		s.dirty = false
		s.marker = MarkerNone
	}
}

// contains reports whether s belongs to this tree.
func (t *Tree) contains(s *Section) bool {
	for p := s; p != nil; p = p.parent {
		if p == t.root {
			return true
		}
	}
	return false
}
