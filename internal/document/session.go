package document

import (
	"github.com/gerunddev/noteshift/internal/logger"
	"github.com/gerunddev/noteshift/internal/state"
)

// Mode selects how a session ends and how it moves between files.
type Mode int

const (
	// ModeSingle edits exactly one file; quitting exits the program.
	ModeSingle Mode = iota
	// ModeMulti edits a set of files with a file list to return to.
	ModeMulti
)

// Session is an ordered set of open documents and the cursor over them.
// One command at a time mutates a document; the update loop of the UI
// provides that ordering, so the session carries no locks.
type Session struct {
	mode Mode
	docs []*Document
	idx  int
}

// NewSession loads the given files. In multi mode files that fail to
// load are logged and skipped; in single mode the load error is
// returned as is. A session with nothing loaded is an error.
func NewSession(paths []string, mode Mode, log *logger.Logger) (*Session, error) {
	s := &Session{mode: mode}
	for _, p := range paths {
		doc, err := Load(p)
		if err != nil {
			if mode == ModeSingle {
				return nil, err
			}
			log.Skipped(p, err.Error())
			continue
		}
		log.DocumentLoaded(p, doc.Tree().Len())
		s.docs = append(s.docs, doc)
	}
	if len(s.docs) == 0 {
		return nil, ErrNoDocuments
	}
	return s, nil
}

// Mode returns the session mode.
func (s *Session) Mode() Mode { return s.mode }

// Documents returns the open documents in order.
func (s *Session) Documents() []*Document { return s.docs }

// Len returns the number of open documents.
func (s *Session) Len() int { return len(s.docs) }

// Index returns the cursor position.
func (s *Session) Index() int { return s.idx }

// Current returns the document under the cursor.
func (s *Session) Current() *Document { return s.docs[s.idx] }

// Select moves the cursor to the i-th document, clamped to the valid
// range, and returns it.
func (s *Session) Select(i int) *Document {
	if i < 0 {
		i = 0
	}
	if i >= len(s.docs) {
		i = len(s.docs) - 1
	}
	s.idx = i
	return s.docs[s.idx]
}

// Next advances the cursor, wrapping past the last document.
func (s *Session) Next() *Document {
	s.idx = (s.idx + 1) % len(s.docs)
	return s.docs[s.idx]
}

// Prev steps the cursor back, wrapping past the first document.
func (s *Session) Prev() *Document {
	s.idx = (s.idx - 1 + len(s.docs)) % len(s.docs)
	return s.docs[s.idx]
}

// Dirty reports whether any open document has unsaved changes.
func (s *Session) Dirty() bool {
	for _, d := range s.docs {
		if d.Dirty() {
			return true
		}
	}
	return false
}

// RestoreSelections re-selects each document's remembered section, for
// files whose content is unchanged since the selection was recorded.
func (s *Session) RestoreSelections(st *state.State, log *logger.Logger) {
	for _, d := range s.docs {
		heading, level, ok := st.RestoreSelection(d.Path())
		if !ok {
			continue
		}
		if sec := d.Tree().FindHeading(heading, level); sec != nil {
			d.Select(sec)
			log.SelectionRestored(d.Path(), heading)
		}
	}
}

// RememberSelections records each document's current selection.
func (s *Session) RememberSelections(st *state.State, log *logger.Logger) {
	for _, d := range s.docs {
		sel := d.Selection()
		if sel == nil {
			continue
		}
		if err := st.RememberSelection(d.Path(), sel.Line(), sel.Level()); err != nil {
			log.StateError("remember selection", err)
		}
	}
}
