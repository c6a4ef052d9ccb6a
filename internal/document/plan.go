package document

import (
	"path/filepath"

	"github.com/gerunddev/noteshift/internal/editplan"
)

// ExportPlan collects every section touched this session, bodies
// replaced or moves committed with effect, into an edit plan with the
// line ranges the sections occupy as the documents render now. Saving
// a document does not drop its sections from the plan.
func (s *Session) ExportPlan() *editplan.Plan {
	p := editplan.New()
	for _, d := range s.docs {
		for _, span := range d.Spans() {
			if !d.touched[span.Section.ID()] {
				continue
			}
			p.Add(editplan.Edit{
				FileName:  d.Path(),
				ItemName:  span.Section.Title(),
				Level:     span.Section.Level(),
				LineStart: span.StartLine,
				LineEnd:   span.EndLine,
			})
		}
	}
	return p
}

// ApplyPlan jumps each document's selection to its first section named
// by the plan, matched by title and level; names with no match are
// skipped. The session cursor moves to the first document with a
// matched section. Returns the number of sections matched.
func (s *Session) ApplyPlan(p *editplan.Plan) int {
	found := 0
	cursorSet := false
	for i, d := range s.docs {
		selected := false
		for _, e := range p.Edits {
			if !planNames(e.FileName, d.Path()) {
				continue
			}
			sec := d.Tree().FindTitle(e.ItemName, e.Level)
			if sec == nil {
				continue
			}
			found++
			if !selected {
				d.Select(sec)
				selected = true
			}
		}
		if selected && !cursorSet {
			s.idx = i
			cursorSet = true
		}
	}
	return found
}

// planNames reports whether a plan file name refers to the given
// document path, either exactly or by base name.
func planNames(planName, docPath string) bool {
	if planName == docPath {
		return true
	}
	return filepath.Base(planName) == filepath.Base(docPath)
}
