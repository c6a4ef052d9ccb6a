package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func (a App) updateCommand(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		input := strings.TrimSpace(a.command.Value())
		a.command.Blur()
		a.view = viewSections
		return a.execute(input)
	case "esc":
		a.command.Blur()
		a.view = viewSections
		return a, nil
	}

	var cmd tea.Cmd
	a.command, cmd = a.command.Update(msg)
	return a, cmd
}

// execute runs one colon command: w, q, q!, x, wn, wp, plan <path>.
func (a App) execute(input string) (tea.Model, tea.Cmd) {
	name, arg, _ := strings.Cut(input, " ")
	arg = strings.TrimSpace(arg)

	switch name {
	case "":
		return a, nil

	case "w":
		if a.writeCurrent() {
			a.refreshOutline()
		}
		return a, nil

	case "q":
		if a.session.Dirty() {
			a.errorf("no write since last change (:q! overrides)")
			return a, nil
		}
		return a, tea.Quit

	case "q!":
		return a, tea.Quit

	case "x":
		if a.writeAll() {
			return a, tea.Quit
		}
		return a, nil

	case "wn":
		if a.writeCurrent() {
			a.session.Next()
			a.refreshOutline()
		}
		return a, nil

	case "wp":
		if a.writeCurrent() {
			a.session.Prev()
			a.refreshOutline()
		}
		return a, nil

	case "plan":
		if arg == "" {
			a.errorf("usage: plan <path>")
			return a, nil
		}
		p := a.session.ExportPlan()
		if err := p.Save(arg); err != nil {
			a.errorf("%s", err)
			return a, nil
		}
		a.log.PlanExported(arg, len(p.Edits))
		a.infof("exported %d edit(s) to %s", len(p.Edits), arg)
		return a, nil

	default:
		a.errorf("unknown command: %s", name)
		return a, nil
	}
}

// writeCurrent saves the current document. A move still in flight is
// committed first. A failed write leaves the document dirty and reports
// the error as is.
func (a *App) writeCurrent() bool {
	doc := a.session.Current()
	if target, changed := doc.CommitMove(); changed {
		a.log.MoveCommitted(doc.Path(), target.Title(), target.Level())
	}
	start := time.Now()
	n, err := doc.Save()
	if err != nil {
		a.log.FileError(doc.Path(), err)
		a.errorf("%s", err)
		return false
	}
	a.log.DocumentSaved(doc.Path(), n, time.Since(start))
	a.infof("wrote %s (%d bytes)", doc.Name(), n)
	return true
}

// writeAll saves every dirty document, stopping at the first failure.
func (a *App) writeAll() bool {
	for _, doc := range a.session.Documents() {
		if !doc.Dirty() {
			continue
		}
		if target, changed := doc.CommitMove(); changed {
			a.log.MoveCommitted(doc.Path(), target.Title(), target.Level())
		}
		start := time.Now()
		n, err := doc.Save()
		if err != nil {
			a.log.FileError(doc.Path(), err)
			a.errorf("%s: %s", doc.Name(), err)
			return false
		}
		a.log.DocumentSaved(doc.Path(), n, time.Since(start))
	}
	return true
}
