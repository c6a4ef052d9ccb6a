package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gerunddev/noteshift/internal/diff"
	"github.com/gerunddev/noteshift/internal/document"
	"github.com/gerunddev/noteshift/internal/section"
	"github.com/gerunddev/noteshift/internal/styles"
)

const (
	sectionHelp       = "↑/k up • ↓/j down • shift+↑/↓ same level • ←/→ parent/child • ctrl+↑/↓ move • enter edit • d diff • : command • esc files"
	sectionHelpSingle = "↑/k up • ↓/j down • shift+↑/↓ same level • ←/→ parent/child • ctrl+↑/↓ move • enter edit • d diff • : command • q quit"
	moveHelp          = "↑/↓ reorder • ←/→ level • home/end top/bottom • enter commit • esc cancel"
	diffHelp          = "↑/k up • ↓/j down • esc/q back"
)

func (a App) updateSections(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.showingDiff {
		return a.updateDiff(msg)
	}
	if a.session.Current().ActiveMove() != nil {
		return a.updateMove(msg)
	}

	doc := a.session.Current()

	switch msg.String() {
	case "up", "k":
		a.navigate(section.CmdPrev)
	case "down", "j":
		a.navigate(section.CmdNext)
	case "shift+up":
		a.navigate(section.CmdPrevSameLevel)
	case "shift+down":
		a.navigate(section.CmdNextSameLevel)
	case "left", "h":
		a.navigate(section.CmdParent)
	case "right", "l":
		a.navigate(section.CmdChild)
	case "home":
		a.navigate(section.CmdFirst)
	case "end":
		a.navigate(section.CmdLast)
	case "shift+home":
		a.navigate(section.CmdFirstSameLevel)
	case "shift+end":
		a.navigate(section.CmdLastSameLevel)

	case "ctrl+up":
		if mv := a.beginMove(); mv != nil {
			mv.Up()
			a.refreshOutline()
		}
	case "ctrl+down":
		if mv := a.beginMove(); mv != nil {
			mv.Down()
			a.refreshOutline()
		}
	case "ctrl+left":
		if mv := a.beginMove(); mv != nil {
			mv.Dedent()
			a.refreshOutline()
		}
	case "ctrl+right":
		if mv := a.beginMove(); mv != nil {
			mv.Indent()
			a.refreshOutline()
		}
	case "ctrl+home":
		if mv := a.beginMove(); mv != nil {
			mv.ToTop()
			a.refreshOutline()
		}
	case "ctrl+end":
		if mv := a.beginMove(); mv != nil {
			mv.ToBottom()
			a.refreshOutline()
		}

	case "enter":
		sel := doc.Selection()
		if sel == nil {
			return a, nil
		}
		body, err := doc.CheckoutBody(sel)
		if err != nil {
			a.errorf("%s", err)
			return a, nil
		}
		a.editor.SetValue(body)
		a.view = viewEditor
		return a, a.editor.Focus()

	case "d":
		text, err := diff.Pending(doc.Path(), doc.Render())
		if err != nil {
			a.errorf("%s", err)
			return a, nil
		}
		if text == "" {
			a.infof("no unsaved changes")
			return a, nil
		}
		a.preview.SetContent(text)
		a.preview.GotoTop()
		a.showingDiff = true

	case ":":
		a.command.SetValue("")
		a.view = viewCommand
		return a, a.command.Focus()

	case "esc", "q":
		if a.session.Mode() == document.ModeMulti {
			a.files.SetRows(a.fileRows())
			a.view = viewFiles
			return a, nil
		}
		if msg.String() == "q" {
			return a.quitOrWarn()
		}
	}

	return a, nil
}

// updateMove routes keys while a structural move is in flight. Plain
// and ctrl-modified arrows both reorder, so a move begun with a held
// modifier continues without releasing it.
func (a App) updateMove(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	doc := a.session.Current()
	mv := doc.ActiveMove()

	switch msg.String() {
	case "up", "k", "ctrl+up":
		mv.Up()
	case "down", "j", "ctrl+down":
		mv.Down()
	case "left", "h", "ctrl+left":
		mv.Dedent()
	case "right", "l", "ctrl+right":
		mv.Indent()
	case "home", "ctrl+home":
		mv.ToTop()
	case "end", "ctrl+end":
		mv.ToBottom()

	case "enter":
		if target, changed := doc.CommitMove(); changed {
			a.log.MoveCommitted(doc.Path(), target.Title(), target.Level())
			a.infof("moved %q", target.Title())
		}
	case "esc":
		if target := doc.CancelMove(); target != nil {
			a.log.MoveCanceled(doc.Path(), target.Title())
		}

	case ":":
		a.command.SetValue("")
		a.view = viewCommand
		return a, a.command.Focus()

	default:
		return a, nil
	}

	a.refreshOutline()
	return a, nil
}

func (a App) updateDiff(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "d":
		a.showingDiff = false
		return a, nil
	case "up", "k", "down", "j":
		var cmd tea.Cmd
		a.preview, cmd = a.preview.Update(msg)
		return a, cmd
	}
	return a, nil
}

// navigate applies a navigation command to the current document.
func (a *App) navigate(cmd section.Command) {
	if _, err := a.session.Current().Navigate(cmd); err != nil {
		a.errorf("%s", err)
		return
	}
	a.refreshOutline()
}

// beginMove starts a move of the current selection.
func (a *App) beginMove() *section.Move {
	doc := a.session.Current()
	sel := doc.Selection()
	if sel == nil {
		return nil
	}
	mv, err := doc.BeginMove(sel)
	if err != nil {
		a.errorf("%s", err)
		return nil
	}
	return mv
}

// refreshOutline re-renders the outline into the viewport and scrolls
// the selection into view.
func (a *App) refreshOutline() {
	doc := a.session.Current()
	secs := doc.Tree().Flatten()
	if len(secs) == 0 {
		a.outline.SetContent(styles.DimStyle.Render("(no sections)"))
		return
	}

	sel := doc.Selection()
	moving := doc.ActiveMove() != nil

	lines := make([]string, len(secs))
	selIdx := 0
	for i, s := range secs {
		if s == sel {
			selIdx = i
		}
		label := strings.Repeat("  ", s.Level()-1) + s.Title()
		if s.Dirty() {
			label += " *"
		}
		switch {
		case moving && s.Marker() == section.MarkerSelected:
			label = styles.SelectingStyle.Render(label)
		case s == sel:
			label = styles.SelectedStyle.Render(label)
		case s.Marker() == section.MarkerMoved:
			label = styles.MovedStyle.Render(label)
		case s.Dirty():
			label = styles.DirtyStyle.Render(label)
		default:
			label = styles.NormalTextStyle.Render(label)
		}
		lines[i] = label
	}

	a.outline.SetContent(strings.Join(lines, "\n"))

	if selIdx < a.outline.YOffset {
		a.outline.SetYOffset(selIdx)
	} else if selIdx >= a.outline.YOffset+a.outline.Height {
		a.outline.SetYOffset(selIdx - a.outline.Height + 1)
	}
}

func (a App) renderSections() string {
	var b strings.Builder
	doc := a.session.Current()

	b.WriteString(styles.TitleStyle.Render(doc.Title()))
	if doc.Dirty() {
		b.WriteString(styles.DirtyStyle.Render(" *"))
	}
	if a.session.Mode() == document.ModeMulti {
		b.WriteString("  ")
		b.WriteString(styles.DimStyle.Render(fmt.Sprintf("%d/%d", a.session.Index()+1, a.session.Len())))
	}
	b.WriteString("  ")
	b.WriteString(styles.DimStyle.Render(doc.Path()))
	b.WriteString("\n\n")

	if a.showingDiff {
		b.WriteString(a.preview.View())
		b.WriteString("\n\n")
		b.WriteString(a.bottomLine(diffHelp))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(a.outline.View())
	b.WriteString("\n\n")

	help := sectionHelp
	if doc.ActiveMove() != nil {
		help = moveHelp
	} else if a.session.Mode() == document.ModeSingle {
		help = sectionHelpSingle
	}
	b.WriteString(a.bottomLine(help))
	b.WriteString("\n")

	return b.String()
}
