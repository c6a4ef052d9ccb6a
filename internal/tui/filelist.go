package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gerunddev/noteshift/internal/styles"
)

const fileHelp = "↑/k up • ↓/j down • enter open • q quit"

// fileRows builds one table row per open document.
func (a App) fileRows() []table.Row {
	rows := make([]table.Row, 0, a.session.Len())
	for _, d := range a.session.Documents() {
		state := ""
		if d.Dirty() {
			state = "unsaved"
		}
		tags := ""
		if meta, ok := d.Meta(); ok {
			tags = strings.Join(meta.Tags, ", ")
		}
		rows = append(rows, table.Row{
			d.Name(),
			d.Title(),
			tags,
			fmt.Sprintf("%d", d.Tree().Len()),
			state,
		})
	}
	return rows
}

func (a App) updateFiles(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.String() {
	case "q", "esc":
		return a.quitOrWarn()
	case "up", "k", "down", "j":
		a.files, cmd = a.files.Update(msg)
		return a, cmd
	case "enter":
		a.session.Select(a.files.Cursor())
		a.view = viewSections
		a.refreshOutline()
		return a, nil
	}

	return a, nil
}

func (a App) renderFiles() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("noteshift"))
	b.WriteString("  ")
	b.WriteString(styles.DimStyle.Render(fmt.Sprintf("%d file(s)", a.session.Len())))
	b.WriteString("\n\n")
	b.WriteString(styles.TableStyle.Render(a.files.View()))
	b.WriteString("\n\n")
	b.WriteString(a.bottomLine(fileHelp))
	b.WriteString("\n")

	return b.String()
}
