package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gerunddev/noteshift/internal/section"
	"github.com/gerunddev/noteshift/internal/styles"
)

const editorHelp = "esc done • ctrl+c quit"

func (a App) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		doc := a.session.Current()
		if sec := doc.CheckedOut(); sec != nil {
			if _, err := doc.CheckinBody(sec, a.editor.Value()); err != nil {
				a.errorf("%s", err)
			}
		}
		a.editor.Blur()
		a.view = viewSections
		a.refreshOutline()
		return a, nil
	}

	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	return a, cmd
}

func (a App) renderEditor() string {
	var b strings.Builder
	doc := a.session.Current()

	b.WriteString(styles.TitleStyle.Render(doc.Title()))
	b.WriteString("\n")
	if sec := doc.CheckedOut(); sec != nil {
		b.WriteString(styles.BreadcrumbStyle.Render(breadcrumb(sec)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(a.editor.View())
	b.WriteString("\n\n")
	b.WriteString(a.bottomLine(editorHelp))
	b.WriteString("\n")

	return b.String()
}

// breadcrumb renders the path of titles from the top level down to the
// given section.
func breadcrumb(s *section.Section) string {
	var parts []string
	for cur := s; cur != nil && !cur.IsRoot(); cur = cur.Parent() {
		parts = append(parts, cur.Title())
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, " ▸ ")
}
