// Package tui is the interactive editor: a file list over the open
// documents, the section outline with structural move mode, a body
// editor, and a vim-style command line. One App model owns all of it;
// every mutation of the session runs on the update loop.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gerunddev/noteshift/internal/config"
	"github.com/gerunddev/noteshift/internal/document"
	"github.com/gerunddev/noteshift/internal/logger"
	"github.com/gerunddev/noteshift/internal/styles"
)

// view selects which screen has the keyboard.
type view int

const (
	viewFiles view = iota
	viewSections
	viewEditor
	viewCommand
)

// App is the Bubble Tea model for an editing session.
type App struct {
	session *document.Session
	cfg     *config.Config
	log     *logger.Logger

	view view

	files   table.Model
	outline viewport.Model
	preview viewport.Model
	editor  textarea.Model
	command textinput.Model

	showingDiff bool
	quitWarned  bool
	message     string
	width       int
	height      int
	ready       bool
}

// New builds the model for a session. Multi-file sessions start on the
// file list, single-file sessions go straight to the outline.
func New(sess *document.Session, cfg *config.Config, log *logger.Logger) App {
	columns := []table.Column{
		{Title: "File", Width: 24},
		{Title: "Title", Width: 26},
		{Title: "Tags", Width: 16},
		{Title: "Sections", Width: 8},
		{Title: "State", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(20),
	)

	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(styles.Border)).
		BorderBottom(true).
		Bold(false)
	ts.Selected = ts.Selected.
		Foreground(lipgloss.Color(styles.Background)).
		Background(lipgloss.Color(styles.Yellow)).
		Bold(false)
	t.SetStyles(ts)

	vp := viewport.New(80, 20)
	vp.Style = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(styles.Border))

	pv := viewport.New(80, 20)
	pv.Style = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(styles.Border)).
		Padding(0, 1)

	// Bodies can be arbitrarily long; lift the textarea's default
	// char and line limits.
	ed := textarea.New()
	ed.ShowLineNumbers = false
	ed.CharLimit = 0
	ed.MaxHeight = 0

	ci := textinput.New()
	ci.Prompt = ":"

	v := viewSections
	if sess.Mode() == document.ModeMulti {
		v = viewFiles
	}

	a := App{
		session: sess,
		cfg:     cfg,
		log:     log,
		view:    v,
		files:   t,
		outline: vp,
		preview: pv,
		editor:  ed,
		command: ci,
	}
	a.files.SetRows(a.fileRows())
	a.refreshOutline()
	return a
}

func (a App) Init() tea.Cmd {
	return nil
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.files.SetHeight(msg.Height - 8)
		a.outline.Width = msg.Width - 4
		a.outline.Height = msg.Height - 6
		a.preview.Width = msg.Width - 4
		a.preview.Height = msg.Height - 6
		w := a.cfg.WrapWidth
		if w > msg.Width-4 {
			w = msg.Width - 4
		}
		a.editor.SetWidth(w)
		a.editor.SetHeight(msg.Height - 7)
		a.command.Width = msg.Width - 4
		a.ready = true
		a.refreshOutline()
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		a.message = ""
		if msg.String() != "q" {
			a.quitWarned = false
		}

		switch a.view {
		case viewFiles:
			return a.updateFiles(msg)
		case viewSections:
			return a.updateSections(msg)
		case viewEditor:
			return a.updateEditor(msg)
		case viewCommand:
			return a.updateCommand(msg)
		}
	}

	return a, nil
}

func (a App) View() string {
	if !a.ready {
		return ""
	}

	switch a.view {
	case viewFiles:
		return a.renderFiles()
	case viewEditor:
		return a.renderEditor()
	default:
		// The command line renders as the bottom line of the outline.
		return a.renderSections()
	}
}

// quitOrWarn quits immediately when nothing is unsaved, otherwise asks
// for a second press.
func (a App) quitOrWarn() (tea.Model, tea.Cmd) {
	if !a.session.Dirty() || a.quitWarned {
		return a, tea.Quit
	}
	a.quitWarned = true
	a.errorf("unsaved changes (q again to quit, :w to write)")
	return a, nil
}

// infof and errorf set the one-shot status message. It survives until
// the next key press.
func (a *App) infof(format string, args ...any) {
	a.message = styles.SuccessStyle.Render(fmt.Sprintf(format, args...))
}

func (a *App) errorf(format string, args ...any) {
	a.message = styles.ErrorStyle.Render("✗ " + fmt.Sprintf(format, args...))
}

// bottomLine is the status line shared by every screen: the command
// input while it is open, then a one-shot message, then the help text.
func (a App) bottomLine(help string) string {
	if a.view == viewCommand {
		return a.command.View()
	}
	if a.message != "" {
		return a.message
	}
	return styles.HelpStyle.Render(help)
}
