// Package commands implements the CLI commands of noteshift.
package commands

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	chlog "github.com/charmbracelet/log"

	"github.com/gerunddev/noteshift/internal/config"
	"github.com/gerunddev/noteshift/internal/discover"
	"github.com/gerunddev/noteshift/internal/document"
	"github.com/gerunddev/noteshift/internal/editplan"
	"github.com/gerunddev/noteshift/internal/logger"
	"github.com/gerunddev/noteshift/internal/state"
	"github.com/gerunddev/noteshift/internal/styles"
	"github.com/gerunddev/noteshift/internal/tui"
)

// Edit opens the interactive editor. The positional argument may be a
// file (single-file session) or a directory (multi-file session over
// the discovered files); with --plan the plan's files become the
// session; with nothing the configured default directory is opened.
func Edit(args []string) {
	errorStyle := styles.ErrorStyle

	opts, err := parseEditArgs(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("✗ "+err.Error()))
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("✗ Failed to load config: "+err.Error()))
		os.Exit(1)
	}
	if opts.wrapWidth > 0 {
		cfg.WrapWidth = opts.wrapWidth
	}
	if len(opts.exts) > 0 {
		cfg.FileExtensions = opts.exts
	}
	if opts.logFile != "" {
		cfg.LogFile = opts.logFile
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("✗ "+err.Error()))
		os.Exit(1)
	}

	// The TUI owns the terminal, so logging goes to a file.
	log, cleanup, err := logger.NewFileLogger(cfg.LogFile)
	if err != nil {
		log = logger.Discard()
	} else {
		defer cleanup()
	}
	if opts.verbose {
		log.SetLevel(chlog.DebugLevel)
	}
	log.ConfigLoaded(cfg.DefaultDir, cfg.WrapWidth, cfg.FileExtensions)

	var (
		paths []string
		mode  document.Mode
		plan  *editplan.Plan
	)

	switch {
	case opts.planPath != "":
		plan, err = editplan.Load(opts.planPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, errorStyle.Render("✗ "+err.Error()))
			os.Exit(1)
		}
		paths = plan.Files()
		mode = document.ModeMulti
		log.PlanLoaded(opts.planPath, len(plan.Edits), len(paths))

	case opts.path != "":
		info, err := os.Stat(opts.path)
		if err != nil {
			fmt.Fprintln(os.Stderr, errorStyle.Render("✗ "+err.Error()))
			os.Exit(1)
		}
		if info.IsDir() {
			paths, err = discover.Files(opts.path, cfg.FileExtensions)
			if err != nil {
				fmt.Fprintln(os.Stderr, errorStyle.Render("✗ "+err.Error()))
				os.Exit(1)
			}
			mode = document.ModeMulti
		} else {
			paths = []string{opts.path}
			mode = document.ModeSingle
		}

	default:
		paths, err = discover.Files(cfg.DefaultDir, cfg.FileExtensions)
		if err != nil {
			fmt.Fprintln(os.Stderr, errorStyle.Render("✗ "+err.Error()))
			os.Exit(1)
		}
		mode = document.ModeMulti
	}

	if len(paths) == 0 {
		fmt.Println(styles.DimStyle.Render("No matching files found"))
		return
	}

	sess, err := document.NewSession(paths, mode, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("✗ "+err.Error()))
		os.Exit(1)
	}

	modeName := "multi"
	if mode == document.ModeSingle {
		modeName = "single"
	}
	log.SessionOpened(modeName, sess.Len())

	st, err := state.Load(config.StateFilePath())
	if err != nil {
		log.StateError("load", err)
		st = state.NewState()
	}
	sess.RestoreSelections(st, log)
	if plan != nil {
		found := sess.ApplyPlan(plan)
		log.Info("plan applied", "sections", found)
	}

	p := tea.NewProgram(tui.New(sess, cfg, log), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("✗ Error: "+err.Error()))
		os.Exit(1)
	}

	sess.RememberSelections(st, log)
	if err := st.Save(config.StateFilePath()); err != nil {
		log.StateError("save", err)
	}
}
