package main

import (
	"fmt"
	"os"

	"github.com/gerunddev/noteshift/internal/commands"
	"github.com/gerunddev/noteshift/internal/config"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		commands.Edit(nil)
		return
	}

	command := os.Args[1]

	switch command {
	case "edit":
		commands.Edit(os.Args[2:])
	case "config":
		commands.Config()
	case "version", "-v", "--version":
		fmt.Printf("noteshift v%s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		// A bare path or flag opens the editor directly.
		commands.Edit(os.Args[1:])
	}
}

func printUsage() {
	usage := fmt.Sprintf(`noteshift - Structural markdown editing in the terminal

Usage:
  noteshift [edit] [path] [options]
  noteshift <command>

Commands:
  edit        Open the editor (implied when a path is given)
  config      Show the resolved configuration
  version     Show version information
  help        Show this help message

Edit options:
  --plan <file>        Open the files named by an edit plan
  --wrap-width <n>     Editor wrap width in columns
  --extensions <list>  Comma-separated extensions for directory discovery
  --log-file <path>    Write logs to this file
  --verbose            Debug-level logging

Examples:
  noteshift notes.md
  noteshift ~/notes
  noteshift edit --plan plan.json
  noteshift edit ~/notes --extensions md,markdown
  noteshift config

Configuration:
  Config file: %s
  State file:  %s

For more information, visit: https://github.com/gerunddev/noteshift
`, config.ConfigPath(), config.StateFilePath())
	fmt.Print(usage)
}
