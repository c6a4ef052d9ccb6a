package commands

import (
	"fmt"
	"strconv"
	"strings"
)

// editOptions are the parsed arguments of the edit command.
type editOptions struct {
	path      string
	planPath  string
	wrapWidth int
	exts      []string
	logFile   string
	verbose   bool
}

// parseEditArgs walks the argument list by hand: one optional
// positional path plus flags in any order.
func parseEditArgs(args []string) (editOptions, error) {
	var opts editOptions

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "--plan":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("--plan requires a file argument")
			}
			i++
			opts.planPath = args[i]
		case "--wrap-width":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("--wrap-width requires a number")
			}
			i++
			n, err := strconv.Atoi(args[i])
			if err != nil {
				return opts, fmt.Errorf("invalid wrap width %q", args[i])
			}
			opts.wrapWidth = n
		case "--extensions":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("--extensions requires a comma-separated list")
			}
			i++
			for _, ext := range strings.Split(args[i], ",") {
				ext = strings.TrimSpace(ext)
				if ext == "" {
					continue
				}
				if !strings.HasPrefix(ext, ".") {
					ext = "." + ext
				}
				opts.exts = append(opts.exts, ext)
			}
		case "--log-file":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("--log-file requires a path")
			}
			i++
			opts.logFile = args[i]
		case "--verbose":
			opts.verbose = true
		default:
			if strings.HasPrefix(arg, "-") {
				return opts, fmt.Errorf("unknown flag: %s", arg)
			}
			if opts.path != "" {
				return opts, fmt.Errorf("unexpected argument: %s", arg)
			}
			opts.path = arg
		}
	}

	return opts, nil
}
