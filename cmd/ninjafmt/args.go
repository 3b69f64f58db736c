package main

import (
	"fmt"
	"io"
	"strings"
)

// Options holds the wrapper's own flags. Everything not recognized here
// passes through to ninja verbatim, which is why this is a hand scan
// rather than a flag.FlagSet: the standard parser rejects unknown flags.
type Options struct {
	Color   string // always, never, auto; "" means not set on the command line
	Tee     string
	NoGCC   bool
	Help    bool
	Version bool
}

// parseArgs splits the argument vector into wrapper options and the
// passthrough arguments for ninja, preserving their order.
func parseArgs(args []string) (Options, []string, error) {
	var opts Options
	var rest []string
	for _, arg := range args {
		switch {
		case arg == "--color":
			opts.Color = "always"
		case strings.HasPrefix(arg, "--color="):
			mode := strings.TrimPrefix(arg, "--color=")
			switch mode {
			case "always", "never", "auto":
				opts.Color = mode
			default:
				return opts, nil, fmt.Errorf("invalid --color mode %q (want always, never, or auto)", mode)
			}
		case strings.HasPrefix(arg, "--tee="):
			opts.Tee = strings.TrimPrefix(arg, "--tee=")
		case arg == "--nogcc":
			opts.NoGCC = true
		case arg == "--help" || arg == "-h":
			opts.Help = true
		case arg == "--version":
			opts.Version = true
		default:
			rest = append(rest, arg)
		}
	}
	return opts, rest, nil
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `ninjafmt - colorizing wrapper around ninja

Usage: ninjafmt [wrapper flags] [ninja args...]

Wrapper flags:
  --color[=always|never|auto]  colorize output (default auto; bare --color
                               means always). With never, or auto and a
                               non-terminal stdout, ninja runs natively.
  --tee=FILE                   mirror all output, stripped of escape
                               sequences, to FILE
  --nogcc                      disable compiler-diagnostic highlighting
  --version                    print ninjafmt version
  --help, -h                   show this help, then ninja's own help

All other flags and arguments are passed to ninja unchanged.
The NINJA_STATUS environment variable controls the progress line format.

`)
}
