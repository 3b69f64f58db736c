// Command ninjafmt wraps ninja, re-rendering its terminal output with
// color and structure while preserving exact terminal semantics:
// progress lines overwritten in place, interactive signal handling, and
// the wrapped tool's real exit status.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/dkoosis/ninjafmt/internal/config"
	"github.com/dkoosis/ninjafmt/internal/diag"
	"github.com/dkoosis/ninjafmt/internal/ptyrun"
	"github.com/dkoosis/ninjafmt/internal/render"
	"github.com/dkoosis/ninjafmt/internal/status"
	"github.com/dkoosis/ninjafmt/internal/style"
	"github.com/dkoosis/ninjafmt/internal/version"
)

// ninjaProgram returns the wrapped tool: NINJAFMT_NINJA overrides the
// default, which is ninja on PATH.
func ninjaProgram() string {
	if p := os.Getenv("NINJAFMT_NINJA"); p != "" {
		return p
	}
	return "ninja"
}

// run executes the wrapper and returns the process exit code. Split from
// main so tests can invoke it without os.Exit terminating the runner.
func run(args []string) int {
	opts, ninjaArgs, err := parseArgs(args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "ninjafmt: %v\n", err)
		return 2
	}

	if opts.Version {
		fmt.Fprintf(os.Stdout, "ninjafmt version %s\n", version.Version)
		fmt.Fprintf(os.Stdout, "Commit: %s\n", version.CommitHash)
		fmt.Fprintf(os.Stdout, "Built: %s\n", version.BuildDate)
		return 0
	}

	cfg := config.Load()
	if opts.Color == "" {
		opts.Color = cfg.Color
	}
	if opts.Tee == "" {
		opts.Tee = cfg.Tee
	}
	opts.NoGCC = opts.NoGCC || cfg.NoGCC

	ninjaPath, err := exec.LookPath(ninjaProgram())
	if err != nil {
		fmt.Fprintf(os.Stderr, "ninjafmt: %v\n", err)
		return 127
	}

	if opts.Help {
		printUsage(os.Stdout)
		return runPassthrough(ninjaPath, []string{"--help"})
	}

	// Bypass fast path: without color there is nothing to re-render, so
	// the wrapped tool replaces this process and native behavior is
	// byte-identical.
	useColor := opts.Color == "always" ||
		(opts.Color == "auto" && term.IsTerminal(int(os.Stdout.Fd())))
	if !useColor {
		if canExecReplace {
			argv := append([]string{ninjaPath}, ninjaArgs...)
			err := execReplace(ninjaPath, argv)
			fmt.Fprintf(os.Stderr, "ninjafmt: exec %s: %v\n", ninjaPath, err)
			return 1
		}
		return runPassthrough(ninjaPath, ninjaArgs)
	}

	table := style.DefaultTable()
	if path := style.PreferencePath(); path != "" {
		for _, perr := range table.LoadPreferenceFile(path) {
			fmt.Fprintf(os.Stderr, "ninjafmt: %s: %v\n", path, perr)
		}
	}

	template := os.Getenv("NINJA_STATUS")
	if template == "" {
		template = cfg.StatusFormat
	}
	if template == "" {
		template = status.DefaultTemplate
	}
	pattern, err := status.Compile(template)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ninjafmt: %v, using default status format\n", err)
		pattern, _ = status.Compile(status.DefaultTemplate)
	}

	var renderOpts []render.Option
	if !opts.NoGCC {
		renderOpts = append(renderOpts, render.WithClassifier(diag.New()))
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		renderOpts = append(renderOpts, render.WithWidth(w))
	}

	var mirror *os.File
	if opts.Tee != "" {
		mirror, err = os.Create(opts.Tee)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ninjafmt: opening tee file: %v\n", err)
			return 1
		}
		defer mirror.Close()
		renderOpts = append(renderOpts, render.WithMirror(mirror))
	}

	session, err := ptyrun.Start(ninjaPath, ninjaArgs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ninjafmt: %v\n", err)
		return 1
	}
	defer session.Close()

	// Interrupts are control events, not errors: forward them to the
	// child and keep reading. The child decides how to die; its exit
	// status reports it.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		for sig := range sigs {
			_ = session.Signal(sig)
		}
	}()

	renderer := render.New(os.Stdout, table, pattern, renderOpts...)
	buf := make([]byte, 4096)
	for {
		n, readErr := session.Read(buf)
		if n > 0 {
			renderer.Feed(buf[:n])
		}
		if readErr != nil {
			// io.EOF covers the child closing its terminal; anything
			// else still means no more bytes are coming.
			if readErr != io.EOF && os.Getenv("NINJAFMT_DEBUG") != "" {
				fmt.Fprintf(os.Stderr, "[DEBUG run] pty read: %v\n", readErr)
			}
			break
		}
	}
	renderer.Flush()

	return session.Wait()
}

// runPassthrough runs the wrapped tool as a plain child with inherited
// stdio and returns its exit code. Used for help delegation and as the
// bypass on platforms without exec.
func runPassthrough(path string, args []string) int {
	cmd := exec.Command(path, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "ninjafmt: %v\n", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args))
}
