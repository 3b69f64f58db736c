//go:build unix

package ptyrun

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"

	"github.com/creack/pty"
	"golang.org/x/term"
)

// Session owns the pseudo-terminal master and the child process handle.
// It is single-owner: one goroutine reads, signals may arrive from a
// signal-forwarding goroutine.
type Session struct {
	cmd     *exec.Cmd
	master  *os.File
	restore *term.State
}

// Start spawns command under a freshly allocated pseudo-terminal. The
// slave becomes the child's controlling terminal with stdout and stderr
// attached, sized to match the real terminal on stdin. The parent keeps
// the master, switched to raw mode so bytes flow exactly as the child
// produces them.
func Start(command string, args []string) (*Session, error) {
	cmd := exec.Command(command, args...)
	cmd.Env = os.Environ()

	ws, err := pty.GetsizeFull(os.Stdin)
	if err != nil {
		ws = &pty.Winsize{Rows: 24, Cols: 80}
	}
	master, err := pty.StartWithSize(cmd, ws)
	if err != nil {
		return nil, fmt.Errorf("spawning %s under pty: %w", command, err)
	}

	// Raw mode on the master disables the line discipline's echo and
	// newline translation for the pair.
	restore, err := term.MakeRaw(int(master.Fd()))
	if err != nil {
		restore = nil
	}

	return &Session{cmd: cmd, master: master, restore: restore}, nil
}

// Read blocks until child output is available. When the child closes
// its side the master reports EIO on Linux; that is surfaced as io.EOF.
func (s *Session) Read(p []byte) (int, error) {
	n, err := s.master.Read(p)
	if err != nil && errors.Is(err, syscall.EIO) {
		return n, io.EOF
	}
	return n, err
}

// Pid returns the child's process id.
func (s *Session) Pid() int {
	return s.cmd.Process.Pid
}

// Signal forwards sig to the child process.
func (s *Session) Signal(sig os.Signal) error {
	if s.cmd.Process == nil {
		return nil
	}
	return s.cmd.Process.Signal(sig)
}

// Wait collects the child's exit status: the exit code when it exited,
// or 128+signal when a signal killed it, so failure always surfaces as
// non-zero.
func (s *Session) Wait() int {
	err := s.cmd.Wait()
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok {
			if ws.Signaled() {
				return 128 + int(ws.Signal())
			}
			return ws.ExitStatus()
		}
		return exitErr.ExitCode()
	}
	return 1
}

// Close restores the master's termios and releases the pty.
func (s *Session) Close() error {
	if s.restore != nil {
		_ = term.Restore(int(s.master.Fd()), s.restore)
	}
	return s.master.Close()
}
