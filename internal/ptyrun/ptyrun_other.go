//go:build !unix

package ptyrun

import "os"

// Session is a placeholder on platforms without pseudo-terminal support.
type Session struct{}

// Start always fails on non-unix platforms; the caller falls back to
// plain passthrough execution.
func Start(command string, args []string) (*Session, error) {
	return nil, ErrUnsupported
}

func (s *Session) Read(p []byte) (int, error) { return 0, ErrUnsupported }

func (s *Session) Pid() int { return 0 }

func (s *Session) Signal(sig os.Signal) error { return ErrUnsupported }

func (s *Session) Wait() int { return 1 }

func (s *Session) Close() error { return nil }
