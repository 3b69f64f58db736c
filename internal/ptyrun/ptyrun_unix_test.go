//go:build unix

package ptyrun

import (
	"io"
	"strings"
	"syscall"
	"testing"
	"time"
)

// drain reads the session until EOF, returning everything the child
// wrote to its terminal.
func drain(t *testing.T, s *Session) string {
	t.Helper()
	var b strings.Builder
	buf := make([]byte, 4096)
	for {
		n, err := s.Read(buf)
		if n > 0 {
			b.Write(buf[:n])
		}
		if err != nil {
			if err != io.EOF {
				t.Logf("pty read ended with %v", err)
			}
			return b.String()
		}
	}
}

func TestStart_ChildSeesATerminal(t *testing.T) {
	s, err := Start("sh", []string{"-c", "if [ -t 1 ]; then echo tty; else echo notty; fi"})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer s.Close()

	out := drain(t, s)
	if !strings.Contains(out, "tty") || strings.Contains(out, "notty") {
		t.Errorf("child should believe stdout is a terminal, got %q", out)
	}
	if code := s.Wait(); code != 0 {
		t.Errorf("Wait = %d, want 0", code)
	}
}

func TestWait_ExitCodePropagated(t *testing.T) {
	s, err := Start("sh", []string{"-c", "exit 7"})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer s.Close()

	drain(t, s)
	if code := s.Wait(); code != 7 {
		t.Errorf("Wait = %d, want 7", code)
	}
}

func TestWait_SignalDeathIsNonZero(t *testing.T) {
	s, err := Start("sh", []string{"-c", "kill -TERM $$"})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer s.Close()

	drain(t, s)
	if code := s.Wait(); code != 143 {
		t.Errorf("Wait = %d, want 143 (128+SIGTERM)", code)
	}
}

func TestRead_NoNewlineTranslation(t *testing.T) {
	// Raw mode on the master disables ONLCR, so the child's bytes
	// arrive exactly as written.
	s, err := Start("sh", []string{"-c", "printf 'a\\nb'"})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer s.Close()

	out := drain(t, s)
	if out != "a\nb" {
		t.Errorf("output = %q, want %q", out, "a\nb")
	}
	s.Wait()
}

func TestSignal_ForwardedToChild(t *testing.T) {
	s, err := Start("sh", []string{"-c", "sleep 30"})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer s.Close()

	// Give the shell a moment to exec sleep, then interrupt it.
	time.Sleep(100 * time.Millisecond)
	if err := s.Signal(syscall.SIGTERM); err != nil {
		t.Fatalf("Signal: %v", err)
	}

	done := make(chan int, 1)
	go func() {
		drain(t, s)
		done <- s.Wait()
	}()
	select {
	case code := <-done:
		if code == 0 {
			t.Error("signal-terminated child reported success")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("child did not exit after forwarded signal")
	}
}
