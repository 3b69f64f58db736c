// Package render reassembles the child's terminal byte stream into
// complete units (status updates, lines, fragments) and emits styled
// output.
package render

import (
	"io"
	"regexp"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/dkoosis/ninjafmt/internal/diag"
	"github.com/dkoosis/ninjafmt/internal/status"
	"github.com/dkoosis/ninjafmt/internal/style"
)

// lineRe matches zero or more leading blank lines and one complete line.
// Tried only after the status pattern fails, so progress updates are
// never mistaken for plain lines.
var lineRe = regexp.MustCompile(`^(\n*)([^\n]*)\n`)

// Renderer consumes raw bytes from the pty master and writes styled
// output. All state lives in the buffer between Feed calls: a partial
// status line or fragment persists until its terminator arrives.
type Renderer struct {
	out    io.Writer
	mirror io.Writer // optional tee, receives ANSI-stripped text
	table  *style.Table
	stat   *status.Pattern
	gcc    *diag.Classifier // nil disables diagnostic classification
	width  int              // terminal width for status truncation, 0 = off

	buf []byte
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithMirror duplicates all rendered units, stripped of escape
// sequences, to w. w must not buffer: every unit is written through
// immediately.
func WithMirror(w io.Writer) Option {
	return func(r *Renderer) { r.mirror = w }
}

// WithClassifier enables compiler-diagnostic classification.
func WithClassifier(c *diag.Classifier) Option {
	return func(r *Renderer) { r.gcc = c }
}

// WithWidth truncates overwritten status lines to the terminal width so
// in-place updates never wrap.
func WithWidth(w int) Option {
	return func(r *Renderer) { r.width = w }
}

// New builds a Renderer writing styled output to out.
func New(out io.Writer, table *style.Table, stat *status.Pattern, opts ...Option) *Renderer {
	r := &Renderer{out: out, table: table, stat: stat}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Feed appends new bytes from the terminal session and drains every
// complete unit. The remaining tail is kept for the next call, so
// arbitrary chunking produces identical output.
func (r *Renderer) Feed(p []byte) {
	r.buf = append(r.buf, p...)
	for {
		if m := r.stat.Find(r.buf); m != nil {
			r.buf = r.buf[m.Len():]
			r.renderStatus(m)
			continue
		}
		if g := lineRe.FindSubmatch(r.buf); g != nil {
			r.buf = r.buf[len(g[0]):]
			r.renderLine(string(g[1]), string(g[2]))
			continue
		}
		return
	}
}

// Flush emits any unterminated tail verbatim. Called once at EOF so no
// child output is lost.
func (r *Renderer) Flush() {
	if len(r.buf) == 0 {
		return
	}
	r.write(string(r.buf))
	if r.mirror != nil {
		r.mirrorWrite(ansi.Strip(string(r.buf)))
	}
	r.buf = nil
}

// descriptionCategory picks the style for a status description by its
// leading word. Anything unrecognized styles as a build step.
func descriptionCategory(desc string) style.Category {
	switch {
	case strings.HasPrefix(desc, "Generating"):
		return style.Generating
	case desc == "Linking":
		return style.Linking
	default:
		return style.Building
	}
}

func (r *Renderer) renderStatus(m *status.Match) {
	desc := m.Description
	if r.width > 0 && m.Terminator != "\n" {
		avail := r.width - runewidth.StringWidth(m.Counter)
		if avail < 0 {
			avail = 0
		}
		desc = runewidth.Truncate(desc, avail, "")
	}
	r.write(m.Prefix)
	r.write(r.table.Render(style.Status, m.Counter))
	r.write(r.table.Render(descriptionCategory(desc), desc))
	r.write(m.Terminator)
	if r.mirror != nil {
		r.mirrorWrite(ansi.Strip(m.Counter+m.Description) + "\n")
	}
}

// isFailure reports build-failure banner lines, which are styled even
// when diagnostic classification is disabled.
func isFailure(line string) bool {
	return strings.HasPrefix(line, "FAILED: ") ||
		strings.HasPrefix(line, "ninja: build stopped: ")
}

func (r *Renderer) renderLine(blanks, line string) {
	r.write(blanks)
	switch {
	case isFailure(line):
		r.write(r.table.Render(style.Failed, line))
		r.write("\n")
	case r.gcc != nil:
		if d, ok := r.gcc.Classify(line); ok {
			r.write(d.Render(r.table))
			r.write("\n")
			break
		}
		fallthrough
	default:
		r.write(line)
		r.write("\n")
	}
	if r.mirror != nil {
		r.mirrorWrite(blanks + ansi.Strip(line) + "\n")
	}
}

func (r *Renderer) write(s string) {
	_, _ = io.WriteString(r.out, s)
}

func (r *Renderer) mirrorWrite(s string) {
	_, _ = io.WriteString(r.mirror, s)
}
