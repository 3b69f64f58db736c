// Package status compiles ninja's NINJA_STATUS progress template into a
// matcher for raw terminal bytes.
package status

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultTemplate is ninja's built-in progress prefix, used when
// NINJA_STATUS is unset.
const DefaultTemplate = "[%f/%t] "

// eraseEOL is the ANSI erase-to-end-of-line sequence ninja uses to
// overwrite progress lines in place.
const eraseEOL = "\x1b[K"

// Match is one recognized progress unit extracted from the stream.
type Match struct {
	Prefix      string // leading carriage return, if present
	Counter     string // the expanded template text, e.g. "[3/10] "
	Description string // free text after the counter
	Terminator  string // "\n" or the erase-to-EOL escape
}

// Len reports how many bytes of the buffer the match consumed.
func (m *Match) Len() int {
	return len(m.Prefix) + len(m.Counter) + len(m.Description) + len(m.Terminator)
}

// Pattern is a compiled progress matcher. Compiled once at startup and
// immutable afterward.
type Pattern struct {
	re *regexp.Regexp
}

// Compile translates a NINJA_STATUS template into a Pattern. Placeholder
// letters expand to numeric matchers; %p matches a two-character
// space-padded percentage; %% is a literal percent. All other template
// text is escaped verbatim.
func Compile(template string) (*Pattern, error) {
	var b strings.Builder
	b.WriteString(`^(\r?)(`)
	for i := 0; i < len(template); i++ {
		c := template[i]
		if c != '%' {
			b.WriteString(regexp.QuoteMeta(string(c)))
			continue
		}
		i++
		if i >= len(template) {
			return nil, fmt.Errorf("template %q: trailing %%", template)
		}
		switch template[i] {
		case 's', 'f', 't', 'r', 'u', 'c', 'e', 'w', 'o':
			// Counters are integers; rates and elapsed time may carry
			// a fractional part.
			b.WriteString(`[0-9]+(?:\.[0-9]+)?`)
		case 'p':
			b.WriteString(`(?:[0-9]{2}| [0-9])%`)
		case '%':
			b.WriteString(`%`)
		default:
			return nil, fmt.Errorf("template %q: unknown placeholder %%%c", template, template[i])
		}
	}
	b.WriteString(`)(.*?)(\n|\x1b\[K)`)
	re, err := regexp.Compile(b.String())
	if err != nil {
		return nil, fmt.Errorf("compiling status template %q: %w", template, err)
	}
	return &Pattern{re: re}, nil
}

// Find attempts to match a progress unit at the start of buf. Returns
// nil when buf does not begin with a complete status line.
func (p *Pattern) Find(buf []byte) *Match {
	groups := p.re.FindSubmatch(buf)
	if groups == nil {
		return nil
	}
	return &Match{
		Prefix:      string(groups[1]),
		Counter:     string(groups[2]),
		Description: string(groups[3]),
		Terminator:  string(groups[4]),
	}
}
