// Package diag recognizes compiler and linker diagnostic line shapes and
// decomposes them into styled segments.
package diag

import (
	"regexp"
	"strings"

	"github.com/dkoosis/ninjafmt/internal/style"
)

// Kind tags which diagnostic shape matched a line.
type Kind int

const (
	KindLabel Kind = iota // bare `context: target:` header line
	KindError
	KindWarning // warning: or note:
	KindGeneric // path:line[:col]: message, no severity
	KindInclude // "In file included from" continuation
	KindInstantiated
)

// Line is the decomposition of one recognized diagnostic line. It is
// transient: built by Classify, rendered, and discarded.
type Line struct {
	Kind     Kind
	Prefix   string // unstyled leading text
	Path     string // path segment, styled as path
	Location string // line[:col] segment, styled as location
	Severity string // literal severity text, e.g. "error:"
	Message  string // remainder, passed through the code highlighter
	Suffix   string // unstyled trailing text
}

// rule pairs an anchored pattern with a decomposer. Rules are tried in
// strict priority order; the first match wins.
type rule struct {
	re        *regexp.Regexp
	decompose func(groups []string) Line
}

// Classifier applies the ordered diagnostic rules.
type Classifier struct {
	rules []rule
}

// New returns a classifier with the standard gcc/clang/ld line shapes.
func New() *Classifier {
	return &Classifier{rules: []rule{
		{
			// A bare label line such as `In constructor 'X': note:` or a
			// file/context header ending with a colon.
			re: regexp.MustCompile(`^(.*: )(.*):$`),
			decompose: func(g []string) Line {
				return Line{Kind: KindLabel, Prefix: g[1], Path: g[2], Suffix: ":"}
			},
		},
		{
			re: regexp.MustCompile(`^(.*?:)([0-9]+:(?:[0-9]+:)? )error: (.*)$`),
			decompose: func(g []string) Line {
				return Line{Kind: KindError, Path: g[1], Location: g[2], Severity: "error:", Message: g[3]}
			},
		},
		{
			re: regexp.MustCompile(`^(.*?:)([0-9]+:(?:[0-9]+:)? )((?:warning|note): )(.*)$`),
			decompose: func(g []string) Line {
				return Line{Kind: KindWarning, Path: g[1], Location: g[2], Severity: strings.TrimSuffix(g[3], " "), Message: g[4]}
			},
		},
		{
			re: regexp.MustCompile(`^(.*?:)([0-9]+:(?:[0-9]+:)? )(.*)$`),
			decompose: func(g []string) Line {
				return Line{Kind: KindGeneric, Path: g[1], Location: g[2], Message: g[3]}
			},
		},
		{
			// Include-stack continuations printed before the diagnostic
			// proper.
			re: regexp.MustCompile(`^(In file included from |                from )(.*?):([0-9]+)([,:].*)$`),
			decompose: func(g []string) Line {
				return Line{Kind: KindInclude, Prefix: g[1], Path: g[2] + ":", Location: g[3], Suffix: g[4]}
			},
		},
		{
			re: regexp.MustCompile(`^(.*?:)(\s+instantiated from here.*)$`),
			decompose: func(g []string) Line {
				return Line{Kind: KindInstantiated, Path: g[1], Suffix: g[2]}
			},
		},
	}}
}

// Classify decomposes one line (without trailing newline). ok is false
// when no rule matches; the caller prints the raw line.
func (c *Classifier) Classify(line string) (Line, bool) {
	for _, r := range c.rules {
		if g := r.re.FindStringSubmatch(line); g != nil {
			return r.decompose(g), true
		}
	}
	return Line{}, false
}

// quoted matches inline-code spans in diagnostic messages: typographic
// single quotes, backquote/quote pairs, or straight single quotes.
var quoted = regexp.MustCompile("‘[^’]*’|`[^']*'|'[^']*'")

// HighlightCode re-wraps quoted substrings of a message in the code
// style, keeping the quote characters as literal text.
func HighlightCode(table *style.Table, message string) string {
	return quoted.ReplaceAllStringFunc(message, func(m string) string {
		return table.Render(style.Code, m)
	})
}

// severityCategory maps a matched line to the category styling its
// severity text.
func (l Line) severityCategory() style.Category {
	if l.Kind == KindError {
		return style.Error
	}
	return style.Warning
}

// Render produces the styled line, without a trailing newline.
func (l Line) Render(table *style.Table) string {
	var b strings.Builder
	b.WriteString(l.Prefix)
	if l.Path != "" {
		b.WriteString(table.Render(style.Path, l.Path))
	}
	if l.Location != "" {
		b.WriteString(table.Render(style.Location, l.Location))
	}
	switch l.Kind {
	case KindError, KindWarning:
		b.WriteString(table.Render(l.severityCategory(), l.Severity))
		b.WriteString(" ")
		b.WriteString(HighlightCode(table, l.Message))
	case KindGeneric:
		b.WriteString(HighlightCode(table, l.Message))
	}
	b.WriteString(l.Suffix)
	return b.String()
}
