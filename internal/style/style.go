// Package style maps semantic output categories to terminal styles and
// loads per-user overrides from the ninjafmt colors file.
package style

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Category names one class of output for styling purposes.
type Category string

const (
	Status     Category = "status"
	Generating Category = "generating"
	Building   Category = "building"
	Linking    Category = "linking"
	Failed     Category = "failed"
	Path       Category = "path"
	Location   Category = "location"
	Warning    Category = "warning"
	Error      Category = "error"
	Code       Category = "code"
)

// Table maps categories to renderable styles. It is mutated only while
// preferences load; rendering treats it as read-only.
type Table struct {
	styles map[Category]lipgloss.Style
}

// DefaultTable returns the built-in style set used when no preference
// file overrides an entry.
func DefaultTable() *Table {
	return &Table{styles: map[Category]lipgloss.Style{
		Status:     lipgloss.NewStyle().Bold(true).Foreground(ansiColor("blue")),
		Generating: lipgloss.NewStyle().Foreground(ansiColor("magenta")),
		Building:   lipgloss.NewStyle().Foreground(ansiColor("cyan")),
		Linking:    lipgloss.NewStyle().Foreground(ansiColor("green")),
		Failed:     lipgloss.NewStyle().Bold(true).Foreground(ansiColor("red")),
		Path:       lipgloss.NewStyle().Bold(true).Foreground(ansiColor("white")),
		Location:   lipgloss.NewStyle().Foreground(ansiColor("cyan")),
		Warning:    lipgloss.NewStyle().Bold(true).Foreground(ansiColor("yellow")),
		Error:      lipgloss.NewStyle().Bold(true).Foreground(ansiColor("red")),
		Code:       lipgloss.NewStyle().Bold(true),
	}}
}

// Resolve returns the style for a category. Unknown categories yield the
// zero style, which renders text unchanged.
func (t *Table) Resolve(cat Category) lipgloss.Style {
	if s, ok := t.styles[cat]; ok {
		return s
	}
	return lipgloss.NewStyle()
}

// Render styles text with the category's style.
func (t *Table) Render(cat Category, text string) string {
	return t.Resolve(cat).Render(text)
}

// ParseError describes one malformed preference line. Parse errors are
// reported to the caller and never abort loading.
type ParseError struct {
	Line int
	Text string
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Msg, e.Text)
}

// colorCodes maps attribute color names to basic ANSI palette indices.
var colorCodes = map[string]string{
	"black":         "0",
	"red":           "1",
	"green":         "2",
	"yellow":        "3",
	"blue":          "4",
	"magenta":       "5",
	"cyan":          "6",
	"white":         "7",
	"brightblack":   "8",
	"brightred":     "9",
	"brightgreen":   "10",
	"brightyellow":  "11",
	"brightblue":    "12",
	"brightmagenta": "13",
	"brightcyan":    "14",
	"brightwhite":   "15",
}

func ansiColor(name string) lipgloss.Color {
	return lipgloss.Color(colorCodes[name])
}

// renderStyle builds a style from 0-3 attribute tokens. Tokens are color
// names, "bold", or "underline". An unknown token fails the whole entry.
func renderStyle(tokens []string) (lipgloss.Style, error) {
	s := lipgloss.NewStyle()
	for _, tok := range tokens {
		switch {
		case tok == "bold":
			s = s.Bold(true)
		case tok == "underline":
			s = s.Underline(true)
		default:
			code, ok := colorCodes[tok]
			if !ok {
				return s, fmt.Errorf("unknown attribute %q", tok)
			}
			s = s.Foreground(lipgloss.Color(code))
		}
	}
	return s, nil
}

// LoadPreferences reads line-oriented `name : tokens` overrides into the
// table. Blank lines and `#` comments are skipped. Malformed lines leave
// the table unchanged for that entry and are returned as parse errors.
func (t *Table) LoadPreferences(r io.Reader) []error {
	var errs []error
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		name, attrs, ok := strings.Cut(trimmed, ":")
		if !ok {
			errs = append(errs, &ParseError{Line: lineNo, Text: line, Msg: "expected `name : attributes`"})
			continue
		}
		name = strings.TrimSpace(name)
		if name == "" || strings.ContainsAny(name, " \t") {
			errs = append(errs, &ParseError{Line: lineNo, Text: line, Msg: "invalid category name"})
			continue
		}
		tokens := strings.Fields(attrs)
		if len(tokens) > 3 {
			errs = append(errs, &ParseError{Line: lineNo, Text: line, Msg: "more than 3 attributes"})
			continue
		}
		styled, err := renderStyle(tokens)
		if err != nil {
			errs = append(errs, &ParseError{Line: lineNo, Text: line, Msg: err.Error()})
			continue
		}
		t.styles[Category(name)] = styled
	}
	if err := scanner.Err(); err != nil {
		errs = append(errs, fmt.Errorf("reading preferences: %w", err))
	}
	return errs
}

// LoadPreferenceFile loads overrides from path. A missing file is not an
// error: the table keeps its defaults.
func (t *Table) LoadPreferenceFile(path string) []error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return []error{fmt.Errorf("opening preferences %s: %w", path, err)}
	}
	defer f.Close()
	return t.LoadPreferences(f)
}

// PreferencePath returns the per-user colors file location. A local
// .ninjafmt/colors takes precedence over the user config directory.
func PreferencePath() string {
	local := filepath.Join(".ninjafmt", "colors")
	if _, err := os.Stat(local); err == nil {
		return local
	}
	configHome, err := os.UserConfigDir()
	if err != nil || configHome == "" || configHome == "/" {
		return ""
	}
	return filepath.Join(configHome, "ninjafmt", "colors")
}
