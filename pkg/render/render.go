// Package render formats extracted subtest names for pasting into Go code.
package render

import (
	"strings"
)

// Renderer converts a suite's extracted subtest names to output text.
type Renderer interface {
	Render(suite string, names []string) string
}

// Literal renders names as a Go []string literal and styles the
// no-matches notice with its theme. The literal itself is never styled.
type Literal struct {
	theme Theme
}

// NewLiteral creates a literal renderer with the given theme.
func NewLiteral(theme Theme) *Literal {
	return &Literal{theme: theme}
}

// Render returns GoList(names), or the no-matches notice when names is empty.
func (l *Literal) Render(suite string, names []string) string {
	if len(names) == 0 {
		return l.theme.Warning.Render(NoMatches(suite))
	}
	return GoList(names)
}

// GoList formats names as a []string literal, one quoted element per line.
// Only double quotes are escaped.
func GoList(names []string) string {
	var sb strings.Builder
	sb.WriteString("[]string{\n")
	for _, name := range names {
		sb.WriteString("\t\"")
		sb.WriteString(strings.ReplaceAll(name, `"`, `\"`))
		sb.WriteString("\",\n")
	}
	sb.WriteString("}")
	return sb.String()
}

// NoMatches is the notice printed when suite has no failing subtests.
func NoMatches(suite string) string {
	return "No subtest names found for " + suite + " in the log file."
}
