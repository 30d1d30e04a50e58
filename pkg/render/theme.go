package render

import "github.com/charmbracelet/lipgloss"

// Theme defines colors and icons for terminal messages.
type Theme struct {
	Name    string
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Bold    lipgloss.Style
	Icons   ThemeIcons
}

// ThemeIcons defines the icon set for a theme.
type ThemeIcons struct {
	Fail string
}

// DefaultTheme returns the color theme used on terminals.
func DefaultTheme() Theme {
	return Theme{
		Name:    "default",
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // orange
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")), // red
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("242")), // gray
		Bold:    lipgloss.NewStyle().Bold(true),
		Icons: ThemeIcons{
			Fail: "✗",
		},
	}
}

// MonoTheme returns a theme with no styling, for pipes and NO_COLOR.
func MonoTheme() Theme {
	return Theme{
		Name:    "mono",
		Warning: lipgloss.NewStyle(),
		Error:   lipgloss.NewStyle(),
		Muted:   lipgloss.NewStyle(),
		Bold:    lipgloss.NewStyle(),
		Icons: ThemeIcons{
			Fail: "x",
		},
	}
}

// ThemeFor picks the theme for a writer: mono unless it is a terminal and
// NO_COLOR is unset.
func ThemeFor(isTTY bool, noColor string) Theme {
	if !isTTY || noColor != "" {
		return MonoTheme()
	}
	return DefaultTheme()
}
