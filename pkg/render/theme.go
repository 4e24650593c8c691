package render

import "github.com/charmbracelet/lipgloss"

// Theme defines the styles for terminal table rendering.
type Theme struct {
	Name   string
	Header lipgloss.Style
	Cell   lipgloss.Style
	Null   lipgloss.Style
	Border lipgloss.Style
	Muted  lipgloss.Style
}

// DefaultTheme returns a vibrant color theme.
func DefaultTheme() Theme {
	return Theme{
		Name:   "default",
		Header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).Padding(0, 1), // blue
		Cell:   lipgloss.NewStyle().Padding(0, 1),
		Null:   lipgloss.NewStyle().Foreground(lipgloss.Color("242")).Padding(0, 1), // gray
		Border: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
	}
}

// OrcaTheme returns a muted, professional theme.
func OrcaTheme() Theme {
	return Theme{
		Name:   "orca",
		Header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75")).Padding(0, 1), // pale blue
		Cell:   lipgloss.NewStyle().Padding(0, 1),
		Null:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1),
		Border: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// MonoTheme returns a monochrome theme (no colors).
func MonoTheme() Theme {
	return Theme{
		Name:   "mono",
		Header: lipgloss.NewStyle().Bold(true).Padding(0, 1),
		Cell:   lipgloss.NewStyle().Padding(0, 1),
		Null:   lipgloss.NewStyle().Padding(0, 1),
		Border: lipgloss.NewStyle(),
		Muted:  lipgloss.NewStyle(),
	}
}

// ThemeByName returns a theme by name, defaulting to DefaultTheme.
func ThemeByName(name string) Theme {
	switch name {
	case "orca":
		return OrcaTheme()
	case "mono":
		return MonoTheme()
	default:
		return DefaultTheme()
	}
}
