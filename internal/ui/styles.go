package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styling lives in one place so colors and layout tweaks are easy to reason about.

// ThemeConfig holds the color palette for a theme.
type ThemeConfig struct {
	Primary    string // Main brand color
	Background string // Main background
	Foreground string // Main text color
	Comment    string // Muted text, borders
	Success    string // For positive status
	Warning    string // For warnings
	Error      string // For errors
	Accent     string // For selected items, cursors
}

// themes is a map of available theme presets.
var themes = map[string]ThemeConfig{
	"dracula": {
		Primary:    "#ff2e63",
		Background: "#0d0221",
		Foreground: "#f0f0f0",
		Comment:    "#5c527f",
		Success:    "#00f5d4",
		Warning:    "#f9f871",
		Error:      "#ff2e63",
		Accent:     "#9d4edd",
	},
	"jade": {
		Primary:    "#50fa7b",
		Background: "#282a36",
		Foreground: "#f8f8f2",
		Comment:    "#6272a4",
		Success:    "#50fa7b",
		Warning:    "#f1fa8c",
		Error:      "#ff5555",
		Accent:     "#50fa7b",
	},
	"nord": {
		Primary:    "#0077be",
		Background: "#0a192f",
		Foreground: "#e5e9f0",
		Comment:    "#4c566a",
		Success:    "#a3be8c",
		Warning:    "#ebcb8b",
		Error:      "#bf616a",
		Accent:     "#0077be",
	},
	"everforest": {
		Primary:    "#4a7c59",
		Background: "#2d353b",
		Foreground: "#d3c6aa",
		Comment:    "#5c6a72",
		Success:    "#a7c080",
		Warning:    "#dbbc7f",
		Error:      "#e67e80",
		Accent:     "#4a7c59",
	},
}

// GetTheme resolves a theme name, falling back to dracula for unknown names.
func GetTheme(name string) ThemeConfig {
	if theme, ok := themes[name]; ok {
		return theme
	}
	return themes["dracula"]
}

var (
	appStyle = lipgloss.NewStyle().
		Margin(1, 2)

	titleStyle          lipgloss.Style
	helpStyle           lipgloss.Style
	onlineStyle         lipgloss.Style
	offlineStyle        lipgloss.Style
	itemStyle           lipgloss.Style
	cursorItemStyle     lipgloss.Style
	markStyle           lipgloss.Style
	statusPositiveStyle lipgloss.Style
	statusNegativeStyle lipgloss.Style
	themeNameStyle      lipgloss.Style
	summaryTitleStyle   lipgloss.Style
	busyStyle           lipgloss.Style
	hintStyle           lipgloss.Style
)

func applyThemeStyles(name string) {
	theme := GetTheme(name)

	titleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Primary)).
		Bold(true).
		Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Comment))

	onlineStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Success))

	offlineStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Error))

	itemStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Foreground)).
		Padding(0, 1)

	cursorItemStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Accent)).
		Bold(true).
		Padding(0, 1)

	markStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Success)).
		Bold(true)

	statusPositiveStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Success)).
		PaddingLeft(1)

	statusNegativeStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Error)).
		PaddingLeft(1)

	themeNameStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Primary)).
		Bold(true)

	summaryTitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Primary)).
		Bold(true).
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color(theme.Comment)).
		Padding(0, 1).
		MarginBottom(1)

	busyStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Warning)).
		Bold(true)

	hintStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Warning))
}
