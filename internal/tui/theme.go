package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/diogo/genchat/internal/config"
)

// Theme defines the color scheme for the chat interface
type Theme struct {
	Name        string
	Description string

	// Base colors
	Background lipgloss.Color
	Surface    lipgloss.Color
	Border     lipgloss.Color

	// Accent colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color

	// Text colors
	Text     lipgloss.Color
	TextDim  lipgloss.Color
	TextMute lipgloss.Color
}

// Built-in themes, one per config theme name
var (
	// DefaultTheme is a dark theme with indigo and blue accents
	DefaultTheme = Theme{
		Name:        config.ThemeDefault,
		Description: "Indigo and blue accents on a dark background",

		Background: lipgloss.Color("#1a1b26"),
		Surface:    lipgloss.Color("#24283b"),
		Border:     lipgloss.Color("#414868"),

		Primary:   lipgloss.Color("#7aa2f7"),
		Secondary: lipgloss.Color("#7dcfff"),
		Accent:    lipgloss.Color("#bb9af7"),
		Warning:   lipgloss.Color("#e0af68"),
		Error:     lipgloss.Color("#f7768e"),

		Text:     lipgloss.Color("#c0caf5"),
		TextDim:  lipgloss.Color("#565f89"),
		TextMute: lipgloss.Color("#3b4261"),
	}

	// DarkTheme is a high-contrast greyscale theme
	DarkTheme = Theme{
		Name:        config.ThemeDark,
		Description: "High-contrast greyscale",

		Background: lipgloss.Color("#121212"),
		Surface:    lipgloss.Color("#1e1e1e"),
		Border:     lipgloss.Color("#555555"),

		Primary:   lipgloss.Color("#cccccc"),
		Secondary: lipgloss.Color("#999999"),
		Accent:    lipgloss.Color("#ffffff"),
		Warning:   lipgloss.Color("#d7ba7d"),
		Error:     lipgloss.Color("#f44747"),

		Text:     lipgloss.Color("#f5f5f5"),
		TextDim:  lipgloss.Color("#8a8a8a"),
		TextMute: lipgloss.Color("#4e4e4e"),
	}

	// GreenTheme mimics a green phosphor terminal
	GreenTheme = Theme{
		Name:        config.ThemeGreen,
		Description: "Green phosphor terminal",

		Background: lipgloss.Color("#001100"),
		Surface:    lipgloss.Color("#002200"),
		Border:     lipgloss.Color("#00aa00"),

		Primary:   lipgloss.Color("#33ff33"),
		Secondary: lipgloss.Color("#00cc66"),
		Accent:    lipgloss.Color("#99ff99"),
		Warning:   lipgloss.Color("#ffff66"),
		Error:     lipgloss.Color("#ff5555"),

		Text:     lipgloss.Color("#66ff66"),
		TextDim:  lipgloss.Color("#1f9e1f"),
		TextMute: lipgloss.Color("#115511"),
	}

	// PinkTheme is a pastel magenta and pink theme
	PinkTheme = Theme{
		Name:        config.ThemePink,
		Description: "Pastel magenta and pink",

		Background: lipgloss.Color("#261a26"),
		Surface:    lipgloss.Color("#3a2438"),
		Border:     lipgloss.Color("#8c4f7d"),

		Primary:   lipgloss.Color("#ff79c6"),
		Secondary: lipgloss.Color("#ff92d0"),
		Accent:    lipgloss.Color("#bd93f9"),
		Warning:   lipgloss.Color("#f1fa8c"),
		Error:     lipgloss.Color("#ff5555"),

		Text:     lipgloss.Color("#f8e1ee"),
		TextDim:  lipgloss.Color("#b07aa0"),
		TextMute: lipgloss.Color("#6d4a63"),
	}
)

// ThemeByName returns the theme for a config theme name.
// Unknown names fall back to the default theme.
func ThemeByName(name string) Theme {
	switch name {
	case config.ThemeDark:
		return DarkTheme
	case config.ThemeGreen:
		return GreenTheme
	case config.ThemePink:
		return PinkTheme
	default:
		return DefaultTheme
	}
}

// AllThemes returns the built-in themes in selection order
func AllThemes() []Theme {
	return []Theme{DefaultTheme, DarkTheme, GreenTheme, PinkTheme}
}

// ThemeNames returns just the theme names for selection
func ThemeNames() []string {
	themes := AllThemes()
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}
