// Package tui provides the terminal chat interface for genchat.
package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles bundles every lipgloss style the chat interface uses. A Styles
// value is derived from a single theme; switching themes means building a
// new bundle, not mutating shared state.
type Styles struct {
	Theme Theme

	// Header
	Header   lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Hint     lipgloss.Style

	// Transcript
	MessagesArea lipgloss.Style
	UserBubble   lipgloss.Style
	UserLabel    lipgloss.Style
	ModelBubble  lipgloss.Style
	ModelLabel   lipgloss.Style

	// Input
	InputPanel lipgloss.Style
	InputLabel lipgloss.Style
	Loading    lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusKey  lipgloss.Style
	StatusDesc lipgloss.Style

	// Error banner and transient notices
	ErrorBanner lipgloss.Style
	Notice      lipgloss.Style

	// Suggestion chips
	Suggestion    lipgloss.Style
	SuggestionKey lipgloss.Style

	// Overlays
	OverlayBox   lipgloss.Style
	OverlayTitle lipgloss.Style
	MenuItem     lipgloss.Style
	MenuSelected lipgloss.Style
	MenuCursor   lipgloss.Style
	Value        lipgloss.Style
	Enabled      lipgloss.Style
	Disabled     lipgloss.Style
}

// NewStyles builds the style bundle for a theme name. It is a pure
// function of its argument: unknown names get the default palette and no
// package-level state is touched.
func NewStyles(themeName string) Styles {
	t := ThemeByName(themeName)

	return Styles{
		Theme: t,

		Header: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 2).
			MarginBottom(1),

		Title: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),

		Subtitle: lipgloss.NewStyle().
			Foreground(t.TextDim),

		Hint: lipgloss.NewStyle().
			Foreground(t.TextMute).
			Italic(true),

		MessagesArea: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(1),

		UserBubble: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.Secondary).
			Padding(0, 1).
			MarginLeft(4),

		UserLabel: lipgloss.NewStyle().
			Foreground(t.Secondary).
			Bold(true).
			MarginLeft(4),

		ModelBubble: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.Primary).
			Foreground(t.Text).
			Padding(0, 1).
			MarginRight(4),

		ModelLabel: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),

		InputPanel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1).
			MarginTop(1),

		InputLabel: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true).
			MarginRight(1),

		Loading: lipgloss.NewStyle().
			Foreground(t.Accent).
			Bold(true),

		StatusBar: lipgloss.NewStyle().
			Foreground(t.TextMute).
			MarginTop(1),

		StatusKey: lipgloss.NewStyle().
			Foreground(t.TextDim).
			Bold(true),

		StatusDesc: lipgloss.NewStyle().
			Foreground(t.TextMute),

		ErrorBanner: lipgloss.NewStyle().
			Foreground(t.Error).
			Bold(true),

		Notice: lipgloss.NewStyle().
			Foreground(t.Secondary).
			Italic(true),

		Suggestion: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.TextMute).
			Foreground(t.TextDim).
			Padding(0, 1),

		SuggestionKey: lipgloss.NewStyle().
			Foreground(t.Accent).
			Bold(true),

		OverlayBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Primary).
			Padding(1, 2),

		OverlayTitle: lipgloss.NewStyle().
			Foreground(t.Text).
			Bold(true).
			MarginBottom(1),

		MenuItem: lipgloss.NewStyle().
			Foreground(t.Text).
			PaddingLeft(2),

		MenuSelected: lipgloss.NewStyle().
			Foreground(t.Accent).
			Bold(true),

		MenuCursor: lipgloss.NewStyle().
			Foreground(t.Accent),

		Value: lipgloss.NewStyle().
			Foreground(t.TextDim),

		Enabled: lipgloss.NewStyle().
			Foreground(t.Secondary),

		Disabled: lipgloss.NewStyle().
			Foreground(t.Error),
	}
}
