package render

import (
	"os"

	"github.com/diogo/genchat/internal/config"
)

// StyleForTheme maps a UI theme name to the closest glamour built-in style.
// Glamour has no green style, so the green theme falls back to dark.
func StyleForTheme(theme string) string {
	switch theme {
	case config.ThemePink:
		return "pink"
	case config.ThemeDark, config.ThemeGreen, config.ThemeDefault:
		return "dark"
	default:
		return "dark"
	}
}

// LoadOptionsFromConfig loads render options from user configuration.
// The GLAMOUR_STYLE environment variable takes precedence over the
// theme-derived style.
func LoadOptionsFromConfig() Options {
	opts := DefaultOptions()

	cfg, err := config.LoadConfig()
	if err == nil {
		opts.Style = StyleForTheme(cfg.Theme)
	}

	if style := os.Getenv("GLAMOUR_STYLE"); style != "" {
		opts.Style = style
	}

	return opts
}

// LoadOptionsFromConfigWithWidth loads options from config with a specific width.
func LoadOptionsFromConfigWithWidth(width int) Options {
	opts := LoadOptionsFromConfig()
	opts.Width = width
	return opts
}
