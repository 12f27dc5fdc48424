// Package config handles configuration and credential management for genchat.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Theme names accepted by the chat UI. The set is closed; unknown names
// normalize to ThemeDefault.
const (
	ThemeDefault = "default"
	ThemeDark    = "dark"
	ThemeGreen   = "green"
	ThemePink    = "pink"
)

// Config represents the user configuration
type Config struct {
	Model string `json:"model"`
	Theme string `json:"theme"`
	// RememberKey controls whether an API key entered in the settings
	// panel is persisted to disk. When false the key lives only for the
	// current process.
	RememberKey bool `json:"remember_key"`
	// Markdown renders model replies through the markdown renderer.
	Markdown bool `json:"markdown"`
	// Verbose enables detailed logging output during operations.
	Verbose         bool `json:"verbose"`
	CopyToClipboard bool `json:"copy_to_clipboard"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Model:    "gemini-2.0-flash",
		Theme:    ThemeDefault,
		Markdown: true,
	}
}

// AvailableThemes returns the closed set of UI theme names
func AvailableThemes() []string {
	return []string{ThemeDefault, ThemeDark, ThemeGreen, ThemePink}
}

// IsValidTheme reports whether name is one of the closed theme set
func IsValidTheme(name string) bool {
	for _, t := range AvailableThemes() {
		if t == name {
			return true
		}
	}
	return false
}

// NormalizeTheme maps unknown theme names to the default
func NormalizeTheme(name string) string {
	if IsValidTheme(name) {
		return name
	}
	return ThemeDefault
}

// GetConfigDir returns the configuration directory path
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(home, ".genchat"), nil
}

// EnsureConfigDir creates the configuration directory if it doesn't exist
func EnsureConfigDir() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}

	// 0o700: the directory holds the stored API key
	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.json"), nil
}

// LoadConfig loads the configuration from disk. An absent file yields the
// defaults, not an error.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	configPath, err := GetConfigPath()
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Theme = NormalizeTheme(cfg.Theme)
	if cfg.Model == "" {
		cfg.Model = DefaultConfig().Model
	}

	return cfg, nil
}

// SaveConfig saves the configuration to disk
func SaveConfig(cfg Config) error {
	configDir, err := EnsureConfigDir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(configDir, "config.json")

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// SetModel updates the configured model identifier
func SetModel(id string) error {
	if id == "" {
		return fmt.Errorf("model identifier cannot be empty")
	}
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	cfg.Model = id
	return SaveConfig(cfg)
}

// SetTheme updates the configured UI theme, validating against the closed set
func SetTheme(name string) error {
	if !IsValidTheme(name) {
		return fmt.Errorf("unknown theme '%s' (available: default, dark, green, pink)", name)
	}
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	cfg.Theme = name
	return SaveConfig(cfg)
}

// SetRememberKey updates the remember-key flag
func SetRememberKey(remember bool) error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	cfg.RememberKey = remember
	return SaveConfig(cfg)
}

// SetMarkdown updates the markdown rendering flag
func SetMarkdown(enabled bool) error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	cfg.Markdown = enabled
	return SaveConfig(cfg)
}

// SetVerbose updates the verbose logging flag
func SetVerbose(enabled bool) error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	cfg.Verbose = enabled
	return SaveConfig(cfg)
}
