package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnvAPIKey is the environment variable consulted before the stored key file.
const EnvAPIKey = "GEMINI_API_KEY"

// KeySource identifies where the active API key was found
type KeySource string

// Key sources
const (
	KeySourceEnv  KeySource = "env"
	KeySourceFile KeySource = "file"
	KeySourceNone KeySource = "none"
)

// storedKey is the on-disk shape of key.json
type storedKey struct {
	APIKey string `json:"api_key"`
}

// GetKeyPath returns the path to the stored API key file
func GetKeyPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "key.json"), nil
}

// LoadAPIKey resolves the API key. The environment variable wins over the
// stored file; a key missing everywhere returns "" with no error. An
// environment variable holding only whitespace counts as unset.
func LoadAPIKey() (string, error) {
	if key := strings.TrimSpace(os.Getenv(EnvAPIKey)); key != "" {
		return key, nil
	}

	keyPath, err := GetKeyPath()
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(keyPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read key file: %w", err)
	}

	var stored storedKey
	if err := json.Unmarshal(data, &stored); err != nil {
		return "", fmt.Errorf("failed to parse key file: %w", err)
	}

	return strings.TrimSpace(stored.APIKey), nil
}

// StoreAPIKey persists or erases the stored key according to remember.
// remember=false deletes any stored key so nothing survives the process.
func StoreAPIKey(key string, remember bool) error {
	if !remember {
		return ClearAPIKey()
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("cannot store an empty API key")
	}

	configDir, err := EnsureConfigDir()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(storedKey{APIKey: key}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal key: %w", err)
	}

	keyPath := filepath.Join(configDir, "key.json")
	if err := os.WriteFile(keyPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write key file: %w", err)
	}

	return nil
}

// ClearAPIKey removes the stored key file. A missing file is not an error.
func ClearAPIKey() error {
	keyPath, err := GetKeyPath()
	if err != nil {
		return err
	}

	if err := os.Remove(keyPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove key file: %w", err)
	}

	return nil
}

// HasStoredKey reports whether a key file exists on disk
func HasStoredKey() bool {
	keyPath, err := GetKeyPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(keyPath)
	return err == nil
}

// APIKeySource reports where LoadAPIKey would find the active key
func APIKeySource() KeySource {
	if strings.TrimSpace(os.Getenv(EnvAPIKey)) != "" {
		return KeySourceEnv
	}
	if HasStoredKey() {
		return KeySourceFile
	}
	return KeySourceNone
}
