package commands

import (
	"os"
	"strings"
	"testing"

	"github.com/diogo/genchat/internal/config"
)

// feedStdin replaces os.Stdin with a pipe carrying input, restoring it when
// the test ends. readKey takes the line-read path because a pipe is not a
// terminal.
func feedStdin(t *testing.T, input string) {
	t.Helper()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe failed: %v", err)
	}
	if _, err := w.WriteString(input); err != nil {
		t.Fatalf("writing stdin pipe failed: %v", err)
	}
	w.Close()

	old := os.Stdin
	os.Stdin = r
	t.Cleanup(func() {
		os.Stdin = old
		r.Close()
	})
}

func TestReadKey_PipedInput(t *testing.T) {
	feedStdin(t, "  piped-key  \n")

	key, err := readKey()
	if err != nil {
		t.Fatalf("readKey() error = %v", err)
	}
	if key != "piped-key" {
		t.Errorf("readKey() = %q, want trimmed piped-key", key)
	}
}

func TestRunKeySet_Remember(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(config.EnvAPIKey, "")
	feedStdin(t, "my-secret-key\n")

	if err := runKeySet(true); err != nil {
		t.Fatalf("runKeySet(true) error = %v", err)
	}

	key, err := config.LoadAPIKey()
	if err != nil {
		t.Fatalf("LoadAPIKey failed: %v", err)
	}
	if key != "my-secret-key" {
		t.Errorf("stored key = %q, want my-secret-key", key)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if !cfg.RememberKey {
		t.Error("remember preference should be saved")
	}
}

func TestRunKeySet_NoRemember(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(config.EnvAPIKey, "")

	// A previously stored key must not survive a non-remembered set
	if err := config.StoreAPIKey("old-key", true); err != nil {
		t.Fatalf("StoreAPIKey failed: %v", err)
	}

	feedStdin(t, "new-key\n")
	if err := runKeySet(false); err != nil {
		t.Fatalf("runKeySet(false) error = %v", err)
	}

	if config.HasStoredKey() {
		t.Error("no key should remain on disk")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.RememberKey {
		t.Error("remember preference should be off")
	}
}

func TestRunKeySet_EmptyInput(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	feedStdin(t, "\n")

	err := runKeySet(true)
	if err == nil {
		t.Fatal("expected error for empty key")
	}
	if !strings.Contains(err.Error(), "no key entered") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestRunKeyStatus(t *testing.T) {
	t.Run("not set", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())
		t.Setenv(config.EnvAPIKey, "")
		if err := runKeyStatus(); err != nil {
			t.Errorf("runKeyStatus() error = %v", err)
		}
	})

	t.Run("from environment", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())
		t.Setenv(config.EnvAPIKey, "env-key")
		if err := runKeyStatus(); err != nil {
			t.Errorf("runKeyStatus() error = %v", err)
		}
	})

	t.Run("from file", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())
		t.Setenv(config.EnvAPIKey, "")
		if err := config.StoreAPIKey("stored-key", true); err != nil {
			t.Fatalf("StoreAPIKey failed: %v", err)
		}
		if err := runKeyStatus(); err != nil {
			t.Errorf("runKeyStatus() error = %v", err)
		}
	})
}
