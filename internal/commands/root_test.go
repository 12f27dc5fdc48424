package commands

import (
	"testing"

	"github.com/spf13/cobra"

	"github.com/diogo/genchat/internal/config"
	"github.com/diogo/genchat/internal/models"
)

func TestGetModel(t *testing.T) {
	oldModelFlag := modelFlag
	defer func() { modelFlag = oldModelFlag }()

	t.Run("flag wins", func(t *testing.T) {
		modelFlag = "gemini-from-flag"
		if got := getModel(); got != "gemini-from-flag" {
			t.Errorf("getModel() = %q, want flag value", got)
		}
	})

	t.Run("falls back to default without config", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())
		modelFlag = ""
		if got := getModel(); got != models.DefaultModel.ID {
			t.Errorf("getModel() = %q, want %q", got, models.DefaultModel.ID)
		}
	})

	t.Run("reads configured model", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())
		modelFlag = ""

		cfg := config.DefaultConfig()
		cfg.Model = "gemini-from-config"
		if err := config.SaveConfig(cfg); err != nil {
			t.Fatalf("SaveConfig failed: %v", err)
		}

		if got := getModel(); got != "gemini-from-config" {
			t.Errorf("getModel() = %q, want configured value", got)
		}
	})
}

func TestGetPersona(t *testing.T) {
	oldPersonaFlag := personaFlag
	defer func() { personaFlag = oldPersonaFlag }()

	t.Run("empty flag selects default", func(t *testing.T) {
		personaFlag = ""
		p, err := getPersona()
		if err != nil {
			t.Fatalf("getPersona() error = %v", err)
		}
		if p.ID != config.DefaultPersona().ID {
			t.Errorf("getPersona().ID = %q, want default", p.ID)
		}
	})

	t.Run("valid id resolves", func(t *testing.T) {
		personaFlag = "writer"
		p, err := getPersona()
		if err != nil {
			t.Fatalf("getPersona() error = %v", err)
		}
		if p.ID != "writer" {
			t.Errorf("getPersona().ID = %q, want writer", p.ID)
		}
	})

	t.Run("unknown id errors", func(t *testing.T) {
		personaFlag = "pirate"
		if _, err := getPersona(); err == nil {
			t.Error("getPersona() should fail for an unknown persona")
		}
	})
}

func TestEffectiveConfig_VerboseFlag(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	oldVerboseFlag := verboseFlag
	defer func() { verboseFlag = oldVerboseFlag }()

	verboseFlag = false
	if cfg := effectiveConfig(); cfg.Verbose {
		t.Error("verbose should default to off")
	}

	verboseFlag = true
	if cfg := effectiveConfig(); !cfg.Verbose {
		t.Error("--verbose should enable verbose output")
	}
}

func TestRootCommand_Subcommands(t *testing.T) {
	want := map[string]bool{
		"chat":     false,
		"config":   false,
		"key":      false,
		"personas": false,
	}

	for _, cmd := range rootCmd.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}

	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestExecuteWrapperSuccess(t *testing.T) {
	old := rootCmd
	rootCmd = &cobra.Command{
		Use: "test",
		RunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
	}
	rootCmd.SetArgs([]string{})
	defer func() { rootCmd = old }()

	// Should not call os.Exit for successful execution
	Execute()
}
