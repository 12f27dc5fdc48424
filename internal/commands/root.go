// Package commands provides CLI commands for genchat.
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/diogo/genchat/internal/config"
	"github.com/diogo/genchat/internal/models"
)

var (
	// Global flags
	modelFlag   string
	personaFlag string
	outputFlag  string
	fileFlag    string
	copyFlag    bool
	verboseFlag bool

	// Version info (set at build time)
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "genchat [prompt]",
	Short: "Terminal chat client for the Gemini API",
	Long: `genchat is a terminal chat client for the Google Gemini
generative-language API. Without arguments it opens an interactive chat;
with a prompt it answers once and exits.

Examples:
  genchat                               Start interactive chat
  genchat "What is Go?"                 Send a single query
  genchat -f prompt.md                  Read prompt from file
  cat prompt.md | genchat               Read prompt from stdin
  genchat "Hello" -o response.md        Save response to file
  genchat key set --remember            Store an API key
  genchat config set theme pink         Switch the UI theme`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Check for version flag
		if v, _ := cmd.Flags().GetBool("version"); v {
			fmt.Printf("genchat %s (built %s)\n", Version, BuildTime)
			return nil
		}

		// Check for stdin input
		stat, _ := os.Stdin.Stat()
		hasStdin := (stat.Mode() & os.ModeCharDevice) == 0

		// Check for file input
		if fileFlag != "" {
			data, err := os.ReadFile(fileFlag)
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}
			return runQuery(string(data), !isStdoutTTY())
		}

		// Check for stdin
		if hasStdin {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
			return runQuery(string(data), !isStdoutTTY())
		}

		// Check for positional argument
		if len(args) > 0 {
			return runQuery(args[0], !isStdoutTTY())
		}

		// No input - open the chat TUI
		return runChat()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&modelFlag, "model", "m", "", "Model to use (e.g., gemini-2.0-flash)")
	rootCmd.PersistentFlags().StringVarP(&personaFlag, "persona", "p", "", "Persona to chat as (assistant, coder, writer)")
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "Enable diagnostic output on stderr")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Save response to file")
	rootCmd.Flags().StringVarP(&fileFlag, "file", "f", "", "Read prompt from file")
	rootCmd.Flags().BoolVarP(&copyFlag, "copy", "c", false, "Copy the response to the clipboard")
	rootCmd.Flags().BoolP("version", "v", false, "Show version and exit")

	// Add subcommands
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(keyCmd)
	rootCmd.AddCommand(personasCmd)
}

// effectiveConfig loads the config and applies global flag overrides.
// Load errors fall back to defaults; a broken config file should not keep
// the CLI from running.
func effectiveConfig() config.Config {
	cfg, err := config.LoadConfig()
	if err != nil {
		cfg = config.DefaultConfig()
	}
	if verboseFlag {
		cfg.Verbose = true
	}
	return cfg
}

// getModel returns the model to use (from flag or config)
func getModel() string {
	if modelFlag != "" {
		return modelFlag
	}

	cfg, err := config.LoadConfig()
	if err != nil || cfg.Model == "" {
		return models.DefaultModel.ID
	}

	return cfg.Model
}

// getPersona resolves the --persona flag to a built-in persona.
// An empty flag selects the default persona.
func getPersona() (config.Persona, error) {
	if personaFlag == "" {
		return config.DefaultPersona(), nil
	}
	p, ok := config.PersonaByID(personaFlag)
	if !ok {
		return config.Persona{}, config.ValidatePersonaID(personaFlag)
	}
	return p, nil
}
