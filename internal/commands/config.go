package commands

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/diogo/genchat/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show and change configuration",
	Long: `Show the current configuration, or change individual settings.

Settable fields:
  model     Remote model identifier
  theme     UI theme (default, dark, green, pink)
  markdown  Render replies as markdown (true/false)
  verbose   Diagnostic output on stderr (true/false)`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigShow()
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <field> <value>",
	Short: "Change a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigSet(args[0], args[1])
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigShow() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// The key value itself is never printed, only where it comes from
	keyStatus := "not set"
	switch config.APIKeySource() {
	case config.KeySourceEnv:
		keyStatus = "set (from " + config.EnvAPIKey + ")"
	case config.KeySourceFile:
		keyStatus = "set (stored on disk)"
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(w, "model\t%s\n", cfg.Model)
	_, _ = fmt.Fprintf(w, "theme\t%s\n", cfg.Theme)
	_, _ = fmt.Fprintf(w, "markdown\t%t\n", cfg.Markdown)
	_, _ = fmt.Fprintf(w, "verbose\t%t\n", cfg.Verbose)
	_, _ = fmt.Fprintf(w, "remember key\t%t\n", cfg.RememberKey)
	_, _ = fmt.Fprintf(w, "api key\t%s\n", keyStatus)
	return w.Flush()
}

func runConfigSet(field, value string) error {
	switch field {
	case "model":
		if err := config.SetModel(value); err != nil {
			return err
		}
	case "theme":
		if err := config.SetTheme(value); err != nil {
			return err
		}
	case "markdown":
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value '%s' for markdown (expected true or false)", value)
		}
		if err := config.SetMarkdown(enabled); err != nil {
			return err
		}
	case "verbose":
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value '%s' for verbose (expected true or false)", value)
		}
		if err := config.SetVerbose(enabled); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown field '%s' (available: model, theme, markdown, verbose)", field)
	}

	fmt.Printf("%s set to %s\n", field, value)
	return nil
}
