package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/diogo/genchat/internal/api"
	"github.com/diogo/genchat/internal/config"
	"github.com/diogo/genchat/internal/tui"
)

var chatThemeFlag string

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	Long: `Start an interactive chat session with Gemini.

The full conversation travels with every request, so the model keeps
context across messages. Type 'exit', 'quit', or press Ctrl+C to end
the session.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat()
	},
}

func init() {
	chatCmd.Flags().StringVarP(&chatThemeFlag, "theme", "t", "", "UI theme for this session (default, dark, green, pink)")
}

// runChatTUI is swappable so tests can run runChat without a terminal.
var runChatTUI = tui.RunChat

func runChat() error {
	cfg := effectiveConfig()

	// --theme overrides the configured theme for this run only; the
	// selection overlay is what persists a theme change.
	if chatThemeFlag != "" {
		if !config.IsValidTheme(chatThemeFlag) {
			return fmt.Errorf("unknown theme '%s' (available: default, dark, green, pink)", chatThemeFlag)
		}
		cfg.Theme = chatThemeFlag
	}

	persona, err := getPersona()
	if err != nil {
		return err
	}

	// A missing key is not fatal here: the chat opens and the first send
	// surfaces the error banner, pointing at the settings overlay.
	key, err := config.LoadAPIKey()
	if err != nil {
		return fmt.Errorf("failed to load API key: %w", err)
	}

	client, err := api.NewClient(
		api.WithModel(getModel()),
		api.WithAPIKey(key),
		api.WithVerbose(cfg.Verbose),
	)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	session := api.NewChatSession(client, persona)
	return runChatTUI(session, cfg)
}
