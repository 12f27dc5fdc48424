package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/diogo/genchat/internal/config"
)

var keyRememberFlag bool

var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Manage the API key",
	Long: `Manage the Gemini API key.

The key lives in ` + "`~/.genchat/key.json`" + ` when remembered, and only in
process memory otherwise. The ` + config.EnvAPIKey + ` environment variable
always wins over the stored key.`,
}

var keySetCmd = &cobra.Command{
	Use:   "set",
	Short: "Enter an API key",
	Long: `Enter an API key at a masked prompt.

With --remember the key is written to disk and survives across runs.
Without it nothing is stored: any previously stored key is removed, and
the key must come from ` + config.EnvAPIKey + ` or the chat settings panel
on the next run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runKeySet(keyRememberFlag)
	},
}

var keyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the stored API key",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.ClearAPIKey(); err != nil {
			return err
		}
		fmt.Println("Stored API key removed.")
		return nil
	},
}

var keyStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether an API key is configured",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runKeyStatus()
	},
}

func init() {
	keySetCmd.Flags().BoolVarP(&keyRememberFlag, "remember", "r", false, "Store the key on disk for future runs")

	keyCmd.AddCommand(keySetCmd)
	keyCmd.AddCommand(keyClearCmd)
	keyCmd.AddCommand(keyStatusCmd)
}

// readKey reads the API key from stdin. On a terminal the input is masked;
// piped input is read as a single line so scripts can feed the key.
func readKey() (string, error) {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		fmt.Fprint(os.Stderr, "Enter API key: ")
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("failed to read key: %w", err)
		}
		return strings.TrimSpace(string(raw)), nil
	}

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read key: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func runKeySet(remember bool) error {
	key, err := readKey()
	if err != nil {
		return err
	}
	if key == "" {
		return fmt.Errorf("no key entered")
	}

	if err := config.StoreAPIKey(key, remember); err != nil {
		return err
	}
	// Keep the remember preference so the chat settings panel seeds it
	if err := config.SetRememberKey(remember); err != nil {
		return err
	}

	if remember {
		keyPath, _ := config.GetKeyPath()
		fmt.Printf("API key stored in %s.\n", keyPath)
	} else {
		fmt.Printf("Nothing stored (remember is off). Export %s or rerun with --remember.\n", config.EnvAPIKey)
	}
	return nil
}

func runKeyStatus() error {
	switch config.APIKeySource() {
	case config.KeySourceEnv:
		fmt.Printf("API key: set (from %s)\n", config.EnvAPIKey)
		if config.HasStoredKey() {
			fmt.Println("A stored key also exists; the environment variable wins.")
		}
	case config.KeySourceFile:
		keyPath, _ := config.GetKeyPath()
		fmt.Printf("API key: set (stored in %s)\n", keyPath)
	default:
		fmt.Println("API key: not set")
		fmt.Printf("Run 'genchat key set' or export %s.\n", config.EnvAPIKey)
	}
	return nil
}
