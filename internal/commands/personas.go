package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/diogo/genchat/internal/config"
)

var personasCmd = &cobra.Command{
	Use:   "personas",
	Short: "List the built-in personas",
	Long: `List the built-in personas.

The set is fixed; pick one with --persona or from the chat overlay.
The selection lasts for one run and is never saved.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPersonasList()
	},
}

func runPersonasList() error {
	def := config.DefaultPersona()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tNAME\tDEFAULT\tPREAMBLE")
	_, _ = fmt.Fprintln(w, "--\t----\t-------\t--------")

	for _, p := range config.Personas() {
		isDefault := ""
		if p.ID == def.ID {
			isDefault = "✓"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.ID, p.Name, isDefault, truncateValue(p.Preamble, 60))
	}

	return w.Flush()
}

// truncateValue shortens s for table display
func truncateValue(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen]) + "..."
}
