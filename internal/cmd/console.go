package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wmstack/wmsctl/internal/tui"
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Open the interactive warehouse console",
	Long: `Open the interactive warehouse console.

The console restores the stored session on startup, shows the login form
when there is none, and presents a sidebar filtered to what your role may
see. A session rejected by the backend at any point drops you back to the
login form.`,
	RunE: runConsole,
}

func init() {
	rootCmd.AddCommand(consoleCmd)
}

func runConsole(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	model := tui.NewModel(a.Manager, a.Loader, a.Client)
	if _, err := tui.NewProgram(model).Run(); err != nil {
		return fmt.Errorf("console failed: %w", err)
	}
	return nil
}
