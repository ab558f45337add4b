package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and remove the stored session",
	Long: `Log out and remove the stored session.

Logging out always succeeds locally, even when the backend is unreachable.
With logout_revoke enabled in the config, the backend is also asked to
invalidate the token; a failure there is ignored.`,
	RunE: runLogout,
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

func runLogout(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	a.Manager.Logout()
	fmt.Println("Logged out.")
	return nil
}
