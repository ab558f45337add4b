package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wmstack/wmsctl/internal/rbac"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session and what it can access",
	RunE:  runWhoami,
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

func runWhoami(cmd *cobra.Command, args []string) error {
	a, err := app(cmd.Context())
	if err != nil {
		return err
	}

	user := a.User()
	fmt.Printf("Username:  %s\n", user.Username)
	fmt.Printf("Role:      %s\n", user.Role)
	if user.Email != "" {
		fmt.Printf("Email:     %s\n", user.Email)
	}
	if user.AssignedBranch != "" {
		fmt.Printf("Branch:    %s\n", user.AssignedBranch)
	}

	fmt.Println("\nAccessible sections:")
	for _, section := range rbac.VisibleNav(rbac.ParseRole(user.Role)) {
		var entries []string
		for _, entry := range section.Entries {
			entries = append(entries, entry.Title)
		}
		fmt.Printf("  %-14s %s\n", section.Title, strings.Join(entries, ", "))
	}
	return nil
}
