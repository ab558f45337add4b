package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/wmstack/wmsctl/internal/api"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the warehouse backend",
	Long: `Log in to the warehouse backend and store the session token locally.

Credentials can be passed as flags or entered interactively. The session
persists across invocations until you log out or the backend rejects the
token.

Examples:
  wmsctl login
  wmsctl login --username amara`,
	RunE: runLogin,
}

var (
	loginUsername string
	loginPassword string
)

func init() {
	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "username")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "password (prefer the interactive prompt)")

	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	if loginUsername == "" || loginPassword == "" {
		if err := promptCredentials(&loginUsername, &loginPassword); err != nil {
			return err
		}
	}

	err = a.Manager.Login(cmd.Context(), api.Credentials{
		Username: loginUsername,
		Password: loginPassword,
	})
	if err != nil {
		return fmt.Errorf("login failed: %s", api.LoginErrorMessage(err))
	}

	user := a.User()
	fmt.Printf("Logged in as %s (%s)\n", user.Username, user.Role)
	return nil
}

func promptCredentials(username, password *string) error {
	var fields []huh.Field
	if *username == "" {
		fields = append(fields, huh.NewInput().Title("Username").Value(username))
	}
	if *password == "" {
		fields = append(fields, huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(password))
	}
	return huh.NewForm(huh.NewGroup(fields...)).Run()
}
