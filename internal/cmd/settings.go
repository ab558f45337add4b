package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wmstack/wmsctl/internal/api"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "View system settings (admin only)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var settingsCompanyCmd = &cobra.Command{
	Use:   "company",
	Short: "Show the company profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app(cmd.Context())
		if err != nil {
			return err
		}
		if err := a.requireEntry("settings.company"); err != nil {
			return err
		}
		settings, err := a.Client.GetCompanySettings(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("Company:   %s\n", settings.CompanyName)
		fmt.Printf("Address:   %s\n", settings.Address)
		fmt.Printf("Email:     %s\n", settings.Email)
		fmt.Printf("Currency:  %s\n", settings.Currency)
		fmt.Printf("Timezone:  %s\n", settings.Timezone)
		return nil
	},
}

var settingsUsersCmd = &cobra.Command{
	Use:   "users",
	Short: "List user accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app(cmd.Context())
		if err != nil {
			return err
		}
		if err := a.requireEntry("settings.users"); err != nil {
			return err
		}
		users, err := a.Client.ListUsers(cmd.Context())
		if err != nil {
			return err
		}
		printList(users, "users", func(u api.User) string {
			active := "active"
			if !u.IsActive {
				active = "inactive"
			}
			return fmt.Sprintf("%-20s %-20s %s", u.Username, u.Role, active)
		})
		return nil
	},
}

var settingsSecurityCmd = &cobra.Command{
	Use:   "security",
	Short: "Show security settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app(cmd.Context())
		if err != nil {
			return err
		}
		if err := a.requireEntry("settings.security"); err != nil {
			return err
		}
		settings, err := a.Client.GetSecuritySettings(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("Two-factor auth:  %v\n", settings.TwoFactorAuth)
		fmt.Printf("Session timeout:  %d minutes\n", settings.SessionTimeout)
		fmt.Printf("Password policy:  min length %d, expiry %d days\n",
			settings.PasswordPolicy.MinLength, settings.PasswordPolicy.ExpiryDays)
		return nil
	},
}

var settingsNotificationsCmd = &cobra.Command{
	Use:   "notifications",
	Short: "Show notification settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app(cmd.Context())
		if err != nil {
			return err
		}
		if err := a.requireEntry("settings.notifications"); err != nil {
			return err
		}
		settings, err := a.Client.GetNotificationSettings(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("Low stock alerts:     %v\n", settings.LowStockAlerts)
		fmt.Printf("Order notifications:  %v\n", settings.OrderNotifications)
		fmt.Printf("Payment alerts:       %v\n", settings.PaymentAlerts)
		fmt.Printf("Email notifications:  %v\n", settings.EmailNotifications)
		return nil
	},
}

var settingsDashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the admin dashboard summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app(cmd.Context())
		if err != nil {
			return err
		}
		if err := a.requireEntry("settings.users"); err != nil {
			return err
		}
		stats, err := a.Client.GetDashboardStats(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("Users: %d total, %d active, %d staff\n",
			stats.TotalUsers, stats.ActiveUsers, stats.StaffUsers)
		for _, r := range stats.RoleDistribution {
			fmt.Printf("  %-20s %d\n", r.Role, r.Count)
		}
		return nil
	},
}

func init() {
	settingsCmd.AddCommand(settingsCompanyCmd)
	settingsCmd.AddCommand(settingsUsersCmd)
	settingsCmd.AddCommand(settingsSecurityCmd)
	settingsCmd.AddCommand(settingsNotificationsCmd)
	settingsCmd.AddCommand(settingsDashboardCmd)
	rootCmd.AddCommand(settingsCmd)
}
