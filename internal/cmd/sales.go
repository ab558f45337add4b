package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wmstack/wmsctl/internal/api"
)

var salesCmd = &cobra.Command{
	Use:   "sales",
	Short: "Browse and manage sales",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var salesCustomersCmd = &cobra.Command{
	Use:   "customers",
	Short: "List customers",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app(cmd.Context())
		if err != nil {
			return err
		}
		if err := a.requireEntry("sales.customers"); err != nil {
			return err
		}
		customers, err := a.Client.ListCustomers(cmd.Context())
		if err != nil {
			return err
		}
		printList(customers, "customers", func(c api.Customer) string {
			return fmt.Sprintf("%-30s %-12s %s", c.Name, c.CustomerType, c.City)
		})
		return nil
	},
}

var salesOrdersCmd = &cobra.Command{
	Use:   "orders",
	Short: "List sales orders",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app(cmd.Context())
		if err != nil {
			return err
		}
		if err := a.requireEntry("sales.orders"); err != nil {
			return err
		}
		orders, err := a.Client.ListSalesOrders(cmd.Context())
		if err != nil {
			return err
		}
		printList(orders, "sales orders", func(o api.SalesOrder) string {
			customer := o.CustomerID
			if o.Customer != nil {
				customer = o.Customer.Name
			}
			return fmt.Sprintf("%-12s %-25s %-11s %10.2f", o.ID, customer, o.Status, o.FinalAmount)
		})
		return nil
	},
}

var salesPaymentsCmd = &cobra.Command{
	Use:   "payments",
	Short: "List payments",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app(cmd.Context())
		if err != nil {
			return err
		}
		if err := a.requireEntry("sales.payments"); err != nil {
			return err
		}
		payments, err := a.Client.ListPayments(cmd.Context())
		if err != nil {
			return err
		}
		printList(payments, "payments", func(p api.Payment) string {
			return fmt.Sprintf("%-12s %-14s %10.2f %s", p.ID, p.PaymentMethod, p.Amount, p.Status)
		})
		return nil
	},
}

var salesStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the sales summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app(cmd.Context())
		if err != nil {
			return err
		}
		if err := a.requireEntry("sales.orders"); err != nil {
			return err
		}
		stats, err := a.Client.GetSalesStats(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("Monthly revenue:    %.2f\n", stats.MonthlyRevenue)
		fmt.Printf("Pending deliveries: %d\n", stats.PendingDeliveries)
		return nil
	},
}

func init() {
	salesCmd.AddCommand(salesCustomersCmd)
	salesCmd.AddCommand(salesOrdersCmd)
	salesCmd.AddCommand(salesPaymentsCmd)
	salesCmd.AddCommand(salesStatsCmd)
	rootCmd.AddCommand(salesCmd)
}
