package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wmstack/wmsctl/internal/api"
)

var procurementCmd = &cobra.Command{
	Use:   "procurement",
	Short: "Browse and manage procurement",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var procurementSuppliersCmd = &cobra.Command{
	Use:   "suppliers",
	Short: "List suppliers",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app(cmd.Context())
		if err != nil {
			return err
		}
		if err := a.requireEntry("procurement.suppliers"); err != nil {
			return err
		}
		suppliers, err := a.Client.ListSuppliers(cmd.Context())
		if err != nil {
			return err
		}
		printList(suppliers, "suppliers", func(s api.Supplier) string {
			return fmt.Sprintf("%-30s %-20s %s", s.Name, s.City, s.Email)
		})
		return nil
	},
}

var procurementOrdersCmd = &cobra.Command{
	Use:   "orders",
	Short: "List purchase orders",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app(cmd.Context())
		if err != nil {
			return err
		}
		if err := a.requireEntry("procurement.purchase-orders"); err != nil {
			return err
		}
		orders, err := a.Client.ListPurchaseOrders(cmd.Context())
		if err != nil {
			return err
		}
		printList(orders, "purchase orders", func(o api.PurchaseOrder) string {
			supplier := o.SupplierID
			if o.Supplier != nil {
				supplier = o.Supplier.Name
			}
			return fmt.Sprintf("%-12s %-25s %-10s %10.2f", o.ID, supplier, o.Status, o.TotalAmount)
		})
		return nil
	},
}

var procurementRequestsCmd = &cobra.Command{
	Use:   "requests",
	Short: "List procurement requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app(cmd.Context())
		if err != nil {
			return err
		}
		if err := a.requireEntry("procurement.requests"); err != nil {
			return err
		}
		requests, err := a.Client.ListProcurementRequests(cmd.Context())
		if err != nil {
			return err
		}
		printList(requests, "requests", func(r api.ProcurementRequest) string {
			return fmt.Sprintf("%-30s %-8s %s", r.Title, r.Urgency, r.Status)
		})
		return nil
	},
}

var procurementRequestCreateCmd = &cobra.Command{
	Use:   "create-request",
	Short: "Create a procurement request",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app(cmd.Context())
		if err != nil {
			return err
		}
		if err := a.requireEntry("procurement.requests"); err != nil {
			return err
		}
		title, _ := cmd.Flags().GetString("title")
		urgency, _ := cmd.Flags().GetString("urgency")
		if title == "" {
			return fmt.Errorf("--title is required")
		}
		request, err := a.Client.CreateProcurementRequest(cmd.Context(), api.ProcurementRequest{
			Title:   title,
			Urgency: api.RequestUrgency(urgency),
			Status:  api.RequestPending,
		})
		if err != nil {
			return fmt.Errorf("create request failed: %s", api.ErrorMessage(err))
		}
		fmt.Printf("Created request %s (%s)\n", request.Title, request.ID)
		return nil
	},
}

var procurementStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the procurement summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app(cmd.Context())
		if err != nil {
			return err
		}
		if err := a.requireEntry("procurement.purchase-orders"); err != nil {
			return err
		}
		stats, err := a.Client.GetProcurementStats(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("Pending orders: %d\n", stats.PendingOrdersCount)
		return nil
	},
}

func init() {
	procurementRequestCreateCmd.Flags().String("title", "", "request title")
	procurementRequestCreateCmd.Flags().String("urgency", "medium", "urgency (low, medium, high, critical)")

	procurementCmd.AddCommand(procurementSuppliersCmd)
	procurementCmd.AddCommand(procurementOrdersCmd)
	procurementCmd.AddCommand(procurementRequestsCmd)
	procurementCmd.AddCommand(procurementRequestCreateCmd)
	procurementCmd.AddCommand(procurementStatsCmd)
	rootCmd.AddCommand(procurementCmd)
}
