package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wmstack/wmsctl/internal/api"
)

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "Generate reports",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var (
	reportStart string
	reportEnd   string
)

var reportsSalesCmd = &cobra.Command{
	Use:   "sales",
	Short: "Sales report for a period",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app(cmd.Context())
		if err != nil {
			return err
		}
		if err := a.requireEntry("reports.sales"); err != nil {
			return err
		}
		report, err := a.Client.GetSalesReport(cmd.Context(), api.ReportFilter{
			StartDate: reportStart,
			EndDate:   reportEnd,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Total sales: %.2f over %d orders\n", report.TotalSales, report.TotalOrders)
		for _, item := range report.TopSellingItems {
			fmt.Printf("  %-30s x%-5d %10.2f\n", item.ItemName, item.Quantity, item.TotalAmount)
		}
		return nil
	},
}

var reportsInventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Inventory report",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app(cmd.Context())
		if err != nil {
			return err
		}
		if err := a.requireEntry("reports.inventory"); err != nil {
			return err
		}
		warehouse, _ := cmd.Flags().GetString("warehouse")
		report, err := a.Client.GetInventoryReport(cmd.Context(), api.ReportFilter{
			WarehouseID: warehouse,
		})
		if err != nil {
			return err
		}
		fmt.Printf("%d items, inventory value %.2f\n", report.TotalItems, report.InventoryValue)
		for _, item := range report.LowStockItems {
			fmt.Printf("  LOW %-30s %d (min %d)\n", item.ItemName, item.CurrentQuantity, item.MinimumQuantity)
		}
		return nil
	},
}

var reportsProcurementCmd = &cobra.Command{
	Use:   "procurement",
	Short: "Procurement report for a period",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app(cmd.Context())
		if err != nil {
			return err
		}
		if err := a.requireEntry("reports.procurement"); err != nil {
			return err
		}
		report, err := a.Client.GetProcurementReport(cmd.Context(), api.ReportFilter{
			StartDate: reportStart,
			EndDate:   reportEnd,
		})
		if err != nil {
			return err
		}
		fmt.Printf("%d purchases totalling %.2f\n", report.TotalPurchases, report.TotalAmount)
		for _, s := range report.SupplierBreakdown {
			fmt.Printf("  %-30s %d orders %10.2f\n", s.SupplierName, s.OrderCount, s.TotalAmount)
		}
		return nil
	},
}

func init() {
	reportsCmd.PersistentFlags().StringVar(&reportStart, "start", "", "start date (YYYY-MM-DD)")
	reportsCmd.PersistentFlags().StringVar(&reportEnd, "end", "", "end date (YYYY-MM-DD)")
	reportsInventoryCmd.Flags().String("warehouse", "", "filter by warehouse ID")

	reportsCmd.AddCommand(reportsSalesCmd)
	reportsCmd.AddCommand(reportsInventoryCmd)
	reportsCmd.AddCommand(reportsProcurementCmd)
	rootCmd.AddCommand(reportsCmd)
}
