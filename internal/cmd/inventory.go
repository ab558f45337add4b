package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wmstack/wmsctl/internal/api"
)

var inventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Browse and manage inventory",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var inventoryItemsCmd = &cobra.Command{
	Use:   "items",
	Short: "List items",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app(cmd.Context())
		if err != nil {
			return err
		}
		if err := a.requireEntry("inventory.items"); err != nil {
			return err
		}
		items, err := a.Client.ListItems(cmd.Context())
		if err != nil {
			return err
		}
		printList(items, "items", func(it api.Item) string {
			category := ""
			if it.Category != nil {
				category = it.Category.Name
			}
			return fmt.Sprintf("%-30s %-12s %s", it.Name, it.UnitPrice, category)
		})
		return nil
	},
}

var inventoryItemCreateCmd = &cobra.Command{
	Use:   "create-item",
	Short: "Create an item",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app(cmd.Context())
		if err != nil {
			return err
		}
		if err := a.requireEntry("inventory.items"); err != nil {
			return err
		}
		name, _ := cmd.Flags().GetString("name")
		price, _ := cmd.Flags().GetString("price")
		if name == "" {
			return fmt.Errorf("--name is required")
		}
		item, err := a.Client.CreateItem(cmd.Context(), api.Item{Name: name, UnitPrice: price})
		if err != nil {
			return fmt.Errorf("create item failed: %s", api.ErrorMessage(err))
		}
		fmt.Printf("Created item %s (%s)\n", item.Name, item.ID)
		return nil
	},
}

var inventoryCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app(cmd.Context())
		if err != nil {
			return err
		}
		if err := a.requireEntry("inventory.categories"); err != nil {
			return err
		}
		categories, err := a.Client.ListCategories(cmd.Context())
		if err != nil {
			return err
		}
		printList(categories, "categories", func(c api.Category) string {
			return c.Name
		})
		return nil
	},
}

var inventoryWarehousesCmd = &cobra.Command{
	Use:   "warehouses",
	Short: "List warehouses",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app(cmd.Context())
		if err != nil {
			return err
		}
		if err := a.requireEntry("inventory.warehouses"); err != nil {
			return err
		}
		warehouses, err := a.Client.ListWarehouses(cmd.Context())
		if err != nil {
			return err
		}
		printList(warehouses, "warehouses", func(w api.Warehouse) string {
			return fmt.Sprintf("%-30s %-20s %d/%d", w.Name, w.Location, w.CurrentCapacity, w.Capacity)
		})
		return nil
	},
}

var inventoryStockCmd = &cobra.Command{
	Use:   "stock",
	Short: "List stock levels",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app(cmd.Context())
		if err != nil {
			return err
		}
		if err := a.requireEntry("inventory.items"); err != nil {
			return err
		}
		warehouseID, _ := cmd.Flags().GetString("warehouse")
		stock, err := a.Client.ListStock(cmd.Context(), warehouseID)
		if err != nil {
			return err
		}
		printList(stock, "stock levels", func(s api.StockLevel) string {
			name := s.ItemID
			if s.Item != nil {
				name = s.Item.Name
			}
			low := ""
			if s.Quantity < s.MinimumQuantity {
				low = "  LOW"
			}
			return fmt.Sprintf("%-30s %6d (min %d)%s", name, s.Quantity, s.MinimumQuantity, low)
		})
		return nil
	},
}

var inventoryDistributionsCmd = &cobra.Command{
	Use:   "distributions",
	Short: "List stock distributions",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app(cmd.Context())
		if err != nil {
			return err
		}
		if err := a.requireEntry("inventory.distribution"); err != nil {
			return err
		}
		distributions, err := a.Client.ListDistributions(cmd.Context())
		if err != nil {
			return err
		}
		printList(distributions, "distributions", func(d api.Distribution) string {
			dest := d.DestinationWarehouseID
			if d.DestinationWarehouse != nil {
				dest = d.DestinationWarehouse.Name
			}
			return fmt.Sprintf("%-12s -> %-20s %s", d.ID, dest, d.Status)
		})
		return nil
	},
}

func init() {
	inventoryItemCreateCmd.Flags().String("name", "", "item name")
	inventoryItemCreateCmd.Flags().String("price", "", "unit price")
	inventoryStockCmd.Flags().String("warehouse", "", "filter by warehouse ID")

	inventoryCmd.AddCommand(inventoryItemsCmd)
	inventoryCmd.AddCommand(inventoryItemCreateCmd)
	inventoryCmd.AddCommand(inventoryCategoriesCmd)
	inventoryCmd.AddCommand(inventoryWarehousesCmd)
	inventoryCmd.AddCommand(inventoryStockCmd)
	inventoryCmd.AddCommand(inventoryDistributionsCmd)
	rootCmd.AddCommand(inventoryCmd)
}
