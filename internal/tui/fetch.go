package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wmstack/wmsctl/internal/api"
)

// fetchCmd loads the content for a navigation entry. A 401 during the fetch
// has already forced the session out through the client hook by the time
// the error surfaces here; reporting the new session state is enough to
// bounce the console back to login.
func (m Model) fetchCmd(entryID string) tea.Cmd {
	client := m.client
	manager := m.manager
	user := m.session.User
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), api.DefaultTimeout)
		defer cancel()

		body, err := fetchScreen(ctx, client, entryID, user)
		if err != nil {
			if errors.Is(err, api.ErrUnauthenticated) {
				return SessionChangedMsg{State: manager.State()}
			}
			return contentErrMsg{entryID: entryID, message: api.ErrorMessage(err)}
		}
		return contentMsg{entryID: entryID, body: body}
	}
}

func fetchScreen(ctx context.Context, client *api.Client, entryID string, user *api.User) (string, error) {
	switch entryID {
	case "dashboard":
		return dashboardScreen(user), nil

	case "inventory.items":
		items, err := client.ListItems(ctx)
		if err != nil {
			return "", err
		}
		return listScreen(len(items), "items", func(b *strings.Builder) {
			for _, it := range items {
				fmt.Fprintf(b, "  %-30s %s\n", it.Name, it.UnitPrice)
			}
		}), nil

	case "inventory.categories":
		categories, err := client.ListCategories(ctx)
		if err != nil {
			return "", err
		}
		return listScreen(len(categories), "categories", func(b *strings.Builder) {
			for _, c := range categories {
				fmt.Fprintf(b, "  %s\n", c.Name)
			}
		}), nil

	case "inventory.warehouses":
		warehouses, err := client.ListWarehouses(ctx)
		if err != nil {
			return "", err
		}
		return listScreen(len(warehouses), "warehouses", func(b *strings.Builder) {
			for _, w := range warehouses {
				fmt.Fprintf(b, "  %-30s %s\n", w.Name, w.Location)
			}
		}), nil

	case "inventory.distribution":
		distributions, err := client.ListDistributions(ctx)
		if err != nil {
			return "", err
		}
		return listScreen(len(distributions), "distributions", func(b *strings.Builder) {
			for _, d := range distributions {
				dest := d.DestinationWarehouseID
				if d.DestinationWarehouse != nil {
					dest = d.DestinationWarehouse.Name
				}
				fmt.Fprintf(b, "  %-12s -> %-20s %s\n", d.ID, dest, d.Status)
			}
		}), nil

	case "procurement.suppliers":
		suppliers, err := client.ListSuppliers(ctx)
		if err != nil {
			return "", err
		}
		return listScreen(len(suppliers), "suppliers", func(b *strings.Builder) {
			for _, s := range suppliers {
				fmt.Fprintf(b, "  %-30s %s\n", s.Name, s.City)
			}
		}), nil

	case "procurement.purchase-orders":
		orders, err := client.ListPurchaseOrders(ctx)
		if err != nil {
			return "", err
		}
		return listScreen(len(orders), "purchase orders", func(b *strings.Builder) {
			for _, o := range orders {
				fmt.Fprintf(b, "  %-12s %-10s %10.2f\n", o.ID, o.Status, o.TotalAmount)
			}
		}), nil

	case "procurement.requests":
		requests, err := client.ListProcurementRequests(ctx)
		if err != nil {
			return "", err
		}
		return listScreen(len(requests), "requests", func(b *strings.Builder) {
			for _, r := range requests {
				fmt.Fprintf(b, "  %-30s %-8s %s\n", r.Title, r.Urgency, r.Status)
			}
		}), nil

	case "sales.customers":
		customers, err := client.ListCustomers(ctx)
		if err != nil {
			return "", err
		}
		return listScreen(len(customers), "customers", func(b *strings.Builder) {
			for _, c := range customers {
				fmt.Fprintf(b, "  %-30s %s\n", c.Name, c.CustomerType)
			}
		}), nil

	case "sales.orders":
		orders, err := client.ListSalesOrders(ctx)
		if err != nil {
			return "", err
		}
		return listScreen(len(orders), "sales orders", func(b *strings.Builder) {
			for _, o := range orders {
				fmt.Fprintf(b, "  %-12s %-10s %10.2f\n", o.ID, o.Status, o.FinalAmount)
			}
		}), nil

	case "sales.payments":
		payments, err := client.ListPayments(ctx)
		if err != nil {
			return "", err
		}
		return listScreen(len(payments), "payments", func(b *strings.Builder) {
			for _, p := range payments {
				fmt.Fprintf(b, "  %-12s %-12s %10.2f %s\n", p.ID, p.PaymentMethod, p.Amount, p.Status)
			}
		}), nil

	case "reports.sales":
		report, err := client.GetSalesReport(ctx, api.ReportFilter{})
		if err != nil {
			return "", err
		}
		var b strings.Builder
		fmt.Fprintf(&b, "Total sales: %.2f over %d orders\n\n", report.TotalSales, report.TotalOrders)
		for _, item := range report.TopSellingItems {
			fmt.Fprintf(&b, "  %-30s x%d %10.2f\n", item.ItemName, item.Quantity, item.TotalAmount)
		}
		return b.String(), nil

	case "reports.inventory":
		report, err := client.GetInventoryReport(ctx, api.ReportFilter{})
		if err != nil {
			return "", err
		}
		var b strings.Builder
		fmt.Fprintf(&b, "%d items, inventory value %.2f\n\n", report.TotalItems, report.InventoryValue)
		if len(report.LowStockItems) > 0 {
			b.WriteString("Low stock:\n")
			for _, item := range report.LowStockItems {
				fmt.Fprintf(&b, "  %-30s %d (min %d)\n", item.ItemName, item.CurrentQuantity, item.MinimumQuantity)
			}
		}
		return b.String(), nil

	case "reports.procurement":
		report, err := client.GetProcurementReport(ctx, api.ReportFilter{})
		if err != nil {
			return "", err
		}
		var b strings.Builder
		fmt.Fprintf(&b, "%d purchases totalling %.2f\n\n", report.TotalPurchases, report.TotalAmount)
		for _, s := range report.SupplierBreakdown {
			fmt.Fprintf(&b, "  %-30s %d orders %10.2f\n", s.SupplierName, s.OrderCount, s.TotalAmount)
		}
		return b.String(), nil

	case "settings.company":
		settings, err := client.GetCompanySettings(ctx)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s\n%s\n%s %s\nCurrency: %s\n",
			settings.CompanyName, settings.Address, settings.Email, settings.Phone, settings.Currency), nil

	case "settings.users":
		users, err := client.ListUsers(ctx)
		if err != nil {
			return "", err
		}
		return listScreen(len(users), "users", func(b *strings.Builder) {
			for _, u := range users {
				active := "active"
				if !u.IsActive {
					active = "inactive"
				}
				fmt.Fprintf(b, "  %-20s %-20s %s\n", u.Username, u.Role, active)
			}
		}), nil

	case "settings.notifications":
		settings, err := client.GetNotificationSettings(ctx)
		if err != nil {
			return "", err
		}
		var b strings.Builder
		fmt.Fprintf(&b, "Low stock alerts:     %v\n", settings.LowStockAlerts)
		fmt.Fprintf(&b, "Order notifications:  %v\n", settings.OrderNotifications)
		fmt.Fprintf(&b, "Payment alerts:       %v\n", settings.PaymentAlerts)
		fmt.Fprintf(&b, "Email notifications:  %v\n", settings.EmailNotifications)
		return b.String(), nil

	case "settings.security":
		settings, err := client.GetSecuritySettings(ctx)
		if err != nil {
			return "", err
		}
		var b strings.Builder
		fmt.Fprintf(&b, "Two-factor auth:  %v\n", settings.TwoFactorAuth)
		fmt.Fprintf(&b, "Session timeout:  %d minutes\n", settings.SessionTimeout)
		fmt.Fprintf(&b, "Password policy:  min length %d, expiry %d days\n",
			settings.PasswordPolicy.MinLength, settings.PasswordPolicy.ExpiryDays)
		return b.String(), nil

	case "settings.integrations":
		settings, err := client.GetIntegrationSettings(ctx)
		if err != nil {
			return "", err
		}
		var b strings.Builder
		writeToggles(&b, "Payment gateways", settings.PaymentGateways)
		writeToggles(&b, "Shipping", settings.Shipping)
		writeToggles(&b, "Accounting", settings.Accounting)
		return b.String(), nil

	case "settings.printing":
		settings, err := client.GetPrintingSettings(ctx)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Printer:  %s\nPage:     %s %s\nBarcodes: %s\n",
			settings.PrinterName, settings.PageSize, settings.Orientation, settings.BarcodeFormat), nil

	case "settings.billing":
		// The backend exposes no billing endpoints; the screen is a static
		// placeholder like the frontend's billing tab.
		return "Billing\n\nInvoices and subscription details are managed outside the warehouse system.\nContact your administrator for billing changes.\n", nil

	default:
		return "", fmt.Errorf("unknown screen: %s", entryID)
	}
}

func dashboardScreen(user *api.User) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Welcome back, %s.\n\n", user.Username)
	fmt.Fprintf(&b, "Role:    %s\n", user.Role)
	if user.AssignedBranch != "" {
		fmt.Fprintf(&b, "Branch:  %s\n", user.AssignedBranch)
	}
	if user.Email != "" {
		fmt.Fprintf(&b, "Email:   %s\n", user.Email)
	}
	b.WriteString("\nPick a section from the sidebar to get started.\n")
	return b.String()
}

func listScreen(n int, noun string, write func(*strings.Builder)) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d %s\n\n", n, noun)
	write(&b)
	return b.String()
}

func writeToggles(b *strings.Builder, title string, toggles map[string]bool) {
	if len(toggles) == 0 {
		return
	}
	fmt.Fprintf(b, "%s:\n", title)
	for name, enabled := range toggles {
		state := "off"
		if enabled {
			state = "on"
		}
		fmt.Fprintf(b, "  %-20s %s\n", name, state)
	}
	b.WriteString("\n")
}
