package api

import (
	"context"
	"net/url"
)

// ReportFilter narrows a report query. Zero values are omitted from the
// query string.
type ReportFilter struct {
	StartDate   string
	EndDate     string
	WarehouseID string
	CategoryID  string
	ItemID      string
	SupplierID  string
	CustomerID  string
	Status      string
}

func (f ReportFilter) query() url.Values {
	q := url.Values{}
	set := func(key, value string) {
		if value != "" {
			q.Set(key, value)
		}
	}
	set("start_date", f.StartDate)
	set("end_date", f.EndDate)
	set("warehouse_id", f.WarehouseID)
	set("category_id", f.CategoryID)
	set("item_id", f.ItemID)
	set("supplier_id", f.SupplierID)
	set("customer_id", f.CustomerID)
	set("status", f.Status)
	return q
}

// SalesReport summarizes sales over a period
type SalesReport struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	TotalSales      float64 `json:"total_sales"`
	TotalOrders     int     `json:"total_orders"`
	TopSellingItems []struct {
		ItemID      string  `json:"item_id"`
		ItemName    string  `json:"item_name"`
		Quantity    int     `json:"quantity"`
		TotalAmount float64 `json:"total_amount"`
	} `json:"top_selling_items"`
}

// InventoryReport summarizes stock state at a point in time
type InventoryReport struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Date           string  `json:"date"`
	WarehouseID    string  `json:"warehouse_id,omitempty"`
	WarehouseName  string  `json:"warehouse_name,omitempty"`
	TotalItems     int     `json:"total_items"`
	InventoryValue float64 `json:"inventory_value"`
	LowStockItems  []struct {
		ItemID          string `json:"item_id"`
		ItemName        string `json:"item_name"`
		CurrentQuantity int    `json:"current_quantity"`
		MinimumQuantity int    `json:"minimum_quantity"`
	} `json:"low_stock_items"`
}

// ProcurementReport summarizes purchasing over a period
type ProcurementReport struct {
	ID                string  `json:"id"`
	Title             string  `json:"title"`
	StartDate         string  `json:"start_date"`
	EndDate           string  `json:"end_date"`
	TotalPurchases    int     `json:"total_purchases"`
	TotalAmount       float64 `json:"total_amount"`
	SupplierBreakdown []struct {
		SupplierID   string  `json:"supplier_id"`
		SupplierName string  `json:"supplier_name"`
		OrderCount   int     `json:"order_count"`
		TotalAmount  float64 `json:"total_amount"`
	} `json:"supplier_breakdown"`
}

// GetSalesReport fetches the sales report for a filter
func (c *Client) GetSalesReport(ctx context.Context, filter ReportFilter) (*SalesReport, error) {
	var report SalesReport
	if err := c.get(ctx, "/reports/sales/", filter.query(), &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// GetInventoryReport fetches the inventory report for a filter
func (c *Client) GetInventoryReport(ctx context.Context, filter ReportFilter) (*InventoryReport, error) {
	var report InventoryReport
	if err := c.get(ctx, "/reports/inventory/", filter.query(), &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// GetProcurementReport fetches the procurement report for a filter
func (c *Client) GetProcurementReport(ctx context.Context, filter ReportFilter) (*ProcurementReport, error) {
	var report ProcurementReport
	if err := c.get(ctx, "/reports/procurement/", filter.query(), &report); err != nil {
		return nil, err
	}
	return &report, nil
}
