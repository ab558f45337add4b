package api

import (
	"context"
	"net/url"
	"strconv"
	"time"
)

// Category groups items
type Category struct {
	ID          int    `json:"category_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Item is a stockable product
type Item struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	UnitPrice       string    `json:"unit_price"`
	UnitMeasurement string    `json:"unit_measurement,omitempty"`
	CategoryID      string    `json:"category_id,omitempty"`
	Category        *Category `json:"category,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Warehouse is a storage location
type Warehouse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Location        string    `json:"location"`
	Capacity        int       `json:"capacity"`
	CurrentCapacity int       `json:"current_capacity"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// StockLevel is the quantity of one item in one warehouse
type StockLevel struct {
	ID                string     `json:"id"`
	ItemID            string     `json:"item_id"`
	Item              *Item      `json:"item,omitempty"`
	WarehouseID       string     `json:"warehouse_id"`
	Warehouse         *Warehouse `json:"warehouse,omitempty"`
	Quantity          int        `json:"quantity"`
	AvailableQuantity int        `json:"available_quantity"`
	MinimumQuantity   int        `json:"minimum_quantity"`
}

// DistributionStatus enumerates the lifecycle of a stock transfer
type DistributionStatus string

const (
	DistributionPending   DistributionStatus = "pending"
	DistributionInTransit DistributionStatus = "in_transit"
	DistributionCompleted DistributionStatus = "completed"
	DistributionCancelled DistributionStatus = "cancelled"
)

// Distribution is a stock transfer between warehouses
type Distribution struct {
	ID                     string             `json:"id"`
	SourceWarehouseID      string             `json:"source_warehouse_id"`
	SourceWarehouse        *Warehouse         `json:"source_warehouse,omitempty"`
	DestinationWarehouseID string             `json:"destination_warehouse_id"`
	DestinationWarehouse   *Warehouse         `json:"destination_warehouse,omitempty"`
	Status                 DistributionStatus `json:"status"`
	EstimatedDelivery      string             `json:"estimated_delivery,omitempty"`
	Items                  []DistributionItem `json:"items,omitempty"`
	CreatedAt              time.Time          `json:"created_at"`
	UpdatedAt              time.Time          `json:"updated_at"`
}

// DistributionItem is one line of a distribution
type DistributionItem struct {
	Item     int `json:"item"`
	Quantity int `json:"quantity"`
}

// CreateDistributionRequest is the create payload for a distribution
type CreateDistributionRequest struct {
	SourceWarehouse      int                `json:"source_warehouse"`
	DestinationWarehouse int                `json:"destination_warehouse"`
	EstimatedDelivery    string             `json:"estimated_delivery"`
	Items                []DistributionItem `json:"items"`
}

// ListItems fetches all items
func (c *Client) ListItems(ctx context.Context) ([]Item, error) {
	var items []Item
	if err := c.get(ctx, "/inventory/items/", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetItem fetches a single item
func (c *Client) GetItem(ctx context.Context, id string) (*Item, error) {
	var item Item
	if err := c.get(ctx, "/inventory/items/"+id+"/", nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateItem creates an item
func (c *Client) CreateItem(ctx context.Context, item Item) (*Item, error) {
	var created Item
	if err := c.post(ctx, "/inventory/items/", item, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateItem replaces an item
func (c *Client) UpdateItem(ctx context.Context, id string, item Item) (*Item, error) {
	var updated Item
	if err := c.put(ctx, "/inventory/items/"+id+"/", item, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteItem removes an item
func (c *Client) DeleteItem(ctx context.Context, id string) error {
	return c.delete(ctx, "/inventory/items/"+id+"/")
}

// ListCategories fetches all categories
func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := c.get(ctx, "/inventory/categories/", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCategory creates a category
func (c *Client) CreateCategory(ctx context.Context, category Category) (*Category, error) {
	var created Category
	if err := c.post(ctx, "/inventory/categories/", category, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// ListWarehouses fetches all warehouses
func (c *Client) ListWarehouses(ctx context.Context) ([]Warehouse, error) {
	var warehouses []Warehouse
	if err := c.get(ctx, "/inventory/warehouses/", nil, &warehouses); err != nil {
		return nil, err
	}
	return warehouses, nil
}

// GetWarehouse fetches a single warehouse
func (c *Client) GetWarehouse(ctx context.Context, id string) (*Warehouse, error) {
	var warehouse Warehouse
	if err := c.get(ctx, "/inventory/warehouses/"+id+"/", nil, &warehouse); err != nil {
		return nil, err
	}
	return &warehouse, nil
}

// ListStock fetches stock levels, optionally filtered to one warehouse
func (c *Client) ListStock(ctx context.Context, warehouseID string) ([]StockLevel, error) {
	var query url.Values
	if warehouseID != "" {
		query = url.Values{"warehouse": []string{warehouseID}}
	}
	var stock []StockLevel
	if err := c.get(ctx, "/inventory/inventory/", query, &stock); err != nil {
		return nil, err
	}
	return stock, nil
}

// ListDistributions fetches all distributions
func (c *Client) ListDistributions(ctx context.Context) ([]Distribution, error) {
	var distributions []Distribution
	if err := c.get(ctx, "/inventory/distributions/", nil, &distributions); err != nil {
		return nil, err
	}
	return distributions, nil
}

// CreateDistribution creates a stock transfer
func (c *Client) CreateDistribution(ctx context.Context, req CreateDistributionRequest) (*Distribution, error) {
	var created Distribution
	if err := c.post(ctx, "/inventory/distributions/", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateDistributionStatus moves a distribution through its lifecycle
func (c *Client) UpdateDistributionStatus(ctx context.Context, id int, status DistributionStatus) (*Distribution, error) {
	body := map[string]string{"status": string(status)}
	var updated Distribution
	if err := c.put(ctx, "/inventory/distributions/"+strconv.Itoa(id)+"/", body, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
