package api

import (
	"context"
	"time"
)

// Supplier is a procurement counterparty
type Supplier struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	ContactPerson string    `json:"contact_person,omitempty"`
	Email         string    `json:"email,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Address       string    `json:"address,omitempty"`
	City          string    `json:"city,omitempty"`
	Country       string    `json:"country,omitempty"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// PurchaseOrderStatus enumerates the purchase order lifecycle
type PurchaseOrderStatus string

const (
	PurchaseOrderDraft     PurchaseOrderStatus = "draft"
	PurchaseOrderPending   PurchaseOrderStatus = "pending"
	PurchaseOrderApproved  PurchaseOrderStatus = "approved"
	PurchaseOrderOrdered   PurchaseOrderStatus = "ordered"
	PurchaseOrderReceived  PurchaseOrderStatus = "received"
	PurchaseOrderCancelled PurchaseOrderStatus = "cancelled"
)

// PurchaseOrderItem is one line of a purchase order
type PurchaseOrderItem struct {
	ID         string  `json:"id,omitempty"`
	ItemID     string  `json:"item_id"`
	Item       *Item   `json:"item,omitempty"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price,omitempty"`
}

// PurchaseOrder is an order placed with a supplier
type PurchaseOrder struct {
	ID                   string              `json:"id"`
	SupplierID           string              `json:"supplier_id"`
	Supplier             *Supplier           `json:"supplier,omitempty"`
	OrderDate            string              `json:"order_date"`
	ExpectedDeliveryDate string              `json:"expected_delivery_date,omitempty"`
	Status               PurchaseOrderStatus `json:"status"`
	TotalAmount          float64             `json:"total_amount"`
	Notes                string              `json:"notes,omitempty"`
	CreatedByID          string              `json:"created_by_id,omitempty"`
	ApprovedByID         string              `json:"approved_by_id,omitempty"`
	Items                []PurchaseOrderItem `json:"items,omitempty"`
	CreatedAt            time.Time           `json:"created_at"`
	UpdatedAt            time.Time           `json:"updated_at"`
}

// RequestUrgency enumerates procurement request urgency levels
type RequestUrgency string

const (
	UrgencyLow      RequestUrgency = "low"
	UrgencyMedium   RequestUrgency = "medium"
	UrgencyHigh     RequestUrgency = "high"
	UrgencyCritical RequestUrgency = "critical"
)

// RequestStatus enumerates the procurement request lifecycle
type RequestStatus string

const (
	RequestDraft     RequestStatus = "draft"
	RequestPending   RequestStatus = "pending"
	RequestApproved  RequestStatus = "approved"
	RequestRejected  RequestStatus = "rejected"
	RequestOrdered   RequestStatus = "ordered"
	RequestCompleted RequestStatus = "completed"
)

// ProcurementRequestItem is one line of a procurement request
type ProcurementRequestItem struct {
	ID       string `json:"id,omitempty"`
	ItemID   string `json:"item_id"`
	Item     *Item  `json:"item,omitempty"`
	Quantity int    `json:"quantity"`
	Reason   string `json:"reason,omitempty"`
}

// ProcurementRequest is an internal request for goods, pending approval
type ProcurementRequest struct {
	ID          string                   `json:"id"`
	RequesterID string                   `json:"requester_id,omitempty"`
	Title       string                   `json:"title"`
	Description string                   `json:"description,omitempty"`
	Urgency     RequestUrgency           `json:"urgency"`
	Status      RequestStatus            `json:"status"`
	Deadline    string                   `json:"deadline,omitempty"`
	Notes       string                   `json:"notes,omitempty"`
	Items       []ProcurementRequestItem `json:"items,omitempty"`
	CreatedAt   time.Time                `json:"created_at"`
	UpdatedAt   time.Time                `json:"updated_at"`
}

// ProcurementStats is the procurement dashboard summary
type ProcurementStats struct {
	PendingOrdersCount int `json:"pending_orders_count"`
}

// ListSuppliers fetches all suppliers
func (c *Client) ListSuppliers(ctx context.Context) ([]Supplier, error) {
	var suppliers []Supplier
	if err := c.get(ctx, "/procurement/suppliers/", nil, &suppliers); err != nil {
		return nil, err
	}
	return suppliers, nil
}

// CreateSupplier creates a supplier
func (c *Client) CreateSupplier(ctx context.Context, supplier Supplier) (*Supplier, error) {
	var created Supplier
	if err := c.post(ctx, "/procurement/suppliers/", supplier, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// ListPurchaseOrders fetches all purchase orders
func (c *Client) ListPurchaseOrders(ctx context.Context) ([]PurchaseOrder, error) {
	var orders []PurchaseOrder
	if err := c.get(ctx, "/procurement/purchase-orders/", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// CreatePurchaseOrder creates a purchase order
func (c *Client) CreatePurchaseOrder(ctx context.Context, order PurchaseOrder) (*PurchaseOrder, error) {
	var created PurchaseOrder
	if err := c.post(ctx, "/procurement/purchase-orders/", order, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// ListProcurementRequests fetches all procurement requests
func (c *Client) ListProcurementRequests(ctx context.Context) ([]ProcurementRequest, error) {
	var requests []ProcurementRequest
	if err := c.get(ctx, "/procurement/requests/", nil, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// CreateProcurementRequest creates a procurement request
func (c *Client) CreateProcurementRequest(ctx context.Context, request ProcurementRequest) (*ProcurementRequest, error) {
	var created ProcurementRequest
	if err := c.post(ctx, "/procurement/requests/", request, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// GetProcurementStats fetches the procurement dashboard summary
func (c *Client) GetProcurementStats(ctx context.Context) (*ProcurementStats, error) {
	var stats ProcurementStats
	if err := c.get(ctx, "/procurement/stats/", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
