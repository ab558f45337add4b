package api

import (
	"context"
	"time"
)

// CustomerType enumerates the customer categories
type CustomerType string

const (
	CustomerIndividual CustomerType = "individual"
	CustomerBusiness   CustomerType = "business"
	CustomerGovernment CustomerType = "government"
)

// Customer is a sales counterparty
type Customer struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	ContactPerson string       `json:"contact_person,omitempty"`
	Email         string       `json:"email,omitempty"`
	Phone         string       `json:"phone,omitempty"`
	Address       string       `json:"address,omitempty"`
	City          string       `json:"city,omitempty"`
	Country       string       `json:"country,omitempty"`
	CustomerType  CustomerType `json:"customer_type"`
	IsActive      bool         `json:"is_active"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// SalesOrderStatus enumerates the sales order lifecycle
type SalesOrderStatus string

const (
	SalesOrderPending    SalesOrderStatus = "pending"
	SalesOrderProcessing SalesOrderStatus = "processing"
	SalesOrderShipped    SalesOrderStatus = "shipped"
	SalesOrderDelivered  SalesOrderStatus = "delivered"
	SalesOrderCancelled  SalesOrderStatus = "cancelled"
)

// SalesOrderItem is one line of a sales order
type SalesOrderItem struct {
	ID         string  `json:"id,omitempty"`
	ItemID     string  `json:"item_id"`
	Item       *Item   `json:"item,omitempty"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	Discount   float64 `json:"discount,omitempty"`
	TotalPrice float64 `json:"total_price,omitempty"`
}

// SalesOrder is a customer order
type SalesOrder struct {
	ID          string           `json:"id"`
	CustomerID  string           `json:"customer_id"`
	Customer    *Customer        `json:"customer,omitempty"`
	OrderDate   string           `json:"order_date"`
	Status      SalesOrderStatus `json:"status"`
	TotalAmount float64          `json:"total_amount"`
	Discount    float64          `json:"discount,omitempty"`
	Tax         float64          `json:"tax,omitempty"`
	FinalAmount float64          `json:"final_amount"`
	Notes       string           `json:"notes,omitempty"`
	CreatedByID string           `json:"created_by_id,omitempty"`
	Items       []SalesOrderItem `json:"items,omitempty"`
	Payments    []Payment        `json:"payments,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// PaymentMethod enumerates accepted payment methods
type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "cash"
	PaymentCreditCard   PaymentMethod = "credit_card"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
	PaymentCheck        PaymentMethod = "check"
	PaymentOther        PaymentMethod = "other"
)

// PaymentStatus enumerates the payment lifecycle
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

// Payment records money received against a sales order. The client only
// proxies payments to the backend; no processing happens here.
type Payment struct {
	ID            string        `json:"id"`
	SalesOrderID  string        `json:"sales_order_id"`
	Amount        float64       `json:"amount"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	PaymentDate   string        `json:"payment_date"`
	Status        PaymentStatus `json:"status"`
	TransactionID string        `json:"transaction_id,omitempty"`
	Notes         string        `json:"notes,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// SalesStats is the sales dashboard summary
type SalesStats struct {
	MonthlyRevenue    float64 `json:"monthly_revenue"`
	PendingDeliveries int     `json:"pending_deliveries"`
}

// ListCustomers fetches all customers
func (c *Client) ListCustomers(ctx context.Context) ([]Customer, error) {
	var customers []Customer
	if err := c.get(ctx, "/sales/customers/", nil, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

// CreateCustomer creates a customer
func (c *Client) CreateCustomer(ctx context.Context, customer Customer) (*Customer, error) {
	var created Customer
	if err := c.post(ctx, "/sales/customers/", customer, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// ListSalesOrders fetches all sales orders
func (c *Client) ListSalesOrders(ctx context.Context) ([]SalesOrder, error) {
	var orders []SalesOrder
	if err := c.get(ctx, "/sales/orders/", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// CreateSalesOrder creates a sales order
func (c *Client) CreateSalesOrder(ctx context.Context, order SalesOrder) (*SalesOrder, error) {
	var created SalesOrder
	if err := c.post(ctx, "/sales/orders/", order, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// ListPayments fetches all payments
func (c *Client) ListPayments(ctx context.Context) ([]Payment, error) {
	var payments []Payment
	if err := c.get(ctx, "/sales/payments/", nil, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// CreatePayment records a payment against a sales order
func (c *Client) CreatePayment(ctx context.Context, payment Payment) (*Payment, error) {
	var created Payment
	if err := c.post(ctx, "/sales/payments/", payment, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// GetSalesStats fetches the sales dashboard summary
func (c *Client) GetSalesStats(ctx context.Context) (*SalesStats, error) {
	var stats SalesStats
	if err := c.get(ctx, "/sales/stats/", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
