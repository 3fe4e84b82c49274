// Package order contains the order history and invoicing domain model.
package order

import (
	"strings"
	"time"
)

// Statuses that count as completed for revenue and invoicing purposes.
const (
	StatusPreparing = "Preparing"
	StatusPaid      = "Paid"
	StatusDelivered = "Delivered"
)

// Item is one line of an order.
type Item struct {
	MealName   string
	Quantity   int
	UnitPrice  float64
	TotalPrice float64
}

// Order is a past customer order keyed by ID.
type Order struct {
	id            string
	customerEmail string
	date          time.Time
	items         []Item
	totalPrice    float64
	status        string
}

// New creates an order with no items.
func New(id, customerEmail string, date time.Time, status string) (*Order, error) {
	if strings.TrimSpace(id) == "" || strings.TrimSpace(customerEmail) == "" {
		return nil, ErrBlankIdentifier
	}
	return &Order{
		id:            strings.TrimSpace(id),
		customerEmail: strings.TrimSpace(customerEmail),
		date:          date,
		status:        status,
	}, nil
}

// ID returns the order's unique ID.
func (o *Order) ID() string { return o.id }

// CustomerEmail returns the owning customer's email.
func (o *Order) CustomerEmail() string { return o.customerEmail }

// Date returns the order (and scheduled delivery) date.
func (o *Order) Date() time.Time { return o.date }

// Items returns the order lines.
func (o *Order) Items() []Item {
	out := make([]Item, len(o.items))
	copy(out, o.items)
	return out
}

// AddItem appends a line and folds it into the order total.
func (o *Order) AddItem(item Item) {
	o.items = append(o.items, item)
	o.totalPrice += item.TotalPrice
}

// TotalPrice returns the order total.
func (o *Order) TotalPrice() float64 { return o.totalPrice }

// Status returns the order status.
func (o *Order) Status() string { return o.status }

// SetStatus replaces the order status.
func (o *Order) SetStatus(status string) { o.status = status }

// Completed reports whether the order is paid or delivered.
func (o *Order) Completed() bool {
	return strings.EqualFold(o.status, StatusPaid) || strings.EqualFold(o.status, StatusDelivered)
}

// Invoice is the billing view of a completed order.
type Invoice struct {
	OrderID       string
	CustomerEmail string
	Items         []Item
	TotalAmount   float64
	OrderStatus   string
}

// NewInvoice builds an invoice from a completed order's data.
func NewInvoice(o *Order) Invoice {
	return Invoice{
		OrderID:       o.ID(),
		CustomerEmail: o.CustomerEmail(),
		Items:         o.Items(),
		TotalAmount:   o.TotalPrice(),
		OrderStatus:   o.Status(),
	}
}
