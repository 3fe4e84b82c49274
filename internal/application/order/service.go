// Package order provides the application layer for order history, revenue
// reporting and invoicing.
package order

import (
	"context"
	"time"

	"github.com/healthyplate/v1/internal/domain/order"
	"github.com/healthyplate/v1/internal/ports/inbound"
	"github.com/healthyplate/v1/internal/ports/outbound"
	"go.uber.org/zap"
)

// OrderService implements the order history use cases.
type OrderService struct {
	orders outbound.OrderRepository
	logger *zap.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(orders outbound.OrderRepository, logger *zap.Logger) inbound.OrderService {
	return &OrderService{
		orders: orders,
		logger: logger.Named("order-service"),
	}
}

// PastOrders returns the customer's order history.
func (s *OrderService) PastOrders(ctx context.Context, customerEmail string) ([]*order.Order, error) {
	return s.orders.FindByCustomerEmail(ctx, customerEmail)
}

// OrderDetails returns a single order, refusing access to orders owned by a
// different customer.
func (s *OrderService) OrderDetails(ctx context.Context, orderID, customerEmail string) (*order.Order, error) {
	o, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.CustomerEmail() != customerEmail {
		return nil, order.ErrNotAuthorized
	}
	return o, nil
}

// RevenueForMonth sums completed-order totals in the given calendar month.
func (s *OrderService) RevenueForMonth(ctx context.Context, year int, month time.Month) (float64, error) {
	all, err := s.orders.All(ctx)
	if err != nil {
		return 0, err
	}
	total := 0.0
	for _, o := range all {
		if !o.Completed() {
			continue
		}
		if o.Date().Year() == year && o.Date().Month() == month {
			total += o.TotalPrice()
		}
	}
	return total, nil
}

// TotalRevenue sums all completed-order totals.
func (s *OrderService) TotalRevenue(ctx context.Context) (float64, error) {
	all, err := s.orders.All(ctx)
	if err != nil {
		return 0, err
	}
	total := 0.0
	for _, o := range all {
		if o.Completed() {
			total += o.TotalPrice()
		}
	}
	return total, nil
}

// CompletedOrders returns every paid or delivered order.
func (s *OrderService) CompletedOrders(ctx context.Context) ([]*order.Order, error) {
	all, err := s.orders.All(ctx)
	if err != nil {
		return nil, err
	}
	completed := []*order.Order{}
	for _, o := range all {
		if o.Completed() {
			completed = append(completed, o)
		}
	}
	return completed, nil
}

// GenerateInvoice builds an invoice for a completed order owned by the
// customer. Incomplete orders yield order.ErrNotCompleted.
func (s *OrderService) GenerateInvoice(ctx context.Context, orderID, customerEmail string) (order.Invoice, error) {
	o, err := s.OrderDetails(ctx, orderID, customerEmail)
	if err != nil {
		return order.Invoice{}, err
	}
	if !o.Completed() {
		return order.Invoice{}, order.ErrNotCompleted
	}

	s.logger.Info("generated invoice",
		zap.String("order_id", o.ID()),
		zap.String("customer_email", o.CustomerEmail()),
		zap.Float64("total", o.TotalPrice()),
	)
	return order.NewInvoice(o), nil
}

// ScheduledForDelivery returns the orders dated on the given calendar day.
func (s *OrderService) ScheduledForDelivery(ctx context.Context, date time.Time) ([]*order.Order, error) {
	return s.orders.FindByDate(ctx, date)
}
