package gorm

import (
	"context"
	"errors"
	"time"

	"github.com/healthyplate/v1/internal/domain/order"
	"github.com/healthyplate/v1/internal/ports/outbound"
	"gorm.io/gorm"
)

// OrderRepository implements the order history store using GORM.
type OrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new GORM-backed order repository.
func NewOrderRepository(db *gorm.DB) outbound.OrderRepository {
	return &OrderRepository{db: db}
}

// FindByID finds an order by ID.
func (r *OrderRepository) FindByID(ctx context.Context, id string) (*order.Order, error) {
	var model OrderModel
	result := r.db.WithContext(ctx).First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, order.ErrNotFound
		}
		return nil, result.Error
	}
	return ModelToOrder(&model)
}

// FindByCustomerEmail returns the customer's orders ordered by ID.
func (r *OrderRepository) FindByCustomerEmail(ctx context.Context, email string) ([]*order.Order, error) {
	var models []OrderModel
	result := r.db.WithContext(ctx).Where("customer_email = ?", email).Order("id").Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}
	return modelsToOrders(models)
}

// FindByDate returns the orders dated on the given calendar day.
func (r *OrderRepository) FindByDate(ctx context.Context, date time.Time) ([]*order.Order, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var models []OrderModel
	result := r.db.WithContext(ctx).
		Where("date >= ? AND date < ?", dayStart, dayEnd).
		Order("id").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}
	return modelsToOrders(models)
}

// All returns every order ordered by ID.
func (r *OrderRepository) All(ctx context.Context) ([]*order.Order, error) {
	var models []OrderModel
	result := r.db.WithContext(ctx).Order("id").Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}
	return modelsToOrders(models)
}

// Save inserts or replaces an order keyed by ID.
func (r *OrderRepository) Save(ctx context.Context, o *order.Order) error {
	if o == nil {
		return order.ErrBlankIdentifier
	}
	return r.db.WithContext(ctx).Save(OrderToModel(o)).Error
}

func modelsToOrders(models []OrderModel) ([]*order.Order, error) {
	out := make([]*order.Order, 0, len(models))
	for i := range models {
		o, err := ModelToOrder(&models[i])
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}
