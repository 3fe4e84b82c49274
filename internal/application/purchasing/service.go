// Package purchasing provides the application layer for supplier pricing
// and purchase-order generation.
package purchasing

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/healthyplate/v1/internal/domain/supplier"
	"github.com/healthyplate/v1/internal/ports/inbound"
	"github.com/healthyplate/v1/internal/ports/outbound"
	"go.uber.org/zap"
)

// Purchase-order ID prefixes distinguish automatic from manual orders.
const (
	autoOrderPrefix   = "AUTO-PO-"
	manualOrderPrefix = "MANUAL-PO-"
)

// PurchasingService implements supplier pricing and restocking orders.
type PurchasingService struct {
	ingredients outbound.IngredientRepository
	suppliers   outbound.SupplierRepository
	logger      *zap.Logger
}

// NewPurchasingService creates a new purchasing service.
func NewPurchasingService(
	ingredients outbound.IngredientRepository,
	suppliers outbound.SupplierRepository,
	logger *zap.Logger,
) inbound.PurchasingService {
	return &PurchasingService{
		ingredients: ingredients,
		suppliers:   suppliers,
		logger:      logger.Named("purchasing-service"),
	}
}

// RealTimePrice returns the supplier's current quoted price for the
// ingredient. An unquoted ingredient yields supplier.ErrNoQuotedPrice.
func (s *PurchasingService) RealTimePrice(ctx context.Context, ingredientName, supplierName string) (float64, error) {
	sup, err := s.suppliers.FindByName(ctx, supplierName)
	if err != nil {
		return 0, err
	}
	price, ok := sup.PriceFor(ingredientName)
	if !ok {
		return 0, supplier.ErrNoQuotedPrice
	}
	return price, nil
}

// GenerateManualPurchaseOrder raises a purchase order on a manager's
// explicit request, priced at the supplier's current quote.
func (s *PurchasingService) GenerateManualPurchaseOrder(ctx context.Context, managerName, ingredientName string, quantity int, supplierName string) (supplier.PurchaseOrder, error) {
	ing, err := s.ingredients.FindByName(ctx, ingredientName)
	if err != nil {
		return supplier.PurchaseOrder{}, err
	}
	price, err := s.RealTimePrice(ctx, ing.Name(), supplierName)
	if err != nil {
		return supplier.PurchaseOrder{}, err
	}

	po := supplier.NewPurchaseOrder(
		newOrderID(manualOrderPrefix),
		ing.Name(),
		supplierName,
		quantity,
		ing.Unit(),
		price,
		false,
	)
	s.logger.Info("generated manual purchase order",
		zap.String("po_id", po.ID),
		zap.String("manager", managerName),
		zap.String("ingredient", po.IngredientName),
		zap.Int("quantity", po.Quantity),
		zap.Float64("total_cost", po.TotalCost),
	)
	return po, nil
}

// CheckAndGenerateAutoOrders scans the catalog for ingredients below their
// reorder level and raises a purchase order with the linked supplier for
// each, returning one notification line per generated order. Ingredients
// without a supplier link or a quoted price are skipped.
func (s *PurchasingService) CheckAndGenerateAutoOrders(ctx context.Context) ([]string, error) {
	all, err := s.ingredients.All(ctx)
	if err != nil {
		return nil, err
	}

	notifications := []string{}
	for _, ing := range all {
		if !ing.NeedsRestocking() {
			continue
		}

		link, err := s.suppliers.LinkFor(ctx, ing.Name())
		if errors.Is(err, supplier.ErrNoLink) {
			s.logger.Warn("low stock but no supplier link", zap.String("ingredient", ing.Name()))
			continue
		}
		if err != nil {
			return nil, err
		}

		sup, err := s.suppliers.FindByID(ctx, link.SupplierID)
		if errors.Is(err, supplier.ErrNotFound) {
			s.logger.Warn("supplier link points at unknown supplier",
				zap.String("ingredient", ing.Name()),
				zap.String("supplier_id", link.SupplierID),
			)
			continue
		}
		if err != nil {
			return nil, err
		}

		price, ok := sup.PriceFor(ing.Name())
		if !ok {
			s.logger.Warn("supplier has no quote for linked ingredient",
				zap.String("ingredient", ing.Name()),
				zap.String("supplier", sup.Name()),
			)
			continue
		}

		po := supplier.NewPurchaseOrder(
			newOrderID(autoOrderPrefix),
			ing.Name(),
			sup.Name(),
			link.DefaultReorderQty,
			ing.Unit(),
			price,
			true,
		)
		notifications = append(notifications, fmt.Sprintf(
			"Auto purchase order %s generated: %d %s of %s from %s for $%.2f.",
			po.ID, po.Quantity, po.Unit, po.IngredientName, po.SupplierName, po.TotalCost,
		))
		s.logger.Info("generated automatic purchase order",
			zap.String("po_id", po.ID),
			zap.String("ingredient", po.IngredientName),
			zap.String("supplier", po.SupplierName),
			zap.Int("quantity", po.Quantity),
		)
	}
	return notifications, nil
}

// newOrderID builds a prefixed purchase-order ID from a short random UUID
// fragment.
func newOrderID(prefix string) string {
	fragment := strings.ToUpper(uuid.NewString()[:8])
	return prefix + fragment
}
