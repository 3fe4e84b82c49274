package gorm

import (
	"context"
	"errors"

	"github.com/healthyplate/v1/internal/domain/supplier"
	"github.com/healthyplate/v1/internal/ports/outbound"
	"gorm.io/gorm"
)

// SupplierRepository implements the vendor store and the reorder link table
// using GORM.
type SupplierRepository struct {
	db *gorm.DB
}

// NewSupplierRepository creates a new GORM-backed supplier repository.
func NewSupplierRepository(db *gorm.DB) outbound.SupplierRepository {
	return &SupplierRepository{db: db}
}

// FindByID finds a supplier by ID.
func (r *SupplierRepository) FindByID(ctx context.Context, id string) (*supplier.Supplier, error) {
	var model SupplierModel
	result := r.db.WithContext(ctx).First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, supplier.ErrNotFound
		}
		return nil, result.Error
	}
	return ModelToSupplier(&model)
}

// FindByName finds a supplier by display name.
func (r *SupplierRepository) FindByName(ctx context.Context, name string) (*supplier.Supplier, error) {
	var model SupplierModel
	result := r.db.WithContext(ctx).First(&model, "name = ?", name)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, supplier.ErrNotFound
		}
		return nil, result.Error
	}
	return ModelToSupplier(&model)
}

// All returns every supplier ordered by ID.
func (r *SupplierRepository) All(ctx context.Context) ([]*supplier.Supplier, error) {
	var models []SupplierModel
	result := r.db.WithContext(ctx).Order("id").Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	out := make([]*supplier.Supplier, 0, len(models))
	for i := range models {
		s, err := ModelToSupplier(&models[i])
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// Save inserts or replaces a supplier keyed by ID.
func (r *SupplierRepository) Save(ctx context.Context, s *supplier.Supplier) error {
	if s == nil {
		return supplier.ErrBlankIdentifier
	}
	return r.db.WithContext(ctx).Save(SupplierToModel(s)).Error
}

// LinkFor returns the reorder link for the ingredient, if any.
func (r *SupplierRepository) LinkFor(ctx context.Context, ingredientName string) (supplier.Link, error) {
	var model SupplierLinkModel
	result := r.db.WithContext(ctx).First(&model, "ingredient_name = ?", ingredientName)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return supplier.Link{}, supplier.ErrNoLink
		}
		return supplier.Link{}, result.Error
	}
	return ModelToLink(&model), nil
}

// SaveLink inserts or replaces a reorder link keyed by ingredient name.
func (r *SupplierRepository) SaveLink(ctx context.Context, link supplier.Link) error {
	return r.db.WithContext(ctx).Save(LinkToModel(link)).Error
}
