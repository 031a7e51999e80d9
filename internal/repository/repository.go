package repository

import (
	"context"
	"errors"

	"totem-api/internal/model"
)

// ErrDuplicateSKU is returned when an insert or update hits the unique
// constraint on the sku column.
var ErrDuplicateSKU = errors.New("duplicate sku")

// ProductRepository defines the interface for product data access operations.
// Lookup methods return (nil, nil) when no row matches.
type ProductRepository interface {
	// FindAll retrieves products matching the given filters, ordered by name.
	FindAll(ctx context.Context, filters model.ProductFilters) ([]model.Product, error)

	// FindByID retrieves a single product by its ID.
	FindByID(ctx context.Context, id int64) (*model.Product, error)

	// FindBySKU retrieves a single product by its SKU (case-sensitive exact match).
	FindBySKU(ctx context.Context, sku string) (*model.Product, error)

	// Insert persists a new product and returns the stored row including the
	// assigned id and timestamps.
	Insert(ctx context.Context, input model.CreateProductInput) (*model.Product, error)

	// UpdateFields applies the non-nil fields of input to the row with the
	// given id, re-stamps updated_at, and returns the updated row.
	UpdateFields(ctx context.Context, id int64, input model.UpdateProductInput) (*model.Product, error)

	// DeleteByID removes the row with the given id and reports whether a row
	// was deleted.
	DeleteByID(ctx context.Context, id int64) (bool, error)
}
