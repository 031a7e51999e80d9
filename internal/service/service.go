package service

import (
	"context"

	"totem-api/internal/model"
)

// ProductService defines operations for catalogue management. Operational
// failures are reported as *model.Error values; anything else is an internal
// failure.
type ProductService interface {
	// GetAll retrieves products matching the optional filters, ordered by
	// name ascending. An empty result is a valid empty list.
	GetAll(ctx context.Context, filters model.ProductFilters) ([]model.Product, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id int64) (*model.Product, error)

	// GetBySKU retrieves a single product by SKU (exact match).
	GetBySKU(ctx context.Context, sku string) (*model.Product, error)

	// Create persists a new product, rejecting duplicate SKUs.
	Create(ctx context.Context, input model.CreateProductInput) (*model.Product, error)

	// Update merges the supplied fields into an existing product.
	Update(ctx context.Context, id int64, input model.UpdateProductInput) (*model.Product, error)

	// Delete removes a product by ID.
	Delete(ctx context.Context, id int64) error

	// IsAvailable reports whether a product with the given SKU exists and has
	// at least the requested quantity in stock. An unknown SKU is not an
	// error: it reports false.
	IsAvailable(ctx context.Context, sku string, quantity int) (bool, error)
}
