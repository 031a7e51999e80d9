package model

import "time"

// Product represents a catalogue item sold through the totem kiosks.
type Product struct {
	ID        int64     `json:"id" db:"id"`
	SKU       string    `json:"sku" db:"sku"`
	Name      string    `json:"name" db:"name"`
	Price     float64   `json:"price" db:"price"`
	Stock     int       `json:"stock" db:"stock"`
	Category  string    `json:"category" db:"category"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// CreateProductInput carries a validated payload for creating a product.
type CreateProductInput struct {
	SKU      string
	Name     string
	Price    float64
	Stock    int
	Category string
}

// UpdateProductInput carries a validated partial payload for updating a
// product. Nil fields are left untouched.
type UpdateProductInput struct {
	SKU      *string
	Name     *string
	Price    *float64
	Stock    *int
	Category *string
}

// ProductFilters holds the optional, combinable listing filters.
type ProductFilters struct {
	Category string
	InStock  bool
	Search   string
}
