package service

import (
	"context"
	"errors"
	"fmt"

	"totem-api/internal/model"
	"totem-api/internal/repository"

	"github.com/rs/zerolog"
)

// Conflict messages for SKU uniqueness violations.
const (
	msgSKUExists      = "Produto com este SKU já existe"
	msgOtherSKUExists = "Já existe outro produto com este SKU"
)

// productService implements ProductService.
type productService struct {
	repo   repository.ProductRepository
	logger zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(repo repository.ProductRepository, logger zerolog.Logger) ProductService {
	return &productService{
		repo:   repo,
		logger: logger.With().Str("service", "product").Logger(),
	}
}

// GetAll retrieves products matching the optional filters.
func (s *productService) GetAll(ctx context.Context, filters model.ProductFilters) ([]model.Product, error) {
	products, err := s.repo.FindAll(ctx, filters)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get all products")
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	s.logger.Debug().
		Int("count", len(products)).
		Str("category", filters.Category).
		Bool("in_stock", filters.InStock).
		Str("search", filters.Search).
		Msg("retrieved products")

	return products, nil
}

// GetByID retrieves a single product by ID.
func (s *productService) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("product_id", id).Msg("failed to get product by ID")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if product == nil {
		return nil, model.NewNotFound("Produto")
	}

	return product, nil
}

// GetBySKU retrieves a single product by SKU.
func (s *productService) GetBySKU(ctx context.Context, sku string) (*model.Product, error) {
	product, err := s.repo.FindBySKU(ctx, sku)
	if err != nil {
		s.logger.Error().Err(err).Str("sku", sku).Msg("failed to get product by SKU")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if product == nil {
		return nil, model.NewNotFound("Produto")
	}

	return product, nil
}

// Create persists a new product. The existence check is best-effort; the
// unique index on sku is the authoritative guard, and a constraint violation
// during insert maps to the same conflict.
func (s *productService) Create(ctx context.Context, input model.CreateProductInput) (*model.Product, error) {
	existing, err := s.repo.FindBySKU(ctx, input.SKU)
	if err != nil {
		s.logger.Error().Err(err).Str("sku", input.SKU).Msg("failed to check SKU uniqueness")
		return nil, fmt.Errorf("failed to check SKU uniqueness: %w", err)
	}
	if existing != nil {
		return nil, model.NewConflict(msgSKUExists)
	}

	product, err := s.repo.Insert(ctx, input)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateSKU) {
			return nil, model.NewConflict(msgSKUExists)
		}
		s.logger.Error().Err(err).Str("sku", input.SKU).Msg("failed to create product")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info().
		Int64("product_id", product.ID).
		Str("sku", product.SKU).
		Msg("product created")

	return product, nil
}

// Update merges the supplied fields into an existing product. Changing the
// SKU re-validates its uniqueness against other rows.
func (s *productService) Update(ctx context.Context, id int64, input model.UpdateProductInput) (*model.Product, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.SKU != nil && *input.SKU != current.SKU {
		existing, err := s.repo.FindBySKU(ctx, *input.SKU)
		if err != nil {
			s.logger.Error().Err(err).Str("sku", *input.SKU).Msg("failed to check SKU uniqueness")
			return nil, fmt.Errorf("failed to check SKU uniqueness: %w", err)
		}
		if existing != nil {
			return nil, model.NewConflict(msgOtherSKUExists)
		}
	}

	product, err := s.repo.UpdateFields(ctx, id, input)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateSKU) {
			return nil, model.NewConflict(msgOtherSKUExists)
		}
		s.logger.Error().Err(err).Int64("product_id", id).Msg("failed to update product")
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	// The row vanished between the lookup and the update.
	if product == nil {
		return nil, model.NewNotFound("Produto")
	}

	s.logger.Info().Int64("product_id", product.ID).Msg("product updated")

	return product, nil
}

// Delete removes a product by ID.
func (s *productService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("product_id", id).Msg("failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}

	if !deleted {
		return model.NewNotFound("Produto")
	}

	s.logger.Info().Int64("product_id", id).Msg("product deleted")

	return nil
}

// IsAvailable reports whether a product has enough stock for the requested
// quantity.
func (s *productService) IsAvailable(ctx context.Context, sku string, quantity int) (bool, error) {
	product, err := s.repo.FindBySKU(ctx, sku)
	if err != nil {
		s.logger.Error().Err(err).Str("sku", sku).Msg("failed to check availability")
		return false, fmt.Errorf("failed to check availability: %w", err)
	}

	if product == nil {
		return false, nil
	}

	return product.Stock >= quantity, nil
}
