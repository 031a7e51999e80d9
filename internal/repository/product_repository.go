package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"totem-api/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const productColumns = "id, sku, name, price, stock, category, created_at, updated_at"

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

// FindAll retrieves products matching the given filters, ordered by name.
// Filters combine conjunctively: category is an exact match, inStock keeps
// rows with stock > 0, search is a case-insensitive substring match against
// name or SKU.
func (r *productRepository) FindAll(ctx context.Context, filters model.ProductFilters) ([]model.Product, error) {
	query := "SELECT " + productColumns + " FROM products"

	var conditions []string
	var args []any

	if filters.Category != "" {
		args = append(args, filters.Category)
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}

	if filters.InStock {
		conditions = append(conditions, "stock > 0")
	}

	if filters.Search != "" {
		args = append(args, "%"+filters.Search+"%")
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR sku ILIKE $%d)", len(args), len(args)))
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY name ASC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, *p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// FindByID retrieves a single product by its ID.
func (r *productRepository) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	query := "SELECT " + productColumns + " FROM products WHERE id = $1"

	p, err := scanProduct(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("product_id", id).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	return p, nil
}

// FindBySKU retrieves a single product by its SKU.
func (r *productRepository) FindBySKU(ctx context.Context, sku string) (*model.Product, error) {
	query := "SELECT " + productColumns + " FROM products WHERE sku = $1"

	p, err := scanProduct(r.pool.QueryRow(ctx, query, sku))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("sku", sku).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("sku", sku).Msg("failed to query product by SKU")
		return nil, fmt.Errorf("failed to query product by SKU: %w", err)
	}

	return p, nil
}

// Insert persists a new product and returns the stored row.
func (r *productRepository) Insert(ctx context.Context, input model.CreateProductInput) (*model.Product, error) {
	query := `
		INSERT INTO products (sku, name, price, stock, category)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + productColumns

	p, err := scanProduct(r.pool.QueryRow(ctx, query,
		input.SKU, input.Name, input.Price, input.Stock, input.Category))
	if err != nil {
		if isUniqueViolation(err) {
			r.logger.Warn().Str("sku", input.SKU).Msg("duplicate SKU on insert")
			return nil, ErrDuplicateSKU
		}
		r.logger.Error().Err(err).Str("sku", input.SKU).Msg("failed to insert product")
		return nil, fmt.Errorf("failed to insert product: %w", err)
	}

	return p, nil
}

// UpdateFields applies the non-nil fields of input to the row with the given
// id and returns the updated row, or (nil, nil) when the row no longer exists.
func (r *productRepository) UpdateFields(ctx context.Context, id int64, input model.UpdateProductInput) (*model.Product, error) {
	set := []string{}
	var args []any

	appendSet := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if input.SKU != nil {
		appendSet("sku", *input.SKU)
	}
	if input.Name != nil {
		appendSet("name", *input.Name)
	}
	if input.Price != nil {
		appendSet("price", *input.Price)
	}
	if input.Stock != nil {
		appendSet("stock", *input.Stock)
	}
	if input.Category != nil {
		appendSet("category", *input.Category)
	}

	// updated_at is re-stamped on every mutation, even a field-less one.
	set = append(set, "updated_at = now()")

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE products SET %s WHERE id = $%d RETURNING %s",
		strings.Join(set, ", "), len(args), productColumns,
	)

	p, err := scanProduct(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("product_id", id).Msg("product not found on update")
			return nil, nil
		}
		if isUniqueViolation(err) {
			r.logger.Warn().Int64("product_id", id).Msg("duplicate SKU on update")
			return nil, ErrDuplicateSKU
		}
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to update product")
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return p, nil
}

// DeleteByID removes the row with the given id.
func (r *productRepository) DeleteByID(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to delete product")
		return false, fmt.Errorf("failed to delete product: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// scanProduct scans a product row from a query result.
func scanProduct(row pgx.Row) (*model.Product, error) {
	var p model.Product
	err := row.Scan(&p.ID, &p.SKU, &p.Name, &p.Price, &p.Stock, &p.Category, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// isUniqueViolation reports whether err is a PostgreSQL unique-constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
