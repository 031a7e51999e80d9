package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// The unique constraint on sku is the authoritative uniqueness guard; the
// service-level existence check is best-effort only.
const productsSchema = `
CREATE TABLE IF NOT EXISTS products (
	id         BIGSERIAL PRIMARY KEY,
	sku        VARCHAR(50) NOT NULL UNIQUE,
	name       VARCHAR(255) NOT NULL,
	price      NUMERIC(10,2) NOT NULL CHECK (price > 0),
	stock      INTEGER NOT NULL DEFAULT 0 CHECK (stock >= 0),
	category   VARCHAR(100) NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// EnsureSchema creates the products table if it does not exist yet.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool, logger zerolog.Logger) error {
	if _, err := pool.Exec(ctx, productsSchema); err != nil {
		logger.Error().Err(err).Msg("failed to create products table")
		return fmt.Errorf("failed to create products table: %w", err)
	}

	logger.Info().Msg("database schema synchronised")
	return nil
}
