// Command seed resets the products table and fills it with catalogue
// fixtures: the built-in beverage set, a local JSON file, or an S3 object.
package main

import (
	"context"
	"fmt"
	"os"

	"totem-api/internal/config"
	"totem-api/internal/database"
	"totem-api/internal/model"
	"totem-api/internal/repository"
	"totem-api/internal/seed"
	"totem-api/internal/validation"

	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("seeding product catalogue")

	ctx := context.Background()

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	if err := database.EnsureSchema(ctx, pool, logger); err != nil {
		return fmt.Errorf("failed to synchronise schema: %w", err)
	}

	fixtures, err := loadFixtures(ctx, cfg.Seed, logger)
	if err != nil {
		return err
	}

	inputs, err := validateFixtures(fixtures)
	if err != nil {
		return err
	}

	// Start from a clean table so seeding is repeatable.
	if _, err := pool.Exec(ctx, "TRUNCATE products RESTART IDENTITY"); err != nil {
		return fmt.Errorf("failed to truncate products table: %w", err)
	}

	repo := repository.NewProductRepository(pool, logger)
	for _, input := range inputs {
		if _, err := repo.Insert(ctx, input); err != nil {
			return fmt.Errorf("failed to insert fixture %s: %w", input.SKU, err)
		}
	}

	logger.Info().Int("count", len(inputs)).Msg("catalogue seeded successfully")

	return nil
}

// loadFixtures picks the fixture source: built-in defaults when none is
// configured, otherwise a local file or an S3 object. An S3 initialisation
// failure falls back to the local file system.
func loadFixtures(ctx context.Context, cfg config.SeedConfig, logger zerolog.Logger) ([]seed.Fixture, error) {
	if cfg.Source == "" {
		logger.Info().Msg("no fixture source configured, using built-in fixtures")
		return seed.DefaultFixtures(), nil
	}

	var loader seed.Loader
	if cfg.S3Enabled {
		s3Loader, err := seed.NewS3Loader(ctx, cfg.S3Bucket, cfg.S3Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 loader, falling back to local file system")
			loader = seed.NewFileLoader(logger)
		} else {
			loader = s3Loader
		}
	} else {
		loader = seed.NewFileLoader(logger)
	}

	return loader.Load(ctx, cfg.Source)
}

// validateFixtures runs every fixture through the create validation schema so
// seeded rows obey the same constraints as API writes.
func validateFixtures(fixtures []seed.Fixture) ([]model.CreateProductInput, error) {
	inputs := make([]model.CreateProductInput, 0, len(fixtures))
	for _, f := range fixtures {
		payload := validation.ProductPayload{
			SKU:      &f.SKU,
			Name:     &f.Name,
			Price:    &f.Price,
			Stock:    &f.Stock,
			Category: &f.Category,
		}
		input, violations := validation.ValidateCreate(payload)
		if violations != nil {
			return nil, fmt.Errorf("invalid fixture %q: %s: %s", f.SKU, violations[0].Field, violations[0].Message)
		}
		inputs = append(inputs, input)
	}
	return inputs, nil
}
