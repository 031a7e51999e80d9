package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Loader loads catalogue fixtures from a source: a file path for the local
// loader, an object key for the S3 loader.
type Loader interface {
	Load(ctx context.Context, source string) ([]Fixture, error)
}

// fileLoader implements Loader for local JSON fixture files.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based fixture loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "fixture-loader").Logger(),
	}
}

// Load reads a JSON fixture file containing an array of seed products.
func (l *fileLoader) Load(ctx context.Context, path string) ([]Fixture, error) {
	l.logger.Info().Str("file", path).Msg("loading fixture file")

	file, err := os.Open(path)
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to open fixture file")
		return nil, fmt.Errorf("failed to open fixture file %s: %w", path, err)
	}
	defer file.Close()

	fixtures, err := decodeFixtures(file)
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to decode fixture file")
		return nil, fmt.Errorf("failed to decode fixture file %s: %w", path, err)
	}

	l.logger.Info().
		Str("file", path).
		Int("fixtures_loaded", len(fixtures)).
		Msg("fixture file loaded successfully")

	return fixtures, nil
}

// decodeFixtures decodes a JSON array of fixtures.
func decodeFixtures(r io.Reader) ([]Fixture, error) {
	var fixtures []Fixture
	if err := json.NewDecoder(r).Decode(&fixtures); err != nil {
		return nil, err
	}
	return fixtures, nil
}
