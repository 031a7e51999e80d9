package integration

import (
	"context"
	"testing"
	"time"

	"totem-api/internal/database"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container and connection pool.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		t.Fatalf("failed to parse connection string: %v", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	logger := zerolog.Nop()
	if err := database.EnsureSchema(ctx, pool, logger); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// SeedProducts inserts test product data into the database.
func SeedProducts(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	products := []struct {
		sku      string
		name     string
		price    float64
		stock    int
		category string
	}{
		{"BEB-0001", "Coca-Cola 350ml", 5.50, 25, "refrigerante"},
		{"BEB-0002", "Guaraná Antarctica 350ml", 5.00, 0, "refrigerante"},
		{"SUC-0001", "Suco de Laranja 500ml", 8.50, 12, "suco"},
		{"SUC-0002", "Suco de Uva 500ml", 9.00, 7, "suco"},
		{"AGU-0001", "Água Mineral 500ml", 3.00, 40, "agua"},
	}

	for _, p := range products {
		_, err := pool.Exec(ctx,
			"INSERT INTO products (sku, name, price, stock, category) VALUES ($1, $2, $3, $4, $5)",
			p.sku, p.name, p.price, p.stock, p.category,
		)
		if err != nil {
			t.Fatalf("failed to seed product %s: %v", p.sku, err)
		}
	}
}

// CleanupDB removes all product rows and resets the id sequence.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	if _, err := pool.Exec(ctx, "TRUNCATE products RESTART IDENTITY"); err != nil {
		t.Logf("failed to clean products table: %v", err)
	}
}
