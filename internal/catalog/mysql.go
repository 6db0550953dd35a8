package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"github.com/qoozee/qoozee/internal/config"
)

// MySQLSource reads the catalog from a products table. It is a read-only
// alternative to the CSV file; shopper state never touches the database.
type MySQLSource struct {
	db *sql.DB
}

func NewMySQLSource(cfg *config.MySQLConfig) (*MySQLSource, error) {
	db, err := sql.Open("mysql", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	maxConns := cfg.MaxOpenConns
	if maxConns <= 0 {
		maxConns = 10
	}
	db.SetMaxOpenConns(maxConns)
	db.SetMaxIdleConns(maxConns / 2)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &MySQLSource{db: db}, nil
}

func (s *MySQLSource) Name() string { return "mysql" }

// Load fetches all products. Values are scanned as text, matching the CSV
// source; coercion stays at point of use.
func (s *MySQLSource) Load(ctx context.Context) (Result, error) {
	query := `
		SELECT product_id, product_name, price, rating, category
		FROM products
		ORDER BY product_id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return Result{}, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Rating, &p.Category); err != nil {
			return Result{}, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return Result{}, fmt.Errorf("failed to read products: %w", err)
	}

	log.Debug().Int("count", len(products)).Msg("loaded products from mysql")
	return Result{Products: products}, nil
}

// HealthCheck verifies the database connection is alive.
func (s *MySQLSource) HealthCheck() error {
	return s.db.Ping()
}

// Close closes the underlying connection pool.
func (s *MySQLSource) Close() error {
	return s.db.Close()
}

// Compile-time interface check
var _ Source = (*MySQLSource)(nil)
