package marketdata

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// PostgresPriceFeed reads the latest dirty price per ISIN from a
// bond_prices table (isin, price_date, px_dirty).
type PostgresPriceFeed struct {
	db *sql.DB
}

// Open connects to Postgres and verifies the connection.
//
// dsn format: "host=... port=5432 user=... password=... dbname=... sslmode=disable"
func Open(dsn string) (*PostgresPriceFeed, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("Open: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("Open: ping: %w", err)
	}
	return &PostgresPriceFeed{db: db}, nil
}

// NewPostgresPriceFeed wraps an existing connection pool.
func NewPostgresPriceFeed(db *sql.DB) *PostgresPriceFeed {
	return &PostgresPriceFeed{db: db}
}

// PriceOn returns the most recent dirty price for the given ISIN. Missing
// rows report absence rather than an error; query failures also report
// absence, since PriceFeed models an observation that may simply not exist.
func (f *PostgresPriceFeed) PriceOn(isin string) (float64, bool) {
	const query = `
		SELECT px_dirty
		FROM bond_prices
		WHERE isin = $1
		ORDER BY price_date DESC
		LIMIT 1
	`

	var price float64
	err := f.db.QueryRow(query, isin).Scan(&price)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false
	}
	if err != nil {
		return 0, false
	}
	return price, true
}

func (f *PostgresPriceFeed) Close() error {
	return f.db.Close()
}
