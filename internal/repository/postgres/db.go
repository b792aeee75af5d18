// Package postgres implements the record.Repository contract against
// PostgreSQL using database/sql and the lib/pq driver.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// Open connects to Postgres and verifies the connection with a ping. The
// caller owns the returned handle and decides whether a failure is fatal;
// the server runs degraded without a store.
func Open(ctx context.Context, url string) (*sql.DB, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}
