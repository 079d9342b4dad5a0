// internal/db/db.go
package db

import (
    "database/sql"
    "fmt"

    _ "github.com/lib/pq"

    "github.com/twinlabs/digitaltwin-backend/internal/config"
)

// Connect opens and pings a Postgres connection built from env vars.
func Connect() (*sql.DB, error) {
    dsn := fmt.Sprintf(
        "postgres://%s:%s@%s:%s/%s?sslmode=disable",
        config.Get("DB_USER", "postgres"),
        config.Get("DB_PASSWORD", ""),
        config.Get("DB_HOST", "localhost"),
        config.Get("DB_PORT", "5432"),
        config.Get("DB_NAME", "digitaltwin"),
    )

    conn, err := sql.Open("postgres", dsn)
    if err != nil {
        return nil, fmt.Errorf("failed to open DB: %w", err)
    }
    if err := conn.Ping(); err != nil {
        return nil, fmt.Errorf("failed to ping DB: %w", err)
    }
    return conn, nil
}
