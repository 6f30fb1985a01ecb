// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/pricepoll/cliparse"
)

// Open connects to the database named by the config. The sqlite driver is
// the development and test default; postgres is the production driver.
func Open(cfg cliparse.Config) (*sql.DB, error) {
	driver, err := driverName(cfg.DatabaseType)
	if err != nil {
		return nil, err
	}

	conn, err := sql.Open(driver, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if driver == "sqlite" {
		// SQLite allows one writer at a time; a single pooled connection
		// avoids SQLITE_BUSY and keeps in-memory databases on one handle.
		conn.SetMaxOpenConns(1)
	}

	return conn, nil
}

func driverName(databaseType string) (string, error) {
	switch databaseType {
	case "postgres":
		return "postgres", nil
	case "sqlite":
		return "sqlite", nil
	default:
		return "", fmt.Errorf("unsupported database type %q", databaseType)
	}
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// created_at holds unix nanoseconds so ordering and scanning behave the same
// under both drivers.
const schema = `
-- Survey responses
CREATE TABLE IF NOT EXISTS response (
    id TEXT PRIMARY KEY,
    created_at BIGINT NOT NULL,
    initial_range TEXT NOT NULL,
    specific_price TEXT,
    best_feature TEXT,
    improvement_note TEXT,
    agent_email TEXT,
    session_token TEXT
);

CREATE INDEX IF NOT EXISTS idx_response_created_at ON response(created_at);
CREATE INDEX IF NOT EXISTS idx_response_agent_email ON response(agent_email);
CREATE INDEX IF NOT EXISTS idx_response_session_token ON response(session_token);
`
