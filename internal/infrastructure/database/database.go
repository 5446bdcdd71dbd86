package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/voicedesk/core/internal/infrastructure/config"
)

// DB wraps sqlx.DB and provides additional functionality
type DB struct {
	DB     *sqlx.DB
	config config.DatabaseConfig
}

// driverName maps the config driver to the registered sql driver.
func driverName(driver string) string {
	if driver == "sqlite" {
		return "sqlite3"
	}
	return driver
}

// New creates a new database connection
func New(cfg config.DatabaseConfig) (*DB, error) {
	db, err := sqlx.Open(driverName(cfg.Driver), cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	if db.DB != nil {
		return db.DB.Close()
	}
	return nil
}

// Ping pings the database
func (db *DB) Ping() error {
	return db.DB.Ping()
}

// HealthCheck checks database health
func (db *DB) HealthCheck() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.DB.PingContext(ctx); err != nil {
		return fmt.Errorf("database health check failed: %w", err)
	}

	return nil
}

// GetConnectionInfo returns connection pool statistics
func (db *DB) GetConnectionInfo() map[string]interface{} {
	stats := db.DB.Stats()

	return map[string]interface{}{
		"max_open_connections": stats.MaxOpenConnections,
		"open_connections":     stats.OpenConnections,
		"in_use":               stats.InUse,
		"idle":                 stats.Idle,
		"wait_count":           stats.WaitCount,
		"wait_duration":        stats.WaitDuration.String(),
	}
}

// EnsureSchema creates the record tables when they are absent, so a fresh
// process can serve requests without a provisioning step.
func (db *DB) EnsureSchema(ctx context.Context) error {
	for _, ddl := range schemaStatements(db.config.Driver) {
		if _, err := db.DB.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// schemaStatements returns the dialect-appropriate DDL. The three tables are
// independent; no foreign keys exist between them.
func schemaStatements(driver string) []string {
	idColumn := "BIGSERIAL PRIMARY KEY"
	if driver == "sqlite" {
		idColumn = "INTEGER PRIMARY KEY AUTOINCREMENT"
	}

	return []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS todos (
			id %s,
			title TEXT NOT NULL,
			description TEXT,
			completed BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMP NOT NULL
		)`, idColumn),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS reminders (
			id %s,
			reminder_text TEXT NOT NULL,
			importance TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL
		)`, idColumn),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS calendar_events (
			id %s,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			event_from TIMESTAMP NOT NULL,
			event_to TIMESTAMP NOT NULL,
			created_at TIMESTAMP NOT NULL
		)`, idColumn),
	}
}
