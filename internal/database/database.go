package database

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// DB wraps the database connection
type DB struct {
	conn *sql.DB
}

// New creates a new database connection
func New(dsn string) (*DB, error) {
	conn, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db := &DB{conn: conn}

	if err := db.createTables(); err != nil {
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return db, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// createTables creates the necessary tables
func (db *DB) createTables() error {
	_, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS weekly_activity (
			user_id TEXT NOT NULL,
			week INTEGER NOT NULL,
			year INTEGER NOT NULL,
			message_count BIGINT NOT NULL DEFAULT 0,
			voice_seconds DOUBLE PRECISION NOT NULL DEFAULT 0,
			PRIMARY KEY (user_id, week, year)
		)`)
	if err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}

	return nil
}
