package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

// SQLBackend keeps blobs in a single kv table. Local "file:" URLs go through
// sqlite3; anything else (libsql://, https://, ws://) through the libsql
// client.
type SQLBackend struct {
	DB *sql.DB
}

func driverFor(connectionString string) string {
	if strings.HasPrefix(connectionString, "file:") {
		return "sqlite3"
	}
	return "libsql"
}

func NewSQLBackend(connectionString string) (*SQLBackend, error) {
	if connectionString == "" {
		return nil, errors.New("sql store needs a connection string")
	}

	db, err := sql.Open(driverFor(connectionString), connectionString)
	if err != nil {
		return nil, fmt.Errorf("Failed to open db: %w", err)
	}

	if err := initializeDB(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("Failed to initialize database: %w", err)
	}

	return &SQLBackend{DB: db}, nil
}

func initializeDB(db *sql.DB) error {
	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS kv (
            key TEXT PRIMARY KEY,
            value TEXT NOT NULL,
            updated_at TEXT NOT NULL
        );
    `)
	return err
}

func (s *SQLBackend) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := s.DB.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("Failed to query key %s: %w", key, err)
	}
	return []byte(value), nil
}

func (s *SQLBackend) Put(ctx context.Context, key string, value []byte) error {
	_, err := s.DB.ExecContext(ctx,
		"INSERT OR REPLACE INTO kv (key, value, updated_at) VALUES (?, ?, ?)",
		key, string(value), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("Failed to store key %s: %w", key, err)
	}
	return nil
}

func (s *SQLBackend) Close() error {
	return s.DB.Close()
}
