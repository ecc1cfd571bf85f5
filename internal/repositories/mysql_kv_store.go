package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// mysqlKVStore implements KVStore on top of kv_entries table
type mysqlKVStore struct {
	db *sql.DB
}

// NewMySQLKVStore creates a new MySQL key-value store
func NewMySQLKVStore(db *sql.DB) *mysqlKVStore {
	return &mysqlKVStore{
		db: db,
	}
}

// Get retrieves a value by key
func (s *mysqlKVStore) Get(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT v FROM kv_entries WHERE k = ?`

	var value []byte
	err := s.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("failed to get kv entry: %w", err)
	}

	return value, nil
}

// Set inserts or replaces a value
func (s *mysqlKVStore) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO kv_entries (k, v)
		VALUES (?, ?)
		ON DUPLICATE KEY UPDATE v = VALUES(v)
	`

	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to set kv entry: %w", err)
	}

	return nil
}

// Delete removes a key
func (s *mysqlKVStore) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM kv_entries WHERE k = ?`

	if _, err := s.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("failed to delete kv entry: %w", err)
	}

	// Deleting an absent key is not an error
	return nil
}
