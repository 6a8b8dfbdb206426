package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Fixed storage keys. The mv_ prefix matches the original deployment's
// storage layout so a dump of one maps onto the other.
const (
	KeyUsers        = "mv_users"
	KeyCurrentUser  = "mv_current_user"
	KeyPlaylists    = "mv_playlists"
	KeyReviews      = "mv_reviews"
	KeySOTD         = "mv_sotd"
	KeySOTDHistory  = "mv_sotd_history"
	KeySpotifyToken = "spotify_access_token"
	KeyTokenExpiry  = "spotify_token_expiry"
)

// Store is a key-value shim over a SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the store at the given path and applies pending
// migrations. The path can be ":memory:" for an in-memory store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := RunMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Store{db: db}, nil
}

// Configure sets connection pool limits on the underlying database.
func (s *Store) Configure(maxOpenConns, maxIdleConns int) {
	s.db.SetMaxOpenConns(maxOpenConns)
	s.db.SetMaxIdleConns(maxIdleConns)
}

// Close releases the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB exposes the underlying connection for migration tooling.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Get returns the raw value stored under key. The second return value is
// false when the key is absent.
func (s *Store) Get(key string) ([]byte, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM store WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return []byte(value), true, nil
}

// Put stores value under key, replacing any previous value.
func (s *Store) Put(key string, value []byte) error {
	query := `
		INSERT INTO store (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`
	if _, err := s.db.Exec(query, key, string(value)); err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	return nil
}

// Delete removes key from the store. Deleting an absent key is not an error.
func (s *Store) Delete(key string) error {
	if _, err := s.db.Exec("DELETE FROM store WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}

// ReadJSON deserializes the value under key into out. The boolean reports
// whether the key was present.
func (s *Store) ReadJSON(key string, out any) (bool, error) {
	raw, ok, err := s.Get(key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return true, fmt.Errorf("failed to decode key %s: %w", key, err)
	}
	return true, nil
}

// WriteJSON serializes v and stores it under key.
func (s *Store) WriteJSON(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode key %s: %w", key, err)
	}
	return s.Put(key, raw)
}
