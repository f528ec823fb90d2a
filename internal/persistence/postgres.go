package persistence

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "github.com/lib/pq" // PostgreSQL driver
	"github.com/Thwargle/BrowseronsCall-sub000/internal/state"
)

// PostgresStore persists player snapshots in a single table, one row
// per sanitized name, the whole snapshot as JSONB.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore opens the database, verifies connectivity, and
// initializes the schema.
func NewPostgresStore(connectionString string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("persistence: open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("persistence: ping database: %w", err)
	}

	store := &PostgresStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("persistence: init schema: %w", err)
	}
	return store, nil
}

func (s *PostgresStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS players (
		name TEXT PRIMARY KEY,
		snapshot JSONB NOT NULL,
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);`
	_, err := s.db.Exec(schema)
	return err
}

// SavePlayer upserts the snapshot row for the player.
func (s *PostgresStore) SavePlayer(name string, snapshot *state.PlayerSnapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("persistence: marshal %q: %w", name, err)
	}
	_, err = s.db.Exec(`
		INSERT INTO players (name, snapshot, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (name) DO UPDATE SET snapshot = $2, updated_at = NOW()`,
		SanitizeName(name), data)
	if err != nil {
		return fmt.Errorf("persistence: upsert %q: %w", name, err)
	}
	return nil
}

// LoadPlayer reads the snapshot row, or ErrNotFound.
func (s *PostgresStore) LoadPlayer(name string) (*state.PlayerSnapshot, error) {
	var data []byte
	err := s.db.QueryRow(`SELECT snapshot FROM players WHERE name = $1`, SanitizeName(name)).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("persistence: query %q: %w", name, err)
	}

	var snapshot state.PlayerSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("persistence: decode %q: %w", name, err)
	}
	snapshot.Equipment.Normalize()
	return &snapshot, nil
}

// Close releases the connection pool.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}
