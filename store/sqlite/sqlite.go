/*
Package sqlite provides a SQLite-backed scenario registry.

PURPOSE:
  Implements generic.ScenarioStore using SQLite so registered scenarios
  survive a server restart. Only scenario definitions are stored:
  histories are always recomputed (or served from the handler cache).

INTERFACES IMPLEMENTED:
  generic.ScenarioStore: Scenario definitions

KEY TABLES:
  scenarios: One row per registered scenario (definition JSON)

INDEXES:
  - idx_scenarios_created: List ordering

CONCURRENCY:
  Uses sync.RWMutex for thread-safety. SQLite allows a single writer.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging):
  - Multiple readers don't block
  - Single writer at a time

USAGE:
  store, err := sqlite.New("./data/scenarios.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

  handler := api.NewHandler(store, maxHorizon, ttl)

MIGRATION:
  Schema is auto-migrated on New().

SEE ALSO:
  - generic/store.go: Interface definition
  - generic/store/memory.go: In-memory implementation
*/
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/warp/wealth-engine/generic"
)

// Store implements generic.ScenarioStore using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// An in-memory database lives as long as its connection.
	db.SetMaxOpenConns(1)

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS scenarios (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		config_json TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_scenarios_created
		ON scenarios(created_at, id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// SCENARIO STORE
// =============================================================================

// Save inserts or replaces a scenario. The creation time of an existing
// row is kept.
func (s *Store) Save(ctx context.Context, record generic.ScenarioRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT INTO scenarios (id, name, config_json, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			config_json = excluded.config_json
	`

	createdAt := record.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx, query,
		string(record.ID), record.Name, record.ConfigJSON,
		createdAt.UTC().Format(time.RFC3339Nano),
	)
	return err
}

// Get retrieves a scenario by ID.
func (s *Store) Get(ctx context.Context, id generic.ScenarioID) (*generic.ScenarioRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var rec generic.ScenarioRecord
	var rawID, createdAt string

	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, config_json, created_at FROM scenarios WHERE id = ?",
		string(id),
	).Scan(&rawID, &rec.Name, &rec.ConfigJSON, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, generic.ErrScenarioNotFound
	}
	if err != nil {
		return nil, err
	}

	rec.ID = generic.ScenarioID(rawID)
	rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
	return &rec, nil
}

// List returns all scenarios, oldest first.
func (s *Store) List(ctx context.Context) ([]generic.ScenarioRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, config_json, created_at FROM scenarios",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []generic.ScenarioRecord{}
	for rows.Next() {
		var rec generic.ScenarioRecord
		var rawID, createdAt string
		if err := rows.Scan(&rawID, &rec.Name, &rec.ConfigJSON, &createdAt); err != nil {
			return nil, err
		}
		rec.ID = generic.ScenarioID(rawID)
		rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// RFC3339Nano trims trailing zeros, so text order is not time order.
	generic.SortScenarioRecords(records)
	return records, nil
}

// Delete removes a scenario.
func (s *Store) Delete(ctx context.Context, id generic.ScenarioID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, "DELETE FROM scenarios WHERE id = ?", string(id))
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return generic.ErrScenarioNotFound
	}
	return nil
}

// =============================================================================
// UTILITIES
// =============================================================================

// Reset clears all data (for testing/demo).
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, "DELETE FROM scenarios")
	return err
}

var _ generic.ScenarioStore = (*Store)(nil)
