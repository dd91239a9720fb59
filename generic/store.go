/*
store.go - Scenario registry interface

PURPOSE:
  Scenarios (initial situation + action log + horizon, as JSON) are kept
  by the HTTP shell so clients can register them once and query their
  history many times. The engine itself never reads the store.

  Histories are never persisted, only the definitions that produce them.

IMPLEMENTATIONS:
  - generic/store/memory.go: In-memory, process lifetime
  - store/sqlite/sqlite.go:  SQLite file (-db flag)

SEE ALSO:
  - factory/scenario.go: Parses ConfigJSON
  - api/handlers.go: Uses the store
*/
package generic

import (
	"context"
	"sort"
	"time"
)

// ScenarioRecord is a registered scenario definition.
type ScenarioRecord struct {
	ID         ScenarioID
	Name       string
	ConfigJSON string
	CreatedAt  time.Time
}

// ScenarioStore keeps scenario definitions.
type ScenarioStore interface {
	// Save inserts or replaces a scenario.
	Save(ctx context.Context, record ScenarioRecord) error

	// Get returns ErrScenarioNotFound for unknown ids.
	Get(ctx context.Context, id ScenarioID) (*ScenarioRecord, error)

	// List returns every scenario ordered by creation time, then id.
	List(ctx context.Context) ([]ScenarioRecord, error)

	// Delete returns ErrScenarioNotFound for unknown ids.
	Delete(ctx context.Context, id ScenarioID) error

	// Reset removes every scenario.
	Reset(ctx context.Context) error
}

// SortScenarioRecords orders records by creation time, then id.
func SortScenarioRecords(records []ScenarioRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		if !records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].CreatedAt.Before(records[j].CreatedAt)
		}
		return records[i].ID < records[j].ID
	})
}
