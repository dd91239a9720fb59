// Package store provides ScenarioStore implementations.
package store

import (
	"context"
	"sync"

	"github.com/warp/wealth-engine/generic"
)

// =============================================================================
// MEMORY STORE - In-memory scenario registry
// =============================================================================

type Memory struct {
	mu        sync.RWMutex
	scenarios map[generic.ScenarioID]generic.ScenarioRecord
}

func NewMemory() *Memory {
	return &Memory{
		scenarios: make(map[generic.ScenarioID]generic.ScenarioRecord),
	}
}

// Save inserts or replaces a scenario.
func (m *Memory) Save(_ context.Context, record generic.ScenarioRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scenarios[record.ID] = record
	return nil
}

func (m *Memory) Get(_ context.Context, id generic.ScenarioID) (*generic.ScenarioRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.scenarios[id]
	if !ok {
		return nil, generic.ErrScenarioNotFound
	}
	return &record, nil
}

func (m *Memory) List(_ context.Context) ([]generic.ScenarioRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]generic.ScenarioRecord, 0, len(m.scenarios))
	for _, r := range m.scenarios {
		result = append(result, r)
	}
	generic.SortScenarioRecords(result)
	return result, nil
}

func (m *Memory) Delete(_ context.Context, id generic.ScenarioID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.scenarios[id]; !ok {
		return generic.ErrScenarioNotFound
	}
	delete(m.scenarios, id)
	return nil
}

func (m *Memory) Reset(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scenarios = make(map[generic.ScenarioID]generic.ScenarioRecord)
	return nil
}

var _ generic.ScenarioStore = (*Memory)(nil)
