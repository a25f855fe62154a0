// Package store provides RecordStore implementations.
package store

import (
	"context"
	"sync"

	"github.com/warp/limit-calculator/generic"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (the default)
// =============================================================================

type Memory struct {
	mu      sync.RWMutex
	records []generic.Record
}

func NewMemory() *Memory {
	return &Memory{}
}

// Append adds a single record. Append-only.
func (m *Memory) Append(_ context.Context, r generic.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, r)
	return nil
}

func (m *Memory) Load(_ context.Context) ([]generic.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]generic.Record, len(m.records))
	copy(result, m.records)
	return result, nil
}

func (m *Memory) LoadRange(_ context.Context, from, to generic.Date) ([]generic.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p := generic.Period{Start: from, End: to}
	var result []generic.Record
	for _, r := range m.records {
		if p.Contains(r.Date) {
			result = append(result, r)
		}
	}
	return result, nil
}

// Len returns the number of stored records.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}

var _ generic.RecordStore = (*Memory)(nil)
