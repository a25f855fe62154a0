/*
store.go - Persistence interface for records

APPEND-ONLY CONTRACT:
  - Append(): the only write
  - NO Update() or Delete() methods exist

Records come back in insertion order. A store belongs to exactly one
Calculator; sharing one between calculators mixes their totals.

IMPLEMENTATIONS:
  - generic/store/memory.go: in-memory, the default
  - store/sqlite/sqlite.go: SQLite ledger per calculator
*/
package generic

import "context"

// RecordStore holds the records of one calculator.
type RecordStore interface {
	// Append persists a record. On error nothing was stored.
	Append(ctx context.Context, r Record) error

	// Load returns every record in insertion order.
	Load(ctx context.Context) ([]Record, error)

	// LoadRange returns records dated in [from, to], in insertion order.
	LoadRange(ctx context.Context, from, to Date) ([]Record, error)
}
