/*
Package sqlite provides a SQLite-backed generic.RecordStore.

One database holds the records of any number of calculators. Each calculator
gets its own Ledger, a named slice of the records table:

  store, err := sqlite.New(":memory:")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

  calc, err := cash.New(limit, cash.WithStore(store.Ledger("cash")))

APPEND-ONLY ENFORCEMENT:
  - No UPDATE or DELETE statements on the records table
  - Insertion order is the autoincrement seq column

A reopened database file still has its records, but a new Calculator starts
its daily total at zero. Use ":memory:" unless that mismatch is acceptable.

SCHEMA:
  Auto-migrated on New().
*/
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/warp/limit-calculator/generic"
)

// ErrDuplicateRecord is returned when a record ID is appended twice.
var ErrDuplicateRecord = errors.New("duplicate record id")

// Store owns the database connection.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New opens the database at dbPath. Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	sep := "?"
	if strings.Contains(dbPath, "?") {
		sep = "&"
	}
	db, err := sql.Open("sqlite3", dbPath+sep+"_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// Every connection to ":memory:" is a separate database.
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

func (s *Store) migrate() error {
	schema := `
	-- Records (append-only, one ledger per calculator)
	CREATE TABLE IF NOT EXISTS records (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL UNIQUE,
		ledger TEXT NOT NULL,
		amount INTEGER NOT NULL,
		comment TEXT NOT NULL DEFAULT '',
		day TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	-- Week window queries (hot path)
	CREATE INDEX IF NOT EXISTS idx_records_ledger_day
		ON records(ledger, day);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Ledger returns the record store of one calculator.
func (s *Store) Ledger(name string) *Ledger {
	return &Ledger{store: s, name: name}
}

// Ledgers lists the names that have at least one record.
func (s *Store) Ledgers(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, "SELECT DISTINCT ledger FROM records ORDER BY ledger")
	if err != nil {
		return nil, fmt.Errorf("failed to query ledgers: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan ledger: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// =============================================================================
// LEDGER (generic.RecordStore interface)
// =============================================================================

type Ledger struct {
	store *Store
	name  string
}

var _ generic.RecordStore = (*Ledger)(nil)

func (l *Ledger) Name() string { return l.name }

// Append adds a record to the ledger.
func (l *Ledger) Append(ctx context.Context, r generic.Record) error {
	l.store.mu.Lock()
	defer l.store.mu.Unlock()

	query := `
		INSERT INTO records (id, ledger, amount, comment, day, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := l.store.db.ExecContext(ctx, query,
		r.ID,
		l.name,
		r.Amount,
		r.Comment,
		r.Date.ISO(),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return ErrDuplicateRecord
		}
		return fmt.Errorf("failed to append record: %w", err)
	}
	return nil
}

// Load returns all records of the ledger in insertion order.
func (l *Ledger) Load(ctx context.Context) ([]generic.Record, error) {
	l.store.mu.RLock()
	defer l.store.mu.RUnlock()

	query := `
		SELECT id, amount, comment, day
		FROM records
		WHERE ledger = ?
		ORDER BY seq ASC
	`

	return l.store.queryRecords(ctx, query, l.name)
}

// LoadRange returns records dated in [from, to] in insertion order.
func (l *Ledger) LoadRange(ctx context.Context, from, to generic.Date) ([]generic.Record, error) {
	l.store.mu.RLock()
	defer l.store.mu.RUnlock()

	query := `
		SELECT id, amount, comment, day
		FROM records
		WHERE ledger = ?
		  AND day >= ? AND day <= ?
		ORDER BY seq ASC
	`

	return l.store.queryRecords(ctx, query, l.name, from.ISO(), to.ISO())
}

func (s *Store) queryRecords(ctx context.Context, query string, args ...any) ([]generic.Record, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	var records []generic.Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}

	return records, rows.Err()
}

func scanRecord(rows *sql.Rows) (generic.Record, error) {
	var (
		r   generic.Record
		day string
	)

	if err := rows.Scan(&r.ID, &r.Amount, &r.Comment, &day); err != nil {
		return r, fmt.Errorf("failed to scan record: %w", err)
	}

	t, err := time.Parse(time.DateOnly, day)
	if err != nil {
		return r, fmt.Errorf("failed to parse record day %q: %w", day, err)
	}
	r.Date = generic.DateOf(t)
	return r, nil
}

func isUniqueConstraintError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
