/*
calculator.go - Limit, records, and the two aggregate windows

TODAY:
  A running total. AddRecord adds a record's amount when the record is dated
  with the clock's today at the moment it is added. The total is never
  recomputed and never reset, so after midnight it still holds the previous
  day's amounts until a new Calculator is built.

WEEK:
  Recomputed on every call from the store:
    today       = clock.Today()
    windowStart = today - 7 days
    week        = sum(amount) for windowStart <= date <= today

  Both ends are inclusive, so the window spans eight calendar days.

CONCURRENCY:
  A Calculator does no locking. Callers sharing one must serialise access.
*/
package generic

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// WeekWindowDays is how far back WeekStats looks from today.
const WeekWindowDays = 7

// Calculator accumulates records against a fixed limit.
type Calculator struct {
	limit decimal.Decimal
	store RecordStore
	clock Clock

	dailySpent int64
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithClock replaces the system clock.
func WithClock(c Clock) Option {
	return func(calc *Calculator) {
		if c != nil {
			calc.clock = c
		}
	}
}

// WithStore replaces the default in-memory store.
func WithStore(s RecordStore) Option {
	return func(calc *Calculator) {
		if s != nil {
			calc.store = s
		}
	}
}

// NewCalculator fails with a *ValidationError when limit is negative.
func NewCalculator(limit decimal.Decimal, opts ...Option) (*Calculator, error) {
	if limit.IsNegative() {
		return nil, NewValidationError("limit", "limit must be non-negative", limit)
	}

	c := &Calculator{
		limit: limit,
		clock: SystemClock{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.store == nil {
		c.store = &sliceStore{}
	}
	return c, nil
}

func (c *Calculator) Limit() decimal.Decimal { return c.limit }
func (c *Calculator) Clock() Clock { return c.clock }

// AddRecord stores r and, if r is dated today, adds it to the daily total.
// The total only moves once the store has accepted the record. Records with a
// negative amount or no date are rejected before reaching the store.
func (c *Calculator) AddRecord(ctx context.Context, r Record) error {
	if r.Amount < 0 {
		return NewValidationError("amount", "amount must be non-negative", r.Amount)
	}
	if r.Date.IsZero() {
		return NewValidationError("date", "date is required", r.Date)
	}
	if err := c.store.Append(ctx, r); err != nil {
		return fmt.Errorf("append record: %w", err)
	}
	if r.Date.Equal(c.clock.Today()) {
		c.dailySpent += r.Amount
	}
	return nil
}

// TodayStats returns the running daily total.
func (c *Calculator) TodayStats() int64 {
	return c.dailySpent
}

// WeekStats sums every record dated within the last WeekWindowDays days,
// today included.
func (c *Calculator) WeekStats(ctx context.Context) (int64, error) {
	week := WeekEnding(c.clock.Today())

	records, err := c.store.LoadRange(ctx, week.Start, week.End)
	if err != nil {
		return 0, fmt.Errorf("load week records: %w", err)
	}

	var total int64
	for _, r := range records {
		total += r.Amount
	}
	return total, nil
}

// Records returns all records in insertion order.
func (c *Calculator) Records(ctx context.Context) ([]Record, error) {
	return c.store.Load(ctx)
}

// Remaining is limit minus the running daily total. It goes negative once
// the limit is exceeded.
func (c *Calculator) Remaining() decimal.Decimal {
	return c.limit.Sub(decimal.NewFromInt(c.dailySpent))
}

// =============================================================================
// DEFAULT STORE
// =============================================================================

// sliceStore is the store a Calculator uses when none is given. Unlike
// store.Memory it does no locking; pass WithStore(store.NewMemory()) when a
// calculator is shared between goroutines.
type sliceStore struct {
	records []Record
}

func (s *sliceStore) Append(_ context.Context, r Record) error {
	s.records = append(s.records, r)
	return nil
}

func (s *sliceStore) Load(_ context.Context) ([]Record, error) {
	return append([]Record(nil), s.records...), nil
}

func (s *sliceStore) LoadRange(_ context.Context, from, to Date) ([]Record, error) {
	p := Period{Start: from, End: to}
	var out []Record
	for _, r := range s.records {
		if p.Contains(r.Date) {
			out = append(out, r)
		}
	}
	return out, nil
}
