/*
Package generic provides the core of the limit calculators.

KEY CONCEPTS:
  - Record: one logged amount (money or kcal) with a comment and a day
  - Calculator: a limit plus the records logged against it
  - RecordStore: where a Calculator keeps its records (append-only)
  - Clock: the injected source of "today"

Domain packages (cash, calories) embed *Calculator and only add formatting.

USAGE:
  calc, err := generic.NewCalculator(decimal.NewFromInt(1000))
  rec, err := generic.NewRecord(calc.Clock(), 145, "coffee", "")
  err = calc.AddRecord(ctx, rec)
  spent := calc.TodayStats()
*/
package generic

import (
	"github.com/google/uuid"
)

// =============================================================================
// RECORD - One logged amount
// =============================================================================

// Record is an immutable entry. Amount is in whatever unit the owning
// calculator counts (currency base units, kilocalories).
type Record struct {
	ID      string
	Amount  int64
	Comment string
	Date    Date
}

// NewRecord builds a record. An empty date means clock's today; otherwise the
// date must be DD.MM.YYYY. A nil clock falls back to SystemClock.
func NewRecord(clock Clock, amount int64, comment, date string) (Record, error) {
	if amount < 0 {
		return Record{}, NewValidationError("amount", "amount must be non-negative", amount)
	}

	var day Date
	if date == "" {
		if clock == nil {
			clock = SystemClock{}
		}
		day = clock.Today()
	} else {
		parsed, err := ParseDate(date)
		if err != nil {
			return Record{}, err
		}
		day = parsed
	}

	return NewRecordOn(amount, comment, day), nil
}

// NewRecordOn builds a record for an already known day. Amount is checked
// when the record is added to a Calculator.
func NewRecordOn(amount int64, comment string, day Date) Record {
	return Record{
		ID:      uuid.NewString(),
		Amount:  amount,
		Comment: comment,
		Date:    day,
	}
}
