package generic

import (
	"time"
)

// DateLayout is the only accepted textual form of a Date: DD.MM.YYYY.
const DateLayout = "02.01.2006"

// =============================================================================
// DATE - Calendar day, no time of day
// =============================================================================

type Date struct {
	Time time.Time
}

// Constructors
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf drops the time of day, keeping the calendar day as seen in t's location.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate parses "DD.MM.YYYY". Single-digit fields, other separators,
// trailing text and impossible days are all rejected with a *ParseError.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, &ParseError{Input: s, Err: err}
	}
	return DateOf(t), nil
}

// Comparison
func (d Date) Before(other Date) bool { return d.Time.Before(other.Time) }
func (d Date) Equal(other Date) bool { return d.Time.Equal(other.Time) }
func (d Date) After(other Date) bool { return d.Time.After(other.Time) }
func (d Date) BeforeOrEqual(other Date) bool { return !d.After(other) }
func (d Date) AfterOrEqual(other Date) bool { return !d.Before(other) }

// Arithmetic
func (d Date) AddDays(n int) Date { return Date{Time: d.Time.AddDate(0, 0, n)} }

// Properties
func (d Date) Year() int { return d.Time.Year() }
func (d Date) Month() time.Month { return d.Time.Month() }
func (d Date) Day() int { return d.Time.Day() }
func (d Date) IsZero() bool { return d.Time.IsZero() }

func (d Date) String() string { return d.Time.Format(DateLayout) }

// ISO renders the date as YYYY-MM-DD, which sorts lexically.
func (d Date) ISO() string { return d.Time.Format(time.DateOnly) }

// =============================================================================
// CLOCK - Source of "today"
// =============================================================================

// Clock tells the calculators which calendar day it is.
type Clock interface {
	Today() Date
}

// SystemClock reads the wall clock. A nil Location means time.Local.
type SystemClock struct {
	Location *time.Location
}

func (c SystemClock) Today() Date {
	now := time.Now()
	if c.Location != nil {
		now = now.In(c.Location)
	}
	return DateOf(now)
}

// ManualClock is a clock that only moves when told to.
type ManualClock struct {
	day Date
}

func NewManualClock(day Date) *ManualClock {
	return &ManualClock{day: day}
}

func (c *ManualClock) Today() Date { return c.day }
func (c *ManualClock) Set(day Date) { c.day = day }
func (c *ManualClock) AddDays(n int) { c.day = c.day.AddDays(n) }
