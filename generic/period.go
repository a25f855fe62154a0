package generic

// =============================================================================
// PERIOD - Inclusive range of days
// =============================================================================

// Period is the closed range [Start, End].
type Period struct {
	Start Date
	End   Date
}

// WeekEnding is the window WeekStats sums over: WeekWindowDays back from
// today, both ends included.
func WeekEnding(today Date) Period {
	return Period{Start: today.AddDays(-WeekWindowDays), End: today}
}

// Contains returns true if d is within [Start, End].
func (p Period) Contains(d Date) bool {
	return d.AfterOrEqual(p.Start) && d.BeforeOrEqual(p.End)
}

func (p Period) String() string {
	return "[" + p.Start.String() + ", " + p.End.String() + "]"
}
