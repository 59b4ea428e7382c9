package derive

import "time"

// Interval is the start and end of a race event
type Interval struct {
	Start time.Time
	End   time.Time
}

// Status is the derived state of a single event
type Status struct {
	Round       int
	IsUpcoming  bool
	IsCompleted bool
}

// DeriveStatus computes round numbers and completed/upcoming flags for events relative to now.
// Round is the 1-based input position. Only the first event (in input order) starting after now
// is upcoming; the input is expected sorted by start and is not re-sorted here.
func DeriveStatus(events []Interval, now time.Time) []Status {
	res := make([]Status, len(events))
	seenFuture := false
	for i, ev := range events {
		future := ev.Start.After(now)
		res[i] = Status{
			Round:       i + 1,
			IsCompleted: ev.End.Before(now),
			IsUpcoming:  future && !seenFuture,
		}
		if future {
			seenFuture = true
		}
	}
	return res
}
