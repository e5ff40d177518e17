package recurrence

import (
	"fmt"

	"github.com/reugn/go-recur/date"
)

// Interval is a rule that recurs every Period days, with occurrence 0 on
// Anchor.
type Interval struct {
	anchor date.Date
	period int
}

var _ Recurrence = Interval{}

// NewInterval returns an Interval recurring every period days from anchor.
// The period must be positive.
func NewInterval(anchor date.Date, period int) (Interval, error) {
	if period <= 0 {
		return Interval{}, invalidRuleError(fmt.Sprintf("period must be positive, got %d", period))
	}
	return Interval{anchor: anchor, period: period}, nil
}

// Anchor returns the date of occurrence 0.
func (r Interval) Anchor() date.Date {
	return r.anchor
}

// Period returns the number of days between consecutive occurrences.
func (r Interval) Period() int {
	return r.period
}

// OccurrenceAt implements Recurrence.
func (r Interval) OccurrenceAt(index int) date.Date {
	return r.anchor.Add(index * r.period)
}

// IsOccurrence implements Recurrence.
func (r Interval) IsOccurrence(candidate date.Date) bool {
	return floorMod(candidate.Sub(r.anchor), r.period) == 0
}

// OccurrenceNumber implements Recurrence.
func (r Interval) OccurrenceNumber(candidate date.Date) (int, error) {
	delta := candidate.Sub(r.anchor)
	if floorMod(delta, r.period) != 0 {
		return 0, notAnOccurrenceError(fmt.Sprintf("%v is not on %v", candidate, r))
	}
	return delta / r.period, nil
}

// OccurrenceAfter implements Recurrence. A date that is itself an
// occurrence advances a full period.
func (r Interval) OccurrenceAfter(d date.Date) date.Date {
	delta := d.Sub(r.anchor)
	delta += r.period - floorMod(delta, r.period)
	return r.anchor.Add(delta)
}

// Equal implements Recurrence.
func (r Interval) Equal(other Recurrence) bool {
	o, ok := other.(Interval)
	return ok && o == r
}

func (r Interval) String() string {
	if r.period == 1 {
		return fmt.Sprintf("every day from %v", r.anchor)
	}
	return fmt.Sprintf("every %d days from %v", r.period, r.anchor)
}

func (Interval) sealed() {}
