package recurrence

import (
	"fmt"

	"github.com/reugn/go-recur/date"
)

// Periodic is a rule that recurs once per period of Period calendar months.
// Period n spans the months [Anchor + n*Period, Anchor + (n+1)*Period) and
// its occurrence is selected by Ordinal and Day:
//
//   - Day == DayOfPeriod: Ordinal counts the days of the period, 1 being its
//     first day and -1 its last. Positive ordinals beyond the end of the
//     period are clamped to its last day; negative ordinals are not clamped
//     and may select a day before the period starts.
//   - Day is a weekday: Ordinal counts occurrences of that weekday, forwards
//     from the start of the period when positive and backwards from its end
//     when negative.
type Periodic struct {
	anchor  date.YearMonth
	period  int
	ordinal int
	day     Day
}

var _ Recurrence = Periodic{}

// NewPeriodic returns a Periodic rule. The period must be positive, the
// ordinal nonzero and day either DayOfPeriod or a weekday code.
func NewPeriodic(anchor date.YearMonth, period, ordinal int, day Day) (Periodic, error) {
	if !day.Valid() {
		return Periodic{}, invalidRuleError(fmt.Sprintf("unrecognised day %d", int(day)))
	}
	if period <= 0 {
		return Periodic{}, invalidRuleError(fmt.Sprintf("period must be positive, got %d", period))
	}
	if ordinal == 0 {
		return Periodic{}, invalidRuleError("ordinal must be nonzero")
	}
	return Periodic{anchor: anchor, period: period, ordinal: ordinal, day: day}, nil
}

// Anchor returns the first month of the period containing occurrence 0.
func (r Periodic) Anchor() date.YearMonth {
	return r.anchor
}

// Period returns the number of months in each period.
func (r Periodic) Period() int {
	return r.period
}

// Ordinal returns the signed position of the occurrence within its period.
func (r Periodic) Ordinal() int {
	return r.ordinal
}

// Day returns what the ordinal counts.
func (r Periodic) Day() Day {
	return r.day
}

// OccurrenceAt implements Recurrence.
func (r Periodic) OccurrenceAt(index int) date.Date {
	return r.resolve(r.periodStart(index))
}

// IsOccurrence implements Recurrence.
func (r Periodic) IsOccurrence(candidate date.Date) bool {
	return r.OccurrenceAt(r.ceilIndex(candidate)) == candidate
}

// OccurrenceNumber implements Recurrence.
func (r Periodic) OccurrenceNumber(candidate date.Date) (int, error) {
	index := r.ceilIndex(candidate)
	if r.OccurrenceAt(index) != candidate {
		return 0, notAnOccurrenceError(fmt.Sprintf("%v is not on %v", candidate, r))
	}
	return index, nil
}

// OccurrenceAfter implements Recurrence. A date that is itself an
// occurrence advances a full period.
func (r Periodic) OccurrenceAfter(d date.Date) date.Date {
	return r.OccurrenceAt(r.ceilIndex(d.Add(1)))
}

// Equal implements Recurrence.
func (r Periodic) Equal(other Recurrence) bool {
	o, ok := other.(Periodic)
	return ok && o == r
}

func (r Periodic) String() string {
	every := "every month"
	if r.period > 1 {
		every = fmt.Sprintf("every %d months", r.period)
	}
	what := "day"
	if w, ok := r.day.Weekday(); ok {
		what = w.String()
	}
	return fmt.Sprintf("%s from %v on the %s %s of the period", every, r.anchor, ordinalString(r.ordinal), what)
}

func (Periodic) sealed() {}

func (r Periodic) periodStart(index int) date.YearMonth {
	return r.anchor.Add(index * r.period)
}

// periodIndex returns the index of the period containing d.
func (r Periodic) periodIndex(d date.Date) int {
	return floorDiv(d.YearMonth().Sub(r.anchor), r.period)
}

// ceilIndex returns the smallest index whose occurrence is on or after d.
// Occurrences may fall outside the period that selects them, so the search
// starts from the period that would contain d if every period placed its
// occurrence at the same offset as the anchor period, and then steps to the
// exact index. OccurrenceAt is strictly increasing so the steps are few.
func (r Periodic) ceilIndex(d date.Date) int {
	offset := r.OccurrenceAt(0).Sub(r.anchor.FirstDay())
	index := r.periodIndex(d.Add(-offset))
	for r.OccurrenceAt(index) < d {
		index++
	}
	for r.OccurrenceAt(index-1) >= d {
		index--
	}
	return index
}

// resolve returns the occurrence for the period starting in month start.
func (r Periodic) resolve(start date.YearMonth) date.Date {
	first := start.FirstDay()
	last := start.Add(r.period - 1).LastDay()
	weekday, ok := r.day.Weekday()
	if !ok {
		if r.ordinal < 0 {
			return last.Add(r.ordinal + 1)
		}
		if r.ordinal > last.Sub(first)+1 {
			return last
		}
		return first.Add(r.ordinal - 1)
	}
	if r.ordinal < 0 {
		offset := floorMod(int(last.Weekday())-int(weekday), 7)
		return last.Add(-offset - 7*(-r.ordinal-1))
	}
	offset := floorMod(int(weekday)-int(first.Weekday()), 7)
	return first.Add(offset + 7*(r.ordinal-1))
}
