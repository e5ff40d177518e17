// Package recurrence computes recurring calendar dates from compact rules
// such as "every 3 days starting April 7" or "every 4 months on the
// 2nd-to-last Tuesday of the period".
//
// A rule is either an Interval, a fixed number of days between occurrences,
// or a Periodic, an ordinal position within a run of calendar months. Both
// define a bidirectional, infinite sequence of dates indexed by integers,
// with index 0 at the rule's anchor. All rule values are immutable and safe
// for concurrent use.
package recurrence

import (
	"fmt"

	"github.com/reugn/go-recur/date"
)

// Recurrence is implemented by Interval and Periodic.
type Recurrence interface {
	// OccurrenceAt returns the occurrence with the given index. Index 0
	// is the anchored occurrence, negative indices precede it.
	OccurrenceAt(index int) date.Date

	// OccurrenceAfter returns the earliest occurrence strictly after d.
	OccurrenceAfter(d date.Date) date.Date

	// IsOccurrence reports whether candidate is produced by the rule.
	IsOccurrence(candidate date.Date) bool

	// OccurrenceNumber returns the index of candidate in the sequence, or
	// an error that wraps ErrNotAnOccurrence.
	OccurrenceNumber(candidate date.Date) (int, error)

	// Equal reports whether other is the same kind of rule with the same
	// parameters.
	Equal(other Recurrence) bool

	// String returns a description of the rule.
	String() string

	sealed()
}

// Day selects what a Periodic ordinal counts: plain days of the period
// (DayOfPeriod) or occurrences of a particular weekday.
type Day int

// DayOfPeriod is distinct from all weekday codes.
const DayOfPeriod Day = -1

// Weekday codes, Monday = 0 through Sunday = 6.
const (
	Monday    = Day(date.Monday)
	Tuesday   = Day(date.Tuesday)
	Wednesday = Day(date.Wednesday)
	Thursday  = Day(date.Thursday)
	Friday    = Day(date.Friday)
	Saturday  = Day(date.Saturday)
	Sunday    = Day(date.Sunday)
)

// Valid returns true for DayOfPeriod and Monday through Sunday.
func (d Day) Valid() bool {
	return d == DayOfPeriod || date.Weekday(d).Valid()
}

// Weekday returns the weekday for a weekday code. It returns false for
// DayOfPeriod and invalid values.
func (d Day) Weekday() (date.Weekday, bool) {
	w := date.Weekday(d)
	return w, w.Valid()
}

func (d Day) String() string {
	if d == DayOfPeriod {
		return "DayOfPeriod"
	}
	if w, ok := d.Weekday(); ok {
		return w.String()
	}
	return fmt.Sprintf("Day(%d)", int(d))
}

// Direction is the order in which EnumerateFrom visits indices.
type Direction int

const (
	Forward Direction = iota
	Backward
)

func (d Direction) step() int {
	if d == Backward {
		return -1
	}
	return 1
}

func (d Direction) String() string {
	switch d {
	case Forward:
		return "Forward"
	case Backward:
		return "Backward"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}
