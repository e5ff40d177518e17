package recurrence

import (
	"fmt"

	"github.com/reugn/go-recur/date"
)

// Unit selects the kind of rule a Rule builds.
type Unit int

const (
	// Days builds an Interval; the anchor must be a date.Date.
	Days Unit = iota + 1
	// Months builds a Periodic; the anchor must be a date.YearMonth.
	Months
)

func (u Unit) String() string {
	switch u {
	case Days:
		return "Days"
	case Months:
		return "Months"
	}
	return fmt.Sprintf("Unit(%d)", int(u))
}

// Rule is a declarative description of a recurrence, for callers that
// assemble rules from loosely typed input. Ordinal and Day are only used
// for Months.
type Rule struct {
	Unit    Unit
	Anchor  date.Anchor
	Period  int
	Ordinal int
	Day     Day
}

// Build validates the rule and returns the corresponding Interval or
// Periodic. An anchor of the wrong kind for the unit results in an error
// that wraps ErrInvalidAnchorType.
func (r Rule) Build() (Recurrence, error) {
	switch r.Unit {
	case Days:
		anchor, ok := r.Anchor.(date.Date)
		if !ok {
			return nil, invalidAnchorTypeError(fmt.Sprintf("%s requires a date anchor, got %s", r.Unit, anchorKind(r.Anchor)))
		}
		interval, err := NewInterval(anchor, r.Period)
		if err != nil {
			return nil, err
		}
		return interval, nil
	case Months:
		anchor, ok := r.Anchor.(date.YearMonth)
		if !ok {
			return nil, invalidAnchorTypeError(fmt.Sprintf("%s requires a year-month anchor, got %s", r.Unit, anchorKind(r.Anchor)))
		}
		periodic, err := NewPeriodic(anchor, r.Period, r.Ordinal, r.Day)
		if err != nil {
			return nil, err
		}
		return periodic, nil
	}
	return nil, invalidRuleError(fmt.Sprintf("unrecognised unit %d", int(r.Unit)))
}

func anchorKind(a date.Anchor) string {
	switch a := a.(type) {
	case nil:
		return "none"
	case date.Date:
		return fmt.Sprintf("date %v", a)
	case date.YearMonth:
		return fmt.Sprintf("year-month %v", a)
	}
	return fmt.Sprintf("%T", a)
}
