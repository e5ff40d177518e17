// Package date provides the calendar values used by the recurrence engine:
// Date, a day in the proleptic Gregorian calendar, and YearMonth, a specific
// month of a specific year. Both are plain integers underneath, so they are
// totally ordered with the usual comparison operators and can be used as
// map keys.
package date

import (
	"errors"
	"fmt"
	"time"

	"cloudeng.io/datetime"
)

// ErrInvalidDate is returned when a date or year-month cannot be parsed.
var ErrInvalidDate = errors.New("invalid date")

const (
	secondsPerDay = 24 * 60 * 60
	dateLayout    = "2006-01-02"
)

// Anchor is implemented by Date and YearMonth, the two kinds of value a
// recurrence can be anchored to.
type Anchor interface {
	fmt.Stringer
	anchor()
}

// Date is a calendar date, stored as the number of days since 1970-01-01.
type Date int

var _ Anchor = Date(0)

// New returns the Date for the given year, month and day. Values outside
// their usual ranges are normalized the same way time.Date normalizes them,
// for example Oct 32 is Nov 1.
func New(year int, month datetime.Month, day int) Date {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return Date(t.Unix() / secondsPerDay)
}

// FromTime returns the Date of t in t's location.
func FromTime(t time.Time) Date {
	year, month, day := t.Date()
	return New(year, datetime.Month(month), day)
}

// Parse parses a date in the form YYYY-MM-DD.
func Parse(val string) (Date, error) {
	t, err := time.Parse(dateLayout, val)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: expected YYYY-MM-DD", ErrInvalidDate, val)
	}
	return FromTime(t), nil
}

// MustParse is like Parse but panics on error.
func MustParse(val string) Date {
	d, err := Parse(val)
	if err != nil {
		panic(err)
	}
	return d
}

// Time returns midnight UTC at the start of d.
func (d Date) Time() time.Time {
	return time.Unix(int64(d)*secondsPerDay, 0).UTC()
}

// Calendar returns the year, month and day of d.
func (d Date) Calendar() (year int, month datetime.Month, day int) {
	y, m, dd := d.Time().Date()
	return y, datetime.Month(m), dd
}

// Year returns the year of d.
func (d Date) Year() int {
	return d.Time().Year()
}

// Month returns the month of d.
func (d Date) Month() datetime.Month {
	return datetime.Month(d.Time().Month())
}

// Day returns the day of the month of d.
func (d Date) Day() int {
	return d.Time().Day()
}

// Add returns the date n days after d; n may be negative.
func (d Date) Add(days int) Date {
	return d + Date(days)
}

// Sub returns the number of days from o to d.
func (d Date) Sub(o Date) int {
	return int(d - o)
}

// Weekday returns the day of the week of d.
func (d Date) Weekday() Weekday {
	// 1970-01-01 was a Thursday.
	return Weekday(floorMod(int(d)+int(Thursday), 7))
}

// YearMonth returns the month containing d.
func (d Date) YearMonth() YearMonth {
	year, month, _ := d.Calendar()
	return NewYearMonth(year, month)
}

func (d Date) String() string {
	year, month, day := d.Calendar()
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}

func (Date) anchor() {}

// Weekday is a day of the week, counted from Monday = 0.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// Valid returns true for Monday through Sunday.
func (w Weekday) Valid() bool {
	return w >= Monday && w <= Sunday
}

func (w Weekday) String() string {
	if !w.Valid() {
		return fmt.Sprintf("Weekday(%d)", int(w))
	}
	// time.Weekday counts from Sunday.
	return time.Weekday((int(w) + 1) % 7).String()
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}
