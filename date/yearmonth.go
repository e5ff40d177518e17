package date

import (
	"fmt"
	"time"

	"cloudeng.io/datetime"
)

const yearMonthLayout = "2006-01"

// Months of the year.
const (
	January datetime.Month = iota + 1
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

// YearMonth identifies a month of a specific year, stored as the number of
// months since January of year 0. Adding or subtracting an integer moves by
// that many calendar months.
type YearMonth int

var _ Anchor = YearMonth(0)

// NewYearMonth returns the YearMonth for the given year and month.
// Months outside 1-12 roll over into adjacent years.
func NewYearMonth(year int, month datetime.Month) YearMonth {
	return YearMonth(year*12 + int(month) - 1)
}

// YearMonthOf returns the month containing d.
func YearMonthOf(d Date) YearMonth {
	return d.YearMonth()
}

// ParseYearMonth parses a year and month in the form YYYY-MM.
func ParseYearMonth(val string) (YearMonth, error) {
	t, err := time.Parse(yearMonthLayout, val)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: expected YYYY-MM", ErrInvalidDate, val)
	}
	return NewYearMonth(t.Year(), datetime.Month(t.Month())), nil
}

// MustParseYearMonth is like ParseYearMonth but panics on error.
func MustParseYearMonth(val string) YearMonth {
	ym, err := ParseYearMonth(val)
	if err != nil {
		panic(err)
	}
	return ym
}

// Year returns the year of ym.
func (ym YearMonth) Year() int {
	return floorDiv(int(ym), 12)
}

// Month returns the month of ym.
func (ym YearMonth) Month() datetime.Month {
	return datetime.Month(floorMod(int(ym), 12) + 1)
}

// Add returns the month n months after ym; n may be negative.
func (ym YearMonth) Add(n int) YearMonth {
	return ym + YearMonth(n)
}

// Sub returns the number of months from o to ym.
func (ym YearMonth) Sub(o YearMonth) int {
	return int(ym - o)
}

// Days returns the number of days in ym.
func (ym YearMonth) Days() int {
	return datetime.DaysInMonth(ym.Year(), ym.Month())
}

// Date returns the given day of ym. Days outside the month are normalized
// as for New.
func (ym YearMonth) Date(day int) Date {
	return New(ym.Year(), ym.Month(), day)
}

// FirstDay returns the first date in ym.
func (ym YearMonth) FirstDay() Date {
	return ym.Date(1)
}

// LastDay returns the last date in ym.
func (ym YearMonth) LastDay() Date {
	return ym.FirstDay().Add(ym.Days() - 1)
}

func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year(), int(ym.Month()))
}

func (YearMonth) anchor() {}
