package recurrence_test

import (
	"testing"

	"github.com/reugn/go-recur/date"
	"github.com/reugn/go-recur/internal/assert"
	"github.com/reugn/go-recur/recurrence"
)

func mustInterval(t *testing.T, anchor string, period int) recurrence.Interval {
	t.Helper()
	r, err := recurrence.NewInterval(date.MustParse(anchor), period)
	assert.NoError(t, err)
	return r
}

func TestIntervalAttributes(t *testing.T) {
	r := mustInterval(t, "2012-04-07", 3)
	assert.Equal(t, r.Anchor(), date.MustParse("2012-04-07"))
	assert.Equal(t, r.Period(), 3)
	assert.Equal(t, r.String(), "every 3 days from 2012-04-07")
	assert.Equal(t, mustInterval(t, "2012-04-07", 1).String(), "every day from 2012-04-07")
}

func TestIntervalInvalidPeriod(t *testing.T) {
	for _, period := range []int{0, -1, -30} {
		_, err := recurrence.NewInterval(date.MustParse("2012-04-07"), period)
		assert.ErrorIs(t, err, recurrence.ErrInvalidRule)
	}
}

func TestIntervalOccurrenceAt(t *testing.T) {
	r := mustInterval(t, "2012-04-07", 3)
	expected := []string{
		"2012-03-11", "2012-03-14", "2012-03-17", "2012-03-20", "2012-03-23",
		"2012-03-26", "2012-03-29", "2012-04-01", "2012-04-04",
		"2012-04-07",
		"2012-04-10", "2012-04-13", "2012-04-16", "2012-04-19", "2012-04-22",
		"2012-04-25", "2012-04-28", "2012-05-01", "2012-05-04",
	}
	for i, want := range expected {
		assert.Equal(t, r.OccurrenceAt(i-9), date.MustParse(want))
	}
}

func TestIntervalOccurrenceNumber(t *testing.T) {
	r := mustInterval(t, "2012-04-07", 3)
	tests := []struct {
		date         string
		isOccurrence bool
		number       int
		after        string
	}{
		{"2012-03-29", true, -3, "2012-04-01"},
		{"2012-03-30", false, 0, "2012-04-01"},
		{"2012-03-31", false, 0, "2012-04-01"},
		{"2012-04-01", true, -2, "2012-04-04"},
		{"2012-04-02", false, 0, "2012-04-04"},
		{"2012-04-03", false, 0, "2012-04-04"},
		{"2012-04-04", true, -1, "2012-04-07"},
		{"2012-04-05", false, 0, "2012-04-07"},
		{"2012-04-06", false, 0, "2012-04-07"},
		{"2012-04-07", true, 0, "2012-04-10"},
		{"2012-04-08", false, 0, "2012-04-10"},
		{"2012-04-09", false, 0, "2012-04-10"},
		{"2012-04-10", true, 1, "2012-04-13"},
		{"2012-04-11", false, 0, "2012-04-13"},
		{"2012-04-12", false, 0, "2012-04-13"},
		{"2012-04-13", true, 2, "2012-04-16"},
		{"2012-04-14", false, 0, "2012-04-16"},
		{"2012-04-15", false, 0, "2012-04-16"},
		{"2012-04-16", true, 3, "2012-04-19"},
	}
	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			d := date.MustParse(tt.date)
			assert.Equal(t, r.IsOccurrence(d), tt.isOccurrence)
			number, err := r.OccurrenceNumber(d)
			if tt.isOccurrence {
				assert.NoError(t, err)
				assert.Equal(t, number, tt.number)
			} else {
				assert.ErrorIs(t, err, recurrence.ErrNotAnOccurrence)
			}
			assert.Equal(t, r.OccurrenceAfter(d), date.MustParse(tt.after))
		})
	}
}

func TestIntervalFarFromAnchor(t *testing.T) {
	r := mustInterval(t, "2012-04-07", 7)
	assert.Equal(t, r.OccurrenceAt(-2200), date.MustParse("1970-02-07"))
	assert.Equal(t, r.OccurrenceAt(1000), date.MustParse("2031-06-07"))
	n, err := r.OccurrenceNumber(date.MustParse("1970-02-07"))
	assert.NoError(t, err)
	assert.Equal(t, n, -2200)
	assert.Equal(t, r.OccurrenceAfter(date.MustParse("1970-02-06")), date.MustParse("1970-02-07"))
}

func TestIntervalEqual(t *testing.T) {
	r := mustInterval(t, "2012-04-07", 3)
	assert.Equal(t, r.Equal(mustInterval(t, "2012-04-07", 3)), true)
	assert.Equal(t, r == mustInterval(t, "2012-04-07", 3), true)
	assert.Equal(t, r.Equal(mustInterval(t, "2012-04-06", 3)), false)
	assert.Equal(t, r.Equal(mustInterval(t, "2012-04-07", 4)), false)

	periodic, err := recurrence.NewPeriodic(date.MustParseYearMonth("2012-04"), 3, 1, recurrence.DayOfPeriod)
	assert.NoError(t, err)
	assert.Equal(t, r.Equal(periodic), false)
	assert.Equal(t, r.Equal(nil), false)
}
