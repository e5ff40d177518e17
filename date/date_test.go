package date_test

import (
	"testing"
	"time"

	"cloudeng.io/datetime"
	"github.com/reugn/go-recur/date"
	"github.com/reugn/go-recur/internal/assert"
)

func TestEpoch(t *testing.T) {
	assert.Equal(t, date.New(1970, date.January, 1), date.Date(0))
	assert.Equal(t, date.Date(0).Weekday(), date.Thursday)
	assert.Equal(t, date.Date(-1).String(), "1969-12-31")
	assert.Equal(t, date.Date(-1).Weekday(), date.Wednesday)
}

func TestNewNormalizes(t *testing.T) {
	assert.Equal(t, date.New(2012, date.October, 32), date.MustParse("2012-11-01"))
	assert.Equal(t, date.New(2012, date.March, 0), date.MustParse("2012-02-29"))
	assert.Equal(t, date.New(2012, datetime.Month(13), 1), date.MustParse("2013-01-01"))
}

func TestCalendar(t *testing.T) {
	d := date.MustParse("2012-04-07")
	year, month, day := d.Calendar()
	assert.Equal(t, year, 2012)
	assert.Equal(t, month, date.April)
	assert.Equal(t, day, 7)
	assert.Equal(t, d.Year(), 2012)
	assert.Equal(t, d.Month(), date.April)
	assert.Equal(t, d.Day(), 7)
	assert.Equal(t, d.Weekday(), date.Saturday)
	assert.Equal(t, d.YearMonth(), date.NewYearMonth(2012, date.April))
	assert.Equal(t, d.Time(), time.Date(2012, time.April, 7, 0, 0, 0, 0, time.UTC))
}

func TestArithmetic(t *testing.T) {
	d := date.MustParse("2012-02-27")
	assert.Equal(t, d.Add(2), date.MustParse("2012-02-29"))
	assert.Equal(t, d.Add(3), date.MustParse("2012-03-01"))
	assert.Equal(t, d.Add(-58), date.MustParse("2011-12-31"))
	assert.Equal(t, date.MustParse("2013-02-27").Sub(d), 366)
	assert.Equal(t, d.Sub(date.MustParse("2013-02-27")), -366)
}

func TestFromTime(t *testing.T) {
	loc := time.FixedZone("east", 10*60*60)
	ts := time.Date(2012, time.April, 7, 1, 0, 0, 0, loc)
	assert.Equal(t, date.FromTime(ts), date.MustParse("2012-04-07"))
	assert.Equal(t, date.FromTime(ts.UTC()), date.MustParse("2012-04-06"))
}

func TestParse(t *testing.T) {
	for _, tc := range []struct {
		val  string
		want string
	}{
		{"2012-04-07", "2012-04-07"},
		{"0001-01-01", "0001-01-01"},
		{"2000-02-29", "2000-02-29"},
	} {
		d, err := date.Parse(tc.val)
		assert.NoError(t, err)
		assert.Equal(t, d.String(), tc.want)
	}

	for _, val := range []string{"", "2012-4-7", "2012-02-30", "2011-02-29", "07/04/2012"} {
		_, err := date.Parse(val)
		assert.ErrorIs(t, err, date.ErrInvalidDate)
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic")
		}
	}()
	date.MustParse("2012-13-01")
}

func TestWeekday(t *testing.T) {
	// 2012-04-02 was a Monday.
	monday := date.MustParse("2012-04-02")
	names := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	for i, name := range names {
		w := monday.Add(i).Weekday()
		assert.Equal(t, w, date.Weekday(i))
		assert.Equal(t, w.String(), name)
		assert.Equal(t, w.Valid(), true)
	}
	assert.Equal(t, monday.Add(7).Weekday(), date.Monday)
	assert.Equal(t, monday.Add(-1).Weekday(), date.Sunday)
	assert.Equal(t, date.Weekday(7).Valid(), false)
	assert.Equal(t, date.Weekday(-1).String(), "Weekday(-1)")
}

func TestDateOrdering(t *testing.T) {
	dates := map[date.Date]string{}
	for _, s := range []string{"2011-12-31", "2012-01-01", "2012-01-02"} {
		dates[date.MustParse(s)] = s
	}
	assert.Equal(t, len(dates), 3)
	assert.Equal(t, date.MustParse("2011-12-31") < date.MustParse("2012-01-01"), true)
	assert.Equal(t, dates[date.MustParse("2012-01-01")], "2012-01-01")
}
