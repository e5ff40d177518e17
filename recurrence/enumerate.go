package recurrence

import (
	"iter"

	"github.com/reugn/go-recur/date"
)

// EnumerateFrom returns an infinite sequence of the occurrences of r,
// starting with occurrence first and stepping one index at a time in the
// given direction. Occurrences are computed as the sequence is consumed.
func EnumerateFrom(r Recurrence, first int, dir Direction) iter.Seq[date.Date] {
	step := dir.step()
	return func(yield func(date.Date) bool) {
		for index := first; ; index += step {
			if !yield(r.OccurrenceAt(index)) {
				return
			}
		}
	}
}

// EnumerateAfter returns an infinite, strictly increasing sequence of the
// occurrences of r after the given date.
func EnumerateAfter(r Recurrence, after date.Date) iter.Seq[date.Date] {
	return func(yield func(date.Date) bool) {
		for occurrence := r.OccurrenceAfter(after); ; occurrence = r.OccurrenceAfter(occurrence) {
			if !yield(occurrence) {
				return
			}
		}
	}
}

// EnumerateAfterUntil is like EnumerateAfter but ends with the last
// occurrence strictly before until.
func EnumerateAfterUntil(r Recurrence, after, until date.Date) iter.Seq[date.Date] {
	return func(yield func(date.Date) bool) {
		for occurrence := range EnumerateAfter(r, after) {
			if occurrence >= until || !yield(occurrence) {
				return
			}
		}
	}
}
