package recurrence

import "fmt"

// floorDiv divides rounding towards negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// floorMod returns a result with the sign of b.
func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}

// ordinalString returns "1st", "2nd", "last", "2nd-to-last" and so on.
func ordinalString(n int) string {
	switch {
	case n == -1:
		return "last"
	case n < 0:
		return ordinalString(-n) + "-to-last"
	}
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
