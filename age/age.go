// Package age computes the fractional age in months used to key reference
// table lookups.
package age

import "time"

// InMonths returns the continuous age in months between birth and event.
//
// Whole months are counted from the calendar fields, one fewer when the event
// day precedes the birth day. The remainder is the day offset divided by the
// number of days in the event's month. Month lengths differ, so the result is
// an approximation; the reference tables are keyed the same way.
//
// Each time is read in its own location. A negative result is clamped to 0.
func InMonths(birth, event time.Time) float64 {
	by, bm, bd := birth.Date()
	ey, em, ed := event.Date()

	whole := (ey-by)*12 + int(em-bm)
	if ed < bd {
		whole--
	}

	dim := DaysInMonth(ey, em)
	var frac float64
	if ed >= bd {
		frac = float64(ed-bd) / float64(dim)
	} else {
		frac = float64(dim+ed-bd) / float64(dim)
	}

	return max(0, float64(whole)+frac)
}

// DaysInMonth returns the number of days in the given calendar month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
