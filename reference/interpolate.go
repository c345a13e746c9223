package reference

// Lerp linearly interpolates between a and b by ratio.
func Lerp(a, b, ratio float64) float64 {
	return a + (b-a)*ratio
}

// RowForAge returns the reference row for ageMonths, interpolating linearly
// between the two bracketing rows when the age falls between table ages.
//
// rows must belong to a single sex and be sorted ascending by AgeMonths.
// The boolean is false only when rows is empty.
//
// Resolution rules:
//   - exact match: the table row itself, without interpolation
//   - only a lower bound: the last row at or below the age
//   - only an upper bound: the first row at or above the age
//   - otherwise: every numeric field interpolated, AgeMonths set to ageMonths
func RowForAge(rows []Row, ageMonths float64) (Row, bool) {
	if len(rows) == 0 {
		return Row{}, false
	}

	var lower, upper *Row
	for i := range rows {
		r := &rows[i]
		if r.AgeMonths <= ageMonths {
			lower = r
		}
		if upper == nil && r.AgeMonths >= ageMonths {
			upper = r
		}
	}

	switch {
	case lower == nil && upper == nil:
		return Row{}, false
	case upper == nil:
		return *lower, true
	case lower == nil:
		return *upper, true
	case lower.AgeMonths == upper.AgeMonths:
		return *lower, true
	}

	ratio := (ageMonths - lower.AgeMonths) / (upper.AgeMonths - lower.AgeMonths)
	lo, hi := lower.fields(), upper.fields()
	var mixed [3 + PercentileColumns]float64
	for i := range lo {
		mixed[i] = Lerp(lo[i], hi[i], ratio)
	}

	out := Row{Sex: lower.Sex, AgeMonths: ageMonths}
	out.setFields(mixed)

	return out, true
}
