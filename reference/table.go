package reference

import (
	"fmt"
	"slices"

	"github.com/arloliu/growth/errs"
	"github.com/arloliu/growth/format"
)

// Table is the reference dataset of one measurement type, covering one or
// both sexes.
type Table struct {
	Type format.MeasurementType `json:"type" yaml:"type"`
	Rows []Row                  `json:"rows" yaml:"rows"`
}

// ForSex returns the rows of the given sex in table order.
//
// The returned slice is a copy; callers may keep it without aliasing the
// table.
func (t Table) ForSex(sex format.Sex) []Row {
	out := make([]Row, 0, len(t.Rows))
	for _, r := range t.Rows {
		if r.Sex == sex {
			out = append(out, r)
		}
	}

	return out
}

// Sexes returns the distinct sexes present in the table, Male first.
func (t Table) Sexes() []format.Sex {
	var out []format.Sex
	for _, s := range []format.Sex{format.Male, format.Female} {
		if slices.ContainsFunc(t.Rows, func(r Row) bool { return r.Sex == s }) {
			out = append(out, s)
		}
	}

	return out
}

// MaxAge returns the largest AgeMonths in rows and false when rows is empty.
func MaxAge(rows []Row) (float64, bool) {
	if len(rows) == 0 {
		return 0, false
	}

	maxAge := rows[0].AgeMonths
	for _, r := range rows[1:] {
		maxAge = max(maxAge, r.AgeMonths)
	}

	return maxAge, true
}

// Validate checks the table invariants: a supported measurement type, at
// least one row, a known sex on every row, non-negative ages, and ascending
// ages within each sex.
func (t Table) Validate() error {
	if !t.Type.Valid() {
		return errs.ErrInvalidTypeName
	}
	if len(t.Rows) == 0 {
		return errs.ErrEmptyTable
	}

	last := map[format.Sex]float64{}
	for i, r := range t.Rows {
		if !r.Sex.Valid() {
			return fmt.Errorf("row %d: %w", i, errs.ErrInvalidSex)
		}
		if r.AgeMonths < 0 {
			return fmt.Errorf("row %d: %w", i, errs.ErrNegativeAge)
		}
		if prev, seen := last[r.Sex]; seen && r.AgeMonths < prev {
			return fmt.Errorf("row %d (%s, age %.2f): %w", i, r.Sex, r.AgeMonths, errs.ErrUnsortedTable)
		}
		last[r.Sex] = r.AgeMonths
	}

	return nil
}
