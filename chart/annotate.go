package chart

import (
	"cmp"
	"math"
	"slices"
	"time"

	"github.com/arloliu/growth/age"
	"github.com/arloliu/growth/errs"
	"github.com/arloliu/growth/format"
	"github.com/arloliu/growth/internal/options"
	"github.com/arloliu/growth/lms"
	"github.com/arloliu/growth/reference"
	"github.com/arloliu/growth/units"
)

// DefaultAgeBuffer is how far past the last reference age a measurement may
// lie and still be charted: half a month, so a 36-month table covers 36.5.
const DefaultAgeBuffer = 0.5

// AnnotatorConfig holds Annotator settings.
type AnnotatorConfig struct {
	AgeBuffer float64
}

// AnnotateOption configures an Annotator.
type AnnotateOption = options.Option[*AnnotatorConfig]

// WithAgeBuffer sets the months allowed past the last reference age.
func WithAgeBuffer(months float64) AnnotateOption {
	return options.New(func(cfg *AnnotatorConfig) error {
		if months < 0 || math.IsNaN(months) {
			return errs.ErrInvalidAgeBuffer
		}
		cfg.AgeBuffer = months

		return nil
	})
}

// Annotator maps measurements onto a reference table. It holds only its
// configuration and is safe for concurrent use.
type Annotator struct {
	cfg AnnotatorConfig
}

// NewAnnotator creates an Annotator.
func NewAnnotator(opts ...AnnotateOption) (*Annotator, error) {
	a := &Annotator{cfg: AnnotatorConfig{AgeBuffer: DefaultAgeBuffer}}
	if err := options.Apply(&a.cfg, opts...); err != nil {
		return nil, err
	}

	return a, nil
}

var defaultAnnotator = &Annotator{cfg: AnnotatorConfig{AgeBuffer: DefaultAgeBuffer}}

// Annotate runs the default Annotator.
func Annotate(records []Measurement, rows []reference.Row, t format.MeasurementType, birth time.Time, displayUnit string) []Annotated {
	return defaultAnnotator.Annotate(records, rows, t, birth, displayUnit)
}

// Annotate places every record of type t on the reference rows of one sex.
//
// For each record it computes the age in months from birth, the canonical
// value and the percentile of the interpolated reference row, then converts
// the value to displayUnit. A record with no reference row is kept at the
// 50th percentile. Records aged beyond the last reference age plus the age
// buffer are dropped; with an empty table there is no upper bound.
//
// The result is sorted ascending by age; records of equal age keep their
// input order.
func (a *Annotator) Annotate(records []Measurement, rows []reference.Row, t format.MeasurementType, birth time.Time, displayUnit string) []Annotated {
	maxAge, bounded := reference.MaxAge(rows)
	maxAge += a.cfg.AgeBuffer

	out := make([]Annotated, 0, len(records))
	for _, rec := range records {
		if rec.Type != t {
			continue
		}

		ageMonths := age.InMonths(birth, rec.Date)
		if ageMonths < 0 || (bounded && ageMonths > maxAge) {
			continue
		}

		canonical := units.ToCanonical(rec.Value, rec.Unit, t)
		percentile := lms.MedianPercentile
		if row, ok := reference.RowForAge(rows, ageMonths); ok {
			percentile = lms.PercentileForRow(canonical, row)
		}

		out = append(out, Annotated{
			AgeMonths:      ageMonths,
			CanonicalValue: canonical,
			DisplayValue:   units.FromCanonical(canonical, t, displayUnit),
			Percentile:     percentile,
			Date:           rec.Date,
		})
	}

	slices.SortStableFunc(out, func(x, y Annotated) int {
		return cmp.Compare(x.AgeMonths, y.AgeMonths)
	})

	return out
}
