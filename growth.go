// Package growth computes CDC growth-chart percentiles for infant weight,
// length and head circumference, and builds the chart series that overlay a
// child's measurements on the reference percentile curves.
//
// The computation is a pure pipeline over caller-supplied reference rows:
//
//	measurements ──▶ age + unit normalization ──▶ LMS percentile
//	             ──▶ half-month merge with reference ticks ──▶ chart series
//
// # Basic Usage
//
// Loading a reference table and charting one measurement type:
//
//	f, _ := os.Open("wtageinf.csv")
//	table, _ := reference.ParseCSV(f, format.Weight)
//
//	records := []chart.Measurement{
//	    {Date: day(2024, 7, 15), Type: format.Weight, Value: 16.2, Unit: "LB"},
//	}
//	series := growth.Chart(table.ForSex(format.Male), records, format.Weight,
//	    day(2024, 1, 15), "LB", 36)
//
//	for _, p := range series.Points {
//	    fmt.Println(p.AgeMonths, p.Curves[4], p.HasMeasurement())
//	}
//
// # Package Structure
//
// This package wraps the subpackages for the most common use cases:
//
//   - units: unit normalization and conversion
//   - age: fractional age in months
//   - reference: reference rows, interpolation, CSV and binary table storage
//   - lms: LMS z-scores and percentiles
//   - chart: measurement annotation and series building
//
// For fine-grained control, use the subpackages directly.
package growth

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/arloliu/growth/age"
	"github.com/arloliu/growth/chart"
	"github.com/arloliu/growth/errs"
	"github.com/arloliu/growth/format"
	"github.com/arloliu/growth/internal/hash"
	"github.com/arloliu/growth/lms"
	"github.com/arloliu/growth/reference"
	"github.com/arloliu/growth/units"
)

// DefaultMaxAgeMonths is the chart x-axis limit used when a Request leaves
// MaxAgeMonths unset. It matches the range of the CDC infant tables.
const DefaultMaxAgeMonths = 36.0

// Series is the chart of one measurement type.
type Series struct {
	Type      format.MeasurementType `json:"type"`
	Annotated []chart.Annotated      `json:"annotated"`
	Points    []chart.Point          `json:"points"`
}

// Fingerprint returns an xxHash64 over the numeric content of the series.
//
// Two series have the same fingerprint when their annotated measurements and
// points are bit-identical, so it can serve as a cache key for rendered
// charts.
func (s Series) Fingerprint() uint64 {
	d := hash.NewDigest()
	d.String(s.Type.String())

	d.Int(int64(len(s.Annotated)))
	for _, a := range s.Annotated {
		d.Float(a.AgeMonths)
		d.Float(a.CanonicalValue)
		d.Float(a.DisplayValue)
		d.Float(a.Percentile)
		d.Int(a.Date.UnixNano())
	}

	d.Int(int64(len(s.Points)))
	for _, p := range s.Points {
		d.Float(p.AgeMonths)
		for _, v := range p.Curves {
			d.Float(v)
		}
		if m := p.Measurement; m != nil {
			d.Int(1)
			d.Float(m.Value)
			d.Float(m.Percentile)
			d.Int(m.Date.UnixNano())
		} else {
			d.Int(0)
		}
	}

	return d.Sum64()
}

// Chart annotates records of type t against rows and builds the chart series
// with the default annotator.
//
// rows must hold a single sex sorted ascending by age. displayUnit applies to
// both the measurement values and the percentile curves.
func Chart(rows []reference.Row, records []chart.Measurement, t format.MeasurementType, birth time.Time, displayUnit string, maxAgeMonths float64) Series {
	return chartWith(nil, rows, records, t, birth, displayUnit, maxAgeMonths)
}

func chartWith(a *chart.Annotator, rows []reference.Row, records []chart.Measurement, t format.MeasurementType, birth time.Time, displayUnit string, maxAgeMonths float64) Series {
	var annotated []chart.Annotated
	if a == nil {
		annotated = chart.Annotate(records, rows, t, birth, displayUnit)
	} else {
		annotated = a.Annotate(records, rows, t, birth, displayUnit)
	}

	return Series{
		Type:      t,
		Annotated: annotated,
		Points:    chart.Build(rows, annotated, displayUnit, t, maxAgeMonths),
	}
}

// Request describes a multi-type chart computation for one child.
type Request struct {
	Records []chart.Measurement
	Birth   time.Time
	Sex     format.Sex
	// DisplayUnits maps a measurement type to its display unit. Missing
	// entries use the canonical unit of the type.
	DisplayUnits map[format.MeasurementType]string
	// MaxAgeMonths limits the chart x-axis; zero means DefaultMaxAgeMonths.
	MaxAgeMonths float64
	// Annotator overrides the default annotator when set.
	Annotator *chart.Annotator
}

// Validate checks that the request names a birth date, a known sex and a
// non-negative age limit.
func (r Request) Validate() error {
	if r.Birth.IsZero() {
		return errs.ErrMissingBirthDate
	}
	if !r.Sex.Valid() {
		return errs.ErrInvalidSex
	}
	if r.MaxAgeMonths < 0 {
		return errs.ErrInvalidMaxAge
	}

	return nil
}

// Types returns the measurement types present in the records, in
// format.MeasurementTypes order.
func (r Request) Types() []format.MeasurementType {
	var seen [format.HeadCircumference + 1]bool
	for _, rec := range r.Records {
		if rec.Type.Valid() {
			seen[rec.Type] = true
		}
	}

	var out []format.MeasurementType
	for _, t := range format.MeasurementTypes {
		if seen[t] {
			out = append(out, t)
		}
	}

	return out
}

func (r Request) displayUnit(t format.MeasurementType) string {
	if u, ok := r.DisplayUnits[t]; ok && u != "" {
		return u
	}

	return t.CanonicalUnit()
}

// ChartAll charts every measurement type present in req concurrently, one
// worker per type, looking up reference rows in catalog.
//
// A type with no table for req.Sex fails the whole call with
// errs.ErrTableNotFound. A cancelled context stops workers that have not
// started yet.
func ChartAll(ctx context.Context, catalog *reference.Catalog, req Request) (map[format.MeasurementType]Series, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	maxAge := req.MaxAgeMonths
	if maxAge == 0 {
		maxAge = DefaultMaxAgeMonths
	}

	types := req.Types()
	results := make([]Series, len(types))

	g, gctx := errgroup.WithContext(ctx)
	for i, t := range types {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			rows, ok := catalog.Lookup(t, req.Sex)
			if !ok {
				return fmt.Errorf("%s: %w", reference.Key(t, req.Sex), errs.ErrTableNotFound)
			}
			results[i] = chartWith(req.Annotator, rows, req.Records, t, req.Birth, req.displayUnit(t), maxAge)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[format.MeasurementType]Series, len(types))
	for i, t := range types {
		out[t] = results[i]
	}

	return out, nil
}

// Percentile returns the percentile of value under the LMS parameters l, m, s.
func Percentile(value, l, m, s float64) float64 {
	return lms.Percentile(value, l, m, s)
}

// AgeInMonths returns the fractional age in months between birth and event.
func AgeInMonths(birth, event time.Time) float64 {
	return age.InMonths(birth, event)
}

// ToCanonical converts value in unit to the canonical unit of t.
func ToCanonical(value float64, unit string, t format.MeasurementType) float64 {
	return units.ToCanonical(value, unit, t)
}

// FromCanonical converts a canonical value of type t to displayUnit.
func FromCanonical(value float64, t format.MeasurementType, displayUnit string) float64 {
	return units.FromCanonical(value, t, displayUnit)
}

// RowForAge returns the reference row for ageMonths, interpolating between
// bracketing rows.
func RowForAge(rows []reference.Row, ageMonths float64) (reference.Row, bool) {
	return reference.RowForAge(rows, ageMonths)
}
