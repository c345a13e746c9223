package chart

import (
	"cmp"
	"math"
	"slices"

	"github.com/arloliu/growth/format"
	"github.com/arloliu/growth/reference"
	"github.com/arloliu/growth/units"
)

// HalfMonth rounds an age to the nearest half month. It is the bucket key
// used to align measurements with reference ticks.
func HalfMonth(ageMonths float64) float64 {
	return math.Round(ageMonths*2) / 2
}

// Build merges reference curves and annotated measurements into one series
// sorted ascending by age.
//
// Every reference row aged at most maxAgeMonths becomes a tick with its P3..P97
// curves converted to displayUnit. Measurements are bucketed by HalfMonth of
// their age; when two measurements share a bucket only the youngest is kept
// (see Dropped). A bucket whose key equals the rounded age of a tick is
// attached to that tick. Any other bucket gets a new tick at the
// measurement's exact age with curves interpolated between the two
// bracketing reference ticks, or is omitted when the age is outside the
// tick range.
func Build(rows []reference.Row, annotated []Annotated, displayUnit string, t format.MeasurementType, maxAgeMonths float64) []Point {
	base := make([]Point, 0, len(rows))
	for _, r := range rows {
		if r.AgeMonths > maxAgeMonths {
			continue
		}

		p := Point{AgeMonths: r.AgeMonths}
		for i, v := range r.Percentiles() {
			p.Curves[i] = units.FromCanonical(v, t, displayUnit)
		}
		base = append(base, p)
	}

	buckets, keys, _ := bucketize(annotated)
	consumed := make(map[float64]bool, len(buckets))

	for i := range base {
		key := HalfMonth(base[i].AgeMonths)
		if m, ok := buckets[key]; ok && !consumed[key] {
			base[i].Measurement = attach(m)
			consumed[key] = true
		}
	}

	points := slices.Clone(base)
	for _, key := range keys {
		if consumed[key] {
			continue
		}

		m := buckets[key]
		p, ok := interpolateTick(base, m.AgeMonths)
		if !ok {
			continue
		}
		p.Measurement = attach(m)
		points = append(points, p)
	}

	slices.SortStableFunc(points, func(a, b Point) int {
		return cmp.Compare(a.AgeMonths, b.AgeMonths)
	})

	return points
}

// Dropped returns the measurements that Build discards because an earlier
// (younger) measurement already occupies their half-month bucket.
func Dropped(annotated []Annotated) []Annotated {
	_, _, dropped := bucketize(annotated)

	return dropped
}

// bucketize assigns measurements to half-month buckets in ascending age
// order. The first measurement written to a bucket wins. keys lists the
// occupied buckets in ascending order.
func bucketize(annotated []Annotated) (map[float64]Annotated, []float64, []Annotated) {
	sorted := slices.Clone(annotated)
	slices.SortStableFunc(sorted, func(a, b Annotated) int {
		return cmp.Compare(a.AgeMonths, b.AgeMonths)
	})

	buckets := make(map[float64]Annotated, len(sorted))
	keys := make([]float64, 0, len(sorted))
	var dropped []Annotated

	for _, m := range sorted {
		key := HalfMonth(m.AgeMonths)
		if _, taken := buckets[key]; taken {
			dropped = append(dropped, m)
			continue
		}
		buckets[key] = m
		keys = append(keys, key)
	}

	return buckets, keys, dropped
}

// interpolateTick builds a tick at ageMonths from the bracketing base ticks.
// It fails when ageMonths lies outside the tick range or coincides with an
// existing tick.
func interpolateTick(base []Point, ageMonths float64) (Point, bool) {
	var lower, upper *Point
	for i := range base {
		p := &base[i]
		if p.AgeMonths <= ageMonths {
			lower = p
		}
		if upper == nil && p.AgeMonths >= ageMonths {
			upper = p
		}
	}

	if lower == nil || upper == nil || lower.AgeMonths == ageMonths || upper.AgeMonths == ageMonths {
		return Point{}, false
	}

	ratio := (ageMonths - lower.AgeMonths) / (upper.AgeMonths - lower.AgeMonths)
	p := Point{AgeMonths: ageMonths}
	for i := range p.Curves {
		p.Curves[i] = reference.Lerp(lower.Curves[i], upper.Curves[i], ratio)
	}

	return p, true
}

func attach(m Annotated) *PointMeasurement {
	return &PointMeasurement{
		Value:      m.DisplayValue,
		Percentile: m.Percentile,
		Date:       m.Date,
	}
}
