package chart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/growth/format"
	"github.com/arloliu/growth/reference"
)

var birth = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// testRows returns a male weight table at ages 0, 0.5, 1.5 ... 35.5, 36 with
// M = 3.5 + age/4 and curves spaced 0.1 kg apart around P50.
func testRows() []reference.Row {
	ages := []float64{0, 0.5}
	for a := 1.5; a <= 35.5; a++ {
		ages = append(ages, a)
	}
	ages = append(ages, 36)

	rows := make([]reference.Row, 0, len(ages))
	for _, a := range ages {
		m := 3.5 + a/4
		r := reference.Row{Sex: format.Male, AgeMonths: a, L: 1, M: m, S: 0.1}
		var curves [reference.PercentileColumns]float64
		for i := range curves {
			curves[i] = m + float64(i-4)*0.1
		}
		r.SetPercentiles(curves)
		rows = append(rows, r)
	}

	return rows
}

func at(months int, days int) time.Time {
	return birth.AddDate(0, months, days)
}

func TestAnnotate(t *testing.T) {
	records := []Measurement{
		{Date: at(6, 0), Type: format.Weight, Value: 10, Unit: "LB"},
		{Date: at(2, 0), Type: format.Weight, Value: 4, Unit: "kg"},
		{Date: at(3, 0), Type: format.Length, Value: 60, Unit: "CM"},
	}

	got := Annotate(records, testRows(), format.Weight, birth, "LB")
	require.Len(t, got, 2)

	require.Equal(t, 2.0, got[0].AgeMonths)
	require.Equal(t, 4.0, got[0].CanonicalValue)
	require.InDelta(t, 4/0.453592, got[0].DisplayValue, 1e-9)
	require.Equal(t, at(2, 0), got[0].Date)

	require.Equal(t, 6.0, got[1].AgeMonths)
	require.InDelta(t, 4.53592, got[1].CanonicalValue, 1e-9)
	require.InDelta(t, 10.0, got[1].DisplayValue, 1e-9)

	// age 2 interpolates between 1.5 and 2.5: M = 4.0, so 4 kg is the median
	require.Equal(t, 50.0, got[0].Percentile)
	require.Greater(t, got[1].Percentile, 0.1)
	require.Less(t, got[1].Percentile, 50.0)
}

func TestAnnotate_NoCoverageFallsBackToMedian(t *testing.T) {
	records := []Measurement{
		{Date: at(1, 0), Type: format.HeadCircumference, Value: 14, Unit: "in"},
		{Date: at(48, 0), Type: format.HeadCircumference, Value: 50, Unit: "cm"},
	}

	got := Annotate(records, nil, format.HeadCircumference, birth, "CM")
	require.Len(t, got, 2, "an empty table keeps every point")
	for _, a := range got {
		require.Equal(t, 50.0, a.Percentile)
	}
	require.InDelta(t, 35.56, got[0].DisplayValue, 1e-9)
}

func TestAnnotate_DegenerateRow(t *testing.T) {
	rows := []reference.Row{
		{Sex: format.Female, AgeMonths: 0, L: 1, M: 0, S: 0.1},
		{Sex: format.Female, AgeMonths: 12, L: 1, M: 9, S: 0},
	}
	records := []Measurement{{Date: at(12, 0), Type: format.Weight, Value: 11, Unit: "KG"}}

	got := Annotate(records, rows, format.Weight, birth, "KG")
	require.Len(t, got, 1)
	require.Equal(t, 50.0, got[0].Percentile)
}

func TestAnnotate_AgeDomain(t *testing.T) {
	records := []Measurement{
		{Date: at(37, 0), Type: format.Weight, Value: 15, Unit: "KG"},
		{Date: at(36, 10), Type: format.Weight, Value: 15, Unit: "KG"},
		{Date: at(36, 0), Type: format.Weight, Value: 15, Unit: "KG"},
		{Date: birth.AddDate(0, 0, -5), Type: format.Weight, Value: 3, Unit: "KG"},
	}

	got := Annotate(records, testRows(), format.Weight, birth, "KG")
	require.Len(t, got, 3)
	require.Equal(t, 0.0, got[0].AgeMonths, "a date before birth clamps to age 0")
	require.Equal(t, 36.0, got[1].AgeMonths)
	require.InDelta(t, 36+10.0/31, got[2].AgeMonths, 1e-12)

	strict, err := NewAnnotator(WithAgeBuffer(0))
	require.NoError(t, err)
	got = strict.Annotate(records, testRows(), format.Weight, birth, "KG")
	require.Len(t, got, 2)

	wide, err := NewAnnotator(WithAgeBuffer(2))
	require.NoError(t, err)
	got = wide.Annotate(records, testRows(), format.Weight, birth, "KG")
	require.Len(t, got, 4)
}

func TestAnnotate_StableOrder(t *testing.T) {
	records := []Measurement{
		{Date: at(4, 0), Type: format.Weight, Value: 6.1, Unit: "KG"},
		{Date: at(1, 0), Type: format.Weight, Value: 4.4, Unit: "KG"},
		{Date: at(4, 0), Type: format.Weight, Value: 6.3, Unit: "KG"},
	}

	got := Annotate(records, testRows(), format.Weight, birth, "KG")
	require.Len(t, got, 3)
	require.Equal(t, []float64{4.4, 6.1, 6.3}, []float64{got[0].CanonicalValue, got[1].CanonicalValue, got[2].CanonicalValue})
}

func TestNewAnnotator_InvalidBuffer(t *testing.T) {
	_, err := NewAnnotator(WithAgeBuffer(-0.5))
	require.Error(t, err)
}

func TestBuild_BaseTicks(t *testing.T) {
	rows := testRows()

	points := Build(rows, nil, "KG", format.Weight, 36)
	require.Len(t, points, len(rows))
	for i, p := range points {
		require.Equal(t, rows[i].AgeMonths, p.AgeMonths)
		require.Equal(t, rows[i].Percentiles(), p.Curves)
		require.False(t, p.HasMeasurement())
	}

	limited := Build(rows, nil, "KG", format.Weight, 2.5)
	require.Len(t, limited, 4)
	require.Equal(t, 2.5, limited[len(limited)-1].AgeMonths)
}

func TestBuild_DisplayUnit(t *testing.T) {
	rows := testRows()
	points := Build(rows, nil, "LB", format.Weight, 36)

	for i, p := range points {
		for c, v := range rows[i].Percentiles() {
			require.InDelta(t, v/0.453592, p.Curves[c], 1e-9)
		}
	}
}

func TestBuild_AttachesAlignedMeasurement(t *testing.T) {
	rows := testRows()
	annotated := []Annotated{
		{AgeMonths: 1.6, DisplayValue: 4.1, Percentile: 60.2, Date: at(1, 18)},
	}

	points := Build(rows, annotated, "KG", format.Weight, 36)
	require.Len(t, points, len(rows))

	tick := points[2]
	require.Equal(t, 1.5, tick.AgeMonths)
	require.True(t, tick.HasMeasurement())
	require.Equal(t, 4.1, tick.Measurement.Value)
	require.Equal(t, 60.2, tick.Measurement.Percentile)
	require.Equal(t, at(1, 18), tick.Measurement.Date)
}

func TestBuild_InsertsInterpolatedTick(t *testing.T) {
	rows := testRows()
	base := Build(rows, nil, "KG", format.Weight, 36)

	annotated := []Annotated{{AgeMonths: 2.0, DisplayValue: 4.2, Percentile: 71.3, Date: at(2, 0)}}
	points := Build(rows, annotated, "KG", format.Weight, 36)
	require.Len(t, points, len(base)+1)

	var inserted Point
	for _, p := range points {
		if p.AgeMonths == 2.0 {
			inserted = p
		}
	}
	require.True(t, inserted.HasMeasurement())
	require.Equal(t, 4.2, inserted.Measurement.Value)

	// halfway between the 1.5 and 2.5 ticks
	for c := range inserted.Curves {
		want := (rows[2].Percentiles()[c] + rows[3].Percentiles()[c]) / 2
		require.InDelta(t, want, inserted.Curves[c], 1e-12)
	}

	requireStrictlySorted(t, points)
}

func TestBuild_CollisionKeepsFirst(t *testing.T) {
	annotated := []Annotated{
		{AgeMonths: 3.1, DisplayValue: 5.0, Percentile: 40},
		{AgeMonths: 2.9, DisplayValue: 4.8, Percentile: 45},
	}

	points := Build(testRows(), annotated, "KG", format.Weight, 36)

	var withMeasurement []Point
	for _, p := range points {
		if p.HasMeasurement() {
			withMeasurement = append(withMeasurement, p)
		}
	}
	require.Len(t, withMeasurement, 1)
	require.Equal(t, 2.9, withMeasurement[0].AgeMonths)
	require.Equal(t, 4.8, withMeasurement[0].Measurement.Value)

	dropped := Dropped(annotated)
	require.Len(t, dropped, 1)
	require.Equal(t, 3.1, dropped[0].AgeMonths)
}

func TestBuild_OmitsOutOfRange(t *testing.T) {
	rows := testRows()
	annotated := []Annotated{
		{AgeMonths: 30.2, DisplayValue: 12},
		{AgeMonths: 36.3, DisplayValue: 14},
	}

	points := Build(rows, annotated, "KG", format.Weight, 24)
	for _, p := range points {
		require.LessOrEqual(t, p.AgeMonths, 24.0)
		require.False(t, p.HasMeasurement())
	}
	require.Empty(t, Dropped(annotated))
}

func TestBuild_EndToEnd(t *testing.T) {
	rows := testRows()
	records := []Measurement{
		{Date: at(0, 0), Type: format.Weight, Value: 7.7, Unit: "LB"},
		{Date: at(2, 0), Type: format.Weight, Value: 9.0, Unit: "LB"},
		{Date: at(6, 15), Type: format.Weight, Value: 16.0, Unit: "LB"},
		{Date: at(12, 0), Type: format.Weight, Value: 21.5, Unit: "LB"},
	}

	annotated := Annotate(records, rows, format.Weight, birth, "LB")
	require.Len(t, annotated, 4)

	points := Build(rows, annotated, "LB", format.Weight, 36)
	requireStrictlySorted(t, points)

	count := 0
	for _, p := range points {
		if p.HasMeasurement() {
			count++
		}
	}
	require.Equal(t, 4, count)
	// ages 2.0 and 12.0 are not table ages, ages 0 and 6.5 are
	require.Len(t, points, len(rows)+2)

	again := Build(rows, Annotate(records, rows, format.Weight, birth, "LB"), "LB", format.Weight, 36)
	require.Equal(t, points, again)
}

func TestHalfMonth(t *testing.T) {
	require.Equal(t, 1.5, HalfMonth(1.6))
	require.Equal(t, 2.0, HalfMonth(1.75))
	require.Equal(t, 2.0, HalfMonth(2.2))
	require.Equal(t, 0.0, HalfMonth(0.2))
}

func requireStrictlySorted(t *testing.T, points []Point) {
	t.Helper()
	for i := 1; i < len(points); i++ {
		require.Less(t, points[i-1].AgeMonths, points[i].AgeMonths)
	}
}
