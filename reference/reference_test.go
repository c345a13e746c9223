package reference

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/growth/format"
)

// twoRowTable has ages 0 and 12 with P50 3.5 and 10.0.
func twoRowTable() []Row {
	return []Row{
		{Sex: format.Male, AgeMonths: 0, L: 1, M: 3.5, S: 0.1, P3: 2.8, P5: 2.9, P10: 3.0, P25: 3.2, P50: 3.5, P75: 3.8, P90: 4.0, P95: 4.1, P97: 4.2},
		{Sex: format.Male, AgeMonths: 12, L: 0, M: 10.0, S: 0.2, P3: 8.0, P5: 8.3, P10: 8.7, P25: 9.3, P50: 10.0, P75: 10.8, P90: 11.4, P95: 11.8, P97: 12.0},
	}
}

func TestRowForAge_Interpolates(t *testing.T) {
	row, ok := RowForAge(twoRowTable(), 6)
	require.True(t, ok)
	require.Equal(t, 6.75, row.P50)
	require.Equal(t, 6.0, row.AgeMonths)
	require.InDelta(t, 0.5, row.L, 1e-12)
	require.InDelta(t, 6.75, row.M, 1e-12)
	require.InDelta(t, 0.15, row.S, 1e-12)
	require.InDelta(t, 5.4, row.P3, 1e-12)
	require.InDelta(t, 8.1, row.P97, 1e-12)
	require.Equal(t, format.Male, row.Sex)
}

func TestRowForAge_ExactMatch(t *testing.T) {
	rows := twoRowTable()
	for _, want := range rows {
		got, ok := RowForAge(rows, want.AgeMonths)
		require.True(t, ok)
		require.Equal(t, want, got)
	}
}

func TestRowForAge_Bounds(t *testing.T) {
	rows := twoRowTable()

	t.Run("above range returns last row", func(t *testing.T) {
		got, ok := RowForAge(rows, 40)
		require.True(t, ok)
		require.Equal(t, rows[1], got)
	})

	t.Run("below range returns first row", func(t *testing.T) {
		shifted := []Row{rows[1]}
		got, ok := RowForAge(shifted, 3)
		require.True(t, ok)
		require.Equal(t, rows[1], got)
	})

	t.Run("empty table", func(t *testing.T) {
		_, ok := RowForAge(nil, 3)
		require.False(t, ok)
	})
}

func TestRowForAge_DuplicateAges(t *testing.T) {
	rows := []Row{
		{AgeMonths: 0, M: 3},
		{AgeMonths: 1, M: 4},
		{AgeMonths: 1, M: 4.5},
		{AgeMonths: 2, M: 5},
	}

	got, ok := RowForAge(rows, 1)
	require.True(t, ok)
	// lower is the last row at or below the age and wins on an exact match
	require.Equal(t, 4.5, got.M)
}

func TestLerp(t *testing.T) {
	require.Equal(t, 3.5, Lerp(3.5, 10, 0))
	require.Equal(t, 10.0, Lerp(3.5, 10, 1))
	require.Equal(t, 6.75, Lerp(3.5, 10, 0.5))
}

func TestRowHelpers(t *testing.T) {
	row := twoRowTable()[0]
	require.True(t, row.Usable())
	require.Equal(t, [PercentileColumns]float64{2.8, 2.9, 3.0, 3.2, 3.5, 3.8, 4.0, 4.1, 4.2}, row.Percentiles())

	var copied Row
	copied.SetPercentiles(row.Percentiles())
	require.Equal(t, row.Percentiles(), copied.Percentiles())

	require.False(t, Row{M: 0, S: 0.1}.Usable())
	require.False(t, Row{M: 3, S: 0}.Usable())
}
