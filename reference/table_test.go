package reference

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/growth/errs"
	"github.com/arloliu/growth/format"
)

func mixedTable() Table {
	return Table{
		Type: format.Weight,
		Rows: []Row{
			{Sex: format.Male, AgeMonths: 0, M: 3.5, S: 0.15},
			{Sex: format.Male, AgeMonths: 0.5, M: 4.0, S: 0.14},
			{Sex: format.Female, AgeMonths: 0, M: 3.4, S: 0.14},
			{Sex: format.Female, AgeMonths: 0.5, M: 3.8, S: 0.13},
			{Sex: format.Male, AgeMonths: 1.5, M: 4.9, S: 0.13},
		},
	}
}

func TestTable_ForSex(t *testing.T) {
	table := mixedTable()

	male := table.ForSex(format.Male)
	require.Len(t, male, 3)
	require.Equal(t, []float64{0, 0.5, 1.5}, []float64{male[0].AgeMonths, male[1].AgeMonths, male[2].AgeMonths})

	female := table.ForSex(format.Female)
	require.Len(t, female, 2)

	male[0].M = 99
	require.Equal(t, 3.5, table.Rows[0].M, "ForSex must copy")

	require.Equal(t, []format.Sex{format.Male, format.Female}, table.Sexes())
}

func TestMaxAge(t *testing.T) {
	maxAge, ok := MaxAge(mixedTable().ForSex(format.Male))
	require.True(t, ok)
	require.Equal(t, 1.5, maxAge)

	_, ok = MaxAge(nil)
	require.False(t, ok)
}

func TestTable_Validate(t *testing.T) {
	require.NoError(t, mixedTable().Validate())

	tests := []struct {
		name   string
		mutate func(*Table)
		want   error
	}{
		{"invalid type", func(tb *Table) { tb.Type = 0 }, errs.ErrInvalidTypeName},
		{"empty", func(tb *Table) { tb.Rows = nil }, errs.ErrEmptyTable},
		{"unknown sex", func(tb *Table) { tb.Rows[2].Sex = 7 }, errs.ErrInvalidSex},
		{"negative age", func(tb *Table) { tb.Rows[0].AgeMonths = -1 }, errs.ErrNegativeAge},
		{"unsorted", func(tb *Table) { tb.Rows[4].AgeMonths = 0.25 }, errs.ErrUnsortedTable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := mixedTable()
			tt.mutate(&table)
			require.ErrorIs(t, table.Validate(), tt.want)
		})
	}
}

func TestCatalog(t *testing.T) {
	length := Table{Type: format.Length, Rows: []Row{{Sex: format.Female, AgeMonths: 0, M: 49, S: 0.04}}}

	catalog, err := NewCatalog(mixedTable(), length)
	require.NoError(t, err)
	require.Equal(t, []string{"weight/male", "weight/female", "length/female"}, catalog.Keys())

	keys := catalog.Keys()
	keys[0] = "head_circumference/male"
	require.Equal(t, "weight/male", catalog.Keys()[0], "Keys returns a copy")

	rows, ok := catalog.Lookup(format.Weight, format.Female)
	require.True(t, ok)
	require.Len(t, rows, 2)

	_, ok = catalog.Lookup(format.Length, format.Male)
	require.False(t, ok)
	_, ok = catalog.Lookup(format.HeadCircumference, format.Female)
	require.False(t, ok)

	require.Equal(t, KeyID(format.Weight, format.Male), KeyID(format.Weight, format.Male))
	require.NotEqual(t, KeyID(format.Weight, format.Male), KeyID(format.Weight, format.Female))
}

func TestCatalog_Errors(t *testing.T) {
	_, err := NewCatalog(mixedTable(), mixedTable())
	require.ErrorIs(t, err, errs.ErrDuplicateTable)

	_, err = NewCatalog(Table{Type: format.Length})
	require.ErrorIs(t, err, errs.ErrEmptyTable)

	var nilCatalog *Catalog
	_, ok := nilCatalog.Lookup(format.Weight, format.Male)
	require.False(t, ok)
	require.Nil(t, nilCatalog.Keys())
}
