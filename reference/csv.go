package reference

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arloliu/growth/errs"
	"github.com/arloliu/growth/format"
)

// csvColumns is the CDC reference schema, in canonical column order.
var csvColumns = []string{"sex", "agemos", "l", "m", "s", "p3", "p5", "p10", "p25", "p50", "p75", "p90", "p95", "p97"}

// ParseCSV reads a CDC LMS reference table.
//
// The header must contain the columns Sex, Agemos, L, M, S and P3 through
// P97, in any order and any letter case; extra columns are ignored. Sex uses
// the CDC codes 1 (male) and 2 (female) or the names accepted by
// format.ParseSex. Rows are returned in file order and the resulting table
// is validated.
func ParseCSV(r io.Reader, t format.MeasurementType) (Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return Table{}, fmt.Errorf("%w: missing header", errs.ErrInvalidCSV)
	}
	if err != nil {
		return Table{}, fmt.Errorf("%w: %w", errs.ErrInvalidCSV, err)
	}

	index, err := columnIndex(header)
	if err != nil {
		return Table{}, err
	}

	table := Table{Type: t}
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Table{}, fmt.Errorf("%w: %w", errs.ErrInvalidCSV, err)
		}
		if isBlank(record) {
			continue
		}

		line, _ := cr.FieldPos(0)
		row, err := parseRecord(record, index)
		if err != nil {
			return Table{}, fmt.Errorf("%w: line %d: %w", errs.ErrInvalidCSV, line, err)
		}
		table.Rows = append(table.Rows, row)
	}

	if err := table.Validate(); err != nil {
		return Table{}, err
	}

	return table, nil
}

func columnIndex(header []string) ([]int, error) {
	pos := make(map[string]int, len(header))
	for i, name := range header {
		pos[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))] = i
	}

	index := make([]int, len(csvColumns))
	for i, col := range csvColumns {
		p, ok := pos[col]
		if !ok {
			return nil, fmt.Errorf("%w: %s", errs.ErrMissingColumn, col)
		}
		index[i] = p
	}

	return index, nil
}

func parseRecord(record []string, index []int) (Row, error) {
	field := func(i int) (string, error) {
		p := index[i]
		if p >= len(record) {
			return "", fmt.Errorf("%w: %s", errs.ErrMissingColumn, csvColumns[i])
		}

		return strings.TrimSpace(record[p]), nil
	}

	sexText, err := field(0)
	if err != nil {
		return Row{}, err
	}
	sex, err := format.ParseSex(sexText)
	if err != nil {
		return Row{}, fmt.Errorf("%q: %w", sexText, err)
	}

	var values [1 + 3 + PercentileColumns]float64
	for i := range values {
		text, err := field(i + 1)
		if err != nil {
			return Row{}, err
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Row{}, fmt.Errorf("column %s: %w", csvColumns[i+1], err)
		}
		values[i] = v
	}

	row := Row{Sex: sex, AgeMonths: values[0]}
	row.setFields([3 + PercentileColumns]float64(values[1:]))

	return row, nil
}

func isBlank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}

	return true
}

// WriteCSV writes the table in the CDC schema with a header row.
func WriteCSV(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	header := []string{"Sex", "Agemos", "L", "M", "S", "P3", "P5", "P10", "P25", "P50", "P75", "P90", "P95", "P97"}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, r := range t.Rows {
		record := make([]string, 0, len(header))
		record = append(record, strconv.Itoa(int(r.Sex)), formatFloat(r.AgeMonths))
		for _, v := range r.fields() {
			record = append(record, formatFloat(v))
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
