package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/arloliu/growth/chart"
	"github.com/arloliu/growth/errs"
	"github.com/arloliu/growth/format"
	"github.com/arloliu/growth/reference"
)

// measurementRecord is the JSON form of one measurement.
type measurementRecord struct {
	Date  string                 `json:"date"`
	Type  format.MeasurementType `json:"type"`
	Value float64                `json:"value"`
	Unit  string                 `json:"unit"`
}

// parseDate accepts YYYY-MM-DD or RFC 3339.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if d, err := time.Parse(time.DateOnly, s); err == nil {
		return d, nil
	}
	if d, err := time.Parse(time.RFC3339, s); err == nil {
		return d, nil
	}

	return time.Time{}, fmt.Errorf("%q: %w", s, errs.ErrInvalidRecordDate)
}

// loadMeasurements reads a JSON array of measurement records.
func loadMeasurements(path string) ([]chart.Measurement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read measurements: %w", err)
	}

	var records []measurementRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse measurements: %w", err)
	}

	out := make([]chart.Measurement, 0, len(records))
	for i, r := range records {
		date, err := parseDate(r.Date)
		if err != nil {
			return nil, fmt.Errorf("measurement %d: %w", i, err)
		}
		out = append(out, chart.Measurement{Date: date, Type: r.Type, Value: r.Value, Unit: r.Unit})
	}

	return out, nil
}

// loadTable reads a reference table of type t from a CDC CSV file or a
// packed table blob, chosen by the file extension.
func loadTable(path string, t format.MeasurementType) (reference.Table, error) {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		f, err := os.Open(path)
		if err != nil {
			return reference.Table{}, err
		}
		defer f.Close()

		table, err := reference.ParseCSV(f, t)
		if err != nil {
			return reference.Table{}, fmt.Errorf("%s: %w", path, err)
		}
		logger.Debug("reference CSV loaded", zap.String("path", path), zap.Int("rows", len(table.Rows)))

		return table, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return reference.Table{}, err
	}
	table, err := reference.Decode(data)
	if err != nil {
		return reference.Table{}, fmt.Errorf("%s: %w", path, err)
	}
	if table.Type != t {
		return reference.Table{}, fmt.Errorf("%s holds a %s table, want %s: %w", path, table.Type, t, errs.ErrTableNotFound)
	}
	logger.Debug("reference blob loaded", zap.String("path", path), zap.Int("rows", len(table.Rows)))

	return table, nil
}
