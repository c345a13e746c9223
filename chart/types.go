package chart

import (
	"time"

	"github.com/arloliu/growth/format"
	"github.com/arloliu/growth/reference"
)

// Measurement is one recorded anthropometric entry. Unit is free-form, e.g.
// "LB", "oz", " cm"; it is matched case- and whitespace-insensitively.
type Measurement struct {
	Date  time.Time              `json:"date"`
	Type  format.MeasurementType `json:"type"`
	Value float64                `json:"value"`
	Unit  string                 `json:"unit"`
}

// Annotated is a measurement placed on the reference scale.
type Annotated struct {
	AgeMonths float64 `json:"age_months"`
	// CanonicalValue is in kilograms or centimeters.
	CanonicalValue float64 `json:"canonical_value"`
	// DisplayValue is in the caller's display unit.
	DisplayValue float64 `json:"display_value"`
	// Percentile lies in [0.1, 99.9], or is exactly 50 when no usable
	// reference row covered the age.
	Percentile float64   `json:"percentile"`
	Date       time.Time `json:"date"`
}

// PointMeasurement is the measurement attached to a chart tick.
type PointMeasurement struct {
	Value      float64   `json:"value"`
	Percentile float64   `json:"percentile"`
	Date       time.Time `json:"date"`
}

// Point is one x-axis tick of a chart series. Curves holds P3..P97 in display
// units.
type Point struct {
	AgeMonths   float64                               `json:"age_months"`
	Curves      [reference.PercentileColumns]float64 `json:"curves"`
	Measurement *PointMeasurement                     `json:"measurement,omitempty"`
}

// HasMeasurement reports whether a measurement is attached to the tick.
func (p Point) HasMeasurement() bool {
	return p.Measurement != nil
}
