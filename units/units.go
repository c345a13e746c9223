// Package units converts measurement values between caller units and the
// canonical units of the CDC reference tables.
//
// Canonical units are kilograms for weight and centimeters for length and
// head circumference. Unit codes are free-form strings compared after
// trimming and upper-casing, so " lb" and "LB" are the same unit.
//
// Unknown or empty units are not an error: the value is treated as already
// canonical and passes through unchanged. The same holds for an unknown
// display unit in FromCanonical.
package units

import (
	"strings"

	"github.com/arloliu/growth/format"
)

// Unit codes understood by the converter.
const (
	KG = format.UnitKG
	CM = format.UnitCM
	LB = "LB"
	OZ = "OZ"
	G  = "G"
	IN = "IN"
)

// rule converts a unit to canonical units as value * mul / div.
type rule struct {
	mul float64
	div float64
}

func (r rule) toCanonical(v float64) float64 {
	return v * r.mul / r.div
}

func (r rule) fromCanonical(v float64) float64 {
	return v * r.div / r.mul
}

var massRules = map[string]rule{
	KG: {mul: 1, div: 1},
	LB: {mul: 0.453592, div: 1},
	OZ: {mul: 0.0283495, div: 1},
	G:  {mul: 1, div: 1000},
}

var lengthRules = map[string]rule{
	CM: {mul: 1, div: 1},
	IN: {mul: 2.54, div: 1},
}

// Normalize trims surrounding whitespace and upper-cases a unit code.
func Normalize(unit string) string {
	return strings.ToUpper(strings.TrimSpace(unit))
}

func rulesFor(t format.MeasurementType) map[string]rule {
	switch t {
	case format.Weight:
		return massRules
	case format.Length, format.HeadCircumference:
		return lengthRules
	default:
		return nil
	}
}

func lookup(unit string, t format.MeasurementType) (rule, bool) {
	r, ok := rulesFor(t)[Normalize(unit)]

	return r, ok
}

// Known reports whether unit has a conversion rule for measurement type t.
// Canonical units are always known for their type.
func Known(unit string, t format.MeasurementType) bool {
	_, ok := lookup(unit, t)

	return ok
}

// ToCanonical converts value expressed in unit to the canonical unit of t.
//
// Weight accepts LB, OZ, G and KG. Length and head circumference accept IN
// and CM. Anything else, including the empty string, is returned unchanged.
func ToCanonical(value float64, unit string, t format.MeasurementType) float64 {
	r, ok := lookup(unit, t)
	if !ok {
		return value
	}

	return r.toCanonical(value)
}

// FromCanonical converts a canonical value of type t to displayUnit.
// An unknown display unit returns the canonical value unchanged.
func FromCanonical(value float64, t format.MeasurementType, displayUnit string) float64 {
	r, ok := lookup(displayUnit, t)
	if !ok {
		return value
	}

	return r.fromCanonical(value)
}

// DisplayUnits returns the display units offered for t in user settings:
// KG and LB for weight, CM and IN for length and head circumference.
func DisplayUnits(t format.MeasurementType) []string {
	switch t {
	case format.Weight:
		return []string{KG, LB}
	case format.Length, format.HeadCircumference:
		return []string{CM, IN}
	default:
		return nil
	}
}
