package format

import (
	"strings"

	"github.com/arloliu/growth/errs"
)

type (
	MeasurementType uint8
	Sex             uint8
	CompressionType uint8
)

const (
	Weight            MeasurementType = 0x1 // Weight is body mass, canonical unit kilograms.
	Length            MeasurementType = 0x2 // Length is recumbent length, canonical unit centimeters.
	HeadCircumference MeasurementType = 0x3 // HeadCircumference is occipitofrontal circumference, canonical unit centimeters.

	Male   Sex = 0x1 // Male matches the CDC sex code 1.
	Female Sex = 0x2 // Female matches the CDC sex code 2.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// Canonical unit codes used by all percentile math.
const (
	UnitKG = "KG"
	UnitCM = "CM"
)

// MeasurementTypes lists every supported measurement type in declaration order.
var MeasurementTypes = []MeasurementType{Weight, Length, HeadCircumference}

func (t MeasurementType) String() string {
	switch t {
	case Weight:
		return "weight"
	case Length:
		return "length"
	case HeadCircumference:
		return "head_circumference"
	default:
		return "unknown"
	}
}

// Valid reports whether t is one of the three supported measurement types.
func (t MeasurementType) Valid() bool {
	switch t {
	case Weight, Length, HeadCircumference:
		return true
	default:
		return false
	}
}

// CanonicalUnit returns the unit the reference tables are expressed in:
// KG for weight and CM for length and head circumference.
func (t MeasurementType) CanonicalUnit() string {
	switch t {
	case Weight:
		return UnitKG
	case Length, HeadCircumference:
		return UnitCM
	default:
		return ""
	}
}

// ParseMeasurementType parses a measurement type name.
//
// Accepted names are case-insensitive: "weight", "length", "height",
// "head_circumference", "head-circumference", "head" and "hc".
func ParseMeasurementType(name string) (MeasurementType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "weight":
		return Weight, nil
	case "length", "height":
		return Length, nil
	case "head_circumference", "head-circumference", "head", "hc":
		return HeadCircumference, nil
	default:
		return 0, errs.ErrInvalidTypeName
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t MeasurementType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, errs.ErrInvalidTypeName
	}

	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *MeasurementType) UnmarshalText(text []byte) error {
	parsed, err := ParseMeasurementType(string(text))
	if err != nil {
		return err
	}
	*t = parsed

	return nil
}

func (s Sex) String() string {
	switch s {
	case Male:
		return "male"
	case Female:
		return "female"
	default:
		return "unknown"
	}
}

// Valid reports whether s is Male or Female.
func (s Sex) Valid() bool {
	return s == Male || s == Female
}

// ParseSex parses "male", "female", "m", "f" or the CDC codes "1" and "2".
func ParseSex(name string) (Sex, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "male", "m", "1", "boy":
		return Male, nil
	case "female", "f", "2", "girl":
		return Female, nil
	default:
		return 0, errs.ErrInvalidSex
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Sex) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, errs.ErrInvalidSex
	}

	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Sex) UnmarshalText(text []byte) error {
	parsed, err := ParseSex(string(text))
	if err != nil {
		return err
	}
	*s = parsed

	return nil
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompressionType parses a compression name such as "zstd" or "none".
func ParseCompressionType(name string) (CompressionType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, errs.ErrInvalidCompression
	}
}
