package format

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/growth/errs"
)

func TestParseMeasurementType(t *testing.T) {
	tests := []struct {
		in   string
		want MeasurementType
	}{
		{"weight", Weight},
		{" Weight ", Weight},
		{"length", Length},
		{"height", Length},
		{"head_circumference", HeadCircumference},
		{"HC", HeadCircumference},
		{"head-circumference", HeadCircumference},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMeasurementType(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}

	_, err := ParseMeasurementType("bmi")
	require.ErrorIs(t, err, errs.ErrInvalidTypeName)
}

func TestMeasurementType_CanonicalUnit(t *testing.T) {
	require.Equal(t, UnitKG, Weight.CanonicalUnit())
	require.Equal(t, UnitCM, Length.CanonicalUnit())
	require.Equal(t, UnitCM, HeadCircumference.CanonicalUnit())
	require.Empty(t, MeasurementType(0).CanonicalUnit())
	require.False(t, MeasurementType(9).Valid())
	require.Equal(t, "unknown", MeasurementType(9).String())
}

func TestParseSex(t *testing.T) {
	for _, in := range []string{"male", "M", "1", "boy"} {
		got, err := ParseSex(in)
		require.NoError(t, err, in)
		require.Equal(t, Male, got)
	}
	for _, in := range []string{"female", "F", "2", "Girl"} {
		got, err := ParseSex(in)
		require.NoError(t, err, in)
		require.Equal(t, Female, got)
	}

	_, err := ParseSex("x")
	require.ErrorIs(t, err, errs.ErrInvalidSex)
}

func TestTextMarshaling(t *testing.T) {
	type payload struct {
		Type MeasurementType `json:"type"`
		Sex  Sex             `json:"sex"`
	}

	data, err := json.Marshal(payload{Type: HeadCircumference, Sex: Female})
	require.NoError(t, err)
	require.JSONEq(t, `{"type":"head_circumference","sex":"female"}`, string(data))

	var got payload
	require.NoError(t, json.Unmarshal([]byte(`{"type":"length","sex":"m"}`), &got))
	require.Equal(t, payload{Type: Length, Sex: Male}, got)

	_, err = json.Marshal(payload{})
	require.Error(t, err)
}

func TestParseCompressionType(t *testing.T) {
	tests := map[string]CompressionType{
		"":     CompressionNone,
		"none": CompressionNone,
		"ZSTD": CompressionZstd,
		"s2":   CompressionS2,
		"lz4":  CompressionLZ4,
	}
	for in, want := range tests {
		got, err := ParseCompressionType(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got)
		require.NotEqual(t, "Unknown", got.String())
	}

	_, err := ParseCompressionType("gzip")
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}
