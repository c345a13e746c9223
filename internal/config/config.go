// Package config holds the growthchart CLI settings.
package config

import (
	"fmt"
	"os"
	"slices"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/arloliu/growth/chart"
	"github.com/arloliu/growth/errs"
	"github.com/arloliu/growth/format"
	"github.com/arloliu/growth/internal/fileio"
	"github.com/arloliu/growth/units"
)

// Environment variables that override file settings.
const (
	EnvLogLevel   = "GROWTH_LOG_LEVEL"
	EnvWeightUnit = "GROWTH_WEIGHT_UNIT"
	EnvLengthUnit = "GROWTH_LENGTH_UNIT"
)

// Config is the growthchart configuration.
type Config struct {
	LogLevel string `yaml:"log_level"` // debug, info, warn, error

	// Sex is the default sex when a command does not pass --sex.
	Sex string `yaml:"sex"`

	Units  UnitsConfig  `yaml:"units"`
	Tables TablesConfig `yaml:"tables"`
	Chart  ChartConfig  `yaml:"chart"`

	// Compression is the codec used by pack: none, zstd, s2 or lz4.
	Compression string `yaml:"compression"`
}

// UnitsConfig holds the display unit per measurement type.
type UnitsConfig struct {
	Weight            string `yaml:"weight"`             // KG or LB
	Length            string `yaml:"length"`             // CM or IN
	HeadCircumference string `yaml:"head_circumference"` // CM or IN
}

// TablesConfig holds reference table paths, CSV or packed blob.
type TablesConfig struct {
	Weight            string `yaml:"weight"`
	Length            string `yaml:"length"`
	HeadCircumference string `yaml:"head_circumference"`
}

// ChartConfig holds chart building settings.
type ChartConfig struct {
	MaxAgeMonths float64 `yaml:"max_age_months"`
	AgeBuffer    float64 `yaml:"age_buffer"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Units: UnitsConfig{
			Weight:            units.KG,
			Length:            units.CM,
			HeadCircumference: units.CM,
		},
		Chart: ChartConfig{
			MaxAgeMonths: 36,
			AgeBuffer:    chart.DefaultAgeBuffer,
		},
		Compression: "zstd",
	}
}

// Load loads configuration from a YAML file and applies environment
// overrides. A missing file, or an empty path, yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := fileio.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides. The length unit
// applies to head circumference too.
func (c *Config) applyEnvOverrides() {
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.LogLevel = level
	}
	if unit := os.Getenv(EnvWeightUnit); unit != "" {
		c.Units.Weight = units.Normalize(unit)
	}
	if unit := os.Getenv(EnvLengthUnit); unit != "" {
		c.Units.Length = units.Normalize(unit)
		c.Units.HeadCircumference = units.Normalize(unit)
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if _, err := c.ZapLevel(); err != nil {
		return err
	}

	for _, t := range format.MeasurementTypes {
		unit := c.DisplayUnit(t)
		if !slices.Contains(units.DisplayUnits(t), unit) {
			return fmt.Errorf("%s display unit %q: %w", t, unit, errs.ErrInvalidUnit)
		}
	}

	if c.Sex != "" {
		if _, err := format.ParseSex(c.Sex); err != nil {
			return fmt.Errorf("sex %q: %w", c.Sex, err)
		}
	}

	if !(c.Chart.MaxAgeMonths > 0) {
		return errs.ErrInvalidMaxAge
	}
	if !(c.Chart.AgeBuffer >= 0) {
		return errs.ErrInvalidAgeBuffer
	}

	if _, err := format.ParseCompressionType(c.Compression); err != nil {
		return fmt.Errorf("compression %q: %w", c.Compression, err)
	}

	return nil
}

// ZapLevel parses LogLevel.
func (c *Config) ZapLevel() (zapcore.Level, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("%q: %w", c.LogLevel, errs.ErrInvalidLogLevel)
	}

	return level, nil
}

// DisplayUnit returns the normalized display unit of t.
func (c *Config) DisplayUnit(t format.MeasurementType) string {
	switch t {
	case format.Weight:
		return units.Normalize(c.Units.Weight)
	case format.Length:
		return units.Normalize(c.Units.Length)
	case format.HeadCircumference:
		return units.Normalize(c.Units.HeadCircumference)
	default:
		return ""
	}
}

// DisplayUnits returns the display unit of every measurement type.
func (c *Config) DisplayUnits() map[format.MeasurementType]string {
	out := make(map[format.MeasurementType]string, len(format.MeasurementTypes))
	for _, t := range format.MeasurementTypes {
		out[t] = c.DisplayUnit(t)
	}

	return out
}

// TablePath returns the configured reference table path of t, or "".
func (c *Config) TablePath(t format.MeasurementType) string {
	switch t {
	case format.Weight:
		return c.Tables.Weight
	case format.Length:
		return c.Tables.Length
	case format.HeadCircumference:
		return c.Tables.HeadCircumference
	default:
		return ""
	}
}

// CompressionType parses Compression.
func (c *Config) CompressionType() (format.CompressionType, error) {
	return format.ParseCompressionType(c.Compression)
}
