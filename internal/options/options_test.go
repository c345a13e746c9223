package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Buffer float64
	Unit   string
	calls  []string
}

func withBuffer(v float64) Option[*testConfig] {
	return New(func(c *testConfig) error {
		if v < 0 {
			return errors.New("buffer cannot be negative")
		}
		c.Buffer = v
		c.calls = append(c.calls, "buffer")

		return nil
	})
}

func withUnit(u string) Option[*testConfig] {
	return NoError(func(c *testConfig) {
		c.Unit = u
		c.calls = append(c.calls, "unit")
	})
}

func TestApply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		cfg := &testConfig{}
		err := Apply(cfg, withUnit("LB"), withBuffer(0.5), withUnit("KG"))
		require.NoError(t, err)
		require.Equal(t, 0.5, cfg.Buffer)
		require.Equal(t, "KG", cfg.Unit)
		require.Equal(t, []string{"unit", "buffer", "unit"}, cfg.calls)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &testConfig{}
		err := Apply(cfg, withBuffer(-1), withUnit("LB"))
		require.Error(t, err)
		require.Contains(t, err.Error(), "buffer cannot be negative")
		require.Empty(t, cfg.Unit)
	})

	t.Run("skips nil options", func(t *testing.T) {
		cfg := &testConfig{}
		require.NoError(t, Apply(cfg, nil, withUnit("CM")))
		require.Equal(t, "CM", cfg.Unit)
	})

	t.Run("no options", func(t *testing.T) {
		cfg := &testConfig{Buffer: 2}
		require.NoError(t, Apply(cfg))
		require.Equal(t, 2.0, cfg.Buffer)
	})
}
