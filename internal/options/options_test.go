package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// scanConfig stands in for the package's real consumer (gmsh41.parseConfig)
// without importing it, since internal/options must stay free of a
// dependency cycle back to the root package.
type scanConfig struct {
	MaxWarnings int
	SourceName  string
	Strict      bool
	LastSetter  string
}

func (c *scanConfig) setMaxWarnings(n int) error {
	if n < 0 {
		return errors.New("max warnings cannot be negative")
	}
	c.MaxWarnings = n
	c.LastSetter = "setMaxWarnings"

	return nil
}

func (c *scanConfig) setSourceName(name string) {
	c.SourceName = name
	c.LastSetter = "setSourceName"
}

func (c *scanConfig) setStrict(strict bool) {
	c.Strict = strict
	c.LastSetter = "setStrict"
}

func TestNew(t *testing.T) {
	t.Run("fallible option applies cleanly", func(t *testing.T) {
		cfg := &scanConfig{}
		opt := New(func(c *scanConfig) error { return c.setMaxWarnings(10) })

		require.NoError(t, opt.apply(cfg))
		require.Equal(t, 10, cfg.MaxWarnings)
		require.Equal(t, "setMaxWarnings", cfg.LastSetter)
	})

	t.Run("fallible option surfaces its error", func(t *testing.T) {
		cfg := &scanConfig{}
		opt := New(func(c *scanConfig) error { return c.setMaxWarnings(-5) })

		err := opt.apply(cfg)
		require.Error(t, err)
		require.Contains(t, err.Error(), "negative")
	})
}

func TestNoError(t *testing.T) {
	cfg := &scanConfig{}

	opt := NoError(func(c *scanConfig) { c.setSourceName("model.msh") })
	require.NoError(t, opt.apply(cfg))
	require.Equal(t, "model.msh", cfg.SourceName)
	require.Equal(t, "setSourceName", cfg.LastSetter)
}

func TestApply(t *testing.T) {
	t.Run("runs every option in order", func(t *testing.T) {
		cfg := &scanConfig{}
		opts := []Option[*scanConfig]{
			New(func(c *scanConfig) error { return c.setMaxWarnings(3) }),
			NoError(func(c *scanConfig) { c.setSourceName("a.msh") }),
			NoError(func(c *scanConfig) { c.setStrict(true) }),
		}

		require.NoError(t, Apply(cfg, opts...))
		require.Equal(t, 3, cfg.MaxWarnings)
		require.Equal(t, "a.msh", cfg.SourceName)
		require.True(t, cfg.Strict)
		require.Equal(t, "setStrict", cfg.LastSetter)
	})

	t.Run("stops at the first error, leaving later options unapplied", func(t *testing.T) {
		cfg := &scanConfig{}
		opts := []Option[*scanConfig]{
			New(func(c *scanConfig) error { return c.setMaxWarnings(1) }),
			New(func(c *scanConfig) error { return c.setMaxWarnings(-1) }),
			NoError(func(c *scanConfig) { c.setSourceName("unreached.msh") }),
		}

		err := Apply(cfg, opts...)
		require.Error(t, err)
		require.Equal(t, 1, cfg.MaxWarnings)
		require.Empty(t, cfg.SourceName)
		require.Equal(t, "setMaxWarnings", cfg.LastSetter)
	})

	t.Run("empty option list is a no-op", func(t *testing.T) {
		cfg := &scanConfig{}
		require.NoError(t, Apply(cfg))
		require.Equal(t, scanConfig{}, *cfg)
	})
}

func TestOptionHelpers(t *testing.T) {
	withMaxWarnings := func(n int) Option[*scanConfig] {
		return New(func(c *scanConfig) error { return c.setMaxWarnings(n) })
	}
	withSourceName := func(name string) Option[*scanConfig] {
		return NoError(func(c *scanConfig) { c.setSourceName(name) })
	}

	cfg := &scanConfig{}
	require.NoError(t, Apply(cfg, withMaxWarnings(7), withSourceName("model.msh")))
	require.Equal(t, 7, cfg.MaxWarnings)
	require.Equal(t, "model.msh", cfg.SourceName)
}

// TestGenericsAcrossTypes confirms Option[T] isn't tied to *scanConfig.
func TestGenericsAcrossTypes(t *testing.T) {
	var counter int
	opt := NoError(func(n *int) { *n = 99 })

	require.NoError(t, opt.apply(&counter))
	require.Equal(t, 99, counter)
}
