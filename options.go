package gmsh41

import (
	"github.com/mshkit/gmsh41/internal/codec"
	"github.com/mshkit/gmsh41/internal/options"
)

// parseConfig holds the resolved settings for one Parse/ParseBytes call.
type parseConfig struct {
	sourceName          string
	maxWarnings         int
	strictPhysicalNames bool
	decompression       codec.Kind
	autoDetect          bool
}

func defaultConfig() *parseConfig {
	return &parseConfig{
		autoDetect: true,
	}
}

// ParseOption configures a Parse or ParseBytes call.
type ParseOption = options.Option[*parseConfig]

// WithSourceName overrides the name diagnostics report as the origin file,
// independent of the path passed to Parse (useful with ParseBytes, where
// there is no path).
func WithSourceName(name string) ParseOption {
	return options.NoError(func(c *parseConfig) { c.sourceName = name })
}

// WithMaxWarnings caps the number of non-fatal Warnings a parse
// accumulates; 0 (the default) means unbounded.
func WithMaxWarnings(n int) ParseOption {
	return options.NoError(func(c *parseConfig) { c.maxWarnings = n })
}

// WithStrictPhysicalNames promotes unresolved physical-tag references from
// warnings to a fatal InvalidData diagnostic.
func WithStrictPhysicalNames() ParseOption {
	return options.NoError(func(c *parseConfig) { c.strictPhysicalNames = true })
}

// WithDecompression forces the given compression scheme instead of
// sniffing the input's leading bytes. name is one of "none", "gzip",
// "zstd", or "lz4".
func WithDecompression(name string) ParseOption {
	return options.New(func(c *parseConfig) error {
		kind, err := codec.ParseKind(name)
		if err != nil {
			return err
		}
		c.decompression = kind
		c.autoDetect = false

		return nil
	})
}
