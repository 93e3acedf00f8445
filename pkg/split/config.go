package split

import (
	"fmt"
	"math"
	"strings"

	"github.com/leapstack-labs/curatekit/pkg/core"
)

// Config holds validated split parameters. The zero value is not usable;
// build one with NewConfig. A Config never changes after construction.
type Config struct {
	curators int
	overlap  float64
	seed     uint64
	seeded   bool
	names    []string
}

// Option customises a Config.
type Option func(*Config)

// WithSeed makes the shuffle reproducible.
func WithSeed(seed uint64) Option {
	return func(c *Config) {
		c.seed = seed
		c.seeded = true
	}
}

// WithCuratorNames sets curator names. Names become file names, so they
// must be unique, non-empty and free of path separators.
func WithCuratorNames(names ...string) Option {
	return func(c *Config) {
		if len(names) == 0 {
			return
		}
		c.names = append([]string(nil), names...)
	}
}

// NewConfig validates the parameters and returns an immutable Config.
// Invalid values fail with a *core.ConfigurationError.
func NewConfig(curators int, overlapPct float64, opts ...Option) (Config, error) {
	if curators <= 0 {
		return Config{}, core.NewConfigurationError("curators", "must be at least 1, got %d", curators)
	}
	if math.IsNaN(overlapPct) || overlapPct < 0 || overlapPct >= 100 {
		return Config{}, core.NewConfigurationError("overlap", "must be in [0, 100), got %v", overlapPct)
	}
	if curators == 1 && overlapPct > 0 {
		return Config{}, core.NewConfigurationError("overlap",
			"a single curator cannot share records; use overlap 0 or at least 2 curators")
	}

	cfg := Config{curators: curators, overlap: overlapPct}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.names == nil {
		cfg.names = DefaultNames(curators)
	} else if err := validateNames(cfg.names, curators); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DefaultNames returns curator1..curatorN.
func DefaultNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("curator%d", i+1)
	}
	return names
}

func validateNames(names []string, curators int) error {
	if len(names) != curators {
		return core.NewConfigurationError("names", "got %d names for %d curators", len(names), curators)
	}
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		switch {
		case strings.TrimSpace(n) == "":
			return core.NewConfigurationError("names", "curator name must not be empty")
		case strings.ContainsAny(n, `/\`) || n == "." || n == "..":
			return core.NewConfigurationError("names", "curator name %q is not a valid file name", n)
		case seen[n]:
			return core.NewConfigurationError("names", "duplicate curator name %q", n)
		}
		seen[n] = true
	}
	return nil
}

// Curators returns the number of assignments to produce.
func (c Config) Curators() int { return c.curators }

// Overlap returns the target overlap percentage.
func (c Config) Overlap() float64 { return c.overlap }

// Seed returns the configured seed and whether one was set.
func (c Config) Seed() (uint64, bool) { return c.seed, c.seeded }

// Names returns a copy of the curator names.
func (c Config) Names() []string { return append([]string(nil), c.names...) }
