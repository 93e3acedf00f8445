package config

import (
	"strings"

	"github.com/leapstack-labs/curatekit/internal/cli/output"
	"github.com/leapstack-labs/curatekit/internal/logging"
	"github.com/leapstack-labs/curatekit/pkg/core"
)

// Validate checks values the loader cannot type-check. Rule IDs and rule
// options are checked later against the rule registry.
func (c *Config) Validate() error {
	if !output.ValidMode(c.OutputFormat) {
		return core.NewConfigurationError("output", "unknown output mode %q (expected auto, text, markdown or json)", c.OutputFormat)
	}
	switch strings.ToLower(c.LogFormat) {
	case "", "text", "json":
	default:
		return core.NewConfigurationError("log_format", "unknown log format %q (expected text or json)", c.LogFormat)
	}
	if c.LogLevel != "" && !logging.ValidLevel(c.LogLevel) {
		return core.NewConfigurationError("log_level", "unknown log level %q (expected debug, info, warn or error)", c.LogLevel)
	}
	if c.Split.Curators < 0 {
		return core.NewConfigurationError("split.curators", "must be positive, got %d", c.Split.Curators)
	}
	for id, level := range c.Lint.Severity {
		if _, ok := core.ParseSeverity(level); !ok {
			return core.NewConfigurationError("lint.severity."+id, "unknown severity %q (expected error, warning or info)", level)
		}
	}
	return nil
}
