// Package config provides configuration management for the curatekit CLI.
package config

import (
	intconfig "github.com/leapstack-labs/curatekit/internal/config"
)

// Config holds all CLI configuration options.
type Config struct {
	OutputFormat string      `koanf:"output"`
	Verbose      bool        `koanf:"verbose"`
	LogLevel     string      `koanf:"log_level"`
	LogFormat    string      `koanf:"log_format"`
	Split        SplitConfig `koanf:"split"`
	Lint         LintConfig  `koanf:"lint"`

	// ProjectRoot is the directory relative paths are resolved against.
	// Set by the loader, never read from a source.
	ProjectRoot string `koanf:"-"`
}

// SplitConfig holds defaults for the split command.
type SplitConfig struct {
	Curators int      `koanf:"curators"`
	Overlap  float64  `koanf:"overlap"`
	Seed     *uint64  `koanf:"seed"`
	Names    []string `koanf:"names"`
	OutDir   string   `koanf:"out_dir"`
	Manifest string   `koanf:"manifest"`
}

// LintConfig holds validator settings.
type LintConfig struct {
	// Disabled lists rule IDs to skip.
	Disabled []string `koanf:"disabled"`
	// Severity overrides rule severities: rule ID to level name.
	Severity map[string]string `koanf:"severity"`
	// Rules holds per-rule options: rule ID to option map.
	Rules map[string]map[string]any `koanf:"rules"`
}

// Default configuration values, re-exported for the commands package.
const (
	DefaultCurators = intconfig.DefaultCurators
	DefaultOverlap  = intconfig.DefaultOverlap
	DefaultOutDir   = intconfig.DefaultOutDir
	DefaultManifest = intconfig.DefaultManifest
	DefaultOutput   = intconfig.DefaultOutput
)

// defaultMap is the lowest-precedence configuration layer.
func defaultMap() map[string]any {
	return map[string]any{
		"output":         intconfig.DefaultOutput,
		"verbose":        false,
		"log_level":      intconfig.DefaultLogLevel,
		"log_format":     intconfig.DefaultLogFormat,
		"split.curators": intconfig.DefaultCurators,
		"split.overlap":  intconfig.DefaultOverlap,
		"split.out_dir":  intconfig.DefaultOutDir,
		"split.manifest": intconfig.DefaultManifest,
	}
}

// Default returns the configuration used when nothing was loaded.
func Default() *Config {
	return &Config{
		OutputFormat: intconfig.DefaultOutput,
		LogLevel:     intconfig.DefaultLogLevel,
		LogFormat:    intconfig.DefaultLogFormat,
		Split: SplitConfig{
			Curators: intconfig.DefaultCurators,
			Overlap:  intconfig.DefaultOverlap,
			OutDir:   intconfig.DefaultOutDir,
			Manifest: intconfig.DefaultManifest,
		},
	}
}
