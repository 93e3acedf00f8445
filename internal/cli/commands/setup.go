package commands

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/leapstack-labs/curatekit/internal/cli/config"
	"github.com/leapstack-labs/curatekit/internal/cli/output"
	intconfig "github.com/leapstack-labs/curatekit/internal/config"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext builds the context for cmd. A non-empty format
// overrides the configured output mode for this command only.
func NewCommandContext(cmd *cobra.Command, format string) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	mode := output.Mode(cfg.OutputFormat)
	if format != "" {
		mode = output.Mode(format)
	}
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// getConfig returns the current configuration.
// It uses config.GetCurrentConfig() if available, otherwise falls back to
// defaults plus the output environment variable.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	cfg := config.Default()
	if v := os.Getenv(intconfig.EnvPrefix + "OUTPUT"); v != "" {
		cfg.OutputFormat = v
	}
	return cfg
}

// absPath returns path made absolute against the working directory.
func absPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}
