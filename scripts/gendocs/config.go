package main

import (
	"fmt"
	"log"
	"strings"

	clicfg "github.com/leapstack-labs/curatekit/internal/cli/config"
	"github.com/leapstack-labs/curatekit/internal/config"
)

// ConfigField describes one key of curatekit.yaml.
type ConfigField struct {
	Key         string
	Type        string
	Default     string
	Description string
}

// configSchema lists the keys read from curatekit.yaml.
func configSchema() []ConfigField {
	return []ConfigField{
		{Key: "output", Type: "string", Default: config.DefaultOutput, Description: "Output format: auto, text, markdown, json"},
		{Key: "verbose", Type: "bool", Default: "false", Description: "Print the config file in use and raise logging to info"},
		{Key: "log_level", Type: "string", Default: config.DefaultLogLevel, Description: "Log level: debug, info, warn, error"},
		{Key: "log_format", Type: "string", Default: config.DefaultLogFormat, Description: "Log format: text, json"},
		{Key: "split.curators", Type: "int", Default: fmt.Sprint(config.DefaultCurators), Description: "Number of curator assignments"},
		{Key: "split.overlap", Type: "float", Default: fmt.Sprint(config.DefaultOverlap), Description: "Target percentage of each assignment shared with another curator"},
		{Key: "split.seed", Type: "uint64", Description: "Shuffle seed; random when unset"},
		{Key: "split.names", Type: "[]string", Description: "Curator names; defaults to curator1..curatorN"},
		{Key: "split.out_dir", Type: "string", Default: config.DefaultOutDir, Description: "Directory assignments are written to, relative to the config file"},
		{Key: "split.manifest", Type: "string", Default: config.DefaultManifest, Description: "Manifest path, relative to out_dir"},
		{Key: "lint.disabled", Type: "[]string", Description: "Rule IDs to skip"},
		{Key: "lint.severity", Type: "map[string]string", Description: "Severity override per rule ID"},
		{Key: "lint.rules", Type: "map[string]map", Description: "Rule-specific options per rule ID"},
	}
}

// generateConfigDocs writes the configuration reference page.
func generateConfigDocs(outDir string) error {
	log.Printf("Generating configuration docs to %s", outDir)
	return writeDoc(outDir, "configuration.md", configPage(configSchema()))
}

func configPage(fields []ConfigField) *MarkdownWriter {
	w := NewMarkdownWriter()

	w.Frontmatter("Configuration", "curatekit configuration reference")
	w.GeneratedMarker()

	w.Header(1, "Configuration")
	w.Paragraph(fmt.Sprintf("curatekit reads %s (or %s) from the working directory or the nearest parent directory. "+
		"Use %s to point at a file explicitly.",
		InlineCode(config.ConfigFileName), InlineCode(config.ConfigFileNameAlt), InlineCode("--config")))

	w.Header(2, "Precedence")
	w.BulletList([]string{
		"Command-line flags",
		fmt.Sprintf("Environment variables prefixed with %s", InlineCode(config.EnvPrefix)),
		"The configuration file",
		"Built-in defaults",
	})

	w.Header(2, "Keys")
	rows := make([][]string, 0, len(fields))
	for _, f := range fields {
		def := ""
		if f.Default != "" {
			def = InlineCode(f.Default)
		}
		rows = append(rows, []string{InlineCode(f.Key), f.Type, def, f.Description, InlineCode(envName(f.Key))})
	}
	w.Table([]string{"Key", "Type", "Default", "Description", "Environment"}, rows)

	w.Header(2, "Example")
	w.CodeBlock("yaml", exampleConfig())

	return w
}

// envName maps a dotted key to its environment variable.
func envName(key string) string {
	return config.EnvPrefix + strings.ToUpper(strings.ReplaceAll(key, ".", "__"))
}

func exampleConfig() string {
	d := clicfg.Default()
	return fmt.Sprintf(`output: %s
log_level: %s

split:
  curators: %d
  overlap: %g
  seed: 42
  names: [alice, bob, carol]
  out_dir: %s

lint:
  disabled: [DF03]
  severity:
    DF06: error`, d.OutputFormat, d.LogLevel, d.Split.Curators, d.Split.Overlap, d.Split.OutDir)
}
