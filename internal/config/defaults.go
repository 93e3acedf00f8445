// Package config holds defaults shared by the CLI configuration layer and
// the commands.
package config

// Config file names, searched in this order.
const (
	ConfigFileName    = "curatekit.yaml"
	ConfigFileNameAlt = "curatekit.yml"
)

// EnvPrefix prefixes every environment variable read by the config loader.
const EnvPrefix = "CURATEKIT_"

// Default configuration values.
const (
	DefaultCurators  = 3
	DefaultOverlap   = 20.0
	DefaultOutDir    = "assignments"
	DefaultManifest  = "assignments.yaml"
	DefaultOutput    = "auto" // TTY=text, non-TTY=markdown
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// AssignmentExt is the file extension of a written curator assignment.
const AssignmentExt = ".tsv"

// ConfigFileNames returns the config file names in lookup order.
func ConfigFileNames() []string {
	return []string{ConfigFileName, ConfigFileNameAlt}
}
