// Package core defines the shared language of curatekit.
//
// This package contains:
//   - Severity levels shared by the table parser and the lint rules
//   - RuleInfo, the rule metadata DTO used by tooling and the CLI
//   - The error taxonomy (structural and configuration errors)
//
// The Golden Rule: pkg/core imports ONLY the standard library.
// All other packages depend on core, not the reverse.
package core
