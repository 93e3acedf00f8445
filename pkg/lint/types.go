package lint

import (
	"github.com/leapstack-labs/curatekit/pkg/core"
	"github.com/leapstack-labs/curatekit/pkg/template"
)

// Severity aliases core.Severity so rule packages need only import lint.
type Severity = core.Severity

// Severity levels for findings.
const (
	SeverityError   = core.SeverityError
	SeverityWarning = core.SeverityWarning
	SeverityInfo    = core.SeverityInfo
)

// RuleDef is a data-driven rule definition.
// Rules are stateless; all context comes via the check function parameters.
// A rule sets exactly one of Check (per record) or CheckTable (whole table).
type RuleDef struct {
	ID          string         // Unique identifier, e.g., "DF01"
	Name        string         // Human-readable name, e.g., "definition.presence"
	Group       string         // Category, e.g., "definition", "label"
	Description string         // Human-readable description
	Severity    Severity       // Default severity
	Check       CheckFunc      // Record-level check
	CheckTable  TableCheckFunc // Table-level check
	ConfigKeys  []string       // Configuration keys this rule accepts

	// Documentation fields
	Rationale   string // Why this rule exists, what problems it prevents
	BadExample  string // A template row showing the anti-pattern
	GoodExample string // A template row showing the correct pattern
	Fix         string // How to fix violations (when not obvious)
}

// CheckFunc inspects one record. The opts parameter contains rule-specific
// options from configuration.
type CheckFunc func(rec *template.ClassRecord, opts map[string]any) []Finding

// TableCheckFunc inspects a whole table.
type TableCheckFunc func(t *template.Table, opts map[string]any) []Finding

// Info extracts metadata from a rule for documentation and tooling.
func (r RuleDef) Info() core.RuleInfo {
	return core.RuleInfo{
		ID:              r.ID,
		Name:            r.Name,
		Group:           r.Group,
		Description:     r.Description,
		DefaultSeverity: r.Severity,
		ConfigKeys:      r.ConfigKeys,
		Rationale:       r.Rationale,
		BadExample:      r.BadExample,
		GoodExample:     r.GoodExample,
		Fix:             r.Fix,
	}
}

// Finding is a single rule violation.
//
// Check functions fill Severity, Message and optionally Field. The Analyzer
// stamps RuleID, Rule and, for record checks, RecordID and Row.
type Finding struct {
	Severity Severity `json:"severity"`
	RuleID   string   `json:"rule_id"`
	Rule     string   `json:"rule"`
	Message  string   `json:"message"`
	RecordID string   `json:"record_id,omitempty"`
	Row      int      `json:"row,omitempty"`
	Field    string   `json:"field,omitempty"`
}

// Field names used in findings.
const (
	FieldID          = "id"
	FieldLabel       = "label"
	FieldDescription = "description"
	FieldSource      = "definition_source"
)
