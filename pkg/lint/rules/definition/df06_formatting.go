package definition

import (
	"strings"

	"github.com/leapstack-labs/curatekit/pkg/lint"
	"github.com/leapstack-labs/curatekit/pkg/template"
)

func init() {
	lint.Register(Formatting)
}

// Formatting flags stray whitespace and a missing final period.
var Formatting = lint.RuleDef{
	ID:          "DF06",
	Name:        "definition.formatting",
	Group:       "definition",
	Description: "Definitions should be trimmed, single-spaced and end with a period.",
	Severity:    lint.SeverityWarning,
	Check:       checkFormatting,
	BadExample:  " An anaerobic respiration  that produces methane",
	GoodExample: "An anaerobic respiration that produces methane.",
}

func checkFormatting(rec *template.ClassRecord, _ map[string]any) []lint.Finding {
	if !hasDefinition(rec) {
		return nil
	}

	d := rec.Description
	var issues []string
	if strings.TrimSpace(d) != d {
		issues = append(issues, "has leading/trailing whitespace")
	}
	if strings.Contains(d, "  ") {
		issues = append(issues, "contains double spaces")
	}
	if !strings.HasSuffix(strings.TrimSpace(d), ".") {
		issues = append(issues, "does not end with period")
	}
	if len(issues) == 0 {
		return nil
	}
	return []lint.Finding{{
		Severity: lint.SeverityWarning,
		Field:    lint.FieldDescription,
		Message:  "formatting issues: " + strings.Join(issues, ", "),
	}}
}
