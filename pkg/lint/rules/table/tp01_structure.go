package table

import (
	"github.com/leapstack-labs/curatekit/pkg/lint"
	"github.com/leapstack-labs/curatekit/pkg/template"
)

func init() {
	lint.Register(Structure)
}

// Structure reports data rows the parser could not turn into records.
var Structure = lint.RuleDef{
	ID:          "TP01",
	Name:        "table.structure",
	Group:       "table",
	Description: "Every data row must have the header's column count and an ID.",
	Severity:    lint.SeverityError,
	CheckTable:  checkStructure,
	Rationale:   "ROBOT rejects templates with ragged rows, and rows without an ID are silently dropped.",
}

func checkStructure(t *template.Table, _ map[string]any) []lint.Finding {
	findings := make([]lint.Finding, 0, len(t.Issues))
	for _, is := range t.Issues {
		findings = append(findings, lint.Finding{
			Severity: lint.SeverityError,
			RecordID: is.ID,
			Row:      is.Row,
			Message:  is.Message,
		})
	}
	return findings
}
