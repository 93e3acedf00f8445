package definition

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/curatekit/pkg/lint"
	"github.com/leapstack-labs/curatekit/pkg/lint/internal/text"
	"github.com/leapstack-labs/curatekit/pkg/template"
)

func init() {
	lint.Register(Circularity)
}

// Circularity flags definitions that use the term being defined.
var Circularity = lint.RuleDef{
	ID:          "DF04",
	Name:        "definition.circularity",
	Group:       "definition",
	Description: "Definitions must not contain the class label or an exact synonym.",
	Severity:    lint.SeverityError,
	Check:       checkCircularity,
	Rationale:   "A definition that relies on the defined term explains nothing to a reader who does not already know it.",
	BadExample:  "label: methanogenesis, definition: A process of methanogenesis in archaea.",
	GoodExample: "label: methanogenesis, definition: An anaerobic respiration that produces methane.",
}

func checkCircularity(rec *template.ClassRecord, _ map[string]any) []lint.Finding {
	if !hasDefinition(rec) {
		return nil
	}

	var findings []lint.Finding
	if strings.TrimSpace(rec.Label) != "" && text.ContainsWord(rec.Description, rec.Label) {
		findings = append(findings, lint.Finding{
			Severity: lint.SeverityError,
			Field:    lint.FieldDescription,
			Message:  fmt.Sprintf("definition is circular: it contains the class label %q", rec.Label),
		})
	}
	for _, syn := range rec.ExactSynonyms() {
		if text.ContainsWord(rec.Description, syn) {
			findings = append(findings, lint.Finding{
				Severity: lint.SeverityError,
				Field:    lint.FieldDescription,
				Message:  fmt.Sprintf("definition is circular: it contains the exact synonym %q", syn),
			})
		}
	}
	return findings
}
