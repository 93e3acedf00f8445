package definition

import (
	"github.com/leapstack-labs/curatekit/pkg/lint"
	"github.com/leapstack-labs/curatekit/pkg/template"
)

func init() {
	lint.Register(DefinitionPresence)
}

// DefinitionPresence requires a non-empty definition.
var DefinitionPresence = lint.RuleDef{
	ID:          "DF01",
	Name:        "definition.presence",
	Group:       "definition",
	Description: "Every class must have a textual definition.",
	Severity:    lint.SeverityError,
	Check:       checkPresence,
	Rationale:   "A class without a definition cannot be applied consistently by curators or reused by other ontologies.",
	BadExample:  "METPO:1000001\tmethanogenesis\towl:Class\tanaerobic respiration\t\t\t",
	GoodExample: "METPO:1000001\tmethanogenesis\towl:Class\tanaerobic respiration\tAn anaerobic respiration that produces methane.\tPMID:12345678\t",
}

func checkPresence(rec *template.ClassRecord, _ map[string]any) []lint.Finding {
	if hasDefinition(rec) {
		return nil
	}
	return []lint.Finding{{
		Severity: lint.SeverityError,
		Field:    lint.FieldDescription,
		Message:  "definition is missing or empty",
	}}
}
