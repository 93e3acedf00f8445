package label

import (
	"strings"

	"github.com/leapstack-labs/curatekit/pkg/lint"
	"github.com/leapstack-labs/curatekit/pkg/template"
)

func init() {
	lint.Register(LabelPresence)
}

// LabelPresence requires a label.
var LabelPresence = lint.RuleDef{
	ID:          "LB02",
	Name:        "label.presence",
	Group:       "label",
	Description: "Every class must have a label.",
	Severity:    lint.SeverityError,
	Check:       checkLabelPresence,
}

func checkLabelPresence(rec *template.ClassRecord, _ map[string]any) []lint.Finding {
	if strings.TrimSpace(rec.Label) != "" {
		return nil
	}
	return []lint.Finding{{
		Severity: lint.SeverityError,
		Field:    lint.FieldLabel,
		Message:  "class label is missing",
	}}
}
