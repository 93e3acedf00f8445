package identifier

import (
	"fmt"
	"regexp"

	"github.com/leapstack-labs/curatekit/pkg/lint"
	"github.com/leapstack-labs/curatekit/pkg/template"
)

func init() {
	lint.Register(ClassIDFormat)
}

// ClassIDFormat requires identifiers of the form PREFIX:1234567.
var ClassIDFormat = lint.RuleDef{
	ID:          "ID01",
	Name:        "class-id.format",
	Group:       "class-id",
	Description: "Class IDs must be an uppercase prefix, a colon and digits.",
	Severity:    lint.SeverityError,
	Check:       checkClassIDFormat,
	Rationale:   "ROBOT expands IDs to IRIs through the prefix; anything else produces broken or unexpected IRIs.",
	BadExample:  "metpo_1000001",
	GoodExample: "METPO:1000001",
}

var classIDPattern = regexp.MustCompile(`^[A-Z]+:\d+$`)

func checkClassIDFormat(rec *template.ClassRecord, _ map[string]any) []lint.Finding {
	if classIDPattern.MatchString(rec.ID) {
		return nil
	}
	return []lint.Finding{{
		Severity: lint.SeverityError,
		Field:    lint.FieldID,
		Message:  fmt.Sprintf("class id %q is invalid (expected PREFIX:1234567)", rec.ID),
	}}
}
