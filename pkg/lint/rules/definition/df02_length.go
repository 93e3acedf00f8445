package definition

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/leapstack-labs/curatekit/pkg/lint"
	"github.com/leapstack-labs/curatekit/pkg/template"
)

func init() {
	lint.Register(DefinitionLength)
}

// DefinitionLength bounds the length of a definition.
var DefinitionLength = lint.RuleDef{
	ID:          "DF02",
	Name:        "definition.length",
	Group:       "definition",
	Description: "Definitions should be between min_length and max_length characters.",
	Severity:    lint.SeverityError,
	Check:       checkLength,
	ConfigKeys:  []string{"min_length", "max_length"},
	Rationale:   "Very short definitions rarely separate a class from its siblings; very long ones bury the differentia.",
	BadExample:  "abc",
	GoodExample: "An anaerobic respiration that produces methane.",
	Fix:         "Short definitions are errors; long definitions are only warnings and can be split into a definition and a comment.",
}

const (
	defaultMinLength = 20
	defaultMaxLength = 500
)

type lengthOptions struct {
	MinLength int `option:"min_length"`
	MaxLength int `option:"max_length"`
}

func checkLength(rec *template.ClassRecord, opts map[string]any) []lint.Finding {
	if !hasDefinition(rec) {
		return nil
	}

	o := lengthOptions{MinLength: defaultMinLength, MaxLength: defaultMaxLength}
	if err := lint.DecodeOptions(opts, &o); err != nil {
		o = lengthOptions{MinLength: defaultMinLength, MaxLength: defaultMaxLength}
	}

	n := utf8.RuneCountInString(strings.TrimSpace(rec.Description))
	switch {
	case n < o.MinLength:
		return []lint.Finding{{
			Severity: lint.SeverityError,
			Field:    lint.FieldDescription,
			Message: fmt.Sprintf("definition is too short to convey distinguishing characteristics (%d characters, minimum %d)",
				n, o.MinLength),
		}}
	case o.MaxLength > 0 && n > o.MaxLength:
		return []lint.Finding{{
			Severity: lint.SeverityWarning,
			Field:    lint.FieldDescription,
			Message:  fmt.Sprintf("definition may not be concise (%d characters, maximum %d)", n, o.MaxLength),
		}}
	}
	return nil
}
