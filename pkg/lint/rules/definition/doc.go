// Package definition provides lint rules for textual definitions, following
// the OBO Foundry guidance on definitions (FP-006).
//
// Rules in this package:
//   - DF01: Definition present
//   - DF02: Definition length bounds
//   - DF03: Genus-differentia form
//   - DF04: Circular definition
//   - DF05: Definition source format
//   - DF06: Whitespace and punctuation
//   - DF07: Article followed by the class name
//
// Content rules (DF02, DF03, DF04, DF06, DF07) stay silent on an empty
// definition; DF01 reports it.
package definition

import (
	"strings"

	"github.com/leapstack-labs/curatekit/pkg/template"
)

func hasDefinition(rec *template.ClassRecord) bool {
	return strings.TrimSpace(rec.Description) != ""
}
