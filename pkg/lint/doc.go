// Package lint provides the rule framework for validating ontology class
// templates.
//
// # Architecture
//
//  1. Root package (pkg/lint/): rule contracts, the global registry, the
//     Analyzer and Report types
//  2. Rule packages (pkg/lint/rules/...): one package per rule group, each
//     registering its rules from init()
//
// # Rule Registration
//
// Rules are registered when their packages are imported:
//
//	import _ "github.com/leapstack-labs/curatekit/pkg/lint/rules"
//
// # Rule Groups
//
//   - DF (definition): presence, length, genus-differentia form, circularity,
//     source format and formatting of textual definitions
//   - LB (label): label presence and capitalization
//   - ID (class-id): CURIE shape of class identifiers
//   - TP (table): malformed rows and duplicate identifiers
//
// # Configuration
//
//	config := lint.NewConfig()
//	config.Disable("DF03")
//	config.SetSeverity("DF05", core.SeverityError)
//	config.SetRuleOptions("DF02", map[string]any{"min_length": 30})
//
// # Creating Custom Rules
//
//	var MyRule = lint.RuleDef{
//		ID:          "MY01",
//		Name:        "custom.rule",
//		Group:       "custom",
//		Description: "My custom rule description",
//		Severity:    core.SeverityWarning,
//		Check:       checkMyRule,
//	}
//
//	func init() {
//		lint.Register(MyRule)
//	}
package lint
