// Package rules registers every curatekit lint rule.
//
// Rules are organized by group:
//   - definition: textual definition quality (DF01-DF06)
//   - identifier: class identifier shape (ID01)
//   - label: class label conventions (LB01-LB02)
//   - table: table-level structure (TP01-TP02)
//
// To register all rules with the global lint registry, import this package
// with a blank identifier:
//
//	import _ "github.com/leapstack-labs/curatekit/pkg/lint/rules"
//
// Individual groups can also be imported:
//
//	import _ "github.com/leapstack-labs/curatekit/pkg/lint/rules/definition"
package rules
