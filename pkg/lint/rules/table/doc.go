// Package table provides lint rules that look at a template as a whole.
//
// Rules in this package:
//   - TP01: Rows rejected by the parser
//   - TP02: Duplicate class IDs
package table
