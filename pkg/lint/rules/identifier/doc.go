// Package identifier provides lint rules for class identifiers.
//
// Rules in this package:
//   - ID01: Class ID is a PREFIX:digits CURIE
package identifier
