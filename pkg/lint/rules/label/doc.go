// Package label provides lint rules for class labels, following the OBO
// Foundry naming conventions (FP-012).
//
// Rules in this package:
//   - LB01: Lowercase except acronyms and proper nouns
//   - LB02: Label present
package label
