// Package template reads and writes ROBOT-style term templates.
//
// A template is a tab-delimited UTF-8 table. The first three rows form the
// header block:
//
//	ID	LABEL	TYPE	parent class	description	definition source	comment	exact synonym
//	ID	LABEL	TYPE	SC %	A IAO:0000115	>A IAO:0000119		A oboInOwl:hasExactSynonym
//					SPLIT=|		SPLIT=|
//
// Every following non-blank row is one class record. The header block is
// carried verbatim into every table derived from the source; records are
// parsed once and shared read-only between derived tables.
package template
