package template

import (
	"fmt"
	"slices"
	"strings"
)

// Fixed column positions. Columns after ColComment are synonym columns.
const (
	ColID = iota
	ColLabel
	ColType
	ColParentClass
	ColDescription
	ColDefinitionSource
	ColComment

	// FixedColumns is the number of columns every template must carry.
	FixedColumns
)

// HeaderRows is the number of rows in a header block.
const HeaderRows = 3

// ValueSeparator delimits values inside a multi-valued cell.
const ValueSeparator = "|"

// HeaderBlock holds the three header rows exactly as read.
type HeaderBlock struct {
	Names      []string // Row 1: human-readable column names
	Properties []string // Row 2: machine property markers; cells may be empty
	Directives []string // Row 3: column directives such as SPLIT=|; cells may be empty
}

// Width returns the number of columns declared by the header.
func (h HeaderBlock) Width() int {
	return len(h.Names)
}

// Rows returns the three header rows in file order.
func (h HeaderBlock) Rows() [][]string {
	return [][]string{h.Names, h.Properties, h.Directives}
}

// Equal reports whether two header blocks are cell-for-cell identical.
func (h HeaderBlock) Equal(other HeaderBlock) bool {
	return slices.Equal(h.Names, other.Names) &&
		slices.Equal(h.Properties, other.Properties) &&
		slices.Equal(h.Directives, other.Directives)
}

// SynonymKind classifies a synonym column.
type SynonymKind string

// Synonym kinds follow the oboInOwl synonym scopes.
const (
	SynonymExact   SynonymKind = "exact"
	SynonymNarrow  SynonymKind = "narrow"
	SynonymBroad   SynonymKind = "broad"
	SynonymRelated SynonymKind = "related"
)

// synonymKindFor infers a column's kind from its name and property marker.
func synonymKindFor(name, property string) SynonymKind {
	text := strings.ToLower(name + " " + property)
	switch {
	case strings.Contains(text, "exact"):
		return SynonymExact
	case strings.Contains(text, "narrow"):
		return SynonymNarrow
	case strings.Contains(text, "broad"):
		return SynonymBroad
	default:
		return SynonymRelated
	}
}

// Synonym is one synonym cell of a record.
type Synonym struct {
	Column string // Header name of the column
	Kind   SynonymKind
	Values []string // Pipe-split, trimmed, empty values dropped
}

// ClassRecord is one data row of a template.
// Records are created by Parse and must not be modified afterwards.
type ClassRecord struct {
	ID               string
	Label            string
	Type             string
	ParentClass      string
	Description      string
	DefinitionSource string
	Comment          string
	Synonyms         []Synonym

	Row   int      // 1-based line in the source file
	Cells []string // Raw cells in column order, written back unchanged
}

// Sources returns the pipe-delimited citation tokens of the definition source.
func (r *ClassRecord) Sources() []string {
	return SplitValues(r.DefinitionSource)
}

// ExactSynonyms returns every value declared in an exact-synonym column.
func (r *ClassRecord) ExactSynonyms() []string {
	var out []string
	for _, s := range r.Synonyms {
		if s.Kind == SynonymExact {
			out = append(out, s.Values...)
		}
	}
	return out
}

// SplitValues splits a multi-valued cell on the value separator, trimming
// each value and dropping empty ones.
func SplitValues(cell string) []string {
	if strings.TrimSpace(cell) == "" {
		return nil
	}
	parts := strings.Split(cell, ValueSeparator)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// RowIssue records a data row rejected during parsing.
type RowIssue struct {
	Row     int // 1-based line in the source file
	ID      string
	Message string
}

func (i RowIssue) String() string {
	if i.ID != "" {
		return fmt.Sprintf("row %d (%s): %s", i.Row, i.ID, i.Message)
	}
	return fmt.Sprintf("row %d: %s", i.Row, i.Message)
}

// Table is a parsed template.
type Table struct {
	Source  string // File path or logical name, used in messages
	Header  HeaderBlock
	Records []*ClassRecord
	Issues  []RowIssue // Rows excluded from Records
}

// IDs returns record ids in table order.
func (t *Table) IDs() []string {
	ids := make([]string, len(t.Records))
	for i, r := range t.Records {
		ids[i] = r.ID
	}
	return ids
}

// DuplicateIDs returns every id that occurs more than once, in order of
// first occurrence.
func DuplicateIDs(records []*ClassRecord) []string {
	seen := make(map[string]int, len(records))
	var dups []string
	for _, r := range records {
		seen[r.ID]++
		if seen[r.ID] == 2 {
			dups = append(dups, r.ID)
		}
	}
	return dups
}
