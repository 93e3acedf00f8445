package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// HeaderTSV is a three-row ROBOT header with one exact and one related
// synonym column.
const HeaderTSV = "ID\tLABEL\tTYPE\tparent class\tdescription\tdefinition source\tcomment\texact synonym\trelated synonym\n" +
	"ID\tLABEL\tTYPE\tSC %\tA IAO:0000115\t>A IAO:0000119\tA rdfs:comment\tA oboInOwl:hasExactSynonym\tA oboInOwl:hasRelatedSynonym\n" +
	"\t\t\t\t\tSPLIT=|\t\tSPLIT=|\tSPLIT=|\n"

// Row is one data row for building fixture templates.
type Row struct {
	ID, Label, Type, Parent, Description, Source, Comment, Exact, Related string
}

// TSV renders the row as a tab-delimited line.
func (r Row) TSV() string {
	return strings.Join([]string{
		r.ID, r.Label, r.Type, r.Parent, r.Description, r.Source, r.Comment, r.Exact, r.Related,
	}, "\t") + "\n"
}

// TemplateTSV returns HeaderTSV followed by the given rows.
func TemplateTSV(rows ...Row) string {
	var b strings.Builder
	b.WriteString(HeaderTSV)
	for _, r := range rows {
		b.WriteString(r.TSV())
	}
	return b.String()
}

// MasterRows returns n well-formed rows with ids METPO:1000001 onwards.
func MasterRows(n int) []Row {
	rows := make([]Row, n)
	for i := range rows {
		rows[i] = Row{
			ID:          fmt.Sprintf("METPO:%07d", 1000001+i),
			Label:       fmt.Sprintf("trait %d", i+1),
			Type:        "owl:Class",
			Parent:      "phenotype",
			Description: fmt.Sprintf("A phenotype that is observed in test organism number %d.", i+1),
			Source:      fmt.Sprintf("PMID:%d", 30000000+i),
		}
	}
	return rows
}

// WriteTemplate writes content to name inside a fresh temp dir and returns the path.
func WriteTemplate(t testing.TB, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}
