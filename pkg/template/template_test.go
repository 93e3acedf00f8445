package template_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/curatekit/internal/testutil"
	"github.com/leapstack-labs/curatekit/pkg/core"
	"github.com/leapstack-labs/curatekit/pkg/template"
)

func parse(t *testing.T, content string) *template.Table {
	t.Helper()
	tbl, err := template.Parse(strings.NewReader(content), "test.tsv")
	require.NoError(t, err)
	return tbl
}

func TestParse_HeaderAndRecords(t *testing.T) {
	tbl := parse(t, testutil.TemplateTSV(
		testutil.Row{
			ID: "METPO:1000001", Label: "methanogenesis", Type: "owl:Class", Parent: "anaerobic respiration",
			Description: "An anaerobic respiration that produces methane.", Source: "PMID:123| DOI:10.1000/x ",
			Exact: "methane formation|methane biosynthesis", Related: "methanogeny",
		},
		testutil.Row{ID: "METPO:1000002", Label: "acetogenesis"},
	))

	assert.Equal(t, "test.tsv", tbl.Source)
	assert.Equal(t, 9, tbl.Header.Width())
	assert.Equal(t, "ID", tbl.Header.Names[0])
	assert.Equal(t, "SC %", tbl.Header.Properties[3])
	assert.Equal(t, "SPLIT=|", tbl.Header.Directives[5])
	assert.Empty(t, tbl.Issues)
	require.Len(t, tbl.Records, 2)

	rec := tbl.Records[0]
	assert.Equal(t, "METPO:1000001", rec.ID)
	assert.Equal(t, "methanogenesis", rec.Label)
	assert.Equal(t, "anaerobic respiration", rec.ParentClass)
	assert.Equal(t, 4, rec.Row)
	assert.Equal(t, []string{"PMID:123", "DOI:10.1000/x"}, rec.Sources())
	assert.Equal(t, []string{"methane formation", "methane biosynthesis"}, rec.ExactSynonyms())

	require.Len(t, rec.Synonyms, 2)
	assert.Equal(t, template.SynonymExact, rec.Synonyms[0].Kind)
	assert.Equal(t, template.SynonymRelated, rec.Synonyms[1].Kind)
	assert.Equal(t, []string{"methanogeny"}, rec.Synonyms[1].Values)

	assert.Equal(t, []string{"METPO:1000001", "METPO:1000002"}, tbl.IDs())
	assert.Nil(t, tbl.Records[1].Sources())
}

func TestParse_PartialFailure(t *testing.T) {
	content := testutil.HeaderTSV +
		testutil.Row{ID: "METPO:1", Label: "a"}.TSV() +
		"METPO:2\tshort row\n" +
		"\t\t\t\t\t\t\t\t\n" +
		testutil.Row{Label: "no id"}.TSV() +
		testutil.Row{ID: "METPO:3", Label: "c"}.TSV()

	tbl := parse(t, content)

	assert.Equal(t, []string{"METPO:1", "METPO:3"}, tbl.IDs())
	require.Len(t, tbl.Issues, 2)
	assert.Equal(t, 5, tbl.Issues[0].Row)
	assert.Equal(t, "METPO:2", tbl.Issues[0].ID)
	assert.Contains(t, tbl.Issues[0].Message, "expected 9 columns, got 2")
	assert.Equal(t, 7, tbl.Issues[1].Row)
	assert.Contains(t, tbl.Issues[1].Message, "no id")
	assert.Equal(t, 8, tbl.Records[1].Row)
}

func TestParse_MalformedHeader(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errSub  string
	}{
		{
			name:    "empty file",
			content: "",
			errSub:  "expected 3 header rows, found 0",
		},
		{
			name:    "two header rows",
			content: "ID\tLABEL\tTYPE\tp\td\ts\tc\nID\tLABEL\tTYPE\tSC %\tA\tA\tA\n",
			errSub:  "expected 3 header rows, found 2",
		},
		{
			name:    "ragged header",
			content: "ID\tLABEL\tTYPE\tp\td\ts\tc\nID\tLABEL\n\t\t\t\t\t\t\n",
			errSub:  "row 2 has 2 columns",
		},
		{
			name:    "too few columns",
			content: "ID\tLABEL\nID\tLABEL\n\t\n",
			errSub:  "at least 7 columns",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl, err := template.Parse(strings.NewReader(tt.content), "bad.tsv")
			require.Error(t, err)
			assert.Nil(t, tbl)
			assert.True(t, errors.Is(err, core.ErrStructural), "want structural error, got %v", err)
			assert.Contains(t, err.Error(), tt.errSub)
		})
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	src := testutil.TemplateTSV(testutil.MasterRows(3)...)
	tbl := parse(t, src)

	var buf bytes.Buffer
	require.NoError(t, template.Write(&buf, tbl.Header, tbl.Records))
	assert.Equal(t, src, buf.String())

	again := parse(t, buf.String())
	assert.True(t, again.Header.Equal(tbl.Header))
	assert.Equal(t, tbl.IDs(), again.IDs())
}

func TestParse_QuotesAreCellContent(t *testing.T) {
	rows := testutil.MasterRows(2)
	rows[0].Description = `"Methanogenic" respiration that produces methane.`
	rows[0].Comment = ` leading space and a "quote`
	rows[1].Exact = `"hydrogenotrophic"|methanogen`
	src := testutil.TemplateTSV(rows...)

	tbl := parse(t, src)
	assert.Empty(t, tbl.Issues)
	require.Len(t, tbl.Records, 2)
	assert.Equal(t, rows[0].Description, tbl.Records[0].Description)
	assert.Equal(t, rows[0].Comment, tbl.Records[0].Comment)
	assert.Equal(t, []string{`"hydrogenotrophic"`, "methanogen"}, tbl.Records[1].ExactSynonyms())

	var buf bytes.Buffer
	require.NoError(t, template.Write(&buf, tbl.Header, tbl.Records))
	assert.Equal(t, src, buf.String(), "cells are written back byte for byte")
}

func TestParse_CRLF(t *testing.T) {
	src := strings.ReplaceAll(testutil.TemplateTSV(testutil.MasterRows(2)...), "\n", "\r\n")
	tbl := parse(t, src)
	assert.Empty(t, tbl.Issues)
	assert.Equal(t, "SPLIT=|", tbl.Header.Directives[8])
	assert.Equal(t, 5, tbl.Records[1].Row)
}

func TestWriteFile_CreatesDirectories(t *testing.T) {
	tbl := parse(t, testutil.TemplateTSV(testutil.MasterRows(2)...))
	path := filepath.Join(t.TempDir(), "out", "nested", "curator1.tsv")

	require.NoError(t, template.WriteFile(path, tbl.Header, tbl.Records[:1]))

	got, err := template.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, got.Header.Equal(tbl.Header))
	assert.Equal(t, []string{tbl.Records[0].ID}, got.IDs())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file should be renamed into place")
}

func TestReadFile_Missing(t *testing.T) {
	_, err := template.ReadFile(filepath.Join(t.TempDir(), "missing.tsv"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestDuplicateIDs(t *testing.T) {
	recs := []*template.ClassRecord{{ID: "A:1"}, {ID: "A:2"}, {ID: "A:1"}, {ID: "A:1"}, {ID: "A:2"}, {ID: "A:3"}}
	assert.Equal(t, []string{"A:1", "A:2"}, template.DuplicateIDs(recs))
	assert.Empty(t, template.DuplicateIDs(recs[:2]))
}

func TestSplitValues(t *testing.T) {
	assert.Nil(t, template.SplitValues("  "))
	assert.Equal(t, []string{"a", "b"}, template.SplitValues("a|| b |"))
}
