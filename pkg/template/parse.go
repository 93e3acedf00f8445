package template

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/leapstack-labs/curatekit/pkg/core"
)

// maxLineSize bounds a single template line. Definitions with embedded
// citations can run long.
const maxLineSize = 4 << 20

// lineReader yields tab-split lines. Templates carry no quoting, so quote
// characters are ordinary cell content.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func newReader(r io.Reader) *lineReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &lineReader{sc: sc}
}

// Read returns the cells of the next line and its 1-based line number.
func (lr *lineReader) Read() ([]string, int, error) {
	if !lr.sc.Scan() {
		if err := lr.sc.Err(); err != nil {
			return nil, lr.line + 1, err
		}
		return nil, lr.line, io.EOF
	}
	lr.line++
	line := strings.TrimSuffix(lr.sc.Text(), "\r")
	return strings.Split(line, "\t"), lr.line, nil
}

// ReadFile parses the template at path. The file is closed on every return.
func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path) //nolint:gosec // path is supplied by the operator
	if err != nil {
		return nil, fmt.Errorf("failed to open template: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Parse(f, path)
}

// Parse reads a template from r.
//
// The first three rows are always the header block. A malformed header
// (missing rows, rows of unequal width, or fewer than FixedColumns columns)
// fails the whole parse with a *core.StructuralError. Data rows with the
// wrong column count or an empty id are recorded in Table.Issues and
// skipped; parsing continues with the next row. Blank rows are ignored.
func Parse(r io.Reader, source string) (*Table, error) {
	cr := newReader(r)

	header, err := readHeader(cr, source)
	if err != nil {
		return nil, err
	}

	t := &Table{Source: source, Header: header}
	width := header.Width()

	for {
		cells, row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", sourceName(source), err)
		}

		if isBlank(cells) {
			continue
		}
		if len(cells) != width {
			t.Issues = append(t.Issues, RowIssue{
				Row:     row,
				ID:      strings.TrimSpace(cells[0]),
				Message: fmt.Sprintf("expected %d columns, got %d", width, len(cells)),
			})
			continue
		}
		if strings.TrimSpace(cells[ColID]) == "" {
			t.Issues = append(t.Issues, RowIssue{
				Row:     row,
				Message: "row has no id",
			})
			continue
		}

		t.Records = append(t.Records, newRecord(header, cells, row))
	}

	return t, nil
}

func readHeader(cr *lineReader, source string) (HeaderBlock, error) {
	var (
		rows  [HeaderRows][]string
		lines [HeaderRows]int
	)
	for i := range rows {
		cells, line, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return HeaderBlock{}, core.NewStructuralError(source, 0,
				"malformed header: expected %d header rows, found %d", HeaderRows, i)
		}
		if err != nil {
			return HeaderBlock{}, fmt.Errorf("failed to read %s: %w", sourceName(source), err)
		}
		rows[i] = cells
		lines[i] = line
	}

	width := len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			return HeaderBlock{}, core.NewStructuralError(source, lines[i],
				"malformed header: row %d has %d columns, row 1 has %d", i+1, len(row), width)
		}
	}
	if width < FixedColumns {
		return HeaderBlock{}, core.NewStructuralError(source, 0,
			"malformed header: expected at least %d columns, found %d", FixedColumns, width)
	}

	return HeaderBlock{Names: rows[0], Properties: rows[1], Directives: rows[2]}, nil
}

func newRecord(header HeaderBlock, cells []string, row int) *ClassRecord {
	rec := &ClassRecord{
		ID:               strings.TrimSpace(cells[ColID]),
		Label:            strings.TrimSpace(cells[ColLabel]),
		Type:             strings.TrimSpace(cells[ColType]),
		ParentClass:      strings.TrimSpace(cells[ColParentClass]),
		Description:      cells[ColDescription],
		DefinitionSource: cells[ColDefinitionSource],
		Comment:          cells[ColComment],
		Row:              row,
		Cells:            cells,
	}
	for col := FixedColumns; col < len(cells); col++ {
		rec.Synonyms = append(rec.Synonyms, Synonym{
			Column: header.Names[col],
			Kind:   synonymKindFor(header.Names[col], header.Properties[col]),
			Values: SplitValues(cells[col]),
		})
	}
	return rec
}

func isBlank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func sourceName(source string) string {
	if source == "" {
		return "template"
	}
	return source
}
