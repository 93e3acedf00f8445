package table

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/leapstack-labs/curatekit/pkg/lint"
	"github.com/leapstack-labs/curatekit/pkg/template"
)

func init() {
	lint.Register(DuplicateID)
}

// DuplicateID reports class IDs used by more than one row.
var DuplicateID = lint.RuleDef{
	ID:          "TP02",
	Name:        "table.duplicate-id",
	Group:       "table",
	Description: "Class IDs must be unique within a template.",
	Severity:    lint.SeverityError,
	CheckTable:  checkDuplicateID,
	Rationale:   "Duplicate IDs merge two classes into one when the template is built.",
}

func checkDuplicateID(t *template.Table, _ map[string]any) []lint.Finding {
	dups := template.DuplicateIDs(t.Records)
	if len(dups) == 0 {
		return nil
	}

	rows := make(map[string][]int, len(dups))
	for _, rec := range t.Records {
		rows[rec.ID] = append(rows[rec.ID], rec.Row)
	}

	findings := make([]lint.Finding, 0, len(dups))
	for _, id := range dups {
		lines := make([]string, len(rows[id]))
		for i, r := range rows[id] {
			lines[i] = strconv.Itoa(r)
		}
		findings = append(findings, lint.Finding{
			Severity: lint.SeverityError,
			Field:    lint.FieldID,
			RecordID: id,
			Row:      rows[id][1],
			Message:  fmt.Sprintf("id %s is used by %d rows (lines %s)", id, len(rows[id]), strings.Join(lines, ", ")),
		})
	}
	return findings
}
