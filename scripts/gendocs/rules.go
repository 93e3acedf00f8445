package main

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/leapstack-labs/curatekit/pkg/lint"
	_ "github.com/leapstack-labs/curatekit/pkg/lint/rules"
)

// groupDescriptions gives each rule group a one-line summary.
var groupDescriptions = map[string]string{
	"definition": "Rules about textual definitions and their sources.",
	"class-id":   "Rules about class identifiers.",
	"label":      "Rules about labels and their uniqueness.",
	"table":      "Rules that inspect the template as a whole.",
}

// generateRulesDocs writes the validation rule reference.
func generateRulesDocs(outDir string) error {
	log.Printf("Generating rule docs to %s", outDir)
	return writeDoc(outDir, "index.md", rulesPage(lint.GetAll()))
}

// rulesPage renders every rule grouped by category.
func rulesPage(rules []lint.RuleDef) *MarkdownWriter {
	w := NewMarkdownWriter()

	w.Frontmatter("Validation Rules", "Curation rules checked by curatekit validate")
	w.GeneratedMarker()

	grouped := make(map[string][]lint.RuleDef)
	for _, r := range rules {
		grouped[r.Group] = append(grouped[r.Group], r)
	}
	groups := make([]string, 0, len(grouped))
	for g := range grouped {
		groups = append(groups, g)
	}
	sort.Strings(groups)

	w.Header(1, "Validation Rules")
	w.Paragraph(fmt.Sprintf("curatekit checks templates against %s organized into %d groups.",
		Bold(fmt.Sprintf("%d rules", len(rules))), len(groups)))

	w.Header(2, "Severity Levels")
	w.Table([]string{"Severity", "Description"}, [][]string{
		{InlineCode("error"), "Must be fixed; validate exits non-zero"},
		{InlineCode("warning"), "Should be reviewed"},
		{InlineCode("info"), "Informational feedback"},
	})

	w.Header(2, "Configuration")
	w.Paragraph("Rules can be disabled, re-graded or tuned in " + InlineCode("curatekit.yaml") + ":")
	w.CodeBlock("yaml", `lint:
  disabled: [DF03]
  severity:
    DF06: error
  rules:
    DF02:
      min_length: 30`)

	w.Header(2, "Rule Index")
	var rows [][]string
	for _, g := range groups {
		for _, r := range grouped[g] {
			anchor := strings.ToLower(r.ID)
			rows = append(rows, []string{
				fmt.Sprintf("[%s](#%s)", r.ID, anchor),
				r.Name,
				InlineCode(r.Severity.String()),
				cleanDescription(r.Description),
			})
		}
	}
	w.Table([]string{"ID", "Name", "Severity", "Description"}, rows)

	for _, g := range groups {
		w.Header(2, groupTitle(g))
		if desc := groupDescriptions[g]; desc != "" {
			w.Paragraph(desc)
		}
		for _, r := range grouped[g] {
			writeRuleDoc(w, r)
		}
	}

	return w
}

func writeRuleDoc(w *MarkdownWriter, r lint.RuleDef) {
	w.Header(3, r.ID)
	w.Paragraph(Bold(r.Name) + ": " + r.Description)
	w.Paragraph("Default severity: " + InlineCode(r.Severity.String()))

	if r.Rationale != "" {
		w.Paragraph(r.Rationale)
	}
	if len(r.ConfigKeys) > 0 {
		keys := make([]string, len(r.ConfigKeys))
		for i, k := range r.ConfigKeys {
			keys[i] = InlineCode(k)
		}
		w.Paragraph("Options: " + strings.Join(keys, ", "))
	}
	if r.BadExample != "" {
		w.Line(Bold("Bad:"))
		w.Newline()
		w.CodeBlock("tsv", r.BadExample)
	}
	if r.GoodExample != "" {
		w.Line(Bold("Good:"))
		w.Newline()
		w.CodeBlock("tsv", r.GoodExample)
	}
	if r.Fix != "" {
		w.Paragraph(Bold("Fix:") + " " + r.Fix)
	}
}

// groupTitle turns "class-id" into "Class-id".
func groupTitle(g string) string {
	if g == "" {
		return g
	}
	return strings.ToUpper(g[:1]) + g[1:]
}
