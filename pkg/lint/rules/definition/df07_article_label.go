package definition

import (
	"fmt"

	"github.com/leapstack-labs/curatekit/pkg/lint"
	"github.com/leapstack-labs/curatekit/pkg/lint/internal/text"
	"github.com/leapstack-labs/curatekit/pkg/template"
)

func init() {
	lint.Register(ArticleLabel)
}

// ArticleLabel flags definitions that open with an article and the class's own name.
var ArticleLabel = lint.RuleDef{
	ID:          "DF07",
	Name:        "definition.article-label",
	Group:       "definition",
	Description: "Definitions should not start with an article followed by the first word of the label.",
	Severity:    lint.SeverityWarning,
	Check:       checkArticleLabel,
	Rationale:   "Opening with the term itself restates the label; the genus should come first.",
	BadExample:  "label: methanogenesis, definition: A methanogenesis process that produces methane.",
	GoodExample: "label: methanogenesis, definition: An anaerobic respiration that produces methane.",
	Fix:         "Start the definition with the parent class.",
}

func checkArticleLabel(rec *template.ClassRecord, _ map[string]any) []lint.Finding {
	if !hasDefinition(rec) {
		return nil
	}
	label := text.Words(rec.Label)
	words := text.Words(rec.Description)
	if len(label) == 0 || len(words) < 2 {
		return nil
	}
	if (words[0] != "a" && words[0] != "an") || words[1] != label[0] {
		return nil
	}
	return []lint.Finding{{
		Severity: lint.SeverityWarning,
		Field:    lint.FieldDescription,
		Message:  fmt.Sprintf("definition starts with %q; avoid an article followed by the class name", words[0]+" "+words[1]),
	}}
}
