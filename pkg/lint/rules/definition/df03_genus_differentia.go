package definition

import (
	"fmt"
	"slices"
	"strings"

	"github.com/leapstack-labs/curatekit/pkg/lint"
	"github.com/leapstack-labs/curatekit/pkg/lint/internal/text"
	"github.com/leapstack-labs/curatekit/pkg/template"
)

func init() {
	lint.Register(GenusDifferentia)
}

// GenusDifferentia checks that a definition names its parent class and then
// the distinguishing characteristics.
var GenusDifferentia = lint.RuleDef{
	ID:          "DF03",
	Name:        "definition.genus-differentia",
	Group:       "definition",
	Description: "Definitions should read \"A <parent class> that <differentia>\".",
	Severity:    lint.SeverityWarning,
	Check:       checkGenusDifferentia,
	ConfigKeys:  []string{"connectors"},
	Rationale: "Genus-differentia definitions make the is-a relation explicit and state what separates the class " +
		"from its siblings. The check is approximate and only warns.",
	BadExample:  "Methane is produced by some archaea.",
	GoodExample: "An anaerobic respiration that produces methane.",
	Fix:         "Start with an article and the parent class label, followed by a connector such as \"that\" or \"in which\".",
}

var defaultConnectors = []string{"that", "in which", "characterized by"}

type genusOptions struct {
	Connectors []string `option:"connectors"`
}

func checkGenusDifferentia(rec *template.ClassRecord, opts map[string]any) []lint.Finding {
	if !hasDefinition(rec) {
		return nil
	}

	var o genusOptions
	if err := lint.DecodeOptions(opts, &o); err != nil || len(o.Connectors) == 0 {
		o.Connectors = defaultConnectors
	}
	connectors := make([][]string, 0, len(o.Connectors))
	for _, c := range o.Connectors {
		if w := text.Words(c); len(w) > 0 {
			connectors = append(connectors, w)
		}
	}

	words := text.Words(rec.Description)
	parent := text.Words(text.StripArticle(text.Fold(rec.ParentClass)))

	if len(parent) > 0 {
		if followsForm(words, parent, connectors) {
			return nil
		}
		return []lint.Finding{violation(fmt.Sprintf("A/An %s that ...", strings.Join(parent, " ")))}
	}
	if followsGenericForm(words, connectors) {
		return nil
	}
	return []lint.Finding{violation("A/An <genus> that ...")}
}

func violation(form string) lint.Finding {
	return lint.Finding{
		Severity: lint.SeverityWarning,
		Field:    lint.FieldDescription,
		Message:  fmt.Sprintf("definition may not follow genus-differentia form (expected %q)", form),
	}
}

func isArticle(w string) bool { return w == "a" || w == "an" }

// followsForm matches: article, parent words, connector.
func followsForm(words, parent []string, connectors [][]string) bool {
	if len(words) < 1+len(parent) || !isArticle(words[0]) {
		return false
	}
	if !slices.Equal(words[1:1+len(parent)], parent) {
		return false
	}
	return connectorAt(words, 1+len(parent), connectors)
}

// followsGenericForm matches: article, one or more words, connector.
func followsGenericForm(words []string, connectors [][]string) bool {
	if len(words) < 3 || !isArticle(words[0]) {
		return false
	}
	for i := 2; i < len(words); i++ {
		if connectorAt(words, i, connectors) {
			return true
		}
	}
	return false
}

func connectorAt(words []string, i int, connectors [][]string) bool {
	for _, c := range connectors {
		if i+len(c) <= len(words) && slices.Equal(words[i:i+len(c)], c) {
			return true
		}
	}
	return false
}
