package label

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/leapstack-labs/curatekit/pkg/lint"
	"github.com/leapstack-labs/curatekit/pkg/template"
)

func init() {
	lint.Register(LabelCase)
}

// LabelCase flags capitalized words that are neither acronyms nor known
// proper nouns.
var LabelCase = lint.RuleDef{
	ID:          "LB01",
	Name:        "label.case",
	Group:       "label",
	Description: "Labels should be lowercase apart from acronyms and proper nouns.",
	Severity:    lint.SeverityWarning,
	Check:       checkLabelCase,
	ConfigKeys:  []string{"proper_nouns"},
	Rationale:   "Consistent lowercase labels read naturally in sentences and sort predictably.",
	BadExample:  "Anaerobic Respiration",
	GoodExample: "anaerobic respiration, DNA replication, Gram-positive",
	Fix:         "Lowercase the word, or add it to the proper_nouns option if it is a name.",
}

var defaultProperNouns = []string{"Gram", "Archaea", "Bacteria", "Eukaryota"}

func checkLabelCase(rec *template.ClassRecord, opts map[string]any) []lint.Finding {
	nouns := append(slices.Clone(defaultProperNouns), lint.GetStringSliceOption(opts, "proper_nouns", nil)...)

	tokens := strings.FieldsFunc(rec.Label, func(r rune) bool {
		return unicode.IsSpace(r) || r == '-'
	})
	var offending []string
	for _, tok := range tokens {
		word := strings.TrimFunc(tok, unicode.IsPunct)
		if !capitalized(word) || isAcronym(word) || slices.Contains(nouns, word) {
			continue
		}
		offending = append(offending, word)
	}
	if len(offending) == 0 {
		return nil
	}
	return []lint.Finding{{
		Severity: lint.SeverityWarning,
		Field:    lint.FieldLabel,
		Message: fmt.Sprintf("label %q has capitalized words that are not acronyms or proper nouns: %s",
			rec.Label, strings.Join(offending, ", ")),
	}}
}

// capitalized reports whether word starts with an uppercase letter and has
// more than one rune.
func capitalized(word string) bool {
	r, size := utf8.DecodeRuneInString(word)
	return size > 0 && unicode.IsUpper(r) && utf8.RuneCountInString(word) > 1
}

func isAcronym(word string) bool {
	for _, r := range word {
		if unicode.IsLetter(r) && !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}
