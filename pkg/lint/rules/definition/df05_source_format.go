package definition

import (
	"fmt"
	"net/url"
	"regexp"

	"github.com/leapstack-labs/curatekit/pkg/lint"
	"github.com/leapstack-labs/curatekit/pkg/template"
)

func init() {
	lint.Register(SourceFormat)
}

// SourceFormat checks that every definition source is a recognised
// identifier or URL.
var SourceFormat = lint.RuleDef{
	ID:          "DF05",
	Name:        "definition.source-format",
	Group:       "definition",
	Description: "Definition sources must be PMID, DOI, ISBN identifiers or absolute URLs.",
	Severity:    lint.SeverityWarning,
	Check:       checkSourceFormat,
	Rationale:   "Sources that cannot be resolved cannot be checked by reviewers.",
	BadExample:  "PMID:12345678|not-a-source",
	GoodExample: "PMID:12345678|DOI:10.1234/example|https://example.org/paper",
	Fix:         "Separate multiple sources with '|' and use the PMID:, DOI:10., ISBN: prefixes.",
}

var sourcePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^PMID:\d+$`),
	regexp.MustCompile(`(?i)^DOI:10\.\S+$`),
	regexp.MustCompile(`(?i)^ISBN:[\d-]+$`),
}

func checkSourceFormat(rec *template.ClassRecord, _ map[string]any) []lint.Finding {
	sources := rec.Sources()
	if len(sources) == 0 {
		if !hasDefinition(rec) {
			return nil
		}
		return []lint.Finding{{
			Severity: lint.SeverityWarning,
			Field:    lint.FieldSource,
			Message:  "no definition source provided",
		}}
	}

	var findings []lint.Finding
	for _, src := range sources {
		if validSource(src) {
			continue
		}
		findings = append(findings, lint.Finding{
			Severity: lint.SeverityWarning,
			Field:    lint.FieldSource,
			Message:  fmt.Sprintf("unrecognized source format %q (expected PMID:, DOI:, ISBN: or URL)", src),
		})
	}
	return findings
}

func validSource(src string) bool {
	for _, re := range sourcePatterns {
		if re.MatchString(src) {
			return true
		}
	}
	u, err := url.Parse(src)
	if err != nil || u.Host == "" {
		return false
	}
	switch u.Scheme {
	case "http", "https", "ftp":
		return true
	}
	return false
}
