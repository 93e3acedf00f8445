package lint

import (
	"log/slog"

	"github.com/leapstack-labs/curatekit/pkg/template"
)

// Analyzer runs registered lint rules against template records.
// It holds no state between calls.
type Analyzer struct {
	config *Config
	logger *slog.Logger
}

// NewAnalyzer creates a new analyzer with optional configuration.
func NewAnalyzer(config *Config) *Analyzer {
	if config == nil {
		config = NewConfig()
	}
	return &Analyzer{config: config, logger: slog.New(slog.DiscardHandler)}
}

// WithLogger sets the logger used for debug output.
func (a *Analyzer) WithLogger(logger *slog.Logger) *Analyzer {
	if logger != nil {
		a.logger = logger
	}
	return a
}

// AnalyzeRecord runs every enabled record rule, in ID order, against rec.
func (a *Analyzer) AnalyzeRecord(rec *template.ClassRecord) []Finding {
	if rec == nil {
		return nil
	}
	var findings []Finding
	for _, rule := range GetAll() {
		if rule.Check == nil || a.config.IsDisabled(rule.ID) {
			continue
		}
		found := rule.Check(rec, a.config.GetRuleOptions(rule.ID))
		for i := range found {
			found[i].RecordID = rec.ID
			found[i].Row = rec.Row
		}
		findings = append(findings, a.stamp(rule, found)...)
	}
	return findings
}

// Validate checks a parsed table. Table rules run first, then every record
// is analyzed in file order.
func (a *Analyzer) Validate(t *template.Table) *Report {
	report := &Report{Findings: []Finding{}}
	if t == nil {
		return report
	}
	report.Source = t.Source
	report.Records = len(t.Records)

	for _, rule := range GetAll() {
		if rule.CheckTable == nil || a.config.IsDisabled(rule.ID) {
			continue
		}
		report.add(a.stamp(rule, rule.CheckTable(t, a.config.GetRuleOptions(rule.ID)))...)
	}
	for i := range t.Records {
		report.add(a.AnalyzeRecord(t.Records[i])...)
	}

	a.logger.Debug("validated table",
		slog.String("source", t.Source),
		slog.Int("records", report.Records),
		slog.Int("errors", report.Counts.Errors),
		slog.Int("warnings", report.Counts.Warnings),
	)
	return report
}

// ValidateFile reads and validates the template at path. A malformed header
// is returned as an error; everything else is reported as findings.
func (a *Analyzer) ValidateFile(path string) (*Report, error) {
	t, err := template.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return a.Validate(t), nil
}

// stamp fills rule identity and applies severity overrides.
func (a *Analyzer) stamp(rule RuleDef, findings []Finding) []Finding {
	for i := range findings {
		findings[i].RuleID = rule.ID
		findings[i].Rule = rule.Name
		findings[i].Severity = a.config.GetSeverity(rule.ID, findings[i].Severity)
	}
	return findings
}
