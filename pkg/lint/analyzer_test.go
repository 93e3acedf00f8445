package lint_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/curatekit/internal/testutil"
	"github.com/leapstack-labs/curatekit/pkg/core"
	"github.com/leapstack-labs/curatekit/pkg/lint"
	_ "github.com/leapstack-labs/curatekit/pkg/lint/rules" // register rules
	"github.com/leapstack-labs/curatekit/pkg/template"
)

func parseTable(t *testing.T, content string) *template.Table {
	t.Helper()
	tbl, err := template.Parse(strings.NewReader(content), "terms.tsv")
	require.NoError(t, err)
	return tbl
}

func mixedTable(t *testing.T) *template.Table {
	rows := testutil.MasterRows(3)
	rows[1].Description = "A process of trait 2."
	rows[2].ID = rows[0].ID
	return parseTable(t, testutil.TemplateTSV(rows...)+"METPO:9\tshort row\n")
}

func TestValidate_Report(t *testing.T) {
	report := lint.NewAnalyzer(nil).WithLogger(testutil.NewTestLogger(t)).Validate(mixedTable(t))

	assert.Equal(t, "terms.tsv", report.Source)
	assert.Equal(t, 3, report.Records)
	require.NotEmpty(t, report.Findings)

	// table rules come first
	assert.Equal(t, "TP01", report.Findings[0].RuleID)
	assert.Equal(t, 7, report.Findings[0].Row)
	assert.Equal(t, "METPO:9", report.Findings[0].RecordID)
	assert.Equal(t, "TP02", report.Findings[1].RuleID)
	assert.Equal(t, "table.duplicate-id", report.Findings[1].Rule)
	assert.Equal(t, 6, report.Findings[1].Row)
	assert.Contains(t, report.Findings[1].Message, "lines 4, 6")

	var circular []lint.Finding
	for _, f := range report.Findings {
		if f.RuleID == "DF04" {
			circular = append(circular, f)
		}
	}
	require.Len(t, circular, 1)
	assert.Equal(t, "METPO:1000002", circular[0].RecordID)
	assert.Equal(t, 5, circular[0].Row)

	assert.True(t, report.HasErrors())
	assert.Equal(t, 3, report.Counts.Errors)
	assert.Equal(t, report.Counts.Total(), len(report.Findings))
}

func TestValidate_Idempotent(t *testing.T) {
	tbl := mixedTable(t)
	a := lint.NewAnalyzer(nil)

	first := a.Validate(tbl)
	second := a.Validate(tbl)
	assert.Equal(t, first, second)
}

func TestValidate_CleanTable(t *testing.T) {
	report := lint.NewAnalyzer(nil).Validate(parseTable(t, testutil.TemplateTSV(testutil.MasterRows(5)...)))

	assert.Empty(t, report.Findings)
	assert.NotNil(t, report.Findings)
	assert.False(t, report.HasErrors())
	assert.Equal(t, 5, report.Records)
}

func TestValidate_WarningsDoNotCountAsErrors(t *testing.T) {
	rows := testutil.MasterRows(1)
	rows[0].Source = "not-a-source"
	rows[0].Label = "Trait"
	report := lint.NewAnalyzer(nil).Validate(parseTable(t, testutil.TemplateTSV(rows...)))

	assert.Equal(t, 2, report.Counts.Warnings)
	assert.Zero(t, report.Counts.Errors)
	assert.False(t, report.HasErrors())
}

func TestAnalyzer_Config(t *testing.T) {
	rows := testutil.MasterRows(1)
	rows[0].Description = "abc."
	rec := parseTable(t, testutil.TemplateTSV(rows...)).Records[0]

	ids := func(cfg *lint.Config) []string {
		var out []string
		for _, f := range lint.NewAnalyzer(cfg).AnalyzeRecord(rec) {
			out = append(out, f.RuleID+":"+f.Severity.String())
		}
		return out
	}

	assert.Equal(t, []string{"DF02:error", "DF03:warning"}, ids(nil))
	assert.Equal(t, []string{"DF03:warning"}, ids(lint.NewConfig().Disable("DF02")))
	assert.Equal(t, []string{"DF02:warning", "DF03:warning"}, ids(lint.NewConfig().SetSeverity("DF02", core.SeverityWarning)))
	assert.Equal(t, []string{"DF03:warning"}, ids(lint.NewConfig().Only("DF03", "LB01")))
	assert.Nil(t, lint.NewAnalyzer(nil).AnalyzeRecord(nil))
}

func TestReport_AtLeast(t *testing.T) {
	rows := testutil.MasterRows(1)
	rows[0].Description = "abc."
	report := lint.NewAnalyzer(nil).Validate(parseTable(t, testutil.TemplateTSV(rows...)))

	assert.Len(t, report.AtLeast(core.SeverityError), 1)
	assert.Len(t, report.AtLeast(core.SeverityWarning), 2)
	assert.Len(t, report.AtLeast(core.SeverityInfo), 2)
}

func TestValidateFile(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		path := testutil.WriteTemplate(t, "terms.tsv", testutil.TemplateTSV(testutil.MasterRows(2)...))
		report, err := lint.NewAnalyzer(nil).ValidateFile(path)
		require.NoError(t, err)
		assert.Equal(t, path, report.Source)
		assert.Equal(t, 2, report.Records)
	})

	t.Run("malformed header", func(t *testing.T) {
		path := testutil.WriteTemplate(t, "bad.tsv", "ID\tLABEL\n")
		_, err := lint.NewAnalyzer(nil).ValidateFile(path)
		require.Error(t, err)
		assert.ErrorIs(t, err, core.ErrStructural)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := lint.NewAnalyzer(nil).ValidateFile(t.TempDir() + "/nope.tsv")
		require.Error(t, err)
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *lint.Config
		wantErr string
	}{
		{name: "default", cfg: lint.NewConfig()},
		{name: "nil", cfg: nil},
		{name: "known rules", cfg: lint.NewConfig().Disable("DF03").SetRuleOptions("DF02", map[string]any{"min_length": 10})},
		{name: "unknown disabled rule", cfg: lint.NewConfig().Disable("XX01"), wantErr: `unknown rule "XX01"`},
		{name: "unknown only rule", cfg: lint.NewConfig().Only("XX02"), wantErr: "lint.rule"},
		{name: "unknown severity rule", cfg: lint.NewConfig().SetSeverity("XX03", core.SeverityInfo), wantErr: "lint.severity"},
		{name: "unknown option", cfg: lint.NewConfig().SetRuleOptions("DF01", map[string]any{"min_length": 1}), wantErr: `unknown option "min_length"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, core.ErrConfiguration)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
