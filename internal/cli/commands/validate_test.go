package commands

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/leapstack-labs/curatekit/internal/cli/config"
	"github.com/leapstack-labs/curatekit/internal/cli/output"
	clitestutil "github.com/leapstack-labs/curatekit/internal/cli/testutil"
	"github.com/leapstack-labs/curatekit/internal/testutil"
	"github.com/leapstack-labs/curatekit/pkg/core"
	"github.com/leapstack-labs/curatekit/pkg/lint"
)

// dirtyMaster has one DF02 error on line 5 and one DF06 warning on line 6.
func dirtyMaster(t *testing.T) string {
	t.Helper()
	rows := testutil.MasterRows(3)
	rows[1].Description = "A phenotype abc."
	rows[2].Description = "A phenotype that is observed in test organism number 3"
	return testutil.WriteTemplate(t, "dirty.tsv", testutil.TemplateTSV(rows...))
}

// warningMaster has a single DF06 warning.
func warningMaster(t *testing.T) string {
	t.Helper()
	rows := testutil.MasterRows(2)
	rows[0].Description = "A phenotype that is observed in test organism number 1"
	return testutil.WriteTemplate(t, "warn.tsv", testutil.TemplateTSV(rows...))
}

func TestNewValidateCommand(t *testing.T) {
	cmd := NewValidateCommand()

	assert.Equal(t, "validate <file.tsv>...", cmd.Use)
	assert.Equal(t, []string{"lint"}, cmd.Aliases)
	assert.NotEmpty(t, cmd.Example)

	for _, flag := range []string{"format", "disable", "rule", "severity", "watch"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestValidateCommand_Clean(t *testing.T) {
	master := testutil.WriteTemplate(t, "master.tsv", testutil.TemplateTSV(testutil.MasterRows(5)...))

	out, _, err := execute(t, NewValidateCommand(), master)
	require.NoError(t, err)
	assert.Contains(t, out, "No issues found in 5 records")
}

func TestValidateCommand_ExitStatus(t *testing.T) {
	tests := []struct {
		name    string
		args    func(t *testing.T) []string
		wantErr bool
	}{
		{"error finding fails", func(t *testing.T) []string { return []string{dirtyMaster(t)} }, true},
		{"warnings never fail", func(t *testing.T) []string { return []string{warningMaster(t)} }, false},
		{"threshold does not hide errors from exit status", func(t *testing.T) []string {
			return []string{dirtyMaster(t), "--severity", "error"}
		}, true},
		{"disabling the failing rule passes", func(t *testing.T) []string {
			return []string{dirtyMaster(t), "--disable", "DF02,DF03"}
		}, false},
		{"one dirty file among many fails", func(t *testing.T) []string {
			return []string{warningMaster(t), dirtyMaster(t)}
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, NewValidateCommand(), tt.args(t)...)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrValidation)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateCommand_SeverityThreshold(t *testing.T) {
	out, _, err := execute(t, NewValidateCommand(), warningMaster(t), "--severity", "error")
	require.NoError(t, err)
	assert.NotContains(t, out, "DF06")
	assert.Contains(t, out, "No issues at error severity or above in 2 records")
}

func TestValidateCommand_Markdown(t *testing.T) {
	path := dirtyMaster(t)

	out, _, err := execute(t, NewValidateCommand(), path)
	require.ErrorIs(t, err, ErrValidation)

	clitestutil.AssertValidMarkdown(t, out)
	assert.Contains(t, out, "## "+path)
	assert.Contains(t, out, "| Row | Severity | Rule | Record | Message |")
	assert.Contains(t, out, "| 5 | error | DF02 | METPO:1000002 |")
	assert.Contains(t, out, "| 6 | warning | DF06 | METPO:1000003 |")
	assert.Contains(t, out, "Summary: 1 errors, 2 warnings in 3 records across 1 files")
}

func TestValidateCommand_JSON(t *testing.T) {
	out, _, err := execute(t, NewValidateCommand(), dirtyMaster(t), "--rule", "DF06", "-f", "json")
	require.NoError(t, err)

	var result ValidateJSONOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Len(t, result.Files, 1)
	assert.Equal(t, 3, result.Files[0].Records)
	require.Len(t, result.Files[0].Findings, 1)
	f := result.Files[0].Findings[0]
	assert.Equal(t, "DF06", f.RuleID)
	assert.Equal(t, "METPO:1000003", f.RecordID)
	assert.Equal(t, 6, f.Row)
	assert.True(t, result.Summary.Passed)
	assert.Equal(t, 1, result.Summary.Warnings)
}

func TestValidateCommand_Errors(t *testing.T) {
	malformed := testutil.WriteTemplate(t, "bad.tsv", "ID\tLABEL\n")
	master := testutil.WriteTemplate(t, "master.tsv", testutil.TemplateTSV(testutil.MasterRows(2)...))

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"malformed header", []string{malformed}, core.ErrStructural},
		{"unknown disabled rule", []string{master, "--disable", "XX99"}, core.ErrConfiguration},
		{"unknown only rule", []string{master, "--rule", "ZZ01"}, core.ErrConfiguration},
		{"bad severity", []string{master, "--severity", "fatal"}, core.ErrConfiguration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, NewValidateCommand(), tt.args...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestBuildLintConfig(t *testing.T) {
	t.Run("config then flags", func(t *testing.T) {
		cfg := config.Default()
		cfg.Lint = config.LintConfig{
			Disabled: []string{"df06"},
			Severity: map[string]string{"df03": "error"},
			Rules:    map[string]map[string]any{"DF02": {"min_length": 10}},
		}

		lintCfg, err := buildLintConfig(cfg, &ValidateOptions{Disable: []string{" lb01 "}})
		require.NoError(t, err)

		assert.True(t, lintCfg.IsDisabled("DF06"))
		assert.True(t, lintCfg.IsDisabled("LB01"))
		assert.False(t, lintCfg.IsDisabled("DF01"))
		assert.Equal(t, core.SeverityError, lintCfg.GetSeverity("DF03", core.SeverityWarning))
		assert.Equal(t, map[string]any{"min_length": 10}, lintCfg.GetRuleOptions("DF02"))
	})

	t.Run("only rules", func(t *testing.T) {
		lintCfg, err := buildLintConfig(nil, &ValidateOptions{Rules: []string{"DF01"}})
		require.NoError(t, err)
		assert.False(t, lintCfg.IsDisabled("DF01"))
		assert.True(t, lintCfg.IsDisabled("DF02"))
	})

	t.Run("unknown option", func(t *testing.T) {
		cfg := config.Default()
		cfg.Lint.Rules = map[string]map[string]any{"DF02": {"minimum": 3}}

		_, err := buildLintConfig(cfg, &ValidateOptions{})
		require.ErrorIs(t, err, core.ErrConfiguration)
		assert.Contains(t, err.Error(), "unknown option")
	})

	t.Run("bad severity name", func(t *testing.T) {
		cfg := config.Default()
		cfg.Lint.Severity = map[string]string{"DF03": "loud"}

		_, err := buildLintConfig(cfg, &ValidateOptions{})
		require.ErrorIs(t, err, core.ErrConfiguration)
	})
}

func TestWatchAndValidate_StopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	tr := clitestutil.NewTestRendererMarkdown()
	cmdCtx := &CommandContext{Cfg: config.Default(), Logger: testutil.NewTestLogger(t), Renderer: tr.Renderer}
	path := warningMaster(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := watchAndValidate(ctx, cmdCtx, lint.NewAnalyzer(nil), []string{path}, core.SeverityInfo)
	require.NoError(t, err)
	assert.Contains(t, tr.Output(), "DF06")
	assert.Contains(t, tr.Output(), "Watching 1 files for changes")
}

func TestRenderReports_TextHasNoANSIWhenPiped(t *testing.T) {
	tr := clitestutil.NewTestRenderer(output.ModeText, false)
	analyzer := lint.NewAnalyzer(nil)

	hasErrors, err := validateFiles(tr.Renderer, analyzer, []string{dirtyMaster(t)}, core.SeverityInfo)
	require.NoError(t, err)
	assert.True(t, hasErrors)

	clitestutil.AssertNoANSI(t, tr.Output())
	assert.Contains(t, tr.Output(), "DF02")
	assert.Contains(t, tr.Output(), "METPO:1000002: ")
}
