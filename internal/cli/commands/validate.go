package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/leapstack-labs/curatekit/internal/cli/config"
	"github.com/leapstack-labs/curatekit/internal/cli/output"
	"github.com/leapstack-labs/curatekit/pkg/core"
	"github.com/leapstack-labs/curatekit/pkg/lint"
	_ "github.com/leapstack-labs/curatekit/pkg/lint/rules" // register rules
	"github.com/spf13/cobra"
)

// ErrValidation is returned when a validated file has an error-severity finding.
var ErrValidation = errors.New("validation errors found")

// watchDebounce coalesces the burst of events an editor save produces.
const watchDebounce = 150 * time.Millisecond

// ValidateOptions holds options for the validate command.
type ValidateOptions struct {
	Format   string   // Output format: text, markdown, json
	Disable  []string // Rule IDs to disable
	Rules    []string // Run only specific rules
	Severity string   // Display threshold: error, warning, info
	Watch    bool     // Re-run on file changes
}

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	opts := &ValidateOptions{}
	cmd := &cobra.Command{
		Use:     "validate <file.tsv>...",
		Aliases: []string{"lint"},
		Short:   "Check term definitions and labels against editorial rules",
		Long: `Validate class records in one or more templates.

Any template can be checked: the master, an assignment, or a reviewed file.
Every record is evaluated and all findings are reported; a bad row never
stops the run. The command exits with status 1 when any error-severity
finding exists. Warnings and info findings never change the exit status,
and neither does the --severity display threshold.

Rules can be configured in curatekit.yaml under lint:.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # Validate a master template
  curatekit validate master.tsv

  # Validate every assignment
  curatekit validate assignments/*.tsv

  # Show errors only
  curatekit validate master.tsv --severity error

  # Skip the formatting rule
  curatekit validate master.tsv --disable DF06

  # Re-validate on every save
  curatekit validate reviewed.tsv --watch`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")
	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Rule IDs to disable")
	cmd.Flags().StringSliceVar(&opts.Rules, "rule", nil, "Run only specific rules")
	cmd.Flags().StringVar(&opts.Severity, "severity", "info", "Minimum severity to display: error, warning, info")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Re-validate when the files change")

	_ = cmd.RegisterFlagCompletionFunc("severity", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"error", "warning", "info"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runValidate(cmd *cobra.Command, paths []string, opts *ValidateOptions) error {
	cmdCtx := NewCommandContext(cmd, opts.Format)

	threshold, ok := core.ParseSeverity(opts.Severity)
	if !ok {
		return core.NewConfigurationError("severity", "unknown severity %q (expected error, warning or info)", opts.Severity)
	}

	lintCfg, err := buildLintConfig(cmdCtx.Cfg, opts)
	if err != nil {
		return err
	}
	analyzer := lint.NewAnalyzer(lintCfg).WithLogger(cmdCtx.Logger)

	if opts.Watch {
		return watchAndValidate(cmd.Context(), cmdCtx, analyzer, paths, threshold)
	}

	hasErrors, err := validateFiles(cmdCtx.Renderer, analyzer, paths, threshold)
	if err != nil {
		return err
	}
	if hasErrors {
		return ErrValidation
	}
	return nil
}

func normalizeRuleID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

// buildLintConfig merges the lint section of the config with CLI flags.
func buildLintConfig(cfg *config.Config, opts *ValidateOptions) (*lint.Config, error) {
	lintCfg := lint.NewConfig()

	// Apply project config first (lower precedence)
	if cfg != nil {
		for _, id := range cfg.Lint.Disabled {
			if id = normalizeRuleID(id); id != "" {
				lintCfg.Disable(id)
			}
		}
		for id, sev := range cfg.Lint.Severity {
			s, ok := core.ParseSeverity(sev)
			if !ok {
				return nil, core.NewConfigurationError("lint.severity."+id, "unknown severity %q (expected error, warning or info)", sev)
			}
			lintCfg.SetSeverity(normalizeRuleID(id), s)
		}
		for id, ruleOpts := range cfg.Lint.Rules {
			lintCfg.SetRuleOptions(normalizeRuleID(id), ruleOpts)
		}
	}

	// Apply CLI overrides (higher precedence)
	for _, id := range opts.Disable {
		if id = normalizeRuleID(id); id != "" {
			lintCfg.Disable(id)
		}
	}
	for _, id := range opts.Rules {
		if id = normalizeRuleID(id); id != "" {
			lintCfg.Only(id)
		}
	}

	if err := lintCfg.Validate(); err != nil {
		return nil, err
	}
	return lintCfg, nil
}

// validateFiles validates each path and renders the reports. It reports
// whether any error-severity finding exists regardless of the threshold.
func validateFiles(r *output.Renderer, analyzer *lint.Analyzer, paths []string, threshold core.Severity) (bool, error) {
	reports := make([]*lint.Report, 0, len(paths))
	hasErrors := false
	for _, path := range paths {
		report, err := analyzer.ValidateFile(path)
		if err != nil {
			return false, err
		}
		hasErrors = hasErrors || report.HasErrors()
		reports = append(reports, report)
	}
	return hasErrors, renderReports(r, reports, threshold)
}

// ValidateJSONOutput is the JSON output structure for the validate command.
type ValidateJSONOutput struct {
	Files   []ValidateFileJSON  `json:"files"`
	Summary ValidateSummaryJSON `json:"summary"`
}

// ValidateFileJSON holds the displayed findings for one file.
type ValidateFileJSON struct {
	Path     string         `json:"path"`
	Records  int            `json:"records"`
	Findings []lint.Finding `json:"findings"`
	Counts   lint.Counts    `json:"counts"`
}

// ValidateSummaryJSON totals every file. Counts include findings below the
// display threshold.
type ValidateSummaryJSON struct {
	Files    int  `json:"files"`
	Records  int  `json:"records"`
	Errors   int  `json:"errors"`
	Warnings int  `json:"warnings"`
	Info     int  `json:"info"`
	Passed   bool `json:"passed"`
}

func summarize(reports []*lint.Report) ValidateSummaryJSON {
	s := ValidateSummaryJSON{Files: len(reports), Passed: true}
	for _, rep := range reports {
		s.Records += rep.Records
		s.Errors += rep.Counts.Errors
		s.Warnings += rep.Counts.Warnings
		s.Info += rep.Counts.Info
		if rep.HasErrors() {
			s.Passed = false
		}
	}
	return s
}

func renderReports(r *output.Renderer, reports []*lint.Report, threshold core.Severity) error {
	summary := summarize(reports)
	mode := r.EffectiveMode()

	if mode == output.ModeJSON {
		out := ValidateJSONOutput{Summary: summary}
		for _, rep := range reports {
			findings := rep.AtLeast(threshold)
			if findings == nil {
				findings = []lint.Finding{}
			}
			out.Files = append(out.Files, ValidateFileJSON{
				Path:     rep.Source,
				Records:  rep.Records,
				Findings: findings,
				Counts:   rep.Counts,
			})
		}
		return r.JSON(out)
	}

	shown := 0
	for _, rep := range reports {
		findings := rep.AtLeast(threshold)
		if len(findings) == 0 {
			continue
		}
		shown += len(findings)
		if mode == output.ModeMarkdown {
			renderFindingsMarkdown(r, rep.Source, findings)
		} else {
			renderFindingsText(r, rep.Source, findings)
		}
	}

	if shown == 0 {
		if summary.Errors+summary.Warnings+summary.Info == 0 {
			r.Success(fmt.Sprintf("No issues found in %d records", summary.Records))
		} else {
			r.Success(fmt.Sprintf("No issues at %s severity or above in %d records", threshold, summary.Records))
		}
		return nil
	}

	parts := []string{fmt.Sprintf("%d errors", summary.Errors), fmt.Sprintf("%d warnings", summary.Warnings)}
	if summary.Info > 0 {
		parts = append(parts, fmt.Sprintf("%d info", summary.Info))
	}
	r.Printf("Summary: %s in %d records across %d files\n", strings.Join(parts, ", "), summary.Records, summary.Files)
	return nil
}

func renderFindingsText(r *output.Renderer, source string, findings []lint.Finding) {
	styles := r.Styles()
	r.Println(styles.Path.Render(source))
	for _, f := range findings {
		r.Printf("  %s  %s  %s  %s%s\n",
			styles.Muted.Render(fmt.Sprintf("%-5s", rowLabel(f.Row))),
			severityStyle(r, f.Severity),
			styles.Bold.Render(f.RuleID),
			recordLabel(f.RecordID),
			f.Message,
		)
	}
	r.Println("")
}

func renderFindingsMarkdown(r *output.Renderer, source string, findings []lint.Finding) {
	r.Println(output.FormatHeader(source, 2))
	r.Println("")
	rows := make([][]any, 0, len(findings))
	for _, f := range findings {
		rows = append(rows, []any{rowLabel(f.Row), f.Severity.String(), f.RuleID, f.RecordID, f.Message})
	}
	r.Table([]string{"Row", "Severity", "Rule", "Record", "Message"}, rows)
	r.Println("")
}

func rowLabel(row int) string {
	if row == 0 {
		return "-"
	}
	return fmt.Sprintf("%d", row)
}

func recordLabel(id string) string {
	if id == "" {
		return ""
	}
	return id + ": "
}

func severityStyle(r *output.Renderer, sev core.Severity) string {
	switch sev {
	case core.SeverityError:
		return r.Styles().Error.Render("error  ")
	case core.SeverityWarning:
		return r.Styles().Warning.Render("warning")
	case core.SeverityInfo:
		return r.Styles().Info.Render("info   ")
	default:
		return r.Styles().Muted.Render("unknown")
	}
}

// watchAndValidate validates paths, then again after each change until
// interrupted. Directories are watched rather than files because editors
// often save by replacing the file.
func watchAndValidate(ctx context.Context, cmdCtx *CommandContext, analyzer *lint.Analyzer, paths []string, threshold core.Severity) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := cmdCtx.Renderer
	logger := cmdCtx.Logger

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	watched := make(map[string]bool, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs := absPath(p)
		watched[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	run := func() {
		if _, err := validateFiles(r, analyzer, paths, threshold); err != nil {
			r.Error(err.Error())
		}
	}

	run()
	r.Muted(fmt.Sprintf("Watching %d files for changes. Press Ctrl+C to stop.", len(watched)))

	changed := make(chan struct{}, 1)
	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !watched[filepath.Clean(event.Name)] {
				continue
			}
			logger.Debug("change detected", "file", event.Name, "op", event.Op.String())
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(watchDebounce, func() {
				select {
				case changed <- struct{}{}:
				default:
				}
			})
		case <-changed:
			run()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", "error", err)
		}
	}
}
