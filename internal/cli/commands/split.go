package commands

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/leapstack-labs/curatekit/internal/cli/config"
	"github.com/leapstack-labs/curatekit/internal/cli/output"
	intconfig "github.com/leapstack-labs/curatekit/internal/config"
	"github.com/leapstack-labs/curatekit/internal/logging"
	"github.com/leapstack-labs/curatekit/pkg/split"
	"github.com/leapstack-labs/curatekit/pkg/template"
	"github.com/spf13/cobra"
)

// SplitOptions holds options for the split command.
type SplitOptions struct {
	Curators int
	Overlap  float64
	Seed     uint64
	Names    []string
	OutDir   string
	Manifest string
	Format   string
	DryRun   bool
}

// NewSplitCommand creates the split command.
func NewSplitCommand() *cobra.Command {
	opts := &SplitOptions{}
	cmd := &cobra.Command{
		Use:   "split <master.tsv>",
		Short: "Split a master template into overlapping curator assignments",
		Long: `Shuffle the records of a master template and divide them among curators.

Every record is assigned to at least one curator. Neighbouring curators share
a boundary slice of records so that about --overlap percent of each
assignment is also reviewed by someone else. Each assignment is written as
<out-dir>/<curator>.tsv with the master's header block, and a YAML manifest
lists which ids went where. A relative --manifest path is placed in the
output directory.

Pass --seed to make a split reproducible. Without it a random seed is used
and reported in the summary and manifest.`,
		Example: `  # Three curators, 20% overlap
  curatekit split master.tsv

  # Named curators with a fixed seed
  curatekit split master.tsv --names ann,bob,cy --seed 42

  # Preview the split without writing files
  curatekit split master.tsv -k 5 -p 25 --dry-run

  # Machine-readable summary
  curatekit split master.tsv -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSplit(cmd, args[0], opts)
		},
	}

	cmd.Flags().IntVarP(&opts.Curators, "curators", "k", config.DefaultCurators, "Number of curators")
	cmd.Flags().Float64VarP(&opts.Overlap, "overlap", "p", config.DefaultOverlap, "Target overlap percentage (0 <= p < 100)")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "Shuffle seed (random when unset)")
	cmd.Flags().StringSliceVar(&opts.Names, "names", nil, "Curator names, one per curator (default curator1..curatorK)")
	cmd.Flags().StringVar(&opts.OutDir, "out-dir", config.DefaultOutDir, "Directory for assignment files")
	cmd.Flags().StringVar(&opts.Manifest, "manifest", config.DefaultManifest, "Manifest file name or path")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Plan the split without writing files")

	return cmd
}

// resolveSplitSettings layers explicitly set flags over the loaded config.
// The root command already folds flags into the config; applying them again
// keeps the command usable on its own.
func resolveSplitSettings(cmd *cobra.Command, cfg *config.Config, opts *SplitOptions) config.SplitConfig {
	sc := cfg.Split
	flags := cmd.Flags()
	if flags.Changed("curators") {
		sc.Curators = opts.Curators
	}
	if flags.Changed("overlap") {
		sc.Overlap = opts.Overlap
	}
	if flags.Changed("seed") {
		seed := opts.Seed
		sc.Seed = &seed
	}
	if flags.Changed("names") {
		sc.Names = opts.Names
	}
	if flags.Changed("out-dir") {
		sc.OutDir = absPath(opts.OutDir)
	}
	if flags.Changed("manifest") {
		sc.Manifest = opts.Manifest
	}

	if sc.Curators == 0 {
		sc.Curators = config.DefaultCurators
	}
	if sc.OutDir == "" {
		sc.OutDir = config.DefaultOutDir
	}
	if sc.Manifest == "" {
		sc.Manifest = config.DefaultManifest
	}
	if !filepath.IsAbs(sc.Manifest) {
		sc.Manifest = filepath.Join(sc.OutDir, sc.Manifest)
	}
	return sc
}

func runSplit(cmd *cobra.Command, path string, opts *SplitOptions) error {
	cmdCtx := NewCommandContext(cmd, opts.Format)
	r := cmdCtx.Renderer
	sc := resolveSplitSettings(cmd, cmdCtx.Cfg, opts)

	var splitOpts []split.Option
	if sc.Seed != nil {
		splitOpts = append(splitOpts, split.WithSeed(*sc.Seed))
	}
	if len(sc.Names) > 0 {
		splitOpts = append(splitOpts, split.WithCuratorNames(sc.Names...))
	}
	splitCfg, err := split.NewConfig(sc.Curators, sc.Overlap, splitOpts...)
	if err != nil {
		return err
	}

	tbl, err := template.ReadFile(path)
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	logger := logging.WithFields(cmdCtx.Logger, "run_id", runID)

	res, err := split.NewSplitter(splitCfg, logger).Split(tbl)
	if err != nil {
		return err
	}

	meta := split.ManifestMeta{RunID: runID, Files: make(map[string]string, len(res.Assignments))}
	for _, a := range res.Assignments {
		meta.Files[a.Curator] = filepath.Join(sc.OutDir, a.Curator+intconfig.AssignmentExt)
	}

	if !opts.DryRun {
		for _, a := range res.Assignments {
			if err := template.WriteFile(meta.Files[a.Curator], a.Header, a.Records); err != nil {
				return err
			}
			logger.Debug("assignment written", "curator", a.Curator, "records", len(a.Records))
		}
		if err := split.WriteManifestFile(sc.Manifest, res, manifestMeta(meta, sc.Manifest)); err != nil {
			return err
		}
		logger.Info("split complete",
			"source", res.Source,
			"curators", len(res.Assignments),
			"seed", res.Seed,
			"manifest", sc.Manifest,
		)
	}

	return renderSplit(r, res, meta, sc.Manifest, opts.DryRun)
}

// manifestMeta rewrites assignment paths relative to the manifest so the
// output directory can be moved as a whole.
func manifestMeta(meta split.ManifestMeta, manifestPath string) split.ManifestMeta {
	base := filepath.Dir(manifestPath)
	rel := split.ManifestMeta{RunID: meta.RunID, Files: make(map[string]string, len(meta.Files))}
	for curator, p := range meta.Files {
		if rp, err := filepath.Rel(base, p); err == nil {
			p = rp
		}
		rel.Files[curator] = filepath.ToSlash(p)
	}
	return rel
}

// SplitJSONOutput is the JSON output structure for the split command.
type SplitJSONOutput struct {
	RunID    string             `json:"run_id"`
	Source   string             `json:"source"`
	Seed     uint64             `json:"seed"`
	Overlap  float64            `json:"overlap"`
	Manifest string             `json:"manifest,omitempty"`
	DryRun   bool               `json:"dry_run"`
	Curators []SplitCuratorJSON `json:"curators"`
}

// SplitCuratorJSON describes one assignment in JSON output.
type SplitCuratorJSON struct {
	Curator string  `json:"curator"`
	File    string  `json:"file,omitempty"`
	Records int     `json:"records"`
	Shared  int     `json:"shared"`
	Ratio   float64 `json:"overlap_pct"`
}

func renderSplit(r *output.Renderer, res *split.Result, meta split.ManifestMeta, manifest string, dryRun bool) error {
	stats := res.Stats()

	if r.EffectiveMode() == output.ModeJSON {
		out := SplitJSONOutput{
			RunID:   meta.RunID,
			Source:  res.Source,
			Seed:    res.Seed,
			Overlap: res.Overlap,
			DryRun:  dryRun,
		}
		if !dryRun {
			out.Manifest = manifest
		}
		for _, s := range stats {
			c := SplitCuratorJSON{Curator: s.Curator, Records: s.Size, Shared: s.Shared, Ratio: s.Ratio}
			if !dryRun {
				c.File = meta.Files[s.Curator]
			}
			out.Curators = append(out.Curators, c)
		}
		return r.JSON(out)
	}

	r.Header("Split Summary")
	keyValue(r, "Source", res.Source)
	keyValue(r, "Seed", fmt.Sprintf("%d", res.Seed))
	keyValue(r, "Target overlap", fmt.Sprintf("%g%%", res.Overlap))
	r.Println("")

	header := []string{"Curator", "Records", "Shared", "Overlap %"}
	if !dryRun {
		header = append(header, "File")
	}
	rows := make([][]any, 0, len(stats))
	for _, s := range stats {
		row := []any{s.Curator, s.Size, s.Shared, fmt.Sprintf("%.1f", s.Ratio)}
		if !dryRun {
			row = append(row, meta.Files[s.Curator])
		}
		rows = append(rows, row)
	}
	r.Table(header, rows)
	r.Println("")

	if dryRun {
		r.Muted("Dry run: no files written")
		return nil
	}
	r.Success(fmt.Sprintf("Wrote %d assignments and %s", len(res.Assignments), manifest))
	return nil
}

// keyValue prints a labelled value in the renderer's mode.
func keyValue(r *output.Renderer, key, value string) {
	if r.EffectiveMode() == output.ModeMarkdown {
		r.Println(output.FormatKeyValue(key, value) + "  ")
		return
	}
	r.Printf("%s %s\n", r.Styles().Bold.Render(key+":"), value)
}
