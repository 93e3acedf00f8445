package split

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// ManifestMeta carries run details that are not part of a Result.
type ManifestMeta struct {
	// RunID identifies the run. A random UUID is used when empty.
	RunID string
	// Files maps curator name to the written assignment path.
	Files map[string]string
}

// Manifest is the YAML document describing a split run.
type Manifest struct {
	RunID       string               `yaml:"run_id"`
	Source      string               `yaml:"source"`
	Curators    int                  `yaml:"curators"`
	Overlap     float64              `yaml:"overlap"`
	Seed        uint64               `yaml:"seed"`
	Assignments []ManifestAssignment `yaml:"assignments"`
	Pairs       []ManifestPair       `yaml:"pairs,omitempty"`
}

// ManifestAssignment describes one curator's file.
type ManifestAssignment struct {
	Curator string   `yaml:"curator"`
	File    string   `yaml:"file,omitempty"`
	Records int      `yaml:"records"`
	Shared  int      `yaml:"shared"`
	IDs     []string `yaml:"ids"`
}

// ManifestPair lists the ids shared by two neighbouring curators.
type ManifestPair struct {
	Left  string   `yaml:"left"`
	Right string   `yaml:"right"`
	IDs   []string `yaml:"ids"`
}

// NewManifest builds the manifest document for res.
func NewManifest(res *Result, meta ManifestMeta) Manifest {
	runID := meta.RunID
	if runID == "" {
		runID = uuid.NewString()
	}
	m := Manifest{
		RunID:    runID,
		Source:   res.Source,
		Curators: len(res.Assignments),
		Overlap:  res.Overlap,
		Seed:     res.Seed,
	}
	stats := res.Stats()
	for i, a := range res.Assignments {
		m.Assignments = append(m.Assignments, ManifestAssignment{
			Curator: a.Curator,
			File:    meta.Files[a.Curator],
			Records: len(a.Records),
			Shared:  stats[i].Shared,
			IDs:     a.IDs(),
		})
	}
	for _, p := range res.Pairs {
		m.Pairs = append(m.Pairs, ManifestPair{Left: p.Left, Right: p.Right, IDs: append([]string{}, p.IDs...)})
	}
	return m
}

// WriteManifest encodes the manifest for res as YAML.
func WriteManifest(w io.Writer, res *Result, meta ManifestMeta) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewManifest(res, meta)); err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}
	return nil
}

// WriteManifestFile writes the manifest to path, creating parent
// directories. The document is written to a temporary file in the same
// directory and renamed into place, so a failed run never leaves a
// truncated manifest behind.
func WriteManifestFile(path string, res *Result, meta ManifestMeta) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create directory for manifest: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create manifest: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = WriteManifest(tmp, res, meta); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close manifest: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move manifest into place: %w", err)
	}
	return nil
}
