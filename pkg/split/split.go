package split

import (
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/leapstack-labs/curatekit/pkg/core"
	"github.com/leapstack-labs/curatekit/pkg/template"
)

// Assignment is one curator's share of the master template.
type Assignment struct {
	Curator string
	Header  template.HeaderBlock
	Records []*template.ClassRecord
	// Borrowed is how many trailing records were copied from the
	// predecessor's unique block.
	Borrowed int
}

// IDs returns record ids in assignment order.
func (a Assignment) IDs() []string {
	ids := make([]string, len(a.Records))
	for i, r := range a.Records {
		ids[i] = r.ID
	}
	return ids
}

// PairOverlap is the boundary subset shared by two neighbouring curators.
type PairOverlap struct {
	Left  string
	Right string
	IDs   []string
}

// CuratorStats summarises one assignment.
type CuratorStats struct {
	Curator string
	Size    int
	Shared  int
	// Ratio is Shared/Size as a percentage.
	Ratio float64
}

// Result is the outcome of one split.
type Result struct {
	Source      string
	Overlap     float64
	Seed        uint64
	Assignments []Assignment
	Pairs       []PairOverlap
}

// Stats reports size, shared count and realised overlap per curator.
func (r *Result) Stats() []CuratorStats {
	shared := make(map[string]int, len(r.Assignments))
	for _, p := range r.Pairs {
		shared[p.Left] += len(p.IDs)
		if p.Right != p.Left {
			shared[p.Right] += len(p.IDs)
		}
	}
	stats := make([]CuratorStats, len(r.Assignments))
	for i, a := range r.Assignments {
		s := CuratorStats{Curator: a.Curator, Size: len(a.Records), Shared: shared[a.Curator]}
		if s.Size > 0 {
			s.Ratio = 100 * float64(s.Shared) / float64(s.Size)
		}
		stats[i] = s
	}
	return stats
}

// Splitter produces overlapping assignments from a master table.
type Splitter struct {
	cfg    Config
	logger *slog.Logger
}

// NewSplitter returns a Splitter. A nil logger discards output.
func NewSplitter(cfg Config, logger *slog.Logger) *Splitter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Splitter{cfg: cfg, logger: logger}
}

// Split partitions t. It fails with a *core.StructuralError when the master
// did not parse cleanly or repeats an id, and with a
// *core.ConfigurationError when there are fewer records than curators.
func (s *Splitter) Split(t *template.Table) (*Result, error) {
	if err := checkTable(t); err != nil {
		return nil, err
	}
	k := s.cfg.Curators()
	n := len(t.Records)
	if n < k {
		return nil, core.NewConfigurationError("curators", "%d curators requested but %s has only %d records", k, t.Source, n)
	}

	seed, ok := s.cfg.Seed()
	if !ok {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, seed))

	shuffled := shuffle(t.Records, rng)
	u := blockSizes(n, k)
	c := planBoundaries(u, s.cfg.Overlap())

	s.logger.Debug("split planned",
		slog.String("source", t.Source),
		slog.Int("records", n),
		slog.Int("curators", k),
		slog.Float64("overlap", s.cfg.Overlap()),
		slog.Any("blocks", u),
		slog.Any("boundaries", c),
	)

	res := &Result{
		Source:      t.Source,
		Overlap:     s.cfg.Overlap(),
		Seed:        seed,
		Assignments: buildAssignments(t.Header, shuffled, s.cfg.Names(), u, c),
	}
	res.Pairs = buildPairs(shuffled, s.cfg.Names(), u, c)
	return res, nil
}

func checkTable(t *template.Table) error {
	if t == nil {
		return core.NewStructuralError("", 0, "no table to split")
	}
	if len(t.Issues) > 0 {
		msgs := make([]string, 0, len(t.Issues))
		for _, is := range t.Issues {
			msgs = append(msgs, is.String())
		}
		return core.NewStructuralError(t.Source, t.Issues[0].Row,
			"master has %d malformed rows: %s", len(t.Issues), strings.Join(msgs, "; "))
	}
	if dups := template.DuplicateIDs(t.Records); len(dups) > 0 {
		return core.NewStructuralError(t.Source, 0, "duplicate ids: %s", strings.Join(dups, ", "))
	}
	return nil
}

func shuffle(records []*template.ClassRecord, rng *rand.Rand) []*template.ClassRecord {
	out := append([]*template.ClassRecord(nil), records...)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// blockStarts returns the offset of each unique block in the shuffled list.
func blockStarts(u []int) []int {
	starts := make([]int, len(u))
	off := 0
	for i, n := range u {
		starts[i] = off
		off += n
	}
	return starts
}

// tail returns the last c[i] records of block i.
func tail(shuffled []*template.ClassRecord, starts, u, c []int, i int) []*template.ClassRecord {
	end := starts[i] + u[i]
	return shuffled[end-c[i] : end]
}

func buildAssignments(header template.HeaderBlock, shuffled []*template.ClassRecord, names []string, u, c []int) []Assignment {
	k := len(u)
	starts := blockStarts(u)
	out := make([]Assignment, k)
	for i := range out {
		prev := (i - 1 + k) % k
		borrowed := 0
		if k > 1 {
			borrowed = c[prev]
		}
		recs := make([]*template.ClassRecord, 0, u[i]+borrowed)
		recs = append(recs, shuffled[starts[i]:starts[i]+u[i]]...)
		if borrowed > 0 {
			recs = append(recs, tail(shuffled, starts, u, c, prev)...)
		}
		out[i] = Assignment{Curator: names[i], Header: header, Records: recs, Borrowed: borrowed}
	}
	return out
}

// buildPairs lists each neighbouring pair once. With two curators both
// boundary slices belong to the same pair.
func buildPairs(shuffled []*template.ClassRecord, names []string, u, c []int) []PairOverlap {
	k := len(u)
	if k < 2 {
		return nil
	}
	starts := blockStarts(u)
	ids := func(i int) []string {
		recs := tail(shuffled, starts, u, c, i)
		out := make([]string, len(recs))
		for j, r := range recs {
			out[j] = r.ID
		}
		return out
	}
	if k == 2 {
		return []PairOverlap{{Left: names[0], Right: names[1], IDs: append(ids(0), ids(1)...)}}
	}
	pairs := make([]PairOverlap, k)
	for i := range pairs {
		pairs[i] = PairOverlap{Left: names[i], Right: names[(i+1)%k], IDs: ids(i)}
	}
	return pairs
}
