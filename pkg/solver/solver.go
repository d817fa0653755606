/*
Package solver wires the pipeline end to end: validate the puzzle, scan
the dictionary, reject unwanted words, score the survivors and sort them
for presentation.

Everything downstream of validation is synchronous, CPU-bound string
processing over read-only state, so a Solver is safe to share across
goroutines.
*/
package solver

import (
	"time"

	"github.com/bastiangx/beesolve/pkg/classifier"
	"github.com/bastiangx/beesolve/pkg/dictionary"
	"github.com/bastiangx/beesolve/pkg/generate"
	"github.com/bastiangx/beesolve/pkg/puzzle"
	"github.com/bastiangx/beesolve/pkg/score"
	"github.com/charmbracelet/log"
)

// Result is one ranked answer.
type Result struct {
	Word       string
	Confidence float64
	Pangram    bool
}

// Stats summarizes a single solve.
type Stats struct {
	DictionarySize int
	Candidates     int
	Rejected       map[classifier.Reason]int
	Scored         int
	Elapsed        time.Duration
}

// Solver owns the pipeline components. All of them are read-only during a
// solve.
type Solver struct {
	dict   dictionary.Provider
	gen    *generate.Generator
	cls    *classifier.Classifier
	scorer *score.Scorer
}

// New wires a solver. A nil generator, classifier or scorer falls back to
// defaults; the dictionary is required.
func New(dict dictionary.Provider, gen *generate.Generator, cls *classifier.Classifier, scorer *score.Scorer) *Solver {
	if gen == nil {
		gen = generate.New()
	}
	if cls == nil {
		cls = classifier.NewDefault()
	}
	if scorer == nil {
		scorer = score.New(cls, nil)
	}
	return &Solver{dict: dict, gen: gen, cls: cls, scorer: scorer}
}

// Solve runs the full pipeline and returns results sorted by
// (confidence desc, length desc, alphabetical asc).
func (s *Solver) Solve(letters, required string) ([]Result, error) {
	results, _, err := s.SolveWithStats(letters, required)
	return results, err
}

// SolveWithStats is Solve plus per-stage counters.
func (s *Solver) SolveWithStats(letters, required string) ([]Result, Stats, error) {
	start := time.Now()

	spec, err := puzzle.ValidateAndNormalize(letters, required)
	if err != nil {
		return nil, Stats{}, err
	}

	// A trie-backed dictionary can skip every subtree whose root letter is
	// outside the puzzle set. Advanced filtering happens below with reason
	// counting, so skip the generator's own advanced pass here.
	words := s.dict.Words()
	if ts, ok := s.dict.(*dictionary.TrieStore); ok {
		words = ts.WordsWithFirstLetterIn(spec.Set)
	}
	candidates, err := s.gen.GenerateFromWords(words, letters, required, false)
	if err != nil {
		return nil, Stats{}, err
	}

	rejected := make(map[classifier.Reason]int)
	survivors := make([]string, 0, len(candidates))
	for _, w := range candidates {
		if reason, bad := s.cls.RejectionReason(w); bad {
			rejected[reason]++
			continue
		}
		survivors = append(survivors, w)
	}

	ranked := s.scorer.RankWords(survivors, true)
	results := make([]Result, 0, len(ranked))
	for _, sw := range ranked {
		results = append(results, Result{
			Word:       sw.Word,
			Confidence: sw.Confidence,
			Pangram:    spec.IsPangram(sw.Word),
		})
	}

	stats := Stats{
		DictionarySize: s.dict.Len(),
		Candidates:     len(candidates),
		Rejected:       rejected,
		Scored:         len(results),
		Elapsed:        time.Since(start),
	}
	log.Debugf("Solve %s/%c: %d candidates, %d rejected, %d scored in %v",
		spec.Letters, spec.Required, stats.Candidates, stats.Candidates-stats.Scored, stats.Scored, stats.Elapsed)
	return results, stats, nil
}

// SolveAboveConfidence runs Solve and keeps only results meeting the
// minimum confidence, which must lie in [0,100].
func (s *Solver) SolveAboveConfidence(letters, required string, minConfidence float64) ([]Result, error) {
	results, err := s.Solve(letters, required)
	if err != nil {
		return nil, err
	}
	words := make([]string, 0, len(results))
	for _, r := range results {
		words = append(words, r.Word)
	}
	kept, err := s.scorer.FilterByConfidence(words, minConfidence)
	if err != nil {
		return nil, err
	}
	keep := make(map[string]struct{}, len(kept))
	for _, w := range kept {
		keep[w] = struct{}{}
	}
	out := make([]Result, 0, len(kept))
	for _, r := range results {
		if _, ok := keep[r.Word]; ok {
			out = append(out, r)
		}
	}
	return out, nil
}
