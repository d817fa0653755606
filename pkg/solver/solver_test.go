package solver

import (
	"errors"
	"testing"

	"github.com/bastiangx/beesolve/pkg/classifier"
	"github.com/bastiangx/beesolve/pkg/dictionary"
	"github.com/bastiangx/beesolve/pkg/generate"
	"github.com/bastiangx/beesolve/pkg/puzzle"
	"github.com/bastiangx/beesolve/pkg/score"
)

func testSolver(words ...string) *Solver {
	dict := dictionary.NewWordList(words)
	return New(dict, nil, nil, nil)
}

func TestSolveEndToEnd(t *testing.T) {
	s := testSolver("count", "upon", "cannot", "apple", "cat")

	results, err := s.Solve("nacuotp", "n")
	if err != nil {
		t.Fatal(err)
	}

	// apple lacks the required letter and cat is too short
	want := []string{"cannot", "count", "upon"}
	if len(results) != len(want) {
		t.Fatalf("expected %v, got %v", want, results)
	}
	for i, w := range want {
		if results[i].Word != w {
			t.Errorf("rank %d: expected %q, got %q", i, w, results[i].Word)
		}
		if results[i].Confidence <= 0 || results[i].Confidence > 100 {
			t.Errorf("%q confidence %v out of range", w, results[i].Confidence)
		}
	}

	// sorted by confidence descending
	for i := 1; i < len(results); i++ {
		if results[i].Confidence > results[i-1].Confidence {
			t.Errorf("results not sorted at %d: %v", i, results)
		}
	}
}

func TestSolveWithStats(t *testing.T) {
	s := testSolver("count", "upon", "cannot", "apple", "cat", "naan")

	results, stats, err := s.SolveWithStats("nacuotp", "n")
	if err != nil {
		t.Fatal(err)
	}

	if stats.DictionarySize != 6 {
		t.Errorf("dictionary size = %d, want 6", stats.DictionarySize)
	}
	// naan qualifies on letters but the classifier removes it
	if stats.Candidates != 4 {
		t.Errorf("candidates = %d, want 4", stats.Candidates)
	}
	if stats.Rejected[classifier.ReasonForeignWord] != 1 {
		t.Errorf("expected one foreign_word rejection, got %v", stats.Rejected)
	}
	if stats.Scored != 3 || len(results) != 3 {
		t.Errorf("scored = %d, results = %d, want 3", stats.Scored, len(results))
	}
	if stats.Elapsed <= 0 {
		t.Error("elapsed should be positive")
	}
}

func TestSolveMarksPangrams(t *testing.T) {
	s := testSolver("count", "occupant")

	results, err := s.Solve("nacuotp", "n")
	if err != nil {
		t.Fatal(err)
	}

	found := map[string]bool{}
	for _, r := range results {
		found[r.Word] = r.Pangram
	}
	if !found["occupant"] {
		t.Error("occupant uses all seven letters and should be marked pangram")
	}
	if found["count"] {
		t.Error("count should not be marked pangram")
	}
}

func TestSolveInvalidPuzzle(t *testing.T) {
	s := testSolver("count")
	if _, err := s.Solve("nacuot", "n"); !errors.Is(err, puzzle.ErrInvalidInput) {
		t.Errorf("six letters should fail with ErrInvalidInput, got %v", err)
	}
	if _, err := s.Solve("nacuotp", "z"); !errors.Is(err, puzzle.ErrInvalidInput) {
		t.Errorf("required letter outside the set should fail, got %v", err)
	}
}

func TestSolveEmptyResult(t *testing.T) {
	s := testSolver("apple", "cat")
	results, err := s.Solve("nacuotp", "n")
	if err != nil {
		t.Fatalf("no candidates is not an error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no results, got %v", results)
	}
}

func TestSolveAboveConfidence(t *testing.T) {
	s := testSolver("count", "upon", "cannot")

	all, err := s.Solve("nacuotp", "n")
	if err != nil {
		t.Fatal(err)
	}
	cutoff := all[len(all)-1].Confidence + 1

	kept, err := s.SolveAboveConfidence("nacuotp", "n", cutoff)
	if err != nil {
		t.Fatal(err)
	}
	if len(kept) != len(all)-1 {
		t.Errorf("expected %d results above %v, got %v", len(all)-1, cutoff, kept)
	}
	for _, r := range kept {
		if r.Confidence < cutoff {
			t.Errorf("%q sits below the cutoff", r.Word)
		}
	}

	if _, err := s.SolveAboveConfidence("nacuotp", "n", 150); !errors.Is(err, puzzle.ErrInvalidInput) {
		t.Error("threshold 150 should fail with ErrInvalidInput")
	}
}

// a trie dictionary feeds the solver through the letter-pruned scan; the
// candidate sets and scores must match a full scan of the same words
func TestTrieScanMatchesFullScan(t *testing.T) {
	entries := []string{
		"count", "upon", "cannot", "toucan", "nodes", "zebra", "quack", "banana",
	}
	wl := dictionary.NewWordList(entries)
	full := New(wl, nil, nil, nil)
	pruned := New(dictionary.FromProvider(wl), nil, nil, nil)

	a, err := full.Solve("nacuotp", "n")
	if err != nil {
		t.Fatal(err)
	}
	b, err := pruned.Solve("nacuotp", "n")
	if err != nil {
		t.Fatal(err)
	}

	if len(a) == 0 {
		t.Fatal("expected answers from the full scan")
	}
	if len(a) != len(b) {
		t.Fatalf("scans disagree: %v vs %v", a, b)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("rank %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

// the solver counts rejection reasons itself, so the generator's advanced
// pass must stay off or rejections would be invisible to stats
func TestSolverCountsRejectionsOnce(t *testing.T) {
	cls := classifier.NewDefault()
	gen, err := generate.NewWithOptions(puzzle.MinWordLength, nil, cls.RemoveRejected)
	if err != nil {
		t.Fatal(err)
	}
	dict := dictionary.NewWordList([]string{"count", "naan"})
	s := New(dict, gen, cls, score.New(cls, nil))

	_, stats, err := s.SolveWithStats("nacuotp", "n")
	if err != nil {
		t.Fatal(err)
	}
	if stats.Candidates != 2 {
		t.Errorf("candidates = %d, want 2 (advanced pass skipped)", stats.Candidates)
	}
	if stats.Rejected[classifier.ReasonForeignWord] != 1 {
		t.Errorf("expected naan counted as foreign_word, got %v", stats.Rejected)
	}
}
