/*
Package nlp defines the pluggable proper-noun capability consumed by the
candidate pipeline.

The pipeline never depends on a specific backend: anything answering
"is this word a proper noun" fits. Two implementations ship here, a
deterministic rule-based checker and a fixed-set stub for tests, plus a
memoizing wrapper for callers that re-check the same bounded vocabulary.
*/
package nlp

import (
	"strings"
	"sync"
)

// ProperNounChecker answers whether a word is a proper noun / named entity.
// Implementations must be safe for concurrent use.
type ProperNounChecker interface {
	IsProperNoun(word string) bool
}

// Heuristic is a deterministic rule-based checker: a seed set of known
// names plus place-name suffix patterns. No model, no I/O.
type Heuristic struct {
	known    map[string]struct{}
	suffixes []string
}

var defaultKnownNames = []string{
	"america", "africa", "europe", "asia", "china", "india", "japan",
	"london", "paris", "texas", "kenya", "tokyo", "egypt", "spain",
	"monday", "tuesday", "january", "february", "august",
}

var defaultNameSuffixes = []string{"ville", "burg", "shire", "stan"}

// NewHeuristic creates the rule-based checker with built-in seed data.
func NewHeuristic() *Heuristic {
	known := make(map[string]struct{}, len(defaultKnownNames))
	for _, n := range defaultKnownNames {
		known[n] = struct{}{}
	}
	return &Heuristic{known: known, suffixes: defaultNameSuffixes}
}

// IsProperNoun applies the seed set, then the suffix patterns for longer
// words.
func (h *Heuristic) IsProperNoun(word string) bool {
	w := strings.ToLower(word)
	if _, ok := h.known[w]; ok {
		return true
	}
	if len(w) > 6 {
		for _, suf := range h.suffixes {
			if strings.HasSuffix(w, suf) {
				return true
			}
		}
	}
	return false
}

// Static answers from a fixed set. Deterministic stub for tests and for
// callers that bring their own curated list.
type Static struct {
	set map[string]struct{}
}

// NewStatic builds a Static checker over the given words.
func NewStatic(words ...string) *Static {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = struct{}{}
	}
	return &Static{set: set}
}

func (s *Static) IsProperNoun(word string) bool {
	_, ok := s.set[strings.ToLower(word)]
	return ok
}

// Memo wraps a checker with an eviction-free get-or-compute cache. Puzzle
// vocabularies are bounded, so the cache never needs trimming.
type Memo struct {
	inner ProperNounChecker

	mu    sync.RWMutex
	cache map[string]bool
}

// NewMemo wraps inner with memoization.
func NewMemo(inner ProperNounChecker) *Memo {
	return &Memo{inner: inner, cache: make(map[string]bool)}
}

func (m *Memo) IsProperNoun(word string) bool {
	w := strings.ToLower(word)

	m.mu.RLock()
	verdict, ok := m.cache[w]
	m.mu.RUnlock()
	if ok {
		return verdict
	}

	verdict = m.inner.IsProperNoun(w)
	m.mu.Lock()
	m.cache[w] = verdict
	m.mu.Unlock()
	return verdict
}

// Size reports how many verdicts are cached.
func (m *Memo) Size() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.cache)
}

// RemoveProperNouns adapts a checker into the generator's advanced-filter
// shape, dropping every word the checker flags.
func RemoveProperNouns(checker ProperNounChecker) func([]string) []string {
	return func(words []string) []string {
		out := make([]string, 0, len(words))
		for _, w := range words {
			if !checker.IsProperNoun(w) {
				out = append(out, w)
			}
		}
		return out
	}
}
