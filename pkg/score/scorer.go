/*
Package score produces a 0-100 confidence estimate that a curated answer
key would accept a candidate word.

Six independent judges each return a 0-100 score; the aggregate drops the
single highest and single lowest and averages the remaining four. This
olympic-judging rule bounds the influence of any one extreme judge: a
harsh 0 from the rejection judge cannot zero out an otherwise strong word
on its own, but it pulls the average down noticeably when a second judge
agrees.
*/
package score

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bastiangx/beesolve/internal/utils"
	"github.com/bastiangx/beesolve/pkg/classifier"
	"github.com/bastiangx/beesolve/pkg/history"
	"github.com/bastiangx/beesolve/pkg/puzzle"
)

// ScoredWord is the output pair: freshly computed, never cached across
// puzzles unless the caller chooses to.
type ScoredWord struct {
	Word       string
	Confidence float64
}

// Judge score constants. Tuned against historical answer keys; adjust with
// care, the olympic trim hides single-constant changes.
const (
	dictionaryScore = 90
	commonWordScore = 85
	archaicScore    = 25
	rejectionBase   = 85
	patternBase     = 70
	patternRunCap   = 3
	runPenalty      = 25
	endingBonus     = 10
	historyFloor    = 40
)

// Length-banded frequency estimate for words outside the common set.
func frequencyBand(length int) float64 {
	switch {
	case length <= 6:
		return 65
	case length <= 8:
		return 55
	case length <= 10:
		return 45
	default:
		return 35
	}
}

// Fixed length score table, peaking at 7: the pangram length.
var lengthScores = map[int]float64{
	4: 55, 5: 65, 6: 80, 7: 95, 8: 85, 9: 75, 10: 65, 11: 55, 12: 50,
}

var commonEndings = []string{"ing", "tion", "ness", "ment", "ed", "er", "ly", "est"}

// Words frequent enough that presence alone is a strong acceptance signal.
var commonWordSet = map[string]struct{}{
	"that": {}, "with": {}, "have": {}, "this": {}, "from": {},
	"they": {}, "what": {}, "about": {}, "which": {}, "their": {},
	"would": {}, "there": {}, "could": {}, "other": {}, "after": {},
	"first": {}, "little": {}, "people": {}, "water": {}, "because": {},
	"count": {}, "upon": {}, "cannot": {}, "point": {}, "world": {},
	"house": {}, "place": {}, "where": {}, "think": {}, "great": {},
}

// Scorer combines the six judges. Read-only after construction; safe for
// concurrent use.
type Scorer struct {
	cls     *classifier.Classifier
	history *history.Store
}

// New creates a scorer. The classifier is required; history may be nil, in
// which case the historical-frequency judge reports its floor for every
// word.
func New(cls *classifier.Classifier, hist *history.Store) *Scorer {
	if cls == nil {
		cls = classifier.NewDefault()
	}
	return &Scorer{cls: cls, history: hist}
}

// Score aggregates the six judges for one word.
func (s *Scorer) Score(word string) float64 {
	w := strings.ToLower(word)
	return olympicMean(s.judgeScores(w))
}

// judgeScores runs all six judges in a fixed order.
func (s *Scorer) judgeScores(w string) []float64 {
	return []float64{
		s.judgeDictionary(w),
		s.judgeFrequency(w),
		s.judgeLength(w),
		s.judgePattern(w),
		s.judgeRejection(w),
		s.judgeHistory(w),
	}
}

// judgeDictionary is a binary signal: every scored word already passed
// generation, so it was found via dictionary lookup.
func (s *Scorer) judgeDictionary(w string) float64 {
	return dictionaryScore
}

func (s *Scorer) judgeFrequency(w string) float64 {
	if _, ok := commonWordSet[w]; ok {
		return commonWordScore
	}
	return frequencyBand(len(w))
}

func (s *Scorer) judgeLength(w string) float64 {
	if score, ok := lengthScores[len(w)]; ok {
		return score
	}
	if len(w) > 12 {
		return 45
	}
	return 0 // below minimum length, should not reach scoring
}

func (s *Scorer) judgePattern(w string) float64 {
	score := float64(patternBase)

	vowelRun, consonantRun := 0, 0
	maxVowelRun, maxConsonantRun := 0, 0
	for i := 0; i < len(w); i++ {
		if utils.IsVowel(w[i]) {
			vowelRun++
			consonantRun = 0
		} else {
			consonantRun++
			vowelRun = 0
		}
		maxVowelRun = max(maxVowelRun, vowelRun)
		maxConsonantRun = max(maxConsonantRun, consonantRun)
	}
	if maxConsonantRun > patternRunCap {
		score -= runPenalty
	}
	if maxVowelRun > patternRunCap {
		score -= runPenalty
	}

	for _, end := range commonEndings {
		if strings.HasSuffix(w, end) {
			score += endingBonus
			break
		}
	}

	return clamp(score, 0, 100)
}

func (s *Scorer) judgeRejection(w string) float64 {
	if s.cls.ShouldReject(w) {
		return 0
	}
	if s.cls.IsArchaic(w) {
		return archaicScore
	}
	return rejectionBase * s.cls.PenaltyMultiplier(w)
}

// judgeHistory maps the observed acceptance frequency through a monotonic
// step function. Never-observed words sit at a floor below every observed
// bucket.
func (s *Scorer) judgeHistory(w string) float64 {
	rate, ok := s.history.AcceptanceRate(w)
	if !ok {
		return historyFloor
	}
	switch {
	case rate >= 0.9:
		return 95
	case rate >= 0.7:
		return 85
	case rate >= 0.5:
		return 70
	case rate >= 0.3:
		return 60
	default:
		return 50
	}
}

// ScoreWords scores a batch into a word to confidence mapping.
func (s *Scorer) ScoreWords(words []string) map[string]float64 {
	out := make(map[string]float64, len(words))
	for _, w := range words {
		out[strings.ToLower(w)] = s.Score(w)
	}
	return out
}

// RankWords scores and sorts. Descending order uses the presentation key
// (confidence desc, length desc, alphabetical asc); ascending reverses the
// numeric keys but keeps ties alphabetical.
func (s *Scorer) RankWords(words []string, descending bool) []ScoredWord {
	out := make([]ScoredWord, 0, len(words))
	for _, w := range words {
		lw := strings.ToLower(w)
		out = append(out, ScoredWord{Word: lw, Confidence: s.Score(lw)})
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if !descending {
			a, b = b, a
		}
		if a.Confidence != b.Confidence {
			return a.Confidence > b.Confidence
		}
		if len(a.Word) != len(b.Word) {
			return len(a.Word) > len(b.Word)
		}
		return out[i].Word < out[j].Word
	})
	return out
}

// FilterByConfidence keeps words scoring at least minConfidence, which must
// lie in [0,100].
func (s *Scorer) FilterByConfidence(words []string, minConfidence float64) ([]string, error) {
	if minConfidence < 0 || minConfidence > 100 {
		return nil, fmt.Errorf("%w: minimum confidence must be in [0,100], got %v", puzzle.ErrInvalidInput, minConfidence)
	}
	out := make([]string, 0, len(words))
	for _, w := range words {
		if s.Score(w) >= minConfidence {
			out = append(out, w)
		}
	}
	return out, nil
}

// olympicMean drops the single highest and single lowest score and averages
// the rest. Fewer than three scores fall back to a plain mean.
func olympicMean(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	sorted := make([]float64, len(scores))
	copy(sorted, scores)
	sort.Float64s(sorted)
	if len(sorted) > 2 {
		sorted = sorted[1 : len(sorted)-1]
	}
	sum := 0.0
	for _, v := range sorted {
		sum += v
	}
	return sum / float64(len(sorted))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
