/*
Package phonotactic implements a cheap pre-filter that rejects letter
sequences impossible in English orthography before any dictionary lookup.

Four rules run in order, short-circuiting on the first failure:

 1. triple letter: three identical characters in a row
 2. impossible doubles: curated doubled pairs that never occur in real words
 3. initial cluster: opening consonant clusters checked against curated lists
 4. run length: too many consecutive vowels or consonants

The rules favor precision over recall. A sequence the lists know nothing
about is accepted: a false rejection here silently drops a real answer,
which is far worse than letting a junk candidate through to the later,
stricter stages.
*/
package phonotactic

import (
	"strings"
	"sync"

	"github.com/bastiangx/beesolve/internal/utils"
)

// RuleConfig toggles individual rules and sets the run-length caps.
// Zero caps fall back to the defaults.
type RuleConfig struct {
	TripleLetter      bool
	ImpossibleDoubles bool
	InitialCluster    bool
	RunLength         bool
	MaxConsonantRun   int
	MaxVowelRun       int
}

// DefaultRuleConfig enables every rule with caps of 4 consonants / 3 vowels.
func DefaultRuleConfig() RuleConfig {
	return RuleConfig{
		TripleLetter:      true,
		ImpossibleDoubles: true,
		InitialCluster:    true,
		RunLength:         true,
		MaxConsonantRun:   4,
		MaxVowelRun:       3,
	}
}

// Doubled pairs that do not occur in any English word. Rare doubles that DO
// occur (savvy, powwow, withhold, trekked, vacuum, bazaar, skiing) live in
// rareValidDoubles and must never reject.
var impossibleDoubles = map[string]struct{}{
	"jj": {}, "qq": {}, "xx": {}, "yy": {},
}

// rareValidDoubles documents doubles that look suspicious but are attested.
// Kept separate so nobody "cleans up" impossibleDoubles by adding them.
var rareValidDoubles = map[string]struct{}{
	"aa": {}, "hh": {}, "ii": {}, "kk": {}, "uu": {}, "vv": {}, "ww": {},
}

// Opening consonant clusters attested in English words.
var validInitialClusters = map[string]struct{}{
	// two letters
	"bl": {}, "br": {}, "ch": {}, "cl": {}, "cr": {}, "dr": {}, "dw": {},
	"fl": {}, "fr": {}, "gh": {}, "gl": {}, "gn": {}, "gr": {}, "kn": {},
	"ph": {}, "pl": {}, "pr": {}, "ps": {}, "qu": {}, "rh": {}, "sc": {},
	"sh": {}, "sk": {}, "sl": {}, "sm": {}, "sn": {}, "sp": {}, "sq": {},
	"st": {}, "sw": {}, "th": {}, "tr": {}, "tw": {}, "wh": {}, "wr": {},
	// three letters
	"chr": {}, "phl": {}, "phr": {}, "sch": {}, "scl": {}, "scr": {},
	"shr": {}, "sph": {}, "spl": {}, "spr": {}, "str": {}, "thr": {},
}

// Adjacent consonant pairs that cannot open an English word. Only consulted
// for clusters the whitelist does not cover; unknown-but-unflagged clusters
// are accepted.
var impossibleInitialPairs = map[string]struct{}{
	"bk": {}, "bx": {}, "cb": {}, "cj": {}, "cv": {}, "dk": {}, "fq": {},
	"fv": {}, "gx": {}, "hx": {}, "jq": {}, "jx": {}, "kq": {}, "kx": {},
	"mx": {}, "px": {}, "qb": {}, "qc": {}, "qd": {}, "qz": {}, "sx": {},
	"tq": {}, "tx": {}, "vb": {}, "vf": {}, "vh": {}, "vj": {}, "vk": {},
	"vm": {}, "vp": {}, "vq": {}, "vt": {}, "vw": {}, "vx": {}, "wx": {},
	"xj": {}, "xk": {}, "zx": {},
}

// Stats is a snapshot of filter activity. Rates are 0 when nothing has been
// checked yet.
type Stats struct {
	Checked         int
	Accepted        int
	RejectedTriple  int
	RejectedDouble  int
	RejectedCluster int
	RejectedRun     int
}

// AcceptRate returns accepted/checked as a percentage.
func (s Stats) AcceptRate() float64 {
	if s.Checked == 0 {
		return 0
	}
	return float64(s.Accepted) / float64(s.Checked) * 100
}

// RejectRate returns rejected/checked as a percentage.
func (s Stats) RejectRate() float64 {
	if s.Checked == 0 {
		return 0
	}
	return float64(s.Checked-s.Accepted) / float64(s.Checked) * 100
}

// Filter applies the phonotactic rules. Multiple instances with different
// configs may coexist; the stats counters are the only mutable state and
// are guarded for concurrent use.
type Filter struct {
	cfg RuleConfig

	mu    sync.Mutex
	stats Stats
}

// NewFilter creates a filter with the given rule config.
func NewFilter(cfg RuleConfig) *Filter {
	if cfg.MaxConsonantRun <= 0 {
		cfg.MaxConsonantRun = 4
	}
	if cfg.MaxVowelRun <= 0 {
		cfg.MaxVowelRun = 3
	}
	return &Filter{cfg: cfg}
}

// NewDefaultFilter creates a filter with every rule enabled.
func NewDefaultFilter() *Filter {
	return NewFilter(DefaultRuleConfig())
}

type rejectRule int

const (
	rejectNone rejectRule = iota
	rejectTriple
	rejectDouble
	rejectCluster
	rejectRun
)

// IsValidSequence reports whether s could plausibly be an English word.
// Input is case-folded; the check never rejects a real word the lists are
// configured correctly for.
func (f *Filter) IsValidSequence(s string) bool {
	w := strings.ToLower(s)
	rule := f.classify(w)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.stats.Checked++
	switch rule {
	case rejectTriple:
		f.stats.RejectedTriple++
	case rejectDouble:
		f.stats.RejectedDouble++
	case rejectCluster:
		f.stats.RejectedCluster++
	case rejectRun:
		f.stats.RejectedRun++
	default:
		f.stats.Accepted++
		return true
	}
	return false
}

// classify applies the enabled rules in order, returning the first that fires.
func (f *Filter) classify(w string) rejectRule {
	if f.cfg.TripleLetter && hasTripleLetter(w) {
		return rejectTriple
	}
	if f.cfg.ImpossibleDoubles && hasImpossibleDouble(w) {
		return rejectDouble
	}
	if f.cfg.InitialCluster && hasInvalidInitialCluster(w) {
		return rejectCluster
	}
	if f.cfg.RunLength && exceedsRunLimits(w, f.cfg.MaxConsonantRun, f.cfg.MaxVowelRun) {
		return rejectRun
	}
	return rejectNone
}

// Stats returns a snapshot of the running counters.
func (f *Filter) Stats() Stats {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stats
}

// ResetStats zeroes all counters.
func (f *Filter) ResetStats() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stats = Stats{}
}

// FilterSlice returns the subset of words passing the filter, in order.
func (f *Filter) FilterSlice(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if f.IsValidSequence(w) {
			out = append(out, w)
		}
	}
	return out
}

// FilterStream lazily filters an arbitrary candidate producer. Sequences are
// forwarded as they pass; the whole input is never materialized, so the
// producer may be unbounded. The returned channel closes when in closes.
// The consumer must drain the returned channel: abandoning it mid-stream
// leaves the forwarding goroutine blocked on the next send.
func (f *Filter) FilterStream(in <-chan string) <-chan string {
	out := make(chan string)
	go func() {
		defer close(out)
		for w := range in {
			if f.IsValidSequence(w) {
				out <- w
			}
		}
	}()
	return out
}

// hasTripleLetter finds three consecutive identical characters.
// 100% precision: no English word has them.
func hasTripleLetter(w string) bool {
	for i := 2; i < len(w); i++ {
		if w[i] == w[i-1] && w[i] == w[i-2] {
			return true
		}
	}
	return false
}

func hasImpossibleDouble(w string) bool {
	for i := 1; i < len(w); i++ {
		if w[i] != w[i-1] {
			continue
		}
		if _, bad := impossibleDoubles[w[i-1:i+1]]; bad {
			return true
		}
	}
	return false
}

// hasInvalidInitialCluster classifies the opening consonant run. Exact
// matches on the 2/3-letter whitelist accept immediately; anything else is
// rejected only when an adjacent pair inside the cluster is flagged
// impossible.
func hasInvalidInitialCluster(w string) bool {
	cluster := leadingConsonants(w)
	if len(cluster) < 2 {
		return false
	}
	if len(cluster) <= 3 {
		if _, ok := validInitialClusters[cluster]; ok {
			return false
		}
	}
	for i := 1; i < len(cluster); i++ {
		if _, bad := impossibleInitialPairs[cluster[i-1:i+1]]; bad {
			return true
		}
	}
	return false
}

func leadingConsonants(w string) string {
	for i := 0; i < len(w); i++ {
		if isRunVowel(w[i]) {
			return w[:i]
		}
	}
	return w
}

func exceedsRunLimits(w string, maxConsonants, maxVowels int) bool {
	vowelRun, consonantRun := 0, 0
	for i := 0; i < len(w); i++ {
		if isRunVowel(w[i]) {
			vowelRun++
			consonantRun = 0
		} else {
			consonantRun++
			vowelRun = 0
		}
		if vowelRun > maxVowels || consonantRun > maxConsonants {
			return true
		}
	}
	return false
}

// isRunVowel treats y as a vowel so words like rhythm do not trip the
// consonant-run cap.
func isRunVowel(b byte) bool {
	return utils.IsVowel(b) || b == 'y'
}
