/*
Package classifier decides whether a structurally valid, dictionary-present
word is the kind of word a curated answer key would exclude.

It runs an ordered set of independent layers; the first layer that fires
determines the rejection and the reported reason. Historical blacklist data
dominates the static heuristics when present. Archaic words are flagged but
never rejected outright, so the scorer can apply a confidence penalty
instead of a hard cliff.
*/
package classifier

import (
	"strings"

	"github.com/bastiangx/beesolve/pkg/history"
	"github.com/bastiangx/beesolve/pkg/lexicon"
	"github.com/bastiangx/beesolve/pkg/nlp"
	"github.com/bastiangx/beesolve/pkg/puzzle"
)

// Reason identifies the layer that rejected a word.
type Reason string

const (
	ReasonTooShort     Reason = "too_short"
	ReasonBlacklist    Reason = "nyt_blacklist"
	ReasonProperNoun   Reason = "proper_noun"
	ReasonForeignWord  Reason = "foreign_word"
	ReasonAbbreviation Reason = "abbreviation"
	ReasonTechnical    Reason = "technical_term"
	ReasonLexicon      Reason = "lexicon"
)

// Thresholds are the blacklist tiers on historical rejection counts.
// Light and Heavy scale confidence down; Instant rejects outright.
type Thresholds struct {
	Light   int
	Heavy   int
	Instant int
}

// DefaultThresholds returns the tuned tier defaults. They come from one
// historical dataset and are configuration, not invariants.
func DefaultThresholds() Thresholds {
	return Thresholds{Light: 3, Heavy: 5, Instant: 10}
}

// Multipliers are the confidence factors for the penalty tiers.
type Multipliers struct {
	Light float64
	Heavy float64
}

// DefaultMultipliers returns the tuned penalty factors.
func DefaultMultipliers() Multipliers {
	return Multipliers{Light: 0.8, Heavy: 0.6}
}

// Config wires the classifier's data sources. History, Lexicon and NLP are
// all optional; absent sources simply disable their layers.
type Config struct {
	MinLength   int
	Thresholds  Thresholds
	Multipliers Multipliers
	History     *history.Store
	Lexicon     *lexicon.Metadata
	NLP         nlp.ProperNounChecker
}

// Classifier is read-only after construction and safe for concurrent use.
type Classifier struct {
	minLength   int
	tiers       Thresholds
	multipliers Multipliers
	history     *history.Store
	lex         *lexicon.Metadata
	nlp         nlp.ProperNounChecker
}

// New builds a classifier. Zero-value config fields fall back to defaults.
func New(cfg Config) *Classifier {
	if cfg.MinLength <= 0 {
		cfg.MinLength = puzzle.MinWordLength
	}
	if cfg.Thresholds == (Thresholds{}) {
		cfg.Thresholds = DefaultThresholds()
	}
	if cfg.Multipliers == (Multipliers{}) {
		cfg.Multipliers = DefaultMultipliers()
	}
	return &Classifier{
		minLength:   cfg.MinLength,
		tiers:       cfg.Thresholds,
		multipliers: cfg.Multipliers,
		history:     cfg.History,
		lex:         cfg.Lexicon,
		nlp:         cfg.NLP,
	}
}

// NewDefault builds a classifier with static heuristics only.
func NewDefault() *Classifier {
	return New(Config{})
}

// ShouldReject reports whether any layer fires for word.
func (c *Classifier) ShouldReject(word string) bool {
	_, rejected := c.RejectionReason(word)
	return rejected
}

// RejectionReason runs the layers in order and returns the first that
// fires. The bool is false when the word survives every layer.
func (c *Classifier) RejectionReason(word string) (Reason, bool) {
	w := strings.ToLower(word)

	if len(w) < c.minLength {
		return ReasonTooShort, true
	}
	if c.BlacklistCount(w) >= c.tiers.Instant {
		return ReasonBlacklist, true
	}
	if c.isProperNoun(w) {
		return ReasonProperNoun, true
	}
	if c.isForeignWord(w) {
		return ReasonForeignWord, true
	}
	if c.isAbbreviation(w) {
		return ReasonAbbreviation, true
	}
	if c.isTechnicalTerm(w) {
		return ReasonTechnical, true
	}
	if c.lexiconRejects(w) {
		return ReasonLexicon, true
	}
	return "", false
}

// IsArchaic flags words that should survive rejection but score lower.
// Never a rejection on its own.
func (c *Classifier) IsArchaic(word string) bool {
	w := strings.ToLower(word)
	if _, ok := archaicSet[w]; ok {
		return true
	}
	return c.lex.IsArchaic(w)
}

// BlacklistCount returns the historical rejection count, 0 if unknown.
func (c *Classifier) BlacklistCount(word string) int {
	return c.history.RejectionCount(word)
}

// PenaltyMultiplier maps the blacklist count to a confidence factor:
// words at or above the instant tier get 0 (callers should already have
// rejected them), heavy-tier words 0.6, light-tier 0.8, everything else 1.
func (c *Classifier) PenaltyMultiplier(word string) float64 {
	count := c.BlacklistCount(word)
	switch {
	case count >= c.tiers.Instant:
		return 0
	case count >= c.tiers.Heavy:
		return c.multipliers.Heavy
	case count >= c.tiers.Light:
		return c.multipliers.Light
	default:
		return 1
	}
}

// RemoveRejected is the advanced-filter adapter: it drops every word some
// layer fires for, preserving order.
func (c *Classifier) RemoveRejected(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if !c.ShouldReject(w) {
			out = append(out, w)
		}
	}
	return out
}

// isProperNoun combines the exact curated set, the place-name suffix
// heuristic for longer words, and an optional NLP verdict.
func (c *Classifier) isProperNoun(w string) bool {
	if _, ok := properNounSet[w]; ok {
		return true
	}
	if len(w) > 6 {
		if _, ok := placeSuffixWhitelist[w]; !ok {
			for _, suf := range placeNameSuffixes {
				if strings.HasSuffix(w, suf) {
					return true
				}
			}
		}
	}
	return c.nlp != nil && c.nlp.IsProperNoun(w)
}

// isForeignWord checks the curated set, uncommon doubled vowels, and
// q without a following u.
func (c *Classifier) isForeignWord(w string) bool {
	if _, ok := foreignWordSet[w]; ok {
		return true
	}
	for _, dv := range uncommonDoubledVowels {
		if strings.Contains(w, dv) {
			return true
		}
	}
	for i := 0; i < len(w); i++ {
		if w[i] == 'q' && (i == len(w)-1 || w[i+1] != 'u') {
			return true
		}
	}
	return false
}

func (c *Classifier) isAbbreviation(w string) bool {
	if _, ok := abbreviationSet[w]; ok {
		return true
	}
	if _, ok := abbreviationWhitelist[w]; ok {
		return false
	}
	for _, suf := range abbreviationSuffixes {
		if w != suf && strings.HasSuffix(w, suf) {
			return true
		}
	}
	return false
}

func (c *Classifier) isTechnicalTerm(w string) bool {
	if _, ok := technicalWhitelist[w]; ok {
		return false
	}
	for _, suf := range technicalSuffixes {
		if strings.HasSuffix(w, suf) {
			return true
		}
	}
	for _, end := range latinEndings {
		if strings.HasSuffix(w, end) {
			return true
		}
	}
	return false
}

// lexiconRejects is the optional metadata layer, additive with the static
// heuristics: capitalized proper-noun lookup, foreign-only, obsolete.
func (c *Classifier) lexiconRejects(w string) bool {
	if c.lex == nil {
		return false
	}
	return c.lex.IsProperNoun(w) || c.lex.IsForeignOnly(w) || c.lex.IsObsolete(w)
}
