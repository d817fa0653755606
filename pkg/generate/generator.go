/*
Package generate scans a dictionary for words satisfying a puzzle's
structural constraints.

The scan applies the basic checks (length, required letter, letter subset),
an optional phonotactic pre-pass, and finally an optional pluggable
advanced filter, which is where the rejection classifier or an NLP-backed
filter plugs in. The generator performs no I/O; the dictionary is supplied
in full by the caller.
*/
package generate

import (
	"fmt"
	"strings"

	"github.com/bastiangx/beesolve/internal/utils"
	"github.com/bastiangx/beesolve/pkg/dictionary"
	"github.com/bastiangx/beesolve/pkg/phonotactic"
	"github.com/bastiangx/beesolve/pkg/puzzle"
	"github.com/charmbracelet/log"
)

// AdvancedFilter is the pluggable final pass over surviving candidates.
type AdvancedFilter func([]string) []string

// Generator is pure and stateless apart from its configuration; the same
// inputs always produce the same candidate set.
type Generator struct {
	minLength int
	prefilter *phonotactic.Filter
	advanced  AdvancedFilter
}

// New creates a generator with the default minimum length, a default
// phonotactic pre-pass and no advanced filter.
func New() *Generator {
	g, _ := NewWithOptions(puzzle.MinWordLength, phonotactic.NewDefaultFilter(), nil)
	return g
}

// NewWithOptions creates a fully configured generator. minLength must be at
// least 1. A nil prefilter disables the phonotactic pre-pass; a nil
// advanced filter disables the final pass.
func NewWithOptions(minLength int, prefilter *phonotactic.Filter, advanced AdvancedFilter) (*Generator, error) {
	if minLength < 1 {
		return nil, fmt.Errorf("%w: minimum word length must be >= 1, got %d", puzzle.ErrInvalidInput, minLength)
	}
	return &Generator{minLength: minLength, prefilter: prefilter, advanced: advanced}, nil
}

// Generate scans every dictionary entry and returns the candidates
// satisfying the puzzle constraints. Argument validation matches the
// puzzle package exactly. applyAdvanced toggles the configured advanced
// filter for this call.
func (g *Generator) Generate(dict dictionary.Provider, letters, required string, applyAdvanced bool) ([]string, error) {
	return g.GenerateFromWords(dict.Words(), letters, required, applyAdvanced)
}

// GenerateFromWords is Generate over a plain word slice.
func (g *Generator) GenerateFromWords(words []string, letters, required string, applyAdvanced bool) ([]string, error) {
	spec, err := puzzle.ValidateAndNormalize(letters, required)
	if err != nil {
		return nil, err
	}

	candidates := make([]string, 0, 64)
	for _, raw := range words {
		w := strings.ToLower(raw)
		if !g.keep(w, spec) {
			continue
		}
		candidates = append(candidates, w)
	}
	log.Debugf("Generated %d candidates from %d words", len(candidates), len(words))

	if applyAdvanced && g.advanced != nil {
		before := len(candidates)
		candidates = g.advanced(candidates)
		log.Debugf("Advanced filter kept %d of %d candidates", len(candidates), before)
	}
	return candidates, nil
}

// FilterCandidates applies only the basic constraint checks to an already
// known word list, for candidates produced elsewhere. No phonotactic
// pre-pass and no advanced filter.
func (g *Generator) FilterCandidates(words []string, letters, required string) ([]string, error) {
	spec, err := puzzle.ValidateAndNormalize(letters, required)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(words))
	for _, raw := range words {
		w := strings.ToLower(raw)
		if !g.satisfiesConstraints(w, spec) {
			continue
		}
		out = append(out, w)
	}
	return out, nil
}

func (g *Generator) keep(w string, spec puzzle.Spec) bool {
	if !g.satisfiesConstraints(w, spec) {
		return false
	}
	if g.prefilter != nil && !g.prefilter.IsValidSequence(w) {
		return false
	}
	return true
}

func (g *Generator) satisfiesConstraints(w string, spec puzzle.Spec) bool {
	if len(w) < g.minLength || !utils.IsAlphaString(w) {
		return false
	}
	if !strings.ContainsRune(w, rune(spec.Required)) {
		return false
	}
	return spec.Set.ContainsAll(w)
}
