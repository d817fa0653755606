/*
Package puzzle validates seven-letter puzzle specifications and answers
per-word admissibility queries against them.

A puzzle consists of exactly seven pairwise-distinct letters plus one
required letter drawn from that set. Words qualify when they are at least
four letters long, contain the required letter, and use only puzzle letters.
Letters may repeat inside a word.
*/
package puzzle

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bastiangx/beesolve/internal/utils"
)

// MinWordLength is the shortest admissible answer.
const MinWordLength = 4

// ErrInvalidInput marks caller precondition violations: wrong lengths,
// non-alphabetic characters, duplicate letters, membership failures.
// Always synchronous, always caller-fixable.
var ErrInvalidInput = errors.New("invalid input")

// LetterSet is a fixed-size membership table over 'a'..'z'.
type LetterSet [26]bool

// Contains reports whether b (lowercase ASCII) is in the set.
func (ls LetterSet) Contains(b byte) bool {
	if b < 'a' || b > 'z' {
		return false
	}
	return ls[b-'a']
}

// ContainsAll reports whether every byte of word is in the set.
func (ls LetterSet) ContainsAll(word string) bool {
	for i := 0; i < len(word); i++ {
		if !ls.Contains(word[i]) {
			return false
		}
	}
	return true
}

// NewLetterSet builds a set from a lowercase alphabetic string.
func NewLetterSet(letters string) LetterSet {
	var ls LetterSet
	for i := 0; i < len(letters); i++ {
		if utils.IsLowerAlpha(letters[i]) {
			ls[letters[i]-'a'] = true
		}
	}
	return ls
}

// Spec is a validated, immutable puzzle specification.
type Spec struct {
	Letters  string
	Required byte
	Set      LetterSet
}

// ValidateLetters normalizes a raw seven-letter string. It fails unless raw
// is exactly seven alphabetic characters with no repeats.
func ValidateLetters(raw string) (string, error) {
	letters := strings.ToLower(strings.TrimSpace(raw))
	if len(letters) != 7 {
		return "", fmt.Errorf("%w: need exactly 7 letters, got %d", ErrInvalidInput, len(letters))
	}
	if !utils.IsAlphaString(letters) {
		return "", fmt.Errorf("%w: letters must be alphabetic: %q", ErrInvalidInput, raw)
	}
	if utils.HasRepeatedByte(letters) {
		return "", fmt.Errorf("%w: letters must be distinct: %q", ErrInvalidInput, raw)
	}
	return letters, nil
}

// ValidateRequiredLetter normalizes the required letter and checks that it
// belongs to the (already validated) letter string.
func ValidateRequiredLetter(raw string, letters string) (byte, error) {
	req := strings.ToLower(strings.TrimSpace(raw))
	if len(req) != 1 {
		return 0, fmt.Errorf("%w: required letter must be a single character, got %q", ErrInvalidInput, raw)
	}
	if !utils.IsLowerAlpha(req[0]) {
		return 0, fmt.Errorf("%w: required letter must be alphabetic: %q", ErrInvalidInput, raw)
	}
	if !strings.Contains(letters, req) {
		return 0, fmt.Errorf("%w: required letter %q not in letters %q", ErrInvalidInput, req, letters)
	}
	return req[0], nil
}

// ValidateAndNormalize composes the letter and required-letter checks into a
// Spec. An empty required string defaults to the first puzzle letter.
func ValidateAndNormalize(letters, required string) (Spec, error) {
	norm, err := ValidateLetters(letters)
	if err != nil {
		return Spec{}, err
	}
	if required == "" {
		required = norm[:1]
	}
	req, err := ValidateRequiredLetter(required, norm)
	if err != nil {
		return Spec{}, err
	}
	return Spec{Letters: norm, Required: req, Set: NewLetterSet(norm)}, nil
}

// NewSpecFromCenter builds a Spec from a center (required) letter and the
// six outer letters. The center must not repeat among the outer letters:
// this enforces the seven-distinct-letters invariant at the boundary.
func NewSpecFromCenter(center, outer string) (Spec, error) {
	c := strings.ToLower(strings.TrimSpace(center))
	o := strings.ToLower(strings.TrimSpace(outer))
	if len(c) != 1 || !utils.IsAlphaString(c) {
		return Spec{}, fmt.Errorf("%w: center must be a single letter, got %q", ErrInvalidInput, center)
	}
	if len(o) != 6 {
		return Spec{}, fmt.Errorf("%w: need exactly 6 outer letters, got %d", ErrInvalidInput, len(o))
	}
	if strings.Contains(o, c) {
		return Spec{}, fmt.Errorf("%w: center letter %q repeats in outer letters %q", ErrInvalidInput, c, o)
	}
	return ValidateAndNormalize(c+o, c)
}

// IsValidWord reports whether word is admissible under the set and required
// letter. Empty/whitespace or non-alphabetic input is a precondition
// violation, not a business rejection, and returns ErrInvalidInput.
func IsValidWord(word string, set LetterSet, required byte) (bool, error) {
	if utils.IsBlank(word) {
		return false, fmt.Errorf("%w: empty word", ErrInvalidInput)
	}
	w := strings.ToLower(word)
	if !utils.IsAlphaString(w) {
		return false, fmt.Errorf("%w: word must be alphabetic: %q", ErrInvalidInput, word)
	}
	if len(w) < MinWordLength {
		return false, nil
	}
	if !strings.ContainsRune(w, rune(required)) {
		return false, nil
	}
	return set.ContainsAll(w), nil
}

// IsValidWord answers admissibility against this spec.
func (s Spec) IsValidWord(word string) (bool, error) {
	return IsValidWord(word, s.Set, s.Required)
}

// IsPangram reports whether word uses all seven puzzle letters at least once.
// Assumes word already passed IsValidWord.
func (s Spec) IsPangram(word string) bool {
	var seen LetterSet
	for i := 0; i < len(word); i++ {
		b := word[i]
		if b >= 'a' && b <= 'z' {
			seen[b-'a'] = true
		}
	}
	return seen == s.Set
}
