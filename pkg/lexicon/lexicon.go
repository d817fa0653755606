/*
Package lexicon carries optional curated word metadata: obsolete, archaic,
rare, proper-noun and foreign-only sets loaded from a TOML file.

The file is entirely optional. When absent, every query answers false and
the classifier layers that consume it are skipped. Proper nouns are stored
with their original casing; every other set is lowercase.
*/
package lexicon

import (
	"strings"

	"github.com/bastiangx/beesolve/internal/utils"
	"github.com/charmbracelet/log"
)

// fileFormat mirrors the TOML layout:
//
//	[sets]
//	obsolete = ["zounds"]
//	archaic = ["thee", "thou"]
//	rare = ["floccinaucinihilipilification"]
//	proper_nouns = ["Paris", "Texas"]
//	foreign_only = ["gracias"]
type fileFormat struct {
	Sets struct {
		Obsolete    []string `toml:"obsolete"`
		Archaic     []string `toml:"archaic"`
		Rare        []string `toml:"rare"`
		ProperNouns []string `toml:"proper_nouns"`
		ForeignOnly []string `toml:"foreign_only"`
	} `toml:"sets"`
}

// Metadata is the loaded, read-only set collection.
type Metadata struct {
	obsolete    map[string]struct{}
	archaic     map[string]struct{}
	rare        map[string]struct{}
	properNouns map[string]struct{} // original casing preserved
	foreignOnly map[string]struct{}
}

// New builds Metadata directly from slices, mainly for tests.
func New(obsolete, archaic, rare, properNouns, foreignOnly []string) *Metadata {
	return &Metadata{
		obsolete:    lowerSet(obsolete),
		archaic:     lowerSet(archaic),
		rare:        lowerSet(rare),
		properNouns: exactSet(properNouns),
		foreignOnly: lowerSet(foreignOnly),
	}
}

// Load reads the TOML metadata file. The bool is false when the file is
// absent or unparsable; that is a soft failure, logged and never fatal.
func Load(path string) (*Metadata, bool) {
	var ff fileFormat
	if err := utils.LoadTOMLFile(path, &ff); err != nil {
		log.Warnf("Lexicon metadata unavailable at %s: %v. Lexicon layer disabled.", path, err)
		return nil, false
	}
	m := New(ff.Sets.Obsolete, ff.Sets.Archaic, ff.Sets.Rare, ff.Sets.ProperNouns, ff.Sets.ForeignOnly)
	log.Debugf("Loaded lexicon metadata: %d obsolete, %d archaic, %d rare, %d proper, %d foreign",
		len(m.obsolete), len(m.archaic), len(m.rare), len(m.properNouns), len(m.foreignOnly))
	return m, true
}

// IsObsolete reports whether word is flagged obsolete.
func (m *Metadata) IsObsolete(word string) bool {
	if m == nil {
		return false
	}
	_, ok := m.obsolete[strings.ToLower(word)]
	return ok
}

// IsArchaic reports whether word is flagged archaic or rare. Rare words get
// the same confidence treatment as archaic ones.
func (m *Metadata) IsArchaic(word string) bool {
	if m == nil {
		return false
	}
	w := strings.ToLower(word)
	if _, ok := m.archaic[w]; ok {
		return true
	}
	_, ok := m.rare[w]
	return ok
}

// IsProperNoun checks the capitalized form of word against the
// case-preserved proper-noun set. This is the one case-sensitive lookup in
// the pipeline.
func (m *Metadata) IsProperNoun(word string) bool {
	if m == nil || word == "" {
		return false
	}
	_, ok := m.properNouns[capitalize(word)]
	return ok
}

// IsForeignOnly reports whether word exists only outside English.
func (m *Metadata) IsForeignOnly(word string) bool {
	if m == nil {
		return false
	}
	_, ok := m.foreignOnly[strings.ToLower(word)]
	return ok
}

func capitalize(w string) string {
	w = strings.ToLower(w)
	return strings.ToUpper(w[:1]) + w[1:]
}

func lowerSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToLower(strings.TrimSpace(w))] = struct{}{}
	}
	return set
}

func exactSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.TrimSpace(w)] = struct{}{}
	}
	return set
}
