/*
Package history holds read-only statistics from past puzzle outcomes: how
often a word was rejected by the curated answer keys and how often it was
accepted when it appeared.

The on-disk snapshot is msgpack with short field tags, produced by an
offline ingestion run. It is loaded once at startup and never mutated
during a solve. A missing or unreadable snapshot is a soft failure: the
layers that consume it simply disable themselves.
*/
package history

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// SnapshotVersion guards against reading snapshots from incompatible
// ingester builds.
const SnapshotVersion = 1

type entry struct {
	Word       string  `msgpack:"w"`
	Rejections int     `msgpack:"r"`
	Acceptance float64 `msgpack:"a,omitempty"`
}

type snapshot struct {
	Version int     `msgpack:"v"`
	Entries []entry `msgpack:"e"`
}

// Store is the in-memory view of a snapshot. Read-only after load; safe for
// concurrent readers.
type Store struct {
	rejections map[string]int
	acceptance map[string]float64
}

// NewStore creates an empty store, useful for tests and for ingestion.
func NewStore() *Store {
	return &Store{
		rejections: make(map[string]int),
		acceptance: make(map[string]float64),
	}
}

// Add records stats for a word. Intended for ingestion and tests only;
// never call mid-solve.
func (s *Store) Add(word string, rejections int, acceptance float64) {
	w := strings.ToLower(word)
	if rejections > 0 {
		s.rejections[w] = rejections
	}
	if acceptance > 0 {
		s.acceptance[w] = acceptance
	}
}

// RejectionCount returns the historical rejection count, 0 if unseen.
func (s *Store) RejectionCount(word string) int {
	if s == nil {
		return 0
	}
	return s.rejections[strings.ToLower(word)]
}

// AcceptanceRate returns the observed acceptance frequency and whether the
// word was ever observed.
func (s *Store) AcceptanceRate(word string) (float64, bool) {
	if s == nil {
		return 0, false
	}
	rate, ok := s.acceptance[strings.ToLower(word)]
	return rate, ok
}

// Len reports how many words carry any statistic.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	words := make(map[string]struct{}, len(s.rejections)+len(s.acceptance))
	for w := range s.rejections {
		words[w] = struct{}{}
	}
	for w := range s.acceptance {
		words[w] = struct{}{}
	}
	return len(words)
}

// Load reads a msgpack snapshot. The bool is false when the file is absent
// or unreadable; that is logged and never fatal.
func Load(path string) (*Store, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Warnf("History snapshot unavailable at %s: %v. Blacklist layer disabled.", path, err)
		return nil, false
	}

	var snap snapshot
	if err := msgpack.Unmarshal(data, &snap); err != nil {
		log.Warnf("History snapshot at %s is corrupt: %v. Blacklist layer disabled.", path, err)
		return nil, false
	}
	if snap.Version != SnapshotVersion {
		log.Warnf("History snapshot at %s has version %d, want %d. Blacklist layer disabled.", path, snap.Version, SnapshotVersion)
		return nil, false
	}

	store := NewStore()
	for _, e := range snap.Entries {
		store.Add(e.Word, e.Rejections, e.Acceptance)
	}
	log.Debugf("Loaded history snapshot: %d words", store.Len())
	return store, true
}

// Save writes the store as a msgpack snapshot. Used by the offline ingester
// and round-trip tests.
func (s *Store) Save(path string) error {
	words := make(map[string]struct{}, len(s.rejections)+len(s.acceptance))
	for w := range s.rejections {
		words[w] = struct{}{}
	}
	for w := range s.acceptance {
		words[w] = struct{}{}
	}

	snap := snapshot{Version: SnapshotVersion}
	for w := range words {
		snap.Entries = append(snap.Entries, entry{
			Word:       w,
			Rejections: s.rejections[w],
			Acceptance: s.acceptance[w],
		})
	}

	data, err := msgpack.Marshal(&snap)
	if err != nil {
		return fmt.Errorf("failed to encode history snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write history snapshot %s: %w", path, err)
	}
	return nil
}
