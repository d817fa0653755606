/*
Package dictionary supplies candidate word sets to the solver pipeline.

Two providers ship: a plain in-memory word list loaded from a text file
(one word per line), and a patricia-trie store that can prune a scan down
to the subtrees rooted at the puzzle letters. Both are read-only once
built and safe for concurrent readers.
*/
package dictionary

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/bastiangx/beesolve/internal/utils"
	"github.com/bastiangx/beesolve/pkg/puzzle"
	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Provider yields a full candidate word set. Implementations must return
// lowercase alphabetic words.
type Provider interface {
	Words() []string
	Len() int
}

// WordList is the simplest provider: a deduplicated slice.
type WordList struct {
	words []string
}

// NewWordList normalizes, deduplicates and keeps only alphabetic entries.
func NewWordList(words []string) *WordList {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, raw := range words {
		w := strings.ToLower(strings.TrimSpace(raw))
		if w == "" || !utils.IsAlphaString(w) {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return &WordList{words: out}
}

// Words returns the underlying slice. Callers must not mutate it.
func (wl *WordList) Words() []string { return wl.words }

// Len reports the word count.
func (wl *WordList) Len() int { return len(wl.words) }

// LoadTextFile reads a one-word-per-line dictionary. Blank lines and lines
// starting with '#' are skipped; entries with digits or punctuation are
// dropped with a debug note.
func LoadTextFile(path string) (*WordList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 4096), 1024*1024)

	var raw []string
	dropped := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !utils.IsAlphaString(line) {
			dropped++
			continue
		}
		raw = append(raw, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan dictionary %s: %w", path, err)
	}

	wl := NewWordList(raw)
	if dropped > 0 {
		log.Debugf("Dictionary %s: dropped %d non-alphabetic entries", path, dropped)
	}
	log.Debugf("Dictionary %s: %d words", path, wl.Len())
	return wl, nil
}

// TrieStore indexes words in a patricia trie so scans can skip every
// subtree whose first letter is outside the puzzle set.
type TrieStore struct {
	trie  *patricia.Trie
	count int
}

// NewTrieStore builds an empty store.
func NewTrieStore() *TrieStore {
	return &TrieStore{trie: patricia.NewTrie()}
}

// FromProvider indexes every word of p.
func FromProvider(p Provider) *TrieStore {
	ts := NewTrieStore()
	for _, w := range p.Words() {
		ts.Add(w)
	}
	return ts
}

// Add inserts a word. Normalization matches NewWordList.
func (ts *TrieStore) Add(word string) {
	w := strings.ToLower(strings.TrimSpace(word))
	if w == "" || !utils.IsAlphaString(w) {
		return
	}
	if ts.trie.Insert(patricia.Prefix(w), len(w)) {
		ts.count++
	}
}

// Len reports the word count.
func (ts *TrieStore) Len() int { return ts.count }

// Words walks the whole trie in lexicographic order.
func (ts *TrieStore) Words() []string {
	out := make([]string, 0, ts.count)
	err := ts.trie.Visit(func(p patricia.Prefix, item patricia.Item) error {
		out = append(out, string(p))
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting trie: %v", err)
	}
	return out
}

// WordsWithFirstLetterIn visits only the subtrees rooted at letters of the
// set. A word opening with a letter outside the puzzle can never qualify,
// so this skips the bulk of a large dictionary up front.
func (ts *TrieStore) WordsWithFirstLetterIn(set puzzle.LetterSet) []string {
	var out []string
	for b := byte('a'); b <= 'z'; b++ {
		if !set.Contains(b) {
			continue
		}
		err := ts.trie.VisitSubtree(patricia.Prefix(string(b)), func(p patricia.Prefix, item patricia.Item) error {
			out = append(out, string(p))
			return nil
		})
		if err != nil {
			log.Errorf("Error visiting trie subtree %q: %v", string(b), err)
		}
	}
	sort.Strings(out)
	return out
}
