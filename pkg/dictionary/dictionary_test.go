package dictionary

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bastiangx/beesolve/pkg/puzzle"
)

func TestNewWordList(t *testing.T) {
	wl := NewWordList([]string{
		"count", "COUNT", " upon ", "can't", "caf3", "", "cannot",
	})

	want := []string{"count", "upon", "cannot"}
	if wl.Len() != len(want) {
		t.Fatalf("expected %v, got %v", want, wl.Words())
	}
	for i, w := range want {
		if wl.Words()[i] != w {
			t.Errorf("expected %v, got %v", want, wl.Words())
		}
	}
}

func TestLoadTextFile(t *testing.T) {
	content := `# common words
count
upon

CANNOT
can't
caf3
`
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	wl, err := LoadTextFile(path)
	if err != nil {
		t.Fatal(err)
	}
	// comments, blanks and non-alphabetic entries are skipped
	want := map[string]bool{"count": true, "upon": true, "cannot": true}
	if wl.Len() != len(want) {
		t.Fatalf("expected %d words, got %v", len(want), wl.Words())
	}
	for _, w := range wl.Words() {
		if !want[w] {
			t.Errorf("unexpected word %q", w)
		}
	}
}

func TestLoadTextFileMissing(t *testing.T) {
	if _, err := LoadTextFile(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Error("missing dictionary file is a hard error")
	}
}

func TestTrieStore(t *testing.T) {
	ts := NewTrieStore()
	for _, w := range []string{"count", "cat", "upon", "zebra", "COUNT", "can't"} {
		ts.Add(w)
	}

	// duplicate and non-alphabetic entries never land
	if ts.Len() != 4 {
		t.Errorf("Len = %d, want 4", ts.Len())
	}

	words := ts.Words()
	if len(words) != 4 {
		t.Fatalf("Words() returned %v", words)
	}
	for i := 1; i < len(words); i++ {
		if words[i] < words[i-1] {
			t.Errorf("Words() not sorted: %v", words)
		}
	}
}

func TestTrieStorePrunedScan(t *testing.T) {
	wl := NewWordList([]string{"count", "cat", "upon", "zebra", "quack"})
	ts := FromProvider(wl)

	spec, err := puzzle.ValidateAndNormalize("nacuotp", "n")
	if err != nil {
		t.Fatal(err)
	}

	got := ts.WordsWithFirstLetterIn(spec.Set)
	// zebra and quack open with letters outside the puzzle set
	want := []string{"cat", "count", "upon"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("expected %v, got %v", want, got)
		}
	}
}
