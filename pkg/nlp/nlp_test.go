package nlp

import "testing"

func TestHeuristic(t *testing.T) {
	h := NewHeuristic()

	testCases := []struct {
		word        string
		proper      bool
		description string
	}{
		{"paris", true, "Seed name"},
		{"PARIS", true, "Case insensitive"},
		{"january", true, "Month"},
		{"jacksonville", true, "Place suffix"},
		{"kazakhstan", true, "Stan suffix"},
		{"count", false, "Ordinary word"},
		{"stan", false, "Suffix alone is too short to trigger"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			if got := h.IsProperNoun(tc.word); got != tc.proper {
				t.Errorf("IsProperNoun(%q) = %v, want %v", tc.word, got, tc.proper)
			}
		})
	}
}

func TestStatic(t *testing.T) {
	s := NewStatic("Bonn", "oslo")
	if !s.IsProperNoun("bonn") || !s.IsProperNoun("OSLO") {
		t.Error("static set lookups fold case both ways")
	}
	if s.IsProperNoun("count") {
		t.Error("count is not in the static set")
	}
}

type countingChecker struct {
	calls int
}

func (c *countingChecker) IsProperNoun(word string) bool {
	c.calls++
	return word == "paris"
}

func TestMemoCachesVerdicts(t *testing.T) {
	inner := &countingChecker{}
	m := NewMemo(inner)

	for i := 0; i < 3; i++ {
		if !m.IsProperNoun("paris") {
			t.Fatal("memo changed the verdict")
		}
		if m.IsProperNoun("count") {
			t.Fatal("memo changed the verdict")
		}
	}

	// one call per distinct word, the rest served from cache
	if inner.calls != 2 {
		t.Errorf("inner checker called %d times, want 2", inner.calls)
	}
	if m.Size() != 2 {
		t.Errorf("cache size = %d, want 2", m.Size())
	}

	// case folds before the cache, so PARIS is not a new entry
	m.IsProperNoun("PARIS")
	if inner.calls != 2 || m.Size() != 2 {
		t.Error("case variants must share a cache entry")
	}
}

func TestRemoveProperNouns(t *testing.T) {
	filter := RemoveProperNouns(NewStatic("paris"))
	got := filter([]string{"count", "paris", "upon"})
	want := []string{"count", "upon"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("expected %v, got %v", want, got)
		}
	}
}
