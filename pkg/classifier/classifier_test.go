package classifier

import (
	"testing"

	"github.com/bastiangx/beesolve/pkg/history"
	"github.com/bastiangx/beesolve/pkg/lexicon"
	"github.com/bastiangx/beesolve/pkg/nlp"
)

func blacklistStore(counts map[string]int) *history.Store {
	s := history.NewStore()
	for w, n := range counts {
		s.Add(w, n, 0)
	}
	return s
}

// blacklist tiers:
// count >= 10 rejects outright, 5 survives at x0.6, 0 stays at x1.0
func TestBlacklistTiering(t *testing.T) {
	c := New(Config{
		History: blacklistStore(map[string]int{
			"pronto": 12,
			"untold": 5,
			"nutmeg": 3,
		}),
	})

	reason, rejected := c.RejectionReason("pronto")
	if !rejected || reason != ReasonBlacklist {
		t.Errorf("count 12 should reject with nyt_blacklist, got (%v, %v)", reason, rejected)
	}

	if c.ShouldReject("untold") {
		t.Error("count 5 must survive rejection")
	}
	if got := c.PenaltyMultiplier("untold"); got != 0.6 {
		t.Errorf("count 5 multiplier = %v, want 0.6", got)
	}

	if got := c.PenaltyMultiplier("nutmeg"); got != 0.8 {
		t.Errorf("count 3 multiplier = %v, want 0.8", got)
	}
	if got := c.PenaltyMultiplier("count"); got != 1.0 {
		t.Errorf("count 0 multiplier = %v, want 1.0", got)
	}
	if got := c.PenaltyMultiplier("pronto"); got != 0 {
		t.Errorf("instant-tier multiplier = %v, want 0 (degenerate)", got)
	}

	if got := c.BlacklistCount("untold"); got != 5 {
		t.Errorf("BlacklistCount = %d, want 5", got)
	}
	if got := c.BlacklistCount("missing"); got != 0 {
		t.Errorf("absent word count = %d, want 0", got)
	}
}

func TestStaticLayers(t *testing.T) {
	c := NewDefault()

	testCases := []struct {
		word        string
		reason      Reason
		description string
	}{
		{"cat", ReasonTooShort, "Below minimum length"},
		{"paris", ReasonProperNoun, "Curated proper noun"},
		{"pittsburg", ReasonProperNoun, "Place-name suffix"},
		{"gracias", ReasonForeignWord, "Curated foreign word"},
		{"naan", ReasonForeignWord, "Uncommon doubled vowel"},
		{"niqab", ReasonForeignWord, "q without u"},
		{"govt", ReasonAbbreviation, "Curated abbreviation"},
		{"lowtech", ReasonAbbreviation, "Abbreviation suffix"},
		{"lactase", ReasonTechnical, "Enzyme suffix"},
		{"fibrosis", ReasonTechnical, "Medical suffix"},
		{"quorum", ReasonTechnical, "Latin ending"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			reason, rejected := c.RejectionReason(tc.word)
			if !rejected {
				t.Fatalf("%q should be rejected", tc.word)
			}
			if reason != tc.reason {
				t.Errorf("%q rejected as %v, want %v", tc.word, reason, tc.reason)
			}
		})
	}
}

// whitelists protect common words that coincidentally share a suffix
func TestSuffixWhitelists(t *testing.T) {
	c := NewDefault()
	for _, w := range []string{"skeleton", "woodland", "showbiz", "please", "stadium", "count", "upon", "cannot"} {
		if reason, rejected := c.RejectionReason(w); rejected {
			t.Errorf("%q should survive, rejected as %v", w, reason)
		}
	}
}

// archaic is a flag for the scorer, never a rejection
func TestArchaicFlag(t *testing.T) {
	c := NewDefault()
	if !c.IsArchaic("betwixt") {
		t.Error("betwixt should be flagged archaic")
	}
	if c.ShouldReject("betwixt") {
		t.Error("archaic words must not be rejected outright")
	}
	if c.IsArchaic("count") {
		t.Error("count is not archaic")
	}
}

func TestLexiconLayer(t *testing.T) {
	lex := lexicon.New(
		[]string{"zounds"},            // obsolete
		[]string{"henceforth"},        // archaic
		nil,                           // rare
		[]string{"Toronto"},           // proper nouns, case preserved
		[]string{"gesundheit"},        // foreign only
	)
	c := New(Config{Lexicon: lex})

	testCases := []struct {
		word        string
		rejected    bool
		description string
	}{
		{"zounds", true, "Obsolete"},
		{"toronto", true, "Proper noun via capitalized form"},
		{"gesundheit", true, "Foreign only"},
		{"henceforth", false, "Archaic flags but does not reject"},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			if got := c.ShouldReject(tc.word); got != tc.rejected {
				t.Errorf("ShouldReject(%q) = %v, want %v", tc.word, got, tc.rejected)
			}
		})
	}

	if !c.IsArchaic("henceforth") {
		t.Error("lexicon-archaic words should be flagged")
	}

	// without a lexicon the same words pass the optional layer
	bare := NewDefault()
	if bare.ShouldReject("zounds") {
		t.Error("missing lexicon must simply disable the layer")
	}
}

func TestNLPLayer(t *testing.T) {
	c := New(Config{NLP: nlp.NewStatic("bonn")})
	reason, rejected := c.RejectionReason("bonn")
	if !rejected || reason != ReasonProperNoun {
		t.Errorf("NLP verdict should reject as proper_noun, got (%v, %v)", reason, rejected)
	}
	if NewDefault().ShouldReject("bonn") {
		t.Error("without the NLP layer bonn passes the static heuristics")
	}
}

func TestRemoveRejected(t *testing.T) {
	c := NewDefault()
	got := c.RemoveRejected([]string{"count", "paris", "upon", "govt"})
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
