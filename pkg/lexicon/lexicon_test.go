package lexicon

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMetadataQueries(t *testing.T) {
	m := New(
		[]string{"zounds"},
		[]string{"thee"},
		[]string{"floccinaucinihilipilification"},
		[]string{"Paris", "Texas"},
		[]string{"gracias"},
	)

	if !m.IsObsolete("ZOUNDS") {
		t.Error("obsolete lookup should be case insensitive")
	}
	if m.IsObsolete("count") {
		t.Error("count is not obsolete")
	}

	// rare words answer archaic, they get the same confidence treatment
	if !m.IsArchaic("thee") || !m.IsArchaic("floccinaucinihilipilification") {
		t.Error("archaic and rare words should both answer IsArchaic")
	}

	// proper nouns match on the capitalized form only
	if !m.IsProperNoun("paris") || !m.IsProperNoun("PARIS") {
		t.Error("any casing of paris should match the stored Paris")
	}
	if m.IsProperNoun("polish") {
		t.Error("polish is not in the proper-noun set")
	}
	if m.IsProperNoun("") {
		t.Error("empty word must not panic or match")
	}

	if !m.IsForeignOnly("gracias") {
		t.Error("gracias is foreign only")
	}
}

// nil metadata answers false everywhere so the layer degrades silently
func TestNilMetadata(t *testing.T) {
	var m *Metadata
	if m.IsObsolete("zounds") || m.IsArchaic("thee") || m.IsProperNoun("Paris") || m.IsForeignOnly("gracias") {
		t.Error("nil metadata must answer false for every query")
	}
}

func TestLoadTOML(t *testing.T) {
	content := `[sets]
obsolete = ["zounds"]
archaic = ["thee", "thou"]
rare = []
proper_nouns = ["Paris"]
foreign_only = ["gracias"]
`
	path := filepath.Join(t.TempDir(), "lexicon.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	m, ok := Load(path)
	if !ok {
		t.Fatal("valid TOML should load")
	}
	if !m.IsObsolete("zounds") || !m.IsArchaic("thou") || !m.IsProperNoun("paris") || !m.IsForeignOnly("gracias") {
		t.Error("loaded sets do not answer queries")
	}
}

func TestLoadSoftFailures(t *testing.T) {
	if m, ok := Load(filepath.Join(t.TempDir(), "absent.toml")); ok || m != nil {
		t.Error("missing file should soft-fail with (nil, false)")
	}

	broken := filepath.Join(t.TempDir(), "broken.toml")
	if err := os.WriteFile(broken, []byte("[sets\nobsolete = oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, ok := Load(broken); ok {
		t.Error("unparsable file should soft-fail")
	}
}
