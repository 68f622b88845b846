package shared_test

import (
	"os"
	"path/filepath"
	"testing"

	"reviewlens/internal/shared"
)

func TestLoadLexicon_Empty(t *testing.T) {
	lx, err := shared.LoadLexicon("")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if lx.Stopwords != nil || lx.MinTermRunes != 0 || lx.Roles != nil {
		t.Fatalf("expected zero lexicon, got %+v", lx)
	}
}

func TestLoadLexicon_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.yaml")
	content := `stopwords: [und, oder, der]
min_term_runes: 3
roles:
  rating: [bewertung, sterne]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	lx, err := shared.LoadLexicon(path)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(lx.Stopwords) != 3 || lx.Stopwords[0] != "und" {
		t.Errorf("stopwords %v", lx.Stopwords)
	}
	if lx.MinTermRunes != 3 {
		t.Errorf("min_term_runes %d", lx.MinTermRunes)
	}
	if len(lx.Roles["rating"]) != 2 {
		t.Errorf("roles %v", lx.Roles)
	}
}

func TestLoadLexicon_Missing(t *testing.T) {
	if _, err := shared.LoadLexicon("/no/such/lexicon.yaml"); err == nil {
		t.Fatal("expected an error")
	}
}
