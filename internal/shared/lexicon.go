package shared

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Lexicon carries the locale-dependent heuristics: the stopword list,
// the minimum term length, and the per-role column-name candidates
// used by auto-detection. An empty field keeps the built-in default.
type Lexicon struct {
	Stopwords    []string            `yaml:"stopwords"`
	MinTermRunes int                 `yaml:"min_term_runes"`
	Roles        map[string][]string `yaml:"roles"`
}

// LoadLexicon reads a YAML lexicon override. path == "" returns the
// zero Lexicon, meaning all defaults apply.
func LoadLexicon(path string) (Lexicon, error) {
	var lx Lexicon
	if path == "" {
		return lx, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return lx, fmt.Errorf("read lexicon %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &lx); err != nil {
		return lx, fmt.Errorf("parse lexicon %s: %w", path, err)
	}
	return lx, nil
}
