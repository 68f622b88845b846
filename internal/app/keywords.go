package app

import (
	"sort"
	"strings"
	"unicode/utf8"

	"reviewlens/internal/domain"
)

const defaultMinTermRunes = 2

// KeywordOptions tunes the filter stage of keyword extraction. Zero
// values mean the built-in defaults (the static stopword set and the
// two-rune minimum).
type KeywordOptions struct {
	Stopwords    map[string]struct{}
	MinTermRunes int
}

func (o KeywordOptions) normalized() KeywordOptions {
	if o.Stopwords == nil {
		o.Stopwords = defaultStopwords
	}
	if o.MinTermRunes <= 0 {
		o.MinTermRunes = defaultMinTermRunes
	}
	return o
}

// ExtractKeywords joins the non-empty cells into one blob, segments it,
// filters short terms and stopwords, and returns the topN most frequent
// terms ranked descending by count. Ties keep first-occurrence order.
// Empty input yields an empty result; topN larger than the distinct
// term count returns everything without padding.
func ExtractKeywords(cells []string, topN int, seg domain.Segmenter, opts KeywordOptions) []domain.TermCount {
	if topN <= 0 {
		return nil
	}
	opts = opts.normalized()

	nonEmpty := make([]string, 0, len(cells))
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			nonEmpty = append(nonEmpty, c)
		}
	}
	if len(nonEmpty) == 0 {
		return nil
	}

	counts := make(map[string]int)
	order := make([]string, 0, 64) // first-occurrence order for stable ties
	for _, w := range seg.Segment(strings.Join(nonEmpty, " ")) {
		t := strings.TrimSpace(w)
		if utf8.RuneCountInString(t) < opts.MinTermRunes {
			continue
		}
		if _, stop := opts.Stopwords[strings.ToLower(t)]; stop {
			continue
		}
		if _, seen := counts[t]; !seen {
			order = append(order, t)
		}
		counts[t]++
	}

	ranked := make([]domain.TermCount, 0, len(order))
	for _, t := range order {
		ranked = append(ranked, domain.TermCount{Term: t, Count: counts[t]})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Count > ranked[j].Count })

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}
