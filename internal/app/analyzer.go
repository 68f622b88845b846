package app

import (
	"fmt"
	"sort"
	"time"
	"unicode/utf8"

	"reviewlens/internal/domain"
)

const (
	defaultTopN     = 20
	maxWorstReviews = 5
)

// Params are the controls of one recomputation. Zero-value mapping
// roles are filled by auto-detection; TopN <= 0 takes the analyzer's
// default; MinCount < 1 means no variant filtering.
type Params struct {
	Mapping  domain.ColumnMapping `json:"mapping"`
	TopN     int                  `json:"top_n"`
	MinCount int                  `json:"min_count"`
}

// Analyzer runs the full descriptive pass over one uploaded table:
// classify, clean, bucket, keyword-rank, trend, variants, excerpts.
// It is stateless and safe for concurrent use.
type Analyzer struct {
	seg     domain.Segmenter
	kwOpts  KeywordOptions
	roles   map[string][]string
	defTopN int
}

// Options carries the configurable heuristics (see the lexicon file).
// Empty fields keep the built-in defaults.
type Options struct {
	Stopwords    []string
	MinTermRunes int
	Roles        map[string][]string
	DefaultTopN  int
}

func NewAnalyzer(seg domain.Segmenter, o Options) *Analyzer {
	a := &Analyzer{
		seg:     seg,
		kwOpts:  KeywordOptions{Stopwords: stopwordSet(o.Stopwords), MinTermRunes: o.MinTermRunes},
		roles:   o.Roles,
		defTopN: o.DefaultTopN,
	}
	if a.defTopN <= 0 {
		a.defTopN = defaultTopN
	}
	return a
}

// Suggest returns the auto-detected column mapping for a table.
func (a *Analyzer) Suggest(t domain.Table) domain.ColumnMapping {
	return DetectColumns(t.Columns, a.roles)
}

// Analyze produces the full report for one table under one set of
// controls. It is total over row contents: bad ratings fall back, bad
// dates only disable the trend panel. Anything unexpected is recovered
// and surfaced as a single error so a bad upload can never take the
// process down.
func (a *Analyzer) Analyze(uploadID string, t domain.Table, p Params) (rep domain.Report, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("analysis failed: %v", r)
		}
	}()

	mapping := a.completeMapping(t, p.Mapping)
	topN := p.TopN
	if topN <= 0 {
		topN = a.defTopN
	}

	rows := ClassifyRows(a.mapRows(t, mapping))

	rep = domain.Report{
		UploadID:    uploadID,
		Mapping:     mapping,
		GeneratedAt: time.Now().UTC(),
	}
	rep.Summary = summarize(rows)
	rep.Histogram = histogram(rows)

	if mapping.Date != "" {
		rep.Trend, rep.TrendAvailable = MonthlyTrend(rows)
	}

	var pos, neg []domain.ClassifiedReview
	for _, r := range rows {
		if r.Sentiment == domain.SentimentNegative {
			neg = append(neg, r)
		} else {
			pos = append(pos, r)
		}
	}
	rep.PositiveTerms = ExtractKeywords(cleaned(pos), topN, a.seg, a.kwOpts)
	rep.NegativeTerms = ExtractKeywords(cleaned(neg), topN, a.seg, a.kwOpts)
	rep.OverallTerms = ExtractKeywords(cleaned(rows), topN, a.seg, a.kwOpts)

	if mapping.Variant != "" {
		rep.Variants = AggregateVariants(rows, p.MinCount)
	}

	rep.WorstReviews = worstReviews(neg)
	rep.NoNegatives = len(neg) == 0
	return rep, nil
}

// completeMapping fills unset roles by detection while keeping the
// caller's explicit choices.
func (a *Analyzer) completeMapping(t domain.Table, m domain.ColumnMapping) domain.ColumnMapping {
	det := DetectColumns(t.Columns, a.roles)
	if m.Rating == "" {
		m.Rating = det.Rating
	}
	if m.Content == "" {
		m.Content = det.Content
	}
	if m.Date == "" {
		m.Date = det.Date
	}
	if m.Variant == "" {
		m.Variant = det.Variant
	}
	return m
}

func (a *Analyzer) mapRows(t domain.Table, m domain.ColumnMapping) []domain.ReviewRow {
	ri, ci := t.Col(m.Rating), t.Col(m.Content)
	di, vi := t.Col(m.Date), t.Col(m.Variant)
	out := make([]domain.ReviewRow, 0, len(t.Rows))
	for _, row := range t.Rows {
		out = append(out, domain.ReviewRow{
			RawRating: domain.Cell(row, ri),
			Content:   domain.Cell(row, ci),
			Date:      domain.Cell(row, di),
			Variant:   domain.Cell(row, vi),
		})
	}
	return out
}

func summarize(rows []domain.ClassifiedReview) domain.Summary {
	s := domain.Summary{ReviewCount: len(rows)}
	if len(rows) == 0 {
		return s
	}
	var sum float64
	var negs int
	for _, r := range rows {
		sum += r.NumericRating
		if r.Sentiment == domain.SentimentNegative {
			negs++
		}
	}
	s.AvgRating = sum / float64(len(rows))
	s.NegativePercent = float64(negs) / float64(len(rows)) * 100
	return s
}

func histogram(rows []domain.ClassifiedReview) []domain.RatingCount {
	counts := make(map[float64]int)
	for _, r := range rows {
		counts[r.NumericRating]++
	}
	out := make([]domain.RatingCount, 0, len(counts))
	for rating, n := range counts {
		out = append(out, domain.RatingCount{Rating: rating, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Rating < out[j].Rating })
	return out
}

func cleaned(rows []domain.ClassifiedReview) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Cleaned)
	}
	return out
}

// worstReviews picks the longest negative verbatims; length is a cheap
// proxy for detail. Equal lengths keep input order.
func worstReviews(neg []domain.ClassifiedReview) []domain.Excerpt {
	byLen := make([]domain.ClassifiedReview, len(neg))
	copy(byLen, neg)
	sort.SliceStable(byLen, func(i, j int) bool {
		return utf8.RuneCountInString(byLen[i].Content) > utf8.RuneCountInString(byLen[j].Content)
	})
	if len(byLen) > maxWorstReviews {
		byLen = byLen[:maxWorstReviews]
	}
	out := make([]domain.Excerpt, 0, len(byLen))
	for _, r := range byLen {
		out = append(out, domain.Excerpt{Rating: r.NumericRating, Text: r.Content})
	}
	return out
}
