package app

import (
	"math"
	"strconv"
	"strings"

	"reviewlens/internal/domain"
)

// coerceRating parses a raw rating cell as a number. It tolerates
// surrounding whitespace and comma decimals ("4,5"). Anything that
// still fails to parse, or parses to a non-finite value, falls back to
// domain.FallbackRating.
func coerceRating(raw string) float64 {
	s := strings.TrimSpace(strings.ReplaceAll(raw, ",", "."))
	if s == "" {
		return domain.FallbackRating
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return domain.FallbackRating
	}
	return f
}

// ClassifyRows annotates every row with a finite numeric rating, a
// sentiment bucket and the cleaned content. It never fails: malformed
// ratings take the fallback, and 0..N rows always yield N results.
func ClassifyRows(rows []domain.ReviewRow) []domain.ClassifiedReview {
	out := make([]domain.ClassifiedReview, 0, len(rows))
	for _, r := range rows {
		nr := coerceRating(r.RawRating)
		out = append(out, domain.ClassifiedReview{
			ReviewRow:     r,
			NumericRating: nr,
			Sentiment:     domain.BucketRating(nr),
			Cleaned:       CleanText(r.Content),
		})
	}
	return out
}
