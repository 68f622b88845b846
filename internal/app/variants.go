package app

import (
	"sort"

	"reviewlens/internal/domain"
)

// AggregateVariants computes per-variant mean rating and sample size,
// drops variants with fewer than minCount rows, and ranks the rest by
// mean rating ascending so problem variants surface first. Rows with
// an empty variant cell are ignored.
func AggregateVariants(rows []domain.ClassifiedReview, minCount int) []domain.VariantStat {
	if minCount < 1 {
		minCount = 1
	}

	type acc struct {
		sum   float64
		count int
	}
	byVariant := make(map[string]*acc)
	for _, r := range rows {
		if r.Variant == "" {
			continue
		}
		a := byVariant[r.Variant]
		if a == nil {
			a = &acc{}
			byVariant[r.Variant] = a
		}
		a.sum += r.NumericRating
		a.count++
	}

	out := make([]domain.VariantStat, 0, len(byVariant))
	for v, a := range byVariant {
		if a.count < minCount {
			continue
		}
		out = append(out, domain.VariantStat{
			Variant:   v,
			AvgRating: a.sum / float64(a.count),
			Count:     a.count,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AvgRating != out[j].AvgRating {
			return out[i].AvgRating < out[j].AvgRating
		}
		return out[i].Variant < out[j].Variant
	})
	return out
}
