package app

import (
	"time"

	"github.com/araddon/dateparse"

	"reviewlens/internal/domain"
)

// MonthlyTrend buckets rows into calendar months by their date cell.
// Rows with empty or unparseable dates are left out; when nothing in
// the column parses the trend is reported unavailable rather than
// failing the pass. Months between the first and last observation are
// zero-filled so the series has no gaps.
func MonthlyTrend(rows []domain.ClassifiedReview) ([]domain.MonthCount, bool) {
	counts := make(map[time.Time]int)
	var minM, maxM time.Time

	for _, r := range rows {
		if r.Date == "" {
			continue
		}
		t, err := dateparse.ParseAny(r.Date)
		if err != nil {
			continue
		}
		m := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
		counts[m]++
		if minM.IsZero() || m.Before(minM) {
			minM = m
		}
		if m.After(maxM) {
			maxM = m
		}
	}
	if len(counts) == 0 {
		// No date cells at all, or none parsed. Both degrade to
		// "trend unavailable".
		return nil, false
	}

	var out []domain.MonthCount
	for m := minM; !m.After(maxM); m = m.AddDate(0, 1, 0) {
		out = append(out, domain.MonthCount{Month: m.Format("2006-01"), Count: counts[m]})
	}
	return out, true
}
