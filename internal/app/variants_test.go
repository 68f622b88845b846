package app_test

import (
	"testing"

	"reviewlens/internal/app"
	"reviewlens/internal/domain"
)

func variantRow(v string, rating float64) domain.ClassifiedReview {
	return domain.ClassifiedReview{
		ReviewRow:     domain.ReviewRow{Variant: v},
		NumericRating: rating,
	}
}

func TestAggregateVariants_MinCountFilter(t *testing.T) {
	rows := []domain.ClassifiedReview{
		variantRow("A", 5),
		variantRow("A", 3),
		variantRow("B", 1),
	}
	got := app.AggregateVariants(rows, 2)
	if len(got) != 1 {
		t.Fatalf("expected only variant A, got %v", got)
	}
	if got[0].Variant != "A" || got[0].AvgRating != 4.0 || got[0].Count != 2 {
		t.Fatalf("unexpected aggregate: %+v", got[0])
	}
}

func TestAggregateVariants_WorstFirst(t *testing.T) {
	rows := []domain.ClassifiedReview{
		variantRow("good", 5),
		variantRow("good", 5),
		variantRow("bad", 1),
		variantRow("bad", 2),
		variantRow("", 1), // unmapped variant cells are ignored
	}
	got := app.AggregateVariants(rows, 1)
	if len(got) != 2 {
		t.Fatalf("expected 2 variants, got %v", got)
	}
	if got[0].Variant != "bad" || got[1].Variant != "good" {
		t.Fatalf("expected worst variant first, got %v", got)
	}
}
