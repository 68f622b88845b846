package app_test

import (
	"testing"

	"reviewlens/internal/app"
	"reviewlens/internal/domain"
)

func rowWithDate(d string) domain.ClassifiedReview {
	return domain.ClassifiedReview{ReviewRow: domain.ReviewRow{Date: d}}
}

func TestMonthlyTrend_BucketsAndGapFill(t *testing.T) {
	rows := []domain.ClassifiedReview{
		rowWithDate("2024-01-05"),
		rowWithDate("2024-01-20"),
		rowWithDate("2024-03-02"),
		rowWithDate("not a date"),
		rowWithDate(""),
	}
	trend, ok := app.MonthlyTrend(rows)
	if !ok {
		t.Fatal("trend should be available")
	}
	want := []domain.MonthCount{
		{Month: "2024-01", Count: 2},
		{Month: "2024-02", Count: 0},
		{Month: "2024-03", Count: 1},
	}
	if len(trend) != len(want) {
		t.Fatalf("trend = %v, want %v", trend, want)
	}
	for i := range want {
		if trend[i] != want[i] {
			t.Errorf("month %d = %+v, want %+v", i, trend[i], want[i])
		}
	}
}

func TestMonthlyTrend_Unavailable(t *testing.T) {
	if _, ok := app.MonthlyTrend(nil); ok {
		t.Fatal("no rows must mean no trend")
	}
	rows := []domain.ClassifiedReview{rowWithDate("garbage"), rowWithDate("more garbage")}
	if _, ok := app.MonthlyTrend(rows); ok {
		t.Fatal("all-unparseable column must degrade to unavailable")
	}
}
