package app_test

import (
	"testing"

	"reviewlens/internal/app"
)

func TestDetectColumns(t *testing.T) {
	cols := []string{"ASIN", "Star Rating", "Review Text", "Review Date", "SKU"}
	m := app.DetectColumns(cols, nil)
	if m.Rating != "Star Rating" {
		t.Errorf("rating = %q", m.Rating)
	}
	if m.Content != "Review Text" {
		t.Errorf("content = %q", m.Content)
	}
	if m.Date != "Review Date" {
		t.Errorf("date = %q", m.Date)
	}
	if m.Variant != "SKU" {
		t.Errorf("variant = %q", m.Variant)
	}
}

func TestDetectColumns_FallbackToFirst(t *testing.T) {
	cols := []string{"col_a", "col_b"}
	m := app.DetectColumns(cols, nil)
	if m.Rating != "col_a" || m.Content != "col_a" || m.Date != "col_a" {
		t.Fatalf("required roles must fall back to the first column: %+v", m)
	}
	if m.Variant != "" {
		t.Fatalf("variant is optional and must stay unmapped: %+v", m)
	}
}

func TestDetectColumns_Empty(t *testing.T) {
	m := app.DetectColumns(nil, nil)
	if m.Rating != "" || m.Content != "" || m.Date != "" || m.Variant != "" {
		t.Fatalf("empty table must yield empty mapping: %+v", m)
	}
}

func TestDetectColumns_CustomCandidates(t *testing.T) {
	roles := map[string][]string{"rating": {"bewertung"}, "content": {"inhalt"}}
	m := app.DetectColumns([]string{"Inhalt", "Bewertung"}, roles)
	if m.Rating != "Bewertung" || m.Content != "Inhalt" {
		t.Fatalf("custom candidates ignored: %+v", m)
	}
}

func TestDetectColumns_CandidateCaseInsensitive(t *testing.T) {
	// Configured fragments match regardless of their own casing.
	roles := map[string][]string{"rating": {"Bewertung"}, "content": {"INHALT"}}
	m := app.DetectColumns([]string{"inhalt", "bewertung (sterne)"}, roles)
	if m.Rating != "bewertung (sterne)" || m.Content != "inhalt" {
		t.Fatalf("mixed-case candidates must still match: %+v", m)
	}
}
