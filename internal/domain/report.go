package domain

import "time"

// TermCount is one entry of a ranked term-frequency table, descending
// by count with first-encountered order breaking ties.
type TermCount struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

// RatingCount is one bar of the rating histogram.
type RatingCount struct {
	Rating float64 `json:"rating"`
	Count  int     `json:"count"`
}

// MonthCount is one point of the monthly review trend. Month is
// formatted "2006-01".
type MonthCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// VariantStat aggregates one variant/SKU value.
type VariantStat struct {
	Variant   string  `json:"variant"`
	AvgRating float64 `json:"avg_rating"`
	Count     int     `json:"count"`
}

// Excerpt is a verbatim negative review tagged with its numeric rating.
type Excerpt struct {
	Rating float64 `json:"rating"`
	Text   string  `json:"text"`
}

// Summary holds the dashboard's headline scalars.
type Summary struct {
	AvgRating       float64 `json:"avg_rating"`
	ReviewCount     int     `json:"review_count"`
	NegativePercent float64 `json:"negative_percent"`
}

// Report is the full analysis result for one session and one set of
// controls. Everything is derived in memory per recomputation; nothing
// outlives the session.
type Report struct {
	UploadID string        `json:"upload_id"`
	Mapping  ColumnMapping `json:"mapping"`

	Summary   Summary       `json:"summary"`
	Histogram []RatingCount `json:"rating_histogram"`

	TrendAvailable bool         `json:"trend_available"`
	Trend          []MonthCount `json:"monthly_trend,omitempty"`

	PositiveTerms []TermCount `json:"positive_terms"`
	NegativeTerms []TermCount `json:"negative_terms"`
	OverallTerms  []TermCount `json:"overall_terms"`

	Variants []VariantStat `json:"variants,omitempty"`

	// WorstReviews holds up to five of the longest negative reviews
	// verbatim. NoNegatives flags the empty subset so the surface can
	// show a success note instead of an empty panel.
	WorstReviews []Excerpt `json:"worst_reviews,omitempty"`
	NoNegatives  bool      `json:"no_negatives"`

	GeneratedAt time.Time `json:"generated_at"`
}

// ColumnMapping assigns logical roles to actual column names. Empty
// Date/Variant means the role is not mapped and its panel is skipped.
type ColumnMapping struct {
	Rating  string `json:"rating"`
	Content string `json:"content"`
	Date    string `json:"date,omitempty"`
	Variant string `json:"variant,omitempty"`
}
