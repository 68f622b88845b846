package domain

// Sentiment buckets a review by its numeric rating.
type Sentiment string

const (
	SentimentNegative Sentiment = "negative" // pain point
	SentimentPositive Sentiment = "positive" // selling point
)

// Rating policy. FallbackRating is substituted when a raw rating cannot
// be coerced to a number; it deliberately biases ambiguous rows toward
// "positive" so missing data is not reported as a pain point.
// NegativeMax is the bucket boundary, inclusive on the negative side.
const (
	FallbackRating = 4.0
	NegativeMax    = 3.0
)

// ReviewRow is one record of the uploaded table after column mapping.
// Absent cells are empty strings; nothing is validated at this stage.
type ReviewRow struct {
	RawRating string `json:"raw_rating"`
	Content   string `json:"content"`
	Date      string `json:"date,omitempty"`
	Variant   string `json:"variant,omitempty"`
}

// ClassifiedReview is a ReviewRow after coercion, bucketing and text
// cleaning. Every classified row carries exactly one sentiment and a
// finite numeric rating.
type ClassifiedReview struct {
	ReviewRow
	NumericRating float64   `json:"numeric_rating"`
	Sentiment     Sentiment `json:"sentiment"`
	Cleaned       string    `json:"-"`
}

// BucketRating applies the fixed sentiment policy to a numeric rating.
func BucketRating(r float64) Sentiment {
	if r <= NegativeMax {
		return SentimentNegative
	}
	return SentimentPositive
}
