// Package analyses turns a batch of raw review texts into the canonical
// analysis record: per-review ratings, aggregate statistics, and complaint
// classification.
package analyses

import "reviewlens-backend/internal/complaints"

// RatedReview is one review after normalization and rating prediction. Built
// once per analysis call and never mutated afterwards.
type RatedReview struct {
	Text              string   `json:"text"`
	CleanedText       string   `json:"cleaned_text"`
	Rating            int      `json:"rating"`
	IsComplaint       bool     `json:"is_complaint"`
	ComplaintKeywords []string `json:"complaint_keywords,omitempty"`
}

// SentimentBreakdown partitions reviews into the three rating buckets.
type SentimentBreakdown struct {
	Positive    int     `json:"positive"`
	Neutral     int     `json:"neutral"`
	Negative    int     `json:"negative"`
	PositivePct float64 `json:"positive_percentage"`
	NeutralPct  float64 `json:"neutral_percentage"`
	NegativePct float64 `json:"negative_percentage"`
}

// Theme is one recurring keyword found in a rating bucket.
type Theme struct {
	Theme      string  `json:"theme"`
	Mentions   int     `json:"mentions"`
	Percentage float64 `json:"percentage"`
}

// AnalysisRecord is the aggregate output of one analysis call. All fields are
// native scalar types so the record serializes without a conversion pass.
// ComplaintReviews is held as a top-level field so callers persisting the
// record can split it out to the parent document (see SplitComplaintReviews).
type AnalysisRecord struct {
	AnalysisID          string                       `json:"analysis_id"`
	AverageRating       float64                      `json:"average_rating"`
	TotalReviews        int                          `json:"total_reviews"`
	TotalComplaints     int                          `json:"total_complaints"`
	ComplaintPercentage float64                      `json:"complaint_percentage"`
	RecommendationScore float64                      `json:"recommendation_score"`
	RatingDistribution  map[string]int               `json:"rating_distribution"`
	SentimentBreakdown  SentimentBreakdown           `json:"sentiment_breakdown"`
	TopComplaints       []complaints.TopComplaint    `json:"top_complaints"`
	ComplaintCategories map[string]int               `json:"complaint_categories"`
	ComplaintReviews    []complaints.ComplaintReview `json:"complaint_reviews"`
	PositiveThemes      []Theme                      `json:"positive_themes"`
	NegativeThemes      []Theme                      `json:"negative_themes"`
	MLBased             bool                         `json:"ml_based"`
	AnalysisMethod      string                       `json:"analysis_method"`
	AnalysisTimestamp   string                       `json:"analysis_timestamp"`
}

// EmptyRecord returns the terminal record for an analysis with no input
// reviews: all-zero statistics with the nominally active method still set.
func EmptyRecord(analysisID, method string, mlBased bool, timestamp string) AnalysisRecord {
	return AnalysisRecord{
		AnalysisID:          analysisID,
		AverageRating:       0,
		TotalReviews:        0,
		TotalComplaints:     0,
		ComplaintPercentage: 0,
		RecommendationScore: 0,
		RatingDistribution:  emptyDistribution(),
		SentimentBreakdown:  SentimentBreakdown{},
		TopComplaints:       []complaints.TopComplaint{},
		ComplaintCategories: map[string]int{},
		ComplaintReviews:    []complaints.ComplaintReview{},
		PositiveThemes:      []Theme{},
		NegativeThemes:      []Theme{},
		MLBased:             mlBased,
		AnalysisMethod:      method,
		AnalysisTimestamp:   timestamp,
	}
}

// SplitComplaintReviews returns a copy of the record without its complaint
// reviews, plus the extracted list. Persistence stores the excerpts at the
// parent-document level rather than inside the analysis.
func (r AnalysisRecord) SplitComplaintReviews() (AnalysisRecord, []complaints.ComplaintReview) {
	extracted := r.ComplaintReviews
	if extracted == nil {
		extracted = []complaints.ComplaintReview{}
	}
	r.ComplaintReviews = nil
	return r, extracted
}

func emptyDistribution() map[string]int {
	return map[string]int{"1": 0, "2": 0, "3": 0, "4": 0, "5": 0}
}
