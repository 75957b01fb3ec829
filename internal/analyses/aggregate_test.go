package analyses

import (
	"testing"

	"reviewlens-backend/internal/complaints"
)

func TestBuildRatedAnnotatesComplaints(t *testing.T) {
	texts := []string{"Great product", "Terrible, broken on arrival"}
	cleaned := []string{"great product", "terrible broken on arrival"}
	ratings := []int{5, 1}

	rated := buildRated(texts, cleaned, ratings)
	if len(rated) != 2 {
		t.Fatalf("rated len = %d, want 2", len(rated))
	}
	if rated[0].IsComplaint {
		t.Errorf("rating 5 marked as complaint")
	}
	if rated[0].ComplaintKeywords != nil {
		t.Errorf("non-complaint has keywords %v", rated[0].ComplaintKeywords)
	}
	if !rated[1].IsComplaint {
		t.Errorf("rating 1 not marked as complaint")
	}
	want := []string{"terrible", "broken"}
	got := rated[1].ComplaintKeywords
	if len(got) != len(want) {
		t.Fatalf("keywords = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("keywords[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSummarizeScenario(t *testing.T) {
	texts := []string{"Amazing quality!", "Terrible, broke in a day", "It's okay", "", "Worst purchase, defective item"}
	cleaned := make([]string, len(texts))
	copy(cleaned, texts)
	ratings := []int{5, 1, 3, 3, 1}

	rec := EmptyRecord("id", "Keyword-based", false, "")
	summarize(&rec, buildRated(texts, cleaned, ratings))

	if rec.AverageRating != 2.6 {
		t.Errorf("average_rating = %v, want 2.6", rec.AverageRating)
	}
	if rec.TotalReviews != 5 {
		t.Errorf("total_reviews = %d, want 5", rec.TotalReviews)
	}
	if rec.TotalComplaints != 2 {
		t.Errorf("total_complaints = %d, want 2", rec.TotalComplaints)
	}
	if rec.ComplaintPercentage != 40.0 {
		t.Errorf("complaint_percentage = %v, want 40.0", rec.ComplaintPercentage)
	}
	wantDist := map[string]int{"1": 2, "2": 0, "3": 2, "4": 0, "5": 1}
	for k, v := range wantDist {
		if rec.RatingDistribution[k] != v {
			t.Errorf("rating_distribution[%s] = %d, want %d", k, rec.RatingDistribution[k], v)
		}
	}
	sb := rec.SentimentBreakdown
	if sb.Positive != 1 || sb.Neutral != 2 || sb.Negative != 2 {
		t.Errorf("sentiment buckets = %d/%d/%d, want 1/2/2", sb.Positive, sb.Neutral, sb.Negative)
	}
	// base 52 - penalty 50 + bonus 0.5
	if rec.RecommendationScore != 2.5 {
		t.Errorf("recommendation_score = %v, want 2.5", rec.RecommendationScore)
	}
}

func TestSummarizeProperties(t *testing.T) {
	cases := [][]int{
		{1},
		{5, 5, 5, 5},
		{1, 2, 3, 4, 5},
		{2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2},
		{3, 3, 4, 1, 5, 2, 4, 4},
	}
	for _, ratings := range cases {
		texts := make([]string, len(ratings))
		rec := EmptyRecord("id", "Keyword-based", false, "")
		summarize(&rec, buildRated(texts, texts, ratings))

		sum := 0
		for _, v := range rec.RatingDistribution {
			sum += v
		}
		if sum != rec.TotalReviews {
			t.Errorf("ratings %v: distribution sums to %d, total %d", ratings, sum, rec.TotalReviews)
		}
		if rec.AverageRating < 1 || rec.AverageRating > 5 {
			t.Errorf("ratings %v: average_rating %v out of [1,5]", ratings, rec.AverageRating)
		}
		if rec.ComplaintPercentage < 0 || rec.ComplaintPercentage > 100 {
			t.Errorf("ratings %v: complaint_percentage %v out of [0,100]", ratings, rec.ComplaintPercentage)
		}
		if rec.RecommendationScore < 0 || rec.RecommendationScore > 100 {
			t.Errorf("ratings %v: recommendation_score %v out of [0,100]", ratings, rec.RecommendationScore)
		}
		sb := rec.SentimentBreakdown
		if sb.Positive+sb.Neutral+sb.Negative != rec.TotalReviews {
			t.Errorf("ratings %v: buckets %d/%d/%d do not partition %d reviews",
				ratings, sb.Positive, sb.Neutral, sb.Negative, rec.TotalReviews)
		}
	}
}

func TestRecommendationScoreBounds(t *testing.T) {
	cases := []struct {
		avg          float64
		complaintPct float64
		total        int
		want         float64
	}{
		{5, 0, 1000, 100},  // clamped high: 100 + 10 bonus
		{1, 100, 1, 0},     // clamped low: 20 - 50 + 0.1
		{0, 0, 0, 0},       // no reviews
		{4, 10, 20, 62},    // 80 - 20 + 2
		{3, 50, 100, 20},   // 60 - 50 (capped) + 10
	}
	for _, tc := range cases {
		got := recommendationScore(tc.avg, tc.complaintPct, tc.total)
		if got != tc.want {
			t.Errorf("recommendationScore(%v, %v, %d) = %v, want %v", tc.avg, tc.complaintPct, tc.total, got, tc.want)
		}
	}
}

func TestExtractThemes(t *testing.T) {
	bucket := []RatedReview{
		{CleanedText: "great quality and fast shipping"},
		{CleanedText: "good quality for the price"},
		{CleanedText: "love it great value"},
		{CleanedText: "quality is perfect"},
	}
	themes := extractThemes(bucket, positiveThemeKeywords)
	if len(themes) > maxThemes {
		t.Fatalf("got %d themes, want at most %d", len(themes), maxThemes)
	}
	if themes[0].Theme != "Quality" || themes[0].Mentions != 3 {
		t.Errorf("top theme = %+v, want Quality with 3 mentions", themes[0])
	}
	if themes[0].Percentage != 75.0 {
		t.Errorf("top theme percentage = %v, want 75.0", themes[0].Percentage)
	}
	for i := 1; i < len(themes); i++ {
		if themes[i].Mentions > themes[i-1].Mentions {
			t.Errorf("themes not sorted by mentions: %+v", themes)
		}
	}
}

func TestExtractThemesEmptyBucket(t *testing.T) {
	themes := extractThemes(nil, negativeThemeKeywords)
	if len(themes) != 0 {
		t.Errorf("themes = %v, want empty", themes)
	}
}

func TestExtractThemesCapsAtFive(t *testing.T) {
	bucket := []RatedReview{
		{CleanedText: "quality fast good great excellent amazing perfect recommend"},
	}
	themes := extractThemes(bucket, positiveThemeKeywords)
	if len(themes) != maxThemes {
		t.Errorf("got %d themes, want %d", len(themes), maxThemes)
	}
	// ties keep keyword list order
	if themes[0].Theme != "Quality" {
		t.Errorf("first theme = %q, want Quality", themes[0].Theme)
	}
}

func TestNonzeroCounts(t *testing.T) {
	counts := complaints.EmptyCounts()
	counts[complaints.BatteryLife] = 3
	counts[complaints.ShippingDelivery] = 1

	got := nonzeroCounts(counts)
	if len(got) != 2 {
		t.Fatalf("got %d categories, want 2: %v", len(got), got)
	}
	if got["battery_life"] != 3 || got["shipping_delivery"] != 1 {
		t.Errorf("counts = %v", got)
	}
}
