package analyses

import (
	"math"
	"sort"
	"strings"

	"reviewlens-backend/internal/complaints"
)

// Generic words flagged on low-rated reviews regardless of complaint
// category. Matched against cleaned text, so multi-word phrases never appear
// here.
var complaintKeywords = []string{
	"terrible", "awful", "horrible", "bad", "worst", "hate", "disappointed",
	"regret", "waste", "useless", "broken", "defective", "poor", "cheap",
	"flimsy", "uncomfortable", "painful", "difficult", "problem", "issue",
	"complaint", "return", "refund", "exchange", "wrong", "error",
}

var positiveThemeKeywords = []string{
	"quality", "fast", "good", "great", "excellent", "amazing", "perfect",
	"recommend", "love", "satisfied", "happy", "comfortable", "durable",
	"value", "price", "shipping", "delivery", "packaging",
}

var negativeThemeKeywords = []string{
	"quality", "slow", "expensive", "cheap", "poor", "terrible", "awful",
	"disappointed", "broken", "defective", "shipping", "delivery", "size",
	"color", "material", "service", "support",
}

const maxThemes = 5

// buildRated pairs each review text with its cleaned form and predicted
// rating. Reviews rated 1-2 are marked as complaints and annotated with the
// generic complaint keywords found in their cleaned text.
func buildRated(texts, cleaned []string, ratings []int) []RatedReview {
	rated := make([]RatedReview, len(ratings))
	for i, rating := range ratings {
		r := RatedReview{Rating: rating}
		if i < len(texts) {
			r.Text = texts[i]
		}
		if i < len(cleaned) {
			r.CleanedText = cleaned[i]
		}
		if rating <= 2 {
			r.IsComplaint = true
			r.ComplaintKeywords = keywordsFound(r.CleanedText, complaintKeywords)
		}
		rated[i] = r
	}
	return rated
}

func keywordsFound(text string, keywords []string) []string {
	var found []string
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			found = append(found, kw)
		}
	}
	return found
}

// summarize fills in every statistic derivable from the rated reviews alone.
// Complaint classification results are layered on by the caller.
func summarize(rec *AnalysisRecord, rated []RatedReview) {
	total := len(rated)
	if total == 0 {
		return
	}

	var sum int
	var positive, neutral, negative []RatedReview
	distribution := emptyDistribution()
	for _, r := range rated {
		sum += r.Rating
		distribution[ratingKey(r.Rating)]++
		switch {
		case r.Rating <= 2:
			negative = append(negative, r)
		case r.Rating >= 4:
			positive = append(positive, r)
		default:
			neutral = append(neutral, r)
		}
	}

	avg := float64(sum) / float64(total)
	complaintPct := float64(len(negative)) / float64(total) * 100

	rec.AverageRating = round2(avg)
	rec.TotalReviews = total
	rec.TotalComplaints = len(negative)
	rec.ComplaintPercentage = round1(complaintPct)
	rec.RecommendationScore = recommendationScore(avg, complaintPct, total)
	rec.RatingDistribution = distribution
	rec.SentimentBreakdown = SentimentBreakdown{
		Positive:    len(positive),
		Neutral:     len(neutral),
		Negative:    len(negative),
		PositivePct: float64(len(positive)) / float64(total) * 100,
		NeutralPct:  float64(len(neutral)) / float64(total) * 100,
		NegativePct: float64(len(negative)) / float64(total) * 100,
	}
	rec.PositiveThemes = extractThemes(positive, positiveThemeKeywords)
	rec.NegativeThemes = extractThemes(negative, negativeThemeKeywords)
}

func ratingKey(rating int) string {
	switch rating {
	case 1:
		return "1"
	case 2:
		return "2"
	case 4:
		return "4"
	case 5:
		return "5"
	default:
		return "3"
	}
}

// recommendationScore blends the average rating with a penalty for complaint
// density (capped at 50 points) and a small sample-size bonus (capped at 10).
func recommendationScore(avg, complaintPct float64, total int) float64 {
	if total == 0 {
		return 0
	}
	base := avg / 5 * 100
	penalty := math.Min(complaintPct*2, 50)
	bonus := math.Min(float64(total)/10, 10)
	score := base - penalty + bonus
	return round1(math.Max(0, math.Min(100, score)))
}

// extractThemes counts how many reviews in the bucket mention each theme
// keyword and returns the top five. Ties keep the keyword list order.
func extractThemes(bucket []RatedReview, keywords []string) []Theme {
	themes := []Theme{}
	if len(bucket) == 0 {
		return themes
	}
	for _, kw := range keywords {
		count := 0
		for _, r := range bucket {
			if strings.Contains(strings.ToLower(r.CleanedText), kw) {
				count++
			}
		}
		if count == 0 {
			continue
		}
		themes = append(themes, Theme{
			Theme:      strings.ToUpper(kw[:1]) + kw[1:],
			Mentions:   count,
			Percentage: round1(float64(count) / float64(len(bucket)) * 100),
		})
	}
	sort.SliceStable(themes, func(i, j int) bool {
		return themes[i].Mentions > themes[j].Mentions
	})
	if len(themes) > maxThemes {
		themes = themes[:maxThemes]
	}
	return themes
}

// nonzeroCounts drops zero-count categories so an analysis with no detected
// complaints reports an empty map rather than eight zeros.
func nonzeroCounts(counts map[complaints.Category]int) map[string]int {
	out := map[string]int{}
	for category, count := range counts {
		if count > 0 {
			out[string(category)] = count
		}
	}
	return out
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
