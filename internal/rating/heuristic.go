package rating

import "strings"

// ratingKeywords maps each star rating to the keywords that pin it. Buckets
// are checked from five stars down; the first bucket containing a match wins,
// so strongly positive wording beats weaker signals in the same review.
var ratingKeywords = []struct {
	rating   int
	keywords []string
}{
	{5, []string{"amazing", "excellent", "great", "perfect", "love", "awesome"}},
	{4, []string{"good", "nice", "satisfied", "recommend"}},
	{3, []string{"average", "okay", "decent"}},
	{2, []string{"poor", "disappointed", "slow"}},
	{1, []string{"terrible", "awful", "worst", "hate", "broken", "defective"}},
}

const defaultRating = 3

// HeuristicPredictor assigns ratings by keyword presence in the raw text.
type HeuristicPredictor struct{}

// NewHeuristicPredictor constructs the keyword strategy.
func NewHeuristicPredictor() *HeuristicPredictor {
	return &HeuristicPredictor{}
}

// Predict returns one rating per text. Texts matching no bucket get the
// neutral default of 3.
func (p *HeuristicPredictor) Predict(texts []string) []int {
	ratings := make([]int, len(texts))
	for i, text := range texts {
		ratings[i] = scoreKeywords(text)
	}
	return ratings
}

func scoreKeywords(text string) int {
	lower := strings.ToLower(text)
	for _, bucket := range ratingKeywords {
		for _, kw := range bucket.keywords {
			if strings.Contains(lower, kw) {
				return bucket.rating
			}
		}
	}
	return defaultRating
}
