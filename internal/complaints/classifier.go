package complaints

import (
	"context"
	"math"
	"sort"
)

// DefaultThreshold is the minimum confidence for a category match.
const DefaultThreshold = 0.3

// Match is one (review, category) classification above the threshold.
type Match struct {
	Score       float64
	Description string
}

// Classifier maps review texts to per-category matches. One map per input
// text, possibly empty. Implementations never fail the whole call for a
// single bad text; the zero-shot strategy isolates failures per batch.
type Classifier interface {
	ClassifyBatch(ctx context.Context, texts []string, threshold float64) ([]map[Category]Match, error)
}

// TopComplaint is one entry of the ranked complaint summary.
type TopComplaint struct {
	Category    Category `json:"category"`
	Count       int      `json:"count"`
	Description string   `json:"description"`
}

// ComplaintReview is a representative complaint excerpt: the raw review text,
// its highest-scoring category, and that category's confidence.
type ComplaintReview struct {
	Text          string   `json:"text"`
	ComplaintType Category `json:"complaint_type"`
	Confidence    float64  `json:"confidence"`
}

// maxComplaintReviews bounds the representative excerpt list.
const maxComplaintReviews = 10

// CountByCategory folds per-review matches into per-category counts. Every
// category key is present even at zero. A review increments a category at
// most once.
func CountByCategory(results []map[Category]Match) map[Category]int {
	counts := EmptyCounts()
	for _, matches := range results {
		for cat := range matches {
			counts[cat]++
		}
	}
	return counts
}

// TopComplaints returns up to n categories with nonzero counts, descending by
// count. Ties keep the fixed vocabulary enumeration order (stable sort over
// the ordered vocabulary).
func TopComplaints(counts map[Category]int, n int) []TopComplaint {
	ranked := make([]TopComplaint, 0, len(vocabulary))
	for _, cat := range vocabulary {
		if counts[cat] > 0 {
			ranked = append(ranked, TopComplaint{
				Category:    cat,
				Count:       counts[cat],
				Description: SummaryFor(cat),
			})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if n >= 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// ExtractReviews builds the representative complaint excerpts: for every
// review with at least one scored match, its best category and rounded
// confidence. The list is ordered highest confidence first and truncated to
// ten entries. Matches without a real confidence (the keyword fallback) are
// skipped since the heuristic produces counts only.
func ExtractReviews(texts []string, results []map[Category]Match) []ComplaintReview {
	reviews := make([]ComplaintReview, 0, len(results))
	for i, matches := range results {
		if i >= len(texts) {
			break
		}
		cat, match, ok := bestMatch(matches)
		if !ok || match.Score <= 0 {
			continue
		}
		reviews = append(reviews, ComplaintReview{
			Text:          texts[i],
			ComplaintType: cat,
			Confidence:    round3(match.Score),
		})
	}
	sort.SliceStable(reviews, func(i, j int) bool {
		return reviews[i].Confidence > reviews[j].Confidence
	})
	if len(reviews) > maxComplaintReviews {
		reviews = reviews[:maxComplaintReviews]
	}
	return reviews
}

// bestMatch returns the highest-scoring category for one review. Score ties
// resolve to the earlier category in vocabulary order so output is stable
// across runs.
func bestMatch(matches map[Category]Match) (Category, Match, bool) {
	var (
		bestCat   Category
		bestMatch Match
		found     bool
	)
	for _, cat := range vocabulary {
		match, ok := matches[cat]
		if !ok {
			continue
		}
		if !found || match.Score > bestMatch.Score {
			bestCat = cat
			bestMatch = match
			found = true
		}
	}
	return bestCat, bestMatch, found
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
