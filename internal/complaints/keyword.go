package complaints

import (
	"context"
	"strings"
)

// genericNegativeWords gate the heuristic: a review must read negative at all
// before any category keyword counts.
var genericNegativeWords = []string{
	"terrible", "awful", "horrible", "bad", "worst", "hate", "disappointed",
	"regret", "waste", "useless", "broken", "defective", "poor", "cheap",
	"flimsy", "uncomfortable", "painful", "difficult", "problem", "issue",
	"complaint", "return", "refund", "exchange", "wrong", "error",
}

// categoryKeywords drive the heuristic category assignment, keyed by the
// fixed vocabulary.
var categoryKeywords = map[Category][]string{
	MaterialQuality: {
		"cheap", "flimsy", "plastic", "fragile", "poor quality", "build quality",
		"material", "construction", "sturdy", "durable", "solid", "weak",
		"breaks", "broken", "fell apart", "defective", "manufacturing",
	},
	SoundQuality: {
		"sound", "audio", "bass", "treble", "clarity", "volume", "noise",
		"distortion", "muffled", "tinny", "crisp", "clear", "muddy",
		"loud", "quiet", "music", "speakers", "headphones",
	},
	BatteryLife: {
		"battery", "charge", "charging", "power", "died", "drain",
		"hours", "lasts", "barely lasted",
	},
	ComfortFit: {
		"comfort", "comfortable", "uncomfortable", "fit", "fits", "tight",
		"loose", "painful", "hurt", "ears", "head", "pressure", "heavy",
		"padding", "cushion", "ergonomic",
	},
	Connectivity: {
		"bluetooth", "connection", "connect", "pair", "pairing", "wireless",
		"signal", "range", "disconnect", "drops", "lag", "delay",
	},
	ShippingDelivery: {
		"shipping", "delivery", "package", "packaging", "box", "arrived",
		"late", "lost", "damaged in transit",
	},
	PriceValue: {
		"price", "expensive", "cost", "value", "money", "worth",
		"overpriced", "affordable", "budget", "dollar",
	},
	CustomerService: {
		"service", "support", "refund", "response", "rude", "unhelpful",
		"ignored", "seller", "warranty", "complaint",
	},
}

// KeywordClassifier is the rule-based fallback used when the zero-shot
// endpoint is unavailable. A review matches a category when it contains a
// generic negative word and one of the category's keywords; the first
// matching category in vocabulary order wins, so a review contributes at most
// one heuristic complaint. Matches carry no confidence (Score zero): this
// strategy produces counts, not per-review scores.
type KeywordClassifier struct{}

// NewKeywordClassifier constructs the fallback strategy.
func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{}
}

// ClassifyBatch never fails; the threshold is ignored because keyword matches
// are binary.
func (c *KeywordClassifier) ClassifyBatch(ctx context.Context, texts []string, threshold float64) ([]map[Category]Match, error) {
	_ = threshold
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	results := make([]map[Category]Match, len(texts))
	for i, text := range texts {
		results[i] = classifyKeywords(strings.ToLower(text))
	}
	return results, nil
}

func classifyKeywords(lower string) map[Category]Match {
	matches := map[Category]Match{}
	if !containsAny(lower, genericNegativeWords) {
		return matches
	}
	for _, cat := range vocabulary {
		if containsAny(lower, categoryKeywords[cat]) {
			matches[cat] = Match{Description: SummaryFor(cat)}
			break
		}
	}
	return matches
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
