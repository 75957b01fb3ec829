package rating

// Sentiment lexicon used by the model strategy's hand-crafted features.
// Tokens carrying a "_NEG" suffix come from negation-scope marking applied
// during training-data preprocessing; the runtime lexicon must keep them so
// feature counts line up with the trained weights.

var positiveWords = wordSet(
	"accessible", "advantageous", "affordable", "authentic", "awesome", "balanced",
	"beautiful", "best", "brilliant", "clean", "comfy", "comfortable", "consistent",
	"convenient", "cool", "cute", "delighted", "durable", "efficient", "enjoyable",
	"exceptional", "excellent", "fantastic", "fast", "favorite", "fit", "flawless",
	"fresh", "friendly", "genuine", "good", "grateful", "happy", "helpful", "ideal",
	"impressed", "impressive", "liked", "love", "loved", "organized", "outstanding",
	"perfect", "pleased", "premium", "professional", "prompt", "pure", "quality",
	"quick", "reasonable", "recommend", "recommended", "reliable", "responsive",
	"same", "satisfied", "seamless", "smart", "smooth", "sturdy", "tasty",
	"trustworthy", "valuable", "well", "wonderful", "worth", "worthy",
)

var negativeWords = withNegatedPositives(wordSet(
	"annoyed", "annoying", "avoid", "bitter", "broken", "bug",
	"comfy_NEG", "comfortable_NEG", "confused", "costly", "cracks", "cracked",
	"crap", "crappy", "damaged", "defective", "delayed", "deteriorated", "dirty",
	"disappointed", "disappointment", "dishonest", "disgusting", "dislike",
	"dissatisfied", "expired", "failed", "fake", "faking", "faulty", "flaw",
	"flaws", "flimsy", "fraudulent", "frustrate", "frustrating", "good_NEG",
	"greasy", "gross", "harmful", "hate", "hated", "hating", "helpful_NEG",
	"horrible", "ignored", "incompetent", "incomplete",
	"inconsistent", "inferior", "inappropriate", "lag", "lagged", "lagging",
	"leaking", "liar", "lies", "lie", "low", "malfunctioning", "misguide",
	"misguided", "mishandled", "mislead", "misleading", "moldy", "moth",
	"neglected", "overpriced", "poor", "pricey", "problem", "recommend_NEG",
	"respond_NEG", "returned", "ridiculous", "rot", "rotten", "rude", "same_NEG",
	"scam", "scammed", "shit", "shitty", "spoiled", "stinks", "stinky", "stupid",
	"suspicious", "terrible", "toxic", "slow", "uncomfortable", "uncomfy", "unhelpful",
	"unreliable", "unresponsive", "upset", "useless", "waste", "worst", "wrong",
))

var intensifiers = wordSet(
	"very", "really", "extremely", "absolutely", "totally", "completely", "lot", "lots",
	"definitelly", "much", "many", "freaking", "overwhelmingly", "especially", "quite",
	"seriously", "truly",
)

func wordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// withNegatedPositives extends the negative set with the negation-marked form
// of every positive word ("good" contributes "good_NEG").
func withNegatedPositives(negatives map[string]struct{}) map[string]struct{} {
	for w := range positiveWords {
		negatives[w+"_NEG"] = struct{}{}
	}
	return negatives
}
