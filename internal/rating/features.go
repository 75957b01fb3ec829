package rating

import (
	"strings"
	"unicode"
)

// lexiconFeatures counts positive words, negative words, intensifiers, and
// their difference for one cleaned text. The four values are appended to the
// term vector in this exact order; the trained weights depend on it.
func lexiconFeatures(cleaned string) []float64 {
	var pos, neg, intens int
	for _, w := range strings.Fields(cleaned) {
		if _, ok := positiveWords[w]; ok {
			pos++
		}
		if _, ok := negativeWords[w]; ok {
			neg++
		}
		if _, ok := intensifiers[w]; ok {
			intens++
		}
	}
	return []float64{float64(pos), float64(neg), float64(intens), float64(pos - neg)}
}

// metaFeatures captures shape signals: text length, average word length,
// sentence-punctuation count, and all-caps token count. Operates on the raw
// text; punctuation and casing do not survive cleaning.
func metaFeatures(raw string) []float64 {
	words := strings.Fields(raw)

	var avgWordLen float64
	if len(words) > 0 {
		total := 0
		for _, w := range words {
			total += len(w)
		}
		avgWordLen = float64(total) / float64(len(words))
	}

	punct := 0
	for _, r := range raw {
		switch r {
		case '.', ',', '!', '?':
			punct++
		}
	}

	upper := 0
	for _, w := range words {
		if isAllUpper(w) {
			upper++
		}
	}

	return []float64{float64(len(raw)), avgWordLen, float64(punct), float64(upper)}
}

// isAllUpper reports whether the token contains at least one letter and no
// lowercase letters, mirroring Python's str.isupper.
func isAllUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}
