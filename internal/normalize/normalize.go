// Package normalize prepares raw scraped review text for feature extraction.
package normalize

import (
	"regexp"
	"strings"
)

var (
	markupPattern  = regexp.MustCompile(`<.*?>`)
	nonWordPattern = regexp.MustCompile(`[\W_]+`)
)

// Clean strips markup tags, collapses every run of non-word characters to a
// single space, and lowercases the result. Clean is total and idempotent:
// cleaning already-cleaned text returns it unchanged.
func Clean(text string) string {
	text = markupPattern.ReplaceAllString(text, "")
	text = nonWordPattern.ReplaceAllString(text, " ")
	return strings.ToLower(text)
}

// CleanAny coerces arbitrary scraper output to cleaned text. Scrapers
// occasionally emit nil or non-string entries; those become "".
func CleanAny(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return Clean(s)
}

// Words splits cleaned text into tokens. Cleaned text separates tokens with
// single spaces, so this is a plain whitespace split.
func Words(cleaned string) []string {
	return strings.Fields(cleaned)
}
