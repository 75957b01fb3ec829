package util

import (
	"errors"
	"strings"
)

// ErrInvalidKeyPart indicates a key segment that cannot be stored safely.
var ErrInvalidKeyPart = errors.New("invalid key part")

// SanitizeKeyPart validates one segment of a document or storage key
// (retailer, product ID). Separators and traversal patterns are rejected so
// composed keys stay unambiguous.
func SanitizeKeyPart(part string) (string, error) {
	if strings.Contains(part, "..") {
		return "", ErrInvalidKeyPart
	}
	s := strings.TrimSpace(part)
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	if s == "" {
		return "", ErrInvalidKeyPart
	}
	return s, nil
}
