package domain

import "strings"

// NormalizeText returns the identity key of a vocabulary word: trimmed,
// lowercased, with inner whitespace runs collapsed to a single space.
// Hyphens, apostrophes and diacritics are kept.
func NormalizeText(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}
