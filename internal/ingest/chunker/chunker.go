// Package chunker splits long exam texts into pieces that fit one model call.
package chunker

import "strings"

// DefaultMaxChars is the per-call character budget used when none is configured.
const DefaultMaxChars = 12000

// Split cuts the trimmed text into chunks of at most maxChars runes.
//
// Each cut prefers the last newline inside the window, provided that newline
// lies more than halfway into the window; the newline stays with the earlier
// chunk. Otherwise the window is cut hard. Concatenating the result yields the
// trimmed input. Blank input yields no chunks; maxChars < 1 disables splitting.
func Split(text string, maxChars int) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	runes := []rune(text)
	if maxChars < 1 || len(runes) <= maxChars {
		return []string{text}
	}

	chunks := make([]string, 0, len(runes)/maxChars+1)
	start := 0
	for start < len(runes) {
		if len(runes)-start <= maxChars {
			chunks = append(chunks, string(runes[start:]))
			break
		}

		end := start + maxChars
		cut := end
		if nl := lastNewline(runes[start:end]); nl > maxChars/2 {
			cut = start + nl + 1
		}

		chunks = append(chunks, string(runes[start:cut]))
		start = cut
	}

	return chunks
}

// Count returns len(Split(text, maxChars)) without keeping the chunks around
// longer than needed.
func Count(text string, maxChars int) int {
	return len(Split(text, maxChars))
}

func lastNewline(window []rune) int {
	for i := len(window) - 1; i >= 0; i-- {
		if window[i] == '\n' {
			return i
		}
	}
	return -1
}
