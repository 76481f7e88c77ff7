package translate

import (
	"net/url"
	"strings"
)

// literalEscapes are percent sequences some services leave in their output,
// including the broken "% 20" form.
var literalEscapes = strings.NewReplacer(
	"% 20", " ",
	"%20", " ",
	"%2C", ",",
	"%2E", ".",
	"%3F", "?",
	"%21", "!",
)

// DecodeURLEncoding undoes up to three levels of percent-encoding, then
// replaces the common escapes that survive an invalid sequence elsewhere in
// the text.
func DecodeURLEncoding(text string) string {
	decoded := text
	for range 3 {
		next, err := url.PathUnescape(decoded)
		if err != nil || next == decoded {
			break
		}
		decoded = next
	}
	return literalEscapes.Replace(decoded)
}

// IsEnglishText reports whether text reads as English: ASCII letters
// outnumber CJK characters more than two to one and there are fewer than
// three CJK characters.
func IsEnglishText(text string) bool {
	var letters, cjk int
	for _, r := range text {
		switch {
		case r < 0x80 && (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'):
			letters++
		case isCJK(r):
			cjk++
		}
	}
	return letters > cjk*2 && cjk < 3
}

func isCJK(r rune) bool {
	switch {
	case r >= 0x4E00 && r <= 0x9FFF, // unified ideographs
		r >= 0x3400 && r <= 0x4DBF, // extension A
		r >= 0x20000 && r <= 0x2A6DF, // extension B
		r >= 0x3040 && r <= 0x309F, // hiragana
		r >= 0x30A0 && r <= 0x30FF, // katakana
		r >= 0xAC00 && r <= 0xD7AF: // hangul
		return true
	}
	return false
}
