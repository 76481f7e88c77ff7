package vocabmerge

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/willyuhot/ehexam/internal/domain"
)

// StripFences removes a triple-backtick fence (with an optional language tag)
// around a model reply and trims the result. Text before the opening fence is
// dropped as well.
func StripFences(raw string) string {
	s := strings.TrimSpace(raw)

	open := strings.Index(s, "```")
	if open == -1 {
		return s
	}

	body := s[open+3:]
	if nl := strings.IndexByte(body, '\n'); nl != -1 {
		body = body[nl+1:]
	} else {
		body = strings.TrimPrefix(body, "json")
	}

	if end := strings.Index(body, "```"); end != -1 {
		body = body[:end]
	}
	return strings.TrimSpace(body)
}

// Decode parses an extraction reply into words. The reply must be a JSON
// array after fence stripping; anything else is ErrDecodeFailure. Items
// without a word are skipped, "meaning" is accepted for "meaningWithRoot",
// and missing or non-string optional fields become "".
//
// IDs are "<chunkIndex>_<word>_<ordinal>" where ordinal is the item's
// position in the array.
func Decode(raw string, chunkIndex int) ([]domain.ParsedWord, error) {
	body := StripFences(raw)
	if !gjson.Valid(body) {
		body = bracketed(body)
	}
	if !gjson.Valid(body) {
		return nil, fmt.Errorf("vocabulary reply is not valid JSON: %w", domain.ErrDecodeFailure)
	}

	arr := gjson.Parse(body)
	if !arr.IsArray() {
		return nil, fmt.Errorf("vocabulary reply is not a JSON array: %w", domain.ErrDecodeFailure)
	}

	var words []domain.ParsedWord
	ordinal := 0
	arr.ForEach(func(_, item gjson.Result) bool {
		i := ordinal
		ordinal++

		if !item.IsObject() {
			return true
		}
		word := strings.TrimSpace(str(item, "word"))
		if word == "" {
			return true
		}

		meaning := str(item, "meaningWithRoot")
		if meaning == "" {
			meaning = str(item, "meaning")
		}

		words = append(words, domain.ParsedWord{
			ID:               fmt.Sprintf("%d_%s_%d", chunkIndex, word, i),
			Word:             word,
			Phonetic:         str(item, "phonetic"),
			MeaningWithRoot:  meaning,
			OriginalSentence: str(item, "originalSentence"),
			Translation:      str(item, "translation"),
			MemoryTips:       str(item, "memoryTips"),
		})
		return true
	})

	return words, nil
}

func str(item gjson.Result, key string) string {
	v := item.Get(key)
	if v.Type != gjson.String {
		return ""
	}
	return v.Str
}

// bracketed returns the text between the first '[' and the last ']', or s
// unchanged when there is no such span.
func bracketed(s string) string {
	start := strings.IndexByte(s, '[')
	end := strings.LastIndexByte(s, ']')
	if start == -1 || end <= start {
		return s
	}
	return s[start : end+1]
}
