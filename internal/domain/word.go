package domain

import "time"

// ParsedWord is a vocabulary item extracted from an exam text.
//
// ID is unique within one extraction batch ("<chunk>_<word>_<ordinal>");
// storage deduplicates by normalized word, not by ID.
type ParsedWord struct {
	ID               string `json:"id"`
	Word             string `json:"word"`
	Phonetic         string `json:"phonetic"`
	MeaningWithRoot  string `json:"meaningWithRoot"`
	OriginalSentence string `json:"originalSentence"`
	Translation      string `json:"translation"`
	MemoryTips       string `json:"memoryTips"`
}

// StoredWord is a ParsedWord persisted in the vocabulary book.
type StoredWord struct {
	ParsedWord
	WordNormalized string    `json:"-"`
	CreatedAt      time.Time `json:"createdAt"`
}

// WordFilter contains filtering/pagination parameters for vocabulary listings.
type WordFilter struct {
	Search *string
	Limit  int
	Offset int
}
