package domain

import (
	"time"

	"github.com/google/uuid"
)

// OptionLabels lists the four answer labels in display order.
var OptionLabels = []string{"A", "B", "C", "D"}

// IsOptionLabel reports whether s is one of A, B, C, D.
func IsOptionLabel(s string) bool {
	switch s {
	case "A", "B", "C", "D":
		return true
	}
	return false
}

// Question is a single multiple-choice exam question.
//
// ID comes from the "第N题" header of the source text and is not unique
// across independently parsed batches; the question bank tracks which ids
// were already imported.
type Question struct {
	ID            int               `json:"id"`
	Number        string            `json:"questionNumber"`
	Text          string            `json:"questionText"`
	Options       map[string]string `json:"options"`
	CorrectAnswer string            `json:"correctAnswer"`
	Translation   string            `json:"translation"`
	KeyPoint      string            `json:"keyPoint"`
	Analysis      string            `json:"analysis"`
	CoreWords     []CoreWord        `json:"coreWords"`
}

// CoreWord is a vocabulary item singled out in a question's explanation.
type CoreWord struct {
	Word        string `json:"word"`
	Phonetic    string `json:"phonetic"`
	Explanation string `json:"explanation"`
}

// StoredQuestion is a Question persisted in the question bank.
type StoredQuestion struct {
	Question
	BatchID    uuid.UUID `json:"batchId"`
	ImportedAt time.Time `json:"importedAt"`
}

// QuestionFilter contains filtering/pagination parameters for bank listings.
type QuestionFilter struct {
	BatchID       *uuid.UUID
	OnlyFavorites bool
	OnlyWrong     bool
	Limit         int
	Offset        int
}

// OptionMapping relabels the four options of a question for display.
// OriginalToNew and NewToOriginal are inverse bijections over A..D.
type OptionMapping struct {
	OriginalToNew   map[string]string `json:"originalToNew"`
	NewToOriginal   map[string]string `json:"newToOriginal"`
	ShuffledOptions map[string]string `json:"shuffledOptions"`
	ShuffledKeys    []string          `json:"shuffledKeys"`
}
