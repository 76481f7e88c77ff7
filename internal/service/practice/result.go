package practice

import "github.com/willyuhot/ehexam/internal/domain"

// Presentation is a question prepared for answering. Options are keyed by
// the displayed label; the correct answer is withheld.
type Presentation struct {
	QuestionID int                  `json:"questionId"`
	Number     string               `json:"questionNumber"`
	Text       string               `json:"questionText"`
	Options    map[string]string    `json:"options"`
	Keys       []string             `json:"keys"`
	Mapping    domain.OptionMapping `json:"mapping"`
	Favorite   bool                 `json:"favorite"`
	Stats      domain.AnswerStats   `json:"stats"`
}

// AnswerInput is an answer given under a displayed mapping. A zero Mapping
// means the options were shown under their stored labels.
type AnswerInput struct {
	QuestionID int                  `json:"questionId"`
	Selected   string               `json:"selected"`
	Mapping    domain.OptionMapping `json:"mapping"`
}

// AnswerResult reports whether the answer was right, in both label spaces,
// together with the explanation of the question.
type AnswerResult struct {
	Correct          bool              `json:"correct"`
	Selected         string            `json:"selected"`
	SelectedOriginal string            `json:"selectedOriginal"`
	CorrectAnswer    string            `json:"correctAnswer"`
	CorrectDisplayed string            `json:"correctDisplayed"`
	Translation      string            `json:"translation"`
	KeyPoint         string            `json:"keyPoint"`
	Analysis         string            `json:"analysis"`
	CoreWords        []domain.CoreWord `json:"coreWords"`
}

// StatsResult is the answer statistics summary.
type StatsResult struct {
	Correct  int     `json:"correct"`
	Wrong    int     `json:"wrong"`
	Total    int     `json:"total"`
	Accuracy float64 `json:"accuracy"`
}
