package domain

import "time"

// AnswerStats holds answer counters.
type AnswerStats struct {
	Correct int `json:"correct"`
	Wrong   int `json:"wrong"`
}

// Total returns the number of recorded answers.
func (s AnswerStats) Total() int {
	return s.Correct + s.Wrong
}

// Accuracy returns the share of correct answers in percent, 0 when empty.
func (s AnswerStats) Accuracy() float64 {
	total := s.Total()
	if total == 0 {
		return 0
	}
	return float64(s.Correct) / float64(total) * 100
}

// WrongAnswer is an entry of the wrong-answer book.
type WrongAnswer struct {
	Question    StoredQuestion `json:"question"`
	Selected    string         `json:"selectedAnswer"`
	WrongCount  int            `json:"wrongCount"`
	LastWrongAt time.Time      `json:"lastWrongAt"`
}
