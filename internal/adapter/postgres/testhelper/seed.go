package testhelper

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/willyuhot/ehexam/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// NewQuestion returns a valid question with a random id so that tests sharing
// one database do not collide.
func NewQuestion() domain.Question {
	id := rand.IntN(1<<30) + 1
	return domain.Question{
		ID:     id,
		Number: fmt.Sprintf("第%d题", id),
		Text:   "She has been waiting ___ two hours. " + uniqueSuffix(),
		Options: map[string]string{
			"A": "for", "B": "since", "C": "in", "D": "at",
		},
		CorrectAnswer: "A",
		Translation:   "她已经等了两个小时。",
		KeyPoint:      "段用for，点用since",
		Analysis:      "two hours → for → A",
		CoreWords: []domain.CoreWord{
			{Word: "wait", Phonetic: "/weɪt/", Explanation: "等待"},
		},
	}
}

// SeedQuestion inserts a new question under a fresh batch id.
func SeedQuestion(t *testing.T, pool *pgxpool.Pool) domain.Question {
	t.Helper()

	q := NewQuestion()
	options, _ := json.Marshal(q.Options)
	coreWords, _ := json.Marshal(q.CoreWords)

	_, err := pool.Exec(context.Background(),
		`INSERT INTO questions (id, number, text, options, correct_answer, translation, key_point, analysis, core_words, batch_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		q.ID, q.Number, q.Text, options, q.CorrectAnswer, q.Translation, q.KeyPoint, q.Analysis, coreWords, uuid.New(),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedQuestion insert: %v", err)
	}
	return q
}

// NewWord returns a parsed vocabulary word with a unique spelling.
func NewWord() domain.ParsedWord {
	word := "abandon" + uniqueSuffix()
	return domain.ParsedWord{
		ID:               "0_" + word + "_0",
		Word:             word,
		Phonetic:         "/əˈbændən/",
		MeaningWithRoot:  "v. 放弃（a- + bandon）",
		OriginalSentence: "They had to abandon the plan.",
		Translation:      "他们不得不放弃这个计划。",
		MemoryTips:       "a + band + on",
	}
}

// SeedWord inserts a new vocabulary word.
func SeedWord(t *testing.T, pool *pgxpool.Pool) domain.ParsedWord {
	t.Helper()

	w := NewWord()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO vocabulary_words (id, word, word_normalized, phonetic, meaning_with_root, original_sentence, translation, memory_tips)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		w.ID, w.Word, domain.NormalizeText(w.Word), w.Phonetic, w.MeaningWithRoot, w.OriginalSentence, w.Translation, w.MemoryTips,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedWord insert: %v", err)
	}
	return w
}
