package practice

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/willyuhot/ehexam/internal/domain"
	"github.com/willyuhot/ehexam/internal/ingest/optionmap"
)

// Present loads a question and relabels its options, shuffled or not per
// configuration.
func (s *Service) Present(ctx context.Context, id int) (Presentation, error) {
	q, err := s.questions.GetByID(ctx, id)
	if err != nil {
		return Presentation{}, fmt.Errorf("get question: %w", err)
	}

	favorite, err := s.progress.IsFavorite(ctx, id)
	if err != nil {
		return Presentation{}, fmt.Errorf("check favorite: %w", err)
	}

	stats, err := s.progress.QuestionStats(ctx, id)
	if err != nil {
		return Presentation{}, fmt.Errorf("question stats: %w", err)
	}

	mapping := optionmap.For(q.Question, s.cfg.ShuffleOptions, nil)

	return Presentation{
		QuestionID: q.ID,
		Number:     q.Number,
		Text:       q.Text,
		Options:    mapping.ShuffledOptions,
		Keys:       mapping.ShuffledKeys,
		Mapping:    mapping,
		Favorite:   favorite,
		Stats:      stats,
	}, nil
}

// Answer checks a displayed label against the stored answer. The label is
// mapped back through the mapping the question was shown with. The answer is
// recorded in the statistics once, and a wrong answer is added to the
// wrong-answer book.
func (s *Service) Answer(ctx context.Context, input AnswerInput) (AnswerResult, error) {
	selected := strings.ToUpper(strings.TrimSpace(input.Selected))
	if !domain.IsOptionLabel(selected) {
		return AnswerResult{}, domain.NewValidationError("selected", "must be one of A, B, C, D")
	}

	mapping := input.Mapping
	if len(mapping.NewToOriginal) == 0 && len(mapping.OriginalToNew) == 0 {
		mapping = optionmap.Identity(nil)
	}
	if !optionmap.Valid(mapping) {
		return AnswerResult{}, domain.NewValidationError("mapping", "not a relabeling of A, B, C, D")
	}

	q, err := s.questions.GetByID(ctx, input.QuestionID)
	if err != nil {
		return AnswerResult{}, fmt.Errorf("get question: %w", err)
	}

	original, _ := optionmap.ToOriginal(mapping, selected)
	correctDisplayed, _ := optionmap.ToDisplayed(mapping, q.CorrectAnswer)
	correct := original == q.CorrectAnswer

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.progress.RecordAnswer(txCtx, q.ID, correct); err != nil {
			return fmt.Errorf("record answer: %w", err)
		}
		if !correct {
			if err := s.progress.AddWrongAnswer(txCtx, q.ID, original); err != nil {
				return fmt.Errorf("add wrong answer: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return AnswerResult{}, err
	}

	s.log.DebugContext(ctx, "answer recorded",
		slog.Int("question_id", q.ID),
		slog.Bool("correct", correct),
	)

	return AnswerResult{
		Correct:          correct,
		Selected:         selected,
		SelectedOriginal: original,
		CorrectAnswer:    q.CorrectAnswer,
		CorrectDisplayed: correctDisplayed,
		Translation:      q.Translation,
		KeyPoint:         q.KeyPoint,
		Analysis:         q.Analysis,
		CoreWords:        q.CoreWords,
	}, nil
}
