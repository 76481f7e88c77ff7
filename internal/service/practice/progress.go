package practice

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/willyuhot/ehexam/internal/domain"
)

// ToggleFavorite marks or unmarks a question as favorite.
func (s *Service) ToggleFavorite(ctx context.Context, id int, favorite bool) error {
	var err error
	if favorite {
		err = s.progress.AddFavorite(ctx, id)
	} else {
		err = s.progress.RemoveFavorite(ctx, id)
	}
	if err != nil {
		return fmt.Errorf("toggle favorite: %w", err)
	}

	s.log.InfoContext(ctx, "favorite toggled",
		slog.Int("question_id", id),
		slog.Bool("favorite", favorite),
	)
	return nil
}

// Favorites lists favorite questions ordered by id.
func (s *Service) Favorites(ctx context.Context, limit, offset int) ([]domain.StoredQuestion, error) {
	var errs []domain.FieldError
	if limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}
	questions, err := s.questions.List(ctx, domain.QuestionFilter{
		OnlyFavorites: true,
		Limit:         limit,
		Offset:        offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return questions, nil
}

// WrongAnswers lists the wrong-answer book.
func (s *Service) WrongAnswers(ctx context.Context) ([]domain.WrongAnswer, error) {
	entries, err := s.progress.WrongAnswers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list wrong answers: %w", err)
	}
	return entries, nil
}

// RemoveWrongAnswer drops a question from the wrong-answer book.
func (s *Service) RemoveWrongAnswer(ctx context.Context, id int) error {
	if err := s.progress.RemoveWrongAnswer(ctx, id); err != nil {
		return fmt.Errorf("remove wrong answer: %w", err)
	}
	return nil
}

// Stats returns the overall answer statistics.
func (s *Service) Stats(ctx context.Context) (StatsResult, error) {
	stats, err := s.progress.Stats(ctx)
	if err != nil {
		return StatsResult{}, fmt.Errorf("load stats: %w", err)
	}
	return StatsResult{
		Correct:  stats.Correct,
		Wrong:    stats.Wrong,
		Total:    stats.Total(),
		Accuracy: stats.Accuracy(),
	}, nil
}

// ResetStats clears all answer counters. Favorites and the wrong-answer book
// are kept.
func (s *Service) ResetStats(ctx context.Context) error {
	if err := s.progress.ResetStats(ctx); err != nil {
		return fmt.Errorf("reset stats: %w", err)
	}
	s.log.InfoContext(ctx, "answer stats reset")
	return nil
}
