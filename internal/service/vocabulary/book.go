package vocabulary

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/willyuhot/ehexam/internal/domain"
)

// List returns a page of the vocabulary book, newest first.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.StoredWord, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	filter := domain.WordFilter{Limit: input.Limit, Offset: input.Offset}
	if search := strings.TrimSpace(input.Search); search != "" {
		filter.Search = &search
	}

	words, err := s.words.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}
	return words, nil
}

// Delete removes a word from the book.
func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.NewValidationError("id", "required")
	}

	if err := s.words.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete word: %w", err)
	}

	s.log.InfoContext(ctx, "word deleted", slog.String("word_id", id))
	return nil
}
