package exam

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/willyuhot/ehexam/internal/domain"
	"github.com/willyuhot/ehexam/internal/ingest/prompt"
)

// Enrich asks the model for a translation and solving explanation of a stored
// question. The reply is returned as is and not persisted.
func (s *Service) Enrich(ctx context.Context, id int) (string, error) {
	q, err := s.questions.GetByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("get question: %w", err)
	}

	reply, err := s.llm.Complete(ctx, prompt.Enrichment(q.Question).Request())
	if err != nil {
		s.log.ErrorContext(ctx, "question enrichment failed",
			slog.Int("question_id", id),
			slog.String("error", err.Error()),
		)
		return "", fmt.Errorf("enrich question %d: %w", id, err)
	}

	reply = strings.TrimSpace(reply)
	if reply == "" {
		return "", fmt.Errorf("enrich question %d: %w", id, domain.ErrMalformedResponse)
	}
	return reply, nil
}

// AnalyzeWord asks the model for a root and affix breakdown of word, using
// the optional sentence it appeared in.
func (s *Service) AnalyzeWord(ctx context.Context, word, sentence string) (string, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return "", domain.NewValidationError("word", "required")
	}
	if len(word) > 100 {
		return "", domain.NewValidationError("word", "max 100 characters")
	}

	reply, err := s.llm.Complete(ctx, prompt.WordAnalysis(word, sentence).Request())
	if err != nil {
		return "", fmt.Errorf("analyze word %q: %w", word, err)
	}

	reply = strings.TrimSpace(reply)
	if reply == "" {
		return "", fmt.Errorf("analyze word %q: %w", word, domain.ErrMalformedResponse)
	}
	return reply, nil
}
