package exam

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/willyuhot/ehexam/internal/domain"
	"github.com/willyuhot/ehexam/internal/ingest/questionparser"
)

// exportPageSize matches the largest page the question repository serves.
const exportPageSize = 500

// List returns a page of the question bank.
func (s *Service) List(ctx context.Context, input ListInput) (ListResult, error) {
	if err := input.Validate(); err != nil {
		return ListResult{}, err
	}

	filter := input.filter()

	questions, err := s.questions.List(ctx, filter)
	if err != nil {
		return ListResult{}, fmt.Errorf("list questions: %w", err)
	}

	total, err := s.questions.Count(ctx, filter)
	if err != nil {
		return ListResult{}, fmt.Errorf("count questions: %w", err)
	}

	return ListResult{Questions: questions, Total: total}, nil
}

// Get returns a stored question by id.
func (s *Service) Get(ctx context.Context, id int) (domain.StoredQuestion, error) {
	q, err := s.questions.GetByID(ctx, id)
	if err != nil {
		return domain.StoredQuestion{}, fmt.Errorf("get question: %w", err)
	}
	return q, nil
}

// Export renders the matching questions of the bank in the question format,
// up to the configured maximum. Pagination fields of input are ignored.
func (s *Service) Export(ctx context.Context, input ListInput) (string, error) {
	if err := input.Validate(); err != nil {
		return "", err
	}

	limit := s.cfg.ExportMaxQuestions
	filter := input.filter()

	var questions []domain.Question
	for offset := 0; offset < limit; offset += exportPageSize {
		filter.Offset = offset
		filter.Limit = min(exportPageSize, limit-offset)

		page, err := s.questions.List(ctx, filter)
		if err != nil {
			return "", fmt.Errorf("list questions for export: %w", err)
		}
		for _, q := range page {
			questions = append(questions, q.Question)
		}
		if len(page) < filter.Limit {
			break
		}
	}

	s.log.InfoContext(ctx, "questions exported", slog.Int("count", len(questions)))

	return questionparser.FormatAll(questions), nil
}
