package exam

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/willyuhot/ehexam/internal/domain"
	"github.com/willyuhot/ehexam/internal/ingest/chunker"
	"github.com/willyuhot/ehexam/internal/ingest/prompt"
	"github.com/willyuhot/ehexam/internal/ingest/questionparser"
)

// ParseText parses text that is already in the question format, without a
// model call, and validates the result.
func (s *Service) ParseText(ctx context.Context, text string) (ParseResult, error) {
	if err := requireText(text); err != nil {
		return ParseResult{}, err
	}

	report := questionparser.ParseReport(text)
	result := s.validate(report.Questions, report.Rejected, 1)

	s.log.InfoContext(ctx, "exam text parsed",
		slog.Int("questions", len(result.Questions)),
		slog.Int("rejected", len(result.Rejected)),
	)
	return result, nil
}

// Extract splits a raw exam text into chunks and asks the model to rewrite
// each one in the question format. Chunks are processed one at a time in
// order; the first failing chunk aborts the extraction and no partial result
// is returned.
func (s *Service) Extract(ctx context.Context, text string, onProgress ProgressFunc) (ParseResult, error) {
	if err := requireText(text); err != nil {
		return ParseResult{}, err
	}

	chunks := chunker.Split(text, s.cfg.ChunkMaxChars)
	total := len(chunks)

	var (
		parsed   []domain.Question
		rejected []questionparser.Rejection
	)

	for i, chunk := range chunks {
		if err := ctx.Err(); err != nil {
			return ParseResult{}, err
		}

		reply, err := s.llm.Complete(ctx, prompt.ExamExtraction(chunk).Request())
		if err != nil {
			s.log.ErrorContext(ctx, "exam extraction failed",
				slog.Int("chunk", i+1),
				slog.Int("total", total),
				slog.String("error", err.Error()),
			)
			return ParseResult{}, fmt.Errorf("extract chunk %d/%d: %w", i+1, total, err)
		}

		report := questionparser.ParseReport(reply)
		parsed = append(parsed, report.Questions...)
		rejected = append(rejected, report.Rejected...)

		s.log.DebugContext(ctx, "exam chunk extracted",
			slog.Int("chunk", i+1),
			slog.Int("total", total),
			slog.Int("questions", len(report.Questions)),
		)

		if onProgress != nil {
			onProgress(i+1, total)
		}
	}

	result := s.validate(parsed, rejected, total)

	s.log.InfoContext(ctx, "exam text extracted",
		slog.Int("chunks", total),
		slog.Int("questions", len(result.Questions)),
		slog.Int("rejected", len(result.Rejected)),
	)
	return result, nil
}

// validate drops questions that fail the validator and reports them after the
// blocks the parser already rejected.
func (s *Service) validate(parsed []domain.Question, rejected []questionparser.Rejection, chunks int) ParseResult {
	valid, invalid := questionparser.ValidateReport(s.log, parsed)
	all := make([]questionparser.Rejection, 0, len(rejected)+len(invalid))
	all = append(all, rejected...)
	all = append(all, invalid...)
	return ParseResult{
		Questions: valid,
		Rejected:  all,
		Chunks:    chunks,
	}
}

// Import extracts text and saves the questions into the bank.
func (s *Service) Import(ctx context.Context, text string, onProgress ProgressFunc) (ImportResult, error) {
	parsed, err := s.Extract(ctx, text, onProgress)
	if err != nil {
		return ImportResult{}, err
	}
	return s.Save(ctx, parsed)
}

// Save stores the questions of parsed in one transaction. Questions whose id
// is already in the bank, or repeats an earlier id of the same batch, are
// counted as skipped.
func (s *Service) Save(ctx context.Context, parsed ParseResult) (ImportResult, error) {
	result := ImportResult{
		BatchID:   uuid.New(),
		Chunks:    parsed.Chunks,
		Questions: len(parsed.Questions),
		Rejected:  parsed.Rejected,
	}
	if result.Rejected == nil {
		result.Rejected = []questionparser.Rejection{}
	}
	if len(parsed.Questions) == 0 {
		return result, nil
	}

	ids := make([]int, 0, len(parsed.Questions))
	for _, q := range parsed.Questions {
		ids = append(ids, q.ID)
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		imported, err := s.questions.ImportedIDs(txCtx, ids)
		if err != nil {
			return fmt.Errorf("load imported ids: %w", err)
		}

		fresh := make([]domain.Question, 0, len(parsed.Questions))
		seen := make(map[int]struct{}, len(parsed.Questions))
		for _, q := range parsed.Questions {
			if _, ok := imported[q.ID]; ok {
				continue
			}
			if _, ok := seen[q.ID]; ok {
				continue
			}
			seen[q.ID] = struct{}{}
			fresh = append(fresh, q)
		}

		inserted, err := s.questions.BulkInsert(txCtx, result.BatchID, fresh)
		if err != nil {
			return fmt.Errorf("insert questions: %w", err)
		}
		result.Inserted = inserted
		return nil
	})
	if err != nil {
		return ImportResult{}, err
	}

	result.Skipped = result.Questions - result.Inserted

	s.log.InfoContext(ctx, "questions imported",
		slog.String("batch_id", result.BatchID.String()),
		slog.Int("inserted", result.Inserted),
		slog.Int("skipped", result.Skipped),
	)
	return result, nil
}
