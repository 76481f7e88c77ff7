package vocabulary

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/willyuhot/ehexam/internal/domain"
	"github.com/willyuhot/ehexam/internal/ingest/prompt"
	"github.com/willyuhot/ehexam/internal/ingest/vocabmerge"
)

// Extract asks the model for the in-scope vocabulary of text, chunk by chunk,
// and merges the replies by normalized word.
func (s *Service) Extract(ctx context.Context, text string, onProgress ProgressFunc) ([]domain.ParsedWord, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.NewValidationError("text", "required")
	}

	merger := vocabmerge.Merger{
		Extract: func(ctx context.Context, chunk string) (string, error) {
			return s.llm.Complete(ctx, prompt.Vocabulary(chunk).Request())
		},
		MaxChars: s.cfg.ChunkMaxChars,
	}

	words, err := merger.Merge(ctx, text, vocabmerge.ProgressFunc(onProgress))
	if err != nil {
		s.log.ErrorContext(ctx, "vocabulary extraction failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("extract vocabulary: %w", err)
	}

	s.log.InfoContext(ctx, "vocabulary extracted", slog.Int("words", len(words)))

	if words == nil {
		words = []domain.ParsedWord{}
	}
	return words, nil
}

// Import extracts the vocabulary of text and adds the words that are not yet
// in the book.
func (s *Service) Import(ctx context.Context, text string, onProgress ProgressFunc) (ImportResult, error) {
	words, err := s.Extract(ctx, text, onProgress)
	if err != nil {
		return ImportResult{}, err
	}
	return s.Save(ctx, words)
}

// Save adds words to the book, skipping those whose normalized form is
// already stored. Missing transcriptions are looked up first when enabled;
// a failed lookup leaves the word as is.
func (s *Service) Save(ctx context.Context, words []domain.ParsedWord) (ImportResult, error) {
	result := ImportResult{Extracted: len(words), Words: []domain.ParsedWord{}}
	if len(words) == 0 {
		return result, nil
	}

	existing, err := s.words.NormalizedWords(ctx)
	if err != nil {
		return ImportResult{}, fmt.Errorf("load stored words: %w", err)
	}
	if existing == nil {
		existing = make(map[string]struct{})
	}

	fresh := vocabmerge.Dedup(words, existing)
	s.fillPhonetics(ctx, fresh)

	added, err := s.words.BulkInsert(ctx, fresh)
	if err != nil {
		return ImportResult{}, fmt.Errorf("insert words: %w", err)
	}

	result.Added = added
	result.Skipped = len(words) - added
	if fresh != nil {
		result.Words = fresh
	}

	s.log.InfoContext(ctx, "vocabulary imported",
		slog.Int("added", result.Added),
		slog.Int("skipped", result.Skipped),
	)
	return result, nil
}

func (s *Service) fillPhonetics(ctx context.Context, words []domain.ParsedWord) {
	if !s.cfg.FillPhonetics || s.phonetics == nil {
		return
	}
	for i := range words {
		if words[i].Phonetic != "" {
			continue
		}
		phonetic, err := s.phonetics.Phonetic(ctx, words[i].Word)
		if err != nil {
			s.log.WarnContext(ctx, "phonetic lookup failed",
				slog.String("word", words[i].Word),
				slog.String("error", err.Error()),
			)
			continue
		}
		words[i].Phonetic = phonetic
	}
}
