// Package vocabulary extracts exam vocabulary with the language model and
// manages the vocabulary book.
package vocabulary

import (
	"context"
	"log/slog"

	"github.com/willyuhot/ehexam/internal/domain"
	"github.com/willyuhot/ehexam/internal/provider"
)

type wordRepo interface {
	BulkInsert(ctx context.Context, words []domain.ParsedWord) (int, error)
	NormalizedWords(ctx context.Context) (map[string]struct{}, error)
	List(ctx context.Context, filter domain.WordFilter) ([]domain.StoredWord, error)
	Delete(ctx context.Context, id string) error
}

type phoneticLookup interface {
	Phonetic(ctx context.Context, word string) (string, error)
}

// Config holds the ingest settings the service needs.
type Config struct {
	ChunkMaxChars int
	FillPhonetics bool
}

// Service provides vocabulary extraction and vocabulary book operations.
type Service struct {
	words     wordRepo
	phonetics phoneticLookup
	llm       provider.Completer
	cfg       Config
	log       *slog.Logger
}

// NewService creates a new Vocabulary service. phonetics may be nil when
// missing transcriptions should stay empty.
func NewService(
	log *slog.Logger,
	cfg Config,
	words wordRepo,
	phonetics phoneticLookup,
	llm provider.Completer,
) *Service {
	return &Service{
		words:     words,
		phonetics: phonetics,
		llm:       llm,
		cfg:       cfg,
		log:       log.With("service", "vocabulary"),
	}
}

// ProgressFunc is called after each chunk is processed. done is 1-based.
type ProgressFunc func(done, total int)

// ImportResult is the outcome of adding extracted words to the book.
type ImportResult struct {
	Extracted int                 `json:"extracted"`
	Added     int                 `json:"added"`
	Skipped   int                 `json:"skipped"`
	Words     []domain.ParsedWord `json:"words"`
}

// ListInput holds vocabulary listing parameters.
type ListInput struct {
	Search string
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Limit > 1000 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "max 1000"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if len(i.Search) > 100 {
		errs = append(errs, domain.FieldError{Field: "search", Message: "max 100 characters"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
