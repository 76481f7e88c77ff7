package exam

import (
	"github.com/google/uuid"

	"github.com/willyuhot/ehexam/internal/domain"
	"github.com/willyuhot/ehexam/internal/ingest/questionparser"
)

// ProgressFunc is called after each chunk is processed. done is 1-based.
type ProgressFunc func(done, total int)

// ParseResult holds the validated questions of a text and the blocks that
// were dropped.
type ParseResult struct {
	Questions []domain.Question          `json:"questions"`
	Rejected  []questionparser.Rejection `json:"rejected"`
	Chunks    int                        `json:"chunks"`
}

// ImportResult is the outcome of saving a ParseResult into the bank.
type ImportResult struct {
	BatchID   uuid.UUID                  `json:"batchId"`
	Chunks    int                        `json:"chunks"`
	Questions int                        `json:"questions"`
	Inserted  int                        `json:"inserted"`
	Skipped   int                        `json:"skipped"`
	Rejected  []questionparser.Rejection `json:"rejected"`
}

// ListInput holds bank listing parameters.
type ListInput struct {
	BatchID       *uuid.UUID
	OnlyFavorites bool
	OnlyWrong     bool
	Limit         int
	Offset        int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Limit > 500 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "max 500"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i ListInput) filter() domain.QuestionFilter {
	return domain.QuestionFilter{
		BatchID:       i.BatchID,
		OnlyFavorites: i.OnlyFavorites,
		OnlyWrong:     i.OnlyWrong,
		Limit:         i.Limit,
		Offset:        i.Offset,
	}
}

// ListResult is a page of the bank plus the total match count.
type ListResult struct {
	Questions []domain.StoredQuestion `json:"questions"`
	Total     int                     `json:"total"`
}
