package questionparser

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/willyuhot/ehexam/internal/domain"
)

// Check reports why q is not a structurally valid question, or nil.
// It collects all field errors.
func Check(q domain.Question) error {
	var errs []domain.FieldError

	if strings.TrimSpace(q.Text) == "" {
		errs = append(errs, domain.FieldError{Field: "questionText", Message: "required"})
	}
	if len(q.Options) != len(domain.OptionLabels) {
		errs = append(errs, domain.FieldError{
			Field:   "options",
			Message: fmt.Sprintf("want %d options, got %d", len(domain.OptionLabels), len(q.Options)),
		})
	}
	switch {
	case q.CorrectAnswer == "":
		errs = append(errs, domain.FieldError{Field: "correctAnswer", Message: "required"})
	case !domain.IsOptionLabel(q.CorrectAnswer):
		errs = append(errs, domain.FieldError{Field: "correctAnswer", Message: "must be one of A, B, C, D"})
	default:
		if _, ok := q.Options[q.CorrectAnswer]; !ok {
			errs = append(errs, domain.FieldError{Field: "correctAnswer", Message: "not among options"})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Validate returns the questions that pass Check, in order. Rejected
// questions are logged and skipped; Validate never fails.
func Validate(log *slog.Logger, questions []domain.Question) []domain.Question {
	valid, _ := ValidateReport(log, questions)
	return valid
}

// ValidateReport is Validate that also returns a Rejection for every
// question that failed Check, in input order.
func ValidateReport(log *slog.Logger, questions []domain.Question) ([]domain.Question, []Rejection) {
	valid := make([]domain.Question, 0, len(questions))
	rejected := []Rejection{}
	for _, q := range questions {
		if err := Check(q); err != nil {
			log.Warn("question rejected",
				slog.Int("id", q.ID),
				slog.String("question_number", q.Number),
				slog.String("error", err.Error()),
			)
			rejected = append(rejected, Rejection{ID: q.ID, Number: q.Number, Reason: rejectionReason(err)})
			continue
		}
		valid = append(valid, q)
	}
	return valid, rejected
}

// rejectionReason lists every field error of err as "field: message".
func rejectionReason(err error) string {
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		return err.Error()
	}
	parts := make([]string, 0, len(verr.Errors))
	for _, fe := range verr.Errors {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return strings.Join(parts, "; ")
}
