package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/willyuhot/ehexam/internal/domain"
	"github.com/willyuhot/ehexam/internal/service/exam"
	"github.com/willyuhot/ehexam/internal/service/translation"
)

//go:generate moq -out bank_service_mock_test.go -pkg rest . bankService
//go:generate moq -out translation_service_mock_test.go -pkg rest . translationService

type bankService interface {
	List(ctx context.Context, input exam.ListInput) (exam.ListResult, error)
	Get(ctx context.Context, id int) (domain.StoredQuestion, error)
	Export(ctx context.Context, input exam.ListInput) (string, error)
	Enrich(ctx context.Context, id int) (string, error)
	AnalyzeWord(ctx context.Context, word, sentence string) (string, error)
}

type translationService interface {
	Translate(ctx context.Context, id int) (translation.QuestionTranslation, error)
}

const defaultPageSize = 50

// QuestionHandler serves question bank endpoints.
type QuestionHandler struct {
	bank       bankService
	translator translationService
	log        *slog.Logger
}

// NewQuestionHandler creates a QuestionHandler.
func NewQuestionHandler(bank bankService, translator translationService, logger *slog.Logger) *QuestionHandler {
	return &QuestionHandler{
		bank:       bank,
		translator: translator,
		log:        logger.With("handler", "question"),
	}
}

type enrichResponse struct {
	QuestionID  int    `json:"questionId"`
	Explanation string `json:"explanation"`
}

type analyzeRequest struct {
	Word     string `json:"word"`
	Sentence string `json:"sentence"`
}

type analyzeResponse struct {
	Word     string `json:"word"`
	Analysis string `json:"analysis"`
}

// List handles GET /api/questions?limit=&offset=&batch=&favorites=&wrong=.
func (h *QuestionHandler) List(w http.ResponseWriter, r *http.Request) {
	input, err := parseListInput(r, defaultPageSize)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	result, err := h.bank.List(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Get handles GET /api/questions/{id}.
func (h *QuestionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	q, err := h.bank.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, q)
}

// Export handles GET /api/questions/export. The bank is rendered in the
// formatted question layout as a plain text attachment.
func (h *QuestionHandler) Export(w http.ResponseWriter, r *http.Request) {
	input, err := parseListInput(r, 0)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	text, err := h.bank.Export(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="questions.txt"`)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(text)) //nolint:errcheck
}

// Enrich handles POST /api/questions/{id}/enrich.
func (h *QuestionHandler) Enrich(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	explanation, err := h.bank.Enrich(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, enrichResponse{QuestionID: id, Explanation: explanation})
}

// Translation handles GET /api/questions/{id}/translation.
func (h *QuestionHandler) Translation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	result, err := h.translator.Translate(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// AnalyzeWord handles POST /api/words/analyze.
func (h *QuestionHandler) AnalyzeWord(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := decodeBody(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	analysis, err := h.bank.AnalyzeWord(r.Context(), req.Word, req.Sentence)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, analyzeResponse{Word: strings.TrimSpace(req.Word), Analysis: analysis})
}

func parseListInput(r *http.Request, defaultLimit int) (exam.ListInput, error) {
	var (
		input exam.ListInput
		errs  []domain.FieldError
		err   error
	)

	collect := func(e error) {
		if ve, ok := e.(*domain.ValidationError); ok {
			errs = append(errs, ve.Errors...)
		}
	}

	if input.Limit, err = queryInt(r, "limit", defaultLimit); err != nil {
		collect(err)
	}
	if input.Offset, err = queryInt(r, "offset", 0); err != nil {
		collect(err)
	}
	if input.OnlyFavorites, err = queryBool(r, "favorites"); err != nil {
		collect(err)
	}
	if input.OnlyWrong, err = queryBool(r, "wrong"); err != nil {
		collect(err)
	}
	if v := strings.TrimSpace(r.URL.Query().Get("batch")); v != "" {
		batchID, err := uuid.Parse(v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "batch", Message: "must be a UUID"})
		} else {
			input.BatchID = &batchID
		}
	}

	if len(errs) > 0 {
		return exam.ListInput{}, domain.NewValidationErrors(errs)
	}
	return input, nil
}
