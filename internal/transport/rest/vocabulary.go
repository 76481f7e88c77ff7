package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/willyuhot/ehexam/internal/domain"
	"github.com/willyuhot/ehexam/internal/service/vocabulary"
)

//go:generate moq -out vocabulary_service_mock_test.go -pkg rest . vocabularyService

type vocabularyService interface {
	Extract(ctx context.Context, text string, onProgress vocabulary.ProgressFunc) ([]domain.ParsedWord, error)
	Import(ctx context.Context, text string, onProgress vocabulary.ProgressFunc) (vocabulary.ImportResult, error)
	List(ctx context.Context, input vocabulary.ListInput) ([]domain.StoredWord, error)
	Delete(ctx context.Context, id string) error
}

const defaultWordPageSize = 100

// VocabularyHandler serves vocabulary book endpoints.
type VocabularyHandler struct {
	svc vocabularyService
	log *slog.Logger
}

// NewVocabularyHandler creates a VocabularyHandler.
func NewVocabularyHandler(svc vocabularyService, logger *slog.Logger) *VocabularyHandler {
	return &VocabularyHandler{
		svc: svc,
		log: logger.With("handler", "vocabulary"),
	}
}

type parsedWordsResponse struct {
	Words []domain.ParsedWord `json:"words"`
}

type storedWordsResponse struct {
	Words []domain.StoredWord `json:"words"`
}

// Extract handles POST /api/vocabulary/extract. Words are returned, not saved.
func (h *VocabularyHandler) Extract(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := decodeBody(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	words, err := h.svc.Extract(r.Context(), req.Text, nil)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, parsedWordsResponse{Words: words})
}

// Import handles POST /api/vocabulary/import.
func (h *VocabularyHandler) Import(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := decodeBody(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	result, err := h.svc.Import(r.Context(), req.Text, nil)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// List handles GET /api/vocabulary?search=&limit=&offset=.
func (h *VocabularyHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", defaultWordPageSize)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	words, err := h.svc.List(r.Context(), vocabulary.ListInput{
		Search: r.URL.Query().Get("search"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, storedWordsResponse{Words: words})
}

// Delete handles DELETE /api/vocabulary/{id}.
func (h *VocabularyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
