package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/willyuhot/ehexam/internal/domain"
	"github.com/willyuhot/ehexam/internal/service/practice"
)

//go:generate moq -out practice_service_mock_test.go -pkg rest . practiceService

type practiceService interface {
	Present(ctx context.Context, id int) (practice.Presentation, error)
	Answer(ctx context.Context, input practice.AnswerInput) (practice.AnswerResult, error)
	ToggleFavorite(ctx context.Context, id int, favorite bool) error
	Favorites(ctx context.Context, limit, offset int) ([]domain.StoredQuestion, error)
	WrongAnswers(ctx context.Context) ([]domain.WrongAnswer, error)
	RemoveWrongAnswer(ctx context.Context, id int) error
	Stats(ctx context.Context) (practice.StatsResult, error)
	ResetStats(ctx context.Context) error
}

// PracticeHandler serves practice mode endpoints: answering, favorites, the
// wrong-answer book and answer statistics.
type PracticeHandler struct {
	svc practiceService
	log *slog.Logger
}

// NewPracticeHandler creates a PracticeHandler.
func NewPracticeHandler(svc practiceService, logger *slog.Logger) *PracticeHandler {
	return &PracticeHandler{
		svc: svc,
		log: logger.With("handler", "practice"),
	}
}

type answerRequest struct {
	Selected string               `json:"selected"`
	Mapping  domain.OptionMapping `json:"mapping"`
}

type favoritesResponse struct {
	Questions []domain.StoredQuestion `json:"questions"`
}

type wrongAnswersResponse struct {
	WrongAnswers []domain.WrongAnswer `json:"wrongAnswers"`
}

// Present handles GET /api/questions/{id}/present.
func (h *PracticeHandler) Present(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	p, err := h.svc.Present(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, p)
}

// Answer handles POST /api/questions/{id}/answer. Selected is the displayed
// label; mapping is the one returned by Present, or empty for identity.
func (h *PracticeHandler) Answer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req answerRequest
	if err := decodeBody(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	result, err := h.svc.Answer(r.Context(), practice.AnswerInput{
		QuestionID: id,
		Selected:   req.Selected,
		Mapping:    req.Mapping,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// AddFavorite handles PUT /api/questions/{id}/favorite.
func (h *PracticeHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	h.toggleFavorite(w, r, true)
}

// RemoveFavorite handles DELETE /api/questions/{id}/favorite.
func (h *PracticeHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	h.toggleFavorite(w, r, false)
}

func (h *PracticeHandler) toggleFavorite(w http.ResponseWriter, r *http.Request, favorite bool) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.svc.ToggleFavorite(r.Context(), id, favorite); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Favorites handles GET /api/favorites?limit=&offset=.
func (h *PracticeHandler) Favorites(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", defaultPageSize)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	questions, err := h.svc.Favorites(r.Context(), limit, offset)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, favoritesResponse{Questions: questions})
}

// WrongAnswers handles GET /api/wrong-answers.
func (h *PracticeHandler) WrongAnswers(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.WrongAnswers(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, wrongAnswersResponse{WrongAnswers: items})
}

// RemoveWrongAnswer handles DELETE /api/wrong-answers/{id}.
func (h *PracticeHandler) RemoveWrongAnswer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.svc.RemoveWrongAnswer(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Stats handles GET /api/stats.
func (h *PracticeHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// ResetStats handles DELETE /api/stats.
func (h *PracticeHandler) ResetStats(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.ResetStats(r.Context()); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
