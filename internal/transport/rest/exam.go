package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/willyuhot/ehexam/internal/domain"
	"github.com/willyuhot/ehexam/internal/service/exam"
)

//go:generate moq -out exam_service_mock_test.go -pkg rest . examService

type examService interface {
	ParseText(ctx context.Context, text string) (exam.ParseResult, error)
	Extract(ctx context.Context, text string, onProgress exam.ProgressFunc) (exam.ParseResult, error)
	Import(ctx context.Context, text string, onProgress exam.ProgressFunc) (exam.ImportResult, error)
	StartImport(ctx context.Context, text string) (string, error)
	Job(ctx context.Context, id string) (*domain.IngestJob, error)
}

// ExamHandler serves exam ingestion endpoints.
type ExamHandler struct {
	svc examService
	log *slog.Logger
}

// NewExamHandler creates an ExamHandler.
func NewExamHandler(svc examService, logger *slog.Logger) *ExamHandler {
	return &ExamHandler{
		svc: svc,
		log: logger.With("handler", "exam"),
	}
}

type textRequest struct {
	Text string `json:"text"`
}

type jobResponse struct {
	JobID string `json:"jobId"`
}

// Parse handles POST /api/exams/parse. The text must already be in the
// formatted question layout; no model is called.
func (h *ExamHandler) Parse(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := decodeBody(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	result, err := h.svc.ParseText(r.Context(), req.Text)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Extract handles POST /api/exams/extract. Questions are returned, not saved.
func (h *ExamHandler) Extract(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := decodeBody(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	result, err := h.svc.Extract(r.Context(), req.Text, nil)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Import handles POST /api/exams/import.
func (h *ExamHandler) Import(w http.ResponseWriter, r *http.Request) {
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

// StartImport handles POST /api/exams/import-jobs.
func (h *ExamHandler) StartImport(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := decodeBody(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	id, err := h.svc.StartImport(r.Context(), req.Text)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.Header().Set("Location", "/api/exams/import-jobs/"+id)
	writeJSON(w, http.StatusAccepted, jobResponse{JobID: id})
}

// Job handles GET /api/exams/import-jobs/{id}.
func (h *ExamHandler) Job(w http.ResponseWriter, r *http.Request) {
	job, err := h.svc.Job(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, job)
}
