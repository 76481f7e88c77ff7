// Package exam turns exam texts into validated questions and manages the
// question bank.
package exam

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/willyuhot/ehexam/internal/domain"
	"github.com/willyuhot/ehexam/internal/provider"
)

type questionRepo interface {
	BulkInsert(ctx context.Context, batchID uuid.UUID, questions []domain.Question) (int, error)
	ImportedIDs(ctx context.Context, ids []int) (map[int]struct{}, error)
	GetByID(ctx context.Context, id int) (domain.StoredQuestion, error)
	List(ctx context.Context, filter domain.QuestionFilter) ([]domain.StoredQuestion, error)
	Count(ctx context.Context, filter domain.QuestionFilter) (int, error)
}

type jobStore interface {
	Create(ctx context.Context, job domain.IngestJob) error
	Update(ctx context.Context, job domain.IngestJob) error
	Get(ctx context.Context, id string) (*domain.IngestJob, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Config holds the ingest settings the service needs.
type Config struct {
	ChunkMaxChars      int
	ExportMaxQuestions int
}

// Service provides exam extraction, import and question bank operations.
type Service struct {
	questions questionRepo
	jobs      jobStore
	tx        txManager
	llm       provider.Completer
	cfg       Config
	log       *slog.Logger

	// background is the parent context of asynchronous import jobs.
	background context.Context
}

// NewService creates a new Exam service. Asynchronous jobs run under
// background and stop when it is cancelled.
func NewService(
	background context.Context,
	log *slog.Logger,
	cfg Config,
	questions questionRepo,
	jobs jobStore,
	tx txManager,
	llm provider.Completer,
) *Service {
	return &Service{
		questions:  questions,
		jobs:       jobs,
		tx:         tx,
		llm:        llm,
		cfg:        cfg,
		log:        log.With("service", "exam"),
		background: background,
	}
}

func requireText(text string) error {
	if strings.TrimSpace(text) == "" {
		return domain.NewValidationError("text", "required")
	}
	return nil
}
