// Package practice runs question drills: option shuffling, answer checking,
// favorites, the wrong-answer book and answer statistics.
package practice

import (
	"context"
	"log/slog"

	"github.com/willyuhot/ehexam/internal/domain"
)

type questionRepo interface {
	GetByID(ctx context.Context, id int) (domain.StoredQuestion, error)
	List(ctx context.Context, filter domain.QuestionFilter) ([]domain.StoredQuestion, error)
}

type progressRepo interface {
	AddFavorite(ctx context.Context, questionID int) error
	RemoveFavorite(ctx context.Context, questionID int) error
	IsFavorite(ctx context.Context, questionID int) (bool, error)

	AddWrongAnswer(ctx context.Context, questionID int, selected string) error
	RemoveWrongAnswer(ctx context.Context, questionID int) error
	WrongAnswers(ctx context.Context) ([]domain.WrongAnswer, error)

	RecordAnswer(ctx context.Context, questionID int, correct bool) error
	Stats(ctx context.Context) (domain.AnswerStats, error)
	QuestionStats(ctx context.Context, questionID int) (domain.AnswerStats, error)
	ResetStats(ctx context.Context) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Config holds the practice settings.
type Config struct {
	ShuffleOptions bool
}

// Service provides practice operations.
type Service struct {
	questions questionRepo
	progress  progressRepo
	tx        txManager
	cfg       Config
	log       *slog.Logger
}

// NewService creates a new Practice service.
func NewService(
	log *slog.Logger,
	cfg Config,
	questions questionRepo,
	progress progressRepo,
	tx txManager,
) *Service {
	return &Service{
		questions: questions,
		progress:  progress,
		tx:        tx,
		cfg:       cfg,
		log:       log.With("service", "practice"),
	}
}
