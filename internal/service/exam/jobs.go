package exam

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/willyuhot/ehexam/internal/domain"
)

// StartImport registers an asynchronous import of text and returns the job id
// immediately. Progress and the final counters are written to the job store.
func (s *Service) StartImport(ctx context.Context, text string) (string, error) {
	if err := requireText(text); err != nil {
		return "", err
	}

	now := time.Now().UTC()
	job := domain.IngestJob{
		ID:        uuid.NewString(),
		Status:    domain.JobPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.jobs.Create(ctx, job); err != nil {
		return "", fmt.Errorf("create job: %w", err)
	}

	s.log.InfoContext(ctx, "import job started", slog.String("job_id", job.ID))

	go s.runImport(job, text)

	return job.ID, nil
}

// Job returns the current state of an import job.
func (s *Service) Job(ctx context.Context, id string) (*domain.IngestJob, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.NewValidationError("id", "invalid job id")
	}
	job, err := s.jobs.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get job: %w", err)
	}
	return job, nil
}

func (s *Service) runImport(job domain.IngestJob, text string) {
	ctx := s.background

	job.Status = domain.JobRunning
	s.saveJob(ctx, job)

	result, err := s.Import(ctx, text, func(done, total int) {
		job.Done, job.Total = done, total
		s.saveJob(ctx, job)
	})

	if err != nil {
		job.Status = domain.JobFailed
		job.Error = err.Error()
		s.log.ErrorContext(ctx, "import job failed",
			slog.String("job_id", job.ID),
			slog.String("error", err.Error()),
		)
	} else {
		job.Status = domain.JobSucceeded
		job.Inserted = result.Inserted
		job.Skipped = result.Skipped
		job.Rejected = len(result.Rejected)
		job.Done, job.Total = result.Chunks, result.Chunks
	}
	s.saveJob(ctx, job)
}

// saveJob stores job with a fresh UpdatedAt. A failed write is logged only;
// the job keeps running. The write outlives cancellation so a job stopped by
// shutdown is still recorded as failed.
func (s *Service) saveJob(ctx context.Context, job domain.IngestJob) {
	job.UpdatedAt = time.Now().UTC()
	if err := s.jobs.Update(context.WithoutCancel(ctx), job); err != nil {
		s.log.WarnContext(ctx, "save job state failed",
			slog.String("job_id", job.ID),
			slog.String("error", err.Error()),
		)
	}
}
