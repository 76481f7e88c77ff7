package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/willyuhot/ehexam/internal/domain"
)

const jobKeyPrefix = "ingest:job:"

// JobStore persists asynchronous ingest jobs as JSON values with a TTL.
type JobStore struct {
	rdb *goredis.Client
	ttl time.Duration
}

// NewJobStore creates a JobStore.
func NewJobStore(rdb *goredis.Client, ttl time.Duration) *JobStore {
	return &JobStore{rdb: rdb, ttl: ttl}
}

// Create stores a new job. Returns domain.ErrAlreadyExists if the id is taken.
func (s *JobStore) Create(ctx context.Context, job domain.IngestJob) error {
	raw, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshal job: %w", err)
	}

	ok, err := s.rdb.SetNX(ctx, jobKeyPrefix+job.ID, raw, s.ttl).Result()
	if err != nil {
		return fmt.Errorf("create job %s: %w", job.ID, err)
	}
	if !ok {
		return fmt.Errorf("job %s: %w", job.ID, domain.ErrAlreadyExists)
	}
	return nil
}

// Update overwrites an existing job and refreshes its TTL.
// Returns domain.ErrNotFound if the job expired or never existed.
func (s *JobStore) Update(ctx context.Context, job domain.IngestJob) error {
	raw, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshal job: %w", err)
	}

	ok, err := s.rdb.SetXX(ctx, jobKeyPrefix+job.ID, raw, s.ttl).Result()
	if err != nil {
		return fmt.Errorf("update job %s: %w", job.ID, err)
	}
	if !ok {
		return fmt.Errorf("job %s: %w", job.ID, domain.ErrNotFound)
	}
	return nil
}

// Get loads a job by id.
func (s *JobStore) Get(ctx context.Context, id string) (*domain.IngestJob, error) {
	raw, err := s.rdb.Get(ctx, jobKeyPrefix+id).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, fmt.Errorf("job %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get job %s: %w", id, err)
	}

	var job domain.IngestJob
	if err := json.Unmarshal(raw, &job); err != nil {
		return nil, fmt.Errorf("decode job %s: %w", id, err)
	}
	return &job, nil
}
