package domain

import "time"

// JobStatus is the lifecycle state of an asynchronous ingest job.
type JobStatus string

const (
	JobPending   JobStatus = "pending"
	JobRunning   JobStatus = "running"
	JobSucceeded JobStatus = "succeeded"
	JobFailed    JobStatus = "failed"
)

// IngestJob tracks a background exam import.
type IngestJob struct {
	ID        string    `json:"id"`
	Status    JobStatus `json:"status"`
	Done      int       `json:"done"`
	Total     int       `json:"total"`
	Inserted  int       `json:"inserted"`
	Skipped   int       `json:"skipped"`
	Rejected  int       `json:"rejected"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
