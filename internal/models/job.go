package models

import (
	"time"
)

// JobStatus represents the status of a background job
type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusProcessing JobStatus = "processing"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
)

// JobType represents the type of job
type JobType string

const (
	JobTypeImageVariants JobType = "image_variants"
)

// Job represents a deferred piece of publishing work, persisted in data/jobs.json
type Job struct {
	ID          string     `json:"job_id"`
	Type        JobType    `json:"type"`
	Slug        string     `json:"slug"`
	Status      JobStatus  `json:"status"`
	SourcePath  string     `json:"-"`
	Outputs     []string   `json:"outputs,omitempty"`
	Error       string     `json:"error,omitempty"`
	DurationMs  int64      `json:"duration_ms,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
