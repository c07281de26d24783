package repository

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/blog-publisher-api/internal/apperrors"
	"github.com/blog-publisher-api/internal/models"
)

const jobsFile = "jobs.json"

// jobRecord carries the fields of a job that are never exposed over the API
type jobRecord struct {
	models.Job
	SourcePath string `json:"source_path"`
}

type jobsDocument struct {
	Jobs []jobRecord `json:"jobs"`
}

// jobRepo is the file-backed implementation of JobRepository
type jobRepo struct {
	path string
	mu   sync.Mutex
}

// NewJobRepo creates a new job repository
func NewJobRepo(dataDir string) JobRepository {
	return &jobRepo{path: filepath.Join(dataDir, jobsFile)}
}

func toRecord(job *models.Job) jobRecord {
	return jobRecord{Job: *job, SourcePath: job.SourcePath}
}

func (rec jobRecord) toJob() *models.Job {
	job := rec.Job
	job.SourcePath = rec.SourcePath
	return &job
}

func (r *jobRepo) read() (*jobsDocument, error) {
	doc := &jobsDocument{}
	if err := readJSON(r.path, doc); err != nil {
		if isNotExist(err) {
			return doc, nil
		}
		return nil, apperrors.Persistence("read jobs", err)
	}
	return doc, nil
}

func (r *jobRepo) write(doc *jobsDocument) error {
	return apperrors.Persistence("write jobs", writeJSON(r.path, doc))
}

// Create appends a new job
func (r *jobRepo) Create(ctx context.Context, job *models.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.read()
	if err != nil {
		return err
	}
	doc.Jobs = append(doc.Jobs, toRecord(job))
	return r.write(doc)
}

// Update replaces the stored job with the same id
func (r *jobRepo) Update(ctx context.Context, job *models.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.read()
	if err != nil {
		return err
	}
	for i := range doc.Jobs {
		if doc.Jobs[i].ID == job.ID {
			doc.Jobs[i] = toRecord(job)
			return r.write(doc)
		}
	}
	return fmt.Errorf("job %s not found", job.ID)
}

// GetByID retrieves a job by ID, returning nil when it does not exist
func (r *jobRepo) GetByID(ctx context.Context, id string) (*models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.read()
	if err != nil {
		return nil, err
	}
	for _, rec := range doc.Jobs {
		if rec.ID == id {
			return rec.toJob(), nil
		}
	}
	return nil, nil
}

// GetPendingJobs retrieves all pending jobs, oldest first
func (r *jobRepo) GetPendingJobs(ctx context.Context) ([]*models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.read()
	if err != nil {
		return nil, err
	}

	var jobs []*models.Job
	for _, rec := range doc.Jobs {
		if rec.Status == models.JobStatusPending {
			jobs = append(jobs, rec.toJob())
		}
	}
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].CreatedAt.Before(jobs[j].CreatedAt)
	})
	return jobs, nil
}

// MarkJobAsProcessing atomically marks a pending job as processing
func (r *jobRepo) MarkJobAsProcessing(ctx context.Context, jobID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.read()
	if err != nil {
		return false, err
	}
	for i := range doc.Jobs {
		if doc.Jobs[i].ID != jobID {
			continue
		}
		if doc.Jobs[i].Status != models.JobStatusPending {
			return false, nil
		}
		now := time.Now()
		doc.Jobs[i].Status = models.JobStatusProcessing
		doc.Jobs[i].StartedAt = &now
		if err := r.write(doc); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

// ResetProcessing returns every job left in processing to pending and reports how many moved.
// Only one processor runs per data directory, so a processing job found at startup was
// interrupted mid-run.
func (r *jobRepo) ResetProcessing(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.read()
	if err != nil {
		return 0, err
	}
	reset := 0
	for i := range doc.Jobs {
		if doc.Jobs[i].Status == models.JobStatusProcessing {
			doc.Jobs[i].Status = models.JobStatusPending
			doc.Jobs[i].StartedAt = nil
			reset++
		}
	}
	if reset == 0 {
		return 0, nil
	}
	if err := r.write(doc); err != nil {
		return 0, err
	}
	return reset, nil
}
