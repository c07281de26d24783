package mocks

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/blog-publisher-api/internal/models"
	"github.com/blog-publisher-api/internal/repository"
)

// MockJobRepository is a mock implementation of JobRepository.
// It is safe for use by the job processor's workers.
type MockJobRepository struct {
	mu          sync.Mutex
	Jobs        map[string]*models.Job
	CreateError error
	PendingErr  error
}

// Verify interface compliance
var _ repository.JobRepository = (*MockJobRepository)(nil)

func NewMockJobRepository() *MockJobRepository {
	return &MockJobRepository{
		Jobs: make(map[string]*models.Job),
	}
}

func (m *MockJobRepository) Create(ctx context.Context, job *models.Job) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateError != nil {
		return m.CreateError
	}
	stored := *job
	m.Jobs[job.ID] = &stored
	return nil
}

func (m *MockJobRepository) Update(ctx context.Context, job *models.Job) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Jobs[job.ID]; !ok {
		return fmt.Errorf("job %s not found", job.ID)
	}
	stored := *job
	m.Jobs[job.ID] = &stored
	return nil
}

func (m *MockJobRepository) GetByID(ctx context.Context, id string) (*models.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	job, ok := m.Jobs[id]
	if !ok {
		return nil, nil
	}
	copied := *job
	return &copied, nil
}

func (m *MockJobRepository) GetPendingJobs(ctx context.Context) ([]*models.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.PendingErr != nil {
		return nil, m.PendingErr
	}
	var pending []*models.Job
	for _, job := range m.Jobs {
		if job.Status == models.JobStatusPending {
			copied := *job
			pending = append(pending, &copied)
		}
	}
	sort.Slice(pending, func(i, j int) bool {
		return pending[i].CreatedAt.Before(pending[j].CreatedAt)
	})
	return pending, nil
}

func (m *MockJobRepository) MarkJobAsProcessing(ctx context.Context, jobID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	job, ok := m.Jobs[jobID]
	if !ok || job.Status != models.JobStatusPending {
		return false, nil
	}
	now := time.Now()
	job.Status = models.JobStatusProcessing
	job.StartedAt = &now
	return true, nil
}

func (m *MockJobRepository) ResetProcessing(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	reset := 0
	for _, job := range m.Jobs {
		if job.Status == models.JobStatusProcessing {
			job.Status = models.JobStatusPending
			job.StartedAt = nil
			reset++
		}
	}
	return reset, nil
}

// Status returns the stored status of a job
func (m *MockJobRepository) Status(id string) models.JobStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	if job, ok := m.Jobs[id]; ok {
		return job.Status
	}
	return ""
}
