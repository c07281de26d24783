package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/blog-publisher-api/internal/config"
	"github.com/blog-publisher-api/internal/models"
	"github.com/blog-publisher-api/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// jobService is the concrete implementation of JobService
type jobService struct {
	jobRepo      repository.JobRepository
	images       VariantCreator
	pollInterval time.Duration
	log          zerolog.Logger
	ctx          context.Context
	cancel       context.CancelFunc
	wg           sync.WaitGroup
	running      bool
	mu           sync.Mutex
	// Semaphore: buffered channel to limit concurrent job processing.
	// Image decoding is CPU and memory bound, so the pool stays small.
	sem chan struct{}
}

// newJobService creates a new JobService with a bounded worker pool
func newJobService(jobRepo repository.JobRepository, images VariantCreator, cfg config.JobsConfig, log zerolog.Logger) *jobService {
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	interval := cfg.PollInterval
	if interval <= 0 {
		interval = 2 * time.Second
	}

	log.Info().Int("max_workers", workers).Msg("Initializing job service worker pool")

	return &jobService{
		jobRepo:      jobRepo,
		images:       images,
		pollInterval: interval,
		log:          log.With().Str("service", "job").Logger(),
		sem:          make(chan struct{}, workers),
	}
}

// EnqueueImageVariants records a pending variant job for a stored image
func (s *jobService) EnqueueImageVariants(ctx context.Context, slug, sourcePath string) (*models.Job, error) {
	job := &models.Job{
		ID:         uuid.New().String(),
		Type:       models.JobTypeImageVariants,
		Slug:       slug,
		Status:     models.JobStatusPending,
		SourcePath: sourcePath,
		CreatedAt:  time.Now(),
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("job_id", job.ID).
		Str("slug", slug).
		Msg("Image variant job created")

	return job, nil
}

// StartProcessor starts the background job processor. It blocks until ctx
// is cancelled or StopProcessor is called.
func (s *jobService) StartProcessor(ctx context.Context) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.ctx, s.cancel = context.WithCancel(ctx)
	runCtx := s.ctx
	// the loop itself counts as a worker so StopProcessor waits for it
	s.wg.Add(1)
	s.mu.Unlock()
	defer s.wg.Done()

	s.requeueInterrupted(runCtx)
	s.log.Info().Dur("poll_interval", s.pollInterval).Msg("Job processor started")

	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-runCtx.Done():
			s.log.Info().Msg("Job processor stopping")
			return
		case <-ticker.C:
			s.processPendingJobs(runCtx)
		}
	}
}

// StopProcessor stops the background job processor and waits for running jobs
func (s *jobService) StopProcessor() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	s.cancel()
	s.wg.Wait()
	s.running = false
	s.log.Info().Msg("Job processor stopped")
}

// processPendingJobs claims every pending job and hands it to the worker pool
func (s *jobService) processPendingJobs(ctx context.Context) {
	jobs, err := s.jobRepo.GetPendingJobs(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("Failed to get pending jobs")
		return
	}

	for _, job := range jobs {
		// Acquire semaphore slot - blocks if all workers are busy (backpressure)
		select {
		case s.sem <- struct{}{}:
		case <-ctx.Done():
			return
		}

		marked, err := s.jobRepo.MarkJobAsProcessing(ctx, job.ID)
		if err != nil || !marked {
			<-s.sem  // Release slot since we're not processing this job
			continue // Another worker already picked it up
		}

		s.wg.Add(1)
		go func(j *models.Job) {
			defer s.wg.Done()
			defer func() { <-s.sem }()

			// Panic recovery - a bad image must not take the server down
			defer func() {
				if r := recover(); r != nil {
					s.log.Error().
						Interface("panic", r).
						Str("job_id", j.ID).
						Msg("Job processing panicked - recovered")
					s.finish(ctx, j, time.Now(), fmt.Errorf("panic: %v", r))
				}
			}()
			s.processJob(ctx, j)
		}(job)
	}
}

// processJob runs a single claimed job
func (s *jobService) processJob(ctx context.Context, job *models.Job) {
	select {
	case <-ctx.Done():
		s.log.Warn().Str("job_id", job.ID).Msg("Job processing cancelled due to shutdown")
		s.release(ctx, job)
		return
	default:
	}

	start := time.Now()
	job.Status = models.JobStatusProcessing
	job.StartedAt = &start

	s.log.Info().Str("job_id", job.ID).Str("type", string(job.Type)).Msg("Processing job")

	switch job.Type {
	case models.JobTypeImageVariants:
		variants, err := s.images.CreateVariants(job.SourcePath, job.Slug)
		for _, v := range variants {
			job.Outputs = append(job.Outputs, v.Filename)
		}
		s.finish(ctx, job, start, err)
	default:
		s.finish(ctx, job, start, fmt.Errorf("unknown job type %q", job.Type))
	}
}

// requeueInterrupted puts jobs claimed by a previous run back in the queue
func (s *jobService) requeueInterrupted(ctx context.Context) {
	n, err := s.jobRepo.ResetProcessing(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("Failed to requeue interrupted jobs")
		return
	}
	if n > 0 {
		s.log.Warn().Int("jobs", n).Msg("Requeued jobs interrupted by a previous shutdown")
	}
}

// release hands a claimed job that never ran back to the queue
func (s *jobService) release(ctx context.Context, job *models.Job) {
	job.Status = models.JobStatusPending
	job.StartedAt = nil
	if err := s.jobRepo.Update(context.WithoutCancel(ctx), job); err != nil {
		s.log.Error().Err(err).Str("job_id", job.ID).Msg("Failed to release cancelled job")
	}
}

// finish records the outcome of a job
func (s *jobService) finish(ctx context.Context, job *models.Job, start time.Time, err error) {
	completedAt := time.Now()
	job.CompletedAt = &completedAt
	job.DurationMs = completedAt.Sub(start).Milliseconds()

	if err != nil {
		job.Status = models.JobStatusFailed
		job.Error = err.Error()
		s.log.Error().Err(err).Str("job_id", job.ID).Msg("Job failed")
	} else {
		job.Status = models.JobStatusCompleted
		s.log.Info().
			Str("job_id", job.ID).
			Strs("outputs", job.Outputs).
			Int64("duration_ms", job.DurationMs).
			Msg("Job completed")
	}

	// shutdown may already have cancelled ctx, the outcome is still worth keeping
	if updateErr := s.jobRepo.Update(context.WithoutCancel(ctx), job); updateErr != nil {
		s.log.Error().Err(updateErr).Str("job_id", job.ID).Msg("Failed to record job outcome")
	}
}

// GetJob retrieves a job by ID, returning nil when it does not exist
func (s *jobService) GetJob(ctx context.Context, id string) (*models.Job, error) {
	return s.jobRepo.GetByID(ctx, id)
}
