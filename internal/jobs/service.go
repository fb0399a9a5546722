package jobs

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/slabworks/cardscan/constants"
	"github.com/slabworks/cardscan/internal/common"
	"github.com/slabworks/cardscan/internal/entity"
	"github.com/slabworks/cardscan/internal/repository"
)

// Service is the request-side surface of the job queue: enqueue, inspect,
// cancel. The dispatcher consumes what this enqueues.
type Service struct {
	batches repository.BatchRepository
	pairs   repository.PairRepository
	jobs    repository.JobRepository
	events  repository.JobEventRepository
	logger  *slog.Logger
}

func NewService(
	batches repository.BatchRepository,
	pairs repository.PairRepository,
	jobs repository.JobRepository,
	events repository.JobEventRepository,
	logger *slog.Logger,
) *Service {
	return &Service{batches: batches, pairs: pairs, jobs: jobs, events: events, logger: logger}
}

// JobStatus bundles a job with its ordered event trail.
type JobStatus struct {
	Job    *entity.Job
	Events []entity.JobEvent
}

// EnqueueExtraction queues an OCR job for a paired batch. Re-submitting while
// a job for the batch is still queued or processing returns the existing job
// with deduped=true instead of creating a duplicate.
func (s *Service) EnqueueExtraction(ctx context.Context, batchID, ownerID uuid.UUID) (*entity.Job, bool, error) {
	batch, err := s.batches.Get(ctx, batchID, ownerID)
	if err != nil {
		return nil, false, err
	}
	if batch.Status == constants.BatchStatusPending {
		return nil, false, common.Conflictf("batch %s has not been paired yet", batchID)
	}

	active, err := s.pairs.ListActiveByBatch(ctx, batchID, ownerID)
	if err != nil {
		return nil, false, err
	}
	if len(active) == 0 {
		return nil, false, common.Conflictf("batch %s has no active pairs to extract", batchID)
	}

	job, deduped, err := s.jobs.EnqueueDedup(ctx, batchID, ownerID, constants.JobTypeOCR)
	if err != nil {
		return nil, false, err
	}
	if deduped {
		s.logger.Info("extraction enqueue deduplicated",
			"batch_id", batchID, "job_id", job.ID, "status", job.Status)
	} else {
		s.logger.Info("extraction job enqueued",
			"batch_id", batchID, "job_id", job.ID, "pairs", len(active))
	}
	return job, deduped, nil
}

// GetJobStatus returns the job and its full event history in append order.
func (s *Service) GetJobStatus(ctx context.Context, jobID, ownerID uuid.UUID) (*JobStatus, error) {
	job, err := s.jobs.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.OwnerID != ownerID {
		return nil, common.NotFoundf("job %s not found", jobID)
	}
	events, err := s.events.ListByJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	return &JobStatus{Job: job, Events: events}, nil
}

// CancelJob cancels a job that is still waiting in the queue. A job a worker
// has already claimed cannot be cancelled; the caller gets a conflict.
func (s *Service) CancelJob(ctx context.Context, jobID, ownerID uuid.UUID) error {
	if err := s.jobs.CancelQueued(ctx, jobID, ownerID); err != nil {
		return err
	}
	if _, err := s.events.Append(ctx, jobID, constants.EventCancelled, "cancelled by request"); err != nil {
		s.logger.Error("failed to record cancel event", "job_id", jobID, "error", err)
	}
	s.logger.Info("job cancelled", "job_id", jobID)
	return nil
}
