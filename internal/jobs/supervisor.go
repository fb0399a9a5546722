package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/slabworks/cardscan/constants"
	"github.com/slabworks/cardscan/internal/entity"
	"github.com/slabworks/cardscan/internal/repository"
)

// Supervisor force-fails jobs stuck in processing past the wall-clock budget,
// e.g. after a worker crash left a claim behind. Without it a crashed claim
// would block the dedup rule for its batch forever.
type Supervisor struct {
	jobs    repository.JobRepository
	events  repository.JobEventRepository
	budget  time.Duration
	every   time.Duration
	logger  *slog.Logger
	nowFunc func() time.Time
}

func NewSupervisor(jobs repository.JobRepository, events repository.JobEventRepository, budget time.Duration, logger *slog.Logger) *Supervisor {
	every := budget / 4
	if every < time.Second {
		every = time.Second
	}
	return &Supervisor{
		jobs:    jobs,
		events:  events,
		budget:  budget,
		every:   every,
		logger:  logger,
		nowFunc: time.Now,
	}
}

// Run sweeps on a ticker until ctx is cancelled.
func (s *Supervisor) Run(ctx context.Context) {
	s.logger.Info("job supervisor starting", "budget", s.budget, "sweep_every", s.every)
	t := time.NewTicker(s.every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("job supervisor stopped")
			return
		case <-t.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep fails every processing job claimed before now minus the budget.
// Returns how many jobs it timed out.
func (s *Supervisor) Sweep(ctx context.Context) int {
	cutoff := s.nowFunc().Add(-s.budget)
	stuck, err := s.jobs.ListProcessingBefore(ctx, cutoff)
	if err != nil {
		s.logger.Error("timeout sweep query failed", "error", err)
		return 0
	}

	failed := 0
	for _, job := range stuck {
		msg := fmt.Sprintf("timed out after %s", s.budget)
		if err := s.jobs.Finish(ctx, job.ID, constants.JobStatusFailed, &entity.JobResult{}, msg); err != nil {
			s.logger.Error("failed to time out job", "job_id", job.ID, "error", err)
			continue
		}
		if _, err := s.events.Append(ctx, job.ID, constants.EventTimeout, msg); err != nil {
			s.logger.Error("failed to record timeout event", "job_id", job.ID, "error", err)
		}
		s.logger.Warn("job timed out", "job_id", job.ID, "batch_id", job.BatchID, "started_at", job.StartedAt)
		failed++
	}
	return failed
}
