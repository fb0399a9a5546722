package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/slabworks/cardscan/constants"
	"github.com/slabworks/cardscan/internal/common"
	"github.com/slabworks/cardscan/internal/entity"
	"github.com/slabworks/cardscan/internal/repository"
	"github.com/slabworks/cardscan/internal/uploads"
	"github.com/slabworks/cardscan/internal/vision"
)

// Dispatcher drains the job queue. Each worker claims one job at a time,
// fans out provider calls across the job's pairs up to PairFanout in flight,
// and records per-pair progress in the job's event trail. A pair failure
// never aborts the job's other pairs; the job goes terminal only after every
// pair has been attempted.
type Dispatcher struct {
	cfg      common.DispatcherConfig
	pairs    repository.PairRepository
	jobs     repository.JobRepository
	events   repository.JobEventRepository
	registry *vision.Registry
	images   uploads.Registry
	logger   *slog.Logger

	sleep sleeper // injectable for tests

	wg sync.WaitGroup
}

func NewDispatcher(
	cfg common.DispatcherConfig,
	pairs repository.PairRepository,
	jobs repository.JobRepository,
	events repository.JobEventRepository,
	registry *vision.Registry,
	images uploads.Registry,
	logger *slog.Logger,
) *Dispatcher {
	if cfg.PairFanout < 1 {
		cfg.PairFanout = 1
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return &Dispatcher{
		cfg:      cfg,
		pairs:    pairs,
		jobs:     jobs,
		events:   events,
		registry: registry,
		images:   images,
		logger:   logger,
	}
}

// Run starts the claim loops and blocks until ctx is cancelled and every
// in-flight job has drained.
func (d *Dispatcher) Run(ctx context.Context) {
	d.logger.Info("dispatcher starting",
		"workers", d.cfg.Workers,
		"pair_fanout", d.cfg.PairFanout,
		"provider", d.cfg.Provider,
	)
	for i := 0; i < d.cfg.Workers; i++ {
		d.wg.Add(1)
		go func(worker int) {
			defer d.wg.Done()
			d.workerLoop(ctx, worker)
		}(i)
	}
	d.wg.Wait()
	d.logger.Info("dispatcher stopped")
}

func (d *Dispatcher) workerLoop(ctx context.Context, worker int) {
	log := d.logger.With("worker", worker)
	for {
		if ctx.Err() != nil {
			return
		}
		claimed := d.claimAndProcess(ctx, log)
		if claimed {
			continue
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(d.cfg.PollInterval):
		}
	}
}

// claimAndProcess attempts one claim. A panic while processing fails the job
// instead of killing the worker.
func (d *Dispatcher) claimAndProcess(ctx context.Context, log *slog.Logger) (claimed bool) {
	job, err := d.jobs.ClaimNextQueued(ctx)
	if err != nil {
		log.Error("claim failed", "error", err)
		return false
	}
	if job == nil {
		return false
	}

	defer func() {
		if r := recover(); r != nil {
			log.Error("panic while processing job", "job_id", job.ID, "panic", r)
			d.failJob(ctx, job, nil, fmt.Sprintf("internal error: %v", r))
		}
	}()

	log.Info("job claimed", "job_id", job.ID, "batch_id", job.BatchID, "type", job.Type)
	d.process(ctx, log, job)
	return true
}

func (d *Dispatcher) process(ctx context.Context, log *slog.Logger, job *entity.Job) {
	provider, err := d.registry.Resolve(d.cfg.Provider)
	if err != nil {
		d.failJob(ctx, job, nil, err.Error())
		return
	}

	pairs, err := d.pairs.ListActiveByBatch(ctx, job.BatchID, job.OwnerID)
	if err != nil {
		d.failJob(ctx, job, nil, fmt.Sprintf("list pairs: %v", err))
		return
	}
	if len(pairs) == 0 {
		d.failJob(ctx, job, &entity.JobResult{}, "batch has no active pairs")
		return
	}

	d.appendEvent(ctx, job.ID, constants.EventStarted,
		fmt.Sprintf("extraction started: %d pairs via %s", len(pairs), provider.Name()))

	result := d.runPairs(ctx, log, job, provider, pairs)

	if len(result.FailedPairIDs) == 0 {
		d.finishJob(ctx, job, constants.JobStatusCompleted, result, "")
		d.appendEvent(ctx, job.ID, constants.EventCompleted,
			fmt.Sprintf("all %d pairs extracted", result.PairsTotal))
		log.Info("job completed", "job_id", job.ID, "pairs", result.PairsTotal)
		return
	}

	msg := fmt.Sprintf("%d of %d pairs failed", len(result.FailedPairIDs), result.PairsTotal)
	d.finishJob(ctx, job, constants.JobStatusFailed, result, msg)
	d.appendEvent(ctx, job.ID, constants.EventFailed, msg)
	log.Warn("job failed", "job_id", job.ID,
		"pairs_total", result.PairsTotal,
		"pairs_succeeded", result.PairsSucceeded,
	)
}

// runPairs fans the provider calls out across the pairs with a bounded
// semaphore. Persistence and event appends happen under a mutex so the
// event trail stays one write at a time.
func (d *Dispatcher) runPairs(ctx context.Context, log *slog.Logger, job *entity.Job, provider vision.Provider, pairs []entity.CardPair) *entity.JobResult {
	result := &entity.JobResult{PairsTotal: len(pairs)}

	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		sem = make(chan struct{}, d.cfg.PairFanout)
	)

	for _, pair := range pairs {
		wg.Add(1)
		sem <- struct{}{}
		go func(pair entity.CardPair) {
			defer wg.Done()
			defer func() { <-sem }()

			res, attempts, err := d.extractPair(ctx, provider, pair)

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				result.FailedPairIDs = append(result.FailedPairIDs, pair.ID)
				d.appendEvent(ctx, job.ID, constants.EventPairFailed,
					fmt.Sprintf("pair %s failed after %d attempt(s): %v", pair.ID, attempts, err))
				log.Warn("pair extraction failed",
					"job_id", job.ID, "pair_id", pair.ID, "attempts", attempts, "error", err)
				return
			}

			ext := entity.ExtractionResult{
				PairID:          pair.ID,
				Fields:          res.Fields,
				FieldConfidence: res.FieldConfidence,
				Provider:        res.ProviderName,
				TokenUsage:      res.TokenUsage,
				ExtractedAt:     time.Now().UTC(),
			}
			if perr := d.pairs.AttachExtraction(ctx, pair.ID, ext); perr != nil {
				result.FailedPairIDs = append(result.FailedPairIDs, pair.ID)
				d.appendEvent(ctx, job.ID, constants.EventPairFailed,
					fmt.Sprintf("pair %s: persist extraction: %v", pair.ID, perr))
				log.Error("persist extraction failed",
					"job_id", job.ID, "pair_id", pair.ID, "error", perr)
				return
			}

			result.PairsSucceeded++
			d.appendEvent(ctx, job.ID, constants.EventPairCompleted,
				fmt.Sprintf("pair %s extracted (%d fields)", pair.ID, len(res.Fields)))
		}(pair)
	}

	wg.Wait()
	return result
}

// extractPair resolves the pair's image refs and calls the provider with the
// retry policy. Each attempt gets its own call timeout.
func (d *Dispatcher) extractPair(ctx context.Context, provider vision.Provider, pair entity.CardPair) (vision.Result, int, error) {
	frontURL, err := d.images.ResolveImageRef(ctx, pair.FrontUploadID, 0)
	if err != nil {
		return vision.Result{}, 0, fmt.Errorf("resolve front image: %w", err)
	}
	in := vision.Input{FrontURL: frontURL}
	if pair.BackUploadID != nil {
		backURL, err := d.images.ResolveImageRef(ctx, *pair.BackUploadID, 0)
		if err != nil {
			return vision.Result{}, 0, fmt.Errorf("resolve back image: %w", err)
		}
		in.BackURL = backURL
	}

	policy := RetryConfig{
		MaxAttempts: d.cfg.RetryMax,
		InitialWait: d.cfg.RetryWait,
		MaxWait:     d.cfg.JobTimeout,
	}
	return retryAnalyze(ctx, policy, d.sleep, func() (vision.Result, error) {
		callCtx, cancel := context.WithTimeout(ctx, d.cfg.CallTimeout)
		defer cancel()
		return provider.Analyze(callCtx, in)
	})
}

func (d *Dispatcher) finishJob(ctx context.Context, job *entity.Job, status constants.JobStatus, result *entity.JobResult, errMsg string) {
	if err := d.jobs.Finish(ctx, job.ID, status, result, errMsg); err != nil {
		d.logger.Error("failed to finish job", "job_id", job.ID, "status", status, "error", err)
	}
}

func (d *Dispatcher) failJob(ctx context.Context, job *entity.Job, result *entity.JobResult, msg string) {
	d.finishJob(ctx, job, constants.JobStatusFailed, result, msg)
	d.appendEvent(ctx, job.ID, constants.EventFailed, msg)
}

func (d *Dispatcher) appendEvent(ctx context.Context, jobID uuid.UUID, kind constants.JobEventKind, detail string) {
	if _, err := d.events.Append(ctx, jobID, kind, detail); err != nil {
		d.logger.Error("failed to append job event",
			"job_id", jobID, "kind", kind, "error", err)
	}
}
