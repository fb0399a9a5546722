package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/slabworks/cardscan/constants"
	"github.com/slabworks/cardscan/gen/ent"
	entjob "github.com/slabworks/cardscan/gen/ent/job"
	"github.com/slabworks/cardscan/internal/common"
	"github.com/slabworks/cardscan/internal/entity"
)

type JobRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*entity.Job, error)
	// EnqueueDedup creates a queued job unless a non-terminal job already exists
	// for the same (batch, type); in that case the existing job is returned and
	// the bool is true. A partial unique index on (batch_id, type) over live
	// statuses backs the dedup, so concurrent enqueues cannot create a second
	// billable job.
	EnqueueDedup(ctx context.Context, batchID, ownerID uuid.UUID, jobType constants.JobType) (*entity.Job, bool, error)
	// ClaimNextQueued atomically moves the oldest queued job to processing.
	// The compare-and-set guarantees exactly one worker holds the job.
	// Returns (nil, nil) when the queue is empty.
	ClaimNextQueued(ctx context.Context) (*entity.Job, error)
	Finish(ctx context.Context, id uuid.UUID, status constants.JobStatus, result *entity.JobResult, errMsg string) error
	// CancelQueued transitions queued -> cancelled; a job already claimed or
	// finished is reported as a conflict.
	CancelQueued(ctx context.Context, id, ownerID uuid.UUID) error
	// ListProcessingBefore returns processing jobs claimed before the cutoff,
	// for the supervisory timeout sweep.
	ListProcessingBefore(ctx context.Context, cutoff time.Time) ([]entity.Job, error)
}

type jobRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewJobRepository(entc *ent.Client, logger *slog.Logger) JobRepository {
	return &jobRepo{ent: entc, logger: logger}
}

func (r *jobRepo) Get(ctx context.Context, id uuid.UUID) (*entity.Job, error) {
	row, err := r.ent.Job.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundf("job %s", id)
		}
		r.logger.Error("failed to load job", "job_id", id, "error", err)
		return nil, common.Persistencef("load job: %v", err)
	}
	return toJob(row), nil
}

func (r *jobRepo) EnqueueDedup(ctx context.Context, batchID, ownerID uuid.UUID, jobType constants.JobType) (*entity.Job, bool, error) {
	var (
		out      *entity.Job
		existing bool
	)
	err := withTx(ctx, r.ent, func(tx *ent.Tx) error {
		prior, err := tx.Job.Query().
			Where(
				entjob.BatchID(batchID),
				entjob.Type(string(jobType)),
				entjob.StatusIn(
					string(constants.JobStatusQueued),
					string(constants.JobStatusProcessing),
				),
			).
			Order(entjob.ByCreatedAt()).
			First(ctx)
		if err == nil {
			out = toJob(prior)
			existing = true
			return nil
		}
		if !ent.IsNotFound(err) {
			return err
		}
		row, err := tx.Job.Create().
			SetBatchID(batchID).
			SetOwnerID(ownerID).
			SetType(string(jobType)).
			SetStatus(string(constants.JobStatusQueued)).
			Save(ctx)
		if err != nil {
			return err
		}
		out = toJob(row)
		return nil
	})
	if err != nil {
		// Two concurrent enqueues can both pass the query; the partial unique
		// index on (batch_id, type) rejects the second insert, and the winner's
		// row is the dedup hit.
		if ent.IsConstraintError(err) {
			prior, qerr := r.ent.Job.Query().
				Where(
					entjob.BatchID(batchID),
					entjob.Type(string(jobType)),
					entjob.StatusIn(
						string(constants.JobStatusQueued),
						string(constants.JobStatusProcessing),
					),
				).
				Order(entjob.ByCreatedAt()).
				First(ctx)
			if qerr == nil {
				r.logger.Info("enqueue deduplicated", "batch_id", batchID, "type", jobType, "job_id", prior.ID)
				return toJob(prior), true, nil
			}
		}
		r.logger.Error("enqueue failed", "batch_id", batchID, "type", jobType, "error", err)
		return nil, false, common.Persistencef("enqueue job: %v", err)
	}
	if existing {
		r.logger.Info("enqueue deduplicated", "batch_id", batchID, "type", jobType, "job_id", out.ID)
	} else {
		r.logger.Info("job enqueued", "batch_id", batchID, "type", jobType, "job_id", out.ID)
	}
	return out, existing, nil
}

func (r *jobRepo) ClaimNextQueued(ctx context.Context) (*entity.Job, error) {
	// A candidate may be claimed by another worker between the read and the
	// conditional update, so loop over a few oldest candidates before giving up.
	candidates, err := r.ent.Job.Query().
		Where(entjob.Status(string(constants.JobStatusQueued))).
		Order(entjob.ByCreatedAt(sql.OrderAsc())).
		Limit(5).
		All(ctx)
	if err != nil {
		return nil, common.Persistencef("scan queue: %v", err)
	}
	for _, c := range candidates {
		n, err := r.ent.Job.Update().
			Where(entjob.ID(c.ID), entjob.Status(string(constants.JobStatusQueued))).
			SetStatus(string(constants.JobStatusProcessing)).
			SetStartedAt(time.Now().UTC()).
			Save(ctx)
		if err != nil {
			return nil, common.Persistencef("claim job: %v", err)
		}
		if n == 1 {
			row, err := r.ent.Job.Get(ctx, c.ID)
			if err != nil {
				return nil, common.Persistencef("reload claimed job: %v", err)
			}
			return toJob(row), nil
		}
	}
	return nil, nil
}

func (r *jobRepo) Finish(ctx context.Context, id uuid.UUID, status constants.JobStatus, result *entity.JobResult, errMsg string) error {
	upd := r.ent.Job.UpdateOneID(id).
		SetStatus(string(status)).
		SetFinishedAt(time.Now().UTC())
	if result != nil {
		b, err := json.Marshal(result)
		if err != nil {
			return common.Persistencef("encode job result: %v", err)
		}
		upd = upd.SetResult(b)
	}
	if errMsg != "" {
		upd = upd.SetErrorMessage(errMsg)
	}
	if _, err := upd.Save(ctx); err != nil {
		if ent.IsNotFound(err) {
			return common.NotFoundf("job %s", id)
		}
		r.logger.Error("failed to finish job", "job_id", id, "status", status, "error", err)
		return common.Persistencef("finish job: %v", err)
	}
	return nil
}

func (r *jobRepo) CancelQueued(ctx context.Context, id, ownerID uuid.UUID) error {
	n, err := r.ent.Job.Update().
		Where(
			entjob.ID(id),
			entjob.OwnerID(ownerID),
			entjob.Status(string(constants.JobStatusQueued)),
		).
		SetStatus(string(constants.JobStatusCancelled)).
		SetFinishedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return common.Persistencef("cancel job: %v", err)
	}
	if n == 0 {
		// distinguish absent from already running/finished
		if _, err := r.Get(ctx, id); err != nil {
			return err
		}
		return common.Conflictf("job %s is not queued", id)
	}
	return nil
}

func (r *jobRepo) ListProcessingBefore(ctx context.Context, cutoff time.Time) ([]entity.Job, error) {
	rows, err := r.ent.Job.Query().
		Where(
			entjob.Status(string(constants.JobStatusProcessing)),
			entjob.StartedAtLT(cutoff),
		).
		All(ctx)
	if err != nil {
		return nil, common.Persistencef("list stale jobs: %v", err)
	}
	out := make([]entity.Job, 0, len(rows))
	for _, row := range rows {
		out = append(out, *toJob(row))
	}
	return out, nil
}
