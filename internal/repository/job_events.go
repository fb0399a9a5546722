package repository

import (
	"context"
	"log/slog"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/slabworks/cardscan/constants"
	"github.com/slabworks/cardscan/gen/ent"
	entevent "github.com/slabworks/cardscan/gen/ent/jobevent"
	"github.com/slabworks/cardscan/internal/common"
	"github.com/slabworks/cardscan/internal/entity"
)

type JobEventRepository interface {
	// Append writes the next event for a job. Sequence numbers are assigned
	// inside the transaction so the per-job order can never interleave.
	Append(ctx context.Context, jobID uuid.UUID, kind constants.JobEventKind, detail string) (*entity.JobEvent, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]entity.JobEvent, error)
}

type jobEventRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewJobEventRepository(entc *ent.Client, logger *slog.Logger) JobEventRepository {
	return &jobEventRepo{ent: entc, logger: logger}
}

// appendAttempts bounds retries when two writers race for the same seq, as the
// timeout sweep can against a still-live worker.
const appendAttempts = 3

func (r *jobEventRepo) Append(ctx context.Context, jobID uuid.UUID, kind constants.JobEventKind, detail string) (*entity.JobEvent, error) {
	var (
		out *entity.JobEvent
		err error
	)
	for attempt := 0; attempt < appendAttempts; attempt++ {
		out, err = r.appendOnce(ctx, jobID, kind, detail)
		if err == nil {
			return out, nil
		}
		// the (job_id, seq) unique index rejected us; re-read and take the next seq
		if !ent.IsConstraintError(err) {
			break
		}
	}
	r.logger.Error("failed to append job event", "job_id", jobID, "kind", kind, "error", err)
	return nil, common.Persistencef("append job event: %v", err)
}

func (r *jobEventRepo) appendOnce(ctx context.Context, jobID uuid.UUID, kind constants.JobEventKind, detail string) (*entity.JobEvent, error) {
	var out *entity.JobEvent
	err := withTx(ctx, r.ent, func(tx *ent.Tx) error {
		last, err := tx.JobEvent.Query().
			Where(entevent.JobID(jobID)).
			Order(entevent.BySeq(sql.OrderDesc())).
			First(ctx)
		seq := 0
		switch {
		case err == nil:
			seq = last.Seq + 1
		case !ent.IsNotFound(err):
			return err
		}
		row, err := tx.JobEvent.Create().
			SetJobID(jobID).
			SetKind(string(kind)).
			SetDetail(detail).
			SetSeq(seq).
			Save(ctx)
		if err != nil {
			return err
		}
		ev := toJobEvent(row)
		out = &ev
		return nil
	})
	return out, err
}

func (r *jobEventRepo) ListByJob(ctx context.Context, jobID uuid.UUID) ([]entity.JobEvent, error) {
	rows, err := r.ent.JobEvent.Query().
		Where(entevent.JobID(jobID)).
		Order(entevent.BySeq(sql.OrderAsc())).
		All(ctx)
	if err != nil {
		return nil, common.Persistencef("list job events: %v", err)
	}
	out := make([]entity.JobEvent, 0, len(rows))
	for _, row := range rows {
		out = append(out, toJobEvent(row))
	}
	return out, nil
}
