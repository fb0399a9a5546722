package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/slabworks/cardscan/constants"
	"github.com/slabworks/cardscan/gen/ent"
	entbatch "github.com/slabworks/cardscan/gen/ent/batch"
	"github.com/slabworks/cardscan/internal/common"
	"github.com/slabworks/cardscan/internal/entity"
)

type BatchRepository interface {
	// Get loads a batch scoped by owner; a mismatch reads as not found.
	Get(ctx context.Context, id, ownerID uuid.UUID) (*entity.Batch, error)
	SetStatus(ctx context.Context, id uuid.UUID, status constants.BatchStatus) error
}

type batchRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewBatchRepository(entc *ent.Client, logger *slog.Logger) BatchRepository {
	return &batchRepo{ent: entc, logger: logger}
}

func (r *batchRepo) Get(ctx context.Context, id, ownerID uuid.UUID) (*entity.Batch, error) {
	row, err := r.ent.Batch.Query().
		Where(entbatch.ID(id), entbatch.OwnerID(ownerID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundf("batch %s", id)
		}
		r.logger.Error("failed to load batch", "batch_id", id, "error", err)
		return nil, common.Persistencef("load batch: %v", err)
	}
	return toBatch(row), nil
}

func (r *batchRepo) SetStatus(ctx context.Context, id uuid.UUID, status constants.BatchStatus) error {
	n, err := r.ent.Batch.Update().
		Where(entbatch.ID(id)).
		SetStatus(string(status)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to update batch status", "batch_id", id, "status", status, "error", err)
		return common.Persistencef("update batch status: %v", err)
	}
	if n == 0 {
		return common.NotFoundf("batch %s", id)
	}
	return nil
}
