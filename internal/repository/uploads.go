package repository

import (
	"context"
	"log/slog"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/slabworks/cardscan/gen/ent"
	entupload "github.com/slabworks/cardscan/gen/ent/upload"
	"github.com/slabworks/cardscan/internal/common"
	"github.com/slabworks/cardscan/internal/entity"
)

type UploadRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*entity.Upload, error)
	// ListByBatch returns the batch's uploads ordered by (sequence_index, filename)
	// so pairing runs see a deterministic input.
	ListByBatch(ctx context.Context, batchID, ownerID uuid.UUID) ([]entity.Upload, error)
}

type uploadRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewUploadRepository(entc *ent.Client, logger *slog.Logger) UploadRepository {
	return &uploadRepo{ent: entc, logger: logger}
}

func (r *uploadRepo) Get(ctx context.Context, id uuid.UUID) (*entity.Upload, error) {
	row, err := r.ent.Upload.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundf("upload %s", id)
		}
		r.logger.Error("failed to load upload", "upload_id", id, "error", err)
		return nil, common.Persistencef("load upload: %v", err)
	}
	u := toUpload(row)
	return &u, nil
}

func (r *uploadRepo) ListByBatch(ctx context.Context, batchID, ownerID uuid.UUID) ([]entity.Upload, error) {
	rows, err := r.ent.Upload.Query().
		Where(entupload.BatchID(batchID), entupload.OwnerID(ownerID)).
		Order(entupload.BySequenceIndex(sql.OrderAsc()), entupload.ByFilename(sql.OrderAsc())).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list uploads", "batch_id", batchID, "error", err)
		return nil, common.Persistencef("list uploads: %v", err)
	}
	return toUploads(rows), nil
}
