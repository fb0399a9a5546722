package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/slabworks/cardscan/constants"
	"github.com/slabworks/cardscan/gen/ent"
	entpair "github.com/slabworks/cardscan/gen/ent/cardpair"
	entupload "github.com/slabworks/cardscan/gen/ent/upload"
	"github.com/slabworks/cardscan/internal/common"
	"github.com/slabworks/cardscan/internal/entity"
)

// OrphanMark flags one upload as unpairable with a reason.
type OrphanMark struct {
	UploadID uuid.UUID
	Reason   constants.OrphanReason
}

// NewPair is the insert shape for a pair produced by a pairing run.
type NewPair struct {
	FrontUploadID uuid.UUID
	BackUploadID  *uuid.UUID
	Method        constants.PairMethod
	Confidence    float32
}

type PairRepository interface {
	// ListActiveByBatch returns the batch's non-voided pairs, oldest first.
	ListActiveByBatch(ctx context.Context, batchID, ownerID uuid.UUID) ([]entity.CardPair, error)
	// ReplaceForBatch voids every active pair of the batch and persists a fresh
	// pairing run in one transaction: new pairs inserted, upload statuses set,
	// batch status rederived. All-or-nothing; a failed run leaves prior state.
	ReplaceForBatch(ctx context.Context, batchID, ownerID uuid.UUID, pairs []NewPair, orphans []OrphanMark) ([]entity.CardPair, constants.BatchStatus, error)
	// CreateManual inserts a manual pair, first voiding any active pair that
	// contains either upload. Freed partner uploads drop back to unassigned.
	CreateManual(ctx context.Context, batchID, ownerID uuid.UUID, frontUploadID uuid.UUID, backUploadID *uuid.UUID) (*entity.CardPair, error)
	// AttachExtraction writes a completed extraction onto the pair.
	AttachExtraction(ctx context.Context, pairID uuid.UUID, res entity.ExtractionResult) error
}

type pairRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewPairRepository(entc *ent.Client, logger *slog.Logger) PairRepository {
	return &pairRepo{ent: entc, logger: logger}
}

func (r *pairRepo) ListActiveByBatch(ctx context.Context, batchID, ownerID uuid.UUID) ([]entity.CardPair, error) {
	rows, err := r.ent.CardPair.Query().
		Where(
			entpair.BatchID(batchID),
			entpair.OwnerID(ownerID),
			entpair.Status(string(constants.PairStatusPaired)),
		).
		Order(entpair.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list pairs", "batch_id", batchID, "error", err)
		return nil, common.Persistencef("list pairs: %v", err)
	}
	return toCardPairs(rows), nil
}

func (r *pairRepo) ReplaceForBatch(ctx context.Context, batchID, ownerID uuid.UUID, pairs []NewPair, orphans []OrphanMark) ([]entity.CardPair, constants.BatchStatus, error) {
	var (
		created []entity.CardPair
		status  constants.BatchStatus
	)
	err := withTx(ctx, r.ent, func(tx *ent.Tx) error {
		// void the previous run
		if _, err := tx.CardPair.Update().
			Where(
				entpair.BatchID(batchID),
				entpair.Status(string(constants.PairStatusPaired)),
			).
			SetStatus(string(constants.PairStatusVoided)).
			Save(ctx); err != nil {
			return err
		}

		// reset every upload before reassigning
		if _, err := tx.Upload.Update().
			Where(entupload.BatchID(batchID)).
			SetStatus(string(constants.UploadStatusUnassigned)).
			ClearOrphanReason().
			Save(ctx); err != nil {
			return err
		}

		for _, p := range pairs {
			row, err := tx.CardPair.Create().
				SetBatchID(batchID).
				SetOwnerID(ownerID).
				SetFrontUploadID(p.FrontUploadID).
				SetNillableBackUploadID(p.BackUploadID).
				SetStatus(string(constants.PairStatusPaired)).
				SetMethod(string(p.Method)).
				SetConfidence(p.Confidence).
				Save(ctx)
			if err != nil {
				return err
			}
			members := []uuid.UUID{p.FrontUploadID}
			if p.BackUploadID != nil {
				members = append(members, *p.BackUploadID)
			}
			if _, err := tx.Upload.Update().
				Where(entupload.IDIn(members...)).
				SetStatus(string(constants.UploadStatusPaired)).
				Save(ctx); err != nil {
				return err
			}
			created = append(created, toCardPair(row))
		}

		for _, o := range orphans {
			if _, err := tx.Upload.Update().
				Where(entupload.ID(o.UploadID)).
				SetStatus(string(constants.UploadStatusOrphaned)).
				SetOrphanReason(string(o.Reason)).
				Save(ctx); err != nil {
				return err
			}
		}

		var err error
		status, err = recomputeBatchStatus(ctx, tx, batchID)
		return err
	})
	if err != nil {
		r.logger.Error("pairing run rolled back", "batch_id", batchID, "error", err)
		return nil, "", common.Persistencef("replace pairs: %v", err)
	}
	return created, status, nil
}

func (r *pairRepo) CreateManual(ctx context.Context, batchID, ownerID uuid.UUID, frontUploadID uuid.UUID, backUploadID *uuid.UUID) (*entity.CardPair, error) {
	var created *entity.CardPair
	err := withTx(ctx, r.ent, func(tx *ent.Tx) error {
		members := []uuid.UUID{frontUploadID}
		if backUploadID != nil {
			members = append(members, *backUploadID)
		}

		// void active pairs containing either upload, releasing their partners
		prior, err := tx.CardPair.Query().
			Where(
				entpair.BatchID(batchID),
				entpair.Status(string(constants.PairStatusPaired)),
				entpair.Or(
					entpair.FrontUploadIDIn(members...),
					entpair.BackUploadIDIn(members...),
				),
			).
			All(ctx)
		if err != nil {
			return err
		}
		for _, old := range prior {
			if _, err := tx.CardPair.UpdateOneID(old.ID).
				SetStatus(string(constants.PairStatusVoided)).
				Save(ctx); err != nil {
				return err
			}
			freed := []uuid.UUID{old.FrontUploadID}
			if old.BackUploadID != nil {
				freed = append(freed, *old.BackUploadID)
			}
			if _, err := tx.Upload.Update().
				Where(entupload.IDIn(freed...)).
				SetStatus(string(constants.UploadStatusUnassigned)).
				ClearOrphanReason().
				Save(ctx); err != nil {
				return err
			}
		}

		row, err := tx.CardPair.Create().
			SetBatchID(batchID).
			SetOwnerID(ownerID).
			SetFrontUploadID(frontUploadID).
			SetNillableBackUploadID(backUploadID).
			SetStatus(string(constants.PairStatusPaired)).
			SetMethod(string(constants.PairMethodManual)).
			SetConfidence(1.0).
			Save(ctx)
		if err != nil {
			return err
		}
		if _, err := tx.Upload.Update().
			Where(entupload.IDIn(members...)).
			SetStatus(string(constants.UploadStatusPaired)).
			ClearOrphanReason().
			Save(ctx); err != nil {
			return err
		}

		if _, err := recomputeBatchStatus(ctx, tx, batchID); err != nil {
			return err
		}
		p := toCardPair(row)
		created = &p
		return nil
	})
	if err != nil {
		r.logger.Error("manual pair rolled back", "batch_id", batchID, "front_upload_id", frontUploadID, "error", err)
		return nil, common.Persistencef("create manual pair: %v", err)
	}
	return created, nil
}

func (r *pairRepo) AttachExtraction(ctx context.Context, pairID uuid.UUID, res entity.ExtractionResult) error {
	fields, err := json.Marshal(res.Fields)
	if err != nil {
		return common.Persistencef("encode fields: %v", err)
	}
	upd := r.ent.CardPair.UpdateOneID(pairID).
		SetExtractedFields(fields).
		SetProvider(res.Provider).
		SetExtractedAt(time.Now().UTC())
	if len(res.FieldConfidence) > 0 {
		conf, err := json.Marshal(res.FieldConfidence)
		if err != nil {
			return common.Persistencef("encode field confidence: %v", err)
		}
		upd = upd.SetFieldConfidence(conf)
	}
	if res.TokenUsage != nil {
		usage, err := json.Marshal(res.TokenUsage)
		if err != nil {
			return common.Persistencef("encode token usage: %v", err)
		}
		upd = upd.SetTokenUsage(usage)
	}
	if _, err := upd.Save(ctx); err != nil {
		if ent.IsNotFound(err) {
			return common.NotFoundf("pair %s", pairID)
		}
		r.logger.Error("failed to attach extraction", "pair_id", pairID, "error", err)
		return common.Persistencef("attach extraction: %v", err)
	}
	return nil
}

// recomputeBatchStatus rederives the outer batch status from current upload rows.
// It is always computed inside the same transaction as the write that changed them.
func recomputeBatchStatus(ctx context.Context, tx *ent.Tx, batchID uuid.UUID) (constants.BatchStatus, error) {
	total, err := tx.Upload.Query().
		Where(entupload.BatchID(batchID)).
		Count(ctx)
	if err != nil {
		return "", err
	}
	unpaired, err := tx.Upload.Query().
		Where(
			entupload.BatchID(batchID),
			entupload.StatusNEQ(string(constants.UploadStatusPaired)),
		).
		Count(ctx)
	if err != nil {
		return "", err
	}

	status := constants.BatchStatusPaired
	switch {
	case total == 0:
		status = constants.BatchStatusPending
	case unpaired > 0:
		status = constants.BatchStatusNeedsPairing
	}
	if _, err := tx.Batch.UpdateOneID(batchID).
		SetStatus(string(status)).
		Save(ctx); err != nil {
		return "", err
	}
	return status, nil
}
