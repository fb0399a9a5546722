package pairing

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/slabworks/cardscan/constants"
	"github.com/slabworks/cardscan/internal/common"
	"github.com/slabworks/cardscan/internal/entity"
	"github.com/slabworks/cardscan/internal/repository"
)

// Session drives pairing for a batch: auto runs, manual overrides and fresh
// status reads. Upload and CardPair rows are mutated only through here.
type Session struct {
	batches repository.BatchRepository
	uploads repository.UploadRepository
	pairs   repository.PairRepository
	logger  *slog.Logger
}

func NewSession(batches repository.BatchRepository, uploads repository.UploadRepository, pairs repository.PairRepository, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{batches: batches, uploads: uploads, pairs: pairs, logger: logger}
}

// RunResult summarizes one auto-pairing run.
type RunResult struct {
	PairsCreated    []entity.CardPair
	OrphanedUploads []entity.Upload
	BatchStatus     constants.BatchStatus
}

// RunAutoPairing re-pairs the whole batch from scratch. Any existing pairs are
// voided and recreated, so repeating the call on an unchanged batch converges
// to the same pair membership. The run persists all-or-nothing.
func (s *Session) RunAutoPairing(ctx context.Context, batchID, ownerID uuid.UUID) (*RunResult, error) {
	if _, err := s.batches.Get(ctx, batchID, ownerID); err != nil {
		return nil, err
	}
	uploads, err := s.uploads.ListByBatch(ctx, batchID, ownerID)
	if err != nil {
		return nil, err
	}

	res, err := Pair(uploads)
	if err != nil {
		// partition violation is a defect, not a data problem; fail loudly
		s.logger.Error("pairing engine defect", "batch_id", batchID, "error", err)
		return nil, err
	}

	newPairs := make([]repository.NewPair, 0, len(res.Pairs))
	for _, p := range res.Pairs {
		np := repository.NewPair{
			FrontUploadID: p.Front.ID,
			Method:        constants.PairMethodAuto,
			Confidence:    p.Confidence,
		}
		if p.Back != nil {
			id := p.Back.ID
			np.BackUploadID = &id
		}
		newPairs = append(newPairs, np)
	}
	orphans := make([]repository.OrphanMark, 0, len(res.Orphans))
	for _, o := range res.Orphans {
		orphans = append(orphans, repository.OrphanMark{UploadID: o.Upload.ID, Reason: o.Reason})
	}

	created, status, err := s.pairs.ReplaceForBatch(ctx, batchID, ownerID, newPairs, orphans)
	if err != nil {
		return nil, err
	}

	orphaned := make([]entity.Upload, 0, len(res.Orphans))
	for _, o := range res.Orphans {
		u := o.Upload
		u.Status = constants.UploadStatusOrphaned
		reason := string(o.Reason)
		u.OrphanReason = &reason
		orphaned = append(orphaned, u)
	}

	s.logger.Info("auto pairing run complete",
		"batch_id", batchID,
		"uploads", len(uploads),
		"pairs_created", len(created),
		"orphans", len(orphaned),
		"batch_status", status,
	)
	return &RunResult{PairsCreated: created, OrphanedUploads: orphaned, BatchStatus: status}, nil
}

// CreateManualPair records a user-confirmed pair. Both uploads must exist in
// the given batch; any prior pair containing either upload is voided first.
// Manual pairs always carry confidence 1.0.
func (s *Session) CreateManualPair(ctx context.Context, batchID, ownerID, frontUploadID uuid.UUID, backUploadID *uuid.UUID) (*entity.CardPair, error) {
	if _, err := s.batches.Get(ctx, batchID, ownerID); err != nil {
		return nil, err
	}
	if frontUploadID == uuid.Nil {
		return nil, common.Validationf("front upload id is required")
	}
	if backUploadID != nil && *backUploadID == frontUploadID {
		return nil, common.Validationf("front and back must be different uploads")
	}

	ids := []uuid.UUID{frontUploadID}
	if backUploadID != nil {
		ids = append(ids, *backUploadID)
	}
	for _, id := range ids {
		u, err := s.uploads.Get(ctx, id)
		if err != nil {
			return nil, common.Validationf("upload %s: not found", id)
		}
		if u.BatchID != batchID || u.OwnerID != ownerID {
			return nil, common.Conflictf("upload %s belongs to a different batch", id)
		}
	}

	pair, err := s.pairs.CreateManual(ctx, batchID, ownerID, frontUploadID, backUploadID)
	if err != nil {
		return nil, err
	}
	s.logger.Info("manual pair created",
		"batch_id", batchID,
		"pair_id", pair.ID,
		"front_upload_id", frontUploadID,
		"single_sided", backUploadID == nil,
	)
	return pair, nil
}

// GetStatus computes the batch's pairing aggregates fresh from current rows,
// so concurrent manual corrections are always reflected.
func (s *Session) GetStatus(ctx context.Context, batchID, ownerID uuid.UUID) (*entity.PairingStatus, error) {
	batch, err := s.batches.Get(ctx, batchID, ownerID)
	if err != nil {
		return nil, err
	}
	uploads, err := s.uploads.ListByBatch(ctx, batchID, ownerID)
	if err != nil {
		return nil, err
	}
	pairs, err := s.pairs.ListActiveByBatch(ctx, batchID, ownerID)
	if err != nil {
		return nil, err
	}

	st := &entity.PairingStatus{
		BatchStatus:  batch.Status,
		TotalUploads: len(uploads),
		Pairs:        pairs,
	}
	for _, u := range uploads {
		switch u.Status {
		case constants.UploadStatusPaired:
			st.PairedCount++
		case constants.UploadStatusOrphaned:
			st.OrphanCount++
			st.Orphans = append(st.Orphans, u)
		}
	}
	return st, nil
}
