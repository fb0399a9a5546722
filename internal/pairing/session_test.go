package pairing

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slabworks/cardscan/constants"
	"github.com/slabworks/cardscan/internal/common"
	"github.com/slabworks/cardscan/internal/entity"
	"github.com/slabworks/cardscan/internal/repository"
)

// fakeStore implements the repository interfaces in memory with the same
// semantics the SQL layer guarantees: replace runs are all-or-nothing, manual
// pairs void overlapping ones, batch status is rederived from upload rows.
type fakeStore struct {
	batch   entity.Batch
	uploads map[uuid.UUID]*entity.Upload
	order   []uuid.UUID
	pairs   []entity.CardPair
}

func newFakeStore(ownerID uuid.UUID, filenames ...string) *fakeStore {
	s := &fakeStore{
		batch: entity.Batch{
			ID:         uuid.New(),
			OwnerID:    ownerID,
			Status:     constants.BatchStatusPending,
			TotalFiles: len(filenames),
		},
		uploads: make(map[uuid.UUID]*entity.Upload),
	}
	for i, fn := range filenames {
		u := &entity.Upload{
			ID:            uuid.New(),
			BatchID:       s.batch.ID,
			OwnerID:       ownerID,
			Filename:      fn,
			SequenceIndex: i,
			Status:        constants.UploadStatusUnassigned,
		}
		s.uploads[u.ID] = u
		s.order = append(s.order, u.ID)
	}
	return s
}

func (s *fakeStore) uploadByName(name string) *entity.Upload {
	for _, u := range s.uploads {
		if u.Filename == name {
			return u
		}
	}
	return nil
}

func (s *fakeStore) recompute() {
	if len(s.uploads) == 0 {
		s.batch.Status = constants.BatchStatusPending
		return
	}
	s.batch.Status = constants.BatchStatusPaired
	for _, u := range s.uploads {
		if u.Status != constants.UploadStatusPaired {
			s.batch.Status = constants.BatchStatusNeedsPairing
			return
		}
	}
}

func (s *fakeStore) Get(_ context.Context, id, ownerID uuid.UUID) (*entity.Batch, error) {
	if id != s.batch.ID || ownerID != s.batch.OwnerID {
		return nil, common.NotFoundf("batch %s not found", id)
	}
	b := s.batch
	return &b, nil
}

func (s *fakeStore) SetStatus(_ context.Context, _ uuid.UUID, status constants.BatchStatus) error {
	s.batch.Status = status
	return nil
}

type fakeUploads struct{ s *fakeStore }

func (f fakeUploads) Get(_ context.Context, id uuid.UUID) (*entity.Upload, error) {
	u, ok := f.s.uploads[id]
	if !ok {
		return nil, common.NotFoundf("upload %s not found", id)
	}
	cp := *u
	return &cp, nil
}

func (f fakeUploads) ListByBatch(_ context.Context, batchID, ownerID uuid.UUID) ([]entity.Upload, error) {
	if batchID != f.s.batch.ID || ownerID != f.s.batch.OwnerID {
		return nil, common.NotFoundf("batch %s not found", batchID)
	}
	out := make([]entity.Upload, 0, len(f.s.order))
	for _, id := range f.s.order {
		out = append(out, *f.s.uploads[id])
	}
	return out, nil
}

type fakePairs struct{ s *fakeStore }

func (f fakePairs) ListActiveByBatch(_ context.Context, batchID, ownerID uuid.UUID) ([]entity.CardPair, error) {
	var out []entity.CardPair
	for _, p := range f.s.pairs {
		if p.BatchID == batchID && p.OwnerID == ownerID && p.Status == constants.PairStatusPaired {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f fakePairs) ReplaceForBatch(_ context.Context, batchID, ownerID uuid.UUID, pairs []repository.NewPair, orphans []repository.OrphanMark) ([]entity.CardPair, constants.BatchStatus, error) {
	for i := range f.s.pairs {
		if f.s.pairs[i].BatchID == batchID {
			f.s.pairs[i].Status = constants.PairStatusVoided
		}
	}
	for _, u := range f.s.uploads {
		u.Status = constants.UploadStatusUnassigned
		u.OrphanReason = nil
	}

	created := make([]entity.CardPair, 0, len(pairs))
	for _, np := range pairs {
		p := entity.CardPair{
			ID:            uuid.New(),
			BatchID:       batchID,
			OwnerID:       ownerID,
			FrontUploadID: np.FrontUploadID,
			BackUploadID:  np.BackUploadID,
			Status:        constants.PairStatusPaired,
			Method:        np.Method,
			Confidence:    np.Confidence,
			CreatedAt:     time.Now(),
		}
		f.s.pairs = append(f.s.pairs, p)
		created = append(created, p)
		f.s.uploads[np.FrontUploadID].Status = constants.UploadStatusPaired
		if np.BackUploadID != nil {
			f.s.uploads[*np.BackUploadID].Status = constants.UploadStatusPaired
		}
	}
	for _, om := range orphans {
		u := f.s.uploads[om.UploadID]
		u.Status = constants.UploadStatusOrphaned
		reason := string(om.Reason)
		u.OrphanReason = &reason
	}
	f.s.recompute()
	return created, f.s.batch.Status, nil
}

func (f fakePairs) CreateManual(_ context.Context, batchID, ownerID uuid.UUID, frontUploadID uuid.UUID, backUploadID *uuid.UUID) (*entity.CardPair, error) {
	release := func(id uuid.UUID) {
		if u, ok := f.s.uploads[id]; ok && u.Status == constants.UploadStatusPaired {
			u.Status = constants.UploadStatusUnassigned
		}
	}
	for i := range f.s.pairs {
		p := &f.s.pairs[i]
		if p.Status != constants.PairStatusPaired {
			continue
		}
		overlap := p.Contains(frontUploadID) || (backUploadID != nil && p.Contains(*backUploadID))
		if overlap {
			p.Status = constants.PairStatusVoided
			release(p.FrontUploadID)
			if p.BackUploadID != nil {
				release(*p.BackUploadID)
			}
		}
	}

	pair := entity.CardPair{
		ID:            uuid.New(),
		BatchID:       batchID,
		OwnerID:       ownerID,
		FrontUploadID: frontUploadID,
		BackUploadID:  backUploadID,
		Status:        constants.PairStatusPaired,
		Method:        constants.PairMethodManual,
		Confidence:    1.0,
		CreatedAt:     time.Now(),
	}
	f.s.pairs = append(f.s.pairs, pair)
	f.s.uploads[frontUploadID].Status = constants.UploadStatusPaired
	f.s.uploads[frontUploadID].OrphanReason = nil
	if backUploadID != nil {
		f.s.uploads[*backUploadID].Status = constants.UploadStatusPaired
		f.s.uploads[*backUploadID].OrphanReason = nil
	}
	f.s.recompute()
	return &pair, nil
}

func (f fakePairs) AttachExtraction(_ context.Context, pairID uuid.UUID, res entity.ExtractionResult) error {
	for i := range f.s.pairs {
		if f.s.pairs[i].ID == pairID {
			f.s.pairs[i].Extraction = &res
			return nil
		}
	}
	return common.NotFoundf("pair %s not found", pairID)
}

func newTestSession(s *fakeStore) *Session {
	return NewSession(s, fakeUploads{s}, fakePairs{s}, nil)
}

func TestRunAutoPairingHappyPath(t *testing.T) {
	owner := uuid.New()
	store := newFakeStore(owner, "a_front.jpg", "a_back.jpg", "b_front.jpg", "b_back.jpg")
	session := newTestSession(store)

	res, err := session.RunAutoPairing(context.Background(), store.batch.ID, owner)
	require.NoError(t, err)
	assert.Len(t, res.PairsCreated, 2)
	assert.Empty(t, res.OrphanedUploads)
	assert.Equal(t, constants.BatchStatusPaired, res.BatchStatus)
}

func TestRunAutoPairingIsIdempotent(t *testing.T) {
	owner := uuid.New()
	store := newFakeStore(owner, "a_front.jpg", "a_back.jpg", "IMG_01.jpg", "IMG_02.jpg")
	session := newTestSession(store)

	first, err := session.RunAutoPairing(context.Background(), store.batch.ID, owner)
	require.NoError(t, err)
	second, err := session.RunAutoPairing(context.Background(), store.batch.ID, owner)
	require.NoError(t, err)

	// same membership both runs, and only the second run's pairs stay active
	require.Equal(t, len(first.PairsCreated), len(second.PairsCreated))
	for i := range first.PairsCreated {
		assert.Equal(t, first.PairsCreated[i].FrontUploadID, second.PairsCreated[i].FrontUploadID)
		assert.Equal(t, first.PairsCreated[i].BackUploadID, second.PairsCreated[i].BackUploadID)
	}

	active, err := fakePairs{store}.ListActiveByBatch(context.Background(), store.batch.ID, owner)
	require.NoError(t, err)
	assert.Len(t, active, len(second.PairsCreated))
}

func TestRunAutoPairingOrphansSetBatchStatus(t *testing.T) {
	owner := uuid.New()
	store := newFakeStore(owner, "a_front.jpg", "a_back.jpg", "lone_front.jpg")
	session := newTestSession(store)

	res, err := session.RunAutoPairing(context.Background(), store.batch.ID, owner)
	require.NoError(t, err)
	assert.Len(t, res.PairsCreated, 1)
	require.Len(t, res.OrphanedUploads, 1)
	assert.Equal(t, "lone_front.jpg", res.OrphanedUploads[0].Filename)
	assert.Equal(t, constants.BatchStatusNeedsPairing, res.BatchStatus)
}

func TestRunAutoPairingUnknownBatch(t *testing.T) {
	owner := uuid.New()
	store := newFakeStore(owner, "a_front.jpg")
	session := newTestSession(store)

	_, err := session.RunAutoPairing(context.Background(), uuid.New(), owner)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestRunAutoPairingWrongOwner(t *testing.T) {
	owner := uuid.New()
	store := newFakeStore(owner, "a_front.jpg")
	session := newTestSession(store)

	_, err := session.RunAutoPairing(context.Background(), store.batch.ID, uuid.New())
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestCreateManualPairOverridesAuto(t *testing.T) {
	owner := uuid.New()
	store := newFakeStore(owner, "a_front.jpg", "a_back.jpg", "b_front.jpg", "b_back.jpg")
	session := newTestSession(store)

	_, err := session.RunAutoPairing(context.Background(), store.batch.ID, owner)
	require.NoError(t, err)

	// cross the streams: a's front with b's back
	front := store.uploadByName("a_front.jpg")
	back := store.uploadByName("b_back.jpg")
	pair, err := session.CreateManualPair(context.Background(), store.batch.ID, owner, front.ID, &back.ID)
	require.NoError(t, err)

	assert.Equal(t, constants.PairMethodManual, pair.Method)
	assert.Equal(t, float32(1.0), pair.Confidence)

	// both automatic pairs got voided; their freed partners dropped to unassigned
	active, err := fakePairs{store}.ListActiveByBatch(context.Background(), store.batch.ID, owner)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, pair.ID, active[0].ID)
	assert.Equal(t, constants.UploadStatusUnassigned, store.uploadByName("a_back.jpg").Status)
	assert.Equal(t, constants.UploadStatusUnassigned, store.uploadByName("b_front.jpg").Status)
}

func TestCreateManualPairSingleSided(t *testing.T) {
	owner := uuid.New()
	store := newFakeStore(owner, "slab.jpg")
	session := newTestSession(store)

	u := store.uploadByName("slab.jpg")
	pair, err := session.CreateManualPair(context.Background(), store.batch.ID, owner, u.ID, nil)
	require.NoError(t, err)
	assert.Nil(t, pair.BackUploadID)
	assert.Equal(t, 1, pair.Sides())
}

func TestCreateManualPairValidation(t *testing.T) {
	owner := uuid.New()
	store := newFakeStore(owner, "a.jpg", "b.jpg")
	session := newTestSession(store)
	ctx := context.Background()

	a := store.uploadByName("a.jpg")

	_, err := session.CreateManualPair(ctx, store.batch.ID, owner, uuid.Nil, nil)
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = session.CreateManualPair(ctx, store.batch.ID, owner, a.ID, &a.ID)
	assert.ErrorIs(t, err, common.ErrValidation)

	missing := uuid.New()
	_, err = session.CreateManualPair(ctx, store.batch.ID, owner, missing, nil)
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestGetStatusReflectsManualFixes(t *testing.T) {
	owner := uuid.New()
	store := newFakeStore(owner, "a_front.jpg", "a_back.jpg", "lone_front.jpg")
	session := newTestSession(store)
	ctx := context.Background()

	_, err := session.RunAutoPairing(ctx, store.batch.ID, owner)
	require.NoError(t, err)

	st, err := session.GetStatus(ctx, store.batch.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, constants.BatchStatusNeedsPairing, st.BatchStatus)
	assert.Equal(t, 3, st.TotalUploads)
	assert.Equal(t, 2, st.PairedCount)
	assert.Equal(t, 1, st.OrphanCount)

	// the user resolves the orphan as a single-sided card
	lone := store.uploadByName("lone_front.jpg")
	_, err = session.CreateManualPair(ctx, store.batch.ID, owner, lone.ID, nil)
	require.NoError(t, err)

	st, err = session.GetStatus(ctx, store.batch.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, constants.BatchStatusPaired, st.BatchStatus)
	assert.Equal(t, 3, st.PairedCount)
	assert.Equal(t, 0, st.OrphanCount)
	assert.Len(t, st.Pairs, 2)
}
