package jobs

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slabworks/cardscan/constants"
	"github.com/slabworks/cardscan/internal/common"
	"github.com/slabworks/cardscan/internal/entity"
)

func newServiceHarness(status constants.BatchStatus, pairCount int) (*Service, *fakeBatches, *fakeJobRepo, *fakeEventRepo) {
	batches := &fakeBatches{batch: entity.Batch{
		ID:      uuid.New(),
		OwnerID: uuid.New(),
		Status:  status,
	}}
	pairRepo := &fakePairRepo{}
	for i := 0; i < pairCount; i++ {
		pairRepo.pairs = append(pairRepo.pairs, entity.CardPair{
			ID:            uuid.New(),
			BatchID:       batches.batch.ID,
			OwnerID:       batches.batch.OwnerID,
			FrontUploadID: uuid.New(),
			Status:        constants.PairStatusPaired,
		})
	}
	jobRepo := newFakeJobRepo()
	eventRepo := &fakeEventRepo{}
	svc := NewService(batches, pairRepo, jobRepo, eventRepo, discardLogger())
	return svc, batches, jobRepo, eventRepo
}

func TestEnqueueExtraction(t *testing.T) {
	svc, batches, _, _ := newServiceHarness(constants.BatchStatusPaired, 2)

	job, deduped, err := svc.EnqueueExtraction(context.Background(), batches.batch.ID, batches.batch.OwnerID)
	require.NoError(t, err)
	assert.False(t, deduped)
	assert.Equal(t, constants.JobStatusQueued, job.Status)
	assert.Equal(t, constants.JobTypeOCR, job.Type)
}

func TestEnqueueExtractionDeduplicates(t *testing.T) {
	svc, batches, _, _ := newServiceHarness(constants.BatchStatusPaired, 2)
	ctx := context.Background()

	first, _, err := svc.EnqueueExtraction(ctx, batches.batch.ID, batches.batch.OwnerID)
	require.NoError(t, err)

	second, deduped, err := svc.EnqueueExtraction(ctx, batches.batch.ID, batches.batch.OwnerID)
	require.NoError(t, err)
	assert.True(t, deduped)
	assert.Equal(t, first.ID, second.ID)
}

func TestEnqueueExtractionAfterTerminalJobCreatesNew(t *testing.T) {
	svc, batches, jobRepo, _ := newServiceHarness(constants.BatchStatusPaired, 1)
	ctx := context.Background()

	first, _, err := svc.EnqueueExtraction(ctx, batches.batch.ID, batches.batch.OwnerID)
	require.NoError(t, err)
	require.NoError(t, jobRepo.Finish(ctx, first.ID, constants.JobStatusCompleted, &entity.JobResult{}, ""))

	second, deduped, err := svc.EnqueueExtraction(ctx, batches.batch.ID, batches.batch.OwnerID)
	require.NoError(t, err)
	assert.False(t, deduped)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestEnqueueExtractionRequiresPairedBatch(t *testing.T) {
	svc, batches, _, _ := newServiceHarness(constants.BatchStatusPending, 0)

	_, _, err := svc.EnqueueExtraction(context.Background(), batches.batch.ID, batches.batch.OwnerID)
	assert.ErrorIs(t, err, common.ErrConflict)
}

func TestEnqueueExtractionRequiresActivePairs(t *testing.T) {
	svc, batches, _, _ := newServiceHarness(constants.BatchStatusNeedsPairing, 0)

	_, _, err := svc.EnqueueExtraction(context.Background(), batches.batch.ID, batches.batch.OwnerID)
	assert.ErrorIs(t, err, common.ErrConflict)
}

func TestEnqueueExtractionUnknownBatch(t *testing.T) {
	svc, batches, _, _ := newServiceHarness(constants.BatchStatusPaired, 1)

	_, _, err := svc.EnqueueExtraction(context.Background(), uuid.New(), batches.batch.OwnerID)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestGetJobStatusScopedByOwner(t *testing.T) {
	svc, batches, _, _ := newServiceHarness(constants.BatchStatusPaired, 1)
	ctx := context.Background()

	job, _, err := svc.EnqueueExtraction(ctx, batches.batch.ID, batches.batch.OwnerID)
	require.NoError(t, err)

	st, err := svc.GetJobStatus(ctx, job.ID, batches.batch.OwnerID)
	require.NoError(t, err)
	assert.Equal(t, job.ID, st.Job.ID)

	_, err = svc.GetJobStatus(ctx, job.ID, uuid.New())
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestCancelJobWhileQueued(t *testing.T) {
	svc, batches, jobRepo, eventRepo := newServiceHarness(constants.BatchStatusPaired, 1)
	ctx := context.Background()

	job, _, err := svc.EnqueueExtraction(ctx, batches.batch.ID, batches.batch.OwnerID)
	require.NoError(t, err)

	require.NoError(t, svc.CancelJob(ctx, job.ID, batches.batch.OwnerID))

	got, err := jobRepo.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusCancelled, got.Status)
	assert.Equal(t, []constants.JobEventKind{constants.EventCancelled}, eventRepo.kinds(job.ID))
}

func TestCancelJobAfterClaimConflicts(t *testing.T) {
	svc, batches, jobRepo, _ := newServiceHarness(constants.BatchStatusPaired, 1)
	ctx := context.Background()

	job, _, err := svc.EnqueueExtraction(ctx, batches.batch.ID, batches.batch.OwnerID)
	require.NoError(t, err)

	claimed, err := jobRepo.ClaimNextQueued(ctx)
	require.NoError(t, err)
	require.Equal(t, job.ID, claimed.ID)

	err = svc.CancelJob(ctx, job.ID, batches.batch.OwnerID)
	assert.ErrorIs(t, err, common.ErrConflict)
}
