package repository

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slabworks/cardscan/constants"
	"github.com/slabworks/cardscan/gen/ent"
	"github.com/slabworks/cardscan/internal/entity"
)

func newTestClient(t *testing.T) *ent.Client {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client, err := openSQLite("file:"+filepath.Join(t.TempDir(), "jobs.db"), logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Schema.Create(context.Background()))
	return client
}

func seedBatch(t *testing.T, client *ent.Client, ownerID uuid.UUID) uuid.UUID {
	t.Helper()
	row, err := client.Batch.Create().
		SetOwnerID(ownerID).
		SetStatus(string(constants.BatchStatusPaired)).
		Save(context.Background())
	require.NoError(t, err)
	return row.ID
}

func discardLog() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestEnqueueDedupReturnsExistingJob(t *testing.T) {
	client := newTestClient(t)
	repo := NewJobRepository(client, discardLog())
	ctx := context.Background()
	ownerID := uuid.New()
	batchID := seedBatch(t, client, ownerID)

	first, existing, err := repo.EnqueueDedup(ctx, batchID, ownerID, constants.JobTypeOCR)
	require.NoError(t, err)
	assert.False(t, existing)
	assert.Equal(t, constants.JobStatusQueued, first.Status)

	second, existing, err := repo.EnqueueDedup(ctx, batchID, ownerID, constants.JobTypeOCR)
	require.NoError(t, err)
	assert.True(t, existing)
	assert.Equal(t, first.ID, second.ID)
}

func TestEnqueueDedupAllowsNewJobAfterTerminal(t *testing.T) {
	client := newTestClient(t)
	repo := NewJobRepository(client, discardLog())
	ctx := context.Background()
	ownerID := uuid.New()
	batchID := seedBatch(t, client, ownerID)

	first, _, err := repo.EnqueueDedup(ctx, batchID, ownerID, constants.JobTypeOCR)
	require.NoError(t, err)
	require.NoError(t, repo.Finish(ctx, first.ID, constants.JobStatusCompleted, &entity.JobResult{}, ""))

	second, existing, err := repo.EnqueueDedup(ctx, batchID, ownerID, constants.JobTypeOCR)
	require.NoError(t, err)
	assert.False(t, existing)
	assert.NotEqual(t, first.ID, second.ID)
}

// A raw insert that bypasses the enqueue query stands in for the second of two
// racing transactions; the partial unique index must reject it while the first
// job is still live.
func TestLiveJobUniqueIndexRejectsDuplicateInsert(t *testing.T) {
	client := newTestClient(t)
	repo := NewJobRepository(client, discardLog())
	ctx := context.Background()
	ownerID := uuid.New()
	batchID := seedBatch(t, client, ownerID)

	_, _, err := repo.EnqueueDedup(ctx, batchID, ownerID, constants.JobTypeOCR)
	require.NoError(t, err)

	_, err = client.Job.Create().
		SetBatchID(batchID).
		SetOwnerID(ownerID).
		SetType(string(constants.JobTypeOCR)).
		SetStatus(string(constants.JobStatusQueued)).
		Save(ctx)
	require.Error(t, err)
	assert.True(t, ent.IsConstraintError(err))

	n, err := client.Job.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestJobEventAppendAssignsContiguousSeq(t *testing.T) {
	client := newTestClient(t)
	jobs := NewJobRepository(client, discardLog())
	events := NewJobEventRepository(client, discardLog())
	ctx := context.Background()
	ownerID := uuid.New()
	batchID := seedBatch(t, client, ownerID)

	job, _, err := jobs.EnqueueDedup(ctx, batchID, ownerID, constants.JobTypeOCR)
	require.NoError(t, err)

	for i, kind := range []constants.JobEventKind{
		constants.EventStarted,
		constants.EventPairCompleted,
		constants.EventCompleted,
	} {
		ev, err := events.Append(ctx, job.ID, kind, "")
		require.NoError(t, err)
		assert.Equal(t, i, ev.Seq)
	}

	trail, err := events.ListByJob(ctx, job.ID)
	require.NoError(t, err)
	require.Len(t, trail, 3)
	for i, ev := range trail {
		assert.Equal(t, i, ev.Seq)
	}
}

// Writers racing for the same job, as the timeout sweep does against a live
// worker, must never lose an event to a seq collision.
func TestJobEventAppendKeepsTrailCompleteUnderConcurrency(t *testing.T) {
	client := newTestClient(t)
	jobs := NewJobRepository(client, discardLog())
	events := NewJobEventRepository(client, discardLog())
	ctx := context.Background()
	ownerID := uuid.New()
	batchID := seedBatch(t, client, ownerID)

	job, _, err := jobs.EnqueueDedup(ctx, batchID, ownerID, constants.JobTypeOCR)
	require.NoError(t, err)

	const writers = 8
	var wg sync.WaitGroup
	errs := make([]error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = events.Append(ctx, job.ID, constants.EventPairCompleted, fmt.Sprintf("writer %d", i))
		}(i)
	}
	wg.Wait()
	for i, err := range errs {
		require.NoError(t, err, "writer %d", i)
	}

	trail, err := events.ListByJob(ctx, job.ID)
	require.NoError(t, err)
	require.Len(t, trail, writers)
	for i, ev := range trail {
		assert.Equal(t, i, ev.Seq)
	}
}
