package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slabworks/cardscan/constants"
)

func TestSupervisorSweepFailsStuckJobs(t *testing.T) {
	ctx := context.Background()
	jobRepo := newFakeJobRepo()
	eventRepo := &fakeEventRepo{}

	stuck, _, err := jobRepo.EnqueueDedup(ctx, uuid.New(), uuid.New(), constants.JobTypeOCR)
	require.NoError(t, err)
	_, err = jobRepo.ClaimNextQueued(ctx)
	require.NoError(t, err)

	// backdate the claim past the budget
	jobRepo.mu.Lock()
	old := time.Now().Add(-20 * time.Minute)
	jobRepo.jobs[stuck.ID].StartedAt = &old
	jobRepo.mu.Unlock()

	sup := NewSupervisor(jobRepo, eventRepo, 10*time.Minute, discardLogger())
	failed := sup.Sweep(ctx)
	assert.Equal(t, 1, failed)

	got, err := jobRepo.Get(ctx, stuck.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusFailed, got.Status)
	require.NotNil(t, got.ErrorMessage)
	assert.Contains(t, *got.ErrorMessage, "timed out")
	assert.Equal(t, []constants.JobEventKind{constants.EventTimeout}, eventRepo.kinds(stuck.ID))
}

func TestSupervisorSweepLeavesFreshJobsAlone(t *testing.T) {
	ctx := context.Background()
	jobRepo := newFakeJobRepo()
	eventRepo := &fakeEventRepo{}

	fresh, _, err := jobRepo.EnqueueDedup(ctx, uuid.New(), uuid.New(), constants.JobTypeOCR)
	require.NoError(t, err)
	_, err = jobRepo.ClaimNextQueued(ctx)
	require.NoError(t, err)

	sup := NewSupervisor(jobRepo, eventRepo, 10*time.Minute, discardLogger())
	assert.Equal(t, 0, sup.Sweep(ctx))

	got, err := jobRepo.Get(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusProcessing, got.Status)
}

func TestSupervisorSweepIgnoresQueuedJobs(t *testing.T) {
	ctx := context.Background()
	jobRepo := newFakeJobRepo()
	eventRepo := &fakeEventRepo{}

	queued, _, err := jobRepo.EnqueueDedup(ctx, uuid.New(), uuid.New(), constants.JobTypeOCR)
	require.NoError(t, err)

	// even an old queued job is not the supervisor's business
	jobRepo.mu.Lock()
	jobRepo.jobs[queued.ID].CreatedAt = time.Now().Add(-time.Hour)
	jobRepo.mu.Unlock()

	sup := NewSupervisor(jobRepo, eventRepo, 10*time.Minute, discardLogger())
	assert.Equal(t, 0, sup.Sweep(ctx))
}
