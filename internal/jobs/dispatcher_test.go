package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slabworks/cardscan/constants"
	"github.com/slabworks/cardscan/internal/common"
	"github.com/slabworks/cardscan/internal/entity"
	"github.com/slabworks/cardscan/internal/repository"
	"github.com/slabworks/cardscan/internal/vision"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// --- in-memory fakes ---

type fakeBatches struct {
	batch entity.Batch
}

func (f *fakeBatches) Get(_ context.Context, id, ownerID uuid.UUID) (*entity.Batch, error) {
	if id != f.batch.ID || ownerID != f.batch.OwnerID {
		return nil, common.NotFoundf("batch %s not found", id)
	}
	b := f.batch
	return &b, nil
}

func (f *fakeBatches) SetStatus(_ context.Context, _ uuid.UUID, status constants.BatchStatus) error {
	f.batch.Status = status
	return nil
}

type fakePairRepo struct {
	mu       sync.Mutex
	pairs    []entity.CardPair
	attached map[uuid.UUID]entity.ExtractionResult
}

func (f *fakePairRepo) ListActiveByBatch(_ context.Context, _, _ uuid.UUID) ([]entity.CardPair, error) {
	return f.pairs, nil
}

func (f *fakePairRepo) ReplaceForBatch(_ context.Context, _, _ uuid.UUID, _ []repository.NewPair, _ []repository.OrphanMark) ([]entity.CardPair, constants.BatchStatus, error) {
	return nil, "", errors.New("not used")
}

func (f *fakePairRepo) CreateManual(_ context.Context, _, _ uuid.UUID, _ uuid.UUID, _ *uuid.UUID) (*entity.CardPair, error) {
	return nil, errors.New("not used")
}

func (f *fakePairRepo) AttachExtraction(_ context.Context, pairID uuid.UUID, res entity.ExtractionResult) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.attached == nil {
		f.attached = make(map[uuid.UUID]entity.ExtractionResult)
	}
	f.attached[pairID] = res
	return nil
}

type fakeJobRepo struct {
	mu   sync.Mutex
	jobs map[uuid.UUID]*entity.Job
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[uuid.UUID]*entity.Job)}
}

func (f *fakeJobRepo) put(j *entity.Job) { f.jobs[j.ID] = j }

func (f *fakeJobRepo) Get(_ context.Context, id uuid.UUID) (*entity.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.jobs[id]
	if !ok {
		return nil, common.NotFoundf("job %s not found", id)
	}
	cp := *j
	return &cp, nil
}

func (f *fakeJobRepo) EnqueueDedup(_ context.Context, batchID, ownerID uuid.UUID, jobType constants.JobType) (*entity.Job, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, j := range f.jobs {
		if j.BatchID == batchID && j.Type == jobType && !j.Status.Terminal() {
			cp := *j
			return &cp, true, nil
		}
	}
	j := &entity.Job{
		ID:        uuid.New(),
		BatchID:   batchID,
		OwnerID:   ownerID,
		Type:      jobType,
		Status:    constants.JobStatusQueued,
		CreatedAt: time.Now(),
	}
	f.jobs[j.ID] = j
	cp := *j
	return &cp, false, nil
}

func (f *fakeJobRepo) ClaimNextQueued(_ context.Context) (*entity.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var oldest *entity.Job
	for _, j := range f.jobs {
		if j.Status != constants.JobStatusQueued {
			continue
		}
		if oldest == nil || j.CreatedAt.Before(oldest.CreatedAt) {
			oldest = j
		}
	}
	if oldest == nil {
		return nil, nil
	}
	now := time.Now()
	oldest.Status = constants.JobStatusProcessing
	oldest.StartedAt = &now
	cp := *oldest
	return &cp, nil
}

func (f *fakeJobRepo) Finish(_ context.Context, id uuid.UUID, status constants.JobStatus, result *entity.JobResult, errMsg string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.jobs[id]
	if !ok {
		return common.NotFoundf("job %s not found", id)
	}
	j.Status = status
	if result != nil {
		b, err := json.Marshal(result)
		if err != nil {
			return err
		}
		j.Result = b
	}
	if errMsg != "" {
		j.ErrorMessage = &errMsg
	}
	now := time.Now()
	j.FinishedAt = &now
	return nil
}

func (f *fakeJobRepo) CancelQueued(_ context.Context, id, ownerID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.jobs[id]
	if !ok || j.OwnerID != ownerID {
		return common.NotFoundf("job %s not found", id)
	}
	if j.Status != constants.JobStatusQueued {
		return common.Conflictf("job %s is not queued", id)
	}
	j.Status = constants.JobStatusCancelled
	return nil
}

func (f *fakeJobRepo) ListProcessingBefore(_ context.Context, cutoff time.Time) ([]entity.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.Job
	for _, j := range f.jobs {
		if j.Status == constants.JobStatusProcessing && j.StartedAt != nil && j.StartedAt.Before(cutoff) {
			out = append(out, *j)
		}
	}
	return out, nil
}

type fakeEventRepo struct {
	mu     sync.Mutex
	events []entity.JobEvent
}

func (f *fakeEventRepo) Append(_ context.Context, jobID uuid.UUID, kind constants.JobEventKind, detail string) (*entity.JobEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	seq := 0
	for _, e := range f.events {
		if e.JobID == jobID && e.Seq > seq {
			seq = e.Seq
		}
	}
	ev := entity.JobEvent{
		ID:        uuid.New(),
		JobID:     jobID,
		Kind:      kind,
		Detail:    detail,
		Seq:       seq + 1,
		CreatedAt: time.Now(),
	}
	f.events = append(f.events, ev)
	return &ev, nil
}

func (f *fakeEventRepo) ListByJob(_ context.Context, jobID uuid.UUID) ([]entity.JobEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.JobEvent
	for _, e := range f.events {
		if e.JobID == jobID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) kinds(jobID uuid.UUID) []constants.JobEventKind {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []constants.JobEventKind
	for _, e := range f.events {
		if e.JobID == jobID {
			out = append(out, e.Kind)
		}
	}
	return out
}

type fakeImages struct{}

func (fakeImages) ListUploads(_ context.Context, _, _ uuid.UUID) ([]entity.Upload, error) {
	return nil, nil
}

func (fakeImages) ResolveImageRef(_ context.Context, uploadID uuid.UUID, _ time.Duration) (string, error) {
	return "https://img.test/" + uploadID.String(), nil
}

// scriptedProvider fails the configured pairs' front upload URLs.
type scriptedProvider struct {
	mu    sync.Mutex
	calls map[string]int
	fail  map[string]error // front URL -> error returned every call
}

func (p *scriptedProvider) Name() string { return "scripted" }

func (p *scriptedProvider) Analyze(_ context.Context, in vision.Input) (vision.Result, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.calls == nil {
		p.calls = make(map[string]int)
	}
	p.calls[in.FrontURL]++
	if err, ok := p.fail[in.FrontURL]; ok {
		return vision.Result{}, err
	}
	return vision.Result{
		Fields:          map[string]string{"name": "Charizard"},
		FieldConfidence: map[string]float32{"name": 0.97},
		ProviderName:    "scripted",
	}, nil
}

func frontURL(p entity.CardPair) string {
	return "https://img.test/" + p.FrontUploadID.String()
}

// --- harness ---

type harness struct {
	dispatcher *Dispatcher
	jobs       *fakeJobRepo
	events     *fakeEventRepo
	pairs      *fakePairRepo
	provider   *scriptedProvider
	batchID    uuid.UUID
	ownerID    uuid.UUID
}

func newHarness(t *testing.T, pairCount int, provider *scriptedProvider) *harness {
	t.Helper()

	batchID, ownerID := uuid.New(), uuid.New()
	pairRepo := &fakePairRepo{}
	for i := 0; i < pairCount; i++ {
		back := uuid.New()
		pairRepo.pairs = append(pairRepo.pairs, entity.CardPair{
			ID:            uuid.New(),
			BatchID:       batchID,
			OwnerID:       ownerID,
			FrontUploadID: uuid.New(),
			BackUploadID:  &back,
			Status:        constants.PairStatusPaired,
			Method:        constants.PairMethodAuto,
			Confidence:    1.0,
		})
	}

	registry := vision.NewRegistry()
	require.NoError(t, registry.Register(provider))

	jobRepo := newFakeJobRepo()
	eventRepo := &fakeEventRepo{}

	cfg := common.DispatcherConfig{
		Provider:     "scripted",
		Workers:      1,
		PairFanout:   2,
		PollInterval: time.Millisecond,
		CallTimeout:  time.Second,
		JobTimeout:   time.Minute,
		RetryMax:     3,
		RetryWait:    time.Millisecond,
	}
	d := NewDispatcher(cfg, pairRepo, jobRepo, eventRepo, registry, fakeImages{}, discardLogger())
	d.sleep = noSleep

	return &harness{
		dispatcher: d,
		jobs:       jobRepo,
		events:     eventRepo,
		pairs:      pairRepo,
		provider:   provider,
		batchID:    batchID,
		ownerID:    ownerID,
	}
}

func (h *harness) enqueue(t *testing.T) *entity.Job {
	t.Helper()
	job, deduped, err := h.jobs.EnqueueDedup(context.Background(), h.batchID, h.ownerID, constants.JobTypeOCR)
	require.NoError(t, err)
	require.False(t, deduped)
	return job
}

func (h *harness) runOnce(t *testing.T) *entity.Job {
	t.Helper()
	ctx := context.Background()
	claimed := h.dispatcher.claimAndProcess(ctx, discardLogger())
	require.True(t, claimed)

	jobs, err := h.jobs.ListProcessingBefore(ctx, time.Now().Add(time.Hour))
	require.NoError(t, err)
	require.Empty(t, jobs, "job should have gone terminal")

	var done *entity.Job
	h.jobs.mu.Lock()
	for _, j := range h.jobs.jobs {
		cp := *j
		done = &cp
	}
	h.jobs.mu.Unlock()
	require.NotNil(t, done)
	return done
}

// --- tests ---

func TestDispatcherAllPairsSucceed(t *testing.T) {
	h := newHarness(t, 3, &scriptedProvider{})
	h.enqueue(t)

	job := h.runOnce(t)
	assert.Equal(t, constants.JobStatusCompleted, job.Status)

	res := job.DecodeResult()
	require.NotNil(t, res)
	assert.Equal(t, 3, res.PairsTotal)
	assert.Equal(t, 3, res.PairsSucceeded)
	assert.Empty(t, res.FailedPairIDs)

	// every pair got its extraction persisted
	assert.Len(t, h.pairs.attached, 3)
	for _, ext := range h.pairs.attached {
		assert.Equal(t, "Charizard", ext.Fields["name"])
		assert.Equal(t, "scripted", ext.Provider)
		assert.False(t, ext.ExtractedAt.IsZero())
	}
}

func TestDispatcherPartialFailure(t *testing.T) {
	provider := &scriptedProvider{fail: map[string]error{}}
	h := newHarness(t, 3, provider)
	bad := h.pairs.pairs[1]
	provider.fail[frontURL(bad)] = permanentTestErr("unreadable image")
	h.enqueue(t)

	job := h.runOnce(t)
	assert.Equal(t, constants.JobStatusFailed, job.Status)
	require.NotNil(t, job.ErrorMessage)
	assert.Contains(t, *job.ErrorMessage, "1 of 3 pairs failed")

	res := job.DecodeResult()
	require.NotNil(t, res)
	assert.Equal(t, 3, res.PairsTotal)
	assert.Equal(t, 2, res.PairsSucceeded)
	assert.Equal(t, []uuid.UUID{bad.ID}, res.FailedPairIDs)

	// successes persisted even though the job failed
	assert.Len(t, h.pairs.attached, 2)
	assert.NotContains(t, h.pairs.attached, bad.ID)
}

func TestDispatcherRetriesTransientErrors(t *testing.T) {
	provider := &scriptedProvider{fail: map[string]error{}}
	h := newHarness(t, 1, provider)
	url := frontURL(h.pairs.pairs[0])
	provider.fail[url] = retryableTestErr("rate limited")
	h.enqueue(t)

	job := h.runOnce(t)
	assert.Equal(t, constants.JobStatusFailed, job.Status)
	assert.Equal(t, 3, provider.calls[url], "retryable failure burns the whole budget")
}

func TestDispatcherPermanentErrorFailsFast(t *testing.T) {
	provider := &scriptedProvider{fail: map[string]error{}}
	h := newHarness(t, 1, provider)
	url := frontURL(h.pairs.pairs[0])
	provider.fail[url] = permanentTestErr("bad image")
	h.enqueue(t)

	job := h.runOnce(t)
	assert.Equal(t, constants.JobStatusFailed, job.Status)
	assert.Equal(t, 1, provider.calls[url], "permanent failure must not retry")
}

func TestDispatcherEventTrail(t *testing.T) {
	provider := &scriptedProvider{fail: map[string]error{}}
	h := newHarness(t, 2, provider)
	bad := h.pairs.pairs[0]
	provider.fail[frontURL(bad)] = permanentTestErr("unreadable")
	queued := h.enqueue(t)

	h.runOnce(t)

	events, err := h.events.ListByJob(context.Background(), queued.ID)
	require.NoError(t, err)
	require.NotEmpty(t, events)

	// first STARTED, last FAILED, seq strictly monotonic
	assert.Equal(t, constants.EventStarted, events[0].Kind)
	assert.Equal(t, constants.EventFailed, events[len(events)-1].Kind)
	for i, e := range events {
		assert.Equal(t, i+1, e.Seq)
	}

	kinds := h.events.kinds(queued.ID)
	assert.Contains(t, kinds, constants.EventPairCompleted)
	assert.Contains(t, kinds, constants.EventPairFailed)
}

func TestDispatcherUnknownProviderFailsJob(t *testing.T) {
	h := newHarness(t, 1, &scriptedProvider{})
	h.dispatcher.cfg.Provider = "missing"
	h.enqueue(t)

	job := h.runOnce(t)
	assert.Equal(t, constants.JobStatusFailed, job.Status)
	require.NotNil(t, job.ErrorMessage)
	assert.Contains(t, *job.ErrorMessage, "missing")
}

func TestDispatcherEmptyQueue(t *testing.T) {
	h := newHarness(t, 1, &scriptedProvider{})
	claimed := h.dispatcher.claimAndProcess(context.Background(), discardLogger())
	assert.False(t, claimed)
}
