package server

import (
	"context"
	"log/slog"

	cardspb "github.com/slabworks/cardscan/gen/proto/cards/v1"
	"github.com/slabworks/cardscan/internal/jobs"
	"github.com/slabworks/cardscan/internal/utils"
)

type JobsServer struct {
	cardspb.UnimplementedJobsServiceServer
	svc    *jobs.Service
	logger *slog.Logger
}

func NewJobsServer(svc *jobs.Service, logger *slog.Logger) *JobsServer {
	return &JobsServer{svc: svc, logger: logger}
}

// EnqueueExtraction queues an OCR job for a paired batch. A duplicate submit
// while a job is still in flight returns the existing job.
func (s *JobsServer) EnqueueExtraction(ctx context.Context, req *cardspb.EnqueueExtractionRequest) (*cardspb.EnqueueExtractionResponse, error) {
	batchID, ownerID, err := parseBatchOwner(req.GetBatchId(), req.GetOwnerId())
	if err != nil {
		return nil, err
	}

	job, deduped, err := s.svc.EnqueueExtraction(ctx, batchID, ownerID)
	if err != nil {
		return nil, toStatus(err)
	}
	return &cardspb.EnqueueExtractionResponse{
		Job:          utils.ToPBJob(job),
		Deduplicated: deduped,
	}, nil
}

// GetJobStatus returns the job and its complete event trail.
func (s *JobsServer) GetJobStatus(ctx context.Context, req *cardspb.GetJobStatusRequest) (*cardspb.GetJobStatusResponse, error) {
	jobID, err := parseUUID(req.GetJobId(), "job_id")
	if err != nil {
		return nil, err
	}
	ownerID, err := parseUUID(req.GetOwnerId(), "owner_id")
	if err != nil {
		return nil, err
	}

	st, err := s.svc.GetJobStatus(ctx, jobID, ownerID)
	if err != nil {
		return nil, toStatus(err)
	}
	return &cardspb.GetJobStatusResponse{
		Job:    utils.ToPBJob(st.Job),
		Events: utils.ToPBJobEvents(st.Events),
	}, nil
}

// CancelJob cancels a job that is still queued.
func (s *JobsServer) CancelJob(ctx context.Context, req *cardspb.CancelJobRequest) (*cardspb.CancelJobResponse, error) {
	jobID, err := parseUUID(req.GetJobId(), "job_id")
	if err != nil {
		return nil, err
	}
	ownerID, err := parseUUID(req.GetOwnerId(), "owner_id")
	if err != nil {
		return nil, err
	}

	if err := s.svc.CancelJob(ctx, jobID, ownerID); err != nil {
		return nil, toStatus(err)
	}
	st, err := s.svc.GetJobStatus(ctx, jobID, ownerID)
	if err != nil {
		return nil, toStatus(err)
	}
	return &cardspb.CancelJobResponse{Job: utils.ToPBJob(st.Job)}, nil
}
