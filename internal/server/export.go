package server

import (
	"context"
	"log/slog"

	cardspb "github.com/slabworks/cardscan/gen/proto/cards/v1"
	"github.com/slabworks/cardscan/internal/export"
)

type ExportServer struct {
	cardspb.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportServer(svc *export.Service, logger *slog.Logger) *ExportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportServer{svc: svc, logger: logger}
}

func (s *ExportServer) ExportBatch(ctx context.Context, req *cardspb.ExportBatchRequest) (*cardspb.ExportBatchResponse, error) {
	batchID, ownerID, err := parseBatchOwner(req.GetBatchId(), req.GetOwnerId())
	if err != nil {
		return nil, err
	}

	xlsx, err := s.svc.ExportBatchXLSX(ctx, batchID, ownerID)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "batch_id", req.GetBatchId(), "err", err)
		return nil, toStatus(err)
	}
	return &cardspb.ExportBatchResponse{Xlsx: xlsx}, nil
}
