package server

import (
	"context"
	"log/slog"

	cardspb "github.com/slabworks/cardscan/gen/proto/cards/v1"
	"github.com/slabworks/cardscan/internal/pairing"
	"github.com/slabworks/cardscan/internal/utils"
)

type PairingServer struct {
	cardspb.UnimplementedPairingServiceServer
	session *pairing.Session
	logger  *slog.Logger
}

func NewPairingServer(session *pairing.Session, logger *slog.Logger) *PairingServer {
	return &PairingServer{session: session, logger: logger}
}

// RunAutoPairing runs the pairing engine over the batch. Calling it again
// replaces the previous automatic result.
func (s *PairingServer) RunAutoPairing(ctx context.Context, req *cardspb.RunAutoPairingRequest) (*cardspb.RunAutoPairingResponse, error) {
	batchID, ownerID, err := parseBatchOwner(req.GetBatchId(), req.GetOwnerId())
	if err != nil {
		return nil, err
	}

	res, err := s.session.RunAutoPairing(ctx, batchID, ownerID)
	if err != nil {
		return nil, toStatus(err)
	}

	return &cardspb.RunAutoPairingResponse{
		Pairs:       utils.ToPBCardPairs(res.PairsCreated),
		Orphans:     utils.ToPBUploads(res.OrphanedUploads),
		BatchStatus: string(res.BatchStatus),
	}, nil
}

// CreateManualPair records a user-confirmed pair, voiding any automatic pair
// that contained either upload.
func (s *PairingServer) CreateManualPair(ctx context.Context, req *cardspb.CreateManualPairRequest) (*cardspb.CreateManualPairResponse, error) {
	batchID, ownerID, err := parseBatchOwner(req.GetBatchId(), req.GetOwnerId())
	if err != nil {
		return nil, err
	}
	frontID, err := parseUUID(req.GetFrontUploadId(), "front_upload_id")
	if err != nil {
		return nil, err
	}
	backID, err := parseOptionalUUID(req.GetBackUploadId(), "back_upload_id")
	if err != nil {
		return nil, err
	}

	pair, err := s.session.CreateManualPair(ctx, batchID, ownerID, frontID, backID)
	if err != nil {
		return nil, toStatus(err)
	}

	st, err := s.session.GetStatus(ctx, batchID, ownerID)
	if err != nil {
		return nil, toStatus(err)
	}
	return &cardspb.CreateManualPairResponse{
		Pair:        utils.ToPBCardPair(*pair),
		BatchStatus: string(st.BatchStatus),
	}, nil
}

// GetPairingStatus reports the batch's pairing aggregates, computed fresh.
func (s *PairingServer) GetPairingStatus(ctx context.Context, req *cardspb.GetPairingStatusRequest) (*cardspb.GetPairingStatusResponse, error) {
	batchID, ownerID, err := parseBatchOwner(req.GetBatchId(), req.GetOwnerId())
	if err != nil {
		return nil, err
	}

	st, err := s.session.GetStatus(ctx, batchID, ownerID)
	if err != nil {
		return nil, toStatus(err)
	}

	return &cardspb.GetPairingStatusResponse{
		BatchStatus:     string(st.BatchStatus),
		TotalUploads:    int32(st.TotalUploads),
		PairedUploads:   int32(st.PairedCount),
		OrphanedUploads: int32(st.OrphanCount),
		Pairs:           utils.ToPBCardPairs(st.Pairs),
		Orphans:         utils.ToPBUploads(st.Orphans),
	}, nil
}
