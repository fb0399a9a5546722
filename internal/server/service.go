package server

import (
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/slabworks/cardscan/internal/common"
)

// toStatus maps service errors onto gRPC status codes.
func toStatus(err error) error {
	return common.StatusFromError(err)
}

func parseUUID(s, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil || s == "" {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "%s must be a UUID", field)
	}
	return id, nil
}

func parseOptionalUUID(s, field string) (*uuid.UUID, error) {
	if s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%s must be a UUID", field)
	}
	return &id, nil
}

func parseBatchOwner(batch, owner string) (uuid.UUID, uuid.UUID, error) {
	batchID, err := parseUUID(batch, "batch_id")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	ownerID, err := parseUUID(owner, "owner_id")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return batchID, ownerID, nil
}
