package uploads

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/slabworks/cardscan/internal/entity"
	"github.com/slabworks/cardscan/internal/repository"
)

// Registry resolves uploads and mints fetchable references to their images.
// The dispatcher depends on this interface rather than on storage details,
// so tests can hand back canned URLs.
type Registry interface {
	ListUploads(ctx context.Context, batchID, ownerID uuid.UUID) ([]entity.Upload, error)
	// ResolveImageRef returns a time-bounded URL a vision provider can fetch.
	ResolveImageRef(ctx context.Context, uploadID uuid.UUID, ttl time.Duration) (string, error)
}

type registry struct {
	uploads repository.UploadRepository
	signer  *Signer
	logger  *slog.Logger
}

func NewRegistry(uploadRepo repository.UploadRepository, signer *Signer, logger *slog.Logger) Registry {
	return &registry{uploads: uploadRepo, signer: signer, logger: logger}
}

func (r *registry) ListUploads(ctx context.Context, batchID, ownerID uuid.UUID) ([]entity.Upload, error) {
	return r.uploads.ListByBatch(ctx, batchID, ownerID)
}

func (r *registry) ResolveImageRef(ctx context.Context, uploadID uuid.UUID, ttl time.Duration) (string, error) {
	u, err := r.uploads.Get(ctx, uploadID)
	if err != nil {
		return "", err
	}
	ref, err := r.signer.SignedURL(u.StorageKey, ttl)
	if err != nil {
		return "", err
	}
	r.logger.Debug("resolved image ref", "upload_id", uploadID, "ttl", ttl)
	return ref, nil
}
