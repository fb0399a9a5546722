package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/slabworks/cardscan/constants"
)

// Upload represents one raw image file within a batch.
type Upload struct {
	ID            uuid.UUID              `json:"id"`
	BatchID       uuid.UUID              `json:"batch_id"`
	OwnerID       uuid.UUID              `json:"owner_id"`
	Filename      string                 `json:"filename"`
	SequenceIndex int                    `json:"sequence_index"`
	StorageKey    string                 `json:"storage_key"`
	Status        constants.UploadStatus `json:"status"`
	OrphanReason  *string                `json:"orphan_reason,omitempty"`
	CreatedAt     time.Time              `json:"created_at"`
}
