package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/slabworks/cardscan/constants"
)

// Batch represents a user-submitted set of card images for data transfer between layers.
type Batch struct {
	ID         uuid.UUID             `json:"id"`
	OwnerID    uuid.UUID             `json:"owner_id"`
	Status     constants.BatchStatus `json:"status"`
	TotalFiles int                   `json:"total_files"`
	CreatedAt  time.Time             `json:"created_at"`
	UpdatedAt  time.Time             `json:"updated_at"`
}

// PairingStatus is the aggregate view of a batch's pairing progress,
// always computed fresh from current rows.
type PairingStatus struct {
	BatchStatus  constants.BatchStatus `json:"batch_status"`
	TotalUploads int                   `json:"total_uploads"`
	PairedCount  int                   `json:"paired_count"`
	OrphanCount  int                   `json:"orphan_count"`
	Pairs        []CardPair            `json:"pairs"`
	Orphans      []Upload              `json:"orphans,omitempty"`
}
