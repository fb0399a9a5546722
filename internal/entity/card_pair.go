package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/slabworks/cardscan/constants"
)

// CardPair is the front/back grouping of uploads representing one physical card.
type CardPair struct {
	ID            uuid.UUID            `json:"id"`
	BatchID       uuid.UUID            `json:"batch_id"`
	OwnerID       uuid.UUID            `json:"owner_id"`
	FrontUploadID uuid.UUID            `json:"front_upload_id"`
	BackUploadID  *uuid.UUID           `json:"back_upload_id,omitempty"`
	Status        constants.PairStatus `json:"status"`
	Method        constants.PairMethod `json:"method"`
	Confidence    float32              `json:"confidence"`
	Extraction    *ExtractionResult    `json:"extraction,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
}

// Sides returns 1 for a single-sided pair, 2 otherwise.
func (p CardPair) Sides() int {
	if p.BackUploadID == nil {
		return 1
	}
	return 2
}

// Contains reports whether the upload participates in this pair on either side.
func (p CardPair) Contains(uploadID uuid.UUID) bool {
	return p.FrontUploadID == uploadID || (p.BackUploadID != nil && *p.BackUploadID == uploadID)
}
