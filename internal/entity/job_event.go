package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/slabworks/cardscan/constants"
)

// JobEvent is one row in the append-only per-job audit trail.
type JobEvent struct {
	ID        uuid.UUID              `json:"id"`
	JobID     uuid.UUID              `json:"job_id"`
	Kind      constants.JobEventKind `json:"kind"`
	Detail    string                 `json:"detail,omitempty"`
	Seq       int                    `json:"seq"`
	CreatedAt time.Time              `json:"created_at"`
}
