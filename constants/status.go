package constants

// BatchStatus is the outer workflow state for a batch of scanned cards.
type BatchStatus string

// Stable values (store these exact strings in DB).
const (
	BatchStatusPending      BatchStatus = "PENDING"       // uploads received, no pairing run yet
	BatchStatusNeedsPairing BatchStatus = "NEEDS_PAIRING" // auto run left orphans behind
	BatchStatusPaired       BatchStatus = "PAIRED"        // every upload sits in a pair
)

// UploadStatus tracks where a raw upload landed after pairing.
type UploadStatus string

const (
	UploadStatusUnassigned UploadStatus = "UNASSIGNED"
	UploadStatusPaired     UploadStatus = "PAIRED"
	UploadStatusOrphaned   UploadStatus = "ORPHANED"
)

// PairStatus for card_pairs rows. Voided pairs are kept for audit, never deleted.
type PairStatus string

const (
	PairStatusPaired PairStatus = "PAIRED"
	PairStatusVoided PairStatus = "VOIDED"
)

// PairMethod records how a pair came to be.
type PairMethod string

const (
	PairMethodAuto   PairMethod = "AUTO"
	PairMethodManual PairMethod = "MANUAL"
)

// OrphanReason explains why an upload could not be paired.
type OrphanReason string

const (
	OrphanReasonUnmatched OrphanReason = "UNMATCHED" // no partner found
	OrphanReasonConflict  OrphanReason = "CONFLICT"  // ambiguous group, refused to guess
)

// JobStatus is the canonical status for rows in jobs.
type JobStatus string

const (
	JobStatusQueued     JobStatus = "QUEUED"
	JobStatusProcessing JobStatus = "PROCESSING"
	JobStatusCompleted  JobStatus = "COMPLETED"
	JobStatusFailed     JobStatus = "FAILED"
	JobStatusCancelled  JobStatus = "CANCELLED"
)

// Terminal reports whether a job status admits no further transitions.
func (s JobStatus) Terminal() bool {
	switch s {
	case JobStatusCompleted, JobStatusFailed, JobStatusCancelled:
		return true
	}
	return false
}

// JobType enumerates the kinds of asynchronous work. Only OCR extraction today.
type JobType string

const (
	JobTypeOCR JobType = "OCR"
)

// JobTypes holds the allowed values for the job type field.
var JobTypes = []string{string(JobTypeOCR)}

// JobEventKind labels one lifecycle transition in the append-only audit trail.
type JobEventKind string

const (
	EventStarted       JobEventKind = "STARTED"
	EventPairCompleted JobEventKind = "PAIR_COMPLETED"
	EventPairFailed    JobEventKind = "PAIR_FAILED"
	EventCompleted     JobEventKind = "COMPLETED"
	EventFailed        JobEventKind = "FAILED"
	EventCancelled     JobEventKind = "CANCELLED"
	EventTimeout       JobEventKind = "TIMEOUT"
)
