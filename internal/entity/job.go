package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/slabworks/cardscan/constants"
)

// Job represents one unit of asynchronous work over a batch.
type Job struct {
	ID           uuid.UUID           `json:"id"`
	BatchID      uuid.UUID           `json:"batch_id"`
	OwnerID      uuid.UUID           `json:"owner_id"`
	Type         constants.JobType   `json:"type"`
	Status       constants.JobStatus `json:"status"`
	Payload      json.RawMessage     `json:"payload,omitempty"`
	Result       json.RawMessage     `json:"result,omitempty"`
	ErrorMessage *string             `json:"error_message,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
	StartedAt    *time.Time          `json:"started_at,omitempty"`
	FinishedAt   *time.Time          `json:"finished_at,omitempty"`
}

// DecodeResult unmarshals the terminal result payload, nil when the job has
// not finished or the payload is unreadable.
func (j *Job) DecodeResult() *JobResult {
	if len(j.Result) == 0 {
		return nil
	}
	var res JobResult
	if err := json.Unmarshal(j.Result, &res); err != nil {
		return nil
	}
	return &res
}

// JobResult is the terminal payload written into Job.Result.
type JobResult struct {
	PairsTotal     int         `json:"pairs_total"`
	PairsSucceeded int         `json:"pairs_succeeded"`
	FailedPairIDs  []uuid.UUID `json:"failed_pair_ids,omitempty"`
}
