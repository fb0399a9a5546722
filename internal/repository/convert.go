package repository

import (
	"encoding/json"

	"github.com/slabworks/cardscan/constants"
	"github.com/slabworks/cardscan/gen/ent"
	"github.com/slabworks/cardscan/internal/entity"
)

func toBatch(e *ent.Batch) *entity.Batch {
	return &entity.Batch{
		ID:         e.ID,
		OwnerID:    e.OwnerID,
		Status:     constants.BatchStatus(e.Status),
		TotalFiles: e.TotalFiles,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func toUpload(e *ent.Upload) entity.Upload {
	return entity.Upload{
		ID:            e.ID,
		BatchID:       e.BatchID,
		OwnerID:       e.OwnerID,
		Filename:      e.Filename,
		SequenceIndex: e.SequenceIndex,
		StorageKey:    e.StorageKey,
		Status:        constants.UploadStatus(e.Status),
		OrphanReason:  e.OrphanReason,
		CreatedAt:     e.CreatedAt,
	}
}

func toUploads(rows []*ent.Upload) []entity.Upload {
	out := make([]entity.Upload, 0, len(rows))
	for _, r := range rows {
		out = append(out, toUpload(r))
	}
	return out
}

func toCardPair(e *ent.CardPair) entity.CardPair {
	p := entity.CardPair{
		ID:            e.ID,
		BatchID:       e.BatchID,
		OwnerID:       e.OwnerID,
		FrontUploadID: e.FrontUploadID,
		BackUploadID:  e.BackUploadID,
		Status:        constants.PairStatus(e.Status),
		Method:        constants.PairMethod(e.Method),
		Confidence:    e.Confidence,
		CreatedAt:     e.CreatedAt,
	}
	if len(e.ExtractedFields) > 0 && e.Provider != nil {
		res := &entity.ExtractionResult{
			PairID:   e.ID,
			Provider: *e.Provider,
		}
		if e.ExtractedAt != nil {
			res.ExtractedAt = *e.ExtractedAt
		}
		// best-effort decode; a malformed row should not fail a read
		_ = json.Unmarshal(e.ExtractedFields, &res.Fields)
		if len(e.FieldConfidence) > 0 {
			_ = json.Unmarshal(e.FieldConfidence, &res.FieldConfidence)
		}
		if len(e.TokenUsage) > 0 {
			var tu entity.TokenUsage
			if err := json.Unmarshal(e.TokenUsage, &tu); err == nil {
				res.TokenUsage = &tu
			}
		}
		p.Extraction = res
	}
	return p
}

func toCardPairs(rows []*ent.CardPair) []entity.CardPair {
	out := make([]entity.CardPair, 0, len(rows))
	for _, r := range rows {
		out = append(out, toCardPair(r))
	}
	return out
}

func toJob(e *ent.Job) *entity.Job {
	return &entity.Job{
		ID:           e.ID,
		BatchID:      e.BatchID,
		OwnerID:      e.OwnerID,
		Type:         constants.JobType(e.Type),
		Status:       constants.JobStatus(e.Status),
		Payload:      e.Payload,
		Result:       e.Result,
		ErrorMessage: e.ErrorMessage,
		CreatedAt:    e.CreatedAt,
		StartedAt:    e.StartedAt,
		FinishedAt:   e.FinishedAt,
	}
}

func toJobEvent(e *ent.JobEvent) entity.JobEvent {
	return entity.JobEvent{
		ID:        e.ID,
		JobID:     e.JobID,
		Kind:      constants.JobEventKind(e.Kind),
		Detail:    e.Detail,
		Seq:       e.Seq,
		CreatedAt: e.CreatedAt,
	}
}
