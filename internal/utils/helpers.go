package utils

import (
	"time"

	cardspb "github.com/slabworks/cardscan/gen/proto/cards/v1"
	"github.com/slabworks/cardscan/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func timeOrEmpty(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func ToPBUpload(u entity.Upload) *cardspb.Upload {
	return &cardspb.Upload{
		Id:            u.ID.String(),
		BatchId:       u.BatchID.String(),
		Filename:      u.Filename,
		SequenceIndex: int32(u.SequenceIndex),
		Status:        string(u.Status),
		OrphanReason:  strOrEmpty(u.OrphanReason),
	}
}

func ToPBUploads(ups []entity.Upload) []*cardspb.Upload {
	out := make([]*cardspb.Upload, 0, len(ups))
	for _, u := range ups {
		out = append(out, ToPBUpload(u))
	}
	return out
}

func ToPBCardPair(p entity.CardPair) *cardspb.CardPair {
	pb := &cardspb.CardPair{
		Id:            p.ID.String(),
		BatchId:       p.BatchID.String(),
		FrontUploadId: p.FrontUploadID.String(),
		Status:        string(p.Status),
		Method:        string(p.Method),
		Confidence:    p.Confidence,
		CreatedAt:     p.CreatedAt.UTC().Format(time.RFC3339),
	}
	if p.BackUploadID != nil {
		pb.BackUploadId = p.BackUploadID.String()
	}
	if p.Extraction != nil {
		pb.Extraction = ToPBExtraction(p.Extraction)
	}
	return pb
}

func ToPBCardPairs(pairs []entity.CardPair) []*cardspb.CardPair {
	out := make([]*cardspb.CardPair, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, ToPBCardPair(p))
	}
	return out
}

func ToPBExtraction(e *entity.ExtractionResult) *cardspb.Extraction {
	pb := &cardspb.Extraction{
		Fields:          e.Fields,
		FieldConfidence: e.FieldConfidence,
		Provider:        e.Provider,
		ExtractedAt:     e.ExtractedAt.UTC().Format(time.RFC3339),
	}
	if e.TokenUsage != nil {
		pb.TotalTokens = int32(e.TokenUsage.TotalTokens)
	}
	return pb
}

func ToPBJob(j *entity.Job) *cardspb.Job {
	pb := &cardspb.Job{
		Id:           j.ID.String(),
		BatchId:      j.BatchID.String(),
		Type:         string(j.Type),
		Status:       string(j.Status),
		ErrorMessage: strOrEmpty(j.ErrorMessage),
		CreatedAt:    j.CreatedAt.UTC().Format(time.RFC3339),
		StartedAt:    timeOrEmpty(j.StartedAt),
		FinishedAt:   timeOrEmpty(j.FinishedAt),
	}
	if res := j.DecodeResult(); res != nil {
		pb.PairsTotal = int32(res.PairsTotal)
		pb.PairsSucceeded = int32(res.PairsSucceeded)
		for _, id := range res.FailedPairIDs {
			pb.FailedPairIds = append(pb.FailedPairIds, id.String())
		}
	}
	return pb
}

func ToPBJobEvent(e entity.JobEvent) *cardspb.JobEvent {
	return &cardspb.JobEvent{
		JobId:     e.JobID.String(),
		Seq:       int32(e.Seq),
		Kind:      string(e.Kind),
		Detail:    e.Detail,
		CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBJobEvents(events []entity.JobEvent) []*cardspb.JobEvent {
	out := make([]*cardspb.JobEvent, 0, len(events))
	for _, e := range events {
		out = append(out, ToPBJobEvent(e))
	}
	return out
}
