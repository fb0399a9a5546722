package entity

import (
	"time"

	"github.com/google/uuid"
)

// TokenUsage is the cost accounting a generative provider reports.
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// ExtractionResult is the structured card data attached to a pair
// once an OCR job completes for it.
type ExtractionResult struct {
	PairID          uuid.UUID          `json:"pair_id"`
	Fields          map[string]string  `json:"fields"`
	FieldConfidence map[string]float32 `json:"field_confidence,omitempty"`
	Provider        string             `json:"provider"`
	TokenUsage      *TokenUsage        `json:"token_usage,omitempty"`
	ExtractedAt     time.Time          `json:"extracted_at"`
}
