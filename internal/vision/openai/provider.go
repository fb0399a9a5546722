package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/slabworks/cardscan/internal/entity"
	"github.com/slabworks/cardscan/internal/vision"
)

const ProviderName = "openai"

func (p *Provider) Name() string { return ProviderName }

// Analyze sends both card images to chat/completions as image_url content
// parts and decodes the JSON answer. Output is validated strictly first; on
// failure a lenient sanitize pass drops or normalizes optional offenders and
// the cleaned document is re-validated before giving up.
func (p *Provider) Analyze(ctx context.Context, in vision.Input) (vision.Result, error) {
	rid := uuid.New().String()
	start := time.Now()

	if in.FrontURL == "" {
		return vision.Result{}, permanent(fmt.Errorf("missing front image ref"))
	}

	p.logger.Info("vision.analyze.start",
		"req_id", rid,
		"model", p.cfg.Model,
		"temp", p.cfg.Temperature,
		"has_back", in.BackURL != "",
	)

	schema := vision.BuildCardJSONSchema()

	userParts := []map[string]any{
		{"type": "text", "text": "Extract the card's fields from these photos. The first image is the front of the card."},
		{"type": "image_url", "image_url": map[string]any{"url": in.FrontURL}},
	}
	if in.BackURL != "" {
		userParts = append(userParts,
			map[string]any{"type": "text", "text": "The second image is the back of the same card."},
			map[string]any{"type": "image_url", "image_url": map[string]any{"url": in.BackURL}},
		)
	}

	body := map[string]any{
		"model":           p.cfg.Model,
		"temperature":     p.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": systemPrompt()},
			{"role": "user", "content": userParts},
			{"role": "system", "content": "JSON Schema:\n" + mustJSON(schema)},
		},
	}

	endpoint := strings.TrimRight(p.cfg.BaseURL, "/") + "/chat/completions"
	raw, httpErr := p.post(ctx, endpoint, body)
	if httpErr != nil {
		p.logger.Error("vision.analyze.http_error",
			"req_id", rid, "error", httpErr,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return vision.Result{}, httpErr
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Usage struct {
			PromptTokens     int `json:"prompt_tokens"`
			CompletionTokens int `json:"completion_tokens"`
			TotalTokens      int `json:"total_tokens"`
		} `json:"usage"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		p.logger.Error("vision.analyze.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return vision.Result{}, permanent(fmt.Errorf("decode openai response: %w", err))
	}
	if len(cc.Choices) == 0 {
		p.logger.Error("vision.analyze.no_choices",
			"req_id", rid, "raw", string(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return vision.Result{}, permanent(fmt.Errorf("no choices in openai response"))
	}
	rawContent := []byte(strings.TrimSpace(cc.Choices[0].Message.Content))

	if err := vision.ValidateJSONAgainstSchema(schema, rawContent); err != nil {
		cleaned, dropped, sErr := vision.SanitizeOptionalFields(rawContent)
		if sErr != nil {
			p.logger.Error("vision.analyze.sanitize_failed",
				"req_id", rid, "error", sErr,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return vision.Result{}, permanent(fmt.Errorf("sanitize failed: %w", sErr))
		}
		if vErr := vision.ValidateJSONAgainstSchema(schema, cleaned); vErr != nil {
			p.logger.Error("vision.analyze.schema_validation_failed",
				"req_id", rid, "error", vErr, "content", string(rawContent),
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return vision.Result{}, permanent(fmt.Errorf("schema validation failed: %w", vErr))
		}
		p.logger.Warn("vision.analyze.lenient_sanitize_applied",
			"req_id", rid, "dropped", dropped,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		rawContent = cleaned
	}

	fields, conf, err := vision.DecodeResult(rawContent)
	if err != nil {
		return vision.Result{}, permanent(fmt.Errorf("decode fields: %w", err))
	}

	p.logger.Info("vision.analyze.ok",
		"req_id", rid,
		"name", fields[vision.FieldName],
		"fields", len(fields),
		"total_tokens", cc.Usage.TotalTokens,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	return vision.Result{
		Fields:          fields,
		FieldConfidence: conf,
		ProviderName:    ProviderName,
		TokenUsage: &entity.TokenUsage{
			PromptTokens:     cc.Usage.PromptTokens,
			CompletionTokens: cc.Usage.CompletionTokens,
			TotalTokens:      cc.Usage.TotalTokens,
		},
	}, nil
}

func (p *Provider) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, permanent(fmt.Errorf("marshal request: %w", err))
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, permanent(err)
	}
	req.Header.Set("Authorization", "Bearer "+p.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.http.Do(req)
	if err != nil {
		return nil, retryable(fmt.Errorf("openai http error: %w", err))
	}
	defer func(body io.ReadCloser) {
		if cerr := body.Close(); cerr != nil {
			p.logger.Warn("openai response body close error", "error", cerr)
		}
	}(resp.Body)

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return nil, retryable(fmt.Errorf("read openai response: %w", err))
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return buf.Bytes(), nil
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return nil, retryable(fmt.Errorf("openai status %d: %s", resp.StatusCode, buf.String()))
	default:
		return nil, permanent(fmt.Errorf("openai status %d: %s", resp.StatusCode, buf.String()))
	}
}

func systemPrompt() string {
	parts := []string{
		"You are a trading card identifier. Return ONLY JSON that matches the JSON Schema provided.",
		"Read the card name, set name, collector number, rarity, print year and language from the photos.",
		"Use 'card_number' for the collector number exactly as printed (e.g. 12/102).",
		"Report a 0..1 confidence for every field you fill under 'field_confidence'.",
		"Never output null. If a field is not legible, omit it.",
	}
	return strings.Join(parts, " ")
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

func retryable(err error) error {
	return &vision.ProviderError{Provider: ProviderName, Retryable: true, Err: err}
}

func permanent(err error) error {
	return &vision.ProviderError{Provider: ProviderName, Retryable: false, Err: err}
}
