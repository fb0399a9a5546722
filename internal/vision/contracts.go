package vision

import (
	"context"
	"errors"
	"fmt"

	"github.com/slabworks/cardscan/internal/entity"
)

// Input carries time-bounded fetchable references to one card's images.
// BackURL is empty for single-sided cards.
type Input struct {
	FrontURL string
	BackURL  string
}

// Result is the structured card data a provider extracted.
type Result struct {
	Fields          map[string]string
	FieldConfidence map[string]float32
	ProviderName    string
	TokenUsage      *entity.TokenUsage
}

// Provider is the capability contract every vision backend implements.
// Adapters are stateless values; the dispatcher resolves them by name
// from a Registry, never by hard-coded choice.
type Provider interface {
	Name() string
	Analyze(ctx context.Context, in Input) (Result, error)
}

// ProviderError wraps a backend failure with a retryability flag: a rate
// limit or timeout is worth retrying, a malformed image is not.
type ProviderError struct {
	Provider  string
	Retryable bool
	Err       error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

func retryableErr(provider string, err error) error {
	return &ProviderError{Provider: provider, Retryable: true, Err: err}
}

func permanentErr(provider string, err error) error {
	return &ProviderError{Provider: provider, Retryable: false, Err: err}
}

// IsRetryable reports whether the dispatcher should retry the call.
// Unknown error shapes (plain context timeouts included) count as retryable
// so a flaky network hop does not immediately fail a pair.
func IsRetryable(err error) bool {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Retryable
	}
	return errors.Is(err, context.DeadlineExceeded)
}
