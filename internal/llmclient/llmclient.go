package llmclient

import (
	"context"
	"fmt"
)

// Client is a minimal text-generation client. Cross-cutting concerns
// (retries, failover, logging) are applied via middleware in internal/llm.
type Client interface {
	Name() string
	Generate(ctx context.Context, prompt string, maxTokens int) (string, error)
	Close() error
}

// ProviderError reports a failed or unusable provider response.
// An HTTP 200 with an empty body is still a ProviderError: some
// providers return success envelopes with no usable content.
type ProviderError struct {
	Provider string
	Status   int
	Detail   string
}

func (e *ProviderError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: status %d: %s", e.Provider, e.Status, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Provider, e.Detail)
}

// PermanentError indicates an error that will not resolve with retries.
type PermanentError struct {
	Err error
}

func (e *PermanentError) Error() string { return e.Err.Error() }
func (e *PermanentError) Unwrap() error { return e.Err }

func NewPermanentError(err error) error {
	return &PermanentError{Err: err}
}
