package llm

import (
	"context"
	"errors"
	"strings"
	"time"

	"homebase/internal/llmclient"
)

// Policy is an explicit retry policy: total attempts and the fixed
// delay between them.
type Policy struct {
	MaxAttempts int
	Delay       time.Duration
}

// DefaultPolicy retries once after the first failure, one second apart.
func DefaultPolicy() Policy {
	return Policy{MaxAttempts: 2, Delay: time.Second}
}

// Retry retries Generate up to p.MaxAttempts with a fixed delay between
// attempts. A response whose trimmed body is empty counts as a failure.
// If the context is canceled, it stops immediately.
func Retry(p Policy) Middleware {
	if p.MaxAttempts < 1 {
		p.MaxAttempts = 1
	}
	return func(next llmclient.Client) llmclient.Client {
		return &retrying{next: next, policy: p}
	}
}

type retrying struct {
	next   llmclient.Client
	policy Policy
}

func (r *retrying) Name() string { return r.next.Name() }
func (r *retrying) Close() error { return r.next.Close() }

func (r *retrying) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	var last error
	for i := 0; i < r.policy.MaxAttempts; i++ {
		if i > 0 {
			if err := sleep(ctx, r.policy.Delay); err != nil {
				return "", err
			}
		}
		out, err := r.next.Generate(ctx, prompt, maxTokens)
		if err == nil {
			if strings.TrimSpace(out) == "" {
				last = &llmclient.ProviderError{Provider: r.next.Name(), Detail: "empty completion"}
				continue
			}
			return out, nil
		}
		// A permanent error will not resolve with retries.
		var pErr *llmclient.PermanentError
		if errors.As(err, &pErr) {
			return "", err
		}
		last = err
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
	}
	return "", last
}

// sleep waits d or returns early when ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
