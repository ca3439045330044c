// Package llm exposes a single generate call over two interchangeable
// providers with retry and failover.
package llm

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"homebase/internal/llmclient"
)

// AllProvidersFailedError is returned when the primary provider has
// exhausted its retries and the secondary also failed.
type AllProvidersFailedError struct {
	Primary   error
	Secondary error
}

func (e *AllProvidersFailedError) Error() string {
	return fmt.Sprintf("all providers failed: primary: %v; secondary: %v", e.Primary, e.Secondary)
}

// Gateway generates text through a primary provider with retries; on
// exhaustion it tries the secondary provider exactly once. It knows
// nothing about pipeline phases.
type Gateway struct {
	primary   llmclient.Client
	secondary llmclient.Client
	log       *zap.Logger
}

// NewGateway wires the retry policy and logging around both providers.
// secondary may be nil when no fallback provider is configured.
func NewGateway(primary, secondary llmclient.Client, policy Policy, log *zap.Logger) *Gateway {
	if log == nil {
		log = zap.NewNop()
	}
	g := &Gateway{
		primary: Wrap(primary, Retry(policy), Logging(log)),
		log:     log,
	}
	if secondary != nil {
		g.secondary = Wrap(secondary, Logging(log))
	}
	return g
}

// Generate returns the first usable completion. A trimmed-empty body is
// treated as a provider failure.
func (g *Gateway) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	out, perr := g.primary.Generate(ctx, prompt, maxTokens)
	if perr == nil && strings.TrimSpace(out) != "" {
		return out, nil
	}
	if ctx.Err() != nil {
		return "", ctx.Err()
	}
	if g.secondary == nil {
		return "", &AllProvidersFailedError{Primary: perr}
	}
	g.log.Info("primary provider exhausted, trying secondary",
		zap.String("primary", g.primary.Name()),
		zap.String("secondary", g.secondary.Name()))
	out, serr := g.secondary.Generate(ctx, prompt, maxTokens)
	if serr == nil && strings.TrimSpace(out) != "" {
		return out, nil
	}
	if serr == nil {
		serr = &llmclient.ProviderError{Provider: g.secondary.Name(), Detail: "empty completion"}
	}
	return "", &AllProvidersFailedError{Primary: perr, Secondary: serr}
}

// Close closes both underlying providers.
func (g *Gateway) Close() error {
	err := g.primary.Close()
	if g.secondary != nil {
		if cerr := g.secondary.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
