package llm

import (
	"context"
	"time"

	"go.uber.org/zap"

	"homebase/internal/llmclient"
)

// Middleware decorates a Client to inject cross-cutting concerns
// (retries, logging, etc.).
type Middleware func(llmclient.Client) llmclient.Client

// Wrap applies middlewares in left-to-right order.
// Example: Wrap(inner, A, B) => A(B(inner))
func Wrap(inner llmclient.Client, mws ...Middleware) llmclient.Client {
	out := inner
	for i := len(mws) - 1; i >= 0; i-- {
		out = mws[i](out)
	}
	return out
}

// Logging records provider name, latency and outcome of each call.
func Logging(log *zap.Logger) Middleware {
	if log == nil {
		log = zap.NewNop()
	}
	return func(next llmclient.Client) llmclient.Client {
		return &logged{next: next, log: log}
	}
}

type logged struct {
	next llmclient.Client
	log  *zap.Logger
}

func (c *logged) Name() string { return c.next.Name() }
func (c *logged) Close() error { return c.next.Close() }

func (c *logged) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	start := time.Now()
	out, err := c.next.Generate(ctx, prompt, maxTokens)
	fields := []zap.Field{
		zap.String("provider", c.next.Name()),
		zap.Int("max_tokens", maxTokens),
		zap.Duration("elapsed", time.Since(start)),
	}
	if err != nil {
		c.log.Warn("llm call failed", append(fields, zap.Error(err))...)
		return "", err
	}
	c.log.Debug("llm call ok", append(fields, zap.Int("response_len", len(out)))...)
	return out, nil
}
