package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homebase/internal/llmclient"
)

func fastPolicy(attempts int) Policy {
	return Policy{MaxAttempts: attempts, Delay: 0}
}

func TestGatewayPrimarySucceeds(t *testing.T) {
	primary := llmclient.NewFake("primary").Reply("hello")
	secondary := llmclient.NewFake("secondary").Reply("unused")
	gw := NewGateway(primary, secondary, fastPolicy(2), nil)

	out, err := gw.Generate(context.Background(), "p", 100)
	require.NoError(t, err)
	assert.Equal(t, "hello", out)
	assert.Equal(t, 1, primary.Calls())
	assert.Equal(t, 0, secondary.Calls())
}

func TestGatewayRetriesThenSucceeds(t *testing.T) {
	boom := &llmclient.ProviderError{Provider: "primary", Status: 500, Detail: "boom"}
	primary := llmclient.NewFake("primary").Fail(boom).Reply("recovered")
	gw := NewGateway(primary, llmclient.NewFake("secondary"), fastPolicy(2), nil)

	out, err := gw.Generate(context.Background(), "p", 100)
	require.NoError(t, err)
	assert.Equal(t, "recovered", out)
	assert.Equal(t, 2, primary.Calls())
}

func TestGatewayFallsBackToSecondary(t *testing.T) {
	boom := &llmclient.ProviderError{Provider: "primary", Status: 500, Detail: "boom"}
	primary := llmclient.NewFake("primary").Fail(boom).Fail(boom)
	secondary := llmclient.NewFake("secondary").Reply("plan b")
	gw := NewGateway(primary, secondary, fastPolicy(2), nil)

	out, err := gw.Generate(context.Background(), "p", 100)
	require.NoError(t, err)
	assert.Equal(t, "plan b", out)
	assert.Equal(t, 2, primary.Calls())
	assert.Equal(t, 1, secondary.Calls())
}

func TestGatewayAllProvidersFail(t *testing.T) {
	boom := &llmclient.ProviderError{Provider: "x", Status: 503, Detail: "down"}
	primary := llmclient.NewFake("primary").Fail(boom)
	secondary := llmclient.NewFake("secondary").Fail(boom)
	gw := NewGateway(primary, secondary, fastPolicy(2), nil)

	_, err := gw.Generate(context.Background(), "p", 100)
	require.Error(t, err)
	var all *AllProvidersFailedError
	require.ErrorAs(t, err, &all)
	assert.Equal(t, 1, secondary.Calls())
}

func TestGatewayEmptyBodyIsFailure(t *testing.T) {
	// HTTP 200 with nothing usable in it must trigger the retry path.
	primary := llmclient.NewFake("primary").Reply("   \n  ").Reply("real content")
	gw := NewGateway(primary, llmclient.NewFake("secondary"), fastPolicy(2), nil)

	out, err := gw.Generate(context.Background(), "p", 100)
	require.NoError(t, err)
	assert.Equal(t, "real content", out)
	assert.Equal(t, 2, primary.Calls())
}

func TestGatewayPermanentErrorSkipsRetry(t *testing.T) {
	perm := llmclient.NewPermanentError(errors.New("context_length_exceeded"))
	primary := llmclient.NewFake("primary").Fail(perm)
	secondary := llmclient.NewFake("secondary").Reply("shorter answer")
	gw := NewGateway(primary, secondary, fastPolicy(3), nil)

	out, err := gw.Generate(context.Background(), "p", 100)
	require.NoError(t, err)
	assert.Equal(t, "shorter answer", out)
	assert.Equal(t, 1, primary.Calls())
}

func TestGatewayNoSecondary(t *testing.T) {
	boom := &llmclient.ProviderError{Provider: "primary", Detail: "down"}
	gw := NewGateway(llmclient.NewFake("primary").Fail(boom), nil, fastPolicy(1), nil)

	_, err := gw.Generate(context.Background(), "p", 100)
	var all *AllProvidersFailedError
	require.ErrorAs(t, err, &all)
	assert.Nil(t, all.Secondary)
}

func TestGatewayContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	boom := &llmclient.ProviderError{Provider: "primary", Detail: "down"}
	gw := NewGateway(llmclient.NewFake("primary").Fail(boom), llmclient.NewFake("secondary"), fastPolicy(3), nil)

	_, err := gw.Generate(ctx, "p", 100)
	require.ErrorIs(t, err, context.Canceled)
}

func TestRetryWrapOrder(t *testing.T) {
	// Wrap(inner, A, B) must apply A outermost.
	inner := llmclient.NewFake("inner").Reply("ok")
	wrapped := Wrap(inner, Retry(fastPolicy(2)), Logging(nil))
	out, err := wrapped.Generate(context.Background(), "p", 10)
	require.NoError(t, err)
	assert.Equal(t, "ok", out)
	assert.Equal(t, "inner", wrapped.Name())
}
