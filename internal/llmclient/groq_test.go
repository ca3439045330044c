package llmclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStubGroq(t *testing.T, handler http.HandlerFunc) (*GroqClient, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	c := NewGroqClient("test-key", "test-model")
	c.baseURL = srv.URL
	return c, srv
}

func TestGroqGenerateSendsMessageEnvelope(t *testing.T) {
	var got groqChatReq
	c, srv := newStubGroq(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": "hello there"}},
			},
		})
	})
	defer srv.Close()

	out, err := c.Generate(context.Background(), "say hi", 128)
	require.NoError(t, err)
	assert.Equal(t, "hello there", out)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "user", got.Messages[0].Role)
	assert.Equal(t, "say hi", got.Messages[0].Content)
	assert.Equal(t, "test-model", got.Model)
	assert.Equal(t, 128, got.MaxTokens)
}

func TestGroqGenerateEmptyCompletion(t *testing.T) {
	c, srv := newStubGroq(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": "   "}},
			},
		})
	})
	defer srv.Close()

	_, err := c.Generate(context.Background(), "say hi", 128)
	var perr *ProviderError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, http.StatusOK, perr.Status)
}

func TestGroqGenerateStatusError(t *testing.T) {
	c, srv := newStubGroq(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})
	defer srv.Close()

	_, err := c.Generate(context.Background(), "say hi", 128)
	var perr *ProviderError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, http.StatusTooManyRequests, perr.Status)
}

func TestGroqContextLengthIsPermanent(t *testing.T) {
	c, srv := newStubGroq(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":"context_length_exceeded"}}`))
	})
	defer srv.Close()

	_, err := c.Generate(context.Background(), "very long prompt", 128)
	var permErr *PermanentError
	require.True(t, errors.As(err, &permErr))
}

func TestFakeScriptRepeatsLastReply(t *testing.T) {
	f := NewFake("f").Reply("one").Reply("two")
	for i, want := range []string{"one", "two", "two"} {
		out, err := f.Generate(context.Background(), "p", 10)
		require.NoError(t, err, "call %d", i)
		assert.Equal(t, want, out)
	}
	assert.Equal(t, 3, f.Calls())
}
