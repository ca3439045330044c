package stream

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSSEEmitterFraming(t *testing.T) {
	rec := httptest.NewRecorder()
	em, err := NewSSEEmitter(rec)
	require.NoError(t, err)

	require.NoError(t, em.Emit(Event{Name: EventPhase, Data: PhasePayload{
		Phase: "understanding", Message: "Getting to know you",
	}}))
	require.NoError(t, em.Emit(Event{Name: EventWallpaper, Data: WallpaperPayload{
		URL: "https://example.com/bg.jpg",
	}}))

	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Contains(t, body, "event: phase\ndata: {\"phase\":\"understanding\",\"message\":\"Getting to know you\"}\n\n")
	assert.Contains(t, body, "event: wallpaper\ndata: {\"url\":\"https://example.com/bg.jpg\"}\n\n")
}

func TestSSEEmitterDoesNotEscapeHTML(t *testing.T) {
	rec := httptest.NewRecorder()
	em, err := NewSSEEmitter(rec)
	require.NoError(t, err)

	require.NoError(t, em.Emit(Event{Name: EventThinking, Data: ThinkingPayload{
		Text: "<b>bold</b> & more", Phase: "building",
	}}))
	assert.Contains(t, rec.Body.String(), "<b>bold</b> & more")
	assert.NotContains(t, rec.Body.String(), `\u003c`)
}

func TestChannelEmitterDelivers(t *testing.T) {
	em := NewChannelEmitter(2)
	require.NoError(t, em.Emit(Event{Name: EventError, Data: ErrorPayload{Message: "Prompt too short"}}))
	ev := <-em.Ch
	assert.Equal(t, EventError, ev.Name)
}
