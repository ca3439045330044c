package stream

import (
	"fmt"
	"net/http"

	"homebase/internal/jsonutil"
)

// SSEEmitter writes events as Server-Sent Events frames:
// "event: <name>\ndata: <json>\n\n". Payloads carry HTML, so JSON is
// encoded without HTML escaping.
type SSEEmitter struct {
	w       http.ResponseWriter
	flusher http.Flusher
}

// NewSSEEmitter prepares the response for event streaming. It fails
// when the ResponseWriter cannot flush.
func NewSSEEmitter(w http.ResponseWriter) (*SSEEmitter, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, fmt.Errorf("response writer does not support streaming")
	}
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	return &SSEEmitter{w: w, flusher: flusher}, nil
}

func (s *SSEEmitter) Emit(ev Event) error {
	data, err := jsonutil.MarshalNoEscape(ev.Data)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(s.w, "event: %s\ndata: %s\n\n", ev.Name, data); err != nil {
		return err
	}
	s.flusher.Flush()
	return nil
}
