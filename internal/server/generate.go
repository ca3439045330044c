package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"homebase/internal/pipeline"
	"homebase/internal/stream"
	"homebase/internal/workspace"
)

// GenerateHandler serves the generation endpoints: SSE over POST and an
// equivalent websocket stream.
type GenerateHandler struct {
	pipe       *pipeline.Pipeline
	store      workspace.Store
	log        *zap.Logger
	runTimeout time.Duration
}

func NewGenerateHandler(pipe *pipeline.Pipeline, store workspace.Store, runTimeout time.Duration, log *zap.Logger) *GenerateHandler {
	if store == nil {
		store = workspace.NopStore{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	if runTimeout <= 0 {
		runTimeout = 5 * time.Minute
	}
	return &GenerateHandler{pipe: pipe, store: store, log: log, runTimeout: runTimeout}
}

type generateRequest struct {
	Prompt string `json:"prompt"`
}

// HandleGenerate streams progress events as text/event-stream.
func (h *GenerateHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 64<<10)).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}

	em, err := stream.NewSSEEmitter(w)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.runTimeout)
	defer cancel()

	h.run(ctx, req.Prompt, em)
}

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(_ *http.Request) bool {
		return true
	},
}

// HandleGenerateWS streams the same events over a websocket. The prompt
// comes from the "prompt" query param or the first client text message.
func (h *GenerateHandler) HandleGenerateWS(w http.ResponseWriter, r *http.Request) {
	conn, err := wsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	prompt := r.URL.Query().Get("prompt")
	if prompt == "" {
		_ = conn.SetReadDeadline(time.Now().Add(30 * time.Second))
		var req generateRequest
		if err := conn.ReadJSON(&req); err != nil {
			_ = conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "prompt required"))
			return
		}
		prompt = req.Prompt
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.runTimeout)
	defer cancel()

	h.run(ctx, prompt, stream.NewWSEmitter(conn))
	_ = conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

// run executes one pipeline run, turning any unexpected failure into a
// terminal error event, and hands the finished workspace to the store.
func (h *GenerateHandler) run(ctx context.Context, prompt string, em stream.Emitter) {
	capture := &capturingEmitter{next: em}
	err := func() (err error) {
		defer func() {
			if rec := recover(); rec != nil {
				h.log.Error("pipeline panicked", zap.Any("panic", rec))
				err = em.Emit(stream.Event{Name: stream.EventError, Data: stream.ErrorPayload{
					Message: "internal error",
				}})
			}
		}()
		return h.pipe.Run(ctx, prompt, capture)
	}()
	if err != nil {
		h.log.Warn("run aborted", zap.Error(err))
		return
	}
	if capture.complete != nil {
		if serr := h.store.SaveWorkspace(ctx, prompt, capture.complete.Understanding, capture.complete.Items); serr != nil {
			h.log.Warn("workspace store failed", zap.Error(serr))
		}
	}
}

// capturingEmitter forwards events and remembers the terminal complete
// payload so the handler can hand it to the store.
type capturingEmitter struct {
	next     stream.Emitter
	complete *stream.CompletePayload
}

func (c *capturingEmitter) Emit(ev stream.Event) error {
	if ev.Name == stream.EventComplete {
		if payload, ok := ev.Data.(stream.CompletePayload); ok {
			c.complete = &payload
		}
	}
	return c.next.Emit(ev)
}
