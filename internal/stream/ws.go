package stream

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"

	"homebase/internal/jsonutil"
)

const wsWriteWait = 10 * time.Second

// WSEmitter writes one JSON text message per event over a websocket
// connection, for callers that prefer a socket over SSE.
type WSEmitter struct {
	conn *websocket.Conn
}

func NewWSEmitter(conn *websocket.Conn) *WSEmitter {
	return &WSEmitter{conn: conn}
}

type wsFrame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

func (s *WSEmitter) Emit(ev Event) error {
	data, err := jsonutil.MarshalNoEscape(ev.Data)
	if err != nil {
		return err
	}
	frame, err := jsonutil.MarshalNoEscape(wsFrame{Event: ev.Name, Data: data})
	if err != nil {
		return err
	}
	if err := s.conn.SetWriteDeadline(time.Now().Add(wsWriteWait)); err != nil {
		return err
	}
	return s.conn.WriteMessage(websocket.TextMessage, frame)
}
