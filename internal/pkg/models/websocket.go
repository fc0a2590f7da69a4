package models

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// WSMessage represents a WebSocket message structure
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// WSErrorMessage represents an error message sent over WebSocket
type WSErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WebSocketWriteWait bounds how long a single WebSocket write may block.
// Clients that cannot keep up fail the write and get dropped by the manager.
const WebSocketWriteWait = 10 * time.Second

// WebSocketClient represents an authenticated portal connection
type WebSocketClient struct {
	OrgID uuid.UUID
	Email string
	Role  string
	Conn  *websocket.Conn

	writeMu sync.Mutex
}

// WriteJSON serializes v to the connection. Gorilla connections support only
// one concurrent writer, so all writes go through this method.
func (c *WebSocketClient) WriteJSON(v interface{}) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if c.Conn == nil {
		return nil
	}

	c.Conn.SetWriteDeadline(time.Now().Add(WebSocketWriteWait))
	return c.Conn.WriteJSON(v)
}
