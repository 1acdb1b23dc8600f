package ws

import (
	"encoding/json"
	"time"
)

// Event is the structured message sent to WebSocket clients.
type Event struct {
	Type string          `json:"type"`
	ID   uint64          `json:"id"`
	Data json.RawMessage `json:"data"`
	Time time.Time       `json:"time"`
}
