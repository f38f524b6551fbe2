package live

import (
	"encoding/json"
	"time"
)

// Server to client events
const (
	EventSessionStarted   = "session_started"
	EventSetAdded         = "set_added"
	EventSessionFinished  = "session_finished"
	EventSessionCancelled = "session_cancelled"
)

type Message struct {
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload"`
	Timestamp int64           `json:"timestamp"`
}

func NewMessage(eventType string, payload interface{}) (*Message, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &Message{
		Type:      eventType,
		Payload:   payloadBytes,
		Timestamp: time.Now().UnixMilli(),
	}, nil
}
