package websocket

import (
	"encoding/json"
	"time"
)

// Event types exchanged over the socket.
const (
	EventJoinChat     = "joinChat"
	EventSendMessage  = "sendMessage"
	EventNewMessage   = "newMessage"
	EventMessageError = "messageError"
)

// Event is the wire format for every socket frame, both directions.
type Event struct {
	Type      string          `json:"type"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp string          `json:"timestamp"`
}

type JoinChatData struct {
	ChatID string `json:"chat_id"`
}

type SendMessageData struct {
	Content string `json:"content"`
	OwnerID string `json:"owner_id"`
	ChatID  string `json:"chat_id"`
	Status  string `json:"status,omitempty"`
}

type MessageErrorData struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewEvent marshals a payload into a timestamped outbound event. Marshal
// failures degrade to an empty data field rather than dropping the frame.
func NewEvent(eventType string, data interface{}) []byte {
	raw, err := json.Marshal(data)
	if err != nil {
		raw = nil
	}

	payload, _ := json.Marshal(Event{
		Type:      eventType,
		Data:      raw,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	return payload
}
