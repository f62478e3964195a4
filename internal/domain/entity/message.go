package entity

import "time"

const (
	MessageStatusSent     = "sent"
	MessageStatusReceived = "received"
	MessageStatusRead     = "read"
)

type Message struct {
	ID        string    `json:"id" firestore:"id"`
	ChatID    string    `json:"chat_id" firestore:"chatId"`
	OwnerID   string    `json:"owner_id" firestore:"ownerId"`
	Content   string    `json:"content" firestore:"content"`
	Status    string    `json:"status" firestore:"status"` // "sent", "received", "read"
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}

func IsValidMessageStatus(status string) bool {
	switch status {
	case MessageStatusSent, MessageStatusReceived, MessageStatusRead:
		return true
	}
	return false
}

// CanTransitionMessageStatus reports whether moving from one status to the
// next follows the forward-only order sent -> received -> read. Only consulted
// when strict status flow is enabled; the default mode writes any enum
// member unconditionally.
func CanTransitionMessageStatus(from, to string) bool {
	switch from {
	case MessageStatusSent:
		return to == MessageStatusReceived
	case MessageStatusReceived:
		return to == MessageStatusRead
	}
	return false
}
