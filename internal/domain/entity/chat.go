package entity

import "time"

// Chat groups messages under a single transactional context. Exactly one of
// BarterID or HireID is set for the whole lifetime of the chat.
type Chat struct {
	ID            string    `json:"id" firestore:"id"`
	BarterID      string    `json:"barter_id,omitempty" firestore:"barterId,omitempty"`
	HireID        string    `json:"hire_id,omitempty" firestore:"hireId,omitempty"`
	Participants  []string  `json:"participants" firestore:"participants"`
	LastMessage   string    `json:"last_message,omitempty" firestore:"lastMessage,omitempty"`
	LastMessageAt time.Time `json:"last_message_at" firestore:"lastMessageAt"`
	CreatedAt     time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt     time.Time `json:"updated_at" firestore:"updatedAt"`
}

// HasValidContext reports whether the barter/hire discriminator holds exactly
// one value.
func (c *Chat) HasValidContext() bool {
	return (c.BarterID != "") != (c.HireID != "")
}

func (c *Chat) HasParticipant(userID string) bool {
	for _, p := range c.Participants {
		if p == userID {
			return true
		}
	}
	return false
}
