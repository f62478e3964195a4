package entity

import "time"

const (
	BarterStatusPending   = "pending"
	BarterStatusAccepted  = "accepted"
	BarterStatusCompleted = "completed"
	BarterStatusCancelled = "cancelled"
)

// Barter is a trade between two barterers, optionally brokered.
type Barter struct {
	ID          string    `json:"id"`
	ProposerID  string    `json:"proposer_id"`
	ResponderID string    `json:"responder_id"`
	BrokerID    string    `json:"broker_id,omitempty"`
	Status      string    `json:"status"` // "pending", "accepted", "completed", "cancelled"
	CreatedAt   time.Time `json:"created_at"`
}
