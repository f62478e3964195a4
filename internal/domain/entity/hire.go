package entity

import "time"

const (
	HireStatusPending   = "pending"
	HireStatusActive    = "active"
	HireStatusCompleted = "completed"
	HireStatusCancelled = "cancelled"
)

// Hire is a paid engagement between a client and a broker. Budget becomes the
// broker's earning once the hire completes.
type Hire struct {
	ID        string    `json:"id"`
	BrokerID  string    `json:"broker_id"`
	ClientID  string    `json:"client_id"`
	Status    string    `json:"status"` // "pending", "active", "completed", "cancelled"
	Budget    float64   `json:"budget"`
	CreatedAt time.Time `json:"created_at"`
}
