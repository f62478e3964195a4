package entity

import "time"

const (
	RoleBarterer = "barterer"
	RoleBroker   = "broker"
	RoleAdmin    = "admin"
)

type User struct {
	ID       string `json:"id" firestore:"id"`
	Email    string `json:"email" firestore:"email"`
	Username string `json:"username" firestore:"username"`
	Bio      string `json:"bio,omitempty" firestore:"bio,omitempty"`
	Role     string `json:"role" firestore:"role"` // "barterer", "broker", "admin"

	// TierID references a row in the relational tiers table. Only barterers
	// carry a tier; it is rewritten when a recompute promotes the user.
	TierID int64 `json:"tier_id,omitempty" firestore:"tierId,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
