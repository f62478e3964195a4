package entity

// Tier is a platform-managed progression level. Requirement is the completed
// barter count that satisfies the tier; tiers order ascending by requirement.
type Tier struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Requirement int64  `json:"requirement"`
}
