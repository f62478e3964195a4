package entity

import "time"

type Rating struct {
	ID        string    `json:"id"`
	BrokerID  string    `json:"broker_id"`
	RaterID   string    `json:"rater_id"`
	Value     int       `json:"value"` // 1-5
	CreatedAt time.Time `json:"created_at"`
}
