package repository

import "context"

type RatingRepository interface {
	// Aggregate returns the rating average and count for a broker. Average is
	// 0 when the broker has no ratings.
	Aggregate(ctx context.Context, brokerID string) (average float64, count int64, err error)
}
