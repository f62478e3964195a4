package repository

import "context"

type HireRepository interface {
	// SumCompletedBudget returns the budget total and count over the broker's
	// completed hires. Zero values when the broker has none.
	SumCompletedBudget(ctx context.Context, brokerID string) (total float64, count int64, err error)
}
