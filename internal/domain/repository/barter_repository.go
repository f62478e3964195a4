package repository

import "context"

type BarterRepository interface {
	// CountCompletedByProposer counts completed barters where the user is the
	// proposing side. This is the tier read path's progress source.
	CountCompletedByProposer(ctx context.Context, userID string) (int64, error)

	// CountByParticipant counts barters on either side of the user, any
	// status. This is the tier write path's promotion source.
	CountByParticipant(ctx context.Context, userID string) (int64, error)

	// CountByBrokerGroupedByStatus maps status -> count for barters the
	// broker initiated.
	CountByBrokerGroupedByStatus(ctx context.Context, brokerID string) (map[string]int64, error)
}
