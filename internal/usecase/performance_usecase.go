package usecase

import (
	"context"

	"barterex/internal/domain/repository"
)

// PerformanceUseCase serves the broker dashboard: three independent read-only
// aggregations scoped to one broker. Empty result sets yield zero-valued
// aggregates, never an error.
type PerformanceUseCase struct {
	hireRepo   repository.HireRepository
	barterRepo repository.BarterRepository
	ratingRepo repository.RatingRepository
}

func NewPerformanceUseCase(
	hireRepo repository.HireRepository,
	barterRepo repository.BarterRepository,
	ratingRepo repository.RatingRepository,
) *PerformanceUseCase {
	return &PerformanceUseCase{
		hireRepo:   hireRepo,
		barterRepo: barterRepo,
		ratingRepo: ratingRepo,
	}
}

type BrokerEarnings struct {
	TotalEarnings  float64 `json:"totalEarnings"`
	CompletedHires int64   `json:"completedHires"`
}

type BrokerRatings struct {
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}

func (uc *PerformanceUseCase) Earnings(ctx context.Context, brokerID string) (*BrokerEarnings, error) {
	total, count, err := uc.hireRepo.SumCompletedBudget(ctx, brokerID)
	if err != nil {
		return nil, err
	}

	return &BrokerEarnings{
		TotalEarnings:  total,
		CompletedHires: count,
	}, nil
}

func (uc *PerformanceUseCase) BartersByStatus(ctx context.Context, brokerID string) (map[string]int64, error) {
	return uc.barterRepo.CountByBrokerGroupedByStatus(ctx, brokerID)
}

func (uc *PerformanceUseCase) Ratings(ctx context.Context, brokerID string) (*BrokerRatings, error) {
	average, count, err := uc.ratingRepo.Aggregate(ctx, brokerID)
	if err != nil {
		return nil, err
	}

	return &BrokerRatings{
		Average: average,
		Count:   count,
	}, nil
}
