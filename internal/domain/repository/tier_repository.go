package repository

import (
	"context"

	"barterex/internal/domain/entity"
)

type TierRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.Tier, error)
	// ListOrdered returns every tier ascending by requirement.
	ListOrdered(ctx context.Context) ([]*entity.Tier, error)
}
