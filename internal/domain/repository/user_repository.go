package repository

import (
	"context"

	"barterex/internal/domain/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	UpdateTier(ctx context.Context, userID string, tierID int64) error
	Delete(ctx context.Context, id string) error
}
