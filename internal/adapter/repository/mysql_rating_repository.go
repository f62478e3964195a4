package repository

import (
	"context"
	"database/sql"

	"barterex/internal/domain/repository"
	"barterex/pkg/errors"
)

type mysqlRatingRepository struct {
	db *sql.DB
}

func NewMySQLRatingRepository(db *sql.DB) repository.RatingRepository {
	return &mysqlRatingRepository{
		db: db,
	}
}

func (r *mysqlRatingRepository) Aggregate(ctx context.Context, brokerID string) (float64, int64, error) {
	var average sql.NullFloat64
	var count int64
	err := r.db.QueryRowContext(ctx, `
		SELECT AVG(value), COUNT(*)
		FROM ratings
		WHERE broker_id = ?
	`, brokerID).Scan(&average, &count)
	if err != nil {
		return 0, 0, errors.Internal("Failed to aggregate ratings", err)
	}

	// AVG over an empty set is NULL; report it as 0.
	return average.Float64, count, nil
}
