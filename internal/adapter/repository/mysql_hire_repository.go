package repository

import (
	"context"
	"database/sql"

	"barterex/internal/domain/entity"
	"barterex/internal/domain/repository"
	"barterex/pkg/errors"
)

type mysqlHireRepository struct {
	db *sql.DB
}

func NewMySQLHireRepository(db *sql.DB) repository.HireRepository {
	return &mysqlHireRepository{
		db: db,
	}
}

func (r *mysqlHireRepository) SumCompletedBudget(ctx context.Context, brokerID string) (float64, int64, error) {
	var total sql.NullFloat64
	var count int64
	err := r.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(budget), 0), COUNT(*)
		FROM hires
		WHERE broker_id = ? AND status = ?
	`, brokerID, entity.HireStatusCompleted).Scan(&total, &count)
	if err != nil {
		return 0, 0, errors.Internal("Failed to sum completed hire budgets", err)
	}

	return total.Float64, count, nil
}
