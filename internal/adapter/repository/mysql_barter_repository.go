package repository

import (
	"context"
	"database/sql"

	"barterex/internal/domain/entity"
	"barterex/internal/domain/repository"
	"barterex/pkg/errors"
)

type mysqlBarterRepository struct {
	db *sql.DB
}

func NewMySQLBarterRepository(db *sql.DB) repository.BarterRepository {
	return &mysqlBarterRepository{
		db: db,
	}
}

func (r *mysqlBarterRepository) CountCompletedByProposer(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM barters
		WHERE proposer_id = ? AND status = ?
	`, userID, entity.BarterStatusCompleted).Scan(&count)
	if err != nil {
		return 0, errors.Internal("Failed to count completed barters", err)
	}

	return count, nil
}

func (r *mysqlBarterRepository) CountByParticipant(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM barters
		WHERE proposer_id = ? OR responder_id = ?
	`, userID, userID).Scan(&count)
	if err != nil {
		return 0, errors.Internal("Failed to count barters", err)
	}

	return count, nil
}

func (r *mysqlBarterRepository) CountByBrokerGroupedByStatus(ctx context.Context, brokerID string) (map[string]int64, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT status, COUNT(*)
		FROM barters
		WHERE broker_id = ?
		GROUP BY status
	`, brokerID)
	if err != nil {
		return nil, errors.Internal("Failed to count barters by status", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, errors.Internal("Failed to scan barter count row", err)
		}
		counts[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Internal("Failed to iterate barter count rows", err)
	}

	return counts, nil
}
