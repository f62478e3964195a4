package repository

import (
	"context"
	"database/sql"

	"barterex/internal/domain/entity"
	"barterex/internal/domain/repository"
	"barterex/pkg/errors"
)

type mysqlTierRepository struct {
	db *sql.DB
}

func NewMySQLTierRepository(db *sql.DB) repository.TierRepository {
	return &mysqlTierRepository{
		db: db,
	}
}

func (r *mysqlTierRepository) GetByID(ctx context.Context, id int64) (*entity.Tier, error) {
	var tier entity.Tier
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, requirement
		FROM tiers
		WHERE id = ?
	`, id).Scan(&tier.ID, &tier.Name, &tier.Requirement)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NotFound("Tier", err)
		}
		return nil, errors.Internal("Failed to get tier", err)
	}

	return &tier, nil
}

func (r *mysqlTierRepository) ListOrdered(ctx context.Context) ([]*entity.Tier, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, requirement
		FROM tiers
		ORDER BY requirement ASC
	`)
	if err != nil {
		return nil, errors.Internal("Failed to list tiers", err)
	}
	defer rows.Close()

	var tiers []*entity.Tier
	for rows.Next() {
		var tier entity.Tier
		if err := rows.Scan(&tier.ID, &tier.Name, &tier.Requirement); err != nil {
			return nil, errors.Internal("Failed to scan tier row", err)
		}
		tiers = append(tiers, &tier)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Internal("Failed to iterate tier rows", err)
	}

	return tiers, nil
}
