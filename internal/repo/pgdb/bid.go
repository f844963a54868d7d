package pgdb

import (
	"context"
	"database/sql"
	"errors"

	"gigflow/internal/entity"
	"gigflow/internal/repo/repo_errors"
	"gigflow/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type BidRepo struct {
	*postgres.Postgres
}

func NewBidRepo(pgdb *postgres.Postgres) *BidRepo {
	return &BidRepo{pgdb}
}

func (r *BidRepo) GetGigBids(ctx context.Context, gigId uuid.UUID) ([]entity.Bid, error) {
	existsSql, args, _ := r.SqlBuilder.
		Select("id").
		From("gig").
		Where("id = ?", gigId).
		ToSql()

	var id uuid.UUID
	if err := r.Database.QueryRowContext(ctx, existsSql, args...).Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return r.gigBids(ctx, r.Database, gigId)
}

func (r *BidRepo) gigBids(ctx context.Context, q queryer, gigId uuid.UUID) ([]entity.Bid, error) {
	getGigBidsSql, args, _ := r.SqlBuilder.
		Select(bidColumns...).
		From("bid").
		Where("gig_id = ?", gigId).
		OrderBy("created_at DESC", "id").
		ToSql()

	return queryBids(ctx, q, getGigBidsSql, args)
}

func (r *BidRepo) GetUserBids(ctx context.Context, bidderId string) ([]entity.Bid, error) {
	getUserBidsSql, args, _ := r.SqlBuilder.
		Select(bidColumns...).
		From("bid").
		Where("bidder_id = ?", bidderId).
		OrderBy("created_at DESC", "id").
		ToSql()

	return queryBids(ctx, r.Database, getUserBidsSql, args)
}

func (r *BidRepo) CountGigBids(ctx context.Context, gigIds []uuid.UUID) (map[uuid.UUID]int, error) {
	counts := make(map[uuid.UUID]int, len(gigIds))
	if len(gigIds) == 0 {
		return counts, nil
	}

	for _, id := range gigIds {
		counts[id] = 0
	}

	countSql, args, _ := r.SqlBuilder.
		Select("gig_id", "count(*)").
		From("bid").
		Where(squirrel.Eq{"gig_id": gigIds}).
		GroupBy("gig_id").
		ToSql()

	rows, err := r.Database.QueryContext(ctx, countSql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var gigId uuid.UUID
		var count int
		if err := rows.Scan(&gigId, &count); err != nil {
			return nil, err
		}
		counts[gigId] = count
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}
