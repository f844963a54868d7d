package pgdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"

	"gigflow/internal/entity"
	"gigflow/internal/repo/repo_errors"
	"gigflow/pkg/postgres"

	"github.com/google/uuid"
)

type GigStateRepo struct {
	*postgres.Postgres
	bids *BidRepo
}

func NewGigStateRepo(pgdb *postgres.Postgres) *GigStateRepo {
	return &GigStateRepo{Postgres: pgdb, bids: NewBidRepo(pgdb)}
}

// UpdateGigState locks the gig row for the duration of one transaction, so
// concurrent transitions of the same gig run one after another.
func (r *GigStateRepo) UpdateGigState(ctx context.Context, gigId uuid.UUID, fn entity.GigTransition) (entity.Gig, []entity.Bid, error) {
	tx, err := r.Database.BeginTx(ctx, nil)
	if err != nil {
		return entity.Gig{}, nil, err
	}

	gig, bids, err := r.apply(ctx, tx, gigId, fn)
	if err != nil {
		if e := tx.Rollback(); e != nil {
			return entity.Gig{}, nil, errors.Join(err, e)
		}

		return entity.Gig{}, nil, err
	}

	if err = tx.Commit(); err != nil {
		return entity.Gig{}, nil, err
	}

	return gig, bids, nil
}

func (r *GigStateRepo) apply(ctx context.Context, tx *sql.Tx, gigId uuid.UUID, fn entity.GigTransition) (entity.Gig, []entity.Bid, error) {
	lockGigSql, args, _ := r.SqlBuilder.
		Select(gigColumns...).
		From("gig").
		Where("id = ?", gigId).
		Suffix("FOR UPDATE").
		ToSql()

	gig, err := scanGig(tx.QueryRowContext(ctx, lockGigSql, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Gig{}, nil, repo_errors.ErrNotFound
		}

		return entity.Gig{}, nil, err
	}

	bids, err := r.bids.gigBids(ctx, tx, gigId)
	if err != nil {
		return entity.Gig{}, nil, err
	}

	newGig, newBids, err := fn(gig, slices.Clone(bids))
	if err != nil {
		return entity.Gig{}, nil, err
	}

	if newGig.Id != gigId {
		return entity.Gig{}, nil, fmt.Errorf("transition changed gig id %s to %s", gigId, newGig.Id)
	}

	if newGig.Status != gig.Status {
		updateGigSql, args, _ := r.SqlBuilder.
			Update("gig").
			Set("status", newGig.Status).
			Where("id = ?", gigId).
			ToSql()

		if _, err := tx.ExecContext(ctx, updateGigSql, args...); err != nil {
			return entity.Gig{}, nil, err
		}
	}

	stored := make(map[uuid.UUID]entity.Bid, len(bids))
	for _, bid := range bids {
		stored[bid.Id] = bid
	}

	for _, bid := range newBids {
		if bid.GigId != gigId {
			return entity.Gig{}, nil, fmt.Errorf("transition returned bid %s of gig %s", bid.Id, bid.GigId)
		}

		old, ok := stored[bid.Id]
		switch {
		case !ok:
			err = r.insertBid(ctx, tx, bid)
		case old.Status != bid.Status:
			err = r.updateBidStatus(ctx, tx, bid)
		}
		if err != nil {
			return entity.Gig{}, nil, err
		}
	}

	return newGig, newBids, nil
}

func (r *GigStateRepo) insertBid(ctx context.Context, tx *sql.Tx, bid entity.Bid) error {
	createBidSql, args, _ := r.SqlBuilder.
		Insert("bid").
		Columns(bidColumns...).
		Values(bid.Id, bid.GigId, bid.BidderId, bid.BidderName, bid.Message, bid.Price, bid.Status, bid.CreatedAt).
		ToSql()

	_, err := tx.ExecContext(ctx, createBidSql, args...)

	return err
}

func (r *GigStateRepo) updateBidStatus(ctx context.Context, tx *sql.Tx, bid entity.Bid) error {
	updateStatusSql, args, _ := r.SqlBuilder.
		Update("bid").
		Set("status", bid.Status).
		Where("id = ?", bid.Id).
		ToSql()

	_, err := tx.ExecContext(ctx, updateStatusSql, args...)

	return err
}
