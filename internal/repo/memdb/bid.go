package memdb

import (
	"context"
	"slices"
	"sort"

	"gigflow/internal/entity"
	"gigflow/internal/repo/repo_errors"

	"github.com/google/uuid"
)

type BidRepo struct {
	*Store
}

func NewBidRepo(s *Store) *BidRepo {
	return &BidRepo{s}
}

func (r *BidRepo) GetGigBids(ctx context.Context, gigId uuid.UUID) ([]entity.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.gigs[gigId]; !ok {
		return nil, repo_errors.ErrNotFound
	}

	bids := slices.Clone(r.bids[gigId])
	if bids == nil {
		bids = make([]entity.Bid, 0)
	}

	return bids, nil
}

func (r *BidRepo) GetUserBids(ctx context.Context, bidderId string) ([]entity.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids := make([]entity.Bid, 0)
	for _, gigBids := range r.bids {
		for _, bid := range gigBids {
			if bid.BidderId == bidderId {
				bids = append(bids, bid)
			}
		}
	}

	sort.SliceStable(bids, func(i, j int) bool {
		return bids[i].CreatedAt.After(bids[j].CreatedAt)
	})

	return bids, nil
}

func (r *BidRepo) CountGigBids(ctx context.Context, gigIds []uuid.UUID) (map[uuid.UUID]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[uuid.UUID]int, len(gigIds))
	for _, id := range gigIds {
		counts[id] = len(r.bids[id])
	}

	return counts, nil
}
