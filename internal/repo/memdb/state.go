package memdb

import (
	"context"
	"fmt"
	"slices"

	"gigflow/internal/entity"
	"gigflow/internal/repo/repo_errors"

	"github.com/google/uuid"
)

type GigStateRepo struct {
	*Store
}

func NewGigStateRepo(s *Store) *GigStateRepo {
	return &GigStateRepo{s}
}

func (r *GigStateRepo) UpdateGigState(ctx context.Context, gigId uuid.UUID, fn entity.GigTransition) (entity.Gig, []entity.Bid, error) {
	lock := r.gigLock(gigId)
	lock.Lock()
	defer lock.Unlock()

	if err := ctx.Err(); err != nil {
		return entity.Gig{}, nil, err
	}

	r.mu.RLock()
	gig, ok := r.gigs[gigId]
	bids := slices.Clone(r.bids[gigId])
	r.mu.RUnlock()

	if !ok {
		return entity.Gig{}, nil, repo_errors.ErrNotFound
	}

	newGig, newBids, err := fn(gig, bids)
	if err != nil {
		return entity.Gig{}, nil, err
	}

	if newGig.Id != gigId {
		return entity.Gig{}, nil, fmt.Errorf("transition changed gig id %s to %s", gigId, newGig.Id)
	}
	for _, bid := range newBids {
		if bid.GigId != gigId {
			return entity.Gig{}, nil, fmt.Errorf("transition returned bid %s of gig %s", bid.Id, bid.GigId)
		}
	}

	r.mu.Lock()
	r.gigs[gigId] = newGig
	r.bids[gigId] = slices.Clone(newBids)
	r.mu.Unlock()

	return newGig, newBids, nil
}
