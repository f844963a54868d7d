package memdb

import (
	"context"
	"strings"

	"gigflow/internal/common"
	"gigflow/internal/entity"
	"gigflow/internal/repo/repo_errors"

	"github.com/google/uuid"
)

type GigRepo struct {
	*Store
}

func NewGigRepo(s *Store) *GigRepo {
	return &GigRepo{s}
}

func (r *GigRepo) CreateGig(ctx context.Context, gig entity.Gig) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.gigs[gig.Id]; ok {
		return repo_errors.ErrAlreadyExists
	}

	r.gigs[gig.Id] = gig
	r.order = append(r.order, gig.Id)

	return nil
}

func (r *GigRepo) GetGigById(ctx context.Context, id uuid.UUID) (*entity.Gig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	gig, ok := r.gigs[id]
	if !ok {
		return nil, repo_errors.ErrNotFound
	}

	return &gig, nil
}

func (r *GigRepo) GetGigsByIds(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]entity.Gig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	gigs := make(map[uuid.UUID]entity.Gig, len(ids))
	for _, id := range ids {
		if gig, ok := r.gigs[id]; ok {
			gigs[id] = gig
		}
	}

	return gigs, nil
}

func (r *GigRepo) GetGigs(ctx context.Context, filter entity.GigFilter, pg *entity.PaginationInput) ([]entity.Gig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	matched := make([]entity.Gig, 0)
	for i := len(r.order) - 1; i >= 0; i-- {
		gig := r.gigs[r.order[i]]

		if filter.OpenOnly && gig.Status != common.GigOpen {
			continue
		}

		if search != "" &&
			!strings.Contains(strings.ToLower(gig.Title), search) &&
			!strings.Contains(strings.ToLower(gig.Description), search) {
			continue
		}

		matched = append(matched, gig)
	}

	start, end := pg.Window(len(matched))

	return matched[start:end], nil
}

func (r *GigRepo) GetGigsByOwnerId(ctx context.Context, ownerId string) ([]entity.Gig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	gigs := make([]entity.Gig, 0)
	for i := len(r.order) - 1; i >= 0; i-- {
		if gig := r.gigs[r.order[i]]; gig.OwnerId == ownerId {
			gigs = append(gigs, gig)
		}
	}

	return gigs, nil
}
