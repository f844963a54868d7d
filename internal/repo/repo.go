package repo

import (
	"context"

	"gigflow/internal/entity"
	"gigflow/internal/repo/memdb"
	"gigflow/internal/repo/pgdb"
	"gigflow/pkg/postgres"

	"github.com/google/uuid"
)

type Diagnostics interface {
	Ping(ctx context.Context) error
}

type Gig interface {
	CreateGig(ctx context.Context, gig entity.Gig) error
	GetGigById(ctx context.Context, id uuid.UUID) (*entity.Gig, error)
	GetGigsByIds(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]entity.Gig, error)
	// GetGigs returns gigs matching filter, newest first.
	GetGigs(ctx context.Context, filter entity.GigFilter, pg *entity.PaginationInput) ([]entity.Gig, error)
	GetGigsByOwnerId(ctx context.Context, ownerId string) ([]entity.Gig, error)
}

type Bid interface {
	// GetGigBids returns the bids of a gig, newest first.
	GetGigBids(ctx context.Context, gigId uuid.UUID) ([]entity.Bid, error)
	GetUserBids(ctx context.Context, bidderId string) ([]entity.Bid, error)
	CountGigBids(ctx context.Context, gigIds []uuid.UUID) (map[uuid.UUID]int, error)
}

type GigState interface {
	// UpdateGigState runs fn on the current gig and its bids while no other
	// UpdateGigState for the same gig is running, then stores what fn returned.
	// Nothing is stored when fn fails.
	UpdateGigState(ctx context.Context, gigId uuid.UUID, fn entity.GigTransition) (entity.Gig, []entity.Bid, error)
}

type Repositories struct {
	Diagnostics
	Gig
	Bid
	GigState
}

func NewRepositories(p *postgres.Postgres) *Repositories {
	return &Repositories{
		Diagnostics: pgdb.NewDiagnosticsRepo(p),
		Gig:         pgdb.NewGigRepo(p),
		Bid:         pgdb.NewBidRepo(p),
		GigState:    pgdb.NewGigStateRepo(p),
	}
}

func NewMemoryRepositories() *Repositories {
	s := memdb.NewStore()

	return &Repositories{
		Diagnostics: memdb.NewDiagnosticsRepo(s),
		Gig:         memdb.NewGigRepo(s),
		Bid:         memdb.NewBidRepo(s),
		GigState:    memdb.NewGigStateRepo(s),
	}
}
